package domain

import "errors"

// ErrObjectNotFound is returned by object stores when a bucket/key pair does not exist.
var ErrObjectNotFound = errors.New("object not found")

// ErrMissingBucket is returned when a read-side or write-side bucket is not configured.
var ErrMissingBucket = errors.New("storage bucket not configured")

// ErrMalformedSystem is returned by solvers when the matrix and vector shapes disagree.
var ErrMalformedSystem = errors.New("malformed linear system")

// StageError records which pipeline stage failed and why.
type StageError struct {
	Stage Stage
	Err   error
}

func (e *StageError) Error() string {
	return string(e.Stage) + ": " + e.Err.Error()
}

func (e *StageError) Unwrap() error {
	return e.Err
}

// FailureError carries only the externally safe message of a failed invocation.
// Transports that signal failure through an error value return it.
type FailureError struct {
	Message string
}

func (e *FailureError) Error() string {
	return e.Message
}
