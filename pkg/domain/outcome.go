package domain

// Stage is a state of the pipeline state machine.
type Stage string

const (
	StageFetching Stage = "fetching"
	StageDecoding Stage = "decoding"
	StageParsing  Stage = "parsing"
	StageSolving  Stage = "solving"
	StageStoring  Stage = "storing"
	StageDone     Stage = "done"
)

// Stages lists the working stages in execution order.
var Stages = []Stage{StageFetching, StageDecoding, StageParsing, StageSolving, StageStoring}

// OutcomeStatus tells a successful invocation from a failed one.
type OutcomeStatus string

const (
	StatusSuccess OutcomeStatus = "success"
	StatusFailure OutcomeStatus = "failure"
)

// Outcome is the single terminal result of an invocation.
type Outcome struct {
	Status  OutcomeStatus `json:"status"`
	Message string        `json:"message"`

	// Success fields: where the result was stored and what it was.
	Result string `json:"result,omitempty"`
	Bucket string `json:"bucket,omitempty"`
	Key    string `json:"key,omitempty"`

	// Stage is the stage that failed (failure only).
	Stage Stage `json:"stage,omitempty"`

	InvocationID string `json:"invocation_id,omitempty"`

	// Err is the internal cause of a failure. It is logged, never serialized.
	Err error `json:"-"`
}

// Succeeded reports whether the outcome is a success.
func (o Outcome) Succeeded() bool {
	return o.Status == StatusSuccess
}

// AsError returns nil for successes and a FailureError carrying only the
// external message for failures.
func (o Outcome) AsError() error {
	if o.Succeeded() {
		return nil
	}
	return &FailureError{Message: o.Message}
}

// NewSuccess builds a success outcome.
func NewSuccess(message, result, bucket, key string) Outcome {
	return Outcome{
		Status:  StatusSuccess,
		Message: message,
		Result:  result,
		Bucket:  bucket,
		Key:     key,
	}
}

// NewFailure builds a failure outcome for the given stage.
func NewFailure(stage Stage, message string, cause error) Outcome {
	o := Outcome{
		Status:  StatusFailure,
		Message: message,
		Stage:   stage,
	}
	if cause != nil {
		o.Err = &StageError{Stage: stage, Err: cause}
	}
	return o
}
