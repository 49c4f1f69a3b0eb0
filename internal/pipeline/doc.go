/*
Package pipeline implements the per-event orchestrator of lesolver.

Each call to Orchestrator.Handle runs one single-shot state machine:

	Fetching → Decoding → Parsing → Solving → Storing → Done

Any of the first five stages may end the invocation in a failure instead. Nothing is
retried and nothing is kept between invocations. Failures carry a message that is safe
to show to the uploader; the underlying error is logged and attached to the Outcome.
*/
package pipeline
