package resolver

import (
	"errors"
	"fmt"
)

// Public error messages. These are part of the wire contract and must not
// change.
const (
	MessageMissingParameters = "Missing required parameters"
	MessageProcessingFailed  = "Failed to process image"
)

// ErrMissingParameter is returned when any of "image", "x" or "y" is absent
// from the request body.
var ErrMissingParameter = errors.New("missing required parameters")

// Stage identifies where in the pipeline a request failed.
type Stage string

const (
	StageParse  Stage = "parse"
	StageDecode Stage = "decode"
	StageSample Stage = "sample"
)

// ProcessingFailure is the single error type produced by the pipeline after
// validation. The wrapped cause is for operators only.
type ProcessingFailure struct {
	Stage Stage
	Err   error
}

func (f *ProcessingFailure) Error() string {
	return fmt.Sprintf("%s: %v", f.Stage, f.Err)
}

func (f *ProcessingFailure) Unwrap() error { return f.Err }

func fail(stage Stage, err error) *ProcessingFailure {
	return &ProcessingFailure{Stage: stage, Err: err}
}

// IsProcessingFailure reports whether err is, or wraps, a *ProcessingFailure.
func IsProcessingFailure(err error) bool {
	var pf *ProcessingFailure
	return errors.As(err, &pf)
}
