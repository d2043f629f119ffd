package hardware

import "context"

// ErrProbeFailed is the base error for failed hardware probes.
var ErrProbeFailed = NewProbeError("hardware probe failed")

// ProbeError wraps a probe failure with an optional cause.
type ProbeError struct {
	Message string
	Cause   error
}

func NewProbeError(message string) *ProbeError {
	return &ProbeError{Message: message}
}

func (e *ProbeError) Error() string {
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}
	return e.Message
}

func (e *ProbeError) Unwrap() error {
	return e.Cause
}

func (e *ProbeError) WithCause(cause error) *ProbeError {
	return &ProbeError{Message: e.Message, Cause: cause}
}

// Detector produces a hardware Profile for the running host. A nil
// profile with a nil error is a valid outcome meaning "nothing could be
// determined"; consumers must degrade to neutral ranking in that case.
type Detector interface {
	Name() string
	Detect(ctx context.Context) (*Profile, error)
}
