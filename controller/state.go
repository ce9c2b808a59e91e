package controller

import (
	"facerecog/intake"
	"facerecog/types"
)

// Phase is the request lifecycle shown to the user
type Phase string

const (
	PhaseIdle     Phase = "idle"
	PhaseInFlight Phase = "in_flight"
	PhaseSettled  Phase = "settled"
)

// ErrorKind classifies the most recent failure. It is only used for logging;
// the user sees the same generic message for transport and malformed failures.
type ErrorKind string

const (
	ErrorTransport   ErrorKind = "transport"
	ErrorMalformed   ErrorKind = "malformed_response"
	ErrorRecognition ErrorKind = "recognition"
)

// ErrorState is the single human-readable message for the latest failure
type ErrorState struct {
	Message string
	Kind    ErrorKind
}

// State is the complete client state: at most one of each entity is live
type State struct {
	Image  *intake.SelectedImage
	Result *types.RecognitionResult
	Err    *ErrorState
	Phase  Phase
}

// InFlight reports whether the loading indicator should be shown
func (s State) InFlight() bool {
	return s.Phase == PhaseInFlight
}
