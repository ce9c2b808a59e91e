package tui

import (
	"facerecog/controller"
	"facerecog/intake"
)

// Messages for the tea program

// FileSelectedMsg is sent once a selection gesture has been resolved.
// Gesture is the number the model gave the gesture when it happened.
type FileSelectedMsg struct {
	Gesture int64
	Image   *intake.SelectedImage
	Err     error
}

// RecognitionSettledMsg is sent when a request's network call finishes
type RecognitionSettledMsg struct {
	Request *controller.Request
	Outcome controller.Outcome
}
