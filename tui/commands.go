package tui

import (
	"facerecog/controller"
	"facerecog/intake"

	tea "github.com/charmbracelet/bubbletea"
)

// selectFile creates a command that resolves typed or dropped input into an image
func selectFile(gesture int64, line string, opts intake.Options) tea.Cmd {
	return func() tea.Msg {
		img, err := intake.Select(line, opts)
		return FileSelectedMsg{Gesture: gesture, Image: img, Err: err}
	}
}

// recognize creates a command that performs the request's single upload
func recognize(ctrl *controller.Controller, req *controller.Request) tea.Cmd {
	return func() tea.Msg {
		return RecognitionSettledMsg{
			Request: req,
			Outcome: ctrl.Recognize(req),
		}
	}
}
