package tui

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"facerecog/controller"
	"facerecog/intake"
	"facerecog/logging"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
)

// Update implements tea.Model interface
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)
	case tea.WindowSizeMsg:
		if w := msg.Width - 12; w > 20 {
			m.Input.Width = w
		}
		return m, nil
	case FileSelectedMsg:
		return m.handleFileSelected(msg)
	case RecognitionSettledMsg:
		return m.handleRecognitionSettled(msg)
	}

	var cmd tea.Cmd
	m.Input, cmd = m.Input.Update(msg)
	return m, cmd
}

// handleKeyPress processes keyboard input
func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC, tea.KeyEsc:
		m.Controller.Close()
		return m, tea.Quit
	case tea.KeyEnter:
		line := m.Input.Value()
		m.Input.Reset()
		if strings.TrimSpace(line) == "" {
			m.Hint = TextNoSelection
			return m, nil
		}
		m.gesture++
		m.Hint = fmt.Sprintf(TextOpening, strings.TrimSpace(line))
		return m, selectFile(m.gesture, line, m.IntakeOptions)
	}

	var cmd tea.Cmd
	m.Input, cmd = m.Input.Update(msg)
	return m, cmd
}

// handleFileSelected submits a new image, or reports why there is none.
// A failed selection leaves the current image, result and error untouched.
// Selections resolve concurrently, so one overtaken by a newer gesture is dropped.
func (m Model) handleFileSelected(msg FileSelectedMsg) (tea.Model, tea.Cmd) {
	if msg.Gesture < m.gesture {
		if msg.Image != nil {
			m = m.AddLog(fmt.Sprintf("Skipped %s: a newer file was chosen", msg.Image.Name))
			msg.Image.Release()
		}
		m.logger.Debug("stale selection dropped", zap.Int64("gesture", msg.Gesture), zap.Int64("latest", m.gesture))
		return m, nil
	}
	m.resolved = msg.Gesture

	if msg.Err != nil {
		m.Hint = selectionHint(msg.Err)
		opErr := &logging.OperationError{Operation: "select", Seq: msg.Gesture, Err: msg.Err}
		m.logger.Info("selection rejected", opErr.Fields()...)
		return m, nil
	}

	req, discarded := m.Controller.Submit(msg.Image)
	if discarded != nil {
		discarded.Release()
	}
	m.Hint = ""
	m = m.AddLog(fmt.Sprintf("Uploading %s (request #%d)", msg.Image.Name, req.Seq))
	return m, recognize(m.Controller, req)
}

// handleRecognitionSettled applies a finished request
func (m Model) handleRecognitionSettled(msg RecognitionSettledMsg) (tea.Model, tea.Cmd) {
	req := msg.Request
	if !m.Controller.Complete(req, msg.Outcome) {
		m = m.AddLog(fmt.Sprintf("Discarded response for superseded request #%d", req.Seq))
		return m, nil
	}

	st := m.Controller.Snapshot()
	switch {
	case st.Err != nil && st.Err.Kind != controller.ErrorRecognition:
		m = m.AddLog(fmt.Sprintf("Request #%d failed after %s", req.Seq, msg.Outcome.Elapsed.Round(time.Millisecond)))
	case st.Result.Recognized():
		m = m.AddLog(fmt.Sprintf("Request #%d: %s (%d works)", req.Seq, st.Result.Actor, len(st.Result.Movies)))
	default:
		m = m.AddLog(fmt.Sprintf("Request #%d: no match", req.Seq))
	}
	return m, nil
}

func selectionHint(err error) string {
	switch {
	case errors.Is(err, intake.ErrNoSelection):
		return TextNoSelection
	case errors.Is(err, intake.ErrNotImage):
		return "Not an image: " + err.Error()
	default:
		return err.Error()
	}
}
