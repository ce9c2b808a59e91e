package tui

import (
	"fmt"
	"strings"
	"time"

	"facerecog/controller"
	"facerecog/intake"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
)

const (
	maxLogs        = 6
	maxOverviewLen = 160
)

// LogEntry represents a single activity line with timestamp
type LogEntry struct {
	Timestamp time.Time
	Message   string
}

// Model is the bubbletea front end for the upload/result controller.
// It holds only view concerns; all recognition state lives in Controller.
type Model struct {
	Controller    *controller.Controller
	Input         textinput.Model
	IntakeOptions intake.Options
	InitialPath   string

	// Hint reports a selection that produced no file
	Hint string
	Logs []LogEntry

	// gesture numbers selections in the order the user made them;
	// only the newest one may be submitted.
	gesture int64
	// resolved is the newest gesture whose selection has come back.
	resolved int64

	logger *zap.Logger
}

// NewModel creates a new TUI model
func NewModel(ctrl *controller.Controller, opts intake.Options, initialPath string, logger *zap.Logger) Model {
	if logger == nil {
		logger = zap.NewNop()
	}

	input := textinput.New()
	input.Placeholder = TextPlaceholder
	input.Prompt = "› "
	input.Width = 60
	input.Focus()

	m := Model{
		Controller:    ctrl,
		Input:         input,
		IntakeOptions: opts,
		InitialPath:   initialPath,
		Logs:          make([]LogEntry, 0, maxLogs),
		logger:        logger,
	}
	if initialPath != "" {
		m.gesture = 1
	}
	return m
}

// Init implements tea.Model interface
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{textinput.Blink}
	if m.InitialPath != "" {
		cmds = append(cmds, selectFile(m.gesture, m.InitialPath, m.IntakeOptions))
	}
	return tea.Batch(cmds...)
}

// selecting reports whether the newest gesture is still being resolved.
// The previous result is hidden meanwhile and comes back if the selection fails.
func (m Model) selecting() bool {
	return m.resolved < m.gesture
}

// AddLog appends an activity line, keeping the most recent entries
func (m Model) AddLog(message string) Model {
	logs := make([]LogEntry, 0, maxLogs)
	logs = append(logs, m.Logs...)
	logs = append(logs, LogEntry{Timestamp: time.Now(), Message: message})
	if len(logs) > maxLogs {
		logs = logs[len(logs)-maxLogs:]
	}
	m.Logs = logs
	return m
}

// formatResult formats the current recognition result for display
func (m Model) formatResult(p controller.Presentation) string {
	var b strings.Builder

	b.WriteString(HighlightStyle.Render("Actor: " + p.DisplayActor()))
	b.WriteString("\n")

	if p.ShowConfidence {
		b.WriteString(StatusStyle.Render("Confidence: " + p.Confidence))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	if len(p.Works) == 0 {
		b.WriteString(InfoStyle.Render(p.NoWorksText))
		return b.String()
	}

	b.WriteString("Movies/Shows:\n")
	for i, w := range p.Works {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(fmt.Sprintf("• %s [%s]\n", w.Title, w.Category))
		b.WriteString(InfoStyle.Render("  poster: " + w.PosterURL))
		b.WriteString("\n")
		b.WriteString(InfoStyle.Render("  " + truncate(w.Overview, maxOverviewLen)))
		b.WriteString("\n")
	}

	return strings.TrimRight(b.String(), "\n")
}

func truncate(s string, limit int) string {
	r := []rune(s)
	if len(r) <= limit {
		return s
	}
	return string(r[:limit]) + "..."
}
