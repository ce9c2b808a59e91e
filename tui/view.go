package tui

import (
	"fmt"
	"strings"
)

// View implements tea.Model interface
func (m Model) View() string {
	p := m.Controller.View()
	var b strings.Builder

	// Title
	b.WriteString(TitleStyle.Render(TextTitle))
	b.WriteString("\n\n")

	// Drop zone is always available, even while a request is in flight
	zone := TextDropZone + "\n\n" + m.Input.View()
	if m.Hint != "" {
		zone += "\n" + ErrorStyle.Render(m.Hint)
	}
	b.WriteString(DropZoneStyle.Render(zone))
	b.WriteString("\n\n")

	if p.Loading {
		b.WriteString(StatusStyle.Render(fmt.Sprintf(TextLoading, p.PreviewName)))
		b.WriteString("\n\n")
	}

	// Preview
	if p.ShowPreview {
		b.WriteString(InfoStyle.Render("🖼  " + p.PreviewName))
		b.WriteString("\n")
		if p.Thumbnail != "" {
			b.WriteString(p.Thumbnail)
			b.WriteString("\n")
		}
		b.WriteString(InfoStyle.Render(p.PreviewURI))
		b.WriteString("\n\n")
	}

	if m.selecting() {
		p.ShowError = false
		p.ShowResult = false
	}

	if p.ShowError {
		b.WriteString(ErrorStyle.Render("❌ " + p.ErrorMessage))
		b.WriteString("\n\n")
	}

	// Results
	if p.ShowResult {
		b.WriteString(BoxStyle.Render(m.formatResult(p)))
		b.WriteString("\n\n")
	}

	// Logs
	if len(m.Logs) > 0 {
		b.WriteString(InfoStyle.Render("📝 Recent Activity:"))
		b.WriteString("\n")
		for _, entry := range m.Logs {
			line := fmt.Sprintf("   [%s] %s", entry.Timestamp.Format("15:04:05"), entry.Message)
			b.WriteString(InfoStyle.Render(line))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	// Help text
	b.WriteString(InfoStyle.Render(TextFooter))

	return b.String()
}
