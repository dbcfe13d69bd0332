package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// View renders the entire TUI to a string.
// This is called by Bubble Tea on every update.
func (m Model) View() string {
	if !m.ready {
		return "Initializing..."
	}

	var b strings.Builder

	b.WriteString(m.viewport.View())
	b.WriteString("\n")
	b.WriteString(m.renderButtonRow())
	b.WriteString("\n")
	b.WriteString(m.renderInputArea())
	b.WriteString("\n")
	b.WriteString(m.renderFooter())

	return b.String()
}

// updateViewportContent updates the viewport with the current log entries.
// It preserves scroll position if the user has scrolled up.
func (m *Model) updateViewportContent() {
	var content strings.Builder

	for _, entry := range m.logs {
		content.WriteString(m.formatLogEntry(entry))
		content.WriteString("\n")
	}

	atBottom := m.viewport.AtBottom()
	m.viewport.SetContent(content.String())

	// Only auto-scroll if the user was already at the bottom, so scrolling
	// up to read history survives new messages.
	if atBottom || m.sending {
		m.viewport.GotoBottom()
	}
}

// formatLogEntry formats a single log entry for display.
func (m *Model) formatLogEntry(entry logEntry) string {
	contentWidth := m.width - 6
	if contentWidth < 40 {
		contentWidth = 40
	}

	switch entry.Type {
	case "user":
		return UserMessageStyle.Width(contentWidth).Render(entry.Content)

	case "bot":
		if m.renderer != nil {
			rendered, err := m.renderer.Render(entry.Content)
			if err == nil {
				return strings.TrimSpace(rendered)
			}
		}
		return BotMessageStyle.Render(entry.Content)

	case "diff":
		// Raw unified diff, no markdown pass
		return BotMessageStyle.Render(entry.Content)

	case "error":
		return ErrorStyle.Render("  " + entry.Content)

	default:
		return entry.Content
	}
}

// renderButtonRow shows the current reply's buttons as numbered choices.
func (m Model) renderButtonRow() string {
	if len(m.buttons) == 0 || m.sending {
		return ""
	}

	parts := make([]string, 0, len(m.buttons))
	for i, button := range m.buttons {
		parts = append(parts,
			ButtonNumberStyle.Render(fmt.Sprintf("%d", i+1))+
				ButtonLabelStyle.Render(" "+button.Label))
	}
	return "  " + strings.Join(parts, "   ")
}

// renderInputArea renders the input line.
func (m Model) renderInputArea() string {
	return InputAreaStyle.Width(m.width - 3).Render(m.textinput.View())
}

// renderFooter renders status on the left and shortcuts on the right.
func (m Model) renderFooter() string {
	var left string

	if m.sending {
		left = StatusActiveStyle.Render(m.pulseGlyph()+" ") +
			m.spinner.View() + " " +
			ShortcutDescStyle.Render("sending request")
	} else {
		left = FooterAppNameStyle.Render("Rocket") + FooterInfoStyle.Render("request builder")
	}

	var parts []string
	if !m.sending {
		parts = append(parts, ShortcutKeyStyle.Render("↑↓")+ShortcutDescStyle.Render(" history"))
	}
	parts = append(parts, ShortcutKeyStyle.Render("ctrl+l")+ShortcutDescStyle.Render(" clear"))
	parts = append(parts, ShortcutKeyStyle.Render("ctrl+y")+ShortcutDescStyle.Render(" copy"))
	parts = append(parts, ShortcutKeyStyle.Render("ctrl+d")+ShortcutDescStyle.Render(" diff"))
	right := strings.Join(parts, "    ")

	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 2 {
		gap = 2
	}

	return FooterStyle.Width(m.width).Render(left + strings.Repeat(" ", gap) + right)
}

// pulseGlyph picks the in-flight indicator frame from the spring position.
func (m Model) pulseGlyph() string {
	switch {
	case m.animPos > 0.66:
		return "●"
	case m.animPos > 0.33:
		return "◉"
	default:
		return "○"
	}
}
