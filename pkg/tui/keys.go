package tui

import (
	"strconv"
	"strings"

	"github.com/apirocket/rocket/pkg/chat"
	"github.com/atotto/clipboard"
	"github.com/aymanbagabas/go-udiff"
	tea "github.com/charmbracelet/bubbletea"
)

// handleKeyMsg processes keyboard input and returns the updated model and command.
// This centralizes all key handling logic for the TUI.
func (m Model) handleKeyMsg(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "esc":
		return m, tea.Quit

	case "ctrl+l":
		return m.handleClearScreen()

	case "ctrl+y":
		return m.handleCopyLastResponse()

	case "ctrl+d":
		return m.handleDiffResponses()

	case "ctrl+u":
		return m.handleClearInput()

	case "up":
		return m.handleHistoryUp()

	case "down":
		return m.handleHistoryDown()

	case "enter":
		return m.handleEnter()

	case "pgup", "pgdown", "home", "end":
		return m.handleViewportScroll(msg)

	default:
		return m, nil
	}
}

// handleClearScreen clears the conversation log.
func (m Model) handleClearScreen() (Model, tea.Cmd) {
	m.logs = []logEntry{}
	m.updateViewportContent()
	return m, nil
}

// handleCopyLastResponse copies the last request outcome to the clipboard.
func (m Model) handleCopyLastResponse() (Model, tea.Cmd) {
	if len(m.responses) > 0 {
		_ = clipboard.WriteAll(m.responses[len(m.responses)-1])
	}
	return m, nil
}

// handleDiffResponses shows a unified diff between the last two request
// outcomes, which makes spotting changed fields between resends easy.
func (m Model) handleDiffResponses() (Model, tea.Cmd) {
	if len(m.responses) < 2 {
		m.logs = append(m.logs, logEntry{Type: "error", Content: "Need two sent requests to diff responses."})
		m.updateViewportContent()
		return m, nil
	}

	diff := udiff.Unified("previous", "latest", m.responses[0], m.responses[1])
	if strings.TrimSpace(diff) == "" {
		diff = "Responses are identical."
	}
	m.logs = append(m.logs, logEntry{Type: "diff", Content: diff})
	m.updateViewportContent()
	return m, nil
}

// handleClearInput clears the current input and resets history navigation.
func (m Model) handleClearInput() (Model, tea.Cmd) {
	m.textinput.SetValue("")
	m.historyIdx = -1
	return m, nil
}

// handleHistoryUp navigates backwards through input history.
func (m Model) handleHistoryUp() (Model, tea.Cmd) {
	if m.sending || len(m.inputHistory) == 0 {
		return m, nil
	}

	if m.historyIdx == -1 {
		// Save current input before navigating
		m.savedInput = m.textinput.Value()
		m.historyIdx = len(m.inputHistory) - 1
	} else if m.historyIdx > 0 {
		m.historyIdx--
	}

	m.textinput.SetValue(m.inputHistory[m.historyIdx])
	m.textinput.CursorEnd()
	return m, nil
}

// handleHistoryDown navigates forwards through input history.
func (m Model) handleHistoryDown() (Model, tea.Cmd) {
	if m.sending || m.historyIdx == -1 {
		return m, nil
	}

	if m.historyIdx < len(m.inputHistory)-1 {
		m.historyIdx++
		m.textinput.SetValue(m.inputHistory[m.historyIdx])
	} else {
		// Return to saved input
		m.historyIdx = -1
		m.textinput.SetValue(m.savedInput)
	}

	m.textinput.CursorEnd()
	return m, nil
}

// handleEnter turns the typed input into a core event and dispatches it.
func (m Model) handleEnter() (Model, tea.Cmd) {
	if m.sending {
		return m, nil
	}

	userInput := strings.TrimSpace(m.textinput.Value())
	if userInput == "" {
		return m, nil
	}

	m.logs = append(m.logs, logEntry{Type: "user", Content: userInput})
	m.inputHistory = append(m.inputHistory, userInput)
	m.historyIdx = -1
	m.savedInput = ""
	m.textinput.SetValue("")

	event := m.resolveEvent(userInput)
	m.sending = true
	m.updateViewportContent()

	return m, tea.Batch(
		m.spinner.Tick,
		animTick(),
		dispatch(m.engine, event),
	)
}

// resolveEvent maps input onto the offered buttons: a number picks by
// position, a label (with or without its emoji) picks by name, and anything
// else is free text for the current step.
func (m Model) resolveEvent(input string) chat.Event {
	if n, err := strconv.Atoi(input); err == nil && n >= 1 && n <= len(m.buttons) {
		return m.buttons[n-1].Press(localUserID)
	}

	for _, button := range m.buttons {
		if matchesLabel(input, button.Label) {
			return button.Press(localUserID)
		}
	}

	return chat.TextReceived(localUserID, input)
}

// matchesLabel compares input against a button label, ignoring case and the
// label's leading emoji token.
func matchesLabel(input, label string) bool {
	if strings.EqualFold(input, label) {
		return true
	}
	fields := strings.Fields(label)
	if len(fields) > 1 {
		return strings.EqualFold(input, strings.Join(fields[1:], " "))
	}
	return false
}

// handleViewportScroll passes scroll events to the viewport.
func (m Model) handleViewportScroll(msg tea.KeyMsg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}
