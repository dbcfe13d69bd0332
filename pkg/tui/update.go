package tui

import (
	"context"
	"math"
	"time"

	"github.com/apirocket/rocket/pkg/chat"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

// dispatch runs one event through the engine off the UI goroutine and sends
// the reply back via the program. Sends can block for up to the executor
// timeout, so they must never run inside Update.
func dispatch(engine *chat.Engine, ev chat.Event) tea.Cmd {
	fromSend := ev.Kind == chat.EventAction && ev.Action == chat.ActionSendRequest
	return func() tea.Msg {
		go func() {
			reply := engine.Handle(context.Background(), ev)
			globalProgram.Send(replyMsg{reply: reply, fromSend: fromSend})
		}()
		return nil
	}
}

// animTick schedules the next spring animation frame.
func animTick() tea.Cmd {
	return tea.Tick(time.Second/60, func(t time.Time) tea.Msg {
		return animTickMsg(t)
	})
}

// Update handles all messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		updatedModel, cmd := m.handleKeyMsg(msg)
		if cmd != nil {
			return updatedModel, cmd
		}
		m = updatedModel

	case tea.WindowSizeMsg:
		m = m.handleWindowResize(msg)

	case replyMsg:
		m = m.handleReply(msg)

	case animTickMsg:
		if m.sending {
			m.animPos, m.animVel = m.animSpring.Update(m.animPos, m.animVel, m.animTarget)
			if math.Abs(m.animPos-m.animTarget) < 0.05 {
				m.animTarget = 1 - m.animTarget
			}
			cmds = append(cmds, animTick())
		}

	case spinner.TickMsg:
		if m.sending {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			cmds = append(cmds, cmd)
		}
	}

	// Update textinput (for regular character input)
	if !m.sending {
		var cmd tea.Cmd
		m.textinput, cmd = m.textinput.Update(msg)
		cmds = append(cmds, cmd)
	}

	// Update viewport
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

// handleWindowResize adjusts the layout when the terminal is resized.
func (m Model) handleWindowResize(msg tea.WindowSizeMsg) Model {
	m.width = msg.Width
	m.height = msg.Height

	inputHeight := 1
	buttonsHeight := 1
	footerHeight := 1
	margins := 3

	viewportHeight := m.height - inputHeight - buttonsHeight - footerHeight - margins
	if viewportHeight < 5 {
		viewportHeight = 5
	}

	if !m.ready {
		m.viewport = viewport.New(m.width-2, viewportHeight)
		m.viewport.SetContent("")
		m.ready = true
	} else {
		m.viewport.Width = m.width - 2
		m.viewport.Height = viewportHeight
	}

	m.textinput.Width = m.width - 6
	m.updateGlamourWidth(m.width - 4)
	m.updateViewportContent()

	return m
}

// handleReply appends the engine's reply and swaps in its button set.
func (m Model) handleReply(msg replyMsg) Model {
	m.sending = false
	m.logs = append(m.logs, logEntry{Type: "bot", Content: msg.reply.Text})
	m.buttons = msg.reply.Buttons

	if msg.fromSend {
		m.responses = append(m.responses, msg.reply.Text)
		// Only the last two matter for diffing.
		if len(m.responses) > 2 {
			m.responses = m.responses[len(m.responses)-2:]
		}
	}

	m.updateViewportContent()
	return m
}
