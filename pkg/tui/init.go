package tui

import (
	"time"

	"github.com/apirocket/rocket/pkg/chat"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/harmonica"
	"github.com/charmbracelet/lipgloss"
)

// newSpinner creates a spinner with the Rocket style (dots animation).
func newSpinner() spinner.Model {
	sp := spinner.New()
	sp.Spinner = spinner.Spinner{
		Frames: []string{
			".       ",
			"..      ",
			"...     ",
			"....    ",
			".....   ",
			"......  ",
			"....... ",
			"........",
		},
		FPS: time.Second / 5,
	}
	sp.Style = lipgloss.NewStyle().Foreground(AccentColor)
	return sp
}

// newTextInput creates a text input matching the input area background.
func newTextInput() textinput.Model {
	ti := textinput.New()
	ti.Placeholder = "Type a message, a button number, or its label..."
	ti.Focus()
	ti.CharLimit = 4000
	ti.Width = 80
	ti.Prompt = ""

	ti.TextStyle = lipgloss.NewStyle().
		Foreground(TextColor).
		Background(InputAreaBg)
	ti.PlaceholderStyle = lipgloss.NewStyle().
		Foreground(DimColor).
		Background(InputAreaBg)
	ti.Cursor.Style = lipgloss.NewStyle().
		Foreground(AccentColor).
		Background(InputAreaBg)

	return ti
}

// newGlamourRenderer creates a glamour renderer for markdown replies.
func newGlamourRenderer() *glamour.TermRenderer {
	renderer, _ := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(80),
	)
	return renderer
}

// updateGlamourWidth recreates the glamour renderer with a new word wrap width.
// Called on terminal resize so markdown reflows correctly.
func (m *Model) updateGlamourWidth(width int) {
	if width < 40 {
		width = 40
	}
	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err == nil {
		m.renderer = renderer
	}
}

// InitialModel creates the initial TUI model around a conversation engine.
func InitialModel(engine *chat.Engine) Model {
	return Model{
		textinput:    newTextInput(),
		spinner:      newSpinner(),
		logs:         []logEntry{},
		engine:       engine,
		renderer:     newGlamourRenderer(),
		inputHistory: []string{},
		historyIdx:   -1,
		animSpring:   harmonica.NewSpring(harmonica.FPS(60), 5.0, 0.3),
		animTarget:   1,
	}
}

// Init starts the program: it fires the opening new_request event so the
// method menu is the first thing the user sees.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		tea.EnterAltScreen,
		textinput.Blink,
		m.spinner.Tick,
		dispatch(m.engine, chat.ActionTriggered(localUserID, chat.ActionNewRequest)),
	)
}
