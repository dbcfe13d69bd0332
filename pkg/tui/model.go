package tui

import (
	"sync"
	"time"

	"github.com/apirocket/rocket/pkg/chat"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/harmonica"
)

// localUserID keys the single session of this terminal transport. The chat
// core is multi-user; a terminal has exactly one user.
const localUserID = "local"

// logEntry represents a single message in the chat log
type logEntry struct {
	Type    string // "user", "bot", "error", "diff"
	Content string
}

// Model is the Bubble Tea model for the Rocket chat transport.
// It manages the terminal interface state:
// - viewport for the scrollable conversation
// - textinput for user input
// - spinner + harmonica pulse while a request is in flight
// - the current button set offered by the last reply
type Model struct {
	viewport     viewport.Model
	textinput    textinput.Model
	spinner      spinner.Model
	logs         []logEntry
	sending      bool
	width        int
	height       int
	engine       *chat.Engine
	ready        bool
	renderer     *glamour.TermRenderer
	inputHistory []string // history of user inputs
	historyIdx   int      // current position in history (-1 = new input)
	savedInput   string   // saved input when navigating history

	// Buttons offered by the most recent reply, rendered as a numbered row.
	buttons []chat.Button

	// Rendered outcomes of send actions, newest last. Feeds the clipboard
	// copy and response diff bindings.
	responses []string

	// Animation state (harmonica spring for the in-flight pulse)
	animSpring harmonica.Spring
	animPos    float64
	animVel    float64
	animTarget float64
}

// replyMsg wraps a core reply produced off the UI goroutine
type replyMsg struct {
	reply    chat.Reply
	fromSend bool
}

// animTickMsg drives the harmonica spring animation
type animTickMsg time.Time

// programRef holds the program reference for sending messages from goroutines.
// Using a struct with mutex for thread-safe access instead of a bare global variable.
type programRef struct {
	mu      sync.RWMutex
	program *tea.Program
}

// Set updates the program reference (thread-safe).
func (p *programRef) Set(prog *tea.Program) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.program = prog
}

// Send sends a message to the program if it exists (thread-safe).
func (p *programRef) Send(msg tea.Msg) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.program != nil {
		p.program.Send(msg)
	}
}

// Global program reference with thread-safe accessors.
var globalProgram = &programRef{}
