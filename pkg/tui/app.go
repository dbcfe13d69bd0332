// Package tui is the bundled chat transport: a terminal conversation that
// feeds events into the request-building core and displays its replies.
//
// File organization:
// - app.go: Entry point (Run function)
// - model.go: Model struct and message types
// - init.go: Model initialization
// - update.go: Event handling and state updates
// - view.go: Rendering and display logic
// - keys.go: Keyboard input handling
// - styles.go: Visual styling (colors, borders, etc.)
package tui

import (
	"github.com/apirocket/rocket/pkg/chat"
	tea "github.com/charmbracelet/bubbletea"
)

// Run starts the terminal chat around the given conversation engine and
// blocks until the user quits.
func Run(engine *chat.Engine) error {
	m := InitialModel(engine)
	prog := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())

	// Store program reference for goroutines to send messages
	globalProgram.Set(prog)

	_, err := prog.Run()

	// Clear program reference after run completes
	globalProgram.Set(nil)

	return err
}
