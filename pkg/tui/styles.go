package tui

import (
	"github.com/charmbracelet/lipgloss"
)

// Minimal color palette
var (
	DimColor    = lipgloss.Color("#6c6c6c")
	TextColor   = lipgloss.Color("#e0e0e0")
	AccentColor = lipgloss.Color("#7aa2f7")
	ErrorColor  = lipgloss.Color("#f7768e")
	ButtonColor = lipgloss.Color("#9ece6a")

	InputAreaBg = lipgloss.Color("#1f2335")
)

// Log entry styles
var (
	UserMessageStyle = lipgloss.NewStyle().
				Foreground(TextColor).
				BorderStyle(lipgloss.ThickBorder()).
				BorderLeft(true).
				BorderForeground(AccentColor).
				PaddingLeft(1)

	BotMessageStyle = lipgloss.NewStyle().
			Foreground(TextColor)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(ErrorColor)
)

// Button row styles
var (
	ButtonNumberStyle = lipgloss.NewStyle().
				Foreground(AccentColor).
				Bold(true)

	ButtonLabelStyle = lipgloss.NewStyle().
				Foreground(ButtonColor)
)

// Input and footer styles
var (
	InputAreaStyle = lipgloss.NewStyle().
			Background(InputAreaBg).
			Padding(0, 1)

	FooterStyle = lipgloss.NewStyle().
			Foreground(DimColor)

	FooterAppNameStyle = lipgloss.NewStyle().
				Foreground(AccentColor).
				Bold(true).
				PaddingRight(1)

	FooterInfoStyle = lipgloss.NewStyle().
			Foreground(DimColor)

	ShortcutKeyStyle = lipgloss.NewStyle().
				Foreground(TextColor)

	ShortcutDescStyle = lipgloss.NewStyle().
				Foreground(DimColor)

	StatusActiveStyle = lipgloss.NewStyle().
				Foreground(AccentColor)

	StatusIdleStyle = lipgloss.NewStyle().
			Foreground(DimColor)
)
