package ui

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

// Style selects the colour and weight of a panel
type Style int

const (
	// StyleInfo is for progress and informational messages (bold cyan)
	StyleInfo Style = iota
	// StyleSuccess is for the fetched joke (green)
	StyleSuccess
	// StyleError is for failures (bold red)
	StyleError
)

// Color palette. ANSI colours follow the user's terminal theme.
var (
	InfoColor    = lipgloss.Color("6") // Cyan
	SuccessColor = lipgloss.Color("2") // Green
	ErrorColor   = lipgloss.Color("1") // Red
)

// Layout constants
const (
	MinTerminalWidth     = 40  // Minimum panel width
	MaxContentWidth      = 100 // Maximum panel width before capping
	DefaultTerminalWidth = 80  // Used when stdout is not a terminal
	PanelPadding         = 1   // Horizontal padding inside panels
)

// String returns the style name
func (s Style) String() string {
	switch s {
	case StyleInfo:
		return "info"
	case StyleSuccess:
		return "success"
	case StyleError:
		return "error"
	default:
		return fmt.Sprintf("Style(%d)", int(s))
	}
}

// Color returns the foreground colour used for the border and text
func (s Style) Color() lipgloss.Color {
	switch s {
	case StyleSuccess:
		return SuccessColor
	case StyleError:
		return ErrorColor
	default:
		return InfoColor
	}
}

// Bold reports whether panel text is rendered bold
func (s Style) Bold() bool {
	return s == StyleInfo || s == StyleError
}

// textStyle returns the lipgloss style applied to panel text
func (s Style) textStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(s.Color()).
		Bold(s.Bold())
}

// GetTerminalWidth returns the current terminal width, with fallback
func GetTerminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return DefaultTerminalWidth
	}
	return clampWidth(width)
}

func clampWidth(width int) int {
	if width < MinTerminalWidth {
		return MinTerminalWidth
	}
	if width > MaxContentWidth {
		return MaxContentWidth
	}
	return width
}
