// Package ui renders bordered, styled panels for the jokebox CLI.
//
// Output follows a "run once and exit" pattern: each panel is rendered to a
// string with Lipgloss and written in one go, with no interactive redraws.
//
// A Panel has a body, an optional title drawn in the top border, and a Style:
//
//   - StyleInfo: bold cyan, used for the "Fetching a random joke..." banner
//   - StyleSuccess: green, used for the joke itself
//   - StyleError: bold red, used for "Error: ..." messages
//
// Example:
//
//	ui.Present(os.Stdout, "Why did the chicken cross the road?\nTo get to the other side.",
//	    "Your Joke", ui.StyleSuccess)
//
// renders
//
//	╭──────────────── Your Joke ────────────────╮
//	│ Why did the chicken cross the road?       │
//	│ To get to the other side.                 │
//	╰───────────────────────────────────────────╯
//
// Panels fill the terminal width, clamped to [MinTerminalWidth,
// MaxContentWidth], or DefaultTerminalWidth when stdout is not a terminal.
package ui
