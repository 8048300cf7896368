package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// Panel is a bordered block of text with an optional title in its top border
type Panel struct {
	Text  string // Panel body, may span several lines
	Title string // Shown centred in the top border; empty for none
	Style Style  // Colour and weight
	Width int    // Total width including borders
}

// NewPanel creates a panel sized to the terminal
func NewPanel(text string, style Style) *Panel {
	return &Panel{
		Text:  text,
		Style: style,
		Width: GetTerminalWidth(),
	}
}

// SetTitle sets the title shown in the top border
func (p *Panel) SetTitle(title string) *Panel {
	p.Title = title
	return p
}

// SetWidth sets the total panel width for responsive rendering
func (p *Panel) SetWidth(width int) *Panel {
	p.Width = width
	return p
}

// Render returns the styled panel as a string
func (p *Panel) Render() string {
	width := clampWidth(p.Width)
	border := lipgloss.RoundedBorder()

	// The top edge is drawn by renderTop so the title can sit inside it
	body := p.Style.textStyle().
		Border(border, false, true, true, true).
		BorderForeground(p.Style.Color()).
		Width(width-2). // Account for border characters
		Padding(0, PanelPadding).
		Render(p.Text)

	return p.renderTop(border, width) + "\n" + body
}

// renderTop draws the top border, with the title centred when set
func (p *Panel) renderTop(border lipgloss.Border, width int) string {
	inner := width - 2
	edge := lipgloss.NewStyle().Foreground(p.Style.Color())

	title := strings.Join(strings.Fields(p.Title), " ")
	if title == "" {
		return edge.Render(border.TopLeft + strings.Repeat(border.Top, inner) + border.TopRight)
	}

	// Keep at least one border segment on each side of the title
	title = " " + ansi.Truncate(title, inner-4, "…") + " "
	fill := inner - ansi.StringWidth(title)
	left := fill / 2
	right := fill - left

	titleStyle := p.Style.textStyle().Bold(true)

	return edge.Render(border.TopLeft+strings.Repeat(border.Top, left)) +
		titleStyle.Render(title) +
		edge.Render(strings.Repeat(border.Top, right)+border.TopRight)
}

// String implements fmt.Stringer
func (p *Panel) String() string {
	return p.Render()
}

// Fprint writes the rendered panel followed by a newline
func (p *Panel) Fprint(w io.Writer) {
	_, _ = fmt.Fprintln(w, p.Render())
}

// --- Convenience functions for quick rendering ---

// Present renders text in a panel sized to the terminal and writes it to w.
// An empty title draws a plain top border.
func Present(w io.Writer, text, title string, style Style) {
	NewPanel(text, style).SetTitle(title).Fprint(w)
}
