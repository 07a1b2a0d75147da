package formatter

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Gruvbox-inspired color palette.
var (
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

// Predefined lipgloss styles.
var (
	StyleYellow      = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleYellowBold  = lipgloss.NewStyle().Foreground(ColorYellow).Bold(true)
	StyleRed         = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue        = lipgloss.NewStyle().Foreground(ColorBlue)
	StyleDim         = lipgloss.NewStyle().Foreground(ColorDim)
	StyleHeader      = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold        = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
	StylePlaceholder = lipgloss.NewStyle().Foreground(ColorDim).Italic(true)
)

// Header renders a section header with the orange header style and an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", len(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

// Dim renders text in the muted/dim color.
func Dim(text string) string {
	return StyleDim.Render(text)
}

// Bold renders text in bold with the foreground color.
func Bold(text string) string {
	return StyleBold.Render(text)
}

// Warning renders a user-facing warning such as a rejected delete.
func Warning(text string) string {
	return StyleYellow.Render("! " + text)
}

// CopyBadge renders the "copy #n" label shown beside top-level copies.
func CopyBadge(count int) string {
	return StyleBlue.Render(fmt.Sprintf("[ copy #%d ]", count))
}
