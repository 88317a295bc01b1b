package ui

import "github.com/charmbracelet/lipgloss"

// Theme colors used throughout the UI
const (
	ColorAccent    = "86"  // Cyan/green - titles, the running total
	ColorHighlight = "205" // Magenta - borders, key hints
	ColorDanger    = "196" // Red - decrement, errors
	ColorMuted     = "241" // Gray - hints
	ColorText      = "252" // Light gray - normal text
	ColorWarning   = "208" // Orange - warning details
	ColorPlus      = "33"  // Blue - increment button
	ColorZero      = "220" // Amber - no-op button
	ColorControl   = "245" // Slate - delete/reset buttons
)

// Styles contains shared style definitions used across views and modals.
var Styles = struct {
	Title        lipgloss.Style // Bold accent color - for main titles
	TitleWarning lipgloss.Style // Bold danger color - for warning titles

	Number    lipgloss.Style // The big running total box
	Box       lipgloss.Style // Standard box with rounded border
	BoxDanger lipgloss.Style // Confirmation box (danger border)

	Muted   lipgloss.Style
	Normal  lipgloss.Style
	Hint    lipgloss.Style
	Section lipgloss.Style // Section headers
	Empty   lipgloss.Style // Empty state text (muted, italic)
	Label   lipgloss.Style
	Details lipgloss.Style

	NoticeInfo  lipgloss.Style
	NoticeError lipgloss.Style
}{
	Title: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorAccent)),
	TitleWarning: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorDanger)),
	Number: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("255")).
		Background(lipgloss.Color("28")).
		Border(lipgloss.ThickBorder()).
		BorderForeground(lipgloss.Color(ColorAccent)).
		Padding(1, 6).
		Align(lipgloss.Center),
	Box: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorHighlight)).
		Padding(0, 1),
	BoxDanger: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorDanger)).
		Padding(1, 2).
		Margin(1),
	Muted: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
	Normal: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorText)),
	Hint: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
	Section: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorHighlight)),
	Empty: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)).
		Italic(true),
	Label: lipgloss.NewStyle(),
	Details: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorWarning)),
	NoticeInfo: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorAccent)),
	NoticeError: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorDanger)),
}

// buttonStyle returns the bordered style for an action button.
func buttonStyle(color string, wide bool) lipgloss.Style {
	s := lipgloss.NewStyle().
		Bold(true).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(color)).
		Foreground(lipgloss.Color(color)).
		Align(lipgloss.Center)
	if wide {
		return s.Padding(0, 3).Width(8)
	}
	return s.Padding(0, 1)
}
