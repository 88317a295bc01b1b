package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"
)

// newHelpModel returns a help.Model styled like the rest of the UI.
func newHelpModel() help.Model {
	h := help.New()
	h.Styles.ShortKey = lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHighlight)).
		Bold(true)
	h.Styles.ShortDesc = Styles.Hint
	h.Styles.ShortSeparator = Styles.Hint
	h.Styles.FullKey = h.Styles.ShortKey
	h.Styles.FullDesc = Styles.Hint
	h.Styles.FullSeparator = Styles.Hint
	return h
}

// RenderKeybindHelp renders the help bar. While the leader key is pending,
// the next-level hints are shown in a box prefixed with the typed sequence.
func RenderKeybindHelp(h help.Model, km *KeyMap) string {
	if km.keyHandler == nil || !km.keyHandler.LeaderWaiting {
		return h.View(km)
	}
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorAccent)).
		Padding(0, 1)
	prefix := strings.Join(km.keyHandler.Buffer, " ")
	return boxStyle.Render(Styles.Hint.Render(prefix) + " " + h.ShortHelpView(km.ShortHelp()))
}
