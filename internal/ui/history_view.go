package ui

import (
	"strings"

	"bjcounter/internal/counter"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	defaultHistoryWidth  = 40
	defaultHistoryHeight = 10
)

// Display re-renders counter state after a change. A failing Refresh during
// delete-last aborts the delete.
type Display interface {
	Refresh(counter.Snapshot) error
}

// HistoryView shows rendered history lines, newest first, with scrollback.
type HistoryView struct {
	viewport viewport.Model
	lines    int
}

var (
	_ View    = (*HistoryView)(nil)
	_ Display = (*HistoryView)(nil)
)

// NewHistoryView creates an empty history panel.
func NewHistoryView() *HistoryView {
	h := &HistoryView{viewport: viewport.New(defaultHistoryWidth, defaultHistoryHeight)}
	h.viewport.SetContent(Styles.Empty.Render("No actions yet"))
	return h
}

// Refresh rebuilds the content from snap and scrolls back to the newest entry.
func (h *HistoryView) Refresh(snap counter.Snapshot) error {
	var lines []string
	for line := range snap.RenderHistory() {
		lines = append(lines, line)
	}
	h.lines = len(lines)
	if h.lines == 0 {
		h.viewport.SetContent(Styles.Empty.Render("No actions yet"))
	} else {
		h.viewport.SetContent(strings.Join(lines, "\n"))
	}
	h.viewport.GotoTop()
	return nil
}

// SetSize resizes the scroll area.
func (h *HistoryView) SetSize(w, height int) {
	h.viewport.Width = w
	h.viewport.Height = height
}

// Lines returns the number of history lines currently shown.
func (h *HistoryView) Lines() int {
	return h.lines
}

// Init implements View.
func (h *HistoryView) Init() tea.Cmd {
	return nil
}

// Update implements View. Handles scroll keys and the mouse wheel.
func (h *HistoryView) Update(msg tea.Msg) (View, tea.Cmd) {
	var cmd tea.Cmd
	h.viewport, cmd = h.viewport.Update(msg)
	return h, cmd
}

// View implements View.
func (h *HistoryView) View() string {
	return h.viewport.View()
}
