package ui

import (
	"context"
	"errors"
	"slices"
	"testing"
	"time"

	"bjcounter/internal/counter"
	"bjcounter/internal/telemetry"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testClock struct {
	t time.Time
}

func (c *testClock) now() time.Time { return c.t }

func (c *testClock) advance(d time.Duration) { c.t = c.t.Add(d) }

type recordingObserver struct {
	events []telemetry.ActionEvent
}

func (o *recordingObserver) RecordAction(_ context.Context, ev telemetry.ActionEvent) {
	o.events = append(o.events, ev)
}

type failingDisplay struct {
	err   error
	panic bool
	calls int
}

func (d *failingDisplay) Refresh(counter.Snapshot) error {
	d.calls++
	if d.panic {
		panic("display exploded")
	}
	return d.err
}

func newTestApp(t *testing.T) (*AppModel, *appModelAdapter, *testClock) {
	t.Helper()
	clk := &testClock{t: time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)}
	m := NewAppModel(Options{Debounce: 50 * time.Millisecond, Clock: clk.now})
	return m, m.AsTeaModel().(*appModelAdapter), clk
}

// press sends key s and then lets the debounce window pass.
func press(a *appModelAdapter, clk *testClock, s string) tea.Cmd {
	_, cmd := a.Update(keyMsg(s))
	clk.advance(100 * time.Millisecond)
	return cmd
}

func zoneFor(t *testing.T, m *AppModel, act Action) buttonZone {
	t.Helper()
	for _, z := range m.zones {
		if z.action == act {
			return z
		}
	}
	t.Fatalf("no button zone for %s", act)
	return buttonZone{}
}

func click(a *appModelAdapter, z buttonZone) tea.Cmd {
	_, cmd := a.Update(tea.MouseMsg{
		X:      z.x0 + 1,
		Y:      z.y0 + 1,
		Action: tea.MouseActionPress,
		Button: tea.MouseButtonLeft,
	})
	return cmd
}

func TestApp_ScenarioA_KeysUpdateStateAndHistory(t *testing.T) {
	m, a, clk := newTestApp(t)

	press(a, clk, "a")
	press(a, clk, "a")
	press(a, clk, "d")

	assert.Equal(t, 1, m.State.Current())
	assert.Equal(t, 3, m.State.Presses())
	assert.Equal(t, 3, m.history.Lines())

	out := a.View()
	assert.Contains(t, out, "Total Button Presses: 3")
	assert.Contains(t, out, "3. -1 (Total: 1)")
	assert.Contains(t, out, "1. +1 (Total: 1)")
}

func TestApp_ScenarioB_DeleteKeyUndoes(t *testing.T) {
	m, a, clk := newTestApp(t)
	press(a, clk, "a")
	press(a, clk, "a")
	press(a, clk, "d")

	press(a, clk, "delete")

	assert.Equal(t, 2, m.State.Current())
	assert.Equal(t, 2, m.State.Presses())
	assert.NotContains(t, a.View(), "3. -1")
}

func TestApp_ScenarioD_RepeatWithinIntervalIsDropped(t *testing.T) {
	m, a, clk := newTestApp(t)

	a.Update(keyMsg("a"))
	clk.advance(10 * time.Millisecond)
	a.Update(keyMsg("a"))

	assert.Equal(t, 1, m.State.Presses())

	clk.advance(50 * time.Millisecond)
	a.Update(keyMsg("a"))
	assert.Equal(t, 2, m.State.Presses())
}

func TestApp_DifferentActionsAreNotDebouncedTogether(t *testing.T) {
	m, a, _ := newTestApp(t)

	a.Update(keyMsg("a"))
	a.Update(keyMsg("d"))
	a.Update(keyMsg("s"))

	assert.Equal(t, 3, m.State.Presses())
	assert.Equal(t, 0, m.State.Current())
}

func TestApp_ButtonAndKeyShareDebounce(t *testing.T) {
	m, a, clk := newTestApp(t)
	a.View()

	click(a, zoneFor(t, m, ActionIncrement))
	clk.advance(10 * time.Millisecond)
	a.Update(keyMsg("a"))
	assert.Equal(t, 1, m.State.Presses(), "key right after click is a repeat")

	clk.advance(60 * time.Millisecond)
	a.View()
	click(a, zoneFor(t, m, ActionDecrement))
	assert.Equal(t, 2, m.State.Presses())
	assert.Equal(t, 0, m.State.Current())
}

func TestApp_ButtonsTriggerEveryAction(t *testing.T) {
	m, a, clk := newTestApp(t)

	for _, act := range []Action{ActionIncrement, ActionNoOp, ActionIncrement} {
		a.View()
		click(a, zoneFor(t, m, act))
		clk.advance(100 * time.Millisecond)
	}
	require.Equal(t, 3, m.State.Presses())
	require.Equal(t, 2, m.State.Current())

	a.View()
	click(a, zoneFor(t, m, ActionDeleteLast))
	assert.Equal(t, 1, m.State.Current())

	a.View()
	click(a, zoneFor(t, m, ActionReset))
	assert.NotNil(t, m.Modal, "reset button should open the confirmation")
}

func TestApp_ClickOutsideButtonsDoesNothing(t *testing.T) {
	m, a, _ := newTestApp(t)
	a.View()

	a.Update(tea.MouseMsg{X: 0, Y: 0, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	assert.Equal(t, 0, m.State.Presses())
}

func TestApp_DeleteOnEmptyHistory(t *testing.T) {
	m, a, _ := newTestApp(t)
	v := m.State.Version()

	_, cmd := a.Update(keyMsg("delete"))

	assert.NotNil(t, cmd, "expected a notice timer")
	assert.Equal(t, v, m.State.Version())
	assert.Equal(t, 0, m.State.Presses())
	assert.Contains(t, a.View(), "Nothing to undo")
}

func TestApp_DeleteWithFailingDisplayKeepsState(t *testing.T) {
	m, a, clk := newTestApp(t)
	press(a, clk, "a")
	press(a, clk, "d")
	before := m.State.Snapshot()

	d := &failingDisplay{err: errors.New("renderer offline")}
	m.Display = d
	press(a, clk, "delete")

	assert.Equal(t, 1, d.calls)
	assert.Equal(t, before, m.State.Snapshot())
	assert.Contains(t, a.View(), "An error occurred during deletion: renderer offline")
}

func TestApp_DeleteWithPanickingDisplayKeepsState(t *testing.T) {
	m, a, clk := newTestApp(t)
	press(a, clk, "s")
	before := m.State.Snapshot()

	m.Display = &failingDisplay{panic: true}
	assert.NotPanics(t, func() { press(a, clk, "backspace") })

	assert.Equal(t, before, m.State.Snapshot())
	assert.Contains(t, a.View(), "display exploded")
}

func TestApp_ApplyWithFailingDisplayStillCounts(t *testing.T) {
	m, a, clk := newTestApp(t)
	m.Display = &failingDisplay{err: errors.New("gone")}

	press(a, clk, "a")

	assert.Equal(t, 1, m.State.Current())
	assert.Contains(t, a.View(), "Display refresh failed: gone")
}

func TestApp_ResetRequiresConfirmation(t *testing.T) {
	m, a, clk := newTestApp(t)
	press(a, clk, "a")
	press(a, clk, "d")
	press(a, clk, "d")

	press(a, clk, "r")
	require.NotNil(t, m.Modal)
	assert.Equal(t, 3, m.State.Presses(), "reset must wait for confirmation")
	assert.Contains(t, a.View(), "Confirm Reset")

	_, cmd := a.Update(keyMsg("y"))
	require.NotNil(t, cmd)
	a.Update(cmd())

	assert.Nil(t, m.Modal)
	assert.Equal(t, 0, m.State.Current())
	assert.Equal(t, 0, m.State.Presses())
	assert.Empty(t, m.State.History())
	assert.Equal(t, 0, m.history.Lines())
	assert.Contains(t, a.View(), "All data has been reset.")
}

func TestApp_ResetCancelWithEsc(t *testing.T) {
	m, a, clk := newTestApp(t)
	press(a, clk, "a")
	press(a, clk, "r")
	require.NotNil(t, m.Modal)

	_, cmd := a.Update(keyMsg("esc"))
	require.NotNil(t, cmd)
	a.Update(cmd())

	assert.Nil(t, m.Modal)
	assert.Equal(t, 1, m.State.Current())
}

func TestApp_InputIgnoredWhileModalOpen(t *testing.T) {
	m, a, clk := newTestApp(t)
	a.View()
	z := zoneFor(t, m, ActionIncrement)
	press(a, clk, "r")
	require.NotNil(t, m.Modal)

	press(a, clk, "a")
	click(a, z)
	a.Update(TriggerMsg{Action: ActionDecrement, Source: SourceButton})

	assert.Equal(t, 0, m.State.Presses())
}

func TestApp_LeaderDeleteLast(t *testing.T) {
	m, a, clk := newTestApp(t)
	press(a, clk, "a")
	press(a, clk, "a")

	press(a, clk, " ")
	assert.Contains(t, a.View(), "Delete last")
	press(a, clk, "u")

	assert.Equal(t, 1, m.State.Current())
}

func TestApp_QuitKey(t *testing.T) {
	_, a, _ := newTestApp(t)
	_, cmd := a.Update(keyMsg("q"))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestApp_NoticeClearsOnlyMatchingSeq(t *testing.T) {
	m, a, _ := newTestApp(t)
	a.Update(keyMsg("delete"))
	seq := m.notice.seq

	a.Update(clearNoticeMsg{seq: seq - 1})
	assert.Equal(t, "Nothing to undo", m.notice.text)

	a.Update(clearNoticeMsg{seq: seq})
	assert.Empty(t, m.notice.text)
}

func TestApp_ObserverSeesOutcomes(t *testing.T) {
	m, a, clk := newTestApp(t)
	obs := &recordingObserver{}
	m.Observer = obs

	a.Update(keyMsg("a"))
	a.Update(keyMsg("a")) // debounced
	clk.advance(time.Second)
	a.Update(keyMsg("delete"))
	clk.advance(time.Second)
	a.Update(keyMsg("delete"))

	outcomes := make([]telemetry.Outcome, 0, len(obs.events))
	for _, ev := range obs.events {
		outcomes = append(outcomes, ev.Outcome)
	}
	assert.Equal(t, []telemetry.Outcome{
		telemetry.OutcomeApplied,
		telemetry.OutcomeDebounced,
		telemetry.OutcomeApplied,
		telemetry.OutcomeEmpty,
	}, outcomes)
	assert.Equal(t, "increment", obs.events[0].Action)
	assert.Equal(t, "+1", obs.events[0].Label)
	assert.Equal(t, 1, obs.events[0].Total)
}

func TestApp_WindowResizeGrowsHistory(t *testing.T) {
	m, a, clk := newTestApp(t)
	a.Update(tea.WindowSizeMsg{Width: 80, Height: 60})
	for range 20 {
		press(a, clk, "s")
	}
	lines := slices.Collect(m.State.RenderHistory())
	out := a.View()
	assert.Contains(t, out, lines[0])
	assert.Contains(t, out, lines[len(lines)-1])
}
