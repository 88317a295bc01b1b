package counter

import (
	"fmt"
	"iter"
)

// HistoryEntry records one applied tally. It holds enough to display the
// action and to reverse it.
type HistoryEntry struct {
	Label    string
	Delta    int
	Previous int // current number before the entry was applied
}

// Total returns the running total right after the entry was applied.
func (e HistoryEntry) Total() int {
	return e.Previous + e.Delta
}

// State is the counter: running total, press count and action history.
type State struct {
	current int
	presses int
	history []HistoryEntry
	version uint64
}

// New returns a State at zero with empty history.
func New() *State {
	return &State{}
}

// Current returns the running total.
func (s *State) Current() int { return s.current }

// Presses returns the number of recorded entries.
func (s *State) Presses() int { return s.presses }

// Version changes on every mutation.
func (s *State) Version() uint64 { return s.version }

// History returns a copy of the entries, oldest first.
func (s *State) History() []HistoryEntry {
	out := make([]HistoryEntry, len(s.history))
	copy(out, s.history)
	return out
}

// Apply records t and adds its delta to the running total.
func (s *State) Apply(t Tally) HistoryEntry {
	e := HistoryEntry{Label: t.Label(), Delta: t.Delta(), Previous: s.current}
	s.history = append(s.history, e)
	s.current += e.Delta
	s.presses++
	s.version++
	return e
}

// UndoLast removes the most recent entry and reverses it exactly.
// It returns false and leaves the state untouched when there is nothing to undo.
func (s *State) UndoLast() (HistoryEntry, bool) {
	if len(s.history) == 0 {
		return HistoryEntry{}, false
	}
	last := s.history[len(s.history)-1]
	s.history = s.history[:len(s.history)-1]
	s.current -= last.Delta
	s.presses--
	s.version++
	return last, true
}

// TryUndoLast hands the state the undo would produce to commit and only
// performs the undo when commit succeeds. A panic inside commit is returned
// as an error. The bool result is false when history is empty, in which
// case commit is not called.
func (s *State) TryUndoLast(commit func(Snapshot) error) (HistoryEntry, bool, error) {
	if len(s.history) == 0 {
		return HistoryEntry{}, false, nil
	}
	last := s.history[len(s.history)-1]
	next := Snapshot{
		Current: s.current - last.Delta,
		Presses: s.presses - 1,
		History: s.History()[:len(s.history)-1],
	}
	if err := safeCommit(commit, next); err != nil {
		return last, true, err
	}
	s.UndoLast()
	return last, true, nil
}

func safeCommit(commit func(Snapshot) error, snap Snapshot) (err error) {
	if commit == nil {
		return nil
	}
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic: %v", r)
		}
	}()
	return commit(snap)
}

// ResetAll zeroes the total and press count and clears history.
// Callers are expected to have confirmed the reset with the user.
func (s *State) ResetAll() {
	s.current = 0
	s.presses = 0
	s.history = nil
	s.version++
}

// Snapshot returns an independent copy of the current state.
func (s *State) Snapshot() Snapshot {
	return Snapshot{Current: s.current, Presses: s.presses, History: s.History()}
}

// RenderHistory yields display lines, most recent first.
func (s *State) RenderHistory() iter.Seq[string] {
	return renderHistory(s.history)
}

// Snapshot is a detached copy of counter state.
type Snapshot struct {
	Current int
	Presses int
	History []HistoryEntry
}

// RenderHistory yields display lines for the snapshot, most recent first.
func (s Snapshot) RenderHistory() iter.Seq[string] {
	return renderHistory(s.History)
}

// renderHistory formats entries as "{n}. {label} (Total: {total})" where n
// counts from the oldest entry starting at 1.
func renderHistory(entries []HistoryEntry) iter.Seq[string] {
	return func(yield func(string) bool) {
		for i := len(entries) - 1; i >= 0; i-- {
			e := entries[i]
			if !yield(fmt.Sprintf("%d. %s (Total: %d)", i+1, e.Label, e.Total())) {
				return
			}
		}
	}
}
