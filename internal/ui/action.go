package ui

import (
	"bjcounter/internal/counter"

	tea "github.com/charmbracelet/bubbletea"
)

// Action is a logical user action. Keys and buttons both resolve to one.
type Action int

const (
	ActionIncrement Action = iota
	ActionNoOp
	ActionDecrement
	ActionDeleteLast
	ActionReset
)

func (a Action) String() string {
	switch a {
	case ActionIncrement:
		return "increment"
	case ActionNoOp:
		return "no-op"
	case ActionDecrement:
		return "decrement"
	case ActionDeleteLast:
		return "delete-last"
	case ActionReset:
		return "reset"
	default:
		return "unknown"
	}
}

// DebounceKey identifies the action to the input filter. The key press and
// the button for an action share one identifier, so a click followed by a
// key press within the interval counts as a repeat.
func (a Action) DebounceKey() string {
	switch a {
	case ActionIncrement:
		return "a"
	case ActionNoOp:
		return "s"
	case ActionDecrement:
		return "d"
	case ActionDeleteLast:
		return "delete"
	case ActionReset:
		return "r"
	default:
		return ""
	}
}

// ButtonLabel is the text shown on the action's button.
func (a Action) ButtonLabel() string {
	switch a {
	case ActionIncrement, ActionNoOp, ActionDecrement:
		t, _ := a.Tally()
		return t.Label()
	case ActionDeleteLast:
		return "Delete Last (Del)"
	case ActionReset:
		return "Reset All (R)"
	default:
		return "?"
	}
}

// Tally returns the counter tally for the three history-producing actions.
func (a Action) Tally() (counter.Tally, bool) {
	switch a {
	case ActionIncrement:
		return counter.Increment, true
	case ActionNoOp:
		return counter.NoOp, true
	case ActionDecrement:
		return counter.Decrement, true
	default:
		return 0, false
	}
}

// TriggerSource records where a trigger came from.
type TriggerSource int

const (
	SourceKey TriggerSource = iota
	SourceButton
)

func (s TriggerSource) String() string {
	switch s {
	case SourceKey:
		return "key"
	case SourceButton:
		return "button"
	default:
		return "unknown"
	}
}

// trigger returns a command producing a TriggerMsg for a.
func trigger(a Action, src TriggerSource) tea.Cmd {
	return func() tea.Msg { return TriggerMsg{Action: a, Source: src} }
}
