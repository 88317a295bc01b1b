package ui

// TriggerMsg is sent when a key or button fires a logical action.
// It passes through the debounce filter before any handler runs.
type TriggerMsg struct {
	Action Action
	Source TriggerSource
}

// ConfirmResetMsg is sent when the user confirms the reset modal.
type ConfirmResetMsg struct{}

// DismissModalMsg is sent when user cancels a modal (Esc).
type DismissModalMsg struct{}

// ToggleHelpMsg switches between the short and full help bar.
type ToggleHelpMsg struct{}

// clearNoticeMsg clears the status notice if it is still the one with seq.
type clearNoticeMsg struct {
	seq int
}
