// Package ui is the Bubble Tea front end of the counter.
//
// AppModel owns a counter.State and is the only caller of its mutating
// operations. Keys and mouse clicks on buttons are resolved to a logical
// Action, filtered per action by a debounce.Debouncer, and dispatched
// through an explicit Action -> handler table. Reset is gated by a
// ConfirmModal; delete-last commits only when the display refresh succeeds.
package ui
