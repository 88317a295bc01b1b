// Package counter holds the tally state behind the blackjack counter.
//
// State keeps the running total, the number of recorded presses and the
// ordered history of entries. It is mutated only through Apply, UndoLast
// (or TryUndoLast) and ResetAll. Every mutation bumps Version so a display
// can tell when it needs to re-render.
//
// State is not safe for concurrent use; it is owned by the single
// event-dispatch loop of the host.
package counter
