package counter

import "fmt"

// Tally is one of the history-producing actions. Its label is user-visible,
// so NoOp is kept distinct even though its delta is zero.
type Tally int

const (
	Increment Tally = iota
	NoOp
	Decrement
)

// Delta returns the signed change the tally applies to the running total.
func (t Tally) Delta() int {
	switch t {
	case Increment:
		return 1
	case NoOp:
		return 0
	case Decrement:
		return -1
	default:
		panic(fmt.Sprintf("counter: unknown tally %d", int(t)))
	}
}

// Label returns the history label ("+1", "+0", "-1").
func (t Tally) Label() string {
	switch t {
	case Increment:
		return "+1"
	case NoOp:
		return "+0"
	case Decrement:
		return "-1"
	default:
		return "Unknown"
	}
}

func (t Tally) String() string {
	switch t {
	case Increment:
		return "increment"
	case NoOp:
		return "no-op"
	case Decrement:
		return "decrement"
	default:
		return "unknown"
	}
}
