package pipeline

import "sync/atomic"

// State is the driver's position in its run loop.
type State int32

const (
	Initializing State = iota
	Generating
	Flushing
	Complete
	ShuttingDown
	Failed
)

func (s State) String() string {
	switch s {
	case Initializing:
		return "initializing"
	case Generating:
		return "generating"
	case Flushing:
		return "flushing"
	case Complete:
		return "complete"
	case ShuttingDown:
		return "shutting_down"
	case Failed:
		return "failed"
	}
	return "unknown"
}

// Terminal reports whether Run has returned from this state.
func (s State) Terminal() bool {
	return s == Complete || s == ShuttingDown || s == Failed
}

type stateBox struct{ v atomic.Int32 }

func (b *stateBox) load() State { return State(b.v.Load()) }

// swap stores s and returns the previous state.
func (b *stateBox) swap(s State) State { return State(b.v.Swap(int32(s))) }
