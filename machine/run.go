package machine

import (
	"context"

	"github.com/0xmaddie/catenate/term"
)

// Status reports why Run stopped.
type Status int

const (
	// Quiescent means HasNext became false: a genuine normal form (or
	// residual) was reached.
	Quiescent Status = iota
	// StepLimitReached means limit steps ran without quiescence.
	StepLimitReached
	// ContextDone means ctx was cancelled before quiescence.
	ContextDone
	// LikelyDiverging means the hash-based loop heuristic saw the same
	// machine value recur within the tracked history window. This is
	// advisory only: a bounded ring can miss longer cycles, and it is
	// never certain proof of nontermination.
	LikelyDiverging
)

func (s Status) String() string {
	switch s {
	case Quiescent:
		return "quiescent"
	case StepLimitReached:
		return "step limit reached"
	case ContextDone:
		return "context done"
	case LikelyDiverging:
		return "likely diverging"
	default:
		return "unknown"
	}
}

// Run steps m until quiescence, until limit steps have run (limit <= 0
// means unbounded), until ctx is done, or — when historySize > 0 —
// until the machine's current value repeats one of the last historySize
// distinct hashes recorded (a hash equal to the most recently recorded
// one is not recorded again). It returns the partially-reduced value and why it
// stopped. This is the opt-in wrapper SPEC_FULL.md §4.3 describes;
// Normalize's default semantics are unchanged by its existence.
func (m *Machine) Run(ctx context.Context, limit int, historySize int) (term.Term, Status) {
	var history [][32]byte

	steps := 0
	for m.HasNext() {
		select {
		case <-ctx.Done():
			return m.Value(), ContextDone
		default:
		}

		if limit > 0 && steps >= limit {
			return m.Value(), StepLimitReached
		}

		if historySize > 0 {
			h := m.Value().Hash()
			// A step that only unfolds a Catenate into the code register
			// (no data push/pop, no thunk) leaves Value unchanged; skip
			// recording and checking those so they can't masquerade as a
			// repeat. Only a hash that differs from the most recently
			// recorded one is evidence of anything either way.
			if len(history) == 0 || history[len(history)-1] != h {
				for _, seen := range history {
					if seen == h {
						return m.Value(), LikelyDiverging
					}
				}
				history = append(history, h)
				if len(history) > historySize {
					history = history[1:]
				}
			}
		}

		// Run's own loop already gated on HasNext; Step cannot return
		// ErrNoMoreCode here.
		_ = m.Step()
		steps++
	}

	return m.Value(), Quiescent
}
