package machine

import "github.com/0xmaddie/catenate/term"

// Snapshot is a copy of the three registers taken immediately before a
// Step. See SPEC_FULL.md §4.3's "step trace" addition.
type Snapshot struct {
	Code []term.Term
	Data []term.Term
	Sink []term.Term
}

// Trace is an ordered recording of Snapshots across a run.
type Trace []Snapshot

// EnableTrace turns on step recording. Recording never affects
// reduction order or the returned value; it only accumulates Snapshots
// for Trace to return afterward.
func (m *Machine) EnableTrace() {
	m.recording = true
}

// Trace returns the Snapshots recorded so far.
func (m *Machine) Trace() Trace {
	return m.trace
}

func cloneTerms(xs []term.Term) []term.Term {
	out := make([]term.Term, len(xs))
	copy(out, xs)
	return out
}

func (m *Machine) snapshot() Snapshot {
	return Snapshot{
		Code: cloneTerms(m.code),
		Data: cloneTerms(m.data),
		Sink: cloneTerms(m.sink),
	}
}
