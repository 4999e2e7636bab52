// Package machine implements the small-step rewriter described in
// spec.md §4.3: a code/data/sink register machine that reduces a Term
// toward its canonical form, preserving partial progress as a residual
// rather than raising when it cannot proceed.
package machine

import (
	"errors"

	"github.com/0xmaddie/catenate/term"
)

// ErrNoMoreCode is returned by next when code is empty. It cannot occur
// while callers gate their loop on HasNext, matching spec.md §7.
var ErrNoMoreCode = errors.New("machine: no more code")

// ErrNoMoreData is returned by pop/peek when data is too shallow for the
// request. It is caught internally by tryExec and turned into a thunk;
// it only escapes to a caller that calls Pop/Peek directly.
var ErrNoMoreData = errors.New("machine: no more data")

// Machine holds the three ordered registers of the rewriter: code
// (remaining instructions, LIFO), data (values produced so far, LIFO),
// and sink (the append-only residual prefix). A Machine is a local,
// mutable value; it owns no resources beyond its three slices.
type Machine struct {
	code []term.Term
	data []term.Term
	sink []term.Term

	recording bool
	trace     Trace
}

// New creates a Machine whose code register holds exactly init.
func New(init term.Term) *Machine {
	return &Machine{code: []term.Term{init}}
}

// HasNext reports whether code is nonempty; Normalize and Run loop on
// this exactly as spec.md §4.3.2 describes.
func (m *Machine) HasNext() bool {
	return len(m.code) > 0
}

// Value reconstructs the current Term as sink ++ data ++ reverse(code),
// folded by term.FromArray, matching spec.md §4.3's `value` property.
func (m *Machine) Value() term.Term {
	out := make([]term.Term, 0, len(m.sink)+len(m.data)+len(m.code))
	out = append(out, m.sink...)
	out = append(out, m.data...)
	for i := len(m.code) - 1; i >= 0; i-- {
		out = append(out, m.code[i])
	}
	return term.FromArray(out)
}

// next pops the top of code (the Python source's State.next).
func (m *Machine) next() (term.Term, error) {
	n := len(m.code)
	if n == 0 {
		return term.Term{}, ErrNoMoreCode
	}
	p := m.code[n-1]
	m.code = m.code[:n-1]
	return p, nil
}

// send pushes an instruction onto code (the Python source's State.send).
func (m *Machine) send(t term.Term) {
	m.code = append(m.code, t)
}

// Push pushes a value onto data.
func (m *Machine) Push(t term.Term) {
	m.data = append(m.data, t)
}

// Pop removes and returns the top of data.
func (m *Machine) Pop() (term.Term, error) {
	n := len(m.data)
	if n == 0 {
		return term.Term{}, ErrNoMoreData
	}
	v := m.data[n-1]
	m.data = m.data[:n-1]
	return v, nil
}

// Peek returns the data value at the given depth without removing it;
// index 0 is the top.
func (m *Machine) Peek(index int) (term.Term, error) {
	n := len(m.data)
	if index >= n {
		return term.Term{}, ErrNoMoreData
	}
	return m.data[n-1-index], nil
}

// thunk commits the current data stack to the sink and appends the
// obstructing Term, per spec.md §4.3 ("thunk" verb, glossary).
func (m *Machine) thunk(point term.Term) {
	m.sink = append(m.sink, m.data...)
	m.data = nil
	m.sink = append(m.sink, point)
}

// Step performs one rewrite per the dispatch table in spec.md §4.3.
// Callers must gate on HasNext; Step on an empty code register returns
// ErrNoMoreCode.
func (m *Machine) Step() error {
	if m.recording {
		m.trace = append(m.trace, m.snapshot())
	}

	point, err := m.next()
	if err != nil {
		return err
	}

	switch point.Tag() {
	case term.TagIdentity:
		// no-op
	case term.TagCatenate:
		fst, snd, _ := point.Parts()
		m.send(snd)
		m.send(fst)
	case term.TagQuote:
		m.Push(point)
	case term.TagVariable:
		m.thunk(point)
	case term.TagAnnotate:
		// Inert marker: discarded from the live trace. See spec.md §9,
		// Open Question on Annotate (option a, matching the source).
	case term.TagConstant:
		if !m.tryExec(point.Name()) {
			m.thunk(point)
		}
	}
	return nil
}

// Normalize steps m until HasNext is false and returns Value. It is
// total: it never returns an error, and any would-be failure is folded
// into the returned residual per spec.md §7's propagation policy.
func (m *Machine) Normalize() term.Term {
	for m.HasNext() {
		// Step only errors on an empty code register, which cannot
		// happen while HasNext gates the loop.
		_ = m.Step()
	}
	return m.Value()
}

// Normalize loads t into a fresh Machine, steps it to quiescence, and
// returns the final Term. See spec.md §6.
func Normalize(t term.Term) term.Term {
	return New(t).Normalize()
}
