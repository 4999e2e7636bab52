package machine

import "github.com/0xmaddie/catenate/term"

// tryExec attempts the primitive named by a single letter in
// term.Primitives. It reports whether the attempt succeeded; on
// failure (insufficient data, or a required argument is not a Quote)
// it leaves the registers untouched and the caller thunks, matching
// spec.md §4.3.1's two failure modes. This replaces the source's
// exception-as-control-flow (_exec raising Error, caught by step) with
// the result-type shape spec.md §9 recommends.
func (m *Machine) tryExec(name string) bool {
	switch name {
	case "a": // unquote
		v, err := m.Peek(0)
		if err != nil {
			return false
		}
		body, err := v.AssertQuote()
		if err != nil {
			return false
		}
		_, _ = m.Pop()
		m.send(body)
		return true

	case "b": // quote
		v, err := m.Peek(0)
		if err != nil {
			return false
		}
		_, _ = m.Pop()
		m.Push(term.Quote(v))
		return true

	case "c": // compose
		snd, err := m.Peek(0)
		if err != nil {
			return false
		}
		sndBody, err := snd.AssertQuote()
		if err != nil {
			return false
		}
		fst, err := m.Peek(1)
		if err != nil {
			return false
		}
		fstBody, err := fst.AssertQuote()
		if err != nil {
			return false
		}
		_, _ = m.Pop()
		_, _ = m.Pop()
		m.Push(term.Quote(term.Seq(fstBody, sndBody)))
		return true

	case "d": // dup
		v, err := m.Peek(0)
		if err != nil {
			return false
		}
		m.Push(v)
		return true

	case "e": // drop
		if _, err := m.Peek(0); err != nil {
			return false
		}
		_, _ = m.Pop()
		return true

	case "f": // swap
		top, err := m.Peek(0)
		if err != nil {
			return false
		}
		second, err := m.Peek(1)
		if err != nil {
			return false
		}
		_, _ = m.Pop()
		_, _ = m.Pop()
		m.Push(top)
		m.Push(second)
		return true

	case "g", "h": // reserved, no-op
		return true

	default:
		return false
	}
}
