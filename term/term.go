// Package term implements the algebraic representation of the
// concatenative rewriting calculus: an immutable, structurally-hashed
// value type shared by programs and data.
package term

import "fmt"

// Tag discriminates the six Term constructors.
type Tag uint8

const (
	TagIdentity Tag = iota
	TagConstant
	TagVariable
	TagAnnotate
	TagQuote
	TagCatenate
)

func (t Tag) String() string {
	switch t {
	case TagIdentity:
		return "identity"
	case TagConstant:
		return "constant"
	case TagVariable:
		return "variable"
	case TagAnnotate:
		return "annotate"
	case TagQuote:
		return "quote"
	case TagCatenate:
		return "catenate"
	default:
		return "unknown"
	}
}

// Term is a value object in the calculus: a program or a piece of data,
// never mutated after construction. The zero value is not meaningful;
// use the constructors below.
type Term struct {
	tag  Tag
	name string // Constant / Variable / Annotate
	body *Term  // Quote
	fst  *Term  // Catenate
	snd  *Term  // Catenate
}

// Primitives is the closed set of single-letter opcode names, in the
// order the rewriter's dispatch table documents them.
const Primitives = "abcdefgh"

// Identity returns the nullary empty program, the two-sided unit of Seq.
func Identity() Term {
	return Term{tag: TagIdentity}
}

// Constant returns a primitive opcode. The caller is responsible for
// only passing letters in Primitives; the parser enforces this at the
// surface-syntax boundary.
func Constant(letter string) Term {
	return Term{tag: TagConstant, name: letter}
}

// Variable returns a symbolic identifier that is not a primitive name.
func Variable(name string) Term {
	return Term{tag: TagVariable, name: name}
}

// Annotate returns an `@`-prefixed inert marker.
func Annotate(name string) Term {
	return Term{tag: TagAnnotate, name: name}
}

// Quote wraps any Term in exclusive ownership of one child.
func Quote(body Term) Term {
	b := body
	return Term{tag: TagQuote, body: &b}
}

// catenate constructs a raw Catenate node without running the seq
// simplifications. Only seq and FromArray should call this.
func catenate(fst, snd Term) Term {
	f, s := fst, snd
	return Term{tag: TagCatenate, fst: &f, snd: &s}
}

// Seq is the smart constructor for concatenation (juxtaposition).
// Identity is a two-sided unit; Catenate is re-associated so the result
// is always right-leaning: if lhs is itself a Catenate(a, b) and rhs is
// not Identity, the result is Seq(a, Seq(b, rhs)).
func Seq(lhs, rhs Term) Term {
	if lhs.tag == TagIdentity {
		return rhs
	}
	if rhs.tag == TagIdentity {
		return lhs
	}
	if lhs.tag == TagCatenate {
		hidden := Seq(*lhs.snd, rhs)
		return Seq(*lhs.fst, hidden)
	}
	return catenate(lhs, rhs)
}

// FromArray folds a sequence of Terms right-to-left using Seq, starting
// from Identity, producing the canonical right-leaning spine.
func FromArray(xs []Term) Term {
	acc := Identity()
	for i := len(xs) - 1; i >= 0; i-- {
		acc = Seq(xs[i], acc)
	}
	return acc
}

// Tag reports which of the six constructors built this Term.
func (t Term) Tag() Tag { return t.tag }

// Name returns the identifier for Constant, Variable, and Annotate
// Terms; it is meaningless for the other three tags.
func (t Term) Name() string { return t.name }

// Body returns the wrapped Term for a Quote; ok is false otherwise.
func (t Term) Body() (Term, bool) {
	if t.tag != TagQuote {
		return Term{}, false
	}
	return *t.body, true
}

// Parts returns the two children of a Catenate; ok is false otherwise.
func (t Term) Parts() (fst, snd Term, ok bool) {
	if t.tag != TagCatenate {
		return Term{}, Term{}, false
	}
	return *t.fst, *t.snd, true
}

// IsIdentity reports whether t is the empty program.
func (t Term) IsIdentity() bool { return t.tag == TagIdentity }

// Equal reports deep structural equality between two Terms.
func (t Term) Equal(other Term) bool {
	if t.tag != other.tag {
		return false
	}
	switch t.tag {
	case TagIdentity:
		return true
	case TagConstant, TagVariable, TagAnnotate:
		return t.name == other.name
	case TagQuote:
		return t.body.Equal(*other.body)
	case TagCatenate:
		return t.fst.Equal(*other.fst) && t.snd.Equal(*other.snd)
	default:
		return false
	}
}

// String renders t in canonical surface syntax. See package printer for
// the documented entry point; this method exists so Term satisfies
// fmt.Stringer for debugging and error messages.
func (t Term) String() string {
	switch t.tag {
	case TagIdentity:
		return ""
	case TagConstant, TagVariable, TagAnnotate:
		return t.name
	case TagQuote:
		return fmt.Sprintf("[%s]", t.body.String())
	case TagCatenate:
		return fmt.Sprintf("%s %s", t.fst.String(), t.snd.String())
	default:
		return ""
	}
}

// WrongTag is raised internally by the machine's primitive implementations
// when an argument does not have the required tag. It is always caught
// within the machine and translated into a thunk; it never escapes a
// call to machine.Normalize.
type WrongTag struct {
	Expected Tag
	Actual   Term
}

func (e *WrongTag) Error() string {
	return fmt.Sprintf("expected a value with tag %s, but got %s", e.Expected, e.Actual)
}

// AssertQuote returns the quoted body, or a *WrongTag error if t is not
// a Quote. This is the Go analog of the source's assert_quote helpers;
// the machine calls it for primitives a and c.
func (t Term) AssertQuote() (Term, error) {
	if t.tag != TagQuote {
		return Term{}, &WrongTag{Expected: TagQuote, Actual: t}
	}
	return *t.body, nil
}
