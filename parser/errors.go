package parser

import "fmt"

// ErrorKind distinguishes the two parse-error shapes the grammar can
// produce. See spec.md §7.
type ErrorKind int

const (
	ErrUnknownToken ErrorKind = iota
	ErrUnbalancedBrackets
)

func (k ErrorKind) String() string {
	switch k {
	case ErrUnknownToken:
		return "unknown token"
	case ErrUnbalancedBrackets:
		return "unbalanced brackets"
	default:
		return "parse error"
	}
}

// ParseError is the single error type Parse returns. Source is always
// the full input string, matching the Python source's Error subclasses,
// which each carry the whole program rather than just a line/column.
type ParseError struct {
	Kind   ErrorKind
	Source string
	Token  string // set for ErrUnknownToken

	// Suggestion is a best-effort "did you mean" hint computed by
	// internal/suggest. It is purely informational: it never changes
	// whether a token was accepted or what Term a successful parse
	// produces. It is the nearest candidate by edit distance with no
	// distance cutoff; since the primitive letters are always
	// candidates, Parse sets it on every ErrUnknownToken.
	Suggestion string
}

func (e *ParseError) Error() string {
	switch e.Kind {
	case ErrUnknownToken:
		if e.Suggestion != "" {
			return fmt.Sprintf("unknown token %q in source code (did you mean %q?):\n\n%s", e.Token, e.Suggestion, e.Source)
		}
		return fmt.Sprintf("unknown token %q in source code:\n\n%s", e.Token, e.Source)
	case ErrUnbalancedBrackets:
		return fmt.Sprintf("unbalanced brackets in source code:\n\n%s", e.Source)
	default:
		return fmt.Sprintf("parse error in source code:\n\n%s", e.Source)
	}
}
