// Package parser turns the calculus's surface syntax into a term.Term.
// See spec.md §4.2 for the grammar and spec.md §7 for the error
// taxonomy this package implements.
package parser

import (
	"regexp"
	"strings"

	"github.com/0xmaddie/catenate/internal/suggest"
	"github.com/0xmaddie/catenate/term"
)

var (
	variableRe = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)
	annotateRe = regexp.MustCompile(`^@[A-Za-z_][A-Za-z0-9_]*$`)
)

// isPrimitive reports whether a single token matches one of the eight
// reserved constant letters.
func isPrimitive(token string) bool {
	return len(token) == 1 && strings.Contains(term.Primitives, token)
}

// tokenize pads brackets with whitespace, turns each tab, carriage
// return and newline into a space, and splits into non-empty tokens. This
// mirrors the source's from_string preprocessing exactly.
func tokenize(src string) []string {
	s := src
	s = strings.ReplaceAll(s, "\t", " ")
	s = strings.ReplaceAll(s, "\r", " ")
	s = strings.ReplaceAll(s, "\n", " ")
	s = strings.ReplaceAll(s, "[", " [ ")
	s = strings.ReplaceAll(s, "]", " ] ")

	fields := strings.Split(s, " ")
	tokens := make([]string, 0, len(fields))
	for _, f := range fields {
		if f == "" {
			continue
		}
		tokens = append(tokens, f)
	}
	return tokens
}

// Parse parses src into a Term according to spec.md §4.2. A stray `]`
// with no matching `[` fails with an *ParseError of kind
// ErrUnbalancedBrackets; any token matching neither the constant,
// variable, nor annotate patterns fails with a *ParseError of kind
// ErrUnknownToken. An unmatched opening `[` at end of input is accepted
// silently, matching the source's own behavior (spec.md §9, Open
// Question: unterminated `[`).
func Parse(src string) (term.Term, error) {
	var stack [][]term.Term
	build := []term.Term{}
	seen := []string{} // identifiers observed so far, for suggestions

	for _, token := range tokenize(src) {
		switch {
		case token == "[":
			stack = append(stack, build)
			build = []term.Term{}
		case token == "]":
			if len(stack) == 0 {
				return term.Term{}, &ParseError{Kind: ErrUnbalancedBrackets, Source: src}
			}
			value := term.Quote(term.FromArray(build))
			build = stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			build = append(build, value)
		case isPrimitive(token):
			build = append(build, term.Constant(token))
		case variableRe.MatchString(token):
			build = append(build, term.Variable(token))
			seen = append(seen, token)
		case annotateRe.MatchString(token):
			build = append(build, term.Annotate(token))
			seen = append(seen, token)
		default:
			return term.Term{}, &ParseError{
				Kind:       ErrUnknownToken,
				Source:     src,
				Token:      token,
				Suggestion: suggestToken(token, seen),
			}
		}
	}

	return term.FromArray(build), nil
}

// suggestToken ranks primitive letters and identifiers already seen in
// this source against the offending token.
func suggestToken(token string, seen []string) string {
	candidates := make([]string, 0, len(term.Primitives)+len(seen))
	for _, letter := range term.Primitives {
		candidates = append(candidates, string(letter))
	}
	candidates = append(candidates, seen...)
	return suggest.Closest(token, candidates)
}
