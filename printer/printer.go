// Package printer serializes Terms back to canonical surface syntax,
// and renders recorded machine traces for debugging. See spec.md §4.4.
package printer

import "github.com/0xmaddie/catenate/term"

// Print renders t in canonical surface syntax: Identity as the empty
// string, Constant/Variable/Annotate as their name, Quote bracketed,
// and Catenate as its two children joined by a single space. Parsing
// Print's output and normalizing again is a fixed point for canonical
// Terms (spec.md §3, invariant 4).
func Print(t term.Term) string {
	return t.String()
}
