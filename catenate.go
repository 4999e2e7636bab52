// Package catenate is a thin façade over parser, machine, and printer,
// wiring parse → normalize → print the way the teacher's cli/main.go
// wires its own lexer → parser → planner → executor pipeline into one
// call. Library callers that want fine-grained control should use the
// subpackages directly; this package exists for the common case.
package catenate

import (
	"github.com/0xmaddie/catenate/machine"
	"github.com/0xmaddie/catenate/parser"
	"github.com/0xmaddie/catenate/printer"
	"github.com/0xmaddie/catenate/term"
)

// Parse parses src into a Term. See parser.Parse.
func Parse(src string) (term.Term, error) {
	return parser.Parse(src)
}

// Print renders a Term in canonical surface syntax. See printer.Print.
func Print(t term.Term) string {
	return printer.Print(t)
}

// Normalize reduces a Term toward its canonical form. See
// machine.Normalize.
func Normalize(t term.Term) term.Term {
	return machine.Normalize(t)
}

// Run parses, normalizes, and prints src in one call.
func Run(src string) (string, error) {
	t, err := Parse(src)
	if err != nil {
		return "", err
	}
	return Print(Normalize(t)), nil
}
