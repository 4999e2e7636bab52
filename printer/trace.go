package printer

import (
	"gopkg.in/yaml.v3"

	"github.com/0xmaddie/catenate/machine"
	"github.com/0xmaddie/catenate/term"
)

// traceStep is the YAML-serializable shape of one machine.Snapshot:
// each register rendered in canonical surface syntax rather than as a
// raw Term tree, so the dump reads like the language itself.
type traceStep struct {
	Step int    `yaml:"step"`
	Code string `yaml:"code"`
	Data string `yaml:"data"`
	Sink string `yaml:"sink"`
}

func printAll(ts []term.Term) string {
	return Print(term.FromArray(ts))
}

// DumpTrace renders a recorded machine.Trace as a single YAML document
// holding a sequence with one entry per step, for the CLI's trace subcommand and for golden tests. This is
// debug/test tooling only: it is not an alternate input format and has
// no bearing on round-tripping (spec.md §6, SPEC_FULL.md §4.4).
func DumpTrace(tr machine.Trace) (string, error) {
	steps := make([]traceStep, len(tr))
	for i, snap := range tr {
		steps[i] = traceStep{
			Step: i,
			Code: printAll(reversed(snap.Code)),
			Data: printAll(snap.Data),
			Sink: printAll(snap.Sink),
		}
	}
	out, err := yaml.Marshal(steps)
	if err != nil {
		return "", err
	}
	return string(out), nil
}

// reversed returns a reversed copy of xs, used to render the code
// register in pending-execution (left-to-right) order the same way
// Machine.Value does.
func reversed(xs []term.Term) []term.Term {
	out := make([]term.Term, len(xs))
	for i, x := range xs {
		out[len(xs)-1-i] = x
	}
	return out
}
