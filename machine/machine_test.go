package machine_test

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/0xmaddie/catenate/machine"
	"github.com/0xmaddie/catenate/parser"
	"github.com/0xmaddie/catenate/printer"
	"github.com/0xmaddie/catenate/term"
)

var cmpTerm = cmp.Comparer(func(a, b term.Term) bool { return a.Equal(b) })

func norm(t *testing.T, src string) string {
	t.Helper()
	parsed, err := parser.Parse(src)
	require.NoError(t, err)
	return printer.Print(machine.Normalize(parsed))
}

// TestAxioms exercises the six canonical primitive scenarios from
// spec.md §8.
func TestAxioms(t *testing.T) {
	cases := []struct{ src, want string }{
		{"[foo] a", "foo"},
		{"[foo] b", "[[foo]]"},
		{"[foo] [bar] c", "[foo bar]"},
		{"[foo] d", "[foo] [foo]"},
		{"[foo] e", ""},
		{"[foo] [bar] f", "[bar] [foo]"},
	}
	for _, tc := range cases {
		t.Run(tc.src, func(t *testing.T) {
			require.Equal(t, tc.want, norm(t, tc.src))
		})
	}
}

// TestResiduals exercises the five residual scenarios from spec.md §8;
// the source has no test coverage for these, but the design requires
// them.
func TestResiduals(t *testing.T) {
	cases := []struct{ src, want string }{
		{"a", "a"},
		{"foo a", "foo a"},
		{"[foo] [bar] a", "[foo] bar"},
		{"[foo] g", "[foo]"},
		{"[foo] h", "[foo]"},
		{"@note [foo]", "[foo]"},
	}
	for _, tc := range cases {
		t.Run(tc.src, func(t *testing.T) {
			require.Equal(t, tc.want, norm(t, tc.src))
		})
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	sources := []string{"[foo] a", "[foo] d", "foo a", "[foo] [bar] a", "[x] [y] c d e"}
	for _, src := range sources {
		t.Run(src, func(t *testing.T) {
			parsed, err := parser.Parse(src)
			require.NoError(t, err)
			once := machine.Normalize(parsed)
			twice := machine.Normalize(once)
			if diff := cmp.Diff(once, twice, cmpTerm); diff != "" {
				t.Fatalf("normalize not idempotent (-once +twice):\n%s", diff)
			}
		})
	}
}

func TestComposeRequiresTwoQuotes(t *testing.T) {
	// Only one quote on the stack: c cannot proceed and thunks.
	got := norm(t, "[foo] c")
	require.Equal(t, "[foo] c", got)
}

func TestDropOnEmptyDataThunks(t *testing.T) {
	got := norm(t, "e")
	require.Equal(t, "e", got)
}

func TestRunUnboundedAgreesWithNormalize(t *testing.T) {
	sources := []string{"[foo] a", "[foo] [bar] c", "foo a", "[foo] e"}
	for _, src := range sources {
		parsed, err := parser.Parse(src)
		require.NoError(t, err)

		want := machine.Normalize(parsed)
		got, status := machine.New(parsed).Run(context.Background(), 0, 0)
		require.Equal(t, machine.Quiescent, status)
		if diff := cmp.Diff(want, got, cmpTerm); diff != "" {
			t.Fatalf("Run(unbounded) disagrees with Normalize for %q (-want +got):\n%s", src, diff)
		}
	}
}

// TestRunDivergenceHeuristicIgnoresCatenateUnfolding guards against a
// false positive: unfolding a Catenate into the code register leaves
// Value unchanged, and that alone must never look like a repeat to the
// history-based heuristic for a program that actually terminates.
func TestRunDivergenceHeuristicIgnoresCatenateUnfolding(t *testing.T) {
	parsed, err := parser.Parse("[foo] [bar] c")
	require.NoError(t, err)

	got, status := machine.New(parsed).Run(context.Background(), 0, 64)
	require.Equal(t, machine.Quiescent, status)
	require.Equal(t, "[foo bar]", printer.Print(got))
}

func TestRunStepLimitReached(t *testing.T) {
	parsed, err := parser.Parse("[foo] [bar] c")
	require.NoError(t, err)

	_, status := machine.New(parsed).Run(context.Background(), 1, 0)
	require.Equal(t, machine.StepLimitReached, status)
}

func TestRunContextCancelled(t *testing.T) {
	parsed, err := parser.Parse("[foo] [bar] c")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, status := machine.New(parsed).Run(ctx, 0, 0)
	require.Equal(t, machine.ContextDone, status)
}

// TestRunDetectsDivergence exercises the nontermination case spec.md
// §4.3.2 names: a quoted term that reproduces itself under unquote.
// "[d a] d a" pushes its own quote, duplicates it, and unquotes the
// duplicate back into code forever, leaving the data register in a
// steady state every cycle.
func TestRunDetectsDivergence(t *testing.T) {
	parsed, err := parser.Parse("[d a] d a")
	require.NoError(t, err)

	_, status := machine.New(parsed).Run(context.Background(), 10_000, 64)
	require.Equal(t, machine.LikelyDiverging, status)
}

func TestTraceRecordsSteps(t *testing.T) {
	parsed, err := parser.Parse("[foo] a")
	require.NoError(t, err)

	m := machine.New(parsed)
	m.EnableTrace()
	result := m.Normalize()

	require.Equal(t, "foo", printer.Print(result))
	require.NotEmpty(t, m.Trace())
}
