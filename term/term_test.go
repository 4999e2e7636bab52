package term_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/0xmaddie/catenate/term"
)

// cmpTerm lets cmp.Diff compare Terms by their exported Equal semantics
// despite the type's unexported fields.
var cmpTerm = cmp.Comparer(func(a, b term.Term) bool {
	return a.Equal(b)
})

func TestSeqIdentityUnit(t *testing.T) {
	foo := term.Variable("foo")

	require.True(t, term.Seq(term.Identity(), foo).Equal(foo))
	require.True(t, term.Seq(foo, term.Identity()).Equal(foo))
}

func TestSeqAssociativity(t *testing.T) {
	a := term.Variable("a")
	b := term.Variable("b")
	c := term.Variable("c")

	lhs := term.Seq(term.Seq(a, b), c)
	rhs := term.Seq(a, term.Seq(b, c))

	if diff := cmp.Diff(lhs, rhs, cmpTerm); diff != "" {
		t.Fatalf("seq is not associative (-lhs +rhs):\n%s", diff)
	}
}

func TestSeqRightLeaningSpine(t *testing.T) {
	a := term.Variable("a")
	b := term.Variable("b")
	c := term.Variable("c")

	got := term.Seq(term.Seq(a, b), c)

	fst, snd, ok := got.Parts()
	require.True(t, ok)
	require.True(t, fst.Equal(a), "outermost fst must be a, not a catenate")

	_, _, sndIsCatenate := snd.Parts()
	require.True(t, sndIsCatenate)
}

func TestFromArrayCanonicalShape(t *testing.T) {
	xs := []term.Term{term.Variable("x"), term.Variable("y"), term.Variable("z")}
	got := term.FromArray(xs)
	want := term.Seq(xs[0], term.Seq(xs[1], term.Seq(xs[2], term.Identity())))

	if diff := cmp.Diff(want, got, cmpTerm); diff != "" {
		t.Fatalf("FromArray mismatch (-want +got):\n%s", diff)
	}
}

func TestFromArrayEmpty(t *testing.T) {
	require.True(t, term.FromArray(nil).IsIdentity())
}

func TestQuoteOfIdentityPrintsEmptyBrackets(t *testing.T) {
	require.Equal(t, "[]", term.Quote(term.Identity()).String())
}

func TestStringCanonicalForms(t *testing.T) {
	cases := []struct {
		name string
		in   term.Term
		want string
	}{
		{"identity", term.Identity(), ""},
		{"constant", term.Constant("d"), "d"},
		{"variable", term.Variable("foo"), "foo"},
		{"annotate", term.Annotate("@note"), "@note"},
		{"quote", term.Quote(term.Variable("foo")), "[foo]"},
		{
			"catenate",
			term.Seq(term.Variable("foo"), term.Variable("bar")),
			"foo bar",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, tc.in.String())
		})
	}
}

func TestAssertQuote(t *testing.T) {
	q := term.Quote(term.Variable("foo"))
	body, err := q.AssertQuote()
	require.NoError(t, err)
	require.True(t, body.Equal(term.Variable("foo")))

	_, err = term.Variable("foo").AssertQuote()
	require.Error(t, err)
	var wrongTag *term.WrongTag
	require.ErrorAs(t, err, &wrongTag)
	require.Equal(t, term.TagQuote, wrongTag.Expected)
}

func TestHashDeterministicAndStructural(t *testing.T) {
	a := term.Seq(term.Quote(term.Variable("foo")), term.Constant("a"))
	b := term.Seq(term.Quote(term.Variable("foo")), term.Constant("a"))
	c := term.Seq(term.Quote(term.Variable("bar")), term.Constant("a"))

	require.Equal(t, a.Hash(), a.Hash(), "hash must be deterministic")
	require.True(t, term.HashEqual(a, b), "structurally equal terms must hash equal")
	require.False(t, term.HashEqual(a, c), "structurally different terms should not collide")
}
