package suggest_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/0xmaddie/catenate/internal/suggest"
)

func TestClosestPicksNearestCandidate(t *testing.T) {
	got := suggest.Closest("foo!", []string{"a", "b", "foo", "bar"})
	require.Equal(t, "foo", got)
}

func TestClosestEmptyCandidates(t *testing.T) {
	require.Equal(t, "", suggest.Closest("foo!", nil))
}
