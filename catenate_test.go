package catenate_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/0xmaddie/catenate"
)

func TestRunAxioms(t *testing.T) {
	cases := map[string]string{
		"[foo] a":       "foo",
		"[foo] [bar] c": "[foo bar]",
	}
	for src, want := range cases {
		got, err := catenate.Run(src)
		require.NoError(t, err)
		require.Equal(t, want, got)
	}
}

func TestRunSurfacesParseErrors(t *testing.T) {
	_, err := catenate.Run("]")
	require.Error(t, err)
}
