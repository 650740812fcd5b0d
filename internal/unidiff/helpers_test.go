package unidiff

import (
	"testing"

	"github.com/pmezard/go-difflib/difflib"
	"github.com/stretchr/testify/require"
)

// requireTextEqual fails with a unified diff of want vs got, which is far
// easier to scan than two multi-line quoted strings.
func requireTextEqual(t *testing.T, want, got string) {
	t.Helper()
	if want == got {
		return
	}
	text, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(want),
		B:        difflib.SplitLines(got),
		FromFile: "want",
		ToFile:   "got",
		Context:  3,
	})
	require.NoError(t, err)
	t.Fatalf("text mismatch:\n%s", text)
}
