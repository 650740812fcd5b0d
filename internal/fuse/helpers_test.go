package fuse

import (
	"strings"
	"testing"

	"github.com/pmezard/go-difflib/difflib"
	"github.com/stretchr/testify/require"

	"github.com/patchfold/patchfold/internal/unidiff"
)

func mustHunk(t *testing.T, text string) unidiff.Hunk {
	t.Helper()
	h, err := unidiff.ParseHunk(text)
	require.NoError(t, err)
	return h
}

// fileBlock builds one file block for name from hunk texts.
func fileBlock(name string, hunks ...string) string {
	var b strings.Builder
	b.WriteString("Index: " + name + "\n")
	b.WriteString(strings.Repeat("=", 67) + "\n")
	b.WriteString("--- " + name + "\n")
	b.WriteString("+++ " + name + "\n")
	for _, h := range hunks {
		b.WriteString(h)
	}
	return b.String()
}

func mustDiff(t *testing.T, text string) *unidiff.Diff {
	t.Helper()
	d, err := unidiff.Parse(text)
	require.NoError(t, err)
	return d
}

// mustFileDiff parses a single-file diff and returns its sole block.
func mustFileDiff(t *testing.T, name string, hunks ...string) *unidiff.FileDiff {
	t.Helper()
	d := mustDiff(t, fileBlock(name, hunks...))
	fd, ok := d.File(name)
	require.True(t, ok)
	return fd
}

// requireTextEqual fails with a unified diff of want vs got.
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
