package unidiff

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

// block builds one file block for name from hunk texts.
func block(name string, hunks ...string) string {
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

func TestParse_SingleFile(t *testing.T) {
	in := block("t", "@@ -1 +1 @@\n-a\n+b\n")

	d, err := Parse(in)
	require.NoError(t, err)
	require.NoError(t, d.Validate())
	require.Equal(t, 1, d.Len())

	fd, ok := d.File("t")
	require.True(t, ok)
	require.Equal(t, "t", fd.Name)
	require.Len(t, fd.Hunks, 1)
	require.Equal(t, Header{1, 1, 1, 1}, fd.Hunks[0].Header)
	require.Equal(t, []string{"-a", "+b"}, fd.Hunks[0].Lines)
}

func TestParse_RoundTrip(t *testing.T) {
	inputs := []string{
		block("t", "@@ -1 +1 @@\n-a\n+b\n"),
		block("t", "@@ -1,3 +1,3 @@\n-a\n-b\n-c\n+i\n+ii\n+iii\n"),
		block("t", "@@ -0,0 +1,2 @@\n+p\n+q\n", "@@ -10 +12 @@\n-x\n+y\n"),
		block("t", "@@ -0,0 +0,0 @@\n"),
		block("a.txt", "@@ -2,4 +2,5 @@\n 3\n 4\n 5\n+6\n 7\n") + block("b.txt", "@@ -1 +1 @@\n-old\n+new\n"),
	}
	for _, in := range inputs {
		d, err := Parse(in)
		require.NoError(t, err)
		requireTextEqual(t, in, d.String())

		again, err := Parse(d.String())
		require.NoError(t, err)
		require.Empty(t, cmp.Diff(d.Files(), again.Files()))
	}
}

func TestParse_FileOrderPreserved(t *testing.T) {
	in := block("zzz", "@@ -1 +1 @@\n-a\n+b\n") + block("aaa", "@@ -1 +1 @@\n-c\n+d\n")

	d, err := Parse(in)
	require.NoError(t, err)

	var names []string
	for _, fd := range d.Files() {
		names = append(names, fd.Name)
	}
	require.Equal(t, []string{"zzz", "aaa"}, names)
}

func TestParse_BlankLinesBetweenHunks(t *testing.T) {
	in := block("t", "@@ -1 +1 @@\n-a\n+b\n\n\n@@ -10 +10 @@\n-x\n+y\n")

	d, err := Parse(in)
	require.NoError(t, err)
	fd, _ := d.File("t")
	require.Len(t, fd.Hunks, 2)
}

func TestParse_DuplicateFile(t *testing.T) {
	in := block("t", "@@ -1 +1 @@\n-a\n+b\n") + block("t", "@@ -5 +5 @@\n-c\n+d\n")

	_, err := Parse(in)
	require.Error(t, err)
	require.True(t, IsParseError(err))
	require.Contains(t, err.Error(), "multiple blocks")
}

func TestParse_RejectsOverlappingHunks(t *testing.T) {
	in := block("t", "@@ -1,2 +1,2 @@\n a\n-b\n+c\n", "@@ -2 +2 @@\n-b\n+z\n")

	_, err := Parse(in)
	require.Error(t, err)
	require.True(t, IsParseError(err))
	require.Contains(t, err.Error(), "overlap")
}

func TestParse_MissingIndexPrefix(t *testing.T) {
	_, err := Parse("--- t\n+++ t\n@@ -1 +1 @@\n-a\n+b\n")
	require.Error(t, err)
	require.True(t, IsParseError(err))
}

func TestParse_MissingPreambleLines(t *testing.T) {
	_, err := Parse("Index: t\n" + strings.Repeat("=", 67) + "\n")
	require.Error(t, err)
	require.True(t, IsParseError(err))
	require.Contains(t, err.Error(), "preamble")
}

func TestParse_BodyCountMismatch(t *testing.T) {
	_, err := Parse(block("t", "@@ -1,2 +1 @@\n-a\n+b\n"))
	require.Error(t, err)
	require.True(t, IsParseError(err))
}

func TestParse_CRLF(t *testing.T) {
	in := block("t", "@@ -1 +1 @@\n-a\n+b\n")
	crlf := strings.ReplaceAll(in, "\n", "\r\n")

	d, err := Parse(crlf)
	require.NoError(t, err)
	// Output is always LF.
	requireTextEqual(t, in, d.String())
}

func TestParse_InconsistentSeparator(t *testing.T) {
	in := "Index: t\r\n" + strings.Repeat("=", 67) + "\n--- t\r\n+++ t\r\n"

	_, err := Parse(in)
	require.Error(t, err)
	require.True(t, IsParseError(err))
	require.Contains(t, err.Error(), "separator")
}

func TestParse_Empty(t *testing.T) {
	d, err := Parse("")
	require.NoError(t, err)
	require.Equal(t, 0, d.Len())
	require.Equal(t, "", d.String())
}
