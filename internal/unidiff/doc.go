// Package unidiff models unified-format textual diffs in the SVN style: a diff
// is an ordered set of per-file blocks, each block a four-line preamble
// ("Index: <name>", a separator line, "--- <name>", "+++ <name>") followed by
// hunks, each hunk a "@@ -a,b +c,d @@" range header followed by body lines
// tagged ' ', '-', or '+'.
//
// Representation: Diff holds FileDiffs in first-observed order; FileDiff holds
// its file name, raw preamble, and ordered Hunks; Hunk holds a Header plus the
// tagged body lines (tag included, line separator excluded).
//
// Invariants:
//   - A file name appears at most once per Diff.
//   - Within a FileDiff, hunks are ordered and pairwise non-overlapping in
//     both the pre-image and the post-image axis.
//   - For every Hunk, Header.PreCount equals the number of ' '/'-' body lines
//     and Header.PostCount equals the number of ' '/'+' body lines.
//   - Header starts are non-negative; a start may be 0 only when the paired
//     count is 0.
//
// Parsing: Use Parse to read a whole diff. The line separator is sniffed: if
// any CRLF appears, the separator is CRLF and a bare '\n' is a parse error;
// otherwise LF. Serialization (Diff.String) always emits LF and is
// byte-compatible with the input grammar, so Parse(d.String()) reproduces d.
//
// All parse failures are classified under ErrParse; see IsParseError.
package unidiff
