package unidiff

import (
	"slices"
	"strings"

	"go.uber.org/multierr"

	"github.com/patchfold/patchfold/internal/debuglog"
)

// preambleLen is the number of preamble lines that open a file block:
// "Index: <name>", the separator line, "--- <name>", and "+++ <name>".
const preambleLen = 4

const indexPrefix = "Index: "

// FileDiff is one file's change block: the raw four-line preamble plus the
// ordered hunks. Hunks are pairwise non-overlapping in both axes; the parser
// rejects inputs that violate this.
type FileDiff struct {
	Name     string
	Preamble [preambleLen]string
	Hunks    []Hunk
}

// NewFileDiff assembles a FileDiff from parts already known to be valid, for
// callers that construct blocks rather than parse them (the fusion engine).
func NewFileDiff(name string, preamble [preambleLen]string, hunks []Hunk) *FileDiff {
	return &FileDiff{Name: name, Preamble: preamble, Hunks: hunks}
}

// parseFileDiff consumes one file block from cur. Blank lines between hunks
// are tolerated; a blank line followed by anything other than a hunk header
// ends the block.
func parseFileDiff(cur *lineCursor) (*FileDiff, error) {
	first, ok := cur.peek()
	if !ok {
		return nil, parseErrorf("expected file block, got end of input")
	}
	at := strings.Index(first, indexPrefix)
	if at < 0 {
		return nil, parseErrorf("file block must open with %q, got %q", indexPrefix, first)
	}
	name := first[at+len(indexPrefix):]

	var preamble [preambleLen]string
	for i := range preamble {
		line, ok := cur.next()
		if !ok {
			return nil, parseErrorf("file block for %s: missing preamble line %d", name, i+1)
		}
		preamble[i] = line
	}

	var hunks []Hunk
	for {
		cur.skipBlank()
		line, ok := cur.peek()
		if !ok || !strings.HasPrefix(line, "@@") {
			break
		}
		hunk, err := parseHunk(cur)
		if err != nil {
			return nil, err
		}
		debuglog.Logf("parsed hunk %s for %s", hunk.Header, name)
		hunks = append(hunks, hunk)
	}

	fd := &FileDiff{Name: name, Preamble: preamble, Hunks: hunks}
	if err := fd.checkOverlaps(); err != nil {
		return nil, err
	}
	return fd, nil
}

// checkOverlaps rejects any pair of hunks sharing a pre-image or post-image
// line. All offending pairs are reported, not just the first.
func (fd *FileDiff) checkOverlaps() error {
	var err error
	for i, lhs := range fd.Hunks {
		for _, rhs := range fd.Hunks[i+1:] {
			if lhs.Overlaps(rhs) {
				err = multierr.Append(err, parseErrorf(
					"file %s: hunks %s and %s overlap", fd.Name, lhs.Header, rhs.Header))
			}
		}
	}
	return err
}

// Delta is the file's net line-count change: the sum of its hunks' deltas.
func (fd *FileDiff) Delta() int {
	delta := 0
	for _, h := range fd.Hunks {
		delta += h.Delta()
	}
	return delta
}

// Clone returns an independently owned copy.
func (fd *FileDiff) Clone() *FileDiff {
	hunks := make([]Hunk, len(fd.Hunks))
	for i, h := range fd.Hunks {
		hunks[i] = Hunk{Header: h.Header, Lines: slices.Clone(h.Lines)}
	}
	return &FileDiff{Name: fd.Name, Preamble: fd.Preamble, Hunks: hunks}
}

func (fd *FileDiff) writeTo(b *strings.Builder) {
	for _, line := range fd.Preamble {
		b.WriteString(line)
		b.WriteByte('\n')
	}
	for _, h := range fd.Hunks {
		b.WriteString(h.Header.String())
		b.WriteByte('\n')
		for _, line := range h.Lines {
			b.WriteString(line)
			b.WriteByte('\n')
		}
	}
}

// String renders the block in the input grammar, LF-separated.
func (fd *FileDiff) String() string {
	var b strings.Builder
	fd.writeTo(&b)
	return b.String()
}
