package unidiff

import "strings"

// Hunk is one contiguous change region: a range Header plus the tagged body
// lines. Each body line carries its tag (' ', '-', or '+') as the first byte
// and excludes the line separator.
//
// Invariants:
//   - Header.PreCount == count of '-' and ' ' lines.
//   - Header.PostCount == count of '+' and ' ' lines.
type Hunk struct {
	Header Header
	Lines  []string
}

// bodyTag reports whether line belongs to a hunk body.
func bodyTag(line string) bool {
	if line == "" {
		return false
	}
	switch line[0] {
	case ' ', '-', '+':
		return true
	}
	return false
}

// parseHunk consumes one hunk from cur: the "@@" header line, then body lines
// until a non-body line (or end of input) is peeked. The body must agree with
// the header counts.
func parseHunk(cur *lineCursor) (Hunk, error) {
	headerLine, ok := cur.next()
	if !ok {
		return Hunk{}, parseErrorf("expected hunk header, got end of input")
	}
	header, err := ParseHeader(headerLine)
	if err != nil {
		return Hunk{}, err
	}

	var lines []string
	for {
		line, ok := cur.peek()
		if !ok || !bodyTag(line) {
			break
		}
		lines = append(lines, line)
		cur.next()
	}

	h := Hunk{Header: header, Lines: lines}
	if err := h.validate(); err != nil {
		return Hunk{}, err
	}
	return h, nil
}

// ParseHunk parses a single standalone hunk: the header line plus its body
// lines, nothing else.
func ParseHunk(text string) (Hunk, error) {
	lines, err := splitLines(text)
	if err != nil {
		return Hunk{}, err
	}
	cur := &lineCursor{lines: lines}
	h, err := parseHunk(cur)
	if err != nil {
		return Hunk{}, err
	}
	if !cur.eof() {
		return Hunk{}, parseErrorf("trailing content after hunk %s", h.Header)
	}
	return h, nil
}

// validate checks the body lines against the header counts.
func (h Hunk) validate() error {
	var pre, post int
	for _, line := range h.Lines {
		if !bodyTag(line) {
			return parseErrorf("unexpected body line %q in hunk %s", line, h.Header)
		}
		switch line[0] {
		case ' ':
			pre++
			post++
		case '-':
			pre++
		case '+':
			post++
		}
	}
	if pre != h.Header.PreCount || post != h.Header.PostCount {
		return parseErrorf("hunk %s: body spans -%d +%d lines", h.Header, pre, post)
	}
	return nil
}

// Delta is the net line-count change the hunk induces: additions minus
// deletions.
func (h Hunk) Delta() int {
	delta := 0
	for _, line := range h.Lines {
		switch line[0] {
		case '-':
			delta--
		case '+':
			delta++
		}
	}
	return delta
}

// WithOffset returns the hunk with its header starts shifted; the body is
// shared unchanged.
func (h Hunk) WithOffset(dl, dr int) (Hunk, error) {
	header, err := h.Header.WithOffset(dl, dr)
	if err != nil {
		return Hunk{}, err
	}
	return Hunk{Header: header, Lines: h.Lines}, nil
}

// Overlaps reports whether the two hunks share a pre-image or post-image line.
func (h Hunk) Overlaps(other Hunk) bool {
	return h.Header.Overlaps(other.Header)
}

// ShouldFuse reports whether h's post-image span reaches other's pre-image
// span; see Header.ShouldFuse.
func (h Hunk) ShouldFuse(other Hunk) bool {
	return h.Header.ShouldFuse(other.Header)
}

// Compare orders hunks by their headers.
func (h Hunk) Compare(other Hunk) int {
	return h.Header.Compare(other.Header)
}

// String renders the hunk as it appears in a diff, lines joined with LF and
// no trailing separator.
func (h Hunk) String() string {
	var b strings.Builder
	b.WriteString(h.Header.String())
	for _, line := range h.Lines {
		b.WriteByte('\n')
		b.WriteString(line)
	}
	return b.String()
}
