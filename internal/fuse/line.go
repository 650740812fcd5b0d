package fuse

import "github.com/patchfold/patchfold/internal/unidiff"

// line is a hunk body line annotated with its rank: the R1 (middle revision)
// line number the record pertains to. Ranks are monotonic within a stream,
// with ties on lines that do not consume an R1 line.
type line struct {
	text string
	rank int
}

func (l line) tag() byte {
	if l.text == "" {
		return 0
	}
	return l.text[0]
}

func (l line) payload() string {
	if l.text == "" {
		return ""
	}
	return l.text[1:]
}

// lineIter walks one hunk body, assigning each line the current rank. A line
// tagged ' ' or kind advances the rank; the opposite tag does not. With kind
// '+' the iterator reads the body as the left view (ranks march through the
// hunk's post-image); with kind '-' as the right view (ranks march through
// the pre-image).
type lineIter struct {
	lines []string
	idx   int
	rank  int
	kind  byte
}

// leftLines reads h as the earlier diff's view of R1: ' ' and '+' lines
// advance the rank, starting from the header's post start.
func leftLines(h unidiff.Hunk) *lineIter {
	return &lineIter{lines: h.Lines, rank: h.Header.PostStart, kind: '+'}
}

// rightLines reads h as the later diff's view of R1: ' ' and '-' lines
// advance the rank, starting from the header's pre start.
func rightLines(h unidiff.Hunk) *lineIter {
	return &lineIter{lines: h.Lines, rank: h.Header.PreStart, kind: '-'}
}

func (it *lineIter) peek() (line, bool) {
	if it.idx >= len(it.lines) {
		return line{}, false
	}
	return line{text: it.lines[it.idx], rank: it.rank}, true
}

func (it *lineIter) next() (line, bool) {
	ln, ok := it.peek()
	if !ok {
		return line{}, false
	}
	it.idx++
	if t := ln.tag(); t == it.kind || t == ' ' {
		it.rank++
	}
	return ln, true
}
