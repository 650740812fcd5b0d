package unidiff

import (
	"fmt"
	"strconv"
	"strings"
)

// Header is the "@@ -a,b +c,d @@" range descriptor of a hunk. PreStart and
// PreCount span the pre-image lines the hunk touches, PostStart and PostCount
// the post-image lines. Starts are 1-based; a start of 0 goes with a count of
// 0 (nothing referenced on that side).
//
// Header is a small value type: it is copied freely and never aliased.
type Header struct {
	PreStart  int
	PreCount  int
	PostStart int
	PostCount int
}

// ParseHeader parses a hunk range header. Counts default to 1 when omitted
// ("@@ -2 +2 @@" means one line on each side). A leading '-' or '+' on a field
// is accepted and stripped, so "@@ 1,2 3,4 @@" and "@@ -1,2 +3,4 @@" parse to
// the same Header.
func ParseHeader(s string) (Header, error) {
	inner, ok := strings.CutPrefix(s, "@@ ")
	if ok {
		inner, ok = strings.CutSuffix(inner, " @@")
	}
	if !ok {
		return Header{}, parseErrorf("unexpected hunk header format in %q", s)
	}

	fields := [4]int{1, 1, 1, 1}
	i := 0
	for _, group := range strings.Split(inner, " ") {
		for j, field := range strings.Split(group, ",") {
			index := i + j
			if index >= len(fields) {
				return Header{}, parseErrorf("too many fields in hunk header %q", s)
			}
			n, err := strconv.Atoi(strings.TrimLeft(field, "-+"))
			if err != nil || n < 0 {
				return Header{}, parseErrorf("invalid field %q in hunk header %q", field, s)
			}
			fields[index] = n
		}
		i += 2
	}
	if i <= 2 {
		return Header{}, parseErrorf("too few fields in hunk header %q", s)
	}

	return Header{fields[0], fields[1], fields[2], fields[3]}, nil
}

// String renders the canonical form: counts equal to 1 are omitted.
func (h Header) String() string {
	switch {
	case h.PreCount == 1 && h.PostCount == 1:
		return fmt.Sprintf("@@ -%d +%d @@", h.PreStart, h.PostStart)
	case h.PostCount == 1:
		return fmt.Sprintf("@@ -%d,%d +%d @@", h.PreStart, h.PreCount, h.PostStart)
	case h.PreCount == 1:
		return fmt.Sprintf("@@ -%d +%d,%d @@", h.PreStart, h.PostStart, h.PostCount)
	default:
		return fmt.Sprintf("@@ -%d,%d +%d,%d @@", h.PreStart, h.PreCount, h.PostStart, h.PostCount)
	}
}

// preRange returns the half-open pre-image span [PreStart, PreStart+PreCount).
func (h Header) preRange() (int, int) {
	return h.PreStart, h.PreStart + h.PreCount
}

// postRange returns the half-open post-image span [PostStart, PostStart+PostCount).
func (h Header) postRange() (int, int) {
	return h.PostStart, h.PostStart + h.PostCount
}

func rangesIntersect(aMin, aMax, bMin, bMax int) bool {
	return aMin < bMax && bMin < aMax
}

// Overlaps reports whether the two headers share a pre-image line or a
// post-image line. Empty spans (count 0) intersect nothing. This symmetric
// predicate validates hunk layout within one file block.
func (h Header) Overlaps(other Header) bool {
	aMin, aMax := h.preRange()
	bMin, bMax := other.preRange()
	if rangesIntersect(aMin, aMax, bMin, bMax) {
		return true
	}
	aMin, aMax = h.postRange()
	bMin, bMax = other.postRange()
	return rangesIntersect(aMin, aMax, bMin, bMax)
}

// ShouldFuse reports whether h's post-image span intersects other's pre-image
// span. This asymmetric predicate drives fusion: h belongs to the earlier
// diff, other to the later one, and only the boundary between them matters.
func (h Header) ShouldFuse(other Header) bool {
	aMin, aMax := h.postRange()
	bMin, bMax := other.preRange()
	return rangesIntersect(aMin, aMax, bMin, bMax)
}

// Compare orders headers by min(PreStart, PostStart); it returns a negative
// number, zero, or a positive number as h sorts before, with, or after other.
func (h Header) Compare(other Header) int {
	return min(h.PreStart, h.PostStart) - min(other.PreStart, other.PostStart)
}

// WithOffset returns h with the pre start shifted by dl and the post start
// shifted by dr. A shift that would take either start negative is an error.
func (h Header) WithOffset(dl, dr int) (Header, error) {
	h.PreStart += dl
	h.PostStart += dr
	if h.PreStart < 0 || h.PostStart < 0 {
		return Header{}, fmt.Errorf("offsetting header %s by (%d, %d) underflows", h, dl, dr)
	}
	return h, nil
}

// StartOffset is the net number of lines earlier hunks of the same diff have
// inserted before this hunk: post start minus pre start, with an empty side's
// start bumped past its insertion point first.
func (h Header) StartOffset() int {
	post := h.PostStart
	if h.PostCount == 0 {
		post++
	}
	pre := h.PreStart
	if h.PreCount == 0 {
		pre++
	}
	return post - pre
}

// FuseStarts computes the range header a fused hunk starts from, with h the
// earlier hunk and other the later one. Counts are zero; the reconciliation
// kernel fills them in once the fused body is known. Each start encompasses
// both inputs after translating one of them: on the pre side the later hunk's
// start is shifted back by the earlier hunk's StartOffset, on the post side
// the earlier hunk's start is shifted forward by the later hunk's
// StartOffset; an empty side adopts the non-empty peer's start outright.
func (h Header) FuseStarts(other Header) Header {
	var pre int
	switch {
	case h.PreCount == 0 && other.PreCount != 0:
		pre = other.PreStart
	case h.PreCount != 0 && other.PreCount == 0:
		pre = h.PreStart
	default:
		pre = min(h.PreStart, other.PreStart-h.StartOffset())
	}

	var post int
	switch {
	case h.PostCount == 0 && other.PostCount != 0:
		post = other.PostStart
	case h.PostCount != 0 && other.PostCount == 0:
		post = h.PostStart
	default:
		post = min(h.PostStart+other.StartOffset(), other.PostStart)
	}

	return Header{PreStart: pre, PostStart: post}
}
