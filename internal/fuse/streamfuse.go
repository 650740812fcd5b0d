package fuse

import (
	"github.com/patchfold/patchfold/internal/debuglog"
	"github.com/patchfold/patchfold/internal/unidiff"
)

// FuseHunks fuses exactly two hunks, l from the earlier diff and r from the
// later one. The pair must reach each other (l.ShouldFuse(r)).
func FuseHunks(l, r unidiff.Hunk) (unidiff.Hunk, error) {
	if !l.ShouldFuse(r) {
		return unidiff.Hunk{}, fuseErrorf("hunks %s and %s do not fuse", l.Header, r.Header)
	}
	src := &hunkPair{left: leftLines(l), right: rightLines(r)}
	return fuseLines(l.Header.FuseStarts(r.Header), src)
}

// FuseFileDiffs fuses two blocks for the same file. Hunks that do not reach
// across the diff boundary are emitted in order with their line numbers
// reprojected; hunks that do are drained, together with everything they
// transitively overlap, into a single fused hunk.
//
// Reprojection: loffset is the net line count the left diff has inserted so
// far and translates right pre-image numbers back to R0; roffset is the net
// count the right diff has inserted and translates left post-image numbers
// forward to R2. A fused cluster advances each offset by the deltas of the
// hunks it absorbed from that side, so nothing is counted twice.
func FuseFileDiffs(l, r *unidiff.FileDiff) (*unidiff.FileDiff, error) {
	if l.Name != r.Name {
		return nil, fuseErrorf("file names %s and %s do not match", l.Name, r.Name)
	}
	debuglog.Logf("fusing %s: %d and %d hunks", l.Name, len(l.Hunks), len(r.Hunks))

	lc := &hunkCursor{hunks: l.Hunks}
	rc := &hunkCursor{hunks: r.Hunks}
	var hunks []unidiff.Hunk
	var loffset, roffset int

	takeLeft := func() error {
		h, _ := lc.next()
		shifted, err := h.WithOffset(0, roffset)
		if err != nil {
			return fuseErrorf("file %s: %v", l.Name, err)
		}
		loffset += h.Delta()
		hunks = append(hunks, shifted)
		return nil
	}
	takeRight := func() error {
		h, _ := rc.next()
		shifted, err := h.WithOffset(-loffset, 0)
		if err != nil {
			return fuseErrorf("file %s: %v", l.Name, err)
		}
		roffset += h.Delta()
		hunks = append(hunks, shifted)
		return nil
	}

	for {
		lp, lok := lc.peek()
		rp, rok := rc.peek()

		var err error
		switch {
		case !lok && !rok:
			return unidiff.NewFileDiff(l.Name, l.Preamble, hunks), nil
		case !lok:
			err = takeRight()
		case !rok:
			err = takeLeft()
		case !lp.ShouldFuse(rp):
			if lp.Compare(rp) < 0 {
				err = takeLeft()
			} else {
				err = takeRight()
			}
		default:
			debuglog.Logf("fusing hunks %s and %s", lp.Header, rp.Header)
			starts := lp.Header.FuseStarts(rp.Header)
			left := newChain(lc, true)
			right := newChain(rc, false)
			var fused unidiff.Hunk
			fused, err = fuseLines(starts, &infoChain{l: left, r: right})
			if err == nil {
				loffset += left.delta
				roffset += right.delta
				hunks = append(hunks, fused)
			}
		}
		if err != nil {
			return nil, err
		}
	}
}
