package fuse

import (
	"sort"

	"github.com/patchfold/patchfold/internal/unidiff"
)

// entry is a fused body line plus its placement key.
type entry struct {
	key  sortKey
	text string
}

// fuseLines runs the reconciliation kernel: it merges the two ranked streams
// of src into the fused hunk body, orders the result, collapses reverted
// groups, and completes starts with the counts and degenerate-start fixups.
func fuseLines(starts unidiff.Header, src pairSource) (unidiff.Hunk, error) {
	var counter lineCounter
	var entries []entry

	emit := func(ln line) error {
		key, err := counter.key(ln.tag())
		if err != nil {
			return err
		}
		entries = append(entries, entry{key: key, text: ln.text})
		return nil
	}

	for {
		lp, lok := src.peekLeft()
		rp, rok := src.peekRight()

		var err error
		switch {
		case !lok && !rok:
			return assemble(starts, entries)
		case !lok:
			err = emitNext(src.nextRight, emit)
		case !rok:
			err = emitNext(src.nextLeft, emit)
		case lp.rank < rp.rank:
			// The left stream describes a region of R1 the right stream
			// hasn't reached yet.
			err = emitNext(src.nextLeft, emit)
		case rp.rank < lp.rank:
			err = emitNext(src.nextRight, emit)
		default:
			err = reconcile(lp, rp, src, emit)
		}
		if err != nil {
			return unidiff.Hunk{}, err
		}
	}
}

func emitNext(next func() (line, bool), emit func(line) error) error {
	ln, ok := next()
	if !ok {
		return fuseErrorf("line stream ended under a live peek")
	}
	return emit(ln)
}

// reconcile handles one step where both streams rank the same R1 line,
// choosing by tag pair. Cases that read the same R1 line from both sides
// assert that the payloads agree.
func reconcile(lp, rp line, src pairSource, emit func(line) error) error {
	switch [2]byte{lp.tag(), rp.tag()} {
	case [2]byte{' ', ' '}, [2]byte{' ', '-'}:
		// Both sides pass through, or the right deletes what the left passed
		// through: the right line survives.
		return emitMatched(src, emit, true)

	case [2]byte{'+', ' '}:
		// The left inserted it, the right passes it through: still an insert.
		return emitMatched(src, emit, false)

	case [2]byte{'+', '-'}:
		// The left inserted it and the right deletes it again: cancels.
		return emitMatched(src, nil, false)

	case [2]byte{'-', ' '}, [2]byte{'-', '-'}:
		// The left deletion concerns R0 content the right never saw.
		return emitNext(src.nextLeft, emit)

	case [2]byte{' ', '+'}, [2]byte{'+', '+'}:
		// A right insertion lands here; the left line waits its turn.
		return emitNext(src.nextRight, emit)

	case [2]byte{'-', '+'}:
		left, lok := src.nextLeft()
		right, rok := src.nextRight()
		if !lok || !rok {
			return fuseErrorf("line stream ended under a live peek")
		}
		if left.payload() == right.payload() {
			// The right diff reverts the left edit.
			return nil
		}
		// A replacement: old content out, new content in.
		if err := emit(left); err != nil {
			return err
		}
		return emit(right)
	}

	return fuseErrorf("unexpected tags on lines %q and %q", lp.text, rp.text)
}

// emitMatched consumes one line from each side, asserts their payloads agree,
// and emits the right (or left) line; a nil emit discards the pair.
func emitMatched(src pairSource, emit func(line) error, right bool) error {
	l, lok := src.nextLeft()
	r, rok := src.nextRight()
	if !lok || !rok {
		return fuseErrorf("line stream ended under a live peek")
	}
	if l.payload() != r.payload() {
		return fuseErrorf("content mismatch between %q and %q", l.text, r.text)
	}
	if emit == nil {
		return nil
	}
	if right {
		return emit(r)
	}
	return emit(l)
}

// assemble orders the emitted lines, drops groups the two diffs round-tripped
// back to their original content, and completes the header.
func assemble(starts unidiff.Header, entries []entry) (unidiff.Hunk, error) {
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].key.less(entries[j].key)
	})
	entries = collapseReverts(entries)

	var dels, adds, ctx int
	lines := make([]string, 0, len(entries))
	for _, e := range entries {
		switch e.key.class {
		case classContext:
			ctx++
		case classDeletion:
			dels++
		case classInsertion:
			adds++
		}
		lines = append(lines, e.text)
	}

	header := starts
	header.PreCount = dels + ctx
	header.PostCount = adds + ctx
	switch {
	case header.PreCount == 0 && header.PostCount == 0:
		header.PreStart, header.PostStart = 0, 0
	case header.PreCount == 0:
		header.PreStart = header.PostStart - 1
	case header.PostCount == 0:
		header.PostStart = header.PreStart - 1
	}

	if len(lines) == 0 {
		lines = nil
	}
	return unidiff.Hunk{Header: header, Lines: lines}, nil
}

// collapseReverts drops each group's deletions and insertions when the two
// payload sequences are identical: such a group replaces a span with itself,
// which the tag table alone cannot see because the deletions and insertions
// arrive from opposite streams. This is what reduces a hunk fused with its
// inverse to the canonical no-op hunk.
func collapseReverts(entries []entry) []entry {
	out := entries[:0]
	for start := 0; start < len(entries); {
		end := start
		for end < len(entries) && entries[end].key.group == entries[start].key.group {
			end++
		}

		var dels, adds []string
		for _, e := range entries[start:end] {
			switch e.key.class {
			case classDeletion:
				dels = append(dels, e.text[1:])
			case classInsertion:
				adds = append(adds, e.text[1:])
			}
		}

		drop := len(dels) > 0 && len(dels) == len(adds)
		if drop {
			for i := range dels {
				if dels[i] != adds[i] {
					drop = false
					break
				}
			}
		}
		for _, e := range entries[start:end] {
			if drop && e.key.class != classContext {
				continue
			}
			out = append(out, e)
		}
		start = end
	}
	return out
}
