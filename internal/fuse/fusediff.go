package fuse

import (
	"slices"

	"github.com/patchfold/patchfold/internal/unidiff"
)

// FuseDiffs composes two whole diffs: l transforms R0 into R1, r transforms
// R1 into R2, and the result transforms R0 into R2. Files are outer-joined by
// name — a file touched by only one diff is carried over as-is — and the
// result lists files lexicographically.
func FuseDiffs(l, r *unidiff.Diff) (*unidiff.Diff, error) {
	names := make([]string, 0, l.Len()+r.Len())
	for _, fd := range l.Files() {
		names = append(names, fd.Name)
	}
	for _, fd := range r.Files() {
		if _, ok := l.File(fd.Name); !ok {
			names = append(names, fd.Name)
		}
	}
	slices.Sort(names)

	out := unidiff.NewDiff()
	for _, name := range names {
		lf, lok := l.File(name)
		rf, rok := r.File(name)

		var fd *unidiff.FileDiff
		switch {
		case lok && rok:
			fused, err := FuseFileDiffs(lf, rf)
			if err != nil {
				return nil, err
			}
			fd = fused
		case lok:
			fd = lf.Clone()
		default:
			fd = rf.Clone()
		}

		if err := out.Add(fd); err != nil {
			return nil, err
		}
	}
	return out, nil
}
