package fuse

import (
	"errors"
	"fmt"
)

// ErrFuse classifies every failure produced while fusing: mismatched file
// names, content disagreements between the two diffs' views of the middle
// revision, header reprojection underflow, and fusing a pair of hunks that do
// not reach each other.
var ErrFuse = errors.New("fusion error")

// IsFuseError reports whether err originated in a fusion operation.
func IsFuseError(err error) bool {
	return errors.Is(err, ErrFuse)
}

func fuseErrorf(format string, args ...any) error {
	return errors.Join(ErrFuse, fmt.Errorf(format, args...))
}
