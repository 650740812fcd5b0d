package unidiff

import (
	"errors"
	"fmt"
)

// ErrParse classifies every failure produced while parsing diff text:
// malformed headers, body/header count mismatches, duplicate file blocks,
// overlapping hunks within one file block, inconsistent line separators, and
// missing or malformed preamble lines.
var ErrParse = errors.New("parse error")

// IsParseError reports whether err (as returned from Parse) indicates that the
// input text itself was malformed.
func IsParseError(err error) bool {
	return errors.Is(err, ErrParse)
}

func parseErrorf(format string, args ...any) error {
	return errors.Join(ErrParse, fmt.Errorf(format, args...))
}
