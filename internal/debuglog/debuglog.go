// Package debuglog is a minimal trace facility for debugging parse and fusion
// decisions. It is a no-op unless PATCHFOLD_DEBUG_LOG names a writable file,
// so call sites cost nothing in normal operation.
package debuglog

import (
	"bytes"
	"fmt"
	"os"
	"sync"
)

var mu sync.Mutex

// Logf is a printf-style logger. It appends formatted output to the file
// named by the PATCHFOLD_DEBUG_LOG environment variable.
//
// If PATCHFOLD_DEBUG_LOG is unset/empty or the path can't be opened as a
// file, Logf is a no-op.
func Logf(format string, args ...any) {
	path := os.Getenv("PATCHFOLD_DEBUG_LOG")
	if path == "" {
		return
	}

	// Serialize open/write/close to reduce interleaving within a single process.
	mu.Lock()
	defer mu.Unlock()

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return
	}
	defer f.Close()

	var b bytes.Buffer
	_, _ = fmt.Fprintf(&b, format, args...)
	if b.Len() == 0 || b.Bytes()[b.Len()-1] != '\n' {
		_ = b.WriteByte('\n')
	}
	_, _ = f.Write(b.Bytes())
}
