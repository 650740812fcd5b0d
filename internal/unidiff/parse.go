package unidiff

import (
	"strings"

	"github.com/patchfold/patchfold/internal/debuglog"
)

// lineCursor is a peekable cursor over pre-split input lines.
type lineCursor struct {
	lines []string
	idx   int
}

func (c *lineCursor) eof() bool {
	return c.idx >= len(c.lines)
}

func (c *lineCursor) peek() (string, bool) {
	if c.eof() {
		return "", false
	}
	return c.lines[c.idx], true
}

func (c *lineCursor) next() (string, bool) {
	line, ok := c.peek()
	if ok {
		c.idx++
	}
	return line, ok
}

func (c *lineCursor) skipBlank() {
	for !c.eof() && strings.TrimSpace(c.lines[c.idx]) == "" {
		c.idx++
	}
}

// lineSeparator sniffs the input's separator. Any CRLF makes CRLF the
// separator, after which a '\n' not preceded by '\r' is a parse error.
func lineSeparator(data string) (string, error) {
	if !strings.Contains(data, "\r\n") {
		return "\n", nil
	}
	for i := 0; i < len(data); i++ {
		if data[i] == '\n' && (i == 0 || data[i-1] != '\r') {
			return "", parseErrorf("inconsistent line separator: bare LF at byte %d of CRLF input", i)
		}
	}
	return "\r\n", nil
}

// splitLines splits data on its sniffed separator, dropping the empty slot a
// trailing separator would produce.
func splitLines(data string) ([]string, error) {
	sep, err := lineSeparator(data)
	if err != nil {
		return nil, err
	}
	lines := strings.Split(data, sep)
	if n := len(lines); n > 0 && lines[n-1] == "" {
		lines = lines[:n-1]
	}
	return lines, nil
}

// Parse reads a whole diff: file blocks back to back, blank lines tolerated
// between blocks and between hunks.
func Parse(data string) (*Diff, error) {
	lines, err := splitLines(data)
	if err != nil {
		return nil, err
	}

	d := NewDiff()
	cur := &lineCursor{lines: lines}
	for {
		cur.skipBlank()
		if cur.eof() {
			break
		}
		fd, err := parseFileDiff(cur)
		if err != nil {
			return nil, err
		}
		debuglog.Logf("parsed file block %s with %d hunks", fd.Name, len(fd.Hunks))
		if err := d.Add(fd); err != nil {
			return nil, err
		}
	}
	return d, nil
}
