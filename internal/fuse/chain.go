package fuse

import (
	"github.com/patchfold/patchfold/internal/debuglog"
	"github.com/patchfold/patchfold/internal/unidiff"
)

// pairSource feeds the reconciliation kernel one ranked line stream per side.
type pairSource interface {
	peekLeft() (line, bool)
	peekRight() (line, bool)
	nextLeft() (line, bool)
	nextRight() (line, bool)
}

// hunkPair is the pairSource over exactly two hunks.
type hunkPair struct {
	left  *lineIter
	right *lineIter
}

func (p *hunkPair) peekLeft() (line, bool)  { return p.left.peek() }
func (p *hunkPair) peekRight() (line, bool) { return p.right.peek() }
func (p *hunkPair) nextLeft() (line, bool)  { return p.left.next() }
func (p *hunkPair) nextRight() (line, bool) { return p.right.next() }

// hunkCursor is a peekable cursor over one side's ordered hunks.
type hunkCursor struct {
	hunks []unidiff.Hunk
	idx   int
}

func (c *hunkCursor) peek() (unidiff.Hunk, bool) {
	if c.idx >= len(c.hunks) {
		return unidiff.Hunk{}, false
	}
	return c.hunks[c.idx], true
}

func (c *hunkCursor) next() (unidiff.Hunk, bool) {
	h, ok := c.peek()
	if ok {
		c.idx++
	}
	return h, ok
}

// chain continues one side's line stream across hunk boundaries while the
// overlap cluster keeps growing: when the current hunk's lines run out and
// the side's next hunk still reaches the peer side's current hunk, the next
// hunk is absorbed and the stream continues.
type chain struct {
	hunks  *hunkCursor
	cur    *lineIter
	header unidiff.Header
	left   bool
	delta  int // summed Delta of absorbed hunks
}

func newChain(hunks *hunkCursor, left bool) *chain {
	c := &chain{hunks: hunks, cur: &lineIter{}, left: left}
	if h, ok := hunks.next(); ok {
		c.adopt(h)
	}
	return c
}

func (c *chain) adopt(h unidiff.Hunk) {
	c.header = h.Header
	c.delta += h.Delta()
	if c.left {
		c.cur = leftLines(h)
	} else {
		c.cur = rightLines(h)
	}
}

// currentHeader is the header of the hunk whose lines are still flowing, or
// the zero Header once they are spent — an empty span fuses with nothing, so
// the peer side stops absorbing against it.
func (c *chain) currentHeader() unidiff.Header {
	if _, ok := c.cur.peek(); ok {
		return c.header
	}
	return unidiff.Header{}
}

func (c *chain) peek(peer unidiff.Header) (line, bool) {
	for {
		if ln, ok := c.cur.peek(); ok {
			return ln, true
		}
		nextHunk, ok := c.hunks.peek()
		if !ok {
			return line{}, false
		}
		if c.left {
			if !nextHunk.Header.ShouldFuse(peer) {
				return line{}, false
			}
		} else {
			if !peer.ShouldFuse(nextHunk.Header) {
				return line{}, false
			}
		}
		h, _ := c.hunks.next()
		debuglog.Logf("chain absorbs hunk %s", h.Header)
		c.adopt(h)
	}
}

func (c *chain) next(peer unidiff.Header) (line, bool) {
	if _, ok := c.peek(peer); !ok {
		return line{}, false
	}
	return c.cur.next()
}

// infoChain is the pairSource over two chains; each side's stream extends
// only while its next hunk still fuses with the peer's current hunk.
type infoChain struct {
	l *chain
	r *chain
}

func (ic *infoChain) peekLeft() (line, bool)  { return ic.l.peek(ic.r.currentHeader()) }
func (ic *infoChain) peekRight() (line, bool) { return ic.r.peek(ic.l.currentHeader()) }
func (ic *infoChain) nextLeft() (line, bool)  { return ic.l.next(ic.r.currentHeader()) }
func (ic *infoChain) nextRight() (line, bool) { return ic.r.next(ic.l.currentHeader()) }
