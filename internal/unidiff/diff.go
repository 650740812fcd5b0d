package unidiff

import "strings"

// Diff is an ordered collection of per-file change blocks, at most one per
// file name. Iteration order is the order in which files were first observed.
type Diff struct {
	files []*FileDiff
	index map[string]int
}

// NewDiff returns an empty Diff.
func NewDiff() *Diff {
	return &Diff{index: make(map[string]int)}
}

// Add appends a file block, rejecting a second block for the same file.
func (d *Diff) Add(fd *FileDiff) error {
	if _, ok := d.index[fd.Name]; ok {
		return parseErrorf("multiple blocks for file %s", fd.Name)
	}
	d.index[fd.Name] = len(d.files)
	d.files = append(d.files, fd)
	return nil
}

// Files returns the blocks in iteration order. The slice is shared; callers
// must not mutate it.
func (d *Diff) Files() []*FileDiff {
	return d.files
}

// File returns the block for name, if any.
func (d *Diff) File(name string) (*FileDiff, bool) {
	i, ok := d.index[name]
	if !ok {
		return nil, false
	}
	return d.files[i], true
}

// Len is the number of file blocks.
func (d *Diff) Len() int {
	return len(d.files)
}

// String renders the whole diff, LF-separated, byte-compatible with the input
// grammar.
func (d *Diff) String() string {
	var b strings.Builder
	for _, fd := range d.files {
		fd.writeTo(&b)
	}
	return b.String()
}
