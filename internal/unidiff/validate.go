package unidiff

// Validate checks the Diff invariants and returns an error on the first
// violation. Parse-produced and fusion-produced values always satisfy these;
// Validate exists for hand-assembled values and for tests.
func (d *Diff) Validate() error {
	seen := make(map[string]bool, len(d.files))
	for _, fd := range d.files {
		if seen[fd.Name] {
			return parseErrorf("multiple blocks for file %s", fd.Name)
		}
		seen[fd.Name] = true
		if err := fd.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// Validate checks the FileDiff invariants: body counts per hunk and pairwise
// non-overlap across hunks.
func (fd *FileDiff) Validate() error {
	for _, h := range fd.Hunks {
		if err := h.validate(); err != nil {
			return err
		}
	}
	return fd.checkOverlaps()
}
