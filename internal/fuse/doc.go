// Package fuse composes two sequential unified diffs into one equivalent
// diff. Given diff A transforming revision R0 into R1 and diff B transforming
// R1 into R2, FuseDiffs produces the diff that transforms R0 directly into
// R2. This is not a three-way merge: B's pre-image is assumed to equal A's
// post-image line for line, and any disagreement between the two is an error,
// never a conflict to resolve.
//
// The engine works at three altitudes sharing one reconciliation kernel:
//
//   - FuseDiffs outer-joins the two diffs by file name and fuses per file;
//     files present on only one side are carried over. Output files are
//     ordered lexicographically.
//   - FuseFileDiffs walks the two ordered hunk sequences of one file,
//     interleaving hunks that do not reach each other and handing clusters of
//     transitively overlapping hunks to the kernel. Two running offsets track
//     how many net lines each side has inserted so far, so lone hunks from
//     either side can be reprojected into the fused coordinate space.
//   - FuseHunks reconciles exactly two overlapping hunks.
//
// The kernel walks both sides in lock-step over R1. Each side's body is read
// as a stream of lines ranked by the R1 line they pertain to: the left hunk's
// ' '/'+' lines reconstruct R1, the right hunk's ' '/'-' lines consume it.
// Where both streams rank the same R1 line, a tag-pair table decides what
// survives; notably an insert-then-delete cancels and an edit followed by its
// exact revert collapses to nothing.
//
// All failures are classified under ErrFuse; see IsFuseError.
package fuse
