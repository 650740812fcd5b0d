// Package cli implements the patchfold command line: parse each PATH as a
// unified diff, fold them left with fusion, and print the composed diff.
package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/patchfold/patchfold/internal/fuse"
	"github.com/patchfold/patchfold/internal/unidiff"
)

const usage = "usage: patchfold [-h|--help] PATH [PATH...]"

// In/Out/Err override standard I/O. If nil, defaults are used. Overriding is
// useful for testing.
type RunOptions struct {
	In  io.Reader
	Out io.Writer
	Err io.Writer
}

// Run runs the CLI with args (typically os.Args).
//
// It returns a recommended exit code and an error, if any:
//   - 0 -> err == nil (including -h/--help)
//   - 1 -> a file could not be read, parsed, or fused
//   - 2 -> usage error (no paths)
//
// In cases of errors, Run has already written a message to opts.Err (or
// Stderr). Callers may use os.Exit with the exit code.
func Run(args []string, opts *RunOptions) (int, error) {
	argv := args
	if len(argv) > 0 {
		argv = argv[1:]
	}

	var out io.Writer = os.Stdout
	var errW io.Writer = os.Stderr
	if opts != nil {
		if opts.Out != nil {
			out = opts.Out
		}
		if opts.Err != nil {
			errW = opts.Err
		}
	}

	for _, a := range argv {
		if a == "-h" || a == "--help" {
			fmt.Fprintln(out, usage)
			return 0, nil
		}
	}
	if len(argv) == 0 {
		fmt.Fprintln(errW, usage)
		return 2, fmt.Errorf("no paths given")
	}

	folded, err := foldPaths(argv)
	if err != nil {
		fmt.Fprintln(errW, err)
		return 1, err
	}

	fmt.Fprint(out, folded.String())
	return 0, nil
}

// foldPaths parses every path and folds left with fusion.
func foldPaths(paths []string) (*unidiff.Diff, error) {
	var acc *unidiff.Diff
	for _, path := range paths {
		d, err := readDiff(path)
		if err != nil {
			return nil, err
		}
		if acc == nil {
			acc = d
			continue
		}
		acc, err = fuse.FuseDiffs(acc, d)
		if err != nil {
			return nil, fmt.Errorf("fusing %s: %w", path, err)
		}
	}
	return acc, nil
}

func readDiff(path string) (*unidiff.Diff, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	d, err := unidiff.Parse(string(data))
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return d, nil
}
