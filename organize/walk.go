package organize

import (
	"errors"
	"io/fs"
	"iter"
	"path/filepath"
)

var errStopWalk = errors.New("walk stopped")

// Files yields every regular file under root that the organizer sorts, in
// lexical walk order. The OutputDirName subtree and excluded names are
// skipped. A walk error is yielded once with an empty path and ends the
// sequence. The sequence is single-pass.
//
// Lexical order means a directory's subdirectories and files are interleaved
// by name, so "a/x.png" comes before "b.png". Which of two same-named files
// wins a bucket copy follows this order.
//
// A symlinked root is followed; symlinks below it are not. Yielded paths are
// always under root as given.
func Files(root string) iter.Seq2[string, error] {
	root = filepath.Clean(root)

	return func(yield func(string, error) bool) {
		resolved, err := filepath.EvalSymlinks(root)
		if err != nil {
			yield("", err)
			return
		}
		output := OutputDir(resolved)

		err = filepath.WalkDir(resolved, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() {
				if path == output {
					return filepath.SkipDir
				}
				return nil
			}
			if !d.Type().IsRegular() || Excluded(d.Name()) {
				return nil
			}
			rel, err := filepath.Rel(resolved, path)
			if err != nil {
				return err
			}
			if !yield(filepath.Join(root, rel), nil) {
				return errStopWalk
			}
			return nil
		})
		if err != nil && !errors.Is(err, errStopWalk) {
			yield("", err)
		}
	}
}
