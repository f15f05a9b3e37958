package scan

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/backmassage/dupsweep/internal/logging"
)

// BuildSizeIndex walks each root and buckets regular files by exact byte
// size. Roots are visited in argument order and directory entries in lexical
// order, so the index preserves a deterministic traversal order. Symlinks to
// files are statted through and treated as regular files; symlink loops are
// not guarded against.
//
// Missing or non-directory roots and unreadable files are warned and
// skipped. Only a cancelled context aborts the walk; the partial index built
// so far is returned alongside the context error.
func BuildSizeIndex(ctx context.Context, roots []string, recursive bool, log *logging.Logger, st *Stats, prog *Progress) (SizeIndex, error) {
	index := make(SizeIndex)
	seq := 0
	add := func(path string, size int64) {
		index[size] = append(index[size], FileEntry{Path: path, Size: size, seq: seq})
		seq++
		st.FilesScanned++
		prog.scanned(st.FilesScanned)
	}

	for _, root := range roots {
		if err := ctx.Err(); err != nil {
			return index, err
		}

		fi, err := os.Stat(root)
		if err != nil {
			log.Warn("Skipping %q: %v", root, err)
			st.Errors++
			continue
		}
		if !fi.IsDir() {
			log.Warn("Skipping %q: not a directory", root)
			st.Errors++
			continue
		}

		if abs, err := filepath.Abs(root); err == nil {
			log.Info("Scanning directory: %s", abs)
		} else {
			log.Info("Scanning directory: %s", root)
		}

		if recursive {
			err = walkTree(ctx, root, log, st, add)
		} else {
			err = walkShallow(ctx, root, log, st, add)
		}
		if err != nil {
			return index, err
		}
	}
	return index, nil
}

// walkTree recursively collects regular files under root. WalkDir visits
// directory entries in lexical order, which is what makes the keep choice
// reproducible across runs.
func walkTree(ctx context.Context, root string, log *logging.Logger, st *Stats, add func(string, int64)) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if cerr := ctx.Err(); cerr != nil {
			return cerr
		}
		if err != nil {
			log.Warn("Cannot read %s: %v", path, err)
			st.Errors++
			return nil
		}
		if d.IsDir() {
			return nil
		}
		statFile(path, log, st, add)
		return nil
	})
}

// walkShallow collects only the direct children of root. os.ReadDir returns
// entries sorted by filename, matching the recursive traversal order.
func walkShallow(ctx context.Context, root string, log *logging.Logger, st *Stats, add func(string, int64)) error {
	entries, err := os.ReadDir(root)
	if err != nil {
		log.Warn("Cannot read %s: %v", root, err)
		st.Errors++
		return nil
	}
	for _, e := range entries {
		if cerr := ctx.Err(); cerr != nil {
			return cerr
		}
		if e.IsDir() {
			continue
		}
		statFile(filepath.Join(root, e.Name()), log, st, add)
	}
	return nil
}

// statFile stats path (following symlinks) and adds it to the index when it
// is a regular file. Stat failures are warned and the file is dropped.
func statFile(path string, log *logging.Logger, st *Stats, add func(string, int64)) {
	info, err := os.Stat(path)
	if err != nil {
		log.Warn("Cannot stat %s: %v", path, err)
		st.Errors++
		return
	}
	if !info.Mode().IsRegular() {
		return
	}
	add(path, info.Size())
}
