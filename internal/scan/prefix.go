package scan

import (
	"context"
	"errors"
	"io"
	"os"

	"github.com/backmassage/dupsweep/internal/logging"
)

// FilterByPrefix sub-groups every size bucket by the first n bytes of each
// member and returns the groups that still have two or more members. This is
// purely a cheap pre-filter: files that differ early are never hashed, but
// skipping it would only change performance, never the final duplicate set.
//
// A read failure excludes the file from all further consideration (warned,
// not fatal). Member order within each group stays in traversal order.
func FilterByPrefix(ctx context.Context, index SizeIndex, n int, log *logging.Logger, st *Stats) ([][]FileEntry, error) {
	var groups [][]FileEntry

	for _, files := range index {
		if err := ctx.Err(); err != nil {
			return groups, err
		}

		byPrefix := make(map[string][]FileEntry)
		var order []string
		for _, f := range files {
			prefix, err := ReadPrefix(f.Path, n)
			if err != nil {
				log.Warn("Cannot read %s: %v", f.Path, err)
				st.Errors++
				continue
			}
			key := string(prefix)
			if _, seen := byPrefix[key]; !seen {
				order = append(order, key)
			}
			byPrefix[key] = append(byPrefix[key], f)
		}

		for _, key := range order {
			if group := byPrefix[key]; len(group) >= 2 {
				groups = append(groups, group)
			}
		}
	}
	return groups, nil
}

// ReadPrefix returns the first n bytes of the file at path. Files shorter
// than n yield their whole content: a short read is data, not an error, so an
// empty file's prefix is the empty byte sequence.
func ReadPrefix(path string, n int) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	buf := make([]byte, n)
	read, err := io.ReadFull(f, buf)
	if err != nil && !errors.Is(err, io.EOF) && !errors.Is(err, io.ErrUnexpectedEOF) {
		return nil, err
	}
	return buf[:read], nil
}
