package scan

// FileEntry is a filesystem path with its cached size. Entries are created
// by the walker and passed forward unchanged; seq records the traversal
// position, which decides which member of a duplicate set is kept.
type FileEntry struct {
	Path string
	Size int64

	seq int
}

// SizeIndex maps exact byte size to the files of that size, in traversal order.
type SizeIndex map[int64][]FileEntry

// Prune removes size buckets with a single member. A file whose size matches
// no other file's size cannot be a duplicate, so it never reaches the prefix
// or hashing stages.
func (ix SizeIndex) Prune() {
	for size, files := range ix {
		if len(files) < 2 {
			delete(ix, size)
		}
	}
}

// Candidates returns the number of files across all buckets.
func (ix SizeIndex) Candidates() int {
	total := 0
	for _, files := range ix {
		total += len(files)
	}
	return total
}

// DuplicateSet is a group of two or more files with identical content.
// Files are in traversal order; the first one is the designated keeper.
type DuplicateSet struct {
	Files  []FileEntry
	Size   int64
	Digest string
}

// Keep returns the member that survives deletion: the first encountered
// during traversal.
func (s DuplicateSet) Keep() FileEntry {
	return s.Files[0]
}

// Deletable returns the members other than the keeper.
func (s DuplicateSet) Deletable() []FileEntry {
	return s.Files[1:]
}

// Recoverable returns the bytes freed by deleting everything but the keeper.
func (s DuplicateSet) Recoverable() int64 {
	return s.Size * int64(len(s.Files)-1)
}
