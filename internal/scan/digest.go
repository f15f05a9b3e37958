package scan

import (
	"context"
	"crypto/md5"
	"encoding/hex"
	"io"
	"os"

	"github.com/backmassage/dupsweep/internal/logging"
)

// hashChunkSize is the streaming read size for digesting, bounding peak
// memory regardless of file size.
const hashChunkSize = 8 * 1024

// VerifyByDigest computes a full-content digest for every member of every
// prefix group and returns the sub-groups with two or more content-identical
// files. Digest equality is taken as proof of content equality; the MD5
// collision risk is an accepted limitation, not a correctness bug.
//
// A read failure during hashing excludes the file (warned, not fatal).
func VerifyByDigest(ctx context.Context, groups [][]FileEntry, log *logging.Logger, st *Stats, prog *Progress) ([]DuplicateSet, error) {
	total := 0
	for _, g := range groups {
		total += len(g)
	}
	prog.hashBegin(total)

	var sets []DuplicateSet
	for _, group := range groups {
		byDigest := make(map[string][]FileEntry)
		var order []string
		for _, f := range group {
			if err := ctx.Err(); err != nil {
				return sets, err
			}

			digest, err := DigestFile(f.Path)
			prog.hashed(f.Path)
			if err != nil {
				log.Warn("Cannot hash %s: %v", f.Path, err)
				st.Errors++
				continue
			}
			st.Hashed++
			if _, seen := byDigest[digest]; !seen {
				order = append(order, digest)
			}
			byDigest[digest] = append(byDigest[digest], f)
		}

		for _, digest := range order {
			files := byDigest[digest]
			if len(files) >= 2 {
				sets = append(sets, DuplicateSet{
					Files:  files,
					Size:   files[0].Size,
					Digest: digest,
				})
			}
		}
	}
	return sets, nil
}

// DigestFile streams the file's content through MD5 in fixed-size chunks and
// returns the hex-encoded digest.
func DigestFile(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	h := md5.New()
	buf := make([]byte, hashChunkSize)
	for {
		n, err := f.Read(buf)
		if n > 0 {
			h.Write(buf[:n])
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", err
		}
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}
