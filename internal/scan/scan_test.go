package scan

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/backmassage/dupsweep/internal/config"
	"github.com/backmassage/dupsweep/internal/logging"
)

func runPipeline(t *testing.T, roots ...string) ([]DuplicateSet, Stats) {
	t.Helper()
	cfg := config.DefaultConfig()
	cfg.Roots = roots
	sets, st, err := Run(context.Background(), &cfg, logging.Discard(), nil)
	require.NoError(t, err)
	return sets, st
}

func TestRun_FindsDuplicatePair(t *testing.T) {
	dir := t.TempDir()
	a := write(t, dir, "a.txt", "hello")
	b := write(t, dir, "b.txt", "hello")
	write(t, dir, "c.txt", "world")

	sets, st := runPipeline(t, dir)

	require.Len(t, sets, 1)
	set := sets[0]
	assert.Equal(t, a, set.Keep().Path)
	require.Len(t, set.Deletable(), 1)
	assert.Equal(t, b, set.Deletable()[0].Path)
	assert.Equal(t, int64(5), set.Size)
	assert.Equal(t, int64(5), set.Recoverable())
	assert.Equal(t, 3, st.FilesScanned)
}

func TestRun_SamePrefixDifferentContent(t *testing.T) {
	dir := t.TempDir()
	write(t, dir, "a.bin", "abcdefgh1")
	write(t, dir, "b.bin", "abcdefgh2")

	sets, st := runPipeline(t, dir)

	assert.Empty(t, sets, "files differing after the prefix are not duplicates")
	assert.Equal(t, 2, st.Hashed, "both reach the digest stage")
}

func TestRun_UniqueSizeNeverHashed(t *testing.T) {
	dir := t.TempDir()
	write(t, dir, "short.txt", "hi")
	write(t, dir, "long.txt", "something longer")

	sets, st := runPipeline(t, dir)

	assert.Empty(t, sets)
	assert.Equal(t, 0, st.Candidates, "unique sizes are pruned before the prefix stage")
	assert.Equal(t, 0, st.Hashed)
}

func TestRun_EmptyDirectory(t *testing.T) {
	sets, st := runPipeline(t, t.TempDir())
	assert.Empty(t, sets)
	assert.Equal(t, 0, st.FilesScanned)
}

func TestRun_ZeroByteFilesAreDuplicates(t *testing.T) {
	dir := t.TempDir()
	a := write(t, dir, "empty1", "")
	write(t, dir, "empty2", "")

	sets, _ := runPipeline(t, dir)

	require.Len(t, sets, 1)
	assert.Equal(t, a, sets[0].Keep().Path)
	assert.Equal(t, int64(0), sets[0].Recoverable())
	assert.Equal(t, "d41d8cd98f00b204e9800998ecf8427e", sets[0].Digest)
}

func TestRun_AllContentIdenticalInOneSet(t *testing.T) {
	dir := t.TempDir()
	write(t, dir, "one.txt", "same bytes")
	write(t, dir, "sub/two.txt", "same bytes")
	write(t, dir, "sub/three.txt", "same bytes")

	sets, _ := runPipeline(t, dir)

	require.Len(t, sets, 1, "identical files always land in exactly one set")
	assert.Len(t, sets[0].Files, 3)
	assert.Equal(t, int64(20), sets[0].Recoverable())
}

func TestRun_DeterministicKeepAcrossRuns(t *testing.T) {
	dir := t.TempDir()
	write(t, dir, "zz.txt", "payload")
	write(t, dir, "aa.txt", "payload")

	first, _ := runPipeline(t, dir)
	second, _ := runPipeline(t, dir)

	require.Len(t, first, 1)
	require.Len(t, second, 1)
	assert.Equal(t, filepath.Join(dir, "aa.txt"), first[0].Keep().Path)
	assert.Equal(t, first[0].Keep().Path, second[0].Keep().Path)
}

func TestRun_KeepFollowsRootOrder(t *testing.T) {
	first := t.TempDir()
	second := t.TempDir()
	keeper := write(t, first, "z.txt", "payload")
	write(t, second, "a.txt", "payload")

	sets, _ := runPipeline(t, first, second)

	require.Len(t, sets, 1)
	assert.Equal(t, keeper, sets[0].Keep().Path,
		"the copy in the first root wins regardless of filename")
}

func TestRun_SetsOrderedByTraversal(t *testing.T) {
	dir := t.TempDir()
	// Two independent duplicate groups with different sizes.
	write(t, dir, "a1.txt", "first group")
	write(t, dir, "a2.txt", "first group")
	write(t, dir, "b1.txt", "second group, longer")
	write(t, dir, "b2.txt", "second group, longer")

	sets, _ := runPipeline(t, dir)

	require.Len(t, sets, 2)
	assert.Equal(t, filepath.Join(dir, "a1.txt"), sets[0].Keep().Path)
	assert.Equal(t, filepath.Join(dir, "b1.txt"), sets[1].Keep().Path)
}

func TestRun_Cancelled(t *testing.T) {
	dir := t.TempDir()
	write(t, dir, "a.txt", "hello")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	cfg := config.DefaultConfig()
	cfg.Roots = []string{dir}
	_, _, err := Run(ctx, &cfg, logging.Discard(), nil)
	assert.ErrorIs(t, err, context.Canceled)
}
