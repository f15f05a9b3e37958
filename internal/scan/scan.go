package scan

import (
	"context"
	"sort"

	"github.com/backmassage/dupsweep/internal/config"
	"github.com/backmassage/dupsweep/internal/display"
	"github.com/backmassage/dupsweep/internal/logging"
)

// Run executes the full pipeline for cfg.Roots: build the size index, prune
// unique sizes, filter by byte prefix, then confirm with content digests.
// The returned sets are ordered by the traversal position of their keeper,
// so output is stable across runs on an unchanged tree.
//
// On context cancellation Run returns the sets confirmed so far together
// with the context error; a partial result is always safe to report.
func Run(ctx context.Context, cfg *config.Config, log *logging.Logger, prog *Progress) ([]DuplicateSet, Stats, error) {
	var st Stats

	index, err := BuildSizeIndex(ctx, cfg.Roots, cfg.Recursive, log, &st, prog)
	if err != nil {
		return nil, st, err
	}
	log.Info("Examined %s", display.FormatCount(st.FilesScanned, "file"))

	index.Prune()
	st.Candidates = index.Candidates()
	log.Debug("%d candidate files across %d size groups", st.Candidates, len(index))

	groups, err := FilterByPrefix(ctx, index, cfg.PrefixBytes, log, &st)
	if err != nil {
		return nil, st, err
	}
	log.Debug("%d groups survive the %d-byte prefix filter", len(groups), cfg.PrefixBytes)

	sets, err := VerifyByDigest(ctx, groups, log, &st, prog)
	sortSets(sets)
	return sets, st, err
}

// sortSets orders duplicate sets by the traversal position of their keeper.
// The grouping maps are rebuilt fresh each stage, so this is the only place
// ordering has to be restored.
func sortSets(sets []DuplicateSet) {
	sort.Slice(sets, func(i, j int) bool {
		return sets[i].Files[0].seq < sets[j].Files[0].seq
	})
}
