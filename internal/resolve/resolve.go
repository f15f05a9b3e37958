// Package resolve is the boundary between detection and action: it renders
// duplicate reports, accounts recoverable space, and performs best-effort
// deletion of everything but each group's keeper.
package resolve

import (
	"context"
	"fmt"
	"os"

	"github.com/backmassage/dupsweep/internal/display"
	"github.com/backmassage/dupsweep/internal/logging"
	"github.com/backmassage/dupsweep/internal/scan"
)

// Plan wraps the confirmed duplicate sets with the accounting the resolver
// needs. The keep/delete roles come from scan: first by traversal order is
// kept, the rest are candidates.
type Plan struct {
	Sets []scan.DuplicateSet
}

// NewPlan builds a deletion plan from the pipeline's output.
func NewPlan(sets []scan.DuplicateSet) Plan {
	return Plan{Sets: sets}
}

// Groups returns the number of duplicate groups.
func (p Plan) Groups() int { return len(p.Sets) }

// Deletable returns the total number of delete candidates across all groups.
func (p Plan) Deletable() int {
	total := 0
	for _, s := range p.Sets {
		total += len(s.Files) - 1
	}
	return total
}

// Recoverable returns the bytes freed if every candidate is deleted:
// the sum over all groups of size x (members - 1).
func (p Plan) Recoverable() int64 {
	var total int64
	for _, s := range p.Sets {
		total += s.Recoverable()
	}
	return total
}

// Confirmer decides whether deletion may proceed. The cli package supplies a
// stdin prompt or an auto-yes; tests inject their own.
type Confirmer func(prompt string) bool

// Result accounts for one Apply pass.
type Result struct {
	Deleted   int
	Failed    int
	Reclaimed int64
	Removed   []string // paths actually deleted, for reporting
}

// Apply deletes the delete candidates of every group, never the keeper.
// Deletion is best-effort per file: a failure is logged, counted, and the
// pass continues. Each removal commits independently, so cancellation
// mid-pass leaves a consistent tree with some duplicates simply remaining.
//
// When confirm is non-nil it is asked once before anything is removed;
// declining cancels the pass without error.
func Apply(ctx context.Context, p Plan, confirm Confirmer, log *logging.Logger) (Result, error) {
	var res Result
	if p.Groups() == 0 {
		return res, nil
	}

	if confirm != nil {
		prompt := fmt.Sprintf("Delete %s?", display.FormatCount(p.Deletable(), "duplicate file"))
		if !confirm(prompt) {
			log.Info("Deletion cancelled.")
			return res, nil
		}
	}

	for _, set := range p.Sets {
		for _, f := range set.Deletable() {
			if err := ctx.Err(); err != nil {
				return res, err
			}
			if err := os.Remove(f.Path); err != nil {
				log.Error("Failed to delete %s: %v", f.Path, err)
				res.Failed++
				continue
			}
			log.Success("Deleted: %s", f.Path)
			res.Deleted++
			res.Reclaimed += f.Size
			res.Removed = append(res.Removed, f.Path)
		}
	}
	return res, nil
}
