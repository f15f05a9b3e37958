// Package report writes a machine-readable JSON summary of a run, for
// feeding the results into other tooling.
package report

import (
	"encoding/json"
	"os"
	"time"

	"github.com/backmassage/dupsweep/internal/resolve"
	"github.com/backmassage/dupsweep/internal/scan"
)

// Per-file action values.
const (
	ActionKept      = "kept"      // the group's keeper
	ActionCandidate = "candidate" // deletable but not removed this run
	ActionDeleted   = "deleted"   // removed this run
)

type File struct {
	Path   string `json:"path"`
	Size   int64  `json:"size"`
	Action string `json:"action"`
}

type Group struct {
	Digest string `json:"digest"`
	Size   int64  `json:"size"`
	Files  []File `json:"files"`
}

type Report struct {
	ScannedAt        time.Time `json:"scanned_at"`
	Roots            []string  `json:"roots"`
	FilesScanned     int       `json:"files_scanned"`
	DuplicateGroups  []Group   `json:"duplicate_groups"`
	DuplicateFiles   int       `json:"duplicate_files"`
	RecoverableBytes int64     `json:"recoverable_bytes"`
	DeletedFiles     int       `json:"deleted_files"`
	ReclaimedBytes   int64     `json:"reclaimed_bytes"`
}

// Build assembles a Report from the pipeline output and the deletion result.
// res may be the zero Result for report-only runs.
func Build(roots []string, st scan.Stats, p resolve.Plan, res resolve.Result) Report {
	removed := make(map[string]bool, len(res.Removed))
	for _, path := range res.Removed {
		removed[path] = true
	}

	groups := make([]Group, 0, p.Groups())
	for _, set := range p.Sets {
		g := Group{Digest: set.Digest, Size: set.Size}
		for i, f := range set.Files {
			action := ActionCandidate
			switch {
			case i == 0:
				action = ActionKept
			case removed[f.Path]:
				action = ActionDeleted
			}
			g.Files = append(g.Files, File{Path: f.Path, Size: f.Size, Action: action})
		}
		groups = append(groups, g)
	}

	return Report{
		ScannedAt:        time.Now(),
		Roots:            roots,
		FilesScanned:     st.FilesScanned,
		DuplicateGroups:  groups,
		DuplicateFiles:   p.Deletable(),
		RecoverableBytes: p.Recoverable(),
		DeletedFiles:     res.Deleted,
		ReclaimedBytes:   res.Reclaimed,
	}
}

// WriteFile writes the report as indented JSON.
func (r Report) WriteFile(path string) error {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
