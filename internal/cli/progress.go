package cli

import (
	"fmt"
	"os"

	"github.com/schollz/progressbar/v3"

	"github.com/backmassage/dupsweep/internal/config"
	"github.com/backmassage/dupsweep/internal/scan"
	"github.com/backmassage/dupsweep/internal/term"
)

// attachProgress returns the progress callbacks for the pipeline and a
// cleanup function to call once the scan finishes. Progress is a live
// counter during the walk and a bar during hashing; both are suppressed
// when stdout is not a TTY or --no-progress was given.
func attachProgress(cfg *config.Config) (*scan.Progress, func()) {
	if !cfg.ShowProgress || !term.IsTerminal(os.Stdout) {
		return nil, func() {}
	}

	var bar *progressbar.ProgressBar
	prog := &scan.Progress{
		Scanned: func(total int) {
			if total%100 == 0 {
				fmt.Printf("  Files examined: %d...\r", total)
			}
		},
		HashBegin: func(total int) {
			if total == 0 {
				return
			}
			bar = progressbar.NewOptions(total,
				progressbar.OptionSetDescription("Hashing files..."),
				progressbar.OptionShowCount(),
				progressbar.OptionSetWidth(15),
				progressbar.OptionClearOnFinish(),
			)
		},
		Hashed: func(string) {
			if bar != nil {
				_ = bar.Add(1)
			}
		},
	}
	cleanup := func() {
		if bar != nil {
			_ = bar.Finish()
		}
	}
	return prog, cleanup
}
