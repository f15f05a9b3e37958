package resolve

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/backmassage/dupsweep/internal/display"
)

// WriteReport renders the duplicate groups to w: one block per group with
// the keeper marked, followed by the total recoverable space.
func WriteReport(w io.Writer, p Plan) {
	if p.Groups() == 0 {
		fmt.Fprintf(w, "\n%s\n", color.GreenString("No duplicates found!"))
		return
	}

	fmt.Fprintf(w, "\n%s found:\n\n", display.FormatCount(p.Groups(), "duplicate group"))

	for i, set := range p.Sets {
		fmt.Fprintf(w, "Group %d (%s per file):\n", i+1, display.FormatBytes(set.Size))
		fmt.Fprintf(w, "  %s keep:   %s\n", color.GreenString("→"), set.Keep().Path)
		for _, f := range set.Deletable() {
			fmt.Fprintf(w, "  %s delete: %s\n", color.RedString("✗"), f.Path)
		}
		fmt.Fprintln(w)
	}

	fmt.Fprintf(w, "Total recoverable space: %s\n", display.FormatBytes(p.Recoverable()))
}
