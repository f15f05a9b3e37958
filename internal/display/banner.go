package display

import (
	"fmt"
	"os"

	"github.com/fatih/color"
)

// PrintBanner prints the ASCII art banner; magenta when colors are enabled.
func PrintBanner() {
	banner := `     _
  __| |_   _ _ __  _____      _____  ___ _ __
 / _` + "`" + ` | | | | '_ \/ __\ \ /\ / / _ \/ _ \ '_ \
| (_| | |_| | |_) \__ \\ V  V /  __/  __/ |_) |
 \__,_|\__,_| .__/|___/ \_/\_/ \___|\___| .__/
            |_|                         |_|
`
	fmt.Fprint(os.Stdout, color.New(color.FgHiMagenta, color.Bold).Sprint(banner))
}
