package cli

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/backmassage/dupsweep/internal/resolve"
)

// stdinConfirmer returns a Confirmer that asks a y/N question on out and
// reads one line from in. Anything but an explicit yes declines, including
// a read error (e.g. closed stdin).
func stdinConfirmer(in io.Reader, out io.Writer) resolve.Confirmer {
	reader := bufio.NewReader(in)
	return func(prompt string) bool {
		fmt.Fprintf(out, "\n%s [y/N]: ", prompt)
		line, err := reader.ReadString('\n')
		if err != nil && line == "" {
			return false
		}
		return isAffirmative(line)
	}
}

func isAffirmative(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "y", "yes":
		return true
	}
	return false
}
