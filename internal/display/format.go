package display

import (
	"fmt"
)

// FormatBytes returns a human-readable size (B, KB, MB, GB, TB, PB), using
// 1024-based units with two decimals above the byte range.
func FormatBytes(bytes int64) string {
	const unit = 1024
	if bytes < unit {
		return fmt.Sprintf("%d B", bytes)
	}
	div, exp := int64(unit), 0
	for n := bytes / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	suffixes := []string{"KB", "MB", "GB", "TB", "PB"}
	if exp >= len(suffixes) {
		exp = len(suffixes) - 1
		div = 1
		for i := 0; i <= exp; i++ {
			div *= unit
		}
	}
	return fmt.Sprintf("%.2f %s", float64(bytes)/float64(div), suffixes[exp])
}

// FormatCount renders a file count with its noun, e.g. "1 file", "3 files".
func FormatCount(n int, noun string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, noun)
	}
	return fmt.Sprintf("%d %ss", n, noun)
}
