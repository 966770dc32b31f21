// Package patch renders a line-by-line patch between two texts.
package patch

import (
	"strings"
	"time"
)

// Header opens every patch.
const Header = "--- Original\n+++ Modified\n"

// Naive compares the texts index by index, without alignment. Equal lines are
// kept as context; otherwise the old line is removed and the new one added.
// A line missing on one side compares as empty. Inserting a line therefore
// marks every following line as changed.
func Naive(original, modified string) string {
	oldLines := strings.Split(original, "\n")
	newLines := strings.Split(modified, "\n")
	n := max(len(oldLines), len(newLines))

	var b strings.Builder
	b.WriteString(Header)
	for i := 0; i < n; i++ {
		o, hasOld := line(oldLines, i)
		m, hasNew := line(newLines, i)
		if o == m {
			b.WriteString(" " + o + "\n")
			continue
		}
		if hasOld {
			b.WriteString("-" + o + "\n")
		}
		if hasNew {
			b.WriteString("+" + m + "\n")
		}
	}
	return b.String()
}

func line(lines []string, i int) (string, bool) {
	if i < len(lines) {
		return lines[i], true
	}
	return "", false
}

// FileName is the suggested name for a patch written at now.
func FileName(now time.Time) string {
	return "diff-" + now.UTC().Format(time.DateOnly) + ".patch"
}
