package git

import (
	"strings"
	"unicode"
)

// Summary returns the first paragraph of a commit message folded onto a
// single line, as git's %(subject) does. Leading blank lines are skipped,
// trailing whitespace is trimmed from each line and the lines are joined
// with a space. Leading whitespace within a line is kept.
func Summary(message string) string {
	var parts []string
	for line := range strings.SplitSeq(message, "\n") {
		line = strings.TrimRightFunc(line, unicode.IsSpace)
		if line == "" {
			if len(parts) > 0 {
				break
			}
			continue
		}
		parts = append(parts, line)
	}
	return strings.Join(parts, " ")
}
