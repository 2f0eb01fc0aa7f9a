// Package static renders non-interactive terminal output.
package static

import (
	"strings"

	"github.com/raphi011/git-recent/internal/format"
	"github.com/raphi011/git-recent/internal/ui/styles"
)

// RenderRows renders one line per row. When colored is false the lines are
// exactly [format.Row.String]. When colored is true each already padded cell
// is wrapped in its style, so stripping the escape codes yields the plain
// line.
func RenderRows(rows []format.Row, colored bool) []string {
	lines := make([]string, len(rows))
	for i, r := range rows {
		if !colored {
			lines[i] = r.String()
			continue
		}
		lines[i] = styleRow(r)
	}
	return lines
}

func styleRow(r format.Row) string {
	marker, name := r.Marker, r.Name
	if strings.TrimSpace(marker) != "" {
		marker = styles.AccentStyle.Render(marker)
		name = styles.AccentStyle.Render(name)
	} else {
		name = styles.NameStyle.Render(name)
	}
	return marker + " " + name + "  " + styles.MutedStyle.Render(r.Age) + "  " + r.Summary
}
