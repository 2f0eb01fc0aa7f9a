package format

import (
	"fmt"
	"strings"
	"time"

	"github.com/raphi011/git-recent/internal/branch"
)

const (
	// MinNameWidth keeps short branch lists from collapsing the name column.
	MinNameWidth = 10
	// AgeWidth is the fixed width of the age column.
	AgeWidth = 10
)

const day = 24 * time.Hour

// Duration renders elapsed time as a right-aligned, AgeWidth-cell age.
func Duration(elapsed time.Duration) string {
	switch {
	case elapsed >= day:
		return fmt.Sprintf("%5dd ago", int64(elapsed/day))
	case elapsed >= time.Hour:
		return fmt.Sprintf("%5dh ago", int64(elapsed/time.Hour))
	default:
		return fmt.Sprintf("%*s", AgeWidth, "now")
	}
}

// Row holds the padded cells of one rendered line.
type Row struct {
	Marker  string // "*" or " "
	Name    string // padded to the name column width
	Age     string // AgeWidth cells
	Summary string
}

// String joins the cells with the column separators.
func (r Row) String() string {
	return r.Marker + " " + r.Name + "  " + r.Age + "  " + r.Summary
}

// NameWidth returns the name column width for entries. Names are measured
// in bytes, so a non-ASCII name pads the same as with printf's %-*s.
func NameWidth(entries []branch.Entry) int {
	width := MinNameWidth
	for _, e := range entries {
		width = max(width, len(e.Name))
	}
	return width
}

// RenderRows computes the padded cells for each entry, with ages relative to now.
func RenderRows(entries []branch.Entry, now time.Time) []Row {
	width := NameWidth(entries)
	rows := make([]Row, 0, len(entries))
	for _, e := range entries {
		marker := " "
		if e.IsHead {
			marker = "*"
		}
		rows = append(rows, Row{
			Marker:  marker,
			Name:    e.Name + strings.Repeat(" ", width-len(e.Name)),
			Age:     Duration(now.Sub(e.CommitTime)),
			Summary: e.Summary,
		})
	}
	return rows
}

// Render returns one line per entry. An empty input renders no lines.
func Render(entries []branch.Entry, now time.Time) []string {
	rows := RenderRows(entries, now)
	lines := make([]string, len(rows))
	for i, r := range rows {
		lines[i] = r.String()
	}
	return lines
}
