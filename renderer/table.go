package renderer

import (
	"fmt"
	"strings"
)

// mdRenderer accumulates a markdown document.
type mdRenderer struct {
	strings.Builder
}

// Printf formats according to a format specifier and writes to the renderer's buffer.
func (r *mdRenderer) Printf(format string, args ...any) {
	fmt.Fprintf(r, format, args...)
}

// Title prints a level 2 heading, nothing if title is empty.
func (r *mdRenderer) Title(title string) {
	if title != "" {
		r.Printf("## %s\n\n", title)
	}
}

// Table prints a table. The first labels columns are left aligned, the
// others, holding numbers, are right aligned.
func (r *mdRenderer) Table(labels int, header []string, rows [][]string) {
	r.row(header)
	r.Printf("|")
	for i := range header {
		if i < labels {
			r.Printf(":---|")
		} else {
			r.Printf("---:|")
		}
	}
	r.Printf("\n")
	for _, row := range rows {
		r.row(row)
	}
	r.Printf("\n")
}

func (r *mdRenderer) row(cells []string) {
	r.Printf("|")
	for _, c := range cells {
		r.Printf(" %s |", escape(c))
	}
	r.Printf("\n")
}

// escape protects the table structure from pipes in cell values.
func escape(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}
