// File: recorder.go
// Role: Renders the text block of a step.
// Layout:
//
//	Step N
//
//	  →[c] unit: A, B        selected entry
//	    c unit: A, C         other active entries, ascending
//	    ~c unit: A, D---x    discards (carried first, then dominated)
//
//	Expanded: A, B           visited nodes in expansion order, or "none"
//
// followed by either the separator or the termination block.

package ucs

import (
	"strconv"
	"strings"
)

type recorder struct {
	unit string
	sep  string
}

func (rc recorder) cost(c float64) string {
	if rc.unit == "" {
		return FormatCost(c)
	}

	return FormatCost(c) + " " + rc.unit
}

func (rc recorder) body(index int, selected Entry, active []Entry, shown []Discard, expanded []string) string {
	var b strings.Builder

	b.WriteString("\nStep ")
	b.WriteString(strconv.Itoa(index))
	b.WriteString("\n\n")

	for _, e := range active {
		if e.Equal(selected) {
			b.WriteString("  →[" + FormatCost(e.Cost) + "]")
			if rc.unit != "" {
				b.WriteString(" " + rc.unit)
			}
		} else {
			b.WriteString("    " + rc.cost(e.Cost))
		}
		b.WriteString(": " + strings.Join(e.Path, ", ") + "\n")
	}
	for _, d := range shown {
		b.WriteString("    ~" + rc.cost(d.Cost) + ": " + strings.Join(d.Path, ", ") + "---x\n")
	}

	b.WriteString("\nExpanded: ")
	if len(expanded) == 0 {
		b.WriteString("none")
	} else {
		b.WriteString(strings.Join(expanded, ", "))
	}
	b.WriteString("\n")

	return b.String()
}

func (rc recorder) separator() string {
	return "\n" + rc.sep + "\n"
}

func (rc recorder) done(e Entry) string {
	return "\nDONE.\n\nPath: " + strings.Join(e.Path, " → ") + "\nCost: " + rc.cost(e.Cost) + "\n"
}
