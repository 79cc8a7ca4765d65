// Package plot prepares roots for display on the Argand plane.
package plot

import (
	"github.com/sandevgo/argand/internal/core"
)

// DefaultColor is used for roots that carry no series color.
const DefaultColor = "#0ea5e9"

// Aggregate flattens the roots of every entry, in entry order then solver
// order, tagging each copy with its entry's color and equation.
func Aggregate(entries []core.HistoryEntry) []core.ComplexRoot {
	var n int
	for _, e := range entries {
		n += len(e.Solution.Roots)
	}

	roots := make([]core.ComplexRoot, 0, n)
	for _, e := range entries {
		for _, r := range e.Solution.Roots {
			r.Color = e.Color
			r.SourceEquation = e.Equation
			roots = append(roots, r)
		}
	}
	return roots
}
