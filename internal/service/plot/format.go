package plot

import (
	"fmt"
	"math"
	"strings"

	"github.com/sandevgo/argand/internal/core"
)

// FormatRoot renders a root as "z1 = 0.50 + 0.87i".
func FormatRoot(r core.ComplexRoot) string {
	return fmt.Sprintf("%s = %s", r.Label, FormatComplex(r.Real, r.Imaginary))
}

func FormatComplex(re, im float64) string {
	im = clean(im)
	sign := "+"
	if im < 0 {
		sign = "-"
	}
	return fmt.Sprintf("%.2f %s %.2fi", clean(re), sign, math.Abs(im))
}

// FormatRoots joins FormatRoot over roots, one per line.
func FormatRoots(roots []core.ComplexRoot) string {
	lines := make([]string, len(roots))
	for i, r := range roots {
		lines[i] = FormatRoot(r)
	}
	return strings.Join(lines, "\n")
}

// clean turns values that would print as -0.00 into 0.
func clean(v float64) float64 {
	if math.Abs(v) < 0.005 {
		return 0
	}
	return v
}
