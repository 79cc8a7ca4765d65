package plot

import (
	"math"

	"github.com/sandevgo/argand/internal/core"
)

// FallbackRange is used when every root sits on the origin or there are none.
const FallbackRange = 5

// DomainRange returns L such that [-L, L] on both axes shows every root with
// half again as much headroom as the largest coordinate.
func DomainRange(roots []core.ComplexRoot) float64 {
	var m float64
	for _, r := range roots {
		m = math.Max(m, math.Max(math.Abs(r.Real), math.Abs(r.Imaginary)))
	}

	l := math.Ceil(m * 1.5)
	if l == 0 || math.IsNaN(l) || math.IsInf(l, 0) {
		return FallbackRange
	}
	return l
}
