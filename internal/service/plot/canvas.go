package plot

import (
	"fmt"
	"math"

	"github.com/sandevgo/argand/internal/core"
)

// Point is a root projected onto canvas pixels.
type Point struct {
	X, Y   float64
	Color  string
	Label  string
	Value  string
	Source string
}

// Tick marks v on both axes. X is the pixel column on the real axis, Y the
// pixel row on the imaginary axis.
type Tick struct {
	X, Y  float64
	Label string
}

// Canvas is a square Argand plane of Size pixels mapping [-Range, Range].
type Canvas struct {
	Size   float64
	Margin float64
	Range  float64
	Points []Point
	Ticks  []Tick
}

func (c Canvas) Center() float64 { return c.Size / 2 }

func (c Canvas) Min() float64 { return c.Margin }

func (c Canvas) Max() float64 { return c.Size - c.Margin }

func (c Canvas) scale() float64 {
	return (c.Size - 2*c.Margin) / (2 * c.Range)
}

// NewCanvas lays out roots on a canvas of size pixels.
func NewCanvas(roots []core.ComplexRoot, size float64) Canvas {
	c := Canvas{
		Size:   size,
		Margin: 24,
		Range:  DomainRange(roots),
	}

	k := c.scale()
	for _, r := range roots {
		color := r.Color
		if color == "" {
			color = DefaultColor
		}
		c.Points = append(c.Points, Point{
			X:      c.Center() + r.Real*k,
			Y:      c.Center() - r.Imaginary*k,
			Color:  color,
			Label:  r.Label,
			Value:  FormatComplex(r.Real, r.Imaginary),
			Source: r.SourceEquation,
		})
	}

	step := tickStep(c.Range)
	for v := -c.Range; v <= c.Range; v += step {
		if v == 0 {
			continue
		}
		c.Ticks = append(c.Ticks, Tick{X: c.Center() + v*k, Y: c.Center() - v*k, Label: fmt.Sprintf("%g", v)})
	}
	return c
}

// tickStep keeps roughly ten ticks per axis.
func tickStep(l float64) float64 {
	switch {
	case l <= 5:
		return 1
	case l <= 10:
		return 2
	case l <= 25:
		return 5
	default:
		return math.Ceil(l / 5)
	}
}
