package app

import "github.com/sandevgo/argand/internal/core"

var examples = []core.Example{
	{Label: "Second degré", Equation: "z^2 + z + 1 = 0"},
	{Label: "Racines 4-ièmes de l'unité", Equation: "z^4 - 1 = 0"},
	{Label: "Racines cubiques", Equation: "z^3 - 8 = 0"},
	{Label: "Linéaire complexe", Equation: "2z + 3i = 4 - z"},
}

// Examples returns the sample equations offered to new users.
func Examples() []core.Example {
	out := make([]core.Example, len(examples))
	copy(out, examples)
	return out
}
