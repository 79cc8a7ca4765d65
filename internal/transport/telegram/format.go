package telegram

import (
	"fmt"
	"strings"
	"time"

	"github.com/sandevgo/argand/internal/core"
	"github.com/sandevgo/argand/internal/service/app"
	"github.com/sandevgo/argand/internal/service/plot"
)

func formatWelcome(examples []core.Example) string {
	var sb strings.Builder
	sb.WriteString("**Solveur complexe**\n\nEnvoyez une équation en z, par exemple :\n\n")
	for _, e := range examples {
		fmt.Fprintf(&sb, "- `%s`\n", e.Equation)
	}
	sb.WriteString("\n/history liste les équations, /roots toutes les racines, /purge confirm efface l'historique.")
	return sb.String()
}

func formatOutcome(equation string, out app.Outcome) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "**%s**\n\n", out.Solution.EquationType)
	fmt.Fprintf(&sb, "`%s`\n\n", out.Solution.LatexSolution)
	sb.WriteString(formatRoots(out.Solution.Roots))
	sb.WriteString("\n\n")

	for i, step := range out.Solution.ExplanationSteps {
		fmt.Fprintf(&sb, "%d. %s\n\n", i+1, step)
	}

	if !out.Added {
		fmt.Fprintf(&sb, "_`%s` figure déjà dans l'historique._", equation)
	}
	return strings.TrimSpace(sb.String())
}

func formatRoots(roots []core.ComplexRoot) string {
	if len(roots) == 0 {
		return "Aucune racine."
	}
	lines := make([]string, len(roots))
	for i, r := range roots {
		line := "`" + plot.FormatRoot(r) + "`"
		if r.SourceEquation != "" {
			line += " ← " + r.SourceEquation
		}
		lines[i] = line
	}
	return strings.Join(lines, "\n")
}

func formatHistory(entries []core.HistoryEntry) string {
	if len(entries) == 0 {
		return "Historique vide."
	}
	var sb strings.Builder
	for _, e := range entries {
		fmt.Fprintf(&sb, "- `%s` (%s, %d racine(s))\n",
			e.Equation,
			time.UnixMilli(e.Timestamp).Format("02/01 15:04"),
			len(e.Solution.Roots))
	}
	return strings.TrimSpace(sb.String())
}
