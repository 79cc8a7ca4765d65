package cli

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/sandevgo/argand/internal/core"
	"github.com/sandevgo/argand/internal/service/app"
	"github.com/sandevgo/argand/internal/service/plot"
	"github.com/sandevgo/argand/internal/service/solver"
	"github.com/sandevgo/argand/pkg/conv"
)

func failureText(err error) string {
	switch {
	case errors.Is(err, app.ErrBusy):
		return "une résolution est déjà en cours"
	case errors.Is(err, app.ErrEmptyEquation):
		return "équation vide"
	}
	return solver.UserMessage(err)
}

// FormatFailure renders a submission error as a one-line user message.
func FormatFailure(err error) string {
	return "Erreur : " + failureText(err)
}

// FormatOutcome renders a solved equation for the terminal.
func FormatOutcome(out app.Outcome) string {
	return formatOutcome(out)
}

func formatOutcome(out app.Outcome) string {
	var sb strings.Builder
	s := out.Solution

	fmt.Fprintf(&sb, "\nType : %s\n", s.EquationType)
	fmt.Fprintf(&sb, "%s\n\n", s.LatexSolution)
	for _, r := range s.Roots {
		fmt.Fprintf(&sb, "  %s\n", plot.FormatRoot(r))
	}
	if len(s.Roots) == 0 {
		sb.WriteString("  (aucune racine)\n")
	}

	if len(s.ExplanationSteps) > 0 {
		sb.WriteString("\nÉtapes :\n")
		for i, step := range s.ExplanationSteps {
			text := conv.MarkdownToText([]byte(step))
			fmt.Fprintf(&sb, "%d. %s\n", i+1, indent(text, "   "))
		}
	}

	if out.Entry != nil && !out.Added {
		sb.WriteString("\n(déjà dans l'historique)\n")
	}
	sb.WriteString("\n")
	return sb.String()
}

// FormatHistory renders history entries for the terminal.
func FormatHistory(entries []core.HistoryEntry) string {
	return formatHistory(entries)
}

func formatHistory(entries []core.HistoryEntry) string {
	if len(entries) == 0 {
		return "Historique vide.\n"
	}
	var sb strings.Builder
	for _, e := range entries {
		fmt.Fprintf(&sb, "%s  %-30s %d racine(s)  %s\n",
			time.UnixMilli(e.Timestamp).Format("02/01/2006 15:04"),
			e.Equation,
			len(e.Solution.Roots),
			e.Color)
	}
	return sb.String()
}

func formatRoots(roots []core.ComplexRoot) string {
	if len(roots) == 0 {
		return "Aucune racine.\n"
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "Plage : [-%g, %g]\n", plot.DomainRange(roots), plot.DomainRange(roots))
	for _, r := range roots {
		fmt.Fprintf(&sb, "  %-24s %s\n", plot.FormatRoot(r), r.SourceEquation)
	}
	return sb.String()
}

func formatExamples(examples []core.Example) string {
	var sb strings.Builder
	sb.WriteString("Exemples :\n")
	for _, e := range examples {
		fmt.Fprintf(&sb, "  %s\n", e.Equation)
	}
	return sb.String()
}

func indent(text, prefix string) string {
	return strings.ReplaceAll(text, "\n", "\n"+prefix)
}
