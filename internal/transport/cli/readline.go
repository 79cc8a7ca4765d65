package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/sandevgo/argand/internal/config"
	"github.com/sandevgo/argand/internal/service/app"
	"github.com/sandevgo/argand/pkg/log"
)

var errExit = errors.New("exit")

// ReadLine is an interactive prompt: each line is an equation unless it
// starts with ':'.
type ReadLine struct {
	ctrl    *app.Controller
	rl      *readline.Instance
	out     io.Writer
	confirm func(question string) bool
}

func NewReadLine(ctrl *app.Controller, cfg *config.AppConfig) (*ReadLine, error) {
	if err := os.MkdirAll(cfg.GetRuntimePath(), 0755); err != nil {
		return nil, fmt.Errorf("failed to create runtime directory: %w", err)
	}

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "z> ",
		HistoryFile:     cfg.GetInputHistoryPath(),
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
		AutoComplete: readline.NewPrefixCompleter(
			readline.PcItem(":history"),
			readline.PcItem(":roots"),
			readline.PcItem(":examples"),
			readline.PcItem(":purge"),
			readline.PcItem("exit"),
		),
	})
	if err != nil {
		return nil, err
	}

	r := &ReadLine{
		ctrl: ctrl,
		rl:   rl,
		out:  rl.Stdout(),
	}
	r.confirm = r.ask
	return r, nil
}

func (r *ReadLine) Start(ctx context.Context) error {
	logger := log.FromCtx(ctx)
	logger.Info().Msg("REPL started. Type an equation, :history, :roots, :purge or exit.")
	fmt.Fprint(r.out, formatExamples(r.ctrl.Examples()))

	for {
		select {
		case <-ctx.Done():
			return nil
		default:
		}

		line, err := r.rl.Readline()
		if err != nil {
			if errors.Is(err, readline.ErrInterrupt) {
				if len(line) == 0 {
					return nil
				}
				continue
			} else if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}

		if err := r.handleLine(ctx, line); err != nil {
			if errors.Is(err, errExit) {
				return nil
			}
			logger.Error().Err(err).Msg("command failed")
		}
	}
}

func (r *ReadLine) handleLine(ctx context.Context, line string) error {
	line = strings.TrimSpace(line)
	switch line {
	case "":
		return nil
	case "exit", ":q", ":quit":
		return errExit
	case ":history":
		fmt.Fprint(r.out, formatHistory(r.ctrl.CurrentHistory()))
	case ":roots":
		fmt.Fprint(r.out, formatRoots(r.ctrl.AggregatedRoots()))
	case ":examples":
		fmt.Fprint(r.out, formatExamples(r.ctrl.Examples()))
	case ":purge":
		if !r.confirm("Effacer tout l'historique ? (o/N) ") {
			fmt.Fprintln(r.out, "Annulé.")
			return nil
		}
		r.ctrl.PurgeHistory(ctx)
		fmt.Fprintln(r.out, "Historique effacé.")
	default:
		if strings.HasPrefix(line, ":") {
			fmt.Fprintf(r.out, "Commande inconnue %s\n", line)
			return nil
		}
		r.solve(ctx, line)
	}
	return nil
}

func (r *ReadLine) solve(ctx context.Context, equation string) {
	fmt.Fprintln(r.out, "Résolution…")
	out, err := r.ctrl.SubmitEquation(ctx, equation)
	if err != nil {
		fmt.Fprintln(r.out, FormatFailure(err))
		return
	}
	fmt.Fprint(r.out, formatOutcome(out))
}

func (r *ReadLine) ask(question string) bool {
	r.rl.SetPrompt(question)
	defer r.rl.SetPrompt("z> ")

	answer, err := r.rl.Readline()
	if err != nil {
		return false
	}
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "o", "oui", "y", "yes":
		return true
	}
	return false
}

func (r *ReadLine) Shutdown(ctx context.Context) error {
	if r.rl != nil {
		return r.rl.Close()
	}
	return nil
}
