package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/sandevgo/argand/internal/transport/cli"
	"github.com/spf13/cobra"
)

var solveCmd = &cobra.Command{
	Use:          "solve <equation>",
	Short:        "Solve one equation and record it in the history",
	Example:      `  argand solve "z^2 + z + 1 = 0"`,
	Args:         cobra.MinimumNArgs(1),
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, flushLog := setupLogger(cmd.Context())
		defer flushLog()

		a := NewApp(ctx)
		defer a.Close(ctx)

		out, err := a.Controller.SubmitEquation(ctx, strings.Join(args, " "))
		if err != nil {
			fmt.Fprintln(cmd.ErrOrStderr(), cli.FormatFailure(err))
			return errors.New("solve failed")
		}

		fmt.Fprint(cmd.OutOrStdout(), cli.FormatOutcome(out))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(solveCmd)
}
