package main

import (
	"errors"
	"fmt"

	"github.com/sandevgo/argand/internal/transport/cli"
	"github.com/spf13/cobra"
)

var (
	purgeHistory bool
	assumeYes    bool
)

var historyCmd = &cobra.Command{
	Use:          "history",
	Short:        "List or purge the solved equations",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, flushLog := setupLogger(cmd.Context())
		defer flushLog()

		a := NewApp(ctx)
		defer a.Close(ctx)

		if purgeHistory {
			if !assumeYes {
				return errors.New("purging the history is irreversible, confirm with --yes")
			}
			a.Controller.PurgeHistory(ctx)
			fmt.Fprintln(cmd.OutOrStdout(), "Historique effacé.")
			return nil
		}

		fmt.Fprint(cmd.OutOrStdout(), cli.FormatHistory(a.Controller.CurrentHistory()))
		return nil
	},
}

func init() {
	historyCmd.Flags().BoolVar(&purgeHistory, "purge", false, "delete every history entry")
	historyCmd.Flags().BoolVarP(&assumeYes, "yes", "y", false, "confirm --purge")
	rootCmd.AddCommand(historyCmd)
}
