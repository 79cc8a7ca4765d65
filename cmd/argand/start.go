package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/sandevgo/argand/internal/core"
	"github.com/sandevgo/argand/pkg/log"
	"github.com/sandevgo/argand/pkg/srv"
	"github.com/spf13/cobra"
)

var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the Argand services",
	Long:  `Initializes storage and the solver, then starts every enabled transport (HTTP, Telegram, CLI).`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		// logger setup
		var flushLog func()
		ctx, flushLog = setupLogger(ctx)
		defer flushLog()

		logger := log.FromCtx(ctx)
		logger.Info().Str("version", core.AppVersion).Msg("starting argand")

		app := NewApp(ctx)
		services := append(app.Services, NewTransports(ctx, app, stop)...)

		srv.StartServices(ctx, services)

		// Wait for shutdown signal
		srv.ShutdownServices(ctx, services)
		logger.Info().Msg("argand has been shut down gracefully")

		return nil
	},
}

func init() {
	rootCmd.AddCommand(startCmd)
}
