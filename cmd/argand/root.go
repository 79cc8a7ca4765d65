package main

import (
	"context"
	"io"
	"os"

	"github.com/sandevgo/argand/internal/config"
	"github.com/sandevgo/argand/internal/core"
	"github.com/sandevgo/argand/internal/service/ui"
	"github.com/sandevgo/argand/pkg/log"
	"github.com/spf13/cobra"
)

var (
	debug bool
)

var rootCmd = &cobra.Command{
	Use:     "argand",
	Short:   "Argand: complex equation solver",
	Long:    `Argand solves polynomial and algebraic equations over the complex numbers with a generative model and plots every root on the Argand plane.`,
	Version: core.AppVersion,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	// Global flags available to all subcommands
	rootCmd.PersistentFlags().BoolVarP(&debug, "debug", "d", config.IsDebug(), "enable debug logging")
	ui.CustomizeHelp(rootCmd)
}

func setupLogger(ctx context.Context) (context.Context, func()) {
	return log.NewContextWithLogger(ctx, debug || config.IsDebug())
}

// setupLoggerTo is used by commands that own stdout, like the MCP server.
func setupLoggerTo(ctx context.Context, out io.Writer) (context.Context, func()) {
	return log.NewContextWithLoggerTo(ctx, debug || config.IsDebug(), out)
}
