package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/sandevgo/argand/internal/transport/mcp"
	"github.com/sandevgo/argand/pkg/srv"
	"github.com/spf13/cobra"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Serve the solver as MCP tools over stdio",
	Long:  `Exposes solve_equation, list_history, aggregated_roots and purge_history to an MCP client. Logs go to stderr.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		// stdout carries the protocol
		var flushLog func()
		ctx, flushLog = setupLoggerTo(ctx, os.Stderr)
		defer flushLog()

		a := NewApp(ctx)
		services := append(a.Services, &stopOnReturn{Service: mcp.NewServer(a.Controller), stop: stop})

		srv.StartServices(ctx, services)
		srv.ShutdownServices(ctx, services)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
