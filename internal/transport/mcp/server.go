// Package mcp exposes the solver as Model Context Protocol tools over stdio.
package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"os"

	mcpproto "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/sandevgo/argand/internal/core"
	"github.com/sandevgo/argand/internal/service/app"
	"github.com/sandevgo/argand/internal/service/plot"
	"github.com/sandevgo/argand/internal/service/solver"
	"github.com/sandevgo/argand/pkg/log"
)

const (
	ToolSolve   = "solve_equation"
	ToolHistory = "list_history"
	ToolRoots   = "aggregated_roots"
	ToolPurge   = "purge_history"
)

type Server struct {
	ctrl *app.Controller
	mcp  *server.MCPServer
	in   io.Reader
	out  io.Writer
}

func NewServer(ctrl *app.Controller) *Server {
	s := &Server{
		ctrl: ctrl,
		mcp:  server.NewMCPServer(core.AppName, core.AppVersion, server.WithToolCapabilities(false)),
		in:   os.Stdin,
		out:  os.Stdout,
	}

	s.mcp.AddTool(mcpproto.NewTool(ToolSolve,
		mcpproto.WithDescription("Solve an equation in the complex unknown z and record it in the history. Returns roots, summary and explanation steps as JSON."),
		mcpproto.WithString("equation", mcpproto.Required(), mcpproto.Description("Equation in z, e.g. z^2 + z + 1 = 0")),
	), s.handleSolve)

	s.mcp.AddTool(mcpproto.NewTool(ToolHistory,
		mcpproto.WithDescription("List the solved equations of the last 30 days, most recent first."),
	), s.handleHistory)

	s.mcp.AddTool(mcpproto.NewTool(ToolRoots,
		mcpproto.WithDescription("Every root in the history tagged with its equation and color, plus the symmetric plot range."),
	), s.handleRoots)

	s.mcp.AddTool(mcpproto.NewTool(ToolPurge,
		mcpproto.WithDescription("Delete the whole history. Requires confirm=true."),
		mcpproto.WithBoolean("confirm", mcpproto.Required(), mcpproto.Description("Must be true")),
	), s.handlePurge)

	return s
}

func (s *Server) Start(ctx context.Context) error {
	log.FromCtx(ctx).Info().Msg("serving MCP over stdio")
	stdio := server.NewStdioServer(s.mcp)
	if err := stdio.Listen(ctx, s.in, s.out); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	return nil
}

func jsonResult(v any) (*mcpproto.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, err
	}
	return mcpproto.NewToolResultText(string(data)), nil
}

func (s *Server) handleSolve(ctx context.Context, req mcpproto.CallToolRequest) (*mcpproto.CallToolResult, error) {
	equation, err := req.RequireString("equation")
	if err != nil {
		return mcpproto.NewToolResultError(err.Error()), nil
	}

	out, err := s.ctrl.SubmitEquation(ctx, equation)
	if err != nil {
		msg := solver.UserMessage(err)
		switch {
		case errors.Is(err, app.ErrBusy), errors.Is(err, app.ErrEmptyEquation):
			msg = err.Error()
		}
		return mcpproto.NewToolResultError(msg), nil
	}
	return jsonResult(out)
}

func (s *Server) handleHistory(ctx context.Context, req mcpproto.CallToolRequest) (*mcpproto.CallToolResult, error) {
	return jsonResult(s.ctrl.CurrentHistory())
}

func (s *Server) handleRoots(ctx context.Context, req mcpproto.CallToolRequest) (*mcpproto.CallToolResult, error) {
	roots := s.ctrl.AggregatedRoots()
	return jsonResult(map[string]any{
		"roots": roots,
		"range": plot.DomainRange(roots),
	})
}

func (s *Server) handlePurge(ctx context.Context, req mcpproto.CallToolRequest) (*mcpproto.CallToolResult, error) {
	confirm, err := req.RequireBool("confirm")
	if err != nil || !confirm {
		return mcpproto.NewToolResultError("purge requires confirm=true"), nil
	}
	s.ctrl.PurgeHistory(ctx)
	return mcpproto.NewToolResultText("history purged"), nil
}
