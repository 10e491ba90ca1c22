// Package mcptools exposes the branding, league and logo operations as MCP tools.
package mcptools

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/preston-bernstein/fantasy-logo-studio/internal/league"
	"github.com/preston-bernstein/fantasy-logo-studio/internal/logging"
	"github.com/preston-bernstein/fantasy-logo-studio/internal/logo"
)

const serverName = "fantasy-logo-studio"

// Config wires the tool server.
type Config struct {
	League    *league.Service
	Generator *logo.Generator
	Logger    *slog.Logger
	Version   string
}

// NewServer builds an MCP server with every tool registered.
func NewServer(cfg Config) *mcp.Server {
	version := cfg.Version
	if version == "" {
		version = "dev"
	}
	server := mcp.NewServer(&mcp.Implementation{Name: serverName, Version: version}, nil)
	t := &tools{league: cfg.League, generator: cfg.Generator, logger: cfg.Logger}

	addTool(server, t.logger, &mcp.Tool{
		Name:        "derive_mascot",
		Description: "Derive a plural mascot word from a team name and owner",
	}, t.deriveMascot)
	addTool(server, t.logger, &mcp.Tool{
		Name:        "build_palette",
		Description: "Build a league color palette from a seed or league id",
	}, t.buildPalette)
	addTool(server, t.logger, &mcp.Tool{
		Name:        "sanitize_color",
		Description: "Normalize a free-form color to #RRGGBB",
	}, t.sanitizeColor)
	addTool(server, t.logger, &mcp.Tool{
		Name:        "logo_prompt",
		Description: "Build the image prompt and logo URL for a mascot and two colors",
	}, t.logoPrompt)
	if t.league != nil {
		addTool(server, t.logger, &mcp.Tool{
			Name:        "load_league",
			Description: "Load a fantasy league from sleeper, mfl, espn or fixture into a new workspace",
		}, t.loadLeague)
	}
	return server
}

// NewHandler serves server over streamable HTTP.
func NewHandler(server *mcp.Server) http.Handler {
	return mcp.NewStreamableHTTPHandler(func(*http.Request) *mcp.Server {
		return server
	}, &mcp.StreamableHTTPOptions{JSONResponse: true})
}

// addTool registers handler and logs each call with its outcome.
func addTool[In, Out any](server *mcp.Server, logger *slog.Logger, tool *mcp.Tool, handler mcp.ToolHandlerFor[In, Out]) {
	name := tool.Name
	mcp.AddTool(server, tool, func(ctx context.Context, req *mcp.CallToolRequest, in In) (*mcp.CallToolResult, Out, error) {
		start := time.Now()
		res, out, err := handler(ctx, req, in)
		log := logging.FromContext(ctx, logger)
		if err != nil {
			logging.Warn(log, "mcp tool failed",
				slog.String(logging.FieldTool, name),
				slog.Any(logging.FieldError, err),
			)
			return res, out, err
		}
		logging.Info(log, "mcp tool complete",
			slog.String(logging.FieldTool, name),
			slog.Int64(logging.FieldDurationMS, time.Since(start).Milliseconds()),
		)
		return res, out, nil
	})
}
