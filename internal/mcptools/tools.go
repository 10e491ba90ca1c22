package mcptools

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/preston-bernstein/fantasy-logo-studio/internal/branding"
	"github.com/preston-bernstein/fantasy-logo-studio/internal/domain/teams"
	"github.com/preston-bernstein/fantasy-logo-studio/internal/league"
	"github.com/preston-bernstein/fantasy-logo-studio/internal/logo"
	"github.com/preston-bernstein/fantasy-logo-studio/internal/providers"
)

const defaultPaletteCount = 12

var errGeneratorUnavailable = errors.New("logo generator unavailable")

type tools struct {
	league    *league.Service
	generator *logo.Generator
	logger    *slog.Logger
}

// MascotInput is the argument set of the derive_mascot tool.
type MascotInput struct {
	Name  string `json:"name" jsonschema:"team name"`
	Owner string `json:"owner,omitempty" jsonschema:"owner display name, used when the name has no mascot word"`
}

// MascotResult is the derived mascot word.
type MascotResult struct {
	Mascot string `json:"mascot"`
}

func (t *tools) deriveMascot(_ context.Context, _ *mcp.CallToolRequest, in MascotInput) (*mcp.CallToolResult, MascotResult, error) {
	return nil, MascotResult{Mascot: branding.DeriveMascot(in.Name, in.Owner)}, nil
}

// PaletteInput is the argument set of the build_palette tool.
type PaletteInput struct {
	Count    int    `json:"count,omitempty" jsonschema:"number of teams (default 12)"`
	Seed     uint32 `json:"seed,omitempty" jsonschema:"league seed; ignored when league_id is set"`
	LeagueID string `json:"league_id,omitempty" jsonschema:"derive the seed from this league id"`
	Bump     uint32 `json:"bump,omitempty" jsonschema:"remix counter"`
}

// PaletteResult lists the palette pairs in team order.
type PaletteResult struct {
	Seed    uint32               `json:"seed"`
	Bump    uint32               `json:"bump"`
	Palette []branding.ColorPair `json:"palette"`
}

func (t *tools) buildPalette(_ context.Context, _ *mcp.CallToolRequest, in PaletteInput) (*mcp.CallToolResult, PaletteResult, error) {
	count := in.Count
	if count <= 0 {
		count = defaultPaletteCount
	}
	seed := in.Seed
	if id := strings.TrimSpace(in.LeagueID); id != "" {
		seed = branding.LeagueSeed(id)
	} else if seed == 0 {
		seed = branding.DefaultLeagueSeed
	}
	return nil, PaletteResult{
		Seed:    seed,
		Bump:    in.Bump,
		Palette: branding.RemixPalette(count, seed, in.Bump),
	}, nil
}

// ColorInput is the argument set of the sanitize_color tool.
type ColorInput struct {
	Value string `json:"value" jsonschema:"color in hex, rgb() or a CSS name"`
}

// ColorResult holds the canonical hex color.
type ColorResult struct {
	Color string `json:"color"`
}

func (t *tools) sanitizeColor(_ context.Context, _ *mcp.CallToolRequest, in ColorInput) (*mcp.CallToolResult, ColorResult, error) {
	return nil, ColorResult{Color: branding.SanitizeColor(in.Value)}, nil
}

// PromptInput describes a team look for the logo_prompt tool.
type PromptInput struct {
	Mascot    string  `json:"mascot" jsonschema:"plural mascot word"`
	Primary   string  `json:"primary" jsonschema:"primary color"`
	Secondary string  `json:"secondary" jsonschema:"secondary color"`
	Seed      *uint32 `json:"seed,omitempty" jsonschema:"image seed; random when omitted"`
}

// PromptResult carries the image prompt and its logo URL.
type PromptResult struct {
	Prompt string `json:"prompt"`
	URL    string `json:"url"`
}

func (t *tools) logoPrompt(_ context.Context, _ *mcp.CallToolRequest, in PromptInput) (*mcp.CallToolResult, PromptResult, error) {
	if t.generator == nil {
		return nil, PromptResult{}, errGeneratorUnavailable
	}
	u, err := t.generator.URL(logo.Spec{
		Mascot:    in.Mascot,
		Primary:   in.Primary,
		Secondary: in.Secondary,
		Seed:      in.Seed,
	})
	if err != nil {
		return nil, PromptResult{}, err
	}
	return nil, PromptResult{
		Prompt: logo.BuildPrompt(in.Mascot, in.Primary, in.Secondary),
		URL:    u,
	}, nil
}

// LeagueInput is the argument set of the load_league tool.
type LeagueInput struct {
	Provider string `json:"provider" jsonschema:"sleeper, mfl, espn or fixture"`
	LeagueID string `json:"league_id" jsonschema:"league id on the host"`
	Season   string `json:"season,omitempty" jsonschema:"season year; required for mfl and espn"`
	SWID     string `json:"swid,omitempty" jsonschema:"ESPN SWID cookie for private leagues"`
	S2       string `json:"s2,omitempty" jsonschema:"ESPN espn_s2 cookie for private leagues"`
}

// LeagueResult summarizes a loaded league workspace.
type LeagueResult struct {
	WorkspaceID string       `json:"workspace_id"`
	Provider    string       `json:"provider"`
	LeagueID    string       `json:"league_id"`
	Season      string       `json:"season,omitempty"`
	Teams       []teams.Team `json:"teams"`
}

func (t *tools) loadLeague(ctx context.Context, _ *mcp.CallToolRequest, in LeagueInput) (*mcp.CallToolResult, LeagueResult, error) {
	ws, err := t.league.Load(ctx, in.Provider, providers.LeagueQuery{
		LeagueID: in.LeagueID,
		Season:   in.Season,
		SWID:     in.SWID,
		S2:       in.S2,
	})
	if err != nil {
		return nil, LeagueResult{}, err
	}
	return nil, LeagueResult{
		WorkspaceID: ws.ID,
		Provider:    ws.Provider,
		LeagueID:    ws.LeagueID,
		Season:      ws.Season,
		Teams:       ws.Teams,
	}, nil
}
