package mcptools

import (
	"context"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/preston-bernstein/fantasy-logo-studio/internal/branding"
	"github.com/preston-bernstein/fantasy-logo-studio/internal/providers/fixture"
	"github.com/preston-bernstein/fantasy-logo-studio/internal/testutil"
)

func connect(t *testing.T, cfg Config) *mcp.ClientSession {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	t.Cleanup(cancel)

	server := NewServer(cfg)
	serverTransport, clientTransport := mcp.NewInMemoryTransports()
	serverSession, err := server.Connect(ctx, serverTransport, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = serverSession.Close() })

	client := mcp.NewClient(&mcp.Implementation{Name: "client", Version: "v0.0.1"}, nil)
	session, err := client.Connect(ctx, clientTransport, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = session.Close() })
	return session
}

func defaultConfig(t *testing.T) Config {
	t.Helper()
	logger, _ := testutil.NewBufferLogger()
	gen := testutil.NewOfflineGenerator("http://img.test")
	return Config{
		League:    testutil.NewLeagueService(gen, logger, fixture.New()),
		Generator: gen,
		Logger:    logger,
		Version:   "test",
	}
}

func call[T any](t *testing.T, session *mcp.ClientSession, name string, args any) (T, *mcp.CallToolResult) {
	t.Helper()
	res, err := session.CallTool(context.Background(), &mcp.CallToolParams{Name: name, Arguments: args})
	require.NoError(t, err)
	var out T
	if !res.IsError {
		raw, err := json.Marshal(res.StructuredContent)
		require.NoError(t, err)
		require.NoError(t, json.Unmarshal(raw, &out))
	}
	return out, res
}

func TestListTools(t *testing.T) {
	session := connect(t, defaultConfig(t))

	res, err := session.ListTools(context.Background(), nil)
	require.NoError(t, err)
	names := make([]string, 0, len(res.Tools))
	for _, tool := range res.Tools {
		names = append(names, tool.Name)
	}
	assert.ElementsMatch(t, []string{"derive_mascot", "build_palette", "sanitize_color", "logo_prompt", "load_league"}, names)
}

func TestListToolsWithoutLeagueService(t *testing.T) {
	cfg := defaultConfig(t)
	cfg.League = nil
	session := connect(t, cfg)

	res, err := session.ListTools(context.Background(), nil)
	require.NoError(t, err)
	for _, tool := range res.Tools {
		assert.NotEqual(t, "load_league", tool.Name)
	}
}

func TestDeriveMascotTool(t *testing.T) {
	session := connect(t, defaultConfig(t))

	out, res := call[MascotResult](t, session, "derive_mascot", map[string]any{"name": "Metro Tigers", "owner": "alice"})
	require.False(t, res.IsError)
	assert.Equal(t, "Tigers", out.Mascot)
}

func TestBuildPaletteTool(t *testing.T) {
	session := connect(t, defaultConfig(t))

	out, res := call[PaletteResult](t, session, "build_palette", map[string]any{"count": 4, "league_id": fixture.LeagueID})
	require.False(t, res.IsError)
	assert.Equal(t, branding.LeagueSeed(fixture.LeagueID), out.Seed)
	assert.Equal(t, []branding.ColorPair(branding.BuildPalette(4, out.Seed)), out.Palette)

	out, res = call[PaletteResult](t, session, "build_palette", map[string]any{})
	require.False(t, res.IsError)
	assert.Equal(t, branding.DefaultLeagueSeed, out.Seed)
	assert.Len(t, out.Palette, defaultPaletteCount)
}

func TestSanitizeColorTool(t *testing.T) {
	session := connect(t, defaultConfig(t))

	out, res := call[ColorResult](t, session, "sanitize_color", map[string]any{"value": "#abc"})
	require.False(t, res.IsError)
	assert.Equal(t, branding.SanitizeColor("#abc"), out.Color)
}

func TestLogoPromptTool(t *testing.T) {
	session := connect(t, defaultConfig(t))

	out, res := call[PromptResult](t, session, "logo_prompt", map[string]any{
		"mascot": "Tigers", "primary": "#0076B6", "secondary": "#B0B7BC", "seed": 7,
	})
	require.False(t, res.IsError)
	assert.Contains(t, out.Prompt, "Tigers")
	assert.True(t, strings.HasPrefix(out.URL, "http://img.test/prompt/"), out.URL)

	_, res = call[PromptResult](t, session, "logo_prompt", map[string]any{
		"mascot": " ", "primary": "#000000", "secondary": "#FFFFFF",
	})
	assert.True(t, res.IsError)
}

func TestLoadLeagueTool(t *testing.T) {
	session := connect(t, defaultConfig(t))

	out, res := call[LeagueResult](t, session, "load_league", map[string]any{
		"provider": "fixture", "league_id": fixture.LeagueID,
	})
	require.False(t, res.IsError)
	assert.NotEmpty(t, out.WorkspaceID)
	require.Len(t, out.Teams, 4)
	assert.Equal(t, "Tigers", out.Teams[0].Mascot)

	_, res = call[LeagueResult](t, session, "load_league", map[string]any{
		"provider": "yahoo", "league_id": "1",
	})
	assert.True(t, res.IsError)
}
