package league

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/preston-bernstein/fantasy-logo-studio/internal/domain/teams"
	"github.com/preston-bernstein/fantasy-logo-studio/internal/logo"
	"github.com/preston-bernstein/fantasy-logo-studio/internal/metrics"
	"github.com/preston-bernstein/fantasy-logo-studio/internal/providers"
	"github.com/preston-bernstein/fantasy-logo-studio/internal/providers/fixture"
	"github.com/preston-bernstein/fantasy-logo-studio/internal/store"
)

type failingProvider struct{ err error }

func (f failingProvider) Name() string { return "broken" }

func (f failingProvider) FetchLeague(context.Context, providers.LeagueQuery) ([]teams.Entry, error) {
	return nil, f.err
}

type stubGenerator struct {
	fail  map[string]bool
	calls [][]logo.Spec
	hook  func()
}

func (g *stubGenerator) GenerateBatch(_ context.Context, specs []logo.Spec) []logo.Result {
	g.calls = append(g.calls, specs)
	if g.hook != nil {
		g.hook()
	}
	out := make([]logo.Result, len(specs))
	for i, s := range specs {
		out[i] = logo.Result{TeamID: s.TeamID}
		if g.fail[s.TeamID] {
			out[i].Error = "upstream failed"
			continue
		}
		out[i].URL = fmt.Sprintf("https://img.test/%s/%d", s.Mascot, *s.Seed)
	}
	return out
}

func newTestService(t *testing.T, gen LogoGenerator) (*Service, *metrics.Recorder) {
	t.Helper()
	rec := metrics.NewRecorder()
	var next uint32
	svc := NewService(Config{
		Registry: providers.NewRegistry(
			fixture.New(),
			failingProvider{err: fmt.Errorf("sleeper: %w", providers.ErrLeagueNotFound)},
		),
		Store:     store.NewMemoryStore(0),
		Generator: gen,
		Recorder:  rec,
		SeedFunc: func() uint32 {
			next++
			return next * 100
		},
	})
	ids := 0
	svc.newID = func() string {
		ids++
		return fmt.Sprintf("ws-%d", ids)
	}
	svc.now = func() time.Time { return time.Date(2024, 9, 1, 12, 0, 0, 0, time.UTC) }
	return svc, rec
}

func TestLoadScenario(t *testing.T) {
	svc, rec := newTestService(t, nil)

	ws, err := svc.Load(context.Background(), "Fixture", providers.LeagueQuery{LeagueID: " 998877 "})
	require.NoError(t, err)

	assert.Equal(t, "ws-1", ws.ID)
	assert.Equal(t, "fixture", ws.Provider)
	assert.Equal(t, "998877", ws.LeagueID)
	assert.Equal(t, uint32(998877), ws.LeagueSeed)
	require.Len(t, ws.Teams, 4)

	want := []struct{ mascot, primary, secondary string }{
		{"Tigers", "#0076B6", "#B0B7BC"},
		{"Titans", "#004C54", "#A5ACAF"},
		{"Hawks", "#C8102E", "#FFB612"},
		{"Outlaws", "#241773", "#9E7C0C"},
	}
	for i, w := range want {
		assert.Equal(t, w.mascot, ws.Teams[i].Mascot)
		assert.Equal(t, w.primary, ws.Teams[i].Primary)
		assert.Equal(t, w.secondary, ws.Teams[i].Secondary)
		assert.Equal(t, uint32((i+1)*100), ws.Teams[i].Seed)
		assert.Nil(t, ws.Teams[i].LogoURL)
	}

	stored, err := svc.Workspace("ws-1")
	require.NoError(t, err)
	assert.Equal(t, ws, stored)
	assert.Equal(t, 1, rec.Snapshot("fixture").LeagueLoads)
}

func TestLoadFailureStoresNothing(t *testing.T) {
	svc, rec := newTestService(t, nil)
	first, err := svc.Load(context.Background(), "fixture", providers.LeagueQuery{LeagueID: "1"})
	require.NoError(t, err)

	_, err = svc.Load(context.Background(), "broken", providers.LeagueQuery{LeagueID: "2"})
	assert.ErrorIs(t, err, providers.ErrLeagueNotFound)
	assert.Equal(t, 1, rec.Snapshot("broken").LeagueFailures)

	still, err := svc.Workspace(first.ID)
	require.NoError(t, err)
	assert.Equal(t, first, still)
	_, err = svc.Workspace("ws-2")
	assert.ErrorIs(t, err, ErrWorkspaceNotFound)
}

func TestLoadValidation(t *testing.T) {
	svc, _ := newTestService(t, nil)

	_, err := svc.Load(context.Background(), "yahoo", providers.LeagueQuery{LeagueID: "1"})
	assert.ErrorIs(t, err, providers.ErrUnknownProvider)

	_, err = svc.Load(context.Background(), "fixture", providers.LeagueQuery{LeagueID: "  "})
	assert.ErrorIs(t, err, providers.ErrLeagueIDRequired)
}

func TestClear(t *testing.T) {
	svc, _ := newTestService(t, nil)
	ws, err := svc.Load(context.Background(), "fixture", providers.LeagueQuery{LeagueID: "1"})
	require.NoError(t, err)

	require.NoError(t, svc.Clear(ws.ID))
	_, err = svc.Workspace(ws.ID)
	assert.ErrorIs(t, err, ErrWorkspaceNotFound)
	assert.ErrorIs(t, svc.Clear(ws.ID), ErrWorkspaceNotFound)
}

func TestRemixReassignsColorsOnly(t *testing.T) {
	svc, _ := newTestService(t, nil)
	ws, err := svc.Load(context.Background(), "fixture", providers.LeagueQuery{LeagueID: fixture.LeagueID})
	require.NoError(t, err)

	remixed, err := svc.Remix(ws.ID)
	require.NoError(t, err)

	assert.Equal(t, uint32(1), remixed.RemixCount)
	assert.Equal(t, "#003594", remixed.Teams[0].Primary)
	assert.Equal(t, "#FFA300", remixed.Teams[0].Secondary)
	assert.Equal(t, "#D50A0A", remixed.Teams[2].Primary)
	for i := range ws.Teams {
		assert.Equal(t, ws.Teams[i].Mascot, remixed.Teams[i].Mascot)
		assert.Equal(t, ws.Teams[i].Name, remixed.Teams[i].Name)
		assert.Equal(t, ws.Teams[i].Seed, remixed.Teams[i].Seed)
	}

	again, err := svc.Remix(ws.ID)
	require.NoError(t, err)
	assert.Equal(t, uint32(2), again.RemixCount)

	_, err = svc.Remix("missing")
	assert.ErrorIs(t, err, ErrWorkspaceNotFound)
}

func TestPatchTeam(t *testing.T) {
	svc, _ := newTestService(t, nil)
	ws, err := svc.Load(context.Background(), "fixture", providers.LeagueQuery{LeagueID: "1"})
	require.NoError(t, err)

	mascot := " Ravens "
	primary := "00b2ca"
	owner := ""
	team, err := svc.PatchTeam(ws.ID, "3", teams.Patch{Mascot: &mascot, Primary: &primary, Owner: &owner})
	require.NoError(t, err)

	assert.Equal(t, "Ravens", team.Mascot)
	assert.Equal(t, "#00B2CA", team.Primary)
	assert.Equal(t, teams.UnknownOwner, team.Owner)
	assert.Equal(t, "North Ravens", team.Name)

	stored, _ := svc.Workspace(ws.ID)
	assert.Equal(t, team, stored.Teams[2])
}

func TestPatchTeamErrors(t *testing.T) {
	svc, _ := newTestService(t, nil)
	ws, err := svc.Load(context.Background(), "fixture", providers.LeagueQuery{LeagueID: "1"})
	require.NoError(t, err)

	blank := "  "
	_, err = svc.PatchTeam(ws.ID, "1", teams.Patch{Mascot: &blank})
	assert.ErrorIs(t, err, ErrInvalidPatch)
	_, err = svc.PatchTeam(ws.ID, "1", teams.Patch{Name: &blank})
	assert.ErrorIs(t, err, ErrInvalidPatch)
	_, err = svc.PatchTeam(ws.ID, "1", teams.Patch{})
	assert.ErrorIs(t, err, ErrInvalidPatch)

	name := "x"
	_, err = svc.PatchTeam(ws.ID, "99", teams.Patch{Name: &name})
	assert.ErrorIs(t, err, ErrTeamNotFound)
	_, err = svc.PatchTeam("missing", "1", teams.Patch{Name: &name})
	assert.True(t, errors.Is(err, ErrWorkspaceNotFound))

	stored, _ := svc.Workspace(ws.ID)
	assert.Equal(t, "Metro Tigers", stored.Teams[0].Name)
}

func TestGenerateLogosStoresSuccessesAndReportsFailures(t *testing.T) {
	gen := &stubGenerator{fail: map[string]bool{"2": true}}
	svc, _ := newTestService(t, gen)
	ws, err := svc.Load(context.Background(), "fixture", providers.LeagueQuery{LeagueID: fixture.LeagueID})
	require.NoError(t, err)

	batch, err := svc.GenerateLogos(context.Background(), ws.ID, nil)
	require.NoError(t, err)

	require.Len(t, batch.Results, 4)
	assert.Equal(t, "upstream failed", batch.Results[1].Error)
	require.NotNil(t, batch.Workspace.Teams[0].LogoURL)
	assert.Equal(t, "https://img.test/Tigers/100", *batch.Workspace.Teams[0].LogoURL)
	assert.Nil(t, batch.Workspace.Teams[1].LogoURL)
	require.NotNil(t, batch.Workspace.Teams[3].LogoURL)

	stored, _ := svc.Workspace(ws.ID)
	assert.Equal(t, batch.Workspace, stored)
}

func TestGenerateLogosSubset(t *testing.T) {
	gen := &stubGenerator{}
	svc, _ := newTestService(t, gen)
	ws, err := svc.Load(context.Background(), "fixture", providers.LeagueQuery{LeagueID: "1"})
	require.NoError(t, err)

	batch, err := svc.GenerateLogos(context.Background(), ws.ID, []string{"3", "3"})
	require.NoError(t, err)
	require.Len(t, gen.calls, 1)
	require.Len(t, gen.calls[0], 1)
	assert.Equal(t, "3", batch.Results[0].TeamID)
	assert.Nil(t, batch.Workspace.Teams[0].LogoURL)
	assert.NotNil(t, batch.Workspace.Teams[2].LogoURL)

	_, err = svc.GenerateLogos(context.Background(), ws.ID, []string{"nope"})
	assert.ErrorIs(t, err, ErrTeamNotFound)
}

func TestGenerateLogosSkipsTeamsEditedMeanwhile(t *testing.T) {
	gen := &stubGenerator{}
	svc, _ := newTestService(t, gen)
	ws, err := svc.Load(context.Background(), "fixture", providers.LeagueQuery{LeagueID: "1"})
	require.NoError(t, err)

	mascot := "Dragons"
	gen.hook = func() {
		_, err := svc.PatchTeam(ws.ID, "1", teams.Patch{Mascot: &mascot})
		require.NoError(t, err)
	}

	batch, err := svc.GenerateLogos(context.Background(), ws.ID, nil)
	require.NoError(t, err)
	assert.Nil(t, batch.Workspace.Teams[0].LogoURL)
	assert.NotNil(t, batch.Workspace.Teams[1].LogoURL)
}

func TestGenerateLogosErrors(t *testing.T) {
	svc, _ := newTestService(t, nil)
	_, err := svc.GenerateLogos(context.Background(), "ws-1", nil)
	assert.ErrorIs(t, err, ErrGeneratorUnavailable)

	svc, _ = newTestService(t, &stubGenerator{})
	_, err = svc.GenerateLogos(context.Background(), "missing", nil)
	assert.ErrorIs(t, err, ErrWorkspaceNotFound)
}

func TestRemixAndPatchDropStaleLogos(t *testing.T) {
	svc, _ := newTestService(t, &stubGenerator{})
	ws, err := svc.Load(context.Background(), "fixture", providers.LeagueQuery{LeagueID: "1"})
	require.NoError(t, err)
	_, err = svc.GenerateLogos(context.Background(), ws.ID, nil)
	require.NoError(t, err)

	name := "Renamed"
	team, err := svc.PatchTeam(ws.ID, "1", teams.Patch{Name: &name})
	require.NoError(t, err)
	assert.NotNil(t, team.LogoURL, "name edits keep the logo")

	seed := uint32(5)
	team, err = svc.PatchTeam(ws.ID, "1", teams.Patch{Seed: &seed})
	require.NoError(t, err)
	assert.Nil(t, team.LogoURL)

	remixed, err := svc.Remix(ws.ID)
	require.NoError(t, err)
	for _, tm := range remixed.Teams {
		assert.Nil(t, tm.LogoURL)
	}
}
