package fixture

import (
	"context"
	"errors"
	"testing"

	"github.com/preston-bernstein/fantasy-logo-studio/internal/providers"
)

func TestFetchLeagueReturnsDeterministicEntries(t *testing.T) {
	p := New()

	first, err := p.FetchLeague(context.Background(), providers.LeagueQuery{LeagueID: LeagueID})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(first) != 4 {
		t.Fatalf("expected 4 entries, got %d", len(first))
	}
	if first[0].Name != "Metro Tigers" || first[2].Owner != "carol" {
		t.Fatalf("unexpected entries %+v", first)
	}

	first[0].Name = "mutated"
	second, _ := p.FetchLeague(context.Background(), providers.LeagueQuery{LeagueID: "other"})
	if second[0].Name != "Metro Tigers" {
		t.Fatalf("expected fresh copy per call, got %+v", second[0])
	}
}

func TestFetchLeagueRequiresID(t *testing.T) {
	if _, err := New().FetchLeague(context.Background(), providers.LeagueQuery{}); !errors.Is(err, providers.ErrLeagueIDRequired) {
		t.Fatalf("expected ErrLeagueIDRequired, got %v", err)
	}
}

func TestFetchLeagueHonorsCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := New().FetchLeague(ctx, providers.LeagueQuery{LeagueID: "1"}); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context canceled, got %v", err)
	}
}

func TestName(t *testing.T) {
	if New().Name() != "fixture" {
		t.Fatalf("unexpected name")
	}
}
