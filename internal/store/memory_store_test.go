package store

import (
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/preston-bernstein/fantasy-logo-studio/internal/domain/teams"
)

var base = time.Date(2024, 9, 1, 12, 0, 0, 0, time.UTC)

func workspace(id string, age time.Duration) teams.Workspace {
	return teams.Workspace{
		ID:        id,
		Provider:  "test",
		Teams:     []teams.Team{{ID: "1", Name: "One"}},
		CreatedAt: base,
		UpdatedAt: base.Add(age),
	}
}

func TestMemoryStorePutAndGet(t *testing.T) {
	s := NewMemoryStore(0)
	s.Put(workspace("a", 0))
	s.Put(workspace("b", time.Second))

	if got := s.Len(); got != 2 {
		t.Fatalf("expected 2 workspaces, got %d", got)
	}

	ws, ok := s.Get("a")
	if !ok {
		t.Fatalf("expected to find workspace a")
	}
	if ws.Provider != "test" {
		t.Fatalf("unexpected provider %s", ws.Provider)
	}
}

func TestMemoryStoreGetNotFound(t *testing.T) {
	s := NewMemoryStore(0)
	if _, ok := s.Get("missing"); ok {
		t.Fatalf("expected missing id to return false")
	}
}

func TestMemoryStoreGetReturnsCopy(t *testing.T) {
	s := NewMemoryStore(0)
	s.Put(workspace("copy", 0))

	ws, _ := s.Get("copy")
	ws.Teams[0].Name = "mutated"

	again, _ := s.Get("copy")
	if again.Teams[0].Name != "One" {
		t.Fatalf("expected store to remain unchanged, got %s", again.Teams[0].Name)
	}
}

func TestMemoryStorePutCopiesInput(t *testing.T) {
	s := NewMemoryStore(0)
	ws := workspace("in", 0)
	s.Put(ws)
	ws.Teams[0].Name = "mutated"

	got, _ := s.Get("in")
	if got.Teams[0].Name != "One" {
		t.Fatalf("expected put to copy teams, got %s", got.Teams[0].Name)
	}
}

func TestMemoryStoreListNewestFirst(t *testing.T) {
	s := NewMemoryStore(0)
	s.Put(workspace("old", 0))
	s.Put(workspace("new", time.Minute))

	list := s.List()
	if len(list) != 2 || list[0].ID != "new" || list[1].ID != "old" {
		t.Fatalf("unexpected order %+v", list)
	}
}

func TestMemoryStoreUpdate(t *testing.T) {
	s := NewMemoryStore(0)
	s.Put(workspace("w", 0))

	got, err := s.Update("w", func(ws *teams.Workspace) error {
		ws.Teams[0].Mascot = "Tigers"
		ws.RemixCount++
		return nil
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Teams[0].Mascot != "Tigers" || got.RemixCount != 1 {
		t.Fatalf("unexpected updated workspace %+v", got)
	}
	stored, _ := s.Get("w")
	if stored.RemixCount != 1 {
		t.Fatalf("expected update to persist")
	}
}

func TestMemoryStoreUpdateErrorLeavesValue(t *testing.T) {
	s := NewMemoryStore(0)
	s.Put(workspace("w", 0))
	boom := errors.New("boom")

	_, err := s.Update("w", func(ws *teams.Workspace) error {
		ws.Teams[0].Name = "half-applied"
		return boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("expected boom, got %v", err)
	}
	stored, _ := s.Get("w")
	if stored.Teams[0].Name != "One" {
		t.Fatalf("expected no partial update, got %s", stored.Teams[0].Name)
	}

	if _, err := s.Update("missing", func(*teams.Workspace) error { return nil }); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestMemoryStoreDelete(t *testing.T) {
	s := NewMemoryStore(0)
	s.Put(workspace("w", 0))

	if !s.Delete("w") {
		t.Fatalf("expected delete to report existing workspace")
	}
	if s.Delete("w") {
		t.Fatalf("expected second delete to report missing")
	}
	if _, ok := s.Get("w"); ok {
		t.Fatalf("expected workspace gone")
	}
}

func TestMemoryStoreDeleteIdle(t *testing.T) {
	s := NewMemoryStore(0)
	s.Put(workspace("old-b", -2*time.Hour))
	s.Put(workspace("old-a", -3*time.Hour))
	s.Put(workspace("fresh", 0))

	removed := s.DeleteIdle(base.Add(-time.Hour))
	if len(removed) != 2 || removed[0] != "old-a" || removed[1] != "old-b" {
		t.Fatalf("expected sorted idle ids removed, got %v", removed)
	}
	if s.Len() != 1 {
		t.Fatalf("expected only fresh workspace left, got %d", s.Len())
	}
	if got := s.DeleteIdle(base.Add(-time.Hour)); len(got) != 0 {
		t.Fatalf("expected nothing left to remove, got %v", got)
	}
}

func TestMemoryStoreEvictsLeastRecentlyUpdated(t *testing.T) {
	s := NewMemoryStore(2)
	s.Put(workspace("a", 0))
	s.Put(workspace("b", time.Second))
	s.Put(workspace("c", -time.Hour)) // oldest timestamp, but just inserted

	if s.Len() != 2 {
		t.Fatalf("expected bound of 2, got %d", s.Len())
	}
	if _, ok := s.Get("c"); !ok {
		t.Fatalf("expected newly put workspace kept")
	}
	if _, ok := s.Get("a"); ok {
		t.Fatalf("expected oldest other workspace evicted")
	}
}

func TestMemoryStoreConcurrentAccess(t *testing.T) {
	s := NewMemoryStore(0)
	s.Put(workspace("w", 0))

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(2)
		go func(i int) {
			defer wg.Done()
			_, _ = s.Update("w", func(ws *teams.Workspace) error {
				ws.RemixCount++
				return nil
			})
		}(i)
		go func(i int) {
			defer wg.Done()
			s.Put(workspace(fmt.Sprintf("x%d", i), time.Duration(i)))
			_, _ = s.Get("w")
		}(i)
	}
	wg.Wait()

	ws, _ := s.Get("w")
	if ws.RemixCount != 20 {
		t.Fatalf("expected 20 serialized updates, got %d", ws.RemixCount)
	}
}
