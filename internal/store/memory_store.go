package store

import (
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/preston-bernstein/fantasy-logo-studio/internal/domain/teams"
)

// ErrNotFound is returned by Update for an unknown workspace id.
var ErrNotFound = errors.New("workspace not found")

// DefaultMaxWorkspaces bounds the store when no limit is given.
const DefaultMaxWorkspaces = 256

// MemoryStore keeps workspaces in memory. Values are cloned on the way in and
// out so callers never share team slices with the store.
type MemoryStore struct {
	mu         sync.RWMutex
	workspaces map[string]teams.Workspace
	max        int
}

// NewMemoryStore constructs an empty MemoryStore holding at most max workspaces.
func NewMemoryStore(max int) *MemoryStore {
	if max <= 0 {
		max = DefaultMaxWorkspaces
	}
	return &MemoryStore{
		workspaces: make(map[string]teams.Workspace),
		max:        max,
	}
}

// Get retrieves a workspace by ID.
func (s *MemoryStore) Get(id string) (teams.Workspace, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ws, ok := s.workspaces[id]
	if !ok {
		return teams.Workspace{}, false
	}
	return ws.Clone(), true
}

// List returns every workspace, most recently updated first.
func (s *MemoryStore) List() []teams.Workspace {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]teams.Workspace, 0, len(s.workspaces))
	for _, ws := range s.workspaces {
		result = append(result, ws.Clone())
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].UpdatedAt.After(result[j].UpdatedAt)
	})
	return result
}

// Len reports how many workspaces are held.
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.workspaces)
}

// Put stores ws, replacing any workspace with the same id, and evicts the
// least recently updated workspaces beyond the limit.
func (s *MemoryStore) Put(ws teams.Workspace) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.workspaces[ws.ID] = ws.Clone()
	s.evictLocked(ws.ID)
}

// Update applies fn to the stored workspace atomically. If fn returns an
// error the stored value is left unchanged.
func (s *MemoryStore) Update(id string, fn func(*teams.Workspace) error) (teams.Workspace, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, ok := s.workspaces[id]
	if !ok {
		return teams.Workspace{}, ErrNotFound
	}
	next := current.Clone()
	if err := fn(&next); err != nil {
		return teams.Workspace{}, err
	}
	next.ID = id
	s.workspaces[id] = next
	return next.Clone(), nil
}

// Delete drops a workspace and reports whether it existed.
func (s *MemoryStore) Delete(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, ok := s.workspaces[id]
	delete(s.workspaces, id)
	return ok
}

// DeleteIdle removes every workspace last updated before cutoff and returns their ids.
func (s *MemoryStore) DeleteIdle(cutoff time.Time) []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	var removed []string
	for id, ws := range s.workspaces {
		if ws.UpdatedAt.Before(cutoff) {
			delete(s.workspaces, id)
			removed = append(removed, id)
		}
	}
	sort.Strings(removed)
	return removed
}

func (s *MemoryStore) evictLocked(keep string) {
	for len(s.workspaces) > s.max {
		var (
			oldestID string
			found    bool
		)
		for id, ws := range s.workspaces {
			if id == keep {
				continue
			}
			if !found || ws.UpdatedAt.Before(s.workspaces[oldestID].UpdatedAt) {
				oldestID = id
				found = true
			}
		}
		if !found {
			return
		}
		delete(s.workspaces, oldestID)
	}
}
