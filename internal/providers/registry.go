package providers

import (
	"fmt"
	"sort"
	"strings"
)

// Registry resolves provider names (case-insensitive) to providers.
type Registry struct {
	byName map[string]LeagueProvider
}

// NewRegistry indexes the given providers by Name. Later duplicates win.
func NewRegistry(items ...LeagueProvider) *Registry {
	r := &Registry{byName: make(map[string]LeagueProvider, len(items))}
	for _, p := range items {
		if p == nil {
			continue
		}
		r.byName[strings.ToLower(p.Name())] = p
	}
	return r
}

// Get returns the provider registered under name.
func (r *Registry) Get(name string) (LeagueProvider, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	if r != nil {
		if p, ok := r.byName[key]; ok {
			return p, nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownProvider, name)
}

// Names lists registered provider names in sorted order.
func (r *Registry) Names() []string {
	if r == nil {
		return nil
	}
	names := make([]string, 0, len(r.byName))
	for name := range r.byName {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
