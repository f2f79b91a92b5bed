// Package personas provides the buyer persona (preset) registry and the
// niche-context mapping used to steer oracle scoring. A Registry is an
// explicit value handed to the pipeline at construction time; there is no
// process-wide preset table.
package personas

import (
	"fmt"
	"sort"

	"github.com/namesmith/namesmith/internal/types"
)

// Bounds on the number of personas per multi-persona request.
const (
	MinPersonas = 1
	MaxPersonas = 6
)

// DefaultNicheKey is used when a single-persona request's mode key is unknown.
const DefaultNicheKey = "brandable"

// UnknownPresetError is the terminal validation error for an unresolvable
// persona id.
type UnknownPresetError struct {
	ID string
}

func (e *UnknownPresetError) Error() string {
	return fmt.Sprintf("unknown persona preset: %q", e.ID)
}

// PersonaCountError is the terminal validation error for a persona list
// outside the 1..6 bound or containing duplicates.
type PersonaCountError struct {
	Message string
}

func (e *PersonaCountError) Error() string {
	return fmt.Sprintf("invalid persona selection: %s", e.Message)
}

// Registry holds persona presets and niche-context strings for one pipeline
// instance. Not safe for concurrent mutation; populate before use.
type Registry struct {
	presets map[string]types.Persona
	niches  map[string]string
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		presets: make(map[string]types.Persona),
		niches:  make(map[string]string),
	}
}

// AddPersona validates and registers a preset. Re-adding an id replaces it.
func (r *Registry) AddPersona(p types.Persona) error {
	if err := p.Validate(); err != nil {
		return fmt.Errorf("invalid persona %q: %w", p.ID, err)
	}
	r.presets[p.ID] = p
	return nil
}

// AddNiche registers a niche-context string for a mode key.
func (r *Registry) AddNiche(mode, context string) {
	r.niches[mode] = context
}

// Persona looks up a preset by id.
func (r *Registry) Persona(id string) (types.Persona, bool) {
	p, ok := r.presets[id]
	return p, ok
}

// List returns all presets sorted by id.
func (r *Registry) List() []types.Persona {
	out := make([]types.Persona, 0, len(r.presets))
	for _, p := range r.presets {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Resolve maps persona ids to presets, enforcing the 1..6 bound and rejecting
// duplicates and unknown ids. Order of the input is preserved.
func (r *Registry) Resolve(ids []string) ([]types.Persona, error) {
	if len(ids) < MinPersonas {
		return nil, &PersonaCountError{Message: "at least one persona is required"}
	}
	if len(ids) > MaxPersonas {
		return nil, &PersonaCountError{Message: fmt.Sprintf("at most %d personas allowed, got %d", MaxPersonas, len(ids))}
	}

	seen := make(map[string]bool, len(ids))
	resolved := make([]types.Persona, 0, len(ids))
	for _, id := range ids {
		if seen[id] {
			return nil, &PersonaCountError{Message: fmt.Sprintf("duplicate persona id %q", id)}
		}
		seen[id] = true

		p, ok := r.presets[id]
		if !ok {
			return nil, &UnknownPresetError{ID: id}
		}
		resolved = append(resolved, p)
	}
	return resolved, nil
}

// NicheContext returns the context string for a mode key, falling back to the
// default brandable context for unknown keys.
func (r *Registry) NicheContext(mode string) string {
	if context, ok := r.niches[mode]; ok {
		return context
	}
	return r.niches[DefaultNicheKey]
}
