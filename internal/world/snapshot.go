package world

import (
	"errors"
	"fmt"
	"sort"

	"github.com/google/uuid"
)

// ErrNotFound marks lookups of ids the snapshot does not contain. Callers are
// expected to treat this as a stale-cache condition, not a fatal one.
var ErrNotFound = errors.New("not found")

// Snapshot is a read-only view of the world consumed by the charter wizard.
// Nothing in the UI mutates it; committed charters go through the registry.
type Snapshot struct {
	Locations  []Location  `yaml:"locations"`
	Candidates []Candidate `yaml:"candidates"`
}

// PopulatedLocations returns every location with population > 0, sorted by
// the string form of their ids so the order is stable across loads.
func (s *Snapshot) PopulatedLocations() []Location {
	out := make([]Location, 0, len(s.Locations))
	for _, loc := range s.Locations {
		if loc.Population > 0 {
			out = append(out, loc)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].ID.String() < out[j].ID.String()
	})
	return out
}

// FreeCandidates returns the unaffiliated candidates in snapshot order.
// All candidates in a snapshot are unaffiliated; affiliated crew belong to
// committed charters and never appear here.
func (s *Snapshot) FreeCandidates() []Candidate {
	out := make([]Candidate, len(s.Candidates))
	copy(out, s.Candidates)
	return out
}

// LocationByID resolves a location id to its display attributes.
func (s *Snapshot) LocationByID(id uuid.UUID) (Location, error) {
	for _, loc := range s.Locations {
		if loc.ID == id {
			return loc, nil
		}
	}
	return Location{}, fmt.Errorf("location %s: %w", id, ErrNotFound)
}

// CandidateByID resolves a candidate id to its display attributes.
func (s *Snapshot) CandidateByID(id uuid.UUID) (Candidate, error) {
	for _, c := range s.Candidates {
		if c.ID == id {
			return c, nil
		}
	}
	return Candidate{}, fmt.Errorf("candidate %s: %w", id, ErrNotFound)
}
