package charter

import (
	"sort"

	"github.com/astralworks/starcharter/internal/world"
	"github.com/google/uuid"
)

// PricedCandidate is one roster entry: a candidate id with its hire cost as
// frozen at pool-build time.
type PricedCandidate struct {
	ID   uuid.UUID
	Cost int64
}

// CandidatePool is the lazily built, per-location roster of hireable
// candidates. It is built once per wizard session from a world snapshot and
// never rebuilt: costs and ordering are frozen even if the underlying world
// moves on.
type CandidatePool struct {
	locationIDs []uuid.UUID
	buckets     map[uuid.UUID][]PricedCandidate
}

// NewCandidatePool returns an empty, unbuilt pool.
func NewCandidatePool() *CandidatePool {
	return &CandidatePool{
		buckets: make(map[uuid.UUID][]PricedCandidate),
	}
}

// Built reports whether the pool has been populated.
func (p *CandidatePool) Built() bool {
	return len(p.locationIDs) > 0
}

// EnsureBuilt populates the pool on first call and is a no-op afterwards.
// It collects every location with nonzero population in stable id order,
// buckets each unaffiliated candidate under its home location priced at the
// zero-experience baseline, and stable-sorts each bucket by descending
// quality so ties keep their insertion order.
func (p *CandidatePool) EnsureBuilt(snap *world.Snapshot) {
	if p.Built() {
		return
	}

	for _, loc := range snap.PopulatedLocations() {
		p.locationIDs = append(p.locationIDs, loc.ID)
		// An explicit entry even when no candidate lives here: locations are
		// never filtered out after the fact, the bucket is just empty.
		p.buckets[loc.ID] = []PricedCandidate{}
	}

	quality := make(map[uuid.UUID]float64)
	for _, c := range snap.FreeCandidates() {
		bucket, ok := p.buckets[c.HomeLocation]
		if !ok {
			// Home location is unsettled or unknown; not hireable here.
			continue
		}
		quality[c.ID] = c.Quality
		p.buckets[c.HomeLocation] = append(bucket, PricedCandidate{
			ID:   c.ID,
			Cost: c.HireCost(0),
		})
	}

	for id, bucket := range p.buckets {
		sort.SliceStable(bucket, func(i, j int) bool {
			return quality[bucket[i].ID] > quality[bucket[j].ID]
		})
		p.buckets[id] = bucket
	}
}

// Locations returns the location ids in their stable display order.
func (p *CandidatePool) Locations() []uuid.UUID {
	return p.locationIDs
}

// Bucket returns the priced candidates at a location, best first.
func (p *CandidatePool) Bucket(id uuid.UUID) []PricedCandidate {
	return p.buckets[id]
}
