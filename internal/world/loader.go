package world

import (
	"fmt"
	"math/rand"
	"os"

	"github.com/astralworks/starcharter/internal/logger"
	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

// Load reads a snapshot from a YAML file.
func Load(path string) (*Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read world file: %w", err)
	}

	var snap Snapshot
	if err := yaml.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("failed to parse world file: %w", err)
	}

	logger.Debug("Loaded world from %s: %d locations, %d candidates",
		path, len(snap.Locations), len(snap.Candidates))
	return &snap, nil
}

// Save writes a snapshot to a YAML file. Used by setup to drop a starting
// world next to the config.
func Save(path string, snap *Snapshot) error {
	data, err := yaml.Marshal(snap)
	if err != nil {
		return fmt.Errorf("failed to marshal world: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write world file: %w", err)
	}
	return nil
}

var demoLocations = []struct {
	name       string
	population uint64
	rotation   float64
}{
	{"Tycho Relay", 48000, 27.3},
	{"Novy Karst", 125000, 31.0},
	{"Helix Verge", 9200, 7.6},
	{"Amber Drift", 0, 19.4}, // unsettled, filtered out of the location list
	{"Cinder Reach", 67000, 52.1},
	{"Port Vesna", 210000, 15.8},
}

var demoNames = []string{
	"Arlo Vance", "Brix Calder", "Cass Okoye", "Dmitri Sol", "Efra Lind",
	"Fenn Harrow", "Goro Stans", "Hale Winters", "Isra Venn", "Jona Kale",
	"Kira Dusk", "Lorn Adeyemi", "Mara Quill", "Nilo Frost", "Ottla Reyes",
	"Pax Mbeki", "Quin Severn", "Rhea Taliss", "Soren Vael", "Tovi Ashford",
	"Uma Strand", "Vey Corin", "Wren Haldane", "Xo Marek",
}

// Demo generates a small deterministic world from a seed. Candidates are
// scattered over the populated locations with varying quality so the roster
// stage has something to price.
func Demo(seed int64) *Snapshot {
	rng := rand.New(rand.NewSource(seed))
	snap := &Snapshot{}

	for _, dl := range demoLocations {
		id, _ := uuid.NewRandomFromReader(rng)
		snap.Locations = append(snap.Locations, Location{
			ID:             id,
			Name:           dl.name,
			Population:     dl.population,
			RotationPeriod: dl.rotation,
		})
	}

	populated := snap.PopulatedLocations()
	for _, name := range demoNames {
		id, _ := uuid.NewRandomFromReader(rng)
		home := populated[rng.Intn(len(populated))]
		snap.Candidates = append(snap.Candidates, Candidate{
			ID:           id,
			Name:         name,
			HomeLocation: home.ID,
			Quality:      2 + rng.Float64()*18,
		})
	}

	return snap
}
