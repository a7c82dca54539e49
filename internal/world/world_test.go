package world

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
)

func TestPopulatedLocations(t *testing.T) {
	snap := Demo(7)

	populated := snap.PopulatedLocations()
	if len(populated) != len(demoLocations)-1 {
		t.Fatalf("PopulatedLocations() returned %d, want %d (one demo location is unsettled)",
			len(populated), len(demoLocations)-1)
	}
	for _, loc := range populated {
		if loc.Population == 0 {
			t.Errorf("location %q has zero population", loc.Name)
		}
	}
	for i := 1; i < len(populated); i++ {
		if populated[i-1].ID.String() >= populated[i].ID.String() {
			t.Errorf("locations not sorted by id at index %d", i)
		}
	}
}

func TestDemoDeterministic(t *testing.T) {
	a := Demo(42)
	b := Demo(42)

	if len(a.Candidates) != len(b.Candidates) {
		t.Fatalf("candidate counts differ: %d vs %d", len(a.Candidates), len(b.Candidates))
	}
	for i := range a.Candidates {
		if a.Candidates[i] != b.Candidates[i] {
			t.Errorf("candidate %d differs between identically seeded worlds", i)
		}
	}
}

func TestLookupsReturnNotFound(t *testing.T) {
	snap := Demo(1)
	missing := uuid.New()

	if _, err := snap.LocationByID(missing); !errors.Is(err, ErrNotFound) {
		t.Errorf("LocationByID(missing) error = %v, want ErrNotFound", err)
	}
	if _, err := snap.CandidateByID(missing); !errors.Is(err, ErrNotFound) {
		t.Errorf("CandidateByID(missing) error = %v, want ErrNotFound", err)
	}

	loc := snap.Locations[0]
	got, err := snap.LocationByID(loc.ID)
	if err != nil {
		t.Fatalf("LocationByID(%s) error: %v", loc.ID, err)
	}
	if got.Name != loc.Name {
		t.Errorf("LocationByID name = %q, want %q", got.Name, loc.Name)
	}
}

func TestHireCost(t *testing.T) {
	tests := []struct {
		name       string
		quality    float64
		experience float64
		want       int64
	}{
		{"zero quality rookie", 0, 0, 500},
		{"mid quality rookie", 10, 0, 2000},
		{"top quality rookie", 20, 0, 3500},
		{"mid quality veteran", 10, 4, 2200},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Candidate{Quality: tt.quality}
			if got := c.HireCost(tt.experience); got != tt.want {
				t.Errorf("HireCost(%v) = %d, want %d", tt.experience, got, tt.want)
			}
		})
	}
}

func TestQualityGrade(t *testing.T) {
	tests := []struct {
		quality float64
		want    string
	}{
		{19, "A"}, {16, "A"}, {13, "B"}, {9, "C"}, {5, "D"}, {1, "E"},
	}
	for _, tt := range tests {
		c := Candidate{Quality: tt.quality}
		if got := c.QualityGrade(); got != tt.want {
			t.Errorf("QualityGrade(%v) = %q, want %q", tt.quality, got, tt.want)
		}
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	snap := Demo(9)
	path := filepath.Join(t.TempDir(), "world.yml")

	if err := Save(path, snap); err != nil {
		t.Fatalf("Save() error: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if len(loaded.Locations) != len(snap.Locations) {
		t.Errorf("loaded %d locations, want %d", len(loaded.Locations), len(snap.Locations))
	}
	if len(loaded.Candidates) != len(snap.Candidates) {
		t.Errorf("loaded %d candidates, want %d", len(loaded.Candidates), len(snap.Candidates))
	}
	if loaded.Candidates[0].ID != snap.Candidates[0].ID {
		t.Errorf("candidate id did not survive round trip")
	}
}
