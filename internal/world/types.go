package world

import (
	"fmt"

	"github.com/google/uuid"
)

// Location is a settled place a new organization can call home.
type Location struct {
	ID             uuid.UUID `yaml:"id"`
	Name           string    `yaml:"name"`
	Population     uint64    `yaml:"population"`
	RotationPeriod float64   `yaml:"rotation_period"` // hours per revolution, drives the map glyph animation
}

// Candidate is an unaffiliated crew member available for hire.
type Candidate struct {
	ID           uuid.UUID `yaml:"id"`
	Name         string    `yaml:"name"`
	HomeLocation uuid.UUID `yaml:"home_location"`
	Quality      float64   `yaml:"quality"` // 0..20 overall rating
}

// HireCost returns the one-time price to sign the candidate, in credits.
// Experience raises the price on top of the quality-driven base. The charter
// wizard always prices with zero experience since nobody has served yet.
func (c Candidate) HireCost(experience float64) int64 {
	return int64(500 + c.Quality*150 + experience*50)
}

// QualityGrade maps the 0..20 rating onto a coarse letter grade for display.
func (c Candidate) QualityGrade() string {
	switch {
	case c.Quality >= 16:
		return "A"
	case c.Quality >= 12:
		return "B"
	case c.Quality >= 8:
		return "C"
	case c.Quality >= 4:
		return "D"
	default:
		return "E"
	}
}

// HullClass describes one purchasable vessel class. Cost is fixed per class;
// the vessel's name and livery never affect it.
type HullClass struct {
	Name     string `yaml:"name"`
	Cost     int64  `yaml:"cost"`     // credits
	Capacity int    `yaml:"capacity"` // crew berths
	Speed    int    `yaml:"speed"`    // cruise, in kilolyr/tick
	Range    int    `yaml:"range"`    // maximum unrefueled jump distance
}

func (h HullClass) String() string {
	return fmt.Sprintf("%s (%d cr)", h.Name, h.Cost)
}

// HullClasses is the fixed catalog available at charter time, cheapest first.
var HullClasses = []HullClass{
	{Name: "Sparrow", Cost: 5500, Capacity: 6, Speed: 14, Range: 8},
	{Name: "Corsair", Cost: 7200, Capacity: 8, Speed: 18, Range: 10},
	{Name: "Pelican", Cost: 8400, Capacity: 10, Speed: 12, Range: 16},
	{Name: "Atlas", Cost: 11000, Capacity: 12, Speed: 10, Range: 22},
}
