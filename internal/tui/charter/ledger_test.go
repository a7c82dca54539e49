package charter

import (
	"testing"

	"github.com/google/uuid"
)

func TestRemainingBalance(t *testing.T) {
	bucket := []PricedCandidate{
		{ID: candID(1), Cost: 2000},
		{ID: candID(2), Cost: 3000},
		{ID: candID(3), Cost: 1000},
	}

	tests := []struct {
		name     string
		selected []uuid.UUID
		hullCost int64
		want     int64
	}{
		{"nothing selected", nil, 5500, InitialBalance - 5500},
		{"one hire", []uuid.UUID{candID(1)}, 5500, InitialBalance - 2000 - 5500},
		{"all hires", []uuid.UUID{candID(1), candID(2), candID(3)}, 5500, InitialBalance - 6000 - 5500},
		{"selection outside bucket ignored", []uuid.UUID{candID(9)}, 5500, InitialBalance - 5500},
		{"order independent", []uuid.UUID{candID(3), candID(1)}, 11000, InitialBalance - 3000 - 11000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := RemainingBalance(bucket, tt.selected, tt.hullCost); got != tt.want {
				t.Errorf("RemainingBalance() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestRemainingBalanceMayGoNegative(t *testing.T) {
	bucket := []PricedCandidate{{ID: candID(1), Cost: InitialBalance * 2}}
	got := RemainingBalance(bucket, []uuid.UUID{candID(1)}, 5500)
	if got >= 0 {
		t.Errorf("RemainingBalance() = %d, expected a negative advisory balance", got)
	}
}
