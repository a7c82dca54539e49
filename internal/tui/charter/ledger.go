package charter

import "github.com/google/uuid"

// InitialBalance is the fixed starting funds of every new organization,
// in credits.
const InitialBalance int64 = 25000

// RemainingBalance derives the credits left after the current selections:
// starting funds minus the hire costs of every selected candidate present in
// the bucket minus the hull cost. Pure and order-independent; callers
// recompute it on every change instead of caching, since it depends on three
// independently mutable fields. The result may go negative — it is advisory,
// and only the transition into the confirming stage is gated on it.
func RemainingBalance(bucket []PricedCandidate, selected []uuid.UUID, hullCost int64) int64 {
	var hiring int64
	for _, pc := range bucket {
		for _, id := range selected {
			if id == pc.ID {
				hiring += pc.Cost
				break
			}
		}
	}
	return InitialBalance - hiring - hullCost
}
