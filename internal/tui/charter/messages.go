package charter

import (
	"time"

	"github.com/astralworks/starcharter/internal/world"
	"github.com/google/uuid"
)

// CreateOrganizationMsg is the commit intent emitted when the user confirms
// the charter. It carries the full immutable snapshot of the wizard result;
// the shell executes it (records the charter), the wizard never does.
type CreateOrganizationMsg struct {
	Name       string
	VesselName string
	LocationID uuid.UUID
	Livery     [3]ColorPreset
	Pattern    LiveryPattern
	HullClass  world.HullClass
	CrewIDs    []uuid.UUID
	Balance    int64
}

// CancelCreationMsg is the cancel intent: the shell discards the wizard.
type CancelCreationMsg struct{}

// TickMsg drives the render tick counter used for cosmetic animation.
type TickMsg time.Time
