package charter

import (
	"math/rand"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/require"

	"github.com/astralworks/starcharter/internal/world"
)

// press sends key presses by name, discarding commands.
func press(m *Model, keys ...string) {
	for _, k := range keys {
		m.Update(tea.KeyPressMsg{Text: k})
	}
}

// typeText sends text one rune at a time, as the terminal would.
func typeText(m *Model, s string) {
	for _, r := range s {
		m.Update(tea.KeyPressMsg{Text: string(r)})
	}
}

// wizardSnapshot builds a single-location world with one candidate per given
// quality.
func wizardSnapshot(qualities ...float64) *world.Snapshot {
	snap := &world.Snapshot{
		Locations: []world.Location{
			{ID: locID(1), Name: "Tycho Relay", Population: 1000, RotationPeriod: 20},
		},
	}
	for i, q := range qualities {
		snap.Candidates = append(snap.Candidates, world.Candidate{
			ID:           candID(i + 1),
			Name:         "Crew Member",
			HomeLocation: locID(1),
			Quality:      q,
		})
	}
	return snap
}

func newWizard(snap *world.Snapshot) *Model {
	return New(snap, rand.New(rand.NewSource(1)))
}

// advanceToRoster walks a fresh wizard through naming, location, theme and
// hull with default selections.
func advanceToRoster(t *testing.T, m *Model) {
	t.Helper()
	typeText(m, "Nova")
	press(m, "enter")
	typeText(m, "Kestrel")
	press(m, "enter")
	require.Equal(t, StageChoosingLocation, m.Stage())
	press(m, "enter") // location
	press(m, "enter") // theme
	press(m, "enter") // hull
	require.Equal(t, StageChoosingRoster, m.Stage())
}

func TestWizard_NameValidationBlocksAdvance(t *testing.T) {
	t.Parallel()

	m := newWizard(wizardSnapshot(5))

	typeText(m, "Zz")
	press(m, "enter")
	require.Equal(t, StageNamingOrg, m.Stage(), "two-char name must not advance")
	require.NotEmpty(t, m.orgErr, "rejection must surface as a field error")

	m.orgInput.SetValue("")
	typeText(m, "Zonk")
	press(m, "enter")
	require.Equal(t, StageNamingVessel, m.Stage())
	require.Equal(t, "Zonk", m.orgName, "already-capitalized name preserved as typed")
	require.Equal(t, "Zonk", m.orgInput.Value())
}

func TestWizard_NameNormalizedOnAccept(t *testing.T) {
	t.Parallel()

	m := newWizard(wizardSnapshot(5))

	typeText(m, "rebels")
	require.Equal(t, "rebels", m.orgInput.Value(), "no capitalization while typing")
	press(m, "enter")
	require.Equal(t, "Rebels", m.orgName, "first letter capitalized on accept")
}

func TestWizard_VesselBackspaceOnEmptyGoesBack(t *testing.T) {
	t.Parallel()

	m := newWizard(wizardSnapshot(5))
	typeText(m, "Nova")
	press(m, "enter")
	require.Equal(t, StageNamingVessel, m.Stage())

	press(m, "backspace")
	require.Equal(t, StageNamingOrg, m.Stage(), "backspace on empty vessel buffer steps back")
}

func TestWizard_DoubleToggleIdempotent(t *testing.T) {
	t.Parallel()

	m := newWizard(wizardSnapshot(2, 2, 2, 2, 2, 2, 2))
	advanceToRoster(t, m)

	press(m, "enter")
	require.Len(t, m.selected, 1)
	press(m, "enter")
	require.Empty(t, m.selected, "toggling the same candidate twice restores the prior set")
}

func TestWizard_AutoAdvanceGate(t *testing.T) {
	t.Parallel()

	// Seven candidates: bucket[0] is a budget-breaking star, the rest cheap.
	m := newWizard(wizardSnapshot(150, 2, 2, 2, 2, 2, 2))
	advanceToRoster(t, m)
	require.Equal(t, 6, m.maxSelectable())

	// Sign five cheap candidates (cap - 1), balance stays positive.
	for i := 0; i < 5; i++ {
		press(m, "down", "enter")
	}
	require.Len(t, m.selected, 5)
	require.GreaterOrEqual(t, m.RemainingBalance(), int64(0))
	require.Equal(t, StageChoosingRoster, m.Stage())

	// Wrap to the expensive candidate: cap reached but balance negative, so
	// no auto-advance.
	press(m, "down", "down", "enter")
	require.Len(t, m.selected, 6)
	require.Negative(t, m.RemainingBalance())
	require.Equal(t, StageChoosingRoster, m.Stage(), "negative balance must hold the stage")

	// Drop the expensive one, then fill the cap with the last cheap one.
	press(m, "enter")
	require.Len(t, m.selected, 5)
	press(m, "up", "enter")
	require.Len(t, m.selected, 6)
	require.GreaterOrEqual(t, m.RemainingBalance(), int64(0))
	require.Equal(t, StageConfirming, m.Stage(), "restoring the cap in budget must auto-advance")
}

func TestWizard_SingleUnaffordableCandidateNoAutoAdvance(t *testing.T) {
	t.Parallel()

	// One candidate priced above the whole starting balance.
	m := newWizard(wizardSnapshot(200))
	advanceToRoster(t, m)
	require.Equal(t, 1, m.maxSelectable())

	press(m, "enter")
	require.Len(t, m.selected, 1)
	require.Negative(t, m.RemainingBalance())
	require.Equal(t, StageChoosingRoster, m.Stage(),
		"cap reached at negative balance must not advance even when count == max")
}

func TestWizard_EmptyBucketDoesNotStall(t *testing.T) {
	t.Parallel()

	m := newWizard(wizardSnapshot())
	advanceToRoster(t, m)
	require.Equal(t, 0, m.maxSelectable())

	press(m, "enter")
	require.Equal(t, StageConfirming, m.Stage(), "a zero-candidate location must still let the wizard proceed")
}

func TestWizard_RosterBackspaceClearsSelections(t *testing.T) {
	t.Parallel()

	m := newWizard(wizardSnapshot(2, 2, 2, 2, 2, 2, 2))
	advanceToRoster(t, m)

	press(m, "enter", "down", "enter")
	require.Len(t, m.selected, 2)

	press(m, "backspace")
	require.Empty(t, m.selected)
	require.Equal(t, StageChoosingVesselClass, m.Stage())
}

func TestWizard_ConfirmEmitsCreateIntent(t *testing.T) {
	t.Parallel()

	m := newWizard(wizardSnapshot(2))
	advanceToRoster(t, m)
	press(m, "enter") // single affordable hire fills the cap and auto-advances
	require.Equal(t, StageConfirming, m.Stage())

	press(m, "right")
	require.False(t, m.confirmYes, "left/right only move the cosmetic highlight")
	press(m, "left")
	require.True(t, m.confirmYes)

	cmd := m.Update(tea.KeyPressMsg{Text: "enter"})
	require.NotNil(t, cmd)
	msg := cmd()
	intent, ok := msg.(CreateOrganizationMsg)
	require.True(t, ok, "confirm must emit the commit intent")

	require.Equal(t, "Nova", intent.Name)
	require.Equal(t, "Kestrel", intent.VesselName)
	require.Equal(t, locID(1), intent.LocationID)
	require.Len(t, intent.CrewIDs, 1)
	require.Equal(t, world.HullClasses[0], intent.HullClass)
	wantBalance := InitialBalance - 800 - world.HullClasses[0].Cost
	require.Equal(t, wantBalance, intent.Balance)

	require.Equal(t, StageNamingOrg, m.Stage(), "wizard resets for reuse after emitting")
	require.Empty(t, m.selected)
	require.Empty(t, m.orgInput.Value())
}

func TestWizard_CancelEmitsCancelIntent(t *testing.T) {
	t.Parallel()

	m := newWizard(wizardSnapshot(2))
	advanceToRoster(t, m)
	press(m, "enter")
	require.Equal(t, StageConfirming, m.Stage())

	cmd := m.Update(tea.KeyPressMsg{Text: "backspace"})
	require.NotNil(t, cmd)
	_, ok := cmd().(CancelCreationMsg)
	require.True(t, ok, "backspace at confirmation must emit the cancel intent")
	require.Equal(t, StageNamingOrg, m.Stage())
}

func TestWizard_BalanceIgnoresThemeAndNames(t *testing.T) {
	t.Parallel()

	m := newWizard(wizardSnapshot(2, 2))
	typeText(m, "Nova")
	press(m, "enter")
	typeText(m, "Kestrel")
	press(m, "enter")
	press(m, "enter") // location -> theme

	before := m.RemainingBalance()
	press(m, "r", "g", "b", "down")
	require.Equal(t, before, m.RemainingBalance(), "theme changes must not move the balance")
}

func TestWizard_LocationChangeClearsSelections(t *testing.T) {
	t.Parallel()

	snap := &world.Snapshot{
		Locations: []world.Location{
			{ID: locID(1), Name: "Tycho Relay", Population: 1000},
			{ID: locID(2), Name: "Port Vesna", Population: 500},
		},
		Candidates: []world.Candidate{
			{ID: candID(1), HomeLocation: locID(1), Quality: 5},
			{ID: candID(2), HomeLocation: locID(2), Quality: 5},
		},
	}
	m := newWizard(snap)
	advanceToRoster(t, m)
	m.selected = append(m.selected, candID(1))

	m.stage = StageChoosingLocation
	press(m, "down")
	require.Empty(t, m.selected, "selections from the previous location must not survive a location change")
}

func TestWizard_StageEntryResetsCursor(t *testing.T) {
	t.Parallel()

	snap := &world.Snapshot{
		Locations: []world.Location{
			{ID: locID(1), Name: "Tycho Relay", Population: 1000},
			{ID: locID(2), Name: "Port Vesna", Population: 500},
		},
	}
	m := newWizard(snap)
	typeText(m, "Nova")
	press(m, "enter")
	typeText(m, "Kestrel")
	press(m, "enter")

	press(m, "down")
	require.Equal(t, 1, m.locationIndex)
	press(m, "enter") // -> theme
	press(m, "backspace")
	require.Equal(t, StageChoosingLocation, m.Stage())
	require.Equal(t, 0, m.locationIndex, "entering a stage resets its cursor")
}
