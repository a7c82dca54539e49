package charter

import (
	"math/rand"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"

	"github.com/astralworks/starcharter/internal/logger"
	"github.com/astralworks/starcharter/internal/world"
	"github.com/google/uuid"
)

// charterCrewSize is the roster cap for a new organization. A location with
// fewer candidates caps at its bucket length instead.
const charterCrewSize = 6

// Model is the charter wizard. It owns all wizard state exclusively; the
// shell only forwards messages and consumes the emitted intents. One key
// event is processed to completion before the next, so renders never observe
// a half-applied transition.
type Model struct {
	snap  *world.Snapshot
	rng   *rand.Rand
	stage Stage
	tick  int

	orgInput    textinput.Model
	vesselInput textinput.Model
	orgErr      string
	vesselErr   string
	orgName     string // normalized on accept
	vesselName  string

	patterns     []LiveryPattern
	patternIndex int
	livery       [3]ColorPreset

	locationIndex int
	hullIndex     int
	rosterIndex   int

	pool     *CandidatePool
	selected []uuid.UUID

	confirmYes bool

	width  int
	height int
}

// New creates a fresh wizard over a world snapshot. The rng seeds the
// initial livery channel shuffle and nothing else.
func New(snap *world.Snapshot, rng *rand.Rand) *Model {
	m := &Model{
		snap: snap,
		rng:  rng,
	}
	m.start()
	return m
}

// start initializes all per-session state. Shared by New and Reset.
func (m *Model) start() {
	org := textinput.New()
	org.Placeholder = "organization name"
	org.CharLimit = maxNameLength + 4 // slack so over-length is typed, seen, rejected
	org.Focus()

	vessel := textinput.New()
	vessel.Placeholder = "vessel name"
	vessel.CharLimit = maxNameLength + 4

	m.stage = StageNamingOrg
	m.tick = 0
	m.orgInput = org
	m.vesselInput = vessel
	m.orgErr = ""
	m.vesselErr = ""
	m.orgName = ""
	m.vesselName = ""
	m.patterns = CharterPatterns()
	m.patternIndex = 0
	m.livery = ShuffledPresets(m.rng)
	m.locationIndex = 0
	m.hullIndex = 0
	m.rosterIndex = 0
	m.pool = NewCandidatePool()
	m.selected = nil
	m.confirmYes = true
}

// Reset discards the session so the wizard instance can be reused. Called
// after an intent has been emitted.
func (m *Model) Reset() {
	m.start()
}

// Init starts the cursor blink for the focused name input.
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// SetSize updates the terminal dimensions used by View.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// Stage returns the active stage.
func (m *Model) Stage() Stage {
	return m.stage
}

// cursor returns the active stage's IndexCursor: its stored position and a
// bound derived from the live list length. Stages without a list get a
// zero-bound cursor.
func (m *Model) cursor() IndexCursor {
	switch m.stage {
	case StageChoosingLocation:
		return NewIndexCursor(m.locationIndex, len(m.pool.Locations()))
	case StageChoosingTheme:
		return NewIndexCursor(m.patternIndex, len(m.patterns))
	case StageChoosingVesselClass:
		return NewIndexCursor(m.hullIndex, len(world.HullClasses))
	case StageChoosingRoster:
		return NewIndexCursor(m.rosterIndex, len(m.bucket()))
	}
	return NewIndexCursor(0, 0)
}

// setIndex stores a cursor position into the active stage's index field.
func (m *Model) setIndex(pos int) {
	switch m.stage {
	case StageChoosingLocation:
		if pos != m.locationIndex {
			// Selections from another location's bucket would be unreachable;
			// drop them instead of carrying them invisibly.
			m.selected = m.selected[:0]
		}
		m.locationIndex = pos
	case StageChoosingTheme:
		m.patternIndex = pos
	case StageChoosingVesselClass:
		m.hullIndex = pos
	case StageChoosingRoster:
		m.rosterIndex = pos
	}
}

// setStage transitions to a stage and resets the incoming stage's cursor.
func (m *Model) setStage(s Stage) {
	logger.Debug("Charter wizard stage: %s -> %s", m.stage, s)
	m.stage = s
	m.setIndex(0)
}

// currentLocationID returns the id of the location under the stored location
// index, or uuid.Nil before the pool is built.
func (m *Model) currentLocationID() uuid.UUID {
	locs := m.pool.Locations()
	if m.locationIndex >= len(locs) {
		return uuid.Nil
	}
	return locs[m.locationIndex]
}

// bucket returns the priced candidates at the currently chosen location.
// Valid at every stage: the balance banner prices against whichever location
// index is stored even when the location stage is not active.
func (m *Model) bucket() []PricedCandidate {
	return m.pool.Bucket(m.currentLocationID())
}

// maxSelectable is the roster cap: the crew size, or the bucket length at a
// thin location. A zero-length bucket caps at 0 and the roster stage is
// immediately satisfiable.
func (m *Model) maxSelectable() int {
	n := len(m.bucket())
	if n < charterCrewSize {
		return n
	}
	return charterCrewSize
}

func (m *Model) enoughSelected() bool {
	return len(m.selected) >= m.maxSelectable()
}

// RemainingBalance derives the advisory balance from the current selections.
// Never cached.
func (m *Model) RemainingBalance() int64 {
	return RemainingBalance(m.bucket(), m.selected, m.selectedHull().Cost)
}

func (m *Model) selectedHull() world.HullClass {
	return world.HullClasses[m.hullIndex]
}

func (m *Model) isSelected(id uuid.UUID) bool {
	for _, s := range m.selected {
		if s == id {
			return true
		}
	}
	return false
}

// Update processes one message. The pool build is checked on every pass, not
// gated by a flag, so it is idempotent across ticks until first success.
func (m *Model) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case TickMsg:
		m.tick++
		m.pool.EnsureBuilt(m.snap)
		return nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return nil

	case tea.KeyPressMsg:
		m.pool.EnsureBuilt(m.snap)
		return m.handleKey(msg)
	}

	return m.forwardToInput(msg)
}

// handleKey dispatches one key press. Cursor keys are intercepted before any
// stage-specific handling, at every stage.
func (m *Model) handleKey(msg tea.KeyPressMsg) tea.Cmd {
	switch msg.String() {
	case "down":
		c := m.cursor()
		c.Advance()
		m.setIndex(c.Current())
		return nil
	case "up":
		c := m.cursor()
		c.Retreat()
		m.setIndex(c.Current())
		return nil
	}

	switch m.stage {
	case StageNamingOrg:
		return m.handleNamingOrg(msg)
	case StageNamingVessel:
		return m.handleNamingVessel(msg)
	case StageChoosingLocation:
		return m.handleChoosingLocation(msg)
	case StageChoosingTheme:
		return m.handleChoosingTheme(msg)
	case StageChoosingVesselClass:
		return m.handleChoosingVesselClass(msg)
	case StageChoosingRoster:
		return m.handleChoosingRoster(msg)
	case StageConfirming:
		return m.handleConfirming(msg)
	}
	return nil
}

func (m *Model) handleNamingOrg(msg tea.KeyPressMsg) tea.Cmd {
	if msg.String() == "enter" {
		if err := ValidateName(m.orgInput.Value()); err != nil {
			m.orgErr = err.Error()
			return nil
		}
		m.orgName = NormalizeName(m.orgInput.Value())
		m.orgInput.SetValue(m.orgName)
		m.orgErr = ""
		m.orgInput.Blur()
		m.vesselInput.Focus()
		m.setStage(m.stage.Next())
		return textinput.Blink
	}

	var cmd tea.Cmd
	m.orgInput, cmd = m.orgInput.Update(msg)
	if err := ValidateName(m.orgInput.Value()); err != nil {
		m.orgErr = err.Error()
	} else {
		m.orgErr = ""
	}
	return cmd
}

func (m *Model) handleNamingVessel(msg tea.KeyPressMsg) tea.Cmd {
	switch msg.String() {
	case "enter":
		if err := ValidateName(m.vesselInput.Value()); err != nil {
			m.vesselErr = err.Error()
			return nil
		}
		m.vesselName = NormalizeName(m.vesselInput.Value())
		m.vesselInput.SetValue(m.vesselName)
		m.vesselErr = ""
		m.vesselInput.Blur()
		m.setStage(m.stage.Next())
		return nil

	case "backspace":
		if m.vesselInput.Value() == "" {
			m.vesselInput.Blur()
			m.orgInput.Focus()
			m.setStage(m.stage.Previous())
			return textinput.Blink
		}
	}

	var cmd tea.Cmd
	m.vesselInput, cmd = m.vesselInput.Update(msg)
	if err := ValidateName(m.vesselInput.Value()); err != nil {
		m.vesselErr = err.Error()
	} else {
		m.vesselErr = ""
	}
	return cmd
}

func (m *Model) handleChoosingLocation(msg tea.KeyPressMsg) tea.Cmd {
	switch msg.String() {
	case "enter":
		m.setStage(m.stage.Next())
	case "backspace":
		m.vesselInput.Focus()
		m.setStage(m.stage.Previous())
		return textinput.Blink
	}
	return nil
}

func (m *Model) handleChoosingTheme(msg tea.KeyPressMsg) tea.Cmd {
	switch msg.String() {
	case "enter":
		m.setStage(m.stage.Next())
	case "backspace":
		m.setStage(m.stage.Previous())
	default:
		m.cycleLiveryChannel(msg.String())
	}
	return nil
}

func (m *Model) handleChoosingVesselClass(msg tea.KeyPressMsg) tea.Cmd {
	switch msg.String() {
	case "enter":
		m.setStage(m.stage.Next())
	case "backspace":
		m.setStage(m.stage.Previous())
	default:
		// Channel cycling stays live while picking the hull, so the livery
		// can be tuned against the hull preview.
		m.cycleLiveryChannel(msg.String())
	}
	return nil
}

// cycleLiveryChannel rotates one of the three channels through the palette.
func (m *Model) cycleLiveryChannel(key string) {
	switch key {
	case "r":
		m.livery[0] = m.livery[0].Next()
	case "g":
		m.livery[1] = m.livery[1].Next()
	case "b":
		m.livery[2] = m.livery[2].Next()
	}
}

func (m *Model) handleChoosingRoster(msg tea.KeyPressMsg) tea.Cmd {
	switch msg.String() {
	case "enter":
		bucket := m.bucket()
		if len(bucket) == 0 {
			// Degenerate location: nothing to hire, cap is 0, so the stage
			// is satisfiable as-is.
			if m.RemainingBalance() >= 0 {
				m.setStage(m.stage.Next())
			}
			return nil
		}

		id := bucket[m.rosterIndex].ID
		if m.isSelected(id) {
			kept := m.selected[:0]
			for _, s := range m.selected {
				if s != id {
					kept = append(kept, s)
				}
			}
			m.selected = kept
		} else if len(m.selected) < m.maxSelectable() {
			m.selected = append(m.selected, id)
		}

		// Auto-advance only when this toggle satisfies both conditions at
		// once. A full roster at negative balance stays here until the user
		// frees budget.
		if m.RemainingBalance() >= 0 && m.enoughSelected() {
			m.setStage(m.stage.Next())
		}

	case "backspace":
		m.selected = m.selected[:0]
		m.setStage(m.stage.Previous())
	}
	return nil
}

func (m *Model) handleConfirming(msg tea.KeyPressMsg) tea.Cmd {
	switch msg.String() {
	case "enter":
		intent := m.buildIntent()
		logger.Info("Charter confirmed: org=%s vessel=%s balance=%d",
			intent.Name, intent.VesselName, intent.Balance)
		m.Reset()
		return func() tea.Msg { return intent }

	case "backspace":
		m.setIndex(0)
		logger.Debug("Charter cancelled at confirmation")
		m.Reset()
		return func() tea.Msg { return CancelCreationMsg{} }

	case "left":
		m.confirmYes = true
	case "right":
		m.confirmYes = false
	}
	return nil
}

// buildIntent freezes the wizard result into the outbound commit intent.
func (m *Model) buildIntent() CreateOrganizationMsg {
	crew := make([]uuid.UUID, len(m.selected))
	copy(crew, m.selected)

	return CreateOrganizationMsg{
		Name:       m.orgName,
		VesselName: m.vesselName,
		LocationID: m.currentLocationID(),
		Livery:     m.livery,
		Pattern:    m.patterns[m.patternIndex],
		HullClass:  m.selectedHull(),
		CrewIDs:    crew,
		Balance:    m.RemainingBalance(),
	}
}

// forwardToInput delivers non-key messages (blink ticks and the like) to the
// focused name input.
func (m *Model) forwardToInput(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch m.stage {
	case StageNamingOrg:
		m.orgInput, cmd = m.orgInput.Update(msg)
	case StageNamingVessel:
		m.vesselInput, cmd = m.vesselInput.Update(msg)
	}
	return cmd
}
