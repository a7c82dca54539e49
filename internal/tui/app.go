package tui

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	uv "github.com/charmbracelet/ultraviolet"

	"github.com/astralworks/starcharter/internal/logger"
	"github.com/astralworks/starcharter/internal/registry"
	"github.com/astralworks/starcharter/internal/tui/charter"
	"github.com/astralworks/starcharter/internal/tui/theme"
	"github.com/astralworks/starcharter/internal/world"
)

// tickInterval drives the cosmetic animation cadence.
const tickInterval = 100 * time.Millisecond

// charterRecordedMsg reports the outcome of executing a commit intent.
type charterRecordedMsg struct {
	name string
	err  error
}

// App is the main Bubbletea model hosting the charter wizard. It owns the
// world snapshot and the registry store; the wizard only ever sees the
// snapshot and emits intents for App to execute.
type App struct {
	ctx     context.Context
	snap    *world.Snapshot
	store   *registry.Store // nil when running without the registry
	profile string

	wizard *charter.Model

	statusMsg string
	width     int
	height    int
	quitting  bool
}

// NewApp creates the application shell. The seed feeds the wizard's livery
// shuffle only.
func NewApp(ctx context.Context, snap *world.Snapshot, store *registry.Store, profile string, seed int64) *App {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &App{
		ctx:     ctx,
		snap:    snap,
		store:   store,
		profile: profile,
		wizard:  charter.New(snap, rand.New(rand.NewSource(seed))),
	}
}

// Run starts the Bubbletea program and blocks until it exits.
func Run(ctx context.Context, snap *world.Snapshot, store *registry.Store, profile string, seed int64) error {
	a := NewApp(ctx, snap, store, profile, seed)
	p := tea.NewProgram(a)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui failed: %w", err)
	}
	return nil
}

// Init starts the wizard and the animation tick.
func (a *App) Init() tea.Cmd {
	return tea.Batch(a.wizard.Init(), a.tick())
}

func (a *App) tick() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return charter.TickMsg(t)
	})
}

// Update routes messages between the shell and the wizard.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyPressMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			a.quitting = true
			return a, tea.Quit
		}
		return a, a.wizard.Update(msg)

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.wizard.SetSize(msg.Width, msg.Height-2)
		return a, nil

	case charter.TickMsg:
		cmd := a.wizard.Update(msg)
		return a, tea.Batch(cmd, a.tick())

	case charter.CreateOrganizationMsg:
		return a, a.executeCharter(msg)

	case charter.CancelCreationMsg:
		logger.Info("Charter cancelled, exiting")
		a.quitting = true
		return a, tea.Quit

	case charterRecordedMsg:
		if msg.err != nil {
			a.statusMsg = fmt.Sprintf("failed to record charter: %v", msg.err)
		} else {
			a.statusMsg = fmt.Sprintf("%s chartered! Fly safe.", msg.name)
		}
		return a, nil
	}

	return a, a.wizard.Update(msg)
}

// executeCharter records the committed organization in the registry. The
// wizard has already reset itself; this runs off the update loop.
func (a *App) executeCharter(intent charter.CreateOrganizationMsg) tea.Cmd {
	if a.store == nil {
		a.statusMsg = fmt.Sprintf("%s chartered (registry disabled)", intent.Name)
		return nil
	}

	org := registry.Organization{
		Name:       intent.Name,
		VesselName: intent.VesselName,
		HullClass:  intent.HullClass.Name,
		LocationID: intent.LocationID.String(),
		Pattern:    intent.Pattern.String(),
		Balance:    intent.Balance,
	}
	for i, preset := range intent.Livery {
		org.Livery[i] = preset.Hex()
	}
	for _, id := range intent.CrewIDs {
		org.CrewIDs = append(org.CrewIDs, id.String())
	}
	if loc, err := a.snap.LocationByID(intent.LocationID); err == nil {
		org.LocationName = loc.Name
	} else {
		logger.Warn("Committed charter references unknown location %s", intent.LocationID)
	}

	ctx := a.ctx
	store := a.store
	profile := a.profile
	return func() tea.Msg {
		err := store.RecordCharter(ctx, profile, org)
		return charterRecordedMsg{name: org.Name, err: err}
	}
}

// View draws the wizard plus the status line on an ultraviolet canvas.
func (a *App) View() tea.View {
	var view tea.View
	view.AltScreen = true

	if a.width == 0 || a.height == 0 {
		view.Content = lipgloss.NewLayer("")
		return view
	}

	t := theme.Current()
	content := a.wizard.View()
	if a.statusMsg != "" {
		status := lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Info)).
			Render(a.statusMsg)
		content = lipgloss.JoinVertical(lipgloss.Left, content, status)
	}

	canvas := uv.NewScreenBuffer(a.width, a.height)
	uv.NewStyledString(content).Draw(canvas, uv.Rect(0, 0, a.width, a.height))

	view.Content = lipgloss.NewLayer(canvas.Render())
	view.BackgroundColor = lipgloss.Color(t.BgBase)
	return view
}
