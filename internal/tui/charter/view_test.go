package charter

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/astralworks/starcharter/internal/tui/testfixtures"
)

func TestPanelsShowBalanceAndStages(t *testing.T) {
	t.Parallel()

	m := newWizard(wizardSnapshot(5, 5))
	m.SetSize(testfixtures.TestTermWidth, testfixtures.TestTermHeight)
	m.Update(TickMsg{})

	panels, err := m.Panels()
	require.NoError(t, err)
	require.NotEmpty(t, panels)

	require.Contains(t, panels[0].Lines[0].Text, "Remaining balance:")
	require.Equal(t, "Organization name", panels[1].Title)
	require.Equal(t, "Vessel name", panels[2].Title)

	// Future stages render locked.
	locPanel := panels[3]
	require.Equal(t, LineLocked, locPanel.Border)
	require.Empty(t, locPanel.Lines, "locked location panel must not leak the list")
}

func TestPanelsConfirmedLocationCollapses(t *testing.T) {
	t.Parallel()

	m := newWizard(wizardSnapshot(5, 5))
	advanceToRoster(t, m)

	panels, err := m.Panels()
	require.NoError(t, err)

	locPanel := panels[3]
	require.Equal(t, LineConfirmed, locPanel.Border)
	require.Len(t, locPanel.Lines, 1, "a passed stage collapses to its confirmed value")
	require.Equal(t, "Tycho Relay", locPanel.Lines[0].Text)
}

func TestViewRendersWithoutPoolBuilt(t *testing.T) {
	t.Parallel()

	// Before the first tick the pool is unbuilt; View must tolerate it.
	m := newWizard(wizardSnapshot(5))
	m.SetSize(testfixtures.TestTermWidth, testfixtures.TestTermHeight)

	out := m.View()
	require.True(t, strings.Contains(out, "Organization name"))
}

func TestDetailPanelRosterCandidate(t *testing.T) {
	t.Parallel()

	m := newWizard(wizardSnapshot(18))
	advanceToRoster(t, m)

	detail, err := m.DetailPanel()
	require.NoError(t, err)
	require.Equal(t, "Crew Member", detail.Title)
	require.Contains(t, detail.Lines[0].Text, "Grade: A")
}

func TestViewConfirmOverlay(t *testing.T) {
	t.Parallel()

	m := newWizard(wizardSnapshot(2))
	m.SetSize(testfixtures.TestTermWidth, testfixtures.TestTermHeight)
	advanceToRoster(t, m)
	press(m, "enter")
	require.Equal(t, StageConfirming, m.Stage())

	out := m.View()
	require.True(t, strings.Contains(out, "Ready to sail the starlanes?"))
	require.True(t, strings.Contains(out, "Nova from Tycho Relay"))
}
