package charter

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/astralworks/starcharter/internal/tui/theme"
)

type hint struct {
	key  string
	desc string
}

// stageHints returns the key hints shown under the wizard for each stage.
func (m *Model) stageHints() []hint {
	switch m.stage {
	case StageNamingOrg:
		return []hint{{"enter", "confirm name"}}
	case StageNamingVessel:
		return []hint{{"enter", "confirm name"}, {"backspace", "back (empty field)"}}
	case StageChoosingLocation:
		return []hint{{"↓/↑", "browse"}, {"enter", "confirm"}, {"backspace", "back"}}
	case StageChoosingTheme:
		return []hint{{"r/g/b", "cycle channel"}, {"↓/↑", "pattern"}, {"enter", "confirm"}, {"backspace", "back"}}
	case StageChoosingVesselClass:
		return []hint{{"↓/↑", "browse"}, {"r/g/b", "cycle channel"}, {"enter", "confirm"}, {"backspace", "back"}}
	case StageChoosingRoster:
		return []hint{{"↓/↑", "browse"}, {"enter", "toggle hire"}, {"backspace", "clear & back"}}
	case StageConfirming:
		return []hint{{"enter", "charter!"}, {"backspace", "cancel"}}
	}
	return nil
}

// hintBar renders the stage hints in a single muted line.
func (m *Model) hintBar() string {
	s := theme.Current().S()

	parts := make([]string, 0, len(m.stageHints()))
	for _, h := range m.stageHints() {
		parts = append(parts, s.HintKey.Render(h.key)+" "+s.HintDesc.Render(h.desc))
	}
	return lipgloss.NewStyle().MarginTop(1).Render(strings.Join(parts, "  •  "))
}
