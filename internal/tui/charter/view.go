package charter

import (
	"fmt"

	"charm.land/glamour/v2"
	"charm.land/lipgloss/v2"

	"github.com/astralworks/starcharter/internal/logger"
	"github.com/astralworks/starcharter/internal/tui/theme"
	"github.com/astralworks/starcharter/internal/world"
)

// LineStyle tags a rendered line or panel border with its semantic state.
// The wizard computes what to show; the styles map tags to colors.
type LineStyle int

const (
	LineDefault LineStyle = iota
	LineSelected
	LineConfirmed
	LineLocked
	LineError
	LineMuted
)

// Line is one styled line of panel content.
type Line struct {
	Text  string
	Style LineStyle
}

// Panel is one bordered block of the wizard layout.
type Panel struct {
	Title  string
	Lines  []Line
	Border LineStyle
}

const briefingMarkdown = `It is the year 2184. The charter lanes are open and
the frontier registrar is taking names.

Charter your own deep-space organization: name it, name your vessel, pick a
home location, paint your livery, choose a hull, and sign a starting crew —
all without running the ledger dry.

**Press enter to confirm each selection.**`

// stageBorder returns the border tag for a panel owned by a stage: confirmed
// once passed, active while current, locked while unreachable.
func (m *Model) stageBorder(owner Stage) LineStyle {
	switch {
	case m.stage > owner:
		return LineConfirmed
	case m.stage == owner:
		return LineDefault
	default:
		return LineLocked
	}
}

// Panels computes the left-column render descriptors for the current state.
// A failed snapshot lookup aborts the pass with an error instead of
// rendering stale data.
func (m *Model) Panels() ([]Panel, error) {
	var panels []Panel

	balance := m.RemainingBalance()
	balanceStyle := LineConfirmed
	if balance < 0 {
		balanceStyle = LineError
	}
	panels = append(panels, Panel{
		Lines:  []Line{{Text: fmt.Sprintf("Remaining balance: %d cr", balance), Style: balanceStyle}},
		Border: balanceStyle,
	})

	panels = append(panels, m.namePanel("Organization name", m.orgInput.View(), m.orgErr, StageNamingOrg))
	panels = append(panels, m.namePanel("Vessel name", m.vesselInput.View(), m.vesselErr, StageNamingVessel))

	locPanel, err := m.locationPanel()
	if err != nil {
		return nil, err
	}
	panels = append(panels, locPanel)
	panels = append(panels, m.liveryPanel())
	panels = append(panels, m.hullPanel())

	rosterPanel, err := m.rosterPanel()
	if err != nil {
		return nil, err
	}
	panels = append(panels, rosterPanel)

	return panels, nil
}

func (m *Model) namePanel(title, inputView, errText string, owner Stage) Panel {
	border := m.stageBorder(owner)
	lines := []Line{{Text: inputView, Style: LineDefault}}
	if errText != "" && m.stage == owner {
		border = LineError
		lines = append(lines, Line{Text: "✗ " + errText, Style: LineError})
	}
	return Panel{Title: title, Lines: lines, Border: border}
}

func (m *Model) locationPanel() (Panel, error) {
	border := m.stageBorder(StageChoosingLocation)
	p := Panel{Title: "Choose home location ↓/↑", Border: border}

	if m.stage < StageChoosingLocation || !m.pool.Built() {
		return p, nil
	}

	if m.stage > StageChoosingLocation {
		loc, err := m.snap.LocationByID(m.currentLocationID())
		if err != nil {
			return Panel{}, err
		}
		p.Lines = []Line{{Text: loc.Name, Style: LineConfirmed}}
		return p, nil
	}

	for i, id := range m.pool.Locations() {
		loc, err := m.snap.LocationByID(id)
		if err != nil {
			return Panel{}, err
		}
		style := LineDefault
		if i == m.locationIndex {
			style = LineSelected
		}
		p.Lines = append(p.Lines, Line{Text: loc.Name, Style: style})
	}
	return p, nil
}

func (m *Model) liveryPanel() Panel {
	border := m.stageBorder(StageChoosingTheme)
	p := Panel{Title: "Choose livery  r/g/b cycle, ↓/↑ pattern", Border: border}

	if m.stage < StageChoosingTheme {
		return p
	}
	// Channel cycling stays live through the hull stage; keep the swatches
	// editable-looking there too.
	if m.stage == StageChoosingVesselClass {
		p.Border = LineDefault
	}

	channels := [3]string{"r", "g", "b"}
	for i, key := range channels {
		p.Lines = append(p.Lines, Line{
			Text:  fmt.Sprintf("[%s] %-8s %s", key, m.livery[i], m.livery[i].Hex()),
			Style: LineDefault,
		})
	}

	if m.stage > StageChoosingTheme {
		p.Lines = append(p.Lines, Line{Text: m.patterns[m.patternIndex].String(), Style: LineConfirmed})
		return p
	}
	for i, pat := range m.patterns {
		style := LineDefault
		if i == m.patternIndex {
			style = LineSelected
		}
		p.Lines = append(p.Lines, Line{Text: pat.String(), Style: style})
	}
	return p
}

func (m *Model) hullPanel() Panel {
	border := m.stageBorder(StageChoosingVesselClass)
	p := Panel{Title: "Choose hull class ↓/↑", Border: border}

	if m.stage < StageChoosingVesselClass {
		return p
	}
	if m.stage > StageChoosingVesselClass {
		p.Lines = []Line{{Text: m.selectedHull().String(), Style: LineConfirmed}}
		return p
	}
	for i, h := range world.HullClasses {
		style := LineDefault
		if i == m.hullIndex {
			style = LineSelected
		}
		p.Lines = append(p.Lines, Line{
			Text:  fmt.Sprintf("%-10s %6d cr", h.Name, h.Cost),
			Style: style,
		})
	}
	return p
}

func (m *Model) rosterPanel() (Panel, error) {
	remaining := m.maxSelectable() - len(m.selected)
	if remaining < 0 {
		remaining = 0
	}
	p := Panel{
		Title:  fmt.Sprintf("Sign %d crew ↓/↑, enter toggles", remaining),
		Border: m.stageBorder(StageChoosingRoster),
	}

	if m.stage < StageChoosingRoster {
		return p, nil
	}

	for i, pc := range m.bucket() {
		if m.stage > StageChoosingRoster && !m.isSelected(pc.ID) {
			continue
		}
		c, err := m.snap.CandidateByID(pc.ID)
		if err != nil {
			return Panel{}, err
		}
		style := LineDefault
		if m.isSelected(pc.ID) {
			style = LineConfirmed
		}
		if m.stage == StageChoosingRoster && i == m.rosterIndex {
			style = LineSelected
		}
		p.Lines = append(p.Lines, Line{
			Text:  fmt.Sprintf("%-16s %5d cr", c.Name, pc.Cost),
			Style: style,
		})
	}
	return p, nil
}

// DetailPanel computes the right-column descriptor for the active stage.
func (m *Model) DetailPanel() (Panel, error) {
	switch m.stage {
	case StageNamingOrg, StageNamingVessel:
		return Panel{Lines: []Line{{Text: m.briefingView(), Style: LineDefault}}}, nil

	case StageChoosingLocation:
		if !m.pool.Built() {
			return Panel{}, nil
		}
		loc, err := m.snap.LocationByID(m.currentLocationID())
		if err != nil {
			return Panel{}, err
		}
		return Panel{
			Title: loc.Name,
			Lines: []Line{
				{Text: rotationGlyph(m.tick, loc.RotationPeriod), Style: LineMuted},
				{Text: fmt.Sprintf("Population: %d", loc.Population), Style: LineDefault},
				{Text: fmt.Sprintf("Rotation: %.1f h", loc.RotationPeriod), Style: LineMuted},
			},
		}, nil

	case StageChoosingTheme:
		lines := make([]Line, 0, 3)
		for i := range m.livery {
			lines = append(lines, Line{Text: m.livery[i].Hex(), Style: LineDefault})
		}
		return Panel{Title: "Livery preview", Lines: lines}, nil

	case StageChoosingVesselClass:
		h := m.selectedHull()
		return Panel{
			Title: h.Name,
			Lines: []Line{
				{Text: fmt.Sprintf("Vessel name: %s", m.vesselName), Style: LineDefault},
				{Text: fmt.Sprintf("Crew berths: %d", h.Capacity), Style: LineDefault},
				{Text: fmt.Sprintf("Speed: %d klyr/t", h.Speed), Style: LineDefault},
				{Text: fmt.Sprintf("Range: %d", h.Range), Style: LineDefault},
				{Text: fmt.Sprintf("Cost: %d cr", h.Cost), Style: LineDefault},
			},
		}, nil

	case StageChoosingRoster:
		bucket := m.bucket()
		if len(bucket) == 0 {
			return Panel{Lines: []Line{{Text: "Nobody to hire here.", Style: LineMuted}}}, nil
		}
		c, err := m.snap.CandidateByID(bucket[m.rosterIndex].ID)
		if err != nil {
			return Panel{}, err
		}
		return Panel{
			Title: c.Name,
			Lines: []Line{
				{Text: fmt.Sprintf("Grade: %s", c.QualityGrade()), Style: LineDefault},
				{Text: fmt.Sprintf("Hire cost: %d cr", bucket[m.rosterIndex].Cost), Style: LineDefault},
			},
		}, nil
	}
	return Panel{}, nil
}

// briefingView renders the intro markdown shown beside the naming stages.
func (m *Model) briefingView() string {
	out, err := glamour.Render(briefingMarkdown, "dark")
	if err != nil {
		return briefingMarkdown
	}
	return out
}

// rotationGlyph picks a phase glyph from the render tick and the location's
// rotation period. Cosmetic only.
func rotationGlyph(tick int, period float64) string {
	glyphs := []string{"◐", "◓", "◑", "◒"}
	step := int(period)
	if step < 1 {
		step = 1
	}
	return glyphs[(tick/step)%len(glyphs)]
}

// View renders the wizard. A failed snapshot lookup aborts the pass with a
// logged diagnostic rather than crashing the program.
func (m *Model) View() string {
	t := theme.Current()
	s := t.S()

	panels, err := m.Panels()
	if err != nil {
		logger.Error("Charter render pass aborted: %v", err)
		return s.ErrorText.Render("world data out of date, retrying…")
	}
	detail, err := m.DetailPanel()
	if err != nil {
		logger.Error("Charter render pass aborted: %v", err)
		return s.ErrorText.Render("world data out of date, retrying…")
	}

	left := make([]string, 0, len(panels))
	for _, p := range panels {
		left = append(left, m.renderPanel(p, leftPanelWidth))
	}
	leftCol := lipgloss.JoinVertical(lipgloss.Left, left...)

	detailWidth := m.width - leftPanelWidth - 2
	if detailWidth < 20 {
		detailWidth = 20
	}
	rightCol := m.renderPanel(detail, detailWidth)

	body := lipgloss.JoinHorizontal(lipgloss.Top, leftCol, " ", rightCol)
	content := lipgloss.JoinVertical(lipgloss.Left, body, m.hintBar())

	if m.stage == StageConfirming {
		return lipgloss.JoinVertical(lipgloss.Left, content, m.confirmOverlay())
	}
	return content
}

const leftPanelWidth = 44

// renderPanel draws one descriptor with the theme styles.
func (m *Model) renderPanel(p Panel, width int) string {
	t := theme.Current()
	s := t.S()

	var body []string
	if p.Title != "" {
		body = append(body, s.HeaderTitle.Render(p.Title))
	}
	for _, line := range p.Lines {
		var st lipgloss.Style
		switch line.Style {
		case LineSelected:
			st = s.ListSelected
		case LineConfirmed:
			st = s.Confirmed
		case LineLocked, LineMuted:
			st = s.Muted
		case LineError:
			st = s.ErrorText
		default:
			st = s.ListItem
		}
		text := line.Text
		if line.Style == LineSelected {
			text = "> " + text
		}
		body = append(body, st.Render(text))
	}

	border := s.PanelBorder
	switch p.Border {
	case LineConfirmed:
		border = border.BorderForeground(lipgloss.Color(t.Success))
	case LineError:
		border = border.BorderForeground(lipgloss.Color(t.Error))
	case LineLocked:
		border = border.BorderForeground(lipgloss.Color(t.FgMuted))
	}

	return border.Width(width).Render(lipgloss.JoinVertical(lipgloss.Left, body...))
}

// confirmOverlay draws the final yes/no box. Left/right move the cosmetic
// highlight; enter commits and backspace cancels regardless.
func (m *Model) confirmOverlay() string {
	t := theme.Current()
	s := t.S()

	var yes, no string
	if m.confirmYes {
		yes = s.ListSelected.Render("[ Yes ]")
		no = s.Muted.Render("  No  ")
	} else {
		yes = s.Muted.Render("  Yes  ")
		no = s.ErrorText.Render("[ No ]")
	}

	locName := ""
	if loc, err := m.snap.LocationByID(m.currentLocationID()); err == nil {
		locName = loc.Name
	}

	content := lipgloss.JoinVertical(
		lipgloss.Center,
		s.HeaderTitle.Render(fmt.Sprintf("%s from %s", m.orgName, locName)),
		"Ready to sail the starlanes?",
		"",
		lipgloss.JoinHorizontal(lipgloss.Top, yes, "  ", no),
	)

	return s.PanelBorder.
		BorderForeground(lipgloss.Color(t.Primary)).
		Padding(1, 2).
		Render(content)
}
