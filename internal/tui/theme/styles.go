package theme

import "charm.land/lipgloss/v2"

// Styles contains all pre-built lipgloss styles for the TUI.
type Styles struct {
	HeaderTitle  lipgloss.Style
	ListItem     lipgloss.Style
	ListSelected lipgloss.Style
	Muted        lipgloss.Style
	Confirmed    lipgloss.Style
	ErrorText    lipgloss.Style
	HintKey      lipgloss.Style
	HintDesc     lipgloss.Style
	PanelBorder  lipgloss.Style
}
