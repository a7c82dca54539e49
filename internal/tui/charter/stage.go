package charter

// Stage is one discrete step of the charter wizard. The declaration order is
// the wizard order.
type Stage int

const (
	StageNamingOrg Stage = iota
	StageNamingVessel
	StageChoosingLocation
	StageChoosingTheme
	StageChoosingVesselClass
	StageChoosingRoster
	StageConfirming
)

// Next returns the following stage, saturating at StageConfirming.
func (s Stage) Next() Stage {
	if s >= StageConfirming {
		return StageConfirming
	}
	return s + 1
}

// Previous returns the preceding stage, saturating at StageNamingOrg.
func (s Stage) Previous() Stage {
	if s <= StageNamingOrg {
		return StageNamingOrg
	}
	return s - 1
}

func (s Stage) String() string {
	switch s {
	case StageNamingOrg:
		return "naming-org"
	case StageNamingVessel:
		return "naming-vessel"
	case StageChoosingLocation:
		return "choosing-location"
	case StageChoosingTheme:
		return "choosing-theme"
	case StageChoosingVesselClass:
		return "choosing-vessel-class"
	case StageChoosingRoster:
		return "choosing-roster"
	case StageConfirming:
		return "confirming"
	}
	return "unknown"
}
