package charter

import "math/rand"

// ColorPreset is one entry of the fixed livery color palette. Each of the
// three livery channels cycles through the same palette independently.
type ColorPreset int

const (
	PresetCrimson ColorPreset = iota
	PresetAmber
	PresetViridian
	PresetCobalt
	PresetViolet
	PresetPearl
	PresetOnyx
	presetCount
)

var presetNames = [presetCount]string{
	"Crimson", "Amber", "Viridian", "Cobalt", "Violet", "Pearl", "Onyx",
}

var presetHex = [presetCount]string{
	"#d13438", "#ffb900", "#3a9b6e", "#3061d4", "#8b5fd4", "#e8e6e3", "#22222a",
}

// Next returns the following preset, wrapping at the end of the palette.
func (p ColorPreset) Next() ColorPreset {
	return (p + 1) % presetCount
}

func (p ColorPreset) String() string {
	if p < 0 || p >= presetCount {
		return "unknown"
	}
	return presetNames[p]
}

// Hex returns the preset's display color.
func (p ColorPreset) Hex() string {
	if p < 0 || p >= presetCount {
		return "#000000"
	}
	return presetHex[p]
}

// ShuffledPresets picks three distinct starting presets for the livery
// channels. The rng is injected by the caller so the shuffle is
// deterministic under test.
func ShuffledPresets(rng *rand.Rand) [3]ColorPreset {
	presets := make([]ColorPreset, presetCount)
	for i := range presets {
		presets[i] = ColorPreset(i)
	}
	rng.Shuffle(len(presets), func(i, j int) {
		presets[i], presets[j] = presets[j], presets[i]
	})
	return [3]ColorPreset{presets[0], presets[1], presets[2]}
}

// LiveryPattern is the hull paint pattern applied on top of the three
// channel colors.
type LiveryPattern int

const (
	PatternSolid LiveryPattern = iota
	PatternStriped
	PatternHalved
	PatternCheckered
	PatternGradient
	PatternCeremonial
	patternCount
)

var patternNames = [patternCount]string{
	"Solid", "Striped", "Halved", "Checkered", "Gradient", "Ceremonial",
}

func (l LiveryPattern) String() string {
	if l < 0 || l >= patternCount {
		return "unknown"
	}
	return patternNames[l]
}

// AvailableAtCharter reports whether the pattern can be picked for a new
// organization. Ceremonial liveries are earned, not chartered.
func (l LiveryPattern) AvailableAtCharter() bool {
	return l != PatternCeremonial
}

// CharterPatterns returns the patterns selectable in the wizard, in
// declaration order.
func CharterPatterns() []LiveryPattern {
	out := make([]LiveryPattern, 0, patternCount)
	for l := LiveryPattern(0); l < patternCount; l++ {
		if l.AvailableAtCharter() {
			out = append(out, l)
		}
	}
	return out
}
