package charter

import (
	"math/rand"
	"testing"
)

func TestColorPresetNextWraps(t *testing.T) {
	p := ColorPreset(0)
	seen := map[ColorPreset]bool{}
	for i := 0; i < int(presetCount); i++ {
		if seen[p] {
			t.Fatalf("preset %v repeated before full cycle", p)
		}
		seen[p] = true
		p = p.Next()
	}
	if p != ColorPreset(0) {
		t.Errorf("full cycle ended at %v, want start", p)
	}
}

func TestShuffledPresetsDeterministic(t *testing.T) {
	a := ShuffledPresets(rand.New(rand.NewSource(11)))
	b := ShuffledPresets(rand.New(rand.NewSource(11)))
	if a != b {
		t.Errorf("identical seeds produced different shuffles: %v vs %v", a, b)
	}

	if a[0] == a[1] || a[1] == a[2] || a[0] == a[2] {
		t.Errorf("shuffle assigned the same preset to two channels: %v", a)
	}
}

func TestCharterPatternsExcludeCeremonial(t *testing.T) {
	for _, p := range CharterPatterns() {
		if !p.AvailableAtCharter() {
			t.Errorf("pattern %v should not be selectable at charter", p)
		}
	}
	if len(CharterPatterns()) != int(patternCount)-1 {
		t.Errorf("got %d charter patterns, want %d", len(CharterPatterns()), int(patternCount)-1)
	}
}
