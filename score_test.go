package scorecraft_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/scorecraft/scorecraft"
)

func setupOf(info scorecraft.ScoreInfo, instruments ...string) scorecraft.Setup {
	return scorecraft.Setup{Info: info, Instruments: instruments}
}

func TestSetupEmpty(t *testing.T) {
	tests := []struct {
		name  string
		setup scorecraft.Setup
		empty bool
	}{
		{"zero", scorecraft.Setup{}, true},
		{"title", setupOf(scorecraft.ScoreInfo{Title: "Étude"}), false},
		{"instrument", setupOf(scorecraft.ScoreInfo{}, "Oboe"), false},
		{"template", scorecraft.Setup{Template: "Jazz"}, false},
		{"key", scorecraft.Setup{Key: scorecraft.KeySignature{Minor: true}}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.setup.Copy().Empty(); got != tt.empty {
				t.Errorf("expected Empty() == %v, got %v", tt.empty, got)
			}
		})
	}
}

func TestSetupCopy(t *testing.T) {
	orig := setupOf(scorecraft.ScoreInfo{Title: "Suite"}, "Flute", "Oboe")
	c := orig.Copy()
	if diff := cmp.Diff(orig, c); diff != "" {
		t.Fatalf("copy mismatch (-want +got):\n%s", diff)
	}
	c.Instruments[0] = "Piccolo"
	if orig.Instruments[0] != "Flute" {
		t.Errorf("Copy shares the instrument slice")
	}
}
