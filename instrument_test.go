package scorecraft_test

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/scorecraft/scorecraft"
)

func TestDefaultCatalogWoodwinds(t *testing.T) {
	c := scorecraft.DefaultCatalog()
	f, ok := c.Family("Woodwinds")
	if !ok {
		t.Fatalf("default catalog has no Woodwinds family")
	}
	expected := []string{"Piccolo", "Flute", "Recorder", "Oboe", "Bb Clarinet", "Bb Bass Clarinet", "Bassoon", "Soprano Saxophone", "Alto Saxophone", "Tenor Saxophone", "Baritone Saxophone"}
	if diff := cmp.Diff(expected, f.Instruments); diff != "" {
		t.Errorf("woodwinds mismatch (-want +got):\n%s", diff)
	}
	if c.Families[0].Name != "Woodwinds" {
		t.Errorf("expected Woodwinds to be listed first, got %q", c.Families[0].Name)
	}
}

func TestReadCatalog(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr string
	}{
		{"valid", "families:\n  - name: Brass\n    instruments: [Tuba]\n", ""},
		{"empty", "families: []\n", "no instrument families"},
		{"unnamed family", "families:\n  - instruments: [Tuba]\n", "has no name"},
		{"duplicate family", "families:\n  - name: Brass\n  - name: Brass\n", "appears twice"},
		{"empty instrument", "families:\n  - name: Brass\n    instruments: ['']\n", "instrument 0 of family"},
		{"unknown key", "families:\n  - name: Brass\n    colour: red\n", "could not decode"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := scorecraft.ReadCatalog(strings.NewReader(tt.yaml))
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				if len(c.Families) != 1 || c.Families[0].Name != "Brass" {
					t.Errorf("unexpected catalog %+v", c)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("expected error containing %q, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestCatalogCopyIsDeep(t *testing.T) {
	c := scorecraft.DefaultCatalog()
	c2 := c.Copy()
	c2.Families[0].Instruments[0] = "Kazoo"
	if c.Families[0].Instruments[0] == "Kazoo" {
		t.Errorf("Copy shares instrument slices with the original")
	}
}
