package taxonomy

import "testing"

func TestDefault_CategoryOrder(t *testing.T) {
	cats := Default().Categories()
	names := AllNames()
	if len(cats) != len(names) {
		t.Fatalf("got %d categories, want %d", len(cats), len(names))
	}
	for i, c := range cats {
		if c.Name != names[i] {
			t.Errorf("category[%d] = %q, want %q", i, c.Name, names[i])
		}
	}
}

func TestDefault_DefaultCategory(t *testing.T) {
	c, ok := Default().DefaultCategory()
	if !ok {
		t.Fatal("DefaultCategory returned false")
	}
	if c.Name != BallStriking {
		t.Errorf("default = %q, want %q", c.Name, BallStriking)
	}
}

func TestSeed_AllFieldsPopulated(t *testing.T) {
	for _, c := range seedCategories {
		if len(c.Keywords) == 0 {
			t.Errorf("%s has no keywords", c.Name)
		}
		if len(c.RelatedEquipment) == 0 {
			t.Errorf("%s has no related equipment", c.Name)
		}
		if len(c.OutcomeMetrics) == 0 {
			t.Errorf("%s has no outcome metrics", c.Name)
		}
		if len(c.SearchTerms) == 0 {
			t.Errorf("%s has no search terms", c.Name)
		}
		if _, ok := seedDetectors[c.Name]; !ok {
			t.Errorf("%s has no detector vocabulary", c.Name)
		}
	}
}

func TestGet_ReturnsCopy(t *testing.T) {
	tax := Default()
	c, ok := tax.Get(Putting)
	if !ok {
		t.Fatal("Get(Putting) returned false")
	}
	c.Keywords[0] = "mutated"

	again, _ := tax.Get(Putting)
	if again.Keywords[0] == "mutated" {
		t.Error("mutating a returned category changed the taxonomy")
	}
}

func TestGet_Unknown(t *testing.T) {
	if _, ok := Default().Get("Croquet"); ok {
		t.Error("Get(Croquet) returned true")
	}
}

func TestNew_Errors(t *testing.T) {
	tests := []struct {
		name       string
		categories []Category
		def        Name
	}{
		{"empty name", []Category{{Name: ""}}, ""},
		{"duplicate", []Category{{Name: Putting}, {Name: Putting}}, Putting},
		{"missing default", []Category{{Name: Putting}}, BallStriking},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := New(tt.categories, tt.def); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestNew_Empty(t *testing.T) {
	tax, err := New(nil, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tax.Len() != 0 {
		t.Errorf("Len = %d, want 0", tax.Len())
	}
	if _, ok := tax.DefaultCategory(); ok {
		t.Error("empty taxonomy reported a default category")
	}
}

func TestDetector_Matches(t *testing.T) {
	tests := []struct {
		cat  Name
		text string
		want bool
	}{
		{Putting, "lag putting ladder", true},
		{Putting, "roll it to the hole on your line", true},
		{Putting, "splash out onto the green", false},
		{ShortGame, "bunker escape from the sand", true},
		{ShortGame, "land it soft with loft and bounce", true},
		{BallStriking, "impact bag smash", true},
		{BallStriking, "hit irons", false},
		{DrivingAccuracy, "tee gate drill with the driver", true},
		{DistanceControl, "ladder to three targets using tempo", true},
	}
	for _, tt := range tests {
		d, ok := Default().Detector(tt.cat)
		if !ok {
			t.Fatalf("no detector for %s", tt.cat)
		}
		if d.Category() != tt.cat {
			t.Errorf("detector category = %q, want %q", d.Category(), tt.cat)
		}
		if got := d.Matches(tt.text); got != tt.want {
			t.Errorf("%s.Matches(%q) = %v, want %v", tt.cat, tt.text, got, tt.want)
		}
	}
}

func TestNewDetector_FallsBackToKeywords(t *testing.T) {
	tax, err := New([]Category{{Name: "Range Etiquette", Keywords: []string{"divot repair"}}}, "Range Etiquette")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	d, _ := tax.Detector("Range Etiquette")
	if !d.Matches("always do your divot repair") {
		t.Error("keyword fallback detector did not match")
	}
}

func TestMentionsBunker(t *testing.T) {
	if !MentionsBunker("greenside bunker shots") {
		t.Error("expected bunker mention")
	}
	if !MentionsBunker("out of the sand") {
		t.Error("expected sand mention")
	}
	if MentionsBunker("three putting") {
		t.Error("unexpected bunker mention")
	}
}

func TestCountContains(t *testing.T) {
	if got := CountContains("line and speed", []string{"line", "speed", "read", ""}); got != 2 {
		t.Errorf("CountContains = %d, want 2", got)
	}
}
