package classify

import (
	"slices"
	"testing"

	"github.com/abhisek/swingplan/internal/taxonomy"
)

func TestClassify_Scenarios(t *testing.T) {
	tests := []struct {
		problem string
		want    taxonomy.Name
	}{
		{"I'm topping my iron shots", taxonomy.BallStriking},
		{"three putting too much", taxonomy.Putting},
		{"my driver slices off the tee", taxonomy.DrivingAccuracy},
		{"can't get out of the bunker with my sand wedge", taxonomy.ShortGame},
		{"always come up too short, yardage is off", taxonomy.DistanceControl},
	}
	for _, tt := range tests {
		res := Classify(taxonomy.Default(), tt.problem)
		if res == nil {
			t.Fatalf("Classify(%q) = nil", tt.problem)
		}
		if res.Category.Name != tt.want {
			t.Errorf("Classify(%q) = %q, want %q", tt.problem, res.Category.Name, tt.want)
		}
		if res.Fallback {
			t.Errorf("Classify(%q) reported fallback", tt.problem)
		}
	}
}

func TestClassify_EmptyFallsBackToDefault(t *testing.T) {
	for _, p := range []string{"", "   ", "help me please"} {
		res := Classify(taxonomy.Default(), p)
		if res == nil {
			t.Fatalf("Classify(%q) = nil", p)
		}
		if res.Category.Name != taxonomy.DefaultName {
			t.Errorf("Classify(%q) = %q, want default", p, res.Category.Name)
		}
		if !res.Fallback {
			t.Errorf("Classify(%q) Fallback = false", p)
		}
	}
}

func TestClassify_NoCategories(t *testing.T) {
	empty, err := taxonomy.New(nil, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res := Classify(empty, "topping"); res != nil {
		t.Errorf("expected nil result, got %+v", res)
	}
	if res := Classify(nil, "topping"); res != nil {
		t.Errorf("expected nil result for nil taxonomy, got %+v", res)
	}
}

func TestClassify_TieKeepsDeclarationOrder(t *testing.T) {
	tax, err := taxonomy.New([]taxonomy.Category{
		{Name: "First", Keywords: []string{"alpha"}},
		{Name: "Second", Keywords: []string{"beta"}},
	}, "Second")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	res := Classify(tax, "alpha beta")
	if res.Category.Name != "First" {
		t.Errorf("tie went to %q, want First", res.Category.Name)
	}
}

func TestClassify_EquipmentWeighsDouble(t *testing.T) {
	tax, err := taxonomy.New([]taxonomy.Category{
		{Name: "Words", Keywords: []string{"alpha", "beta"}},
		{Name: "Gear", Keywords: []string{"zzz"}, RelatedEquipment: []string{"gamma"}},
	}, "Words")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// Words scores 2, Gear scores 2 from one equipment hit: tie keeps Words.
	if got := Classify(tax, "alpha beta gamma").Category.Name; got != "Words" {
		t.Errorf("got %q, want Words", got)
	}
	// Words scores 1, Gear scores 2.
	if got := Classify(tax, "alpha gamma").Category.Name; got != "Gear" {
		t.Errorf("got %q, want Gear", got)
	}
}

func TestClassify_UniqueKeywordsAlwaysWin(t *testing.T) {
	for _, c := range taxonomy.Default().Categories() {
		res := Classify(taxonomy.Default(), c.RelatedEquipment[0])
		if res.Category.Name != c.Name {
			t.Errorf("equipment %q classified as %q, want %q", c.RelatedEquipment[0], res.Category.Name, c.Name)
		}
	}
}

func TestDetectEquipment(t *testing.T) {
	tests := []struct {
		text string
		want string
	}{
		{"my tee shot with the 3 wood", "driver"},
		{"driver goes left", "driver"},
		{"thin with the sand wedge", "sand wedge"},
		{"chunking my pitching wedge", "wedge"},
		{"long irons are hard", "iron"},
		{"three putting", ""},
		{"my putter feels heavy", "putter"},
	}
	for _, tt := range tests {
		if got := DetectEquipment(tt.text); got != tt.want {
			t.Errorf("DetectEquipment(%q) = %q, want %q", tt.text, got, tt.want)
		}
	}
}

func TestConditions(t *testing.T) {
	tests := []struct {
		text string
		want []Condition
	}{
		{"i'm topping my irons", []Condition{ConditionTopping}},
		{"i stop at the top", []Condition{ConditionTopping}},
		{"hitting it thin", nil},
		{"i need to stop swaying", nil},
		{"hitting it fat and slicing", []Condition{ConditionChunking, ConditionSlicing}},
		{"pushing it right", []Condition{ConditionSlicing}},
		{"big hook", []Condition{ConditionHooking}},
	}
	for _, tt := range tests {
		if got := Conditions(tt.text); !slices.Equal(got, tt.want) {
			t.Errorf("Conditions(%q) = %v, want %v", tt.text, got, tt.want)
		}
	}
}

func TestWords(t *testing.T) {
	got := Words("I'm TOPPING my iron shots, really badly!")
	want := []string{"topping", "iron", "shots", "badly"}
	if !slices.Equal(got, want) {
		t.Errorf("Words = %v, want %v", got, want)
	}
}

func TestExtractTerms_Topping(t *testing.T) {
	cat, _ := taxonomy.Default().Get(taxonomy.BallStriking)
	terms := ExtractTerms("I'm topping my iron shots", cat)

	for _, want := range []string{"contact", "impact", "iron", "topping", "ball", "shots"} {
		if !slices.Contains(terms, want) {
			t.Errorf("terms %v missing %q", terms, want)
		}
	}
	if !slices.IsSorted(terms) {
		t.Errorf("terms not sorted: %v", terms)
	}
	seen := make(map[string]bool)
	for _, term := range terms {
		if seen[term] {
			t.Errorf("duplicate term %q", term)
		}
		seen[term] = true
	}
}

func TestExtractTerms_Conditions(t *testing.T) {
	cat, _ := taxonomy.Default().Get(taxonomy.DrivingAccuracy)
	terms := ExtractTerms("chunk it fat then slice and hook", cat)
	for _, want := range []string{"chunking", "fat", "slice", "hook", "driver"} {
		if !slices.Contains(terms, want) {
			t.Errorf("terms %v missing %q", terms, want)
		}
	}
}

func TestExtractTerms_EmptyProblem(t *testing.T) {
	cat, _ := taxonomy.Default().Get(taxonomy.Putting)
	terms := ExtractTerms("", cat)
	if len(terms) != len(cat.SearchTerms) {
		t.Errorf("got %d terms, want %d category terms", len(terms), len(cat.SearchTerms))
	}
}
