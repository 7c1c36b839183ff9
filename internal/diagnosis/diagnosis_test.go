package diagnosis

import (
	"testing"

	"github.com/abhisek/swingplan/internal/taxonomy"
)

func TestDiagnose_PriorityOrder(t *testing.T) {
	tests := []struct {
		problem string
		want    string
	}{
		{"I'm topping my iron shots", "topping"},
		{"topping it and hitting it fat", "topping"},
		{"hitting it fat", "chunking"},
		{"fat shots and a slice", "chunking"},
		{"big slice with the driver", "slicing"},
		{"pushing everything right", "slicing"},
		{"duck hook off the tee", "hooking"},
		{"three putting too much", "putting"},
		{"can't get my chips close", "short-game"},
		{"stuck in the bunker", "short-game"},
		{"my yardage is always off", "distance"},
	}
	d := New()
	for _, tt := range tests {
		got := d.Diagnose(tt.problem, nil)
		if got.TemplateID != tt.want {
			t.Errorf("Diagnose(%q) = %q, want %q", tt.problem, got.TemplateID, tt.want)
		}
	}
}

func TestDiagnose_CategoryFallback(t *testing.T) {
	cat, _ := taxonomy.Default().Get(taxonomy.DrivingAccuracy)
	got := New().Diagnose("my tee game is bad", &cat)
	if got.TemplateID != "category-driving-accuracy" || got.RuleName != "category" {
		t.Errorf("got %q via %q, want category-driving-accuracy via category", got.TemplateID, got.RuleName)
	}
}

func TestDiagnose_GenericFallback(t *testing.T) {
	got := New().Diagnose("", nil)
	if got.TemplateID != "generic" || got.RuleName != "generic" {
		t.Errorf("got %q via %q, want generic", got.TemplateID, got.RuleName)
	}

	unknown := taxonomy.Category{Name: "Mental Game"}
	if got := New().Diagnose("nerves", &unknown); got.TemplateID != "generic" {
		t.Errorf("unknown category got %q, want generic", got.TemplateID)
	}
}

func TestDiagnose_Deterministic(t *testing.T) {
	d := New()
	a := d.Diagnose("slicing my driver", nil)
	b := d.Diagnose("slicing my driver", nil)
	if a.Diagnosis != b.Diagnosis || len(a.RootCauses) != len(b.RootCauses) {
		t.Error("same input produced different diagnoses")
	}
}

func TestTemplates_RootCauseCounts(t *testing.T) {
	check := func(tpl Template) {
		if n := len(tpl.RootCauses); n < 3 || n > 5 {
			t.Errorf("template %q has %d root causes, want 3-5", tpl.ID, n)
		}
		if tpl.Diagnosis == "" {
			t.Errorf("template %q has empty diagnosis", tpl.ID)
		}
	}
	for _, tpl := range seedTemplates {
		check(tpl)
	}
	for _, name := range taxonomy.AllNames() {
		tpl, ok := seedCategoryTemplates[name]
		if !ok {
			t.Errorf("no category template for %q", name)
			continue
		}
		check(tpl)
	}
	check(seedGenericTemplate)
}

func TestDefaultRules_HaveTemplates(t *testing.T) {
	for _, r := range DefaultRules() {
		if _, ok := GetTemplate(r.TemplateID()); !ok {
			t.Errorf("rule %q references unknown template %q", r.Name(), r.TemplateID())
		}
	}
}

func TestDiagnose_ReturnsCopies(t *testing.T) {
	d := New()
	got := d.Diagnose("topping", nil)
	got.RootCauses[0] = "changed"
	if again := d.Diagnose("topping", nil); again.RootCauses[0] == "changed" {
		t.Error("template mutated through a result")
	}
}
