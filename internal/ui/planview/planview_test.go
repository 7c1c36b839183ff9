package planview

import (
	"strings"
	"testing"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/swingplan/internal/catalog"
	"github.com/abhisek/swingplan/internal/metrics"
	"github.com/abhisek/swingplan/internal/planner"
	"github.com/abhisek/swingplan/internal/practice"
	"github.com/abhisek/swingplan/internal/ui/theme"
)

func testPlan() *practice.GeneratedPlan {
	drill := catalog.Drill{ID: "d1", Title: "Impact Bag", ProTip: "Lead with the hands."}
	return &practice.GeneratedPlan{
		Problem:    "topping the ball",
		Category:   "Ball Striking",
		Diagnosis:  "Topped shots come from a rising low point.",
		RootCauses: []string{"Early extension", "Ball too far forward", "Standing up"},
		Days: []planner.Day{
			{Day: 1, Focus: "Day 1: Impact", DurationLabel: "15 minutes", Drills: []planner.PlannedDrill{{Drill: drill, Sets: 3, Reps: 10}}},
			{Day: 2, Focus: "Day 2: General Practice", DurationLabel: "30 minutes", Drills: []planner.PlannedDrill{}},
		},
		SelectedChallenge: catalog.Challenge{
			ID:           "c1",
			Title:        "Strike Ladder",
			Instructions: []string{"Hit five shots", "Track contact"},
		},
		DefaultChallenge:   true,
		PerformanceMetrics: metrics.Placeholder(),
		Goal:               "Averaging 92.0 over 3 rounds, 7.0 strokes above your goal of 85.",
	}
}

func TestRender_Sections(t *testing.T) {
	out := Render(testPlan(), 100)

	for _, want := range []string{
		"Practice plan: topping the ball",
		"Ball Striking · 2 days",
		"Diagnosis",
		"Early extension",
		"Day 1: Impact",
		"15 minutes",
		"1. Impact Bag",
		"3 × 10",
		"Day 2: General Practice",
		"Free practice",
		"Strike Ladder",
		"9 attempts",
		"(standard)",
		"2. Track contact",
		"Performance",
		"typical values",
		"Iron play",
		"strokes above your goal",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q", want)
		}
	}
}

func TestRender_Uncategorized(t *testing.T) {
	plan := testPlan()
	plan.Category = ""
	plan.ID = "abc-123"
	plan.Goal = ""
	plan.DefaultChallenge = false

	out := Render(plan, 0)
	if !strings.Contains(out, "Uncategorized") {
		t.Error("expected Uncategorized label")
	}
	if !strings.Contains(out, "abc-123") {
		t.Error("expected plan ID in header")
	}
	if strings.Contains(out, "(standard)") {
		t.Error("selected challenge should not be marked standard")
	}
}

func TestMeter_Width(t *testing.T) {
	tests := []struct {
		value int
	}{
		{0}, {50}, {100}, {140}, {-5},
	}
	for _, tt := range tests {
		m := Meter{Label: "Putting", Value: tt.value, LabelWidth: 9, Width: 30}
		if got := lipgloss.Width(m.View()); got != 30 {
			t.Errorf("Meter(%d) width = %d, want 30", tt.value, got)
		}
	}
}

func TestBand(t *testing.T) {
	tests := []struct {
		value int
		want  lipgloss.Style
	}{
		{95, theme.Good},
		{70, theme.Good},
		{69, theme.Warn},
		{45, theme.Warn},
		{44, theme.Bad},
	}
	for _, tt := range tests {
		if got := band(tt.value).Render("x"); got != tt.want.Render("x") {
			t.Errorf("band(%d) rendered %q, want %q", tt.value, got, tt.want.Render("x"))
		}
	}
}
