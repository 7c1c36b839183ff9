// Package practice is the plan-generation entry point. It wires the
// classifier, scorers, planner, diagnosis and metrics into one call.
package practice

import (
	"github.com/abhisek/swingplan/internal/catalog"
	"github.com/abhisek/swingplan/internal/metrics"
	"github.com/abhisek/swingplan/internal/planner"
	"github.com/abhisek/swingplan/internal/taxonomy"
)

// Profile carries optional golfer details.
type Profile struct {
	SkillLevel string  // beginner, intermediate, advanced, expert or pro
	ScoreGoal  float64 // target 18-hole score; 0 means unset
}

// Request is everything one plan is generated from. The engine never
// modifies the slices it is given.
type Request struct {
	Problem      string
	Rounds       []metrics.Round
	DurationDays int
	Drills       []catalog.Drill
	Challenges   []catalog.Challenge
	Profile      Profile
}

// GeneratedPlan is the engine's output.
type GeneratedPlan struct {
	// ID is assigned when the plan is saved; the engine leaves it empty.
	ID string `json:"id,omitempty"`

	Problem     string        `json:"problem"`
	Category    taxonomy.Name `json:"category,omitempty"`
	SearchTerms []string      `json:"search_terms"`

	Diagnosis  string   `json:"diagnosis"`
	RootCauses []string `json:"root_causes"`

	Days []planner.Day `json:"days"`

	SelectedChallenge catalog.Challenge `json:"selected_challenge"`
	DefaultChallenge  bool              `json:"default_challenge"`

	PerformanceMetrics metrics.Performance `json:"performance_metrics"`

	// Goal summarises the gap to Profile.ScoreGoal when both a goal and
	// rounds are present.
	Goal string `json:"goal,omitempty"`
}
