// Package planner distributes ranked drills across practice days and picks
// the challenge that closes the plan.
package planner

import "github.com/abhisek/swingplan/internal/catalog"

// Prescription and sizing defaults.
const (
	DefaultSets = 3
	DefaultReps = 10

	// MaxPool bounds the working pool taken from the top of the ranking.
	MaxPool = 8

	// MaxDrillsPerDay caps the rotating window for one day.
	MaxDrillsPerDay = 3

	// MinDrillsPerDay is the size backfill aims for.
	MinDrillsPerDay = 2

	// DefaultDuration labels a day whose drills carry no minute counts.
	DefaultDuration = "30 minutes"

	// GeneralPractice is the focus of days planned from an empty catalog.
	GeneralPractice = "General Practice"
)

// PlannedDrill is one drill prescription within a day.
type PlannedDrill struct {
	Drill catalog.Drill `json:"drill"`
	Sets  int           `json:"sets"`
	Reps  int           `json:"reps"`
}

// Day is one day of a practice plan. Day numbers start at 1.
type Day struct {
	Day           int            `json:"day"`
	Focus         string         `json:"focus"`
	DurationLabel string         `json:"duration"`
	Drills        []PlannedDrill `json:"drills"`
}
