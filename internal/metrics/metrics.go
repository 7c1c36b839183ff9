// Package metrics estimates five 0–100 skill scores from round aggregates.
package metrics

import (
	"math"
	"math/rand/v2"
	"strings"
)

// Round is one played round's totals.
type Round struct {
	TotalScore         int `json:"total_score"`
	TotalPutts         int `json:"total_putts"`
	FairwaysHit        int `json:"fairways_hit"`
	GreensInRegulation int `json:"greens_in_regulation"`
	HoleCount          int `json:"hole_count"`
}

// Performance holds the estimated skill scores.
type Performance struct {
	Driving  float64 `json:"driving"`
	IronPlay float64 `json:"iron_play"`
	Chipping float64 `json:"chipping"`
	Bunker   float64 `json:"bunker"`
	Putting  float64 `json:"putting"`

	// IsPlaceholder is true when no round data backed the estimate.
	IsPlaceholder bool `json:"is_placeholder"`
}

// Score bounds.
const (
	MinScore = 20.0
	MaxScore = 95.0
)

// Course assumptions used when a round carries only totals.
const (
	// FairwaysPer18 is the number of driving holes on a typical 18.
	FairwaysPer18 = 14
	ParPerHole    = 4
)

// placeholder is returned when there is no usable round data.
var placeholder = Performance{
	Driving:       60,
	IronPlay:      45,
	Chipping:      70,
	Bunker:        40,
	Putting:       65,
	IsPlaceholder: true,
}

// Placeholder returns the fixed estimate used when there is no usable round
// data. Each call returns a fresh value.
func Placeholder() Performance {
	return placeholder
}

// BunkerJitter bounds the random perturbation applied to the bunker score.
const BunkerJitter = 10.0

// DefaultBunkerBase is the bunker base for unknown skill levels.
const DefaultBunkerBase = 50.0

var bunkerBase = map[string]float64{
	"beginner":     30,
	"intermediate": 50,
	"advanced":     70,
	"expert":       80,
	"pro":          90,
}

// Totals is the sum of the usable rounds.
type Totals struct {
	Rounds   int
	Score    int
	Putts    int
	Fairways int
	GIR      int
	Holes    int
}

// Sum totals every round with a positive hole count.
func Sum(rounds []Round) Totals {
	var t Totals
	for _, r := range rounds {
		if r.HoleCount <= 0 {
			continue
		}
		t.Rounds++
		t.Score += r.TotalScore
		t.Putts += r.TotalPutts
		t.Fairways += r.FairwaysHit
		t.GIR += r.GreensInRegulation
		t.Holes += r.HoleCount
	}
	return t
}

// Estimate derives a Performance from rounds. rng drives the bunker
// perturbation; a nil rng leaves the bunker score at its base.
func Estimate(rounds []Round, skillLevel string, rng *rand.Rand) Performance {
	t := Sum(rounds)
	if t.Holes == 0 {
		return Placeholder()
	}

	return Performance{
		Driving:  Driving(t),
		IronPlay: IronPlay(t),
		Chipping: Chipping(t),
		Bunker:   Bunker(skillLevel, rng),
		Putting:  Putting(float64(t.Putts) / float64(t.Holes)),
	}
}

// Driving maps fairway-hit percentage to 40 + pct × 1.1.
func Driving(t Totals) float64 {
	opportunities := float64(t.Holes) * FairwaysPer18 / 18
	if opportunities <= 0 {
		return MinScore
	}
	pct := float64(t.Fairways) / opportunities * 100
	return clamp(40 + pct*1.1)
}

// IronPlay maps greens-in-regulation percentage to 20 + pct × 0.75.
func IronPlay(t Totals) float64 {
	pct := float64(t.GIR) / float64(t.Holes) * 100
	return clamp(20 + pct*0.75)
}

// Chipping rates strokes over par per missed green: 100 − efficiency × 30.
// With no missed greens it returns 85.
func Chipping(t Totals) float64 {
	missed := t.Holes - t.GIR
	if missed <= 0 {
		return 85
	}
	overPar := float64(t.Score - t.Holes*ParPerHole)
	return clamp(100 - overPar/float64(missed)*30)
}

// Bunker returns the skill-level base score shifted by up to ±BunkerJitter.
func Bunker(skillLevel string, rng *rand.Rand) float64 {
	base, ok := bunkerBase[strings.ToLower(strings.TrimSpace(skillLevel))]
	if !ok {
		base = DefaultBunkerBase
	}
	if rng != nil {
		base += rng.Float64()*2*BunkerJitter - BunkerJitter
	}
	return clamp(base)
}

// Putting maps putts per hole through a piecewise-linear table.
func Putting(perHole float64) float64 {
	var v float64
	switch {
	case perHole <= 1.5:
		v = 95
	case perHole <= 1.8:
		v = 80 - (perHole-1.5)*50
	case perHole <= 2.0:
		v = 65 - (perHole-1.8)*75
	case perHole <= 2.2:
		v = 50 - (perHole-2.0)*75
	case perHole <= 2.5:
		v = 35 - (perHole-2.2)*50
	default:
		v = MinScore
	}
	return clamp(v)
}

func clamp(v float64) float64 {
	return math.Max(MinScore, math.Min(MaxScore, v))
}
