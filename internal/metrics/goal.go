package metrics

import "fmt"

// Goal compares the average score, scaled to 18 holes, with a target score.
type Goal struct {
	Target  float64 `json:"target"`
	Average float64 `json:"average"`
	Gap     float64 `json:"gap"` // positive when above target
	Rounds  int     `json:"rounds"`
}

// GoalGap returns the gap to target. ok is false without a positive target
// or usable rounds.
func GoalGap(rounds []Round, target float64) (g Goal, ok bool) {
	t := Sum(rounds)
	if target <= 0 || t.Holes == 0 {
		return Goal{}, false
	}
	avg := float64(t.Score) / float64(t.Holes) * 18
	return Goal{Target: target, Average: avg, Gap: avg - target, Rounds: t.Rounds}, true
}

// Summary renders the gap as one line.
func (g Goal) Summary() string {
	if g.Gap <= 0 {
		return fmt.Sprintf("Averaging %.1f over %d rounds, at or under your goal of %.0f.", g.Average, g.Rounds, g.Target)
	}
	return fmt.Sprintf("Averaging %.1f over %d rounds, %.1f strokes above your goal of %.0f.", g.Average, g.Rounds, g.Gap, g.Target)
}
