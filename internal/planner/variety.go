package planner

import "github.com/abhisek/swingplan/internal/scoring"

// repairVariety rewrites days so that no drill appears on every day. An
// offending drill is swapped, latest day first, for a supply drill that the
// swap would not itself spread across every day. When no swap exists it is
// dropped from the largest day that keeps at least one other drill.
func repairVariety(days [][]scoring.ScoredDrill, supply []scoring.ScoredDrill) {
	n := len(days)
	for _, s := range supply {
		key := drillKey(s)
		if countDays(days, key) < n {
			continue
		}
		if !swapOut(days, supply, key) {
			dropOnce(days, key)
		}
	}
}

func swapOut(days [][]scoring.ScoredDrill, supply []scoring.ScoredDrill, key string) bool {
	n := len(days)
	for d := n - 1; d >= 0; d-- {
		pos := indexOf(days[d], key)
		for _, r := range supply {
			rk := drillKey(r)
			if rk == key || indexOf(days[d], rk) >= 0 {
				continue
			}
			if countDays(days, rk)+1 >= n {
				continue
			}
			days[d][pos] = r
			return true
		}
	}
	return false
}

// dropOnce removes key from the largest day holding it that keeps at least
// one other drill. Ties go to the later day.
func dropOnce(days [][]scoring.ScoredDrill, key string) {
	best := -1
	for d := len(days) - 1; d >= 0; d-- {
		if len(days[d]) < 2 || indexOf(days[d], key) < 0 {
			continue
		}
		if best < 0 || len(days[d]) > len(days[best]) {
			best = d
		}
	}
	if best < 0 {
		return
	}
	pos := indexOf(days[best], key)
	days[best] = append(days[best][:pos:pos], days[best][pos+1:]...)
}

func countDays(days [][]scoring.ScoredDrill, key string) int {
	n := 0
	for _, day := range days {
		if indexOf(day, key) >= 0 {
			n++
		}
	}
	return n
}
