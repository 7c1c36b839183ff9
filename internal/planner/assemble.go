package planner

import (
	"fmt"
	"sort"
	"strings"

	"github.com/abhisek/swingplan/internal/scoring"
	"github.com/abhisek/swingplan/internal/taxonomy"
)

// Input carries everything the assembler needs for one plan.
type Input struct {
	// Ranked holds the drills above the pool threshold, best first.
	Ranked []scoring.ScoredDrill

	// Catalog holds every scored drill in catalog order. It backs the
	// last-resort fallback and backfill.
	Catalog []scoring.ScoredDrill

	Days     int
	Category taxonomy.Category
}

// AssembleDays builds Days days of practice. Days below 1 yield no days;
// callers validate duration before calling.
func AssembleDays(in Input) []Day {
	if in.Days < 1 {
		return nil
	}

	reserve := fallbackOrder(Candidates(in.Catalog))
	candidates := Candidates(in.Ranked)
	if len(candidates) == 0 {
		// Nothing cleared the threshold; plan from the whole catalog rather
		// than leaving days empty.
		candidates = reserve
	}

	// Never fabricate drills.
	if len(candidates) == 0 {
		return generalPracticeDays(in.Days)
	}

	pool := candidates[:min(MaxPool, len(candidates))]
	selections := rotate(pool, in.Days)

	// Top up short days from the pool, then from the catalog.
	supply := mergeSupply(pool, reserve)
	for i := range selections {
		selections[i] = backfill(selections[i], supply)
	}

	if in.Days >= 2 && len(supply) >= 2 {
		repairVariety(selections, supply)
	}

	days := make([]Day, in.Days)
	for i, sel := range selections {
		drills := make([]PlannedDrill, 0, len(sel))
		for _, s := range sel {
			drills = append(drills, PlannedDrill{Drill: s.Drill, Sets: DefaultSets, Reps: DefaultReps})
		}
		days[i] = Day{
			Day:           i + 1,
			Focus:         dayFocus(i+1, drills, in.Category),
			DurationLabel: durationLabel(drills),
			Drills:        drills,
		}
	}
	return days
}

// Candidates deduplicates drills by case-insensitive title, keeping the
// first occurrence, and drops anything titled as a challenge.
func Candidates(scored []scoring.ScoredDrill) []scoring.ScoredDrill {
	seen := make(map[string]bool, len(scored))
	var out []scoring.ScoredDrill
	for _, s := range scored {
		key := drillKey(s)
		if key == "" || seen[key] || strings.Contains(key, "challenge") {
			continue
		}
		seen[key] = true
		out = append(out, s)
	}
	return out
}

// rotate assigns each day a rotating window over the pool plus one variety
// drill from the back of the pool.
func rotate(pool []scoring.ScoredDrill, days int) [][]scoring.ScoredDrill {
	p := len(pool)
	perDay := min(MaxDrillsPerDay, (p+days-1)/days)

	out := make([][]scoring.ScoredDrill, days)
	for i := range days {
		var sel []scoring.ScoredDrill
		start := (i * perDay) % p
		for k := range perDay {
			sel = appendUnique(sel, pool[(start+k)%p])
		}
		variety := ((p-1-i)%p + p) % p
		sel = appendUnique(sel, pool[variety])
		out[i] = sel
	}
	return out
}

// backfill adds drills from supply until the day holds MinDrillsPerDay or
// supply runs out.
func backfill(day []scoring.ScoredDrill, supply []scoring.ScoredDrill) []scoring.ScoredDrill {
	for _, s := range supply {
		if len(day) >= MinDrillsPerDay {
			break
		}
		day = appendUnique(day, s)
	}
	return day
}

// fallbackOrder puts basic and fundamental drills first, then the rest by
// descending score. Ties keep catalog order.
func fallbackOrder(drills []scoring.ScoredDrill) []scoring.ScoredDrill {
	out := append([]scoring.ScoredDrill(nil), drills...)
	sort.SliceStable(out, func(i, j int) bool {
		fi, fj := scoring.IsFundamental(out[i].Drill.Title), scoring.IsFundamental(out[j].Drill.Title)
		if fi != fj {
			return fi
		}
		return out[i].Score > out[j].Score
	})
	return out
}

// mergeSupply returns the pool followed by reserve drills not in the pool.
func mergeSupply(pool, reserve []scoring.ScoredDrill) []scoring.ScoredDrill {
	out := append([]scoring.ScoredDrill(nil), pool...)
	for _, s := range reserve {
		out = appendUnique(out, s)
	}
	return out
}

func generalPracticeDays(n int) []Day {
	days := make([]Day, n)
	for i := range days {
		days[i] = Day{
			Day:           i + 1,
			Focus:         fmt.Sprintf("Day %d: %s", i+1, GeneralPractice),
			DurationLabel: DefaultDuration,
			Drills:        []PlannedDrill{},
		}
	}
	return days
}

func drillKey(s scoring.ScoredDrill) string {
	return strings.ToLower(strings.TrimSpace(s.Drill.Title))
}

func indexOf(day []scoring.ScoredDrill, key string) int {
	for i, s := range day {
		if drillKey(s) == key {
			return i
		}
	}
	return -1
}

func appendUnique(day []scoring.ScoredDrill, s scoring.ScoredDrill) []scoring.ScoredDrill {
	if indexOf(day, drillKey(s)) >= 0 {
		return day
	}
	return append(day, s)
}
