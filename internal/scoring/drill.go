package scoring

import (
	"sort"
	"strings"

	"github.com/abhisek/swingplan/internal/catalog"
	"github.com/abhisek/swingplan/internal/classify"
	"github.com/abhisek/swingplan/internal/taxonomy"
)

// Drill signal weights. Signals are additive and the sum is clamped to [0,1].
const (
	DrillKeywordWeight    = 0.2
	DrillConditionWeight  = 0.5
	DrillEquipmentWeight  = 0.25
	DrillFundamentalBonus = 0.15
	DrillTermWeight       = 0.1

	// DrillMinTermLen is the length a search term must exceed to count.
	DrillMinTermLen = 2

	// PoolThreshold is the score a drill must exceed to enter the ranked pool.
	PoolThreshold = 0.2
)

// FundamentalTerms flag a drill as foundational practice.
var FundamentalTerms = []string{"fundamental", "basic", "foundation"}

// ScoredDrill pairs a catalog drill with its relevance score.
type ScoredDrill struct {
	Drill catalog.Drill
	Score float64
}

// conditionBlock rewards drills that correct a named fault and penalises
// drills that would reinforce it or are off-topic for it.
type conditionBlock struct {
	condition       classify.Condition
	corrective      []string
	contraindicated []string
}

var conditionBlocks = []conditionBlock{
	{
		condition: classify.ConditionTopping,
		corrective: []string{"weight transfer", "weight shift", "impact position", "ball position",
			"compression", "divot", "ball first", "low point", "impact"},
		contraindicated: []string{"downhill", "bunker", "rough", "flop", "pitch"},
	},
	{
		condition:       classify.ConditionChunking,
		corrective:      []string{"low point", "weight forward", "ball first", "divot", "weight transfer", "impact"},
		contraindicated: []string{"bunker", "sand", "flop", "putt"},
	},
	{
		condition:       classify.ConditionSlicing,
		corrective:      []string{"path", "clubface", "face angle", "inside", "release", "grip", "alignment", "draw"},
		contraindicated: []string{"putt", "bunker", "chip", "fade"},
	},
	{
		condition:       classify.ConditionHooking,
		corrective:      []string{"path", "clubface", "grip", "release", "fade"},
		contraindicated: []string{"draw", "putt", "bunker"},
	},
}

// ScoreDrill returns the relevance of d to q in [0,1].
func ScoreDrill(q *Query, d *catalog.Drill) float64 {
	text := d.Text()
	score := 0.0

	score += DrillKeywordWeight * float64(taxonomy.CountContains(text, q.Category.Keywords))

	for _, b := range conditionBlocks {
		if !q.HasCondition(b.condition) {
			continue
		}
		if taxonomy.ContainsAny(text, b.corrective) {
			score += DrillConditionWeight
		}
		if taxonomy.ContainsAny(text, b.contraindicated) {
			score -= DrillConditionWeight
		}
	}

	score += DrillEquipmentWeight * float64(taxonomy.CountContains(text, q.Category.RelatedEquipment))

	if taxonomy.ContainsAny(text, FundamentalTerms) {
		score += DrillFundamentalBonus
	}

	for _, term := range q.Terms {
		if len(term) > DrillMinTermLen && strings.Contains(text, term) {
			score += DrillTermWeight
		}
	}

	return clamp01(score)
}

// ScoreDrills scores every drill, keeping catalog order. Drills are copied
// into the result; the input slice is not modified.
func ScoreDrills(q *Query, drills []catalog.Drill) []ScoredDrill {
	out := make([]ScoredDrill, len(drills))
	for i := range drills {
		out[i] = ScoredDrill{Drill: drills[i], Score: ScoreDrill(q, &drills[i])}
	}
	return out
}

// RankDrills returns the drills scoring above PoolThreshold, best first.
// Equal scores keep catalog order.
func RankDrills(scored []ScoredDrill) []ScoredDrill {
	var ranked []ScoredDrill
	for _, s := range scored {
		if s.Score > PoolThreshold {
			ranked = append(ranked, s)
		}
	}
	SortByScore(ranked)
	return ranked
}

// SortByScore orders drills by descending score, stable on ties.
func SortByScore(drills []ScoredDrill) {
	sort.SliceStable(drills, func(i, j int) bool {
		return drills[i].Score > drills[j].Score
	})
}

// IsFundamental reports whether a drill title marks it as basic practice.
func IsFundamental(title string) bool {
	t := strings.ToLower(title)
	return strings.Contains(t, "basic") || strings.Contains(t, "fundamental")
}
