package scoring

import (
	"strings"

	"github.com/abhisek/swingplan/internal/taxonomy"
)

// Strategy contributes category-specific points to a challenge score.
// text is the lower-cased challenge text.
type Strategy interface {
	Name() string
	Score(q *Query, text string) float64
}

// Strategy increments.
const (
	CoreHit       = 10.0
	SupportingHit = 5.0
	MinorHit      = 3.0
	UnrelatedHit  = -8.0

	// ContactCoreHit is the core increment for ball-striking challenges.
	ContactCoreHit = 8.0
)

// termStrategy awards fixed increments for each tier of vocabulary present
// and a penalty when unrelated vocabulary appears.
type termStrategy struct {
	name       string
	core       []string
	coreHit    float64
	supporting []string
	minor      []string
	unrelated  []string
}

func (s *termStrategy) Name() string { return s.name }

func (s *termStrategy) Score(_ *Query, text string) float64 {
	score := 0.0
	if taxonomy.ContainsAny(text, s.core) {
		score += s.coreHit
	}
	if taxonomy.ContainsAny(text, s.supporting) {
		score += SupportingHit
	}
	if taxonomy.ContainsAny(text, s.minor) {
		score += MinorHit
	}
	if taxonomy.ContainsAny(text, s.unrelated) {
		score += UnrelatedHit
	}
	return score
}

var (
	bunkerStrategy = &termStrategy{
		name:       "bunker",
		core:       []string{"bunker", "sand"},
		coreHit:    CoreHit,
		supporting: []string{"splash", "explode", "explosion"},
		minor:      []string{"open face", "bounce"},
		unrelated:  []string{"putt", "driver"},
	}
	puttingStrategy = &termStrategy{
		name:       "putting",
		core:       []string{"putt"},
		coreHit:    CoreHit,
		supporting: []string{"green", "hole", "cup"},
		minor:      []string{"lag", "stroke", "line", "speed", "read"},
		unrelated:  []string{"bunker", "sand", "driver", "tee shot"},
	}
	contactStrategy = &termStrategy{
		name:       "contact",
		core:       []string{"contact", "strike", "impact"},
		coreHit:    ContactCoreHit,
		supporting: []string{"divot", "ball first", "compress"},
		minor:      []string{"iron"},
		unrelated:  []string{"putt"},
	}
)

// genericStrategy adds nothing beyond the keyword pass.
type genericStrategy struct{}

func (genericStrategy) Name() string                 { return "generic" }
func (genericStrategy) Score(*Query, string) float64 { return 0 }

// StrategyFor picks the category strategy for a query. Bunker problems use
// the bunker strategy whatever their category.
func StrategyFor(q *Query) Strategy {
	if q.MentionsBunker() {
		return bunkerStrategy
	}
	switch q.Category.Name {
	case taxonomy.Putting:
		return puttingStrategy
	case taxonomy.BallStriking:
		return contactStrategy
	default:
		return genericStrategy{}
	}
}

// Keyword pass increments.
const (
	WordHit         = 2.0
	CategoryNameHit = 3.0
)

// keywordScore awards WordHit per problem word found in the challenge text
// and CategoryNameHit when the category name itself appears.
func keywordScore(q *Query, text string) float64 {
	score := 0.0
	for _, w := range q.Words {
		if strings.Contains(text, w) {
			score += WordHit
		}
	}
	if q.Category.Name != "" && strings.Contains(text, strings.ToLower(string(q.Category.Name))) {
		score += CategoryNameHit
	}
	return score
}
