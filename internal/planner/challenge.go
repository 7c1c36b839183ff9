package planner

import (
	"github.com/abhisek/swingplan/internal/catalog"
	"github.com/abhisek/swingplan/internal/scoring"
	"github.com/abhisek/swingplan/internal/taxonomy"
)

// Selection is the outcome of challenge selection.
type Selection struct {
	Challenge catalog.Challenge
	Score     float64

	// Default is true when no catalog challenge scored above zero and a
	// built-in template was used instead.
	Default bool
}

// SelectChallenge picks the highest-scoring challenge. Ties go to the
// earlier challenge. With no positive score it returns the default for the
// category, or the generic default when category is nil.
func SelectChallenge(scored []scoring.ScoredChallenge, category *taxonomy.Category) Selection {
	best := -1
	for i, s := range scored {
		if s.Score <= 0 {
			continue
		}
		if best < 0 || s.Score > scored[best].Score {
			best = i
		}
	}
	if best >= 0 {
		return Selection{Challenge: scored[best].Challenge, Score: scored[best].Score}
	}

	if category == nil {
		return Selection{Challenge: GenericChallenge(), Default: true}
	}
	return Selection{Challenge: DefaultChallenge(category.Name), Default: true}
}
