// Package scoring rates catalog drills and challenges against a classified
// golf problem.
package scoring

import (
	"strings"

	"github.com/abhisek/swingplan/internal/classify"
	"github.com/abhisek/swingplan/internal/taxonomy"
)

// Query is the matching context for one plan request. It is built once and
// shared read-only by the drill and challenge scorers.
type Query struct {
	// Text is the lower-cased problem description.
	Text string

	// Words are the distinct significant problem words, in text order.
	Words []string

	Category   taxonomy.Category
	Terms      []string
	Conditions []classify.Condition

	detector taxonomy.Detector
}

// NewQuery builds a Query from a problem, its classified category and the
// extracted search terms. det may be nil, in which case the challenge
// context gate lets everything through.
func NewQuery(problem string, category taxonomy.Category, terms []string, det taxonomy.Detector) *Query {
	text := strings.ToLower(problem)

	var words []string
	seen := make(map[string]bool)
	for _, w := range classify.Words(problem) {
		if !seen[w] {
			seen[w] = true
			words = append(words, w)
		}
	}

	return &Query{
		Text:       text,
		Words:      words,
		Category:   category,
		Terms:      terms,
		Conditions: classify.Conditions(text),
		detector:   det,
	}
}

// HasCondition reports whether the problem names condition c.
func (q *Query) HasCondition(c classify.Condition) bool {
	for _, have := range q.Conditions {
		if have == c {
			return true
		}
	}
	return false
}

// MentionsBunker reports whether the problem is about sand play.
func (q *Query) MentionsBunker() bool {
	return taxonomy.MentionsBunker(q.Text)
}

func clamp01(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	default:
		return v
	}
}
