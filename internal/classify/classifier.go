package classify

import (
	"strings"

	"github.com/abhisek/swingplan/internal/taxonomy"
)

// EquipmentWeight is how much one equipment hit counts relative to a keyword hit.
const EquipmentWeight = 2

// Result is the outcome of classifying a problem description.
type Result struct {
	Category taxonomy.Category
	Score    int  // keyword hits + EquipmentWeight * equipment hits
	Fallback bool // true when no category matched and the default was used
}

// Classify maps a free-text problem to the best-matching category of tax.
// Ties keep the earlier category in declaration order. When nothing matches
// (or problem is empty) the taxonomy default is returned with Fallback set.
// Returns nil only when tax has no categories.
func Classify(tax *taxonomy.Taxonomy, problem string) *Result {
	if tax == nil || tax.Len() == 0 {
		return nil
	}

	text := strings.ToLower(strings.TrimSpace(problem))

	var best *taxonomy.Category
	bestScore := 0
	if text != "" {
		cats := tax.Categories()
		for i := range cats {
			score := CategoryScore(cats[i], text)
			if score > bestScore {
				bestScore = score
				best = &cats[i]
			}
		}
	}

	if best == nil {
		def, _ := tax.DefaultCategory()
		return &Result{Category: def, Fallback: true}
	}
	return &Result{Category: *best, Score: bestScore}
}

// CategoryScore counts how strongly a lower-cased text points at category c.
func CategoryScore(c taxonomy.Category, text string) int {
	return taxonomy.CountContains(text, c.Keywords) +
		EquipmentWeight*taxonomy.CountContains(text, c.RelatedEquipment)
}
