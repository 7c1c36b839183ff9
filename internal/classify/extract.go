package classify

import (
	"sort"
	"strings"
	"unicode"

	"github.com/abhisek/swingplan/internal/taxonomy"
)

// MinWordLen is the length a problem word must exceed to become a search term.
const MinWordLen = 3

// stopWords are common words that carry no matching signal.
var stopWords = map[string]bool{
	"about": true, "after": true, "again": true, "always": true, "because": true,
	"been": true, "being": true, "cant": true, "could": true, "does": true,
	"doing": true, "dont": true, "every": true, "from": true, "getting": true,
	"have": true, "into": true, "just": true, "keep": true, "like": true,
	"make": true, "more": true, "most": true, "much": true, "really": true,
	"seem": true, "seems": true, "some": true, "than": true, "that": true,
	"their": true, "them": true, "then": true, "there": true, "they": true,
	"this": true, "trying": true, "very": true, "want": true, "what": true,
	"when": true, "where": true, "which": true, "while": true, "will": true,
	"with": true, "would": true, "your": true,
}

// Words returns the lower-cased problem words longer than MinWordLen,
// stripped of non-letters, with stop words removed. Order follows the text
// and duplicates are kept.
func Words(problem string) []string {
	var out []string
	for _, raw := range strings.Fields(strings.ToLower(problem)) {
		w := strings.Map(func(r rune) rune {
			if unicode.IsLetter(r) {
				return r
			}
			return -1
		}, raw)
		if len(w) <= MinWordLen || stopWords[w] {
			continue
		}
		out = append(out, w)
	}
	return out
}

// ExtractTerms builds the search vocabulary for a problem and its category:
// the category's search terms, any explicitly named equipment, condition
// synonyms and the significant problem words. The result is deduplicated
// and sorted.
func ExtractTerms(problem string, category taxonomy.Category) []string {
	text := strings.ToLower(problem)
	set := make(map[string]struct{})
	add := func(terms ...string) {
		for _, t := range terms {
			if t = strings.TrimSpace(t); t != "" {
				set[t] = struct{}{}
			}
		}
	}

	add(category.SearchTerms...)
	add(DetectEquipment(text))
	for _, c := range Conditions(text) {
		add(conditionSynonyms[c]...)
	}
	add(Words(problem)...)

	terms := make([]string, 0, len(set))
	for t := range set {
		terms = append(terms, t)
	}
	sort.Strings(terms)
	return terms
}
