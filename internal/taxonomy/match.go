package taxonomy

import "strings"

// BunkerTerms mark text as being about sand play, whatever its category.
var BunkerTerms = []string{"bunker", "sand"}

// ContainsAny reports whether text contains any of terms as a substring.
func ContainsAny(text string, terms []string) bool {
	for _, t := range terms {
		if t != "" && strings.Contains(text, t) {
			return true
		}
	}
	return false
}

// CountContains returns how many of terms occur in text as substrings.
func CountContains(text string, terms []string) int {
	n := 0
	for _, t := range terms {
		if t != "" && strings.Contains(text, t) {
			n++
		}
	}
	return n
}

// MentionsBunker reports whether text references bunker or sand play.
func MentionsBunker(text string) bool {
	return ContainsAny(text, BunkerTerms)
}
