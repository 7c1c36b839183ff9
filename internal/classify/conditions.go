package classify

import "strings"

// Condition is a specific ball-flight or contact fault named in a problem.
type Condition string

const (
	ConditionTopping  Condition = "topping"
	ConditionChunking Condition = "chunking"
	ConditionSlicing  Condition = "slicing"
	ConditionHooking  Condition = "hooking"
)

// HasCondition reports whether a lower-cased problem text describes c.
func HasCondition(text string, c Condition) bool {
	switch c {
	case ConditionTopping:
		return hasWordPrefix(text, "top")
	case ConditionChunking:
		return strings.Contains(text, "chunk") || strings.Contains(text, "fat")
	case ConditionSlicing:
		return strings.Contains(text, "slic") || strings.Contains(text, "push")
	case ConditionHooking:
		return strings.Contains(text, "hook")
	default:
		return false
	}
}

// Conditions returns every condition present in text, in fixed order.
func Conditions(text string) []Condition {
	var out []Condition
	for _, c := range []Condition{ConditionTopping, ConditionChunking, ConditionSlicing, ConditionHooking} {
		if HasCondition(text, c) {
			out = append(out, c)
		}
	}
	return out
}

// conditionSynonyms are extra search terms added when a condition is present.
var conditionSynonyms = map[Condition][]string{
	ConditionTopping:  {"topping", "ball"},
	ConditionChunking: {"chunking", "fat"},
	ConditionSlicing:  {"slice"},
	ConditionHooking:  {"hook"},
}

// hasWordPrefix reports whether any whitespace-separated word in text starts
// with prefix. "topped" and "tops" match "top"; "stop" does not.
func hasWordPrefix(text, prefix string) bool {
	for _, w := range strings.Fields(text) {
		if strings.HasPrefix(strings.TrimLeft(w, "\"'("), prefix) {
			return true
		}
	}
	return false
}

func containsPhrase(text, phrase string) bool {
	return strings.Contains(text, phrase)
}
