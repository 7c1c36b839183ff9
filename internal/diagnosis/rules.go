package diagnosis

import (
	"strings"

	"github.com/abhisek/swingplan/internal/classify"
	"github.com/abhisek/swingplan/internal/taxonomy"
)

// Rule selects a template when it recognises a lower-cased problem text.
type Rule interface {
	Name() string
	TemplateID() string
	Matches(text string) bool
}

// ConditionRule matches a named ball-flight or contact fault.
type ConditionRule struct {
	Condition classify.Condition
	Template  string
}

func (r *ConditionRule) Name() string       { return string(r.Condition) }
func (r *ConditionRule) TemplateID() string { return r.Template }

func (r *ConditionRule) Matches(text string) bool {
	return classify.HasCondition(text, r.Condition)
}

// TermRule matches when any of its terms appears in the text.
type TermRule struct {
	RuleName string
	Terms    []string
	Template string
}

func (r *TermRule) Name() string       { return r.RuleName }
func (r *TermRule) TemplateID() string { return r.Template }

func (r *TermRule) Matches(text string) bool {
	return taxonomy.ContainsAny(text, r.Terms)
}

// DefaultRules returns the rules in priority order: specific faults first,
// then area-of-game rules.
func DefaultRules() []Rule {
	return []Rule{
		&ConditionRule{Condition: classify.ConditionTopping, Template: "topping"},
		&ConditionRule{Condition: classify.ConditionChunking, Template: "chunking"},
		&ConditionRule{Condition: classify.ConditionSlicing, Template: "slicing"},
		&ConditionRule{Condition: classify.ConditionHooking, Template: "hooking"},
		&TermRule{RuleName: "putting", Terms: []string{"putt"}, Template: "putting"},
		&TermRule{
			RuleName: "short-game",
			Terms:    []string{"chip", "pitch", "short game", "around the green", "bunker", "sand"},
			Template: "short-game",
		},
		&TermRule{
			RuleName: "distance",
			Terms:    []string{"distance", "yardage", "too long", "too short", "carry"},
			Template: "distance",
		},
	}
}

// RunRules returns the first matching rule, or nil when none applies.
func RunRules(rules []Rule, problem string) Rule {
	text := strings.ToLower(problem)
	for _, r := range rules {
		if r.Matches(text) {
			return r
		}
	}
	return nil
}
