package diagnosis

import (
	"slices"

	"github.com/abhisek/swingplan/internal/taxonomy"
)

// registry is the package-level template registry, keyed by ID.
var registry map[string]*Template

func init() {
	registry = make(map[string]*Template, len(seedTemplates))
	for i := range seedTemplates {
		t := &seedTemplates[i]
		registry[t.ID] = t
	}
}

// GetTemplate returns a copy of the template with id, or false if unknown.
func GetTemplate(id string) (Template, bool) {
	t, ok := registry[id]
	if !ok {
		return Template{}, false
	}
	return clone(*t), true
}

// Diagnoser picks a template for a problem using its rules in order.
type Diagnoser struct {
	rules []Rule
}

// New creates a Diagnoser with DefaultRules.
func New() *Diagnoser {
	return &Diagnoser{rules: DefaultRules()}
}

// Diagnose returns the diagnosis for problem. When no rule matches it falls
// back to the category paragraph, then to the generic paragraph when
// category is nil or has no paragraph.
func (d *Diagnoser) Diagnose(problem string, category *taxonomy.Category) Result {
	if r := RunRules(d.rules, problem); r != nil {
		if t, ok := GetTemplate(r.TemplateID()); ok {
			return result(t, r.Name())
		}
	}

	if category != nil {
		if t, ok := seedCategoryTemplates[category.Name]; ok {
			return result(clone(t), "category")
		}
	}
	return result(clone(seedGenericTemplate), "generic")
}

func result(t Template, rule string) Result {
	return Result{
		TemplateID: t.ID,
		Diagnosis:  t.Diagnosis,
		RootCauses: t.RootCauses,
		RuleName:   rule,
	}
}

func clone(t Template) Template {
	t.RootCauses = slices.Clone(t.RootCauses)
	return t
}
