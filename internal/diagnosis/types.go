// Package diagnosis turns a golf problem into a pre-written explanation and
// a short list of likely root causes. Output is a pure table lookup.
package diagnosis

// Template is one pre-written diagnosis.
type Template struct {
	ID         string
	Diagnosis  string
	RootCauses []string // 3–5 entries
}

// Result is the diagnosis chosen for a problem.
type Result struct {
	TemplateID string   `json:"template_id"`
	Diagnosis  string   `json:"diagnosis"`
	RootCauses []string `json:"root_causes"`
	RuleName   string   `json:"rule"` // rule that matched, "category" or "generic"
}
