package catalog

import "strings"

// DrillRecord is the on-disk shape of a drill. Instruction and mistake
// columns are flat, matching the hosted catalog tables the files are
// exported from.
type DrillRecord struct {
	ID             string   `yaml:"id" json:"id"`
	Title          string   `yaml:"title" json:"title"`
	Overview       string   `yaml:"overview,omitempty" json:"overview,omitempty"`
	Category       string   `yaml:"category,omitempty" json:"category,omitempty"`
	Focus          []string `yaml:"focus,omitempty" json:"focus,omitempty"`
	Difficulty     string   `yaml:"difficulty,omitempty" json:"difficulty,omitempty"`
	Duration       string   `yaml:"duration,omitempty" json:"duration,omitempty"`
	VideoRef       string   `yaml:"video_ref,omitempty" json:"video_ref,omitempty"`
	Instruction1   string   `yaml:"instruction1,omitempty" json:"instruction1,omitempty"`
	Instruction2   string   `yaml:"instruction2,omitempty" json:"instruction2,omitempty"`
	Instruction3   string   `yaml:"instruction3,omitempty" json:"instruction3,omitempty"`
	Instruction4   string   `yaml:"instruction4,omitempty" json:"instruction4,omitempty"`
	Instruction5   string   `yaml:"instruction5,omitempty" json:"instruction5,omitempty"`
	CommonMistake1 string   `yaml:"common_mistake1,omitempty" json:"common_mistake1,omitempty"`
	CommonMistake2 string   `yaml:"common_mistake2,omitempty" json:"common_mistake2,omitempty"`
	CommonMistake3 string   `yaml:"common_mistake3,omitempty" json:"common_mistake3,omitempty"`
	CommonMistake4 string   `yaml:"common_mistake4,omitempty" json:"common_mistake4,omitempty"`
	CommonMistake5 string   `yaml:"common_mistake5,omitempty" json:"common_mistake5,omitempty"`
	ProTip         string   `yaml:"pro_tip,omitempty" json:"pro_tip,omitempty"`
}

// ChallengeRecord is the on-disk shape of a challenge.
type ChallengeRecord struct {
	ID           string   `yaml:"id" json:"id"`
	Title        string   `yaml:"title" json:"title"`
	Description  string   `yaml:"description,omitempty" json:"description,omitempty"`
	Difficulty   string   `yaml:"difficulty,omitempty" json:"difficulty,omitempty"`
	Category     string   `yaml:"category,omitempty" json:"category,omitempty"`
	Metric       string   `yaml:"metric,omitempty" json:"metric,omitempty"`
	Metrics      []string `yaml:"metrics,omitempty" json:"metrics,omitempty"`
	Instruction1 string   `yaml:"instruction1,omitempty" json:"instruction1,omitempty"`
	Instruction2 string   `yaml:"instruction2,omitempty" json:"instruction2,omitempty"`
	Instruction3 string   `yaml:"instruction3,omitempty" json:"instruction3,omitempty"`
	Attempts     int      `yaml:"attempts,omitempty" json:"attempts,omitempty"`
}

// Drill converts the record into its engine form.
func (r *DrillRecord) Drill() Drill {
	return Drill{
		ID:            r.ID,
		Title:         strings.TrimSpace(r.Title),
		Overview:      r.Overview,
		Category:      r.Category,
		Focus:         nonEmpty(r.Focus...),
		Difficulty:    Difficulty(strings.ToLower(r.Difficulty)),
		DurationLabel: r.Duration,
		VideoRef:      r.VideoRef,
		Instructions: nonEmpty(r.Instruction1, r.Instruction2, r.Instruction3,
			r.Instruction4, r.Instruction5),
		CommonMistakes: nonEmpty(r.CommonMistake1, r.CommonMistake2, r.CommonMistake3,
			r.CommonMistake4, r.CommonMistake5),
		ProTip: r.ProTip,
	}
}

// Challenge converts the record into its engine form. Attempts are derived
// when the record leaves them unset.
func (r *ChallengeRecord) Challenge() Challenge {
	c := Challenge{
		ID:           r.ID,
		Title:        strings.TrimSpace(r.Title),
		Description:  r.Description,
		Difficulty:   Difficulty(strings.ToLower(r.Difficulty)),
		Category:     r.Category,
		Metric:       r.Metric,
		Metrics:      nonEmpty(r.Metrics...),
		Instructions: nonEmpty(r.Instruction1, r.Instruction2, r.Instruction3),
		Attempts:     r.Attempts,
	}
	c.Attempts = c.EffectiveAttempts()
	return c
}

// nonEmpty returns the trimmed, non-blank values in order.
func nonEmpty(values ...string) []string {
	var out []string
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}
