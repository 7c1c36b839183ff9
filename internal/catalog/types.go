package catalog

import "strings"

// Difficulty is the skill level a catalog item is pitched at.
type Difficulty string

const (
	DifficultyBeginner     Difficulty = "beginner"
	DifficultyIntermediate Difficulty = "intermediate"
	DifficultyAdvanced     Difficulty = "advanced"
	DifficultyExpert       Difficulty = "expert"
)

// MaxDrillInstructions and MaxChallengeInstructions mirror the instruction
// columns of the hosted catalog tables.
const (
	MaxDrillInstructions     = 5
	MaxDrillMistakes         = 5
	MaxChallengeInstructions = 3
)

// Drill is an instructional exercise from the drill catalog. Drills are
// read-only to the engine.
type Drill struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Overview string `json:"overview,omitempty"`

	// Category is a free label set by catalog authors; it need not match a
	// taxonomy category.
	Category      string     `json:"category,omitempty"`
	Focus         []string   `json:"focus,omitempty"`
	Difficulty    Difficulty `json:"difficulty,omitempty"`
	DurationLabel string     `json:"duration,omitempty"`
	VideoRef      string     `json:"video_ref,omitempty"`

	// Instructions holds up to MaxDrillInstructions non-empty steps.
	Instructions []string `json:"instructions,omitempty"`

	// CommonMistakes holds up to MaxDrillMistakes non-empty entries.
	CommonMistakes []string `json:"common_mistakes,omitempty"`

	ProTip string `json:"pro_tip,omitempty"`
}

// Text returns the lower-cased text the scorers match against: title,
// overview, category label and focus tags.
func (d *Drill) Text() string {
	parts := make([]string, 0, 3+len(d.Focus))
	parts = append(parts, d.Title, d.Overview, d.Category)
	parts = append(parts, d.Focus...)
	return strings.ToLower(strings.Join(parts, " "))
}

// Challenge is a measurable self-test from the challenge catalog.
type Challenge struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	Difficulty  Difficulty `json:"difficulty,omitempty"`
	Category    string     `json:"category,omitempty"`
	Metric      string     `json:"metric,omitempty"`
	Metrics     []string   `json:"metrics,omitempty"`

	// Instructions holds up to MaxChallengeInstructions non-empty steps.
	Instructions []string `json:"instructions,omitempty"`

	// Attempts is the number of tries the challenge prescribes; zero means
	// unset, see EffectiveAttempts.
	Attempts int `json:"attempts"`
}

// MinDerivedAttempts is the floor applied when attempts are derived.
const MinDerivedAttempts = 9

// AttemptsPerInstruction is how many attempts each instruction step adds.
const AttemptsPerInstruction = 3

// EffectiveAttempts returns Attempts when set, otherwise three attempts per
// non-empty instruction with a floor of MinDerivedAttempts.
func (c *Challenge) EffectiveAttempts() int {
	if c.Attempts > 0 {
		return c.Attempts
	}
	n := 0
	for _, in := range c.Instructions {
		if strings.TrimSpace(in) != "" {
			n++
		}
	}
	return max(MinDerivedAttempts, n*AttemptsPerInstruction)
}

// Text returns the lower-cased text the challenge scorer matches against:
// title, description, category, metric, metrics and every instruction.
func (c *Challenge) Text() string {
	parts := make([]string, 0, 4+len(c.Metrics)+len(c.Instructions))
	parts = append(parts, c.Title, c.Description, c.Category, c.Metric)
	parts = append(parts, c.Metrics...)
	parts = append(parts, c.Instructions...)
	return strings.ToLower(strings.Join(parts, " "))
}
