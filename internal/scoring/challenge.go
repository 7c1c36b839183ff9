package scoring

import (
	"strings"

	"github.com/abhisek/swingplan/internal/catalog"
	"github.com/abhisek/swingplan/internal/taxonomy"
)

// ScoredChallenge pairs a catalog challenge with its relevance score.
// Raw is the uncapped sum, kept for logging; Score is Raw clamped to [0,1].
type ScoredChallenge struct {
	Challenge catalog.Challenge
	Score     float64
	Raw       float64
}

// categoryBlockWeights scale the per-keyword bonus of the category block.
// Putting has the tightest vocabulary and the largest weight.
var categoryBlockWeights = map[taxonomy.Name]float64{
	taxonomy.Putting:         0.8,
	taxonomy.ShortGame:       0.6,
	taxonomy.BallStriking:    0.5,
	taxonomy.DrivingAccuracy: 0.5,
	taxonomy.DistanceControl: 0.4,
}

// Bonuses applied outside the strategies.
const (
	DefaultBlockWeight    = 0.4
	ChallengeEquipWeight  = 0.3
	TitleTermBonus        = 0.4
	MetricTermBonus       = 0.2
	InstructionHit        = 2.0
	InstructionMultiBonus = 3.0
	BunkerInstructionHit  = 4.0
	ClusterBonus          = 3.0

	// InstructionMultiMin is how many instructions must match for
	// InstructionMultiBonus.
	InstructionMultiMin = 2
)

// termCluster groups terms that describe one fault together. A challenge
// satisfies a cluster when the problem names one of its terms and the
// challenge names at least two.
type termCluster []string

var clusters = []termCluster{
	{"slice", "path", "face", "alignment"},
	{"hook", "path", "face", "grip"},
	{"putt", "line", "speed", "read"},
	{"bunker", "sand", "splash", "face"},
	{"top", "contact", "impact", "ball first"},
}

// ClusterMin is how many cluster terms a challenge must contain.
const ClusterMin = 2

// ScoreChallenge returns the raw and capped relevance of c to q.
func ScoreChallenge(q *Query, c *catalog.Challenge) (raw, capped float64) {
	text := c.Text()

	if !passesGate(q, text) {
		return 0, 0
	}

	raw += StrategyFor(q).Score(q, text)
	raw += keywordScore(q, text)
	raw += categoryBlock(q, text)
	raw += titleMetricBonus(q, c)
	raw += instructionScore(q, c)
	raw += clusterScore(q, text)

	return raw, clamp01(raw)
}

// ScoreChallenges scores every challenge, keeping catalog order.
func ScoreChallenges(q *Query, challenges []catalog.Challenge) []ScoredChallenge {
	out := make([]ScoredChallenge, len(challenges))
	for i := range challenges {
		raw, score := ScoreChallenge(q, &challenges[i])
		out[i] = ScoredChallenge{Challenge: challenges[i], Score: score, Raw: raw}
	}
	return out
}

// passesGate reports whether a challenge plausibly belongs to the problem's
// category. Sand play is often filed under other categories, so a challenge
// passes whenever both sides mention it.
func passesGate(q *Query, text string) bool {
	if q.detector == nil || q.detector.Matches(text) {
		return true
	}
	return q.MentionsBunker() && taxonomy.MentionsBunker(text)
}

func categoryBlock(q *Query, text string) float64 {
	w, ok := categoryBlockWeights[q.Category.Name]
	if !ok {
		w = DefaultBlockWeight
	}
	score := w * float64(taxonomy.CountContains(text, q.Category.Keywords))
	score += ChallengeEquipWeight * float64(taxonomy.CountContains(text, q.Category.RelatedEquipment))
	return score
}

func titleMetricBonus(q *Query, c *catalog.Challenge) float64 {
	score := 0.0
	if taxonomy.ContainsAny(strings.ToLower(c.Title), q.Terms) {
		score += TitleTermBonus
	}
	metric := strings.ToLower(c.Metric + " " + strings.Join(c.Metrics, " "))
	if taxonomy.ContainsAny(metric, q.Terms) || taxonomy.ContainsAny(metric, q.Category.Keywords) {
		score += MetricTermBonus
	}
	return score
}

// instructionScore rates each instruction on its own.
func instructionScore(q *Query, c *catalog.Challenge) float64 {
	score := 0.0
	matched := 0
	sandy := false
	for _, in := range c.Instructions {
		text := strings.ToLower(in)
		if taxonomy.ContainsAny(text, q.Category.Keywords) || taxonomy.ContainsAny(text, q.Terms) {
			matched++
			score += InstructionHit
		}
		if taxonomy.ContainsAny(text, bunkerInstructionTerms) {
			sandy = true
		}
	}
	if matched >= InstructionMultiMin {
		score += InstructionMultiBonus
	}
	if sandy && q.MentionsBunker() {
		score += BunkerInstructionHit
	}
	return score
}

var bunkerInstructionTerms = []string{"sand", "bunker", "splash"}

func clusterScore(q *Query, text string) float64 {
	score := 0.0
	for _, cl := range clusters {
		if taxonomy.ContainsAny(q.Text, cl) && taxonomy.CountContains(text, cl) >= ClusterMin {
			score += ClusterBonus
		}
	}
	return score
}
