package scoring

import (
	"testing"

	"github.com/abhisek/swingplan/internal/catalog"
	"github.com/abhisek/swingplan/internal/classify"
	"github.com/abhisek/swingplan/internal/taxonomy"
)

func queryFor(t *testing.T, problem string) *Query {
	t.Helper()
	tax := taxonomy.Default()
	res := classify.Classify(tax, problem)
	if res == nil {
		t.Fatalf("Classify(%q) = nil", problem)
	}
	det, _ := tax.Detector(res.Category.Name)
	return NewQuery(problem, res.Category, classify.ExtractTerms(problem, res.Category), det)
}

var (
	impactBag = catalog.Drill{
		ID:       "impact-bag",
		Title:    "Impact Bag Smash",
		Overview: "Hit an impact bag to feel solid contact and a square clubface.",
		Focus:    []string{"impact", "contact"},
	}
	teeGate = catalog.Drill{
		ID:       "tee-gate",
		Title:    "Tee Gate Drill",
		Overview: "Drive through a gate of tees to tighten your driving dispersion.",
		Focus:    []string{"driving"},
	}
)

func TestScoreDrill_ToppingPrefersImpact(t *testing.T) {
	q := queryFor(t, "I'm topping my iron shots")
	if q.Category.Name != taxonomy.BallStriking {
		t.Fatalf("category = %q, want Ball Striking", q.Category.Name)
	}

	impact := ScoreDrill(q, &impactBag)
	tee := ScoreDrill(q, &teeGate)
	if impact <= tee {
		t.Errorf("Impact Bag Smash %.2f should outscore Tee Gate Drill %.2f", impact, tee)
	}
	if impact <= PoolThreshold {
		t.Errorf("Impact Bag Smash %.2f should enter the pool", impact)
	}
}

func TestScoreDrill_ConditionBlocks(t *testing.T) {
	tests := []struct {
		name           string
		problem        string
		base           string
		corrective     string
		contraindicate string
	}{
		{"chunking", "hitting my irons fat", "solid strike", "low point", "bunker"},
		{"slicing", "slicing my driver", "straight accuracy", "clubface", "putt"},
		{"pushing", "pushing my driver", "straight accuracy", "alignment", "fade"},
		{"hooking", "hooking my driver", "straight accuracy", "grip", "draw"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := queryFor(t, tt.problem)
			neutral := catalog.Drill{Title: "Range Session", Overview: tt.base}
			good := catalog.Drill{Title: "Range Session", Overview: tt.base + " " + tt.corrective}
			bad := catalog.Drill{Title: "Range Session", Overview: tt.base + " " + tt.contraindicate}

			n, g, b := ScoreDrill(q, &neutral), ScoreDrill(q, &good), ScoreDrill(q, &bad)
			if g <= n {
				t.Errorf("%q drill %.2f should outscore neutral %.2f", tt.corrective, g, n)
			}
			if b >= n {
				t.Errorf("%q drill %.2f should score below neutral %.2f", tt.contraindicate, b, n)
			}
		})
	}
}

func TestScoreDrill_ContraindicatedPenalty(t *testing.T) {
	q := queryFor(t, "topping the ball")
	downhill := catalog.Drill{Title: "Downhill Lie Contact", Overview: "Make contact from a downhill lie"}
	flat := catalog.Drill{Title: "Flat Lie Contact", Overview: "Make contact from a flat lie"}
	if d, f := ScoreDrill(q, &downhill), ScoreDrill(q, &flat); d >= f {
		t.Errorf("downhill drill %.2f should score below flat drill %.2f", d, f)
	}
}

func TestScoreDrill_Bounds(t *testing.T) {
	problems := []string{"", "topping thin fat chunk slice hook", "three putting", "bunker sand"}
	drills := []catalog.Drill{
		impactBag,
		teeGate,
		{Title: "Everything Drill", Overview: "contact strike impact divot ball first iron hybrid basic " +
			"weight transfer path clubface putt bunker sand downhill flop pitch fade draw"},
		{},
	}
	for _, p := range problems {
		q := queryFor(t, p)
		for _, s := range ScoreDrills(q, drills) {
			if s.Score < 0 || s.Score > 1 {
				t.Errorf("problem %q drill %q score %.2f out of [0,1]", p, s.Drill.Title, s.Score)
			}
		}
	}
}

func TestRankDrills_FiltersAndSorts(t *testing.T) {
	scored := []ScoredDrill{
		{Drill: catalog.Drill{ID: "a"}, Score: 0.2},
		{Drill: catalog.Drill{ID: "b"}, Score: 0.5},
		{Drill: catalog.Drill{ID: "c"}, Score: 0.9},
		{Drill: catalog.Drill{ID: "d"}, Score: 0.5},
	}
	ranked := RankDrills(scored)
	want := []string{"c", "b", "d"}
	if len(ranked) != len(want) {
		t.Fatalf("ranked %d drills, want %d", len(ranked), len(want))
	}
	for i, id := range want {
		if ranked[i].Drill.ID != id {
			t.Errorf("ranked[%d] = %q, want %q", i, ranked[i].Drill.ID, id)
		}
	}
}

func TestScoreDrills_DoesNotMutate(t *testing.T) {
	drills := []catalog.Drill{impactBag}
	q := queryFor(t, "topping")
	out := ScoreDrills(q, drills)
	out[0].Drill.Title = "changed"
	if drills[0].Title != "Impact Bag Smash" {
		t.Error("input drill was mutated")
	}
}

func TestScoreChallenge_PuttingBeatsBunker(t *testing.T) {
	q := queryFor(t, "three putting too much")
	bunker := catalog.Challenge{
		Title:        "Sand Save Test",
		Category:     "Bunker",
		Instructions: []string{"Splash ten balls out of the bunker."},
	}
	putting := catalog.Challenge{
		Title:        "Circle Drill",
		Category:     "Putting",
		Instructions: []string{"Make a smooth stroke.", "Start every ball on your line."},
	}

	_, b := ScoreChallenge(q, &bunker)
	_, p := ScoreChallenge(q, &putting)
	if b != 0 {
		t.Errorf("bunker challenge score = %.2f, want 0 from the context gate", b)
	}
	if p <= b {
		t.Errorf("putting challenge %.2f should outscore bunker challenge %.2f", p, b)
	}
}

func TestScoreChallenge_BunkerCrossCategory(t *testing.T) {
	// A sand challenge filed under an unrelated category still passes the
	// gate when the problem is about bunker play.
	q := queryFor(t, "hitting it fat out of the bunker")
	c := catalog.Challenge{Title: "Line in the Sand", Category: "Misc", Description: "Draw a line in the sand"}
	raw, score := ScoreChallenge(q, &c)
	if raw <= 0 || score <= 0 {
		t.Errorf("raw %.2f score %.2f, want positive", raw, score)
	}
}

func TestScoreChallenge_GateBlocksOffTopic(t *testing.T) {
	q := queryFor(t, "three putting too much")
	c := catalog.Challenge{Title: "Fairway Finder", Description: "Hit 10 drives into the fairway"}
	raw, score := ScoreChallenge(q, &c)
	if raw != 0 || score != 0 {
		t.Errorf("raw %.2f score %.2f, want 0", raw, score)
	}
}

func TestScoreChallenge_Bounds(t *testing.T) {
	challenges := []catalog.Challenge{
		{Title: "Putt putt", Description: "putt green hole cup lag stroke line speed read", Category: "Putting"},
		{Title: "Driver", Description: "putt driver bunker sand tee shot"},
		{},
	}
	for _, p := range []string{"three putting", "bunker", "topping", "slice off the tee", ""} {
		q := queryFor(t, p)
		for _, s := range ScoreChallenges(q, challenges) {
			if s.Score < 0 || s.Score > 1 {
				t.Errorf("problem %q challenge %q score %.2f out of [0,1]", p, s.Challenge.Title, s.Score)
			}
		}
	}
}

func TestStrategyFor(t *testing.T) {
	tests := []struct {
		problem string
		want    string
	}{
		{"stuck in the bunker", "bunker"},
		{"three putting", "putting"},
		{"poor contact with irons", "contact"},
		{"slicing my driver", "generic"},
	}
	for _, tt := range tests {
		if got := StrategyFor(queryFor(t, tt.problem)).Name(); got != tt.want {
			t.Errorf("StrategyFor(%q) = %q, want %q", tt.problem, got, tt.want)
		}
	}
}

func TestInstructionScore(t *testing.T) {
	q := queryFor(t, "three putting")
	c := catalog.Challenge{Instructions: []string{"Keep your stroke smooth", "Pick a line", "Relax"}}
	// Two matches at InstructionHit each plus the multi-match bonus.
	want := 2*InstructionHit + InstructionMultiBonus
	if got := instructionScore(q, &c); got != want {
		t.Errorf("instructionScore = %.1f, want %.1f", got, want)
	}
}

func TestClusterScore(t *testing.T) {
	q := queryFor(t, "big slice with the driver")
	if got := clusterScore(q, "check your path and face at address"); got != ClusterBonus {
		t.Errorf("clusterScore = %.1f, want %.1f", got, ClusterBonus)
	}
	if got := clusterScore(q, "just the path"); got != 0 {
		t.Errorf("clusterScore single term = %.1f, want 0", got)
	}
}
