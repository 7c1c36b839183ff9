package metrics

import (
	"math"
	"math/rand/v2"
	"testing"
)

func approx(a, b float64) bool { return math.Abs(a-b) < 1e-9 }

func TestEstimate_Placeholder(t *testing.T) {
	for name, rounds := range map[string][]Round{
		"nil":        nil,
		"empty":      {},
		"zero holes": {{TotalScore: 80, HoleCount: 0}},
	} {
		got := Estimate(rounds, "beginner", rand.New(rand.NewPCG(1, 2)))
		if got != Placeholder() {
			t.Errorf("%s: got %+v, want placeholder", name, got)
		}
		if !got.IsPlaceholder {
			t.Errorf("%s: IsPlaceholder = false", name)
		}
	}
	want := [5]float64{60, 45, 70, 40, 65}
	got := [5]float64{Placeholder().Driving, Placeholder().IronPlay, Placeholder().Chipping, Placeholder().Bunker, Placeholder().Putting}
	if got != want {
		t.Errorf("placeholder vector = %v, want %v", got, want)
	}
}

func TestPlaceholder_ReturnsCopy(t *testing.T) {
	p := Placeholder()
	p.Driving = 0
	p.IsPlaceholder = false
	if got := Placeholder(); got.Driving != 60 || !got.IsPlaceholder {
		t.Errorf("Placeholder() = %+v after mutating an earlier copy", got)
	}
	if got := Estimate(nil, "beginner", nil); got.Driving != 60 {
		t.Errorf("Estimate placeholder Driving = %v, want 60", got.Driving)
	}
}

func TestPutting_Table(t *testing.T) {
	tests := []struct {
		perHole float64
		want    float64
	}{
		{1.2, 95},
		{1.5, 95},
		{1.6, 75},
		{1.8, 65},
		{1.9, 57.5},
		{2.0, 50},
		{2.1, 42.5},
		{2.2, 35},
		{2.4, 25},
		{2.5, 20},
		{3.0, 20},
	}
	for _, tt := range tests {
		if got := Putting(tt.perHole); !approx(got, tt.want) {
			t.Errorf("Putting(%.2f) = %.2f, want %.2f", tt.perHole, got, tt.want)
		}
	}
}

func TestEstimate_Arithmetic(t *testing.T) {
	// 18 holes: 7 of 14 fairways (50%), 9 GIR (50%), score 86, 36 putts.
	rounds := []Round{{TotalScore: 86, TotalPutts: 36, FairwaysHit: 7, GreensInRegulation: 9, HoleCount: 18}}
	got := Estimate(rounds, "intermediate", nil)

	if got.IsPlaceholder {
		t.Error("IsPlaceholder = true with real rounds")
	}
	if !approx(got.Driving, 95) { // 40 + 50*1.1 = 95
		t.Errorf("Driving = %.2f, want 95", got.Driving)
	}
	if !approx(got.IronPlay, 57.5) { // 20 + 50*0.75
		t.Errorf("IronPlay = %.2f, want 57.5", got.IronPlay)
	}
	// 14 over par across 9 missed greens: 100 - 14/9*30.
	if want := 100 - 14.0/9*30; !approx(got.Chipping, want) {
		t.Errorf("Chipping = %.2f, want %.2f", got.Chipping, want)
	}
	if !approx(got.Bunker, 50) {
		t.Errorf("Bunker = %.2f, want 50 without a random source", got.Bunker)
	}
	if !approx(got.Putting, 50) { // 2.0 putts per hole
		t.Errorf("Putting = %.2f, want 50", got.Putting)
	}
}

func TestEstimate_Clamped(t *testing.T) {
	rounds := []Round{
		{TotalScore: 130, TotalPutts: 60, FairwaysHit: 0, GreensInRegulation: 0, HoleCount: 18},
		{TotalScore: 62, TotalPutts: 20, FairwaysHit: 14, GreensInRegulation: 18, HoleCount: 18},
	}
	for _, r := range rounds {
		got := Estimate([]Round{r}, "pro", rand.New(rand.NewPCG(3, 4)))
		for name, v := range map[string]float64{
			"driving": got.Driving, "iron": got.IronPlay, "chipping": got.Chipping,
			"bunker": got.Bunker, "putting": got.Putting,
		} {
			if v < MinScore || v > MaxScore {
				t.Errorf("%s = %.2f out of [%v, %v]", name, v, MinScore, MaxScore)
			}
		}
	}
}

func TestChipping_NoMissedGreens(t *testing.T) {
	if got := Chipping(Totals{Score: 70, GIR: 18, Holes: 18}); got != 85 {
		t.Errorf("Chipping = %.2f, want 85", got)
	}
}

func TestBunker_Levels(t *testing.T) {
	for level, base := range map[string]float64{
		"beginner": 30, "Intermediate": 50, "advanced": 70, "expert": 80, "pro": 90, "": 50, "weekend": 50,
	} {
		if got := Bunker(level, nil); got != min(base, MaxScore) {
			t.Errorf("Bunker(%q) = %.1f, want %.1f", level, got, base)
		}
		rng := rand.New(rand.NewPCG(7, 7))
		for range 50 {
			got := Bunker(level, rng)
			if got < max(MinScore, base-BunkerJitter) || got > min(MaxScore, base+BunkerJitter) {
				t.Errorf("Bunker(%q) = %.2f outside base ±%v", level, got, BunkerJitter)
			}
		}
	}
}

func TestBunker_SeededIsRepeatable(t *testing.T) {
	a := Bunker("advanced", rand.New(rand.NewPCG(42, 1)))
	b := Bunker("advanced", rand.New(rand.NewPCG(42, 1)))
	if a != b {
		t.Errorf("seeded bunker scores differ: %v vs %v", a, b)
	}
}

func TestSum_SkipsEmptyRounds(t *testing.T) {
	got := Sum([]Round{{TotalScore: 40, HoleCount: 9}, {TotalScore: 99, HoleCount: 0}})
	if got.Rounds != 1 || got.Score != 40 || got.Holes != 9 {
		t.Errorf("Sum = %+v", got)
	}
}

func TestGoalGap(t *testing.T) {
	rounds := []Round{{TotalScore: 45, HoleCount: 9}, {TotalScore: 90, HoleCount: 18}}
	g, ok := GoalGap(rounds, 85)
	if !ok {
		t.Fatal("GoalGap not ok")
	}
	if !approx(g.Average, 90) || !approx(g.Gap, 5) || g.Rounds != 2 {
		t.Errorf("GoalGap = %+v, want average 90 gap 5", g)
	}
	if s := g.Summary(); s != "Averaging 90.0 over 2 rounds, 5.0 strokes above your goal of 85." {
		t.Errorf("Summary = %q", s)
	}

	if _, ok := GoalGap(rounds, 0); ok {
		t.Error("GoalGap ok without a target")
	}
	if _, ok := GoalGap(nil, 80); ok {
		t.Error("GoalGap ok without rounds")
	}
}
