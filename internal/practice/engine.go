package practice

import (
	"context"
	"fmt"
	"math/rand/v2"
	"sync"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/abhisek/swingplan/internal/classify"
	"github.com/abhisek/swingplan/internal/diagnosis"
	"github.com/abhisek/swingplan/internal/logger"
	"github.com/abhisek/swingplan/internal/metrics"
	"github.com/abhisek/swingplan/internal/planner"
	"github.com/abhisek/swingplan/internal/scoring"
	"github.com/abhisek/swingplan/internal/taxonomy"
)

// Engine generates practice plans. It is safe for concurrent use.
type Engine struct {
	taxonomy  *taxonomy.Taxonomy
	diagnoser *diagnosis.Diagnoser
	log       logrus.FieldLogger

	mu  sync.Mutex // guards rng
	rng *rand.Rand
}

// Option configures an Engine.
type Option func(*Engine)

// WithRand sets the random source for the bunker estimate. Seed it for
// repeatable plans.
func WithRand(rng *rand.Rand) Option {
	return func(e *Engine) { e.rng = rng }
}

// WithLogger sets the logger. The default discards output.
func WithLogger(log logrus.FieldLogger) Option {
	return func(e *Engine) { e.log = log }
}

// WithTaxonomy replaces the default category taxonomy.
func WithTaxonomy(t *taxonomy.Taxonomy) Option {
	return func(e *Engine) { e.taxonomy = t }
}

// NewEngine creates an Engine.
func NewEngine(opts ...Option) *Engine {
	e := &Engine{
		taxonomy:  taxonomy.Default(),
		diagnoser: diagnosis.New(),
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.log == nil {
		e.log = logger.Discard()
	}
	if e.rng == nil {
		e.rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return e
}

// GeneratePlan builds a complete plan for req. Its only input error is
// *InvalidInputError when req.DurationDays < 1; every other degenerate input
// falls back to defaults. Cancellation is separate from input validation: a
// ctx cancelled before scoring yields ctx.Err() wrapped, never a partial
// plan. Callers passing context.Background() see only the input error.
func (e *Engine) GeneratePlan(ctx context.Context, req Request) (*GeneratedPlan, error) {
	if req.DurationDays < 1 {
		return nil, &InvalidInputError{Field: "duration", Value: req.DurationDays, Err: ErrInvalidDuration}
	}

	// Classify and extract the matching vocabulary.
	var category *taxonomy.Category
	var det taxonomy.Detector
	if res := classify.Classify(e.taxonomy, req.Problem); res != nil {
		category = &res.Category
		det, _ = e.taxonomy.Detector(res.Category.Name)
		e.log.WithFields(logrus.Fields{
			"category": res.Category.Name,
			"score":    res.Score,
			"fallback": res.Fallback,
		}).Debug("classified problem")
	}
	var cat taxonomy.Category
	if category != nil {
		cat = *category
	}
	terms := classify.ExtractTerms(req.Problem, cat)
	q := scoring.NewQuery(req.Problem, cat, terms, det)

	// Score both catalogs concurrently; each goroutine owns its slice.
	var drills []scoring.ScoredDrill
	var challenges []scoring.ScoredChallenge
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := gctx.Err(); err != nil {
			return err
		}
		drills = scoring.ScoreDrills(q, req.Drills)
		return nil
	})
	g.Go(func() error {
		if err := gctx.Err(); err != nil {
			return err
		}
		challenges = scoring.ScoreChallenges(q, req.Challenges)
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("score catalog: %w", err)
	}

	// Assemble days and pick the challenge.
	ranked := scoring.RankDrills(drills)
	days := planner.AssembleDays(planner.Input{
		Ranked:   ranked,
		Catalog:  drills,
		Days:     req.DurationDays,
		Category: cat,
	})
	sel := planner.SelectChallenge(challenges, category)
	e.log.WithFields(logrus.Fields{
		"ranked":    len(ranked),
		"catalog":   len(drills),
		"challenge": sel.Challenge.ID,
		"score":     sel.Score,
		"default":   sel.Default,
	}).Debug("assembled plan")

	diag := e.diagnoser.Diagnose(req.Problem, category)

	e.mu.Lock()
	perf := metrics.Estimate(req.Rounds, req.Profile.SkillLevel, e.rng)
	e.mu.Unlock()

	plan := &GeneratedPlan{
		Problem:            req.Problem,
		Category:           cat.Name,
		SearchTerms:        terms,
		Diagnosis:          diag.Diagnosis,
		RootCauses:         diag.RootCauses,
		Days:               days,
		SelectedChallenge:  sel.Challenge,
		DefaultChallenge:   sel.Default,
		PerformanceMetrics: perf,
	}
	if goal, ok := metrics.GoalGap(req.Rounds, req.Profile.ScoreGoal); ok {
		plan.Goal = goal.Summary()
	}
	return plan, nil
}
