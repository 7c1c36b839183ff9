package store

import (
	"context"
	"time"

	"github.com/abhisek/swingplan/internal/metrics"
	"github.com/abhisek/swingplan/internal/practice"
)

// QueryOpts configures list queries.
type QueryOpts struct {
	Limit int // max results (0 = unlimited)
}

// RoundRecord is a stored round.
type RoundRecord struct {
	ID       int64
	Sequence int64
	PlayedAt time.Time
	Round    metrics.Round
}

// RoundRepo manages recorded rounds.
type RoundRepo interface {
	// Add stores a round and fills in ID and Sequence. A zero PlayedAt is
	// set to the current time.
	Add(ctx context.Context, rec *RoundRecord) error

	// List returns rounds, most recent first.
	List(ctx context.Context, opts QueryOpts) ([]RoundRecord, error)
}

// PlanRecord is a stored plan. Plan is nil in list results.
type PlanRecord struct {
	ID        string
	Sequence  int64
	CreatedAt time.Time
	Problem   string
	Category  string
	Days      int
	Plan      *practice.GeneratedPlan
}

// PlanRepo manages generated plan history.
type PlanRepo interface {
	// Save stores plan under a new ID and sets plan.ID.
	Save(ctx context.Context, plan *practice.GeneratedPlan) (*PlanRecord, error)

	// Get returns the plan with id, or ErrNotFound.
	Get(ctx context.Context, id string) (*PlanRecord, error)

	// List returns plan summaries, most recent first.
	List(ctx context.Context, opts QueryOpts) ([]PlanRecord, error)
}

// Rounds extracts the round aggregates from records.
func Rounds(records []RoundRecord) []metrics.Round {
	out := make([]metrics.Round, len(records))
	for i, r := range records {
		out[i] = r.Round
	}
	return out
}
