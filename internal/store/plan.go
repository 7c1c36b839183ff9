package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"github.com/google/uuid"

	"github.com/abhisek/swingplan/internal/practice"
)

// planRepo implements PlanRepo. Plans are stored as a JSON body with a few
// summary columns for listing.
type planRepo struct {
	drv *entsql.Driver
	seq *sequenceCounter
}

var (
	planSummaryColumns = []string{"id", "sequence", "created_at", "problem", "category", "days"}
	planColumns        = []string{"id", "sequence", "created_at", "problem", "category", "days", "body"}
)

func (r *planRepo) Save(ctx context.Context, plan *practice.GeneratedPlan) (*PlanRecord, error) {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return nil, fmt.Errorf("next sequence: %w", err)
	}

	id := uuid.NewString()
	plan.ID = id
	body, err := json.Marshal(plan)
	if err != nil {
		plan.ID = ""
		return nil, fmt.Errorf("marshal plan: %w", err)
	}

	rec := &PlanRecord{
		ID:        id,
		Sequence:  seqNum,
		CreatedAt: time.Unix(time.Now().Unix(), 0).UTC(),
		Problem:   plan.Problem,
		Category:  string(plan.Category),
		Days:      len(plan.Days),
		Plan:      plan,
	}

	query, args := entsql.Dialect(dialect.SQLite).
		Insert(plansTable).
		Columns(planColumns...).
		Values(rec.ID, rec.Sequence, rec.CreatedAt.Unix(), rec.Problem, rec.Category, rec.Days, string(body)).
		Query()
	if err := r.drv.Exec(ctx, query, args, nil); err != nil {
		plan.ID = ""
		return nil, fmt.Errorf("save plan: %w", err)
	}
	return rec, nil
}

func (r *planRepo) Get(ctx context.Context, id string) (*PlanRecord, error) {
	query, args := entsql.Dialect(dialect.SQLite).
		Select(planColumns...).
		From(entsql.Table(plansTable)).
		Where(entsql.EQ("id", id)).
		Query()

	var rows entsql.Rows
	if err := r.drv.Query(ctx, query, args, &rows); err != nil {
		return nil, fmt.Errorf("query plan: %w", err)
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return nil, fmt.Errorf("query plan: %w", err)
		}
		return nil, fmt.Errorf("plan %s: %w", id, ErrNotFound)
	}

	var (
		rec  PlanRecord
		body string
	)
	if err := scanPlanSummary(&rows, &rec, &body); err != nil {
		return nil, err
	}
	var plan practice.GeneratedPlan
	if err := json.Unmarshal([]byte(body), &plan); err != nil {
		return nil, fmt.Errorf("decode plan %s: %w", id, err)
	}
	rec.Plan = &plan
	return &rec, nil
}

func (r *planRepo) List(ctx context.Context, opts QueryOpts) ([]PlanRecord, error) {
	sel := entsql.Dialect(dialect.SQLite).
		Select(planSummaryColumns...).
		From(entsql.Table(plansTable)).
		OrderBy(entsql.Desc("sequence"))
	if opts.Limit > 0 {
		sel = sel.Limit(opts.Limit)
	}
	query, args := sel.Query()

	var rows entsql.Rows
	if err := r.drv.Query(ctx, query, args, &rows); err != nil {
		return nil, fmt.Errorf("query plans: %w", err)
	}
	defer rows.Close()

	var out []PlanRecord
	for rows.Next() {
		var rec PlanRecord
		if err := scanPlanSummary(&rows, &rec, nil); err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate plans: %w", err)
	}
	return out, nil
}

// scanPlanSummary scans the summary columns and, when body is non-nil, the
// trailing body column.
func scanPlanSummary(rows *entsql.Rows, rec *PlanRecord, body *string) error {
	var createdAt int64
	dest := []any{&rec.ID, &rec.Sequence, &createdAt, &rec.Problem, &rec.Category, &rec.Days}
	if body != nil {
		dest = append(dest, body)
	}
	if err := rows.Scan(dest...); err != nil {
		return fmt.Errorf("scan plan: %w", err)
	}
	rec.CreatedAt = time.Unix(createdAt, 0).UTC()
	return nil
}
