package store

import (
	"context"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
)

// roundRepo implements RoundRepo using ent's SQL builder.
type roundRepo struct {
	drv *entsql.Driver
	seq *sequenceCounter
}

var roundColumns = []string{
	"id", "sequence", "played_at", "total_score", "total_putts",
	"fairways_hit", "greens_in_regulation", "hole_count",
}

func (r *roundRepo) Add(ctx context.Context, rec *RoundRecord) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}
	if rec.PlayedAt.IsZero() {
		rec.PlayedAt = time.Now().UTC()
	}

	query, args := entsql.Dialect(dialect.SQLite).
		Insert(roundsTable).
		Columns(roundColumns[1:]...).
		Values(
			seqNum,
			rec.PlayedAt.Unix(),
			rec.Round.TotalScore,
			rec.Round.TotalPutts,
			rec.Round.FairwaysHit,
			rec.Round.GreensInRegulation,
			rec.Round.HoleCount,
		).
		Query()

	var res entsql.Result
	if err := r.drv.Exec(ctx, query, args, &res); err != nil {
		return fmt.Errorf("save round: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("round id: %w", err)
	}

	rec.ID = id
	rec.Sequence = seqNum
	rec.PlayedAt = time.Unix(rec.PlayedAt.Unix(), 0).UTC()
	return nil
}

func (r *roundRepo) List(ctx context.Context, opts QueryOpts) ([]RoundRecord, error) {
	sel := entsql.Dialect(dialect.SQLite).
		Select(roundColumns...).
		From(entsql.Table(roundsTable)).
		OrderBy(entsql.Desc("sequence"))
	if opts.Limit > 0 {
		sel = sel.Limit(opts.Limit)
	}
	query, args := sel.Query()

	var rows entsql.Rows
	if err := r.drv.Query(ctx, query, args, &rows); err != nil {
		return nil, fmt.Errorf("query rounds: %w", err)
	}
	defer rows.Close()

	var out []RoundRecord
	for rows.Next() {
		var (
			rec      RoundRecord
			playedAt int64
		)
		err := rows.Scan(
			&rec.ID,
			&rec.Sequence,
			&playedAt,
			&rec.Round.TotalScore,
			&rec.Round.TotalPutts,
			&rec.Round.FairwaysHit,
			&rec.Round.GreensInRegulation,
			&rec.Round.HoleCount,
		)
		if err != nil {
			return nil, fmt.Errorf("scan round: %w", err)
		}
		rec.PlayedAt = time.Unix(playedAt, 0).UTC()
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate rounds: %w", err)
	}
	return out, nil
}
