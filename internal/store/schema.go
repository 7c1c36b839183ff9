package store

import (
	"context"
	"fmt"

	entsql "entgo.io/ent/dialect/sql"
)

const (
	roundsTable = "rounds"
	plansTable  = "plans"
)

// tables lists the DDL for every table, applied in order on open.
var tables = []string{
	`CREATE TABLE IF NOT EXISTS rounds (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		sequence INTEGER NOT NULL UNIQUE,
		played_at INTEGER NOT NULL,
		total_score INTEGER NOT NULL,
		total_putts INTEGER NOT NULL DEFAULT 0,
		fairways_hit INTEGER NOT NULL DEFAULT 0,
		greens_in_regulation INTEGER NOT NULL DEFAULT 0,
		hole_count INTEGER NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS plans (
		id TEXT PRIMARY KEY,
		sequence INTEGER NOT NULL UNIQUE,
		created_at INTEGER NOT NULL,
		problem TEXT NOT NULL,
		category TEXT NOT NULL DEFAULT '',
		days INTEGER NOT NULL,
		body TEXT NOT NULL
	)`,
}

// migrate creates missing tables. The schema only ever grows by new
// tables, so CREATE IF NOT EXISTS is sufficient.
func migrate(ctx context.Context, drv *entsql.Driver) error {
	for _, ddl := range tables {
		if err := drv.Exec(ctx, ddl, []any{}, nil); err != nil {
			return fmt.Errorf("create table: %w", err)
		}
	}
	return nil
}
