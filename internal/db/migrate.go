package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// Migrate runs all schema migrations.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			// Tolerate "duplicate column name" errors from ALTER TABLE
			// since the migration system re-runs all statements.
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

// Opportunities persist as whole documents: scalar columns for the fields the
// list view filters and sorts on, JSON text columns for the nested sections.
var migrations = []string{
	`CREATE TABLE IF NOT EXISTS opportunities (
		id               TEXT PRIMARY KEY,
		title            TEXT NOT NULL,
		description      TEXT NOT NULL DEFAULT '',
		industry         TEXT NOT NULL DEFAULT '',
		geography        TEXT NOT NULL DEFAULT '',
		technology       TEXT NOT NULL DEFAULT '',
		owner            TEXT NOT NULL DEFAULT '',
		stage            TEXT NOT NULL DEFAULT 'idea'
		                 CHECK(stage IN ('idea','rough_scoring','gate1','detailed_scoring',
		                                 'gate2','business_case','gate3','go_to_market','closed')),
		scoring          TEXT NOT NULL,
		detailed_scoring TEXT,
		business_case    TEXT,
		analysis         TEXT NOT NULL DEFAULT '{}',
		gates            TEXT NOT NULL DEFAULT '[]',
		created_at       TEXT NOT NULL,
		updated_at       TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_opportunities_stage ON opportunities(stage)`,
	`CREATE INDEX IF NOT EXISTS idx_opportunities_created ON opportunities(created_at)`,
}
