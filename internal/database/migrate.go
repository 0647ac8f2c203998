package database

import (
	"context"
	"fmt"
	"io/fs"
	"sort"

	"github.com/jmoiron/sqlx"

	"github.com/studyhall-app/studyhall/schemas"
)

// ApplyMigrations executes the embedded migration files in lexical order.
// Files run as multi-statement batches, so the connection must be opened
// with MultiStatements enabled (Open does this).
func ApplyMigrations(ctx context.Context, db *sqlx.DB) error {
	entries, err := fs.Glob(schemas.Migrations, "migrations/*.sql")
	if err != nil {
		return fmt.Errorf("list migration files: %w", err)
	}
	sort.Strings(entries)

	for _, name := range entries {
		content, err := fs.ReadFile(schemas.Migrations, name)
		if err != nil {
			return fmt.Errorf("read migration %s: %w", name, err)
		}
		if _, err := db.ExecContext(ctx, string(content)); err != nil {
			return fmt.Errorf("apply migration %s: %w", name, err)
		}
	}
	return nil
}
