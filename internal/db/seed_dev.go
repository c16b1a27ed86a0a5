package db

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

// SeedDev inserts a starter employee so a fresh dev environment has
// something to verify against.  Safe to run repeatedly.
func SeedDev(ctx context.Context, db *sql.DB) error {
	now := time.Now().UTC().UnixMilli()

	var count int
	if err := db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM employees WHERE login = 'dev';`,
	).Scan(&count); err != nil {
		return fmt.Errorf("seed check: %w", err)
	}
	if count > 0 {
		return nil
	}

	if _, err := db.ExecContext(ctx, `
INSERT INTO employees(first_name, last_name, role, login, created_at_ms, updated_at_ms)
VALUES ('Dev', 'Employee', 'operator', 'dev', ?, ?);`, now, now); err != nil {
		return fmt.Errorf("seed employee: %w", err)
	}

	return nil
}
