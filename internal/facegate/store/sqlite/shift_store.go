package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	dbpkg "facegate/internal/db"
	"facegate/internal/facegate/store"
)

type ShiftStore struct {
	db     *sql.DB
	writer *dbpkg.Worker
}

func NewShiftStore(db *sql.DB, writer *dbpkg.Worker) *ShiftStore {
	return &ShiftStore{db: db, writer: writer}
}

// StartShift opens a new shift.  The check-then-insert runs inside the
// single-writer transaction, and idx_shifts_one_open backs it up at the
// schema level, so two concurrent starts for one employee cannot both
// succeed.
func (s *ShiftStore) StartShift(ctx context.Context, employeeID int, start time.Time) (int64, error) {
	if start.IsZero() {
		start = time.Now().UTC()
	}
	startMs := start.UTC().UnixMilli()

	var id int64
	err := s.writer.Do(ctx, func(ctx context.Context, tx *sql.Tx) error {
		var open int
		err := tx.QueryRowContext(ctx, `
SELECT COUNT(*) FROM shifts WHERE id_employee = ? AND time_end_ms IS NULL;
`, employeeID).Scan(&open)
		if err != nil {
			return fmt.Errorf("StartShift check open: %w", err)
		}
		if open > 0 {
			return store.ErrShiftAlreadyOpen
		}

		res, err := tx.ExecContext(ctx, `
INSERT INTO shifts(id_employee, time_start_ms) VALUES (?, ?);
`, employeeID, startMs)
		if err != nil {
			return fmt.Errorf("StartShift insert: %w", err)
		}
		id, err = res.LastInsertId()
		if err != nil {
			return fmt.Errorf("StartShift last insert id: %w", err)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return id, nil
}

// EndShift closes the most-recently-started open shift.  Zero rows
// affected means there was no active shift, not an error.
func (s *ShiftStore) EndShift(ctx context.Context, employeeID int, end time.Time) (int64, error) {
	if end.IsZero() {
		end = time.Now().UTC()
	}
	endMs := end.UTC().UnixMilli()

	var affected int64
	err := s.writer.Do(ctx, func(ctx context.Context, tx *sql.Tx) error {
		res, err := tx.ExecContext(ctx, `
UPDATE shifts SET time_end_ms = ?
WHERE id_record = (
  SELECT id_record FROM shifts
  WHERE id_employee = ? AND time_end_ms IS NULL
  ORDER BY time_start_ms DESC
  LIMIT 1
);
`, endMs, employeeID)
		if err != nil {
			return fmt.Errorf("EndShift update: %w", err)
		}
		affected, _ = res.RowsAffected()
		return nil
	})
	return affected, err
}

func (s *ShiftStore) List(ctx context.Context) ([]store.ShiftRecord, error) {
	rows, err := s.db.QueryContext(ctx, `
SELECT id_record, id_employee, time_start_ms, time_end_ms
FROM shifts
ORDER BY time_start_ms DESC, id_record DESC;
`)
	if err != nil {
		return nil, fmt.Errorf("List query: %w", err)
	}
	defer rows.Close()

	var out []store.ShiftRecord
	for rows.Next() {
		var (
			rec     store.ShiftRecord
			startMs int64
			endMs   sql.NullInt64
		)
		if err := rows.Scan(&rec.ID, &rec.EmployeeID, &startMs, &endMs); err != nil {
			return nil, fmt.Errorf("List scan: %w", err)
		}
		rec.TimeStart = time.UnixMilli(startMs).UTC()
		if endMs.Valid {
			t := time.UnixMilli(endMs.Int64).UTC()
			rec.TimeEnd = &t
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("List rows: %w", err)
	}
	return out, nil
}
