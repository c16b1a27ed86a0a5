package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	dbpkg "facegate/internal/db"
	"facegate/internal/facegate/store"
)

type AccessLogStore struct {
	db     *sql.DB
	writer *dbpkg.Worker
}

func NewAccessLogStore(db *sql.DB, writer *dbpkg.Worker) *AccessLogStore {
	return &AccessLogStore{db: db, writer: writer}
}

// Insert appends one log row.  There is no deduplication: a replayed
// acknowledgement produces a duplicate row, which is the accepted
// contract with the edge devices.
func (s *AccessLogStore) Insert(ctx context.Context, rec store.AccessLogRecord) error {
	if rec.Timestamp.IsZero() {
		rec.Timestamp = time.Now().UTC()
	}
	tsMs := rec.Timestamp.UTC().UnixMilli()
	recordedMs := time.Now().UTC().UnixMilli()

	return s.writer.Do(ctx, func(ctx context.Context, tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, `
INSERT INTO access_logs(id_employee, direction, timestamp_ms, recorded_at_ms)
VALUES (?, ?, ?, ?);
`, rec.EmployeeID, rec.Direction, tsMs, recordedMs); err != nil {
			return fmt.Errorf("Insert access log: %w", err)
		}
		return nil
	})
}

func (s *AccessLogStore) List(ctx context.Context) ([]store.AccessLogRecord, error) {
	rows, err := s.db.QueryContext(ctx, `
SELECT id_log, id_employee, direction, timestamp_ms
FROM access_logs
ORDER BY timestamp_ms DESC, id_log DESC;
`)
	if err != nil {
		return nil, fmt.Errorf("List query: %w", err)
	}
	defer rows.Close()

	var out []store.AccessLogRecord
	for rows.Next() {
		var (
			rec  store.AccessLogRecord
			tsMs int64
		)
		if err := rows.Scan(&rec.ID, &rec.EmployeeID, &rec.Direction, &tsMs); err != nil {
			return nil, fmt.Errorf("List scan: %w", err)
		}
		rec.Timestamp = time.UnixMilli(tsMs).UTC()
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("List rows: %w", err)
	}
	return out, nil
}
