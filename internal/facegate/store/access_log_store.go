package store

import (
	"context"
	"time"
)

// AccessLogRecord is one row of the append-only access log.  EmployeeID
// is a weak reference: rows survive the deletion of the employee they
// point at, and are never mutated once written.
type AccessLogRecord struct {
	ID         int64
	EmployeeID int
	Direction  string // free-form device token, e.g. "IN"/"OUT"
	Timestamp  time.Time
}

type AccessLogStore interface {
	Insert(ctx context.Context, rec AccessLogRecord) error

	// List returns all entries newest-first by timestamp.
	List(ctx context.Context) ([]AccessLogRecord, error)
}
