package service

import (
	"context"
	"fmt"
	"time"

	"facegate/internal/facegate/store"
)

// LedgerService records acknowledged door transits and answers presence
// checks for QR stations.
type LedgerService struct {
	employees store.EmployeeStore
	logs      store.AccessLogStore
}

func NewLedgerService(employees store.EmployeeStore, logs store.AccessLogStore) *LedgerService {
	return &LedgerService{employees: employees, logs: logs}
}

// CheckPresence reports whether the scanned id belongs to a known
// employee, with the name attached when it does.  An unknown id is a
// negative answer, not an error.
func (s *LedgerService) CheckPresence(ctx context.Context, employeeID int) (store.EmployeeRecord, bool, error) {
	if employeeID <= 0 {
		return store.EmployeeRecord{}, false, ErrInvalidEmployeeID
	}
	rec, found, err := s.employees.Get(ctx, employeeID)
	if err != nil {
		return store.EmployeeRecord{}, false, fmt.Errorf("%w: lookup employee: %v", ErrDatabaseUnavailable, err)
	}
	return rec, found, nil
}

// Acknowledge appends a transit confirmed by the door hardware to the
// ledger.  The employee id is taken at face value: the row must land
// even if the employee record has since been deleted, and duplicates are
// legitimate (a device may retry an ack).
func (s *LedgerService) Acknowledge(ctx context.Context, employeeID int, direction string, ts time.Time) error {
	if employeeID <= 0 {
		return ErrInvalidEmployeeID
	}
	err := s.logs.Insert(ctx, store.AccessLogRecord{
		EmployeeID: employeeID,
		Direction:  direction,
		Timestamp:  ts,
	})
	if err != nil {
		return fmt.Errorf("%w: insert access log: %v", ErrDatabaseUnavailable, err)
	}
	return nil
}

// ListLogs returns the full ledger newest-first.
func (s *LedgerService) ListLogs(ctx context.Context) ([]store.AccessLogRecord, error) {
	recs, err := s.logs.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: list access logs: %v", ErrDatabaseUnavailable, err)
	}
	return recs, nil
}
