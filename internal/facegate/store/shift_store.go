package store

import (
	"context"
	"errors"
	"time"
)

// ErrShiftAlreadyOpen is returned by StartShift when the employee already
// has an open shift.  The store enforces the at-most-one-open invariant
// transactionally.
var ErrShiftAlreadyOpen = errors.New("employee already has an open shift")

// ShiftRecord is one bounded on-duty interval.  TimeEnd is nil while the
// shift is open; the only transition is open to closed.
type ShiftRecord struct {
	ID         int64
	EmployeeID int
	TimeStart  time.Time
	TimeEnd    *time.Time
}

type ShiftStore interface {
	// StartShift inserts a new open shift and returns its id.  Fails
	// with ErrShiftAlreadyOpen if one is already open for the employee.
	StartShift(ctx context.Context, employeeID int, start time.Time) (int64, error)

	// EndShift closes the most-recently-started open shift for the
	// employee and returns rows affected; zero means no active shift.
	EndShift(ctx context.Context, employeeID int, end time.Time) (int64, error)

	// List returns all shift records newest-first by start time.
	List(ctx context.Context) ([]ShiftRecord, error)
}
