package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"facegate/internal/facegate/store"
)

// ErrNoOpenShift is returned by EndShift when the employee has nothing to
// close.
var ErrNoOpenShift = errors.New("no open shift for employee")

// ShiftService tracks on-duty intervals.  Timestamps come from the
// server clock at the moment the request is handled, not from the
// stations.
type ShiftService struct {
	shifts store.ShiftStore
	now    func() time.Time
}

func NewShiftService(shifts store.ShiftStore) *ShiftService {
	return &ShiftService{shifts: shifts, now: time.Now}
}

// StartShift opens a new shift.  Surfaces store.ErrShiftAlreadyOpen
// unchanged when one is already open.
func (s *ShiftService) StartShift(ctx context.Context, employeeID int) (int64, error) {
	if employeeID <= 0 {
		return 0, ErrInvalidEmployeeID
	}
	id, err := s.shifts.StartShift(ctx, employeeID, s.now())
	if err != nil {
		if errors.Is(err, store.ErrShiftAlreadyOpen) {
			return 0, err
		}
		return 0, fmt.Errorf("%w: start shift: %v", ErrDatabaseUnavailable, err)
	}
	return id, nil
}

// EndShift closes the employee's open shift, or fails with ErrNoOpenShift
// when there is none.
func (s *ShiftService) EndShift(ctx context.Context, employeeID int) error {
	if employeeID <= 0 {
		return ErrInvalidEmployeeID
	}
	affected, err := s.shifts.EndShift(ctx, employeeID, s.now())
	if err != nil {
		return fmt.Errorf("%w: end shift: %v", ErrDatabaseUnavailable, err)
	}
	if affected == 0 {
		return ErrNoOpenShift
	}
	return nil
}

// ListShifts returns all shift records newest-first.
func (s *ShiftService) ListShifts(ctx context.Context) ([]store.ShiftRecord, error) {
	recs, err := s.shifts.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: list shifts: %v", ErrDatabaseUnavailable, err)
	}
	return recs, nil
}
