package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"facegate/internal/facegate/store"
)

// ShiftStore is an in-memory store.ShiftStore enforcing the same
// at-most-one-open invariant as the SQLite implementation.
type ShiftStore struct {
	mu     sync.Mutex
	nextID int64
	rows   []store.ShiftRecord

	// Err, when set, is returned by every method.  Test hook for
	// simulating an unavailable database.
	Err error
}

func NewShiftStore() *ShiftStore {
	return &ShiftStore{nextID: 1}
}

func (s *ShiftStore) StartShift(_ context.Context, employeeID int, start time.Time) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return 0, s.Err
	}

	for _, r := range s.rows {
		if r.EmployeeID == employeeID && r.TimeEnd == nil {
			return 0, store.ErrShiftAlreadyOpen
		}
	}

	if start.IsZero() {
		start = time.Now().UTC()
	}
	id := s.nextID
	s.nextID++
	s.rows = append(s.rows, store.ShiftRecord{
		ID:         id,
		EmployeeID: employeeID,
		TimeStart:  start,
	})
	return id, nil
}

func (s *ShiftStore) EndShift(_ context.Context, employeeID int, end time.Time) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return 0, s.Err
	}

	if end.IsZero() {
		end = time.Now().UTC()
	}

	// Close the most-recently-started open record.
	latest := -1
	for i, r := range s.rows {
		if r.EmployeeID != employeeID || r.TimeEnd != nil {
			continue
		}
		if latest < 0 || r.TimeStart.After(s.rows[latest].TimeStart) {
			latest = i
		}
	}
	if latest < 0 {
		return 0, nil
	}
	t := end
	s.rows[latest].TimeEnd = &t
	return 1, nil
}

func (s *ShiftStore) List(_ context.Context) ([]store.ShiftRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}

	out := make([]store.ShiftRecord, len(s.rows))
	copy(out, s.rows)
	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].TimeStart.Equal(out[j].TimeStart) {
			return out[i].TimeStart.After(out[j].TimeStart)
		}
		return out[i].ID > out[j].ID
	})
	return out, nil
}
