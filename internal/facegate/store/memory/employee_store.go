package memory

import (
	"context"
	"sync"

	"facegate/internal/facegate/store"
)

// EmployeeStore is an in-memory store.EmployeeStore for tests and dev
// environments.
type EmployeeStore struct {
	mu     sync.Mutex
	nextID int
	rows   map[int]*employeeRow

	// Err, when set, is returned by every method.  Test hook for
	// simulating an unavailable database.
	Err error
}

type employeeRow struct {
	rec  store.EmployeeRecord
	blob []byte
}

func NewEmployeeStore() *EmployeeStore {
	return &EmployeeStore{nextID: 1, rows: make(map[int]*employeeRow)}
}

func (s *EmployeeStore) Create(_ context.Context, e store.NewEmployee) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return 0, s.Err
	}

	id := s.nextID
	s.nextID++
	s.rows[id] = &employeeRow{
		rec: store.EmployeeRecord{
			ID:                id,
			FirstName:         e.FirstName,
			LastName:          e.LastName,
			Role:              e.Role,
			Login:             e.Login,
			DateOfTermination: e.DateOfTermination,
		},
		blob: []byte{},
	}
	return id, nil
}

func (s *EmployeeStore) Get(_ context.Context, id int) (store.EmployeeRecord, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return store.EmployeeRecord{}, false, s.Err
	}

	row, ok := s.rows[id]
	if !ok {
		return store.EmployeeRecord{}, false, nil
	}
	return row.rec, true, nil
}

func (s *EmployeeStore) List(_ context.Context) ([]store.EmployeeRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}

	out := make([]store.EmployeeRecord, 0, len(s.rows))
	for id := 1; id < s.nextID; id++ {
		if row, ok := s.rows[id]; ok {
			out = append(out, row.rec)
		}
	}
	return out, nil
}

func (s *EmployeeStore) UpdateFields(_ context.Context, id int, fields []store.FieldUpdate) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return 0, s.Err
	}
	if len(fields) == 0 {
		return 0, nil
	}

	row, ok := s.rows[id]
	if !ok {
		return 0, nil
	}

	for _, f := range fields {
		v, _ := f.Value.(string)
		switch f.Column {
		case "first_name":
			row.rec.FirstName = v
		case "last_name":
			row.rec.LastName = v
		case "role":
			row.rec.Role = v
		case "login":
			row.rec.Login = &v
		case "date_of_termination":
			row.rec.DateOfTermination = &v
		case "account_number":
			row.rec.AccountNumber = &v
		case "password_hash":
			// not surfaced through EmployeeRecord
		}
	}
	return 1, nil
}

func (s *EmployeeStore) Delete(_ context.Context, id int) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return 0, s.Err
	}

	if _, ok := s.rows[id]; !ok {
		return 0, nil
	}
	delete(s.rows, id)
	return 1, nil
}

func (s *EmployeeStore) Embedding(_ context.Context, id int) ([]byte, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, false, s.Err
	}

	row, ok := s.rows[id]
	if !ok {
		return nil, false, nil
	}
	blob := make([]byte, len(row.blob))
	copy(blob, row.blob)
	return blob, true, nil
}

func (s *EmployeeStore) SetFaceData(_ context.Context, id int, blob []byte, photoPath string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return s.Err
	}

	row, ok := s.rows[id]
	if !ok {
		return errNotFound(id)
	}
	row.blob = make([]byte, len(blob))
	copy(row.blob, blob)
	row.rec.PhotoPath = &photoPath
	return nil
}

// Seed inserts an employee with a preset embedding blob.  Test-only
// helper.
func (s *EmployeeStore) Seed(rec store.EmployeeRecord, blob []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if rec.ID >= s.nextID {
		s.nextID = rec.ID + 1
	}
	s.rows[rec.ID] = &employeeRow{rec: rec, blob: blob}
}
