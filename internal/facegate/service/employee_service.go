package service

import (
	"context"
	"errors"
	"fmt"

	"facegate/internal/facegate/store"
	"facegate/internal/facegate/types"
)

var (
	ErrMissingRequiredField = errors.New("first_name, last_name and role are required")
	ErrEmployeeNotFound     = errors.New("employee not found")
)

// EmployeeService manages the personnel roster.
type EmployeeService struct {
	employees store.EmployeeStore
}

func NewEmployeeService(employees store.EmployeeStore) *EmployeeService {
	return &EmployeeService{employees: employees}
}

// Create registers a new employee and returns the assigned id.  New
// employees start unenrolled; face data arrives later through enrollment.
func (s *EmployeeService) Create(ctx context.Context, req types.CreateEmployeeRequest) (int, error) {
	if req.FirstName == "" || req.LastName == "" || req.Role == "" {
		return 0, ErrMissingRequiredField
	}
	id, err := s.employees.Create(ctx, store.NewEmployee{
		FirstName:         req.FirstName,
		LastName:          req.LastName,
		Role:              req.Role,
		Login:             req.Login,
		DateOfTermination: req.DateOfTermination,
	})
	if err != nil {
		return 0, fmt.Errorf("%w: create employee: %v", ErrDatabaseUnavailable, err)
	}
	return id, nil
}

// Get fetches one employee.
func (s *EmployeeService) Get(ctx context.Context, id int) (store.EmployeeRecord, error) {
	if id <= 0 {
		return store.EmployeeRecord{}, ErrInvalidEmployeeID
	}
	rec, found, err := s.employees.Get(ctx, id)
	if err != nil {
		return store.EmployeeRecord{}, fmt.Errorf("%w: get employee: %v", ErrDatabaseUnavailable, err)
	}
	if !found {
		return store.EmployeeRecord{}, ErrEmployeeNotFound
	}
	return rec, nil
}

// List returns the full roster.
func (s *EmployeeService) List(ctx context.Context) ([]store.EmployeeRecord, error) {
	recs, err := s.employees.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: list employees: %v", ErrDatabaseUnavailable, err)
	}
	return recs, nil
}

// Update applies a partial update: only the fields present in the request
// are touched.  An update carrying no fields is a no-op success.
func (s *EmployeeService) Update(ctx context.Context, id int, req types.UpdateEmployeeRequest) error {
	if id <= 0 {
		return ErrInvalidEmployeeID
	}

	var fields []store.FieldUpdate
	add := func(column string, v *string) {
		if v != nil {
			fields = append(fields, store.FieldUpdate{Column: column, Value: *v})
		}
	}
	add("first_name", req.FirstName)
	add("last_name", req.LastName)
	add("role", req.Role)
	add("login", req.Login)
	add("date_of_termination", req.DateOfTermination)
	add("account_number", req.AccountNumber)
	add("password_hash", req.Password)

	if len(fields) == 0 {
		return nil
	}

	affected, err := s.employees.UpdateFields(ctx, id, fields)
	if err != nil {
		return fmt.Errorf("%w: update employee: %v", ErrDatabaseUnavailable, err)
	}
	if affected == 0 {
		return ErrEmployeeNotFound
	}
	return nil
}

// Delete removes the employee row.  Access-log entries referencing the id
// stay behind by design of the ledger.
func (s *EmployeeService) Delete(ctx context.Context, id int) error {
	if id <= 0 {
		return ErrInvalidEmployeeID
	}
	affected, err := s.employees.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("%w: delete employee: %v", ErrDatabaseUnavailable, err)
	}
	if affected == 0 {
		return ErrEmployeeNotFound
	}
	return nil
}
