package store

import (
	"context"
)

// EmployeeRecord mirrors one employees row.  The embedding blob is kept
// out of this struct on purpose; it is only ever read through Embedding
// and written through SetFaceData.
type EmployeeRecord struct {
	ID                int
	FirstName         string
	LastName          string
	Role              string
	DateOfTermination *string // YYYY-MM-DD
	PhotoPath         *string
	AccountNumber     *string
	Login             *string
}

// NewEmployee carries the fields settable at creation.  The id is
// assigned by the store as current-max+1 and never reused after deletion.
type NewEmployee struct {
	FirstName         string
	LastName          string
	Role              string
	Login             *string
	DateOfTermination *string
}

// FieldUpdate is one (column, value) pair of a partial update.  Services
// assemble the list from only the populated optional fields of an update
// request; omitted fields are never touched.
type FieldUpdate struct {
	Column string
	Value  any
}

type EmployeeStore interface {
	Create(ctx context.Context, e NewEmployee) (int, error)
	Get(ctx context.Context, id int) (EmployeeRecord, bool, error)
	List(ctx context.Context) ([]EmployeeRecord, error)

	// UpdateFields applies exactly the given pairs.  An empty list is a
	// no-op, not an error.  Returns rows affected.
	UpdateFields(ctx context.Context, id int, fields []FieldUpdate) (int64, error)

	// Delete returns rows affected so callers can distinguish a missing
	// employee from a successful delete.
	Delete(ctx context.Context, id int) (int64, error)

	// Embedding returns the stored blob for an employee.  found=false
	// means the employee row does not exist; an empty blob with
	// found=true means the employee exists but is unenrolled.
	Embedding(ctx context.Context, id int) ([]byte, bool, error)

	// SetFaceData updates the embedding blob and photo path together:
	// both change or neither does.
	SetFaceData(ctx context.Context, id int, blob []byte, photoPath string) error
}
