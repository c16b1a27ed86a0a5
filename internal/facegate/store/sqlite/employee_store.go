package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	dbpkg "facegate/internal/db"
	"facegate/internal/facegate/store"
)

// updatableColumns is the whitelist for partial updates.  Anything else in
// a FieldUpdate list is a programming error and is rejected.
var updatableColumns = map[string]struct{}{
	"first_name":          {},
	"last_name":           {},
	"role":                {},
	"login":               {},
	"date_of_termination": {},
	"account_number":      {},
	"password_hash":       {},
}

type EmployeeStore struct {
	db     *sql.DB
	writer *dbpkg.Worker
}

func NewEmployeeStore(db *sql.DB, writer *dbpkg.Worker) *EmployeeStore {
	return &EmployeeStore{db: db, writer: writer}
}

func (s *EmployeeStore) Create(ctx context.Context, e store.NewEmployee) (int, error) {
	now := time.Now().UTC().UnixMilli()

	var id int64
	err := s.writer.Do(ctx, func(ctx context.Context, tx *sql.Tx) error {
		// AUTOINCREMENT assigns current-max+1 and never reuses an id
		// after deletion.
		res, err := tx.ExecContext(ctx, `
INSERT INTO employees(first_name, last_name, role, login, date_of_termination, created_at_ms, updated_at_ms)
VALUES (?, ?, ?, ?, ?, ?, ?);
`, e.FirstName, e.LastName, e.Role, nullString(e.Login), nullString(e.DateOfTermination), now, now)
		if err != nil {
			return fmt.Errorf("Create insert: %w", err)
		}
		id, err = res.LastInsertId()
		if err != nil {
			return fmt.Errorf("Create last insert id: %w", err)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return int(id), nil
}

func (s *EmployeeStore) Get(ctx context.Context, id int) (store.EmployeeRecord, bool, error) {
	var (
		rec         store.EmployeeRecord
		termination sql.NullString
		photoPath   sql.NullString
		accountNo   sql.NullString
		login       sql.NullString
	)

	err := s.db.QueryRowContext(ctx, `
SELECT id_person, first_name, last_name, role, date_of_termination,
       photo_path, account_number, login
FROM employees
WHERE id_person = ?;
`, id).Scan(&rec.ID, &rec.FirstName, &rec.LastName, &rec.Role,
		&termination, &photoPath, &accountNo, &login)

	if err == sql.ErrNoRows {
		return store.EmployeeRecord{}, false, nil
	}
	if err != nil {
		return store.EmployeeRecord{}, false, fmt.Errorf("Get query: %w", err)
	}

	rec.DateOfTermination = stringPtr(termination)
	rec.PhotoPath = stringPtr(photoPath)
	rec.AccountNumber = stringPtr(accountNo)
	rec.Login = stringPtr(login)
	return rec, true, nil
}

func (s *EmployeeStore) List(ctx context.Context) ([]store.EmployeeRecord, error) {
	rows, err := s.db.QueryContext(ctx, `
SELECT id_person, first_name, last_name, role, date_of_termination,
       photo_path, account_number, login
FROM employees
ORDER BY id_person;
`)
	if err != nil {
		return nil, fmt.Errorf("List query: %w", err)
	}
	defer rows.Close()

	var out []store.EmployeeRecord
	for rows.Next() {
		var (
			rec         store.EmployeeRecord
			termination sql.NullString
			photoPath   sql.NullString
			accountNo   sql.NullString
			login       sql.NullString
		)
		if err := rows.Scan(&rec.ID, &rec.FirstName, &rec.LastName, &rec.Role,
			&termination, &photoPath, &accountNo, &login); err != nil {
			return nil, fmt.Errorf("List scan: %w", err)
		}
		rec.DateOfTermination = stringPtr(termination)
		rec.PhotoPath = stringPtr(photoPath)
		rec.AccountNumber = stringPtr(accountNo)
		rec.Login = stringPtr(login)
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("List rows: %w", err)
	}
	return out, nil
}

func (s *EmployeeStore) UpdateFields(ctx context.Context, id int, fields []store.FieldUpdate) (int64, error) {
	if len(fields) == 0 {
		return 0, nil
	}

	// Generate a parameterized UPDATE limited to exactly the supplied
	// columns.
	query := "UPDATE employees SET "
	args := make([]any, 0, len(fields)+2)
	for i, f := range fields {
		if _, ok := updatableColumns[f.Column]; !ok {
			return 0, fmt.Errorf("UpdateFields: column %q is not updatable", f.Column)
		}
		if i > 0 {
			query += ", "
		}
		query += f.Column + " = ?"
		args = append(args, f.Value)
	}
	query += ", updated_at_ms = ? WHERE id_person = ?;"
	args = append(args, time.Now().UTC().UnixMilli(), id)

	var affected int64
	err := s.writer.Do(ctx, func(ctx context.Context, tx *sql.Tx) error {
		res, err := tx.ExecContext(ctx, query, args...)
		if err != nil {
			return fmt.Errorf("UpdateFields exec: %w", err)
		}
		affected, _ = res.RowsAffected()
		return nil
	})
	return affected, err
}

func (s *EmployeeStore) Delete(ctx context.Context, id int) (int64, error) {
	var affected int64
	err := s.writer.Do(ctx, func(ctx context.Context, tx *sql.Tx) error {
		res, err := tx.ExecContext(ctx, `DELETE FROM employees WHERE id_person = ?;`, id)
		if err != nil {
			return fmt.Errorf("Delete exec: %w", err)
		}
		affected, _ = res.RowsAffected()
		return nil
	})
	return affected, err
}

func (s *EmployeeStore) Embedding(ctx context.Context, id int) ([]byte, bool, error) {
	var blob []byte
	err := s.db.QueryRowContext(ctx,
		`SELECT face_embedding FROM employees WHERE id_person = ?;`, id,
	).Scan(&blob)
	if err == sql.ErrNoRows {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("Embedding query: %w", err)
	}
	return blob, true, nil
}

func (s *EmployeeStore) SetFaceData(ctx context.Context, id int, blob []byte, photoPath string) error {
	now := time.Now().UTC().UnixMilli()

	// Both columns change in one statement so Verify can never observe a
	// photo without its matching blob.
	return s.writer.Do(ctx, func(ctx context.Context, tx *sql.Tx) error {
		if blob == nil {
			blob = []byte{}
		}
		res, err := tx.ExecContext(ctx, `
UPDATE employees
SET face_embedding = ?,
    photo_path     = ?,
    updated_at_ms  = ?
WHERE id_person = ?;
`, blob, photoPath, now, id)
		if err != nil {
			return fmt.Errorf("SetFaceData exec: %w", err)
		}
		affected, _ := res.RowsAffected()
		if affected == 0 {
			return fmt.Errorf("SetFaceData: employee %d not found", id)
		}
		return nil
	})
}

func nullString(s *string) any {
	if s == nil {
		return nil
	}
	return *s
}

func stringPtr(ns sql.NullString) *string {
	if !ns.Valid {
		return nil
	}
	v := ns.String
	return &v
}
