package sqlite_test

import (
	"context"
	"database/sql"
	"testing"

	"facegate/internal/facegate/store"
	sqlitestore "facegate/internal/facegate/store/sqlite"
)

// ═══════════════════════════════════════════════════════════════════════════
// Create: id assignment
// ═══════════════════════════════════════════════════════════════════════════

func TestEmployeeStore_Create_AssignsIncrementingIDs(t *testing.T) {
	conn := openTestDB(t)
	w := newTestWriter(t, conn)
	es := sqlitestore.NewEmployeeStore(conn, w)
	ctx := context.Background()

	first, err := es.Create(ctx, store.NewEmployee{FirstName: "Ada", LastName: "Lovelace", Role: "engineer"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	second, err := es.Create(ctx, store.NewEmployee{FirstName: "Grace", LastName: "Hopper", Role: "engineer"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if second != first+1 {
		t.Errorf("expected id %d after %d, got %d", first+1, first, second)
	}
}

func TestEmployeeStore_Create_IDsNotReusedAfterDelete(t *testing.T) {
	conn := openTestDB(t)
	w := newTestWriter(t, conn)
	es := sqlitestore.NewEmployeeStore(conn, w)
	ctx := context.Background()

	id1, err := es.Create(ctx, store.NewEmployee{FirstName: "Ada", LastName: "Lovelace", Role: "engineer"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if _, err := es.Delete(ctx, id1); err != nil {
		t.Fatalf("Delete: %v", err)
	}

	id2, err := es.Create(ctx, store.NewEmployee{FirstName: "Grace", LastName: "Hopper", Role: "engineer"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if id2 <= id1 {
		t.Errorf("expected a fresh id greater than %d, got %d", id1, id2)
	}
}

// ═══════════════════════════════════════════════════════════════════════════
// Get / List
// ═══════════════════════════════════════════════════════════════════════════

func TestEmployeeStore_Get_NotFound(t *testing.T) {
	conn := openTestDB(t)
	w := newTestWriter(t, conn)
	es := sqlitestore.NewEmployeeStore(conn, w)

	_, found, err := es.Get(context.Background(), 999)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if found {
		t.Error("expected found=false for missing employee")
	}
}

func TestEmployeeStore_Get_ReturnsRow(t *testing.T) {
	conn := openTestDB(t)
	w := newTestWriter(t, conn)
	es := sqlitestore.NewEmployeeStore(conn, w)
	id := seedEmployee(t, conn, "Ada", "Lovelace")

	rec, found, err := es.Get(context.Background(), id)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if !found {
		t.Fatal("expected found=true")
	}
	if rec.FirstName != "Ada" || rec.LastName != "Lovelace" {
		t.Errorf("unexpected record: %+v", rec)
	}
	if rec.PhotoPath != nil {
		t.Errorf("expected nil photo_path, got %q", *rec.PhotoPath)
	}
}

// ═══════════════════════════════════════════════════════════════════════════
// UpdateFields: partial update touches only supplied columns
// ═══════════════════════════════════════════════════════════════════════════

func TestEmployeeStore_UpdateFields_OnlySuppliedColumnsChange(t *testing.T) {
	conn := openTestDB(t)
	w := newTestWriter(t, conn)
	es := sqlitestore.NewEmployeeStore(conn, w)
	ctx := context.Background()
	id := seedEmployee(t, conn, "Ada", "Lovelace")

	affected, err := es.UpdateFields(ctx, id, []store.FieldUpdate{
		{Column: "role", Value: "manager"},
	})
	if err != nil {
		t.Fatalf("UpdateFields: %v", err)
	}
	if affected != 1 {
		t.Fatalf("expected 1 row affected, got %d", affected)
	}

	rec, _, err := es.Get(ctx, id)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if rec.Role != "manager" {
		t.Errorf("expected role=manager, got %q", rec.Role)
	}
	if rec.FirstName != "Ada" || rec.LastName != "Lovelace" {
		t.Errorf("untouched columns changed: %+v", rec)
	}
}

func TestEmployeeStore_UpdateFields_EmptyListIsNoOp(t *testing.T) {
	conn := openTestDB(t)
	w := newTestWriter(t, conn)
	es := sqlitestore.NewEmployeeStore(conn, w)
	id := seedEmployee(t, conn, "Ada", "Lovelace")

	affected, err := es.UpdateFields(context.Background(), id, nil)
	if err != nil {
		t.Fatalf("UpdateFields: %v", err)
	}
	if affected != 0 {
		t.Errorf("expected 0 rows affected for empty update, got %d", affected)
	}
}

func TestEmployeeStore_UpdateFields_RejectsUnknownColumn(t *testing.T) {
	conn := openTestDB(t)
	w := newTestWriter(t, conn)
	es := sqlitestore.NewEmployeeStore(conn, w)
	id := seedEmployee(t, conn, "Ada", "Lovelace")

	_, err := es.UpdateFields(context.Background(), id, []store.FieldUpdate{
		{Column: "face_embedding", Value: []byte{1, 2, 3, 4}},
	})
	if err == nil {
		t.Fatal("expected error for non-updatable column")
	}
}

// ═══════════════════════════════════════════════════════════════════════════
// Embedding / SetFaceData
// ═══════════════════════════════════════════════════════════════════════════

func TestEmployeeStore_Embedding_MissingEmployee(t *testing.T) {
	conn := openTestDB(t)
	w := newTestWriter(t, conn)
	es := sqlitestore.NewEmployeeStore(conn, w)

	_, found, err := es.Embedding(context.Background(), 42)
	if err != nil {
		t.Fatalf("Embedding: %v", err)
	}
	if found {
		t.Error("expected found=false for missing employee")
	}
}

func TestEmployeeStore_Embedding_EmptyBlobForNewEmployee(t *testing.T) {
	conn := openTestDB(t)
	w := newTestWriter(t, conn)
	es := sqlitestore.NewEmployeeStore(conn, w)
	id := seedEmployee(t, conn, "Ada", "Lovelace")

	blob, found, err := es.Embedding(context.Background(), id)
	if err != nil {
		t.Fatalf("Embedding: %v", err)
	}
	if !found {
		t.Fatal("expected found=true")
	}
	if len(blob) != 0 {
		t.Errorf("expected empty blob for unenrolled employee, got %d bytes", len(blob))
	}
}

func TestEmployeeStore_SetFaceData_UpdatesBlobAndPathTogether(t *testing.T) {
	conn := openTestDB(t)
	w := newTestWriter(t, conn)
	es := sqlitestore.NewEmployeeStore(conn, w)
	ctx := context.Background()
	id := seedEmployee(t, conn, "Ada", "Lovelace")

	blob := []byte{0x00, 0x00, 0x80, 0x3F} // float32(1.0)
	if err := es.SetFaceData(ctx, id, blob, "uploads/employees/1.jpg"); err != nil {
		t.Fatalf("SetFaceData: %v", err)
	}

	got, found, err := es.Embedding(ctx, id)
	if err != nil || !found {
		t.Fatalf("Embedding: found=%v err=%v", found, err)
	}
	if len(got) != 4 || got[3] != 0x3F {
		t.Errorf("unexpected blob: %v", got)
	}

	var photoPath sql.NullString
	if err := conn.QueryRowContext(ctx,
		`SELECT photo_path FROM employees WHERE id_person = ?;`, id,
	).Scan(&photoPath); err != nil {
		t.Fatalf("query photo_path: %v", err)
	}
	if !photoPath.Valid || photoPath.String != "uploads/employees/1.jpg" {
		t.Errorf("expected photo_path set, got %v", photoPath)
	}
}

func TestEmployeeStore_SetFaceData_MissingEmployeeFails(t *testing.T) {
	conn := openTestDB(t)
	w := newTestWriter(t, conn)
	es := sqlitestore.NewEmployeeStore(conn, w)

	err := es.SetFaceData(context.Background(), 404, []byte{1, 2, 3, 4}, "x.jpg")
	if err == nil {
		t.Fatal("expected error for missing employee")
	}
}
