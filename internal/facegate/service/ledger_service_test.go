package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"facegate/internal/facegate/service"
	"facegate/internal/facegate/store"
	"facegate/internal/facegate/store/memory"
)

func TestCheckPresence_KnownAndUnknown(t *testing.T) {
	employees := memory.NewEmployeeStore()
	employees.Seed(store.EmployeeRecord{ID: 5, FirstName: "Ada", LastName: "Kovac", Role: "operator"}, []byte{})
	svc := service.NewLedgerService(employees, memory.NewAccessLogStore())
	ctx := context.Background()

	rec, found, err := svc.CheckPresence(ctx, 5)
	if err != nil || !found {
		t.Fatalf("CheckPresence(5): found=%v err=%v", found, err)
	}
	if rec.FirstName != "Ada" {
		t.Errorf("unexpected record %+v", rec)
	}

	_, found, err = svc.CheckPresence(ctx, 6)
	if err != nil {
		t.Fatalf("CheckPresence(6): %v", err)
	}
	if found {
		t.Error("unknown id must be a negative answer, not a hit")
	}
}

func TestAcknowledge_AppendsWithDeviceTimestamp(t *testing.T) {
	logs := memory.NewAccessLogStore()
	svc := service.NewLedgerService(memory.NewEmployeeStore(), logs)
	ctx := context.Background()

	ts := time.Date(2026, 3, 1, 7, 58, 0, 0, time.UTC)
	if err := svc.Acknowledge(ctx, 5, "IN", ts); err != nil {
		t.Fatalf("Acknowledge: %v", err)
	}

	recs, err := svc.ListLogs(ctx)
	if err != nil {
		t.Fatalf("ListLogs: %v", err)
	}
	if len(recs) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(recs))
	}
	if recs[0].EmployeeID != 5 || recs[0].Direction != "IN" || !recs[0].Timestamp.Equal(ts) {
		t.Errorf("unexpected entry %+v", recs[0])
	}
}

func TestAcknowledge_DuplicateAcksBothLand(t *testing.T) {
	logs := memory.NewAccessLogStore()
	svc := service.NewLedgerService(memory.NewEmployeeStore(), logs)
	ctx := context.Background()

	ts := time.Date(2026, 3, 1, 7, 58, 0, 0, time.UTC)
	for i := 0; i < 2; i++ {
		if err := svc.Acknowledge(ctx, 5, "IN", ts); err != nil {
			t.Fatalf("Acknowledge #%d: %v", i+1, err)
		}
	}

	recs, _ := svc.ListLogs(ctx)
	if len(recs) != 2 {
		t.Fatalf("device retries are legitimate, expected 2 rows, got %d", len(recs))
	}
}

func TestAcknowledge_NoEmployeeLookup(t *testing.T) {
	// The ledger must accept acks for ids the roster no longer knows.
	employees := memory.NewEmployeeStore()
	employees.Err = errors.New("roster down")
	svc := service.NewLedgerService(employees, memory.NewAccessLogStore())

	err := svc.Acknowledge(context.Background(), 12, "OUT", time.Now().UTC())
	if err != nil {
		t.Fatalf("Acknowledge must not consult the roster: %v", err)
	}
}

func TestListLogs_NewestFirst(t *testing.T) {
	logs := memory.NewAccessLogStore()
	svc := service.NewLedgerService(memory.NewEmployeeStore(), logs)
	ctx := context.Background()

	base := time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)
	for i := 0; i < 3; i++ {
		if err := svc.Acknowledge(ctx, 5, "IN", base.Add(time.Duration(i)*time.Minute)); err != nil {
			t.Fatalf("Acknowledge: %v", err)
		}
	}

	recs, _ := svc.ListLogs(ctx)
	for i := 1; i < len(recs); i++ {
		if recs[i].Timestamp.After(recs[i-1].Timestamp) {
			t.Fatalf("entries out of order at %d: %v after %v", i, recs[i].Timestamp, recs[i-1].Timestamp)
		}
	}
}

func TestLedger_StoreFailuresWrapDatabaseError(t *testing.T) {
	employees := memory.NewEmployeeStore()
	logs := memory.NewAccessLogStore()
	logs.Err = errors.New("db gone")
	svc := service.NewLedgerService(employees, logs)
	ctx := context.Background()

	if err := svc.Acknowledge(ctx, 5, "IN", time.Now().UTC()); !errors.Is(err, service.ErrDatabaseUnavailable) {
		t.Errorf("Acknowledge: expected ErrDatabaseUnavailable, got %v", err)
	}
	if _, err := svc.ListLogs(ctx); !errors.Is(err, service.ErrDatabaseUnavailable) {
		t.Errorf("ListLogs: expected ErrDatabaseUnavailable, got %v", err)
	}

	employees.Err = errors.New("db gone")
	if _, _, err := svc.CheckPresence(ctx, 5); !errors.Is(err, service.ErrDatabaseUnavailable) {
		t.Errorf("CheckPresence: expected ErrDatabaseUnavailable, got %v", err)
	}
}
