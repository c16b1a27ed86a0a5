package service_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"facegate/internal/facegate/embedding"
	"facegate/internal/facegate/service"
	"facegate/internal/facegate/store"
	"facegate/internal/facegate/store/memory"
)

func TestEnroll_StoresEmbeddingAndPhotoPath(t *testing.T) {
	employees := memory.NewEmployeeStore()
	employees.Seed(store.EmployeeRecord{ID: 3, FirstName: "Ada", LastName: "Kovac", Role: "operator"}, []byte{})
	emb := &stubEmbedder{vec: []float32{0.5, 0.5, 0.5}}
	photos := newPhotoDir()
	svc := service.NewEnrollmentService(employees, emb, photos, false, testLogger())

	path, err := svc.Enroll(context.Background(), 3, []byte("jpeg"))
	if err != nil {
		t.Fatalf("Enroll: %v", err)
	}
	if path != "employees/3.jpg" {
		t.Errorf("unexpected photo path %q", path)
	}

	blob, found, err := employees.Embedding(context.Background(), 3)
	if err != nil || !found {
		t.Fatalf("Embedding: found=%v err=%v", found, err)
	}
	if !bytes.Equal(blob, embedding.Encode(emb.vec)) {
		t.Error("stored blob does not round-trip the embedder's vector")
	}

	rec, _, _ := employees.Get(context.Background(), 3)
	if rec.PhotoPath == nil || *rec.PhotoPath != path {
		t.Errorf("photo path not persisted alongside the blob: %+v", rec.PhotoPath)
	}
}

func TestEnroll_MockMode_StoresEmptyBlob(t *testing.T) {
	employees := memory.NewEmployeeStore()
	employees.Seed(store.EmployeeRecord{ID: 3, FirstName: "Ada", LastName: "Kovac", Role: "operator"}, []byte{})
	emb := &stubEmbedder{embedErr: errors.New("must not be called")}
	svc := service.NewEnrollmentService(employees, emb, newPhotoDir(), true, testLogger())

	if _, err := svc.Enroll(context.Background(), 3, []byte("jpeg")); err != nil {
		t.Fatalf("Enroll: %v", err)
	}

	blob, _, err := employees.Embedding(context.Background(), 3)
	if err != nil {
		t.Fatalf("Embedding: %v", err)
	}
	if len(blob) != 0 {
		t.Errorf("mock enrollment must store an empty blob, got %d bytes", len(blob))
	}
}

func TestEnroll_EmbedFailure_LeavesFaceDataUntouched(t *testing.T) {
	previous := embedding.Encode([]float32{1, 0, 0})
	employees := memory.NewEmployeeStore()
	employees.Seed(store.EmployeeRecord{ID: 3, FirstName: "Ada", LastName: "Kovac", Role: "operator"}, previous)
	emb := &stubEmbedder{embedErr: errors.New("model exploded")}
	svc := service.NewEnrollmentService(employees, emb, newPhotoDir(), false, testLogger())

	_, err := svc.Enroll(context.Background(), 3, []byte("jpeg"))
	if err == nil {
		t.Fatal("expected embed failure to surface")
	}

	blob, _, _ := employees.Embedding(context.Background(), 3)
	if !bytes.Equal(blob, previous) {
		t.Error("failed enrollment must not disturb the previous embedding")
	}
}

func TestEnroll_ReplacesPreviousEnrollment(t *testing.T) {
	employees := memory.NewEmployeeStore()
	employees.Seed(store.EmployeeRecord{ID: 3, FirstName: "Ada", LastName: "Kovac", Role: "operator"},
		embedding.Encode([]float32{1, 0, 0}))
	emb := &stubEmbedder{vec: []float32{0, 0, 1}}
	svc := service.NewEnrollmentService(employees, emb, newPhotoDir(), false, testLogger())

	if _, err := svc.Enroll(context.Background(), 3, []byte("new jpeg")); err != nil {
		t.Fatalf("Enroll: %v", err)
	}

	blob, _, _ := employees.Embedding(context.Background(), 3)
	if !bytes.Equal(blob, embedding.Encode([]float32{0, 0, 1})) {
		t.Error("re-enrollment did not replace the stored embedding")
	}
}

func TestEnroll_UnknownEmployee_Errors(t *testing.T) {
	svc := service.NewEnrollmentService(memory.NewEmployeeStore(), &stubEmbedder{vec: []float32{1}},
		newPhotoDir(), false, testLogger())

	if _, err := svc.Enroll(context.Background(), 99, []byte("jpeg")); err == nil {
		t.Fatal("expected error enrolling an unknown employee")
	}
}

func TestEnroll_InvalidEmployeeID_Rejected(t *testing.T) {
	svc := service.NewEnrollmentService(memory.NewEmployeeStore(), &stubEmbedder{vec: []float32{1}},
		newPhotoDir(), false, testLogger())

	_, err := svc.Enroll(context.Background(), -1, []byte("jpeg"))
	if !errors.Is(err, service.ErrInvalidEmployeeID) {
		t.Fatalf("expected ErrInvalidEmployeeID, got %v", err)
	}
}
