package service

import (
	"context"
	"fmt"
	"log"

	"facegate/internal/facegate/embedder"
	"facegate/internal/facegate/embedding"
	"facegate/internal/facegate/photostore"
	"facegate/internal/facegate/store"
)

// EnrollmentService associates an employee with a portrait photo and its
// computed embedding.  Re-enrollment replaces both wholesale.
type EnrollmentService struct {
	employees store.EmployeeStore
	embedder  embedder.Embedder
	photos    photostore.Store
	mockMode  bool
	logger    *log.Logger
}

func NewEnrollmentService(
	employees store.EmployeeStore,
	emb embedder.Embedder,
	photos photostore.Store,
	mockMode bool,
	logger *log.Logger,
) *EnrollmentService {
	return &EnrollmentService{
		employees: employees,
		embedder:  emb,
		photos:    photos,
		mockMode:  mockMode,
		logger:    logger,
	}
}

// Enroll writes the portrait to the employee's stable path, computes the
// embedding, and persists blob+path as one update.  The store write only
// happens after a successful embedding, so a half-enrolled state (photo
// but no blob) is never observable to verification.
//
// In mock mode the inference step is skipped and an empty blob is stored;
// the employee stays effectively unenrolled for real verification.
func (s *EnrollmentService) Enroll(ctx context.Context, employeeID int, photo []byte) (string, error) {
	if employeeID <= 0 {
		return "", ErrInvalidEmployeeID
	}

	photoPath, err := s.photos.SaveEnrollment(ctx, employeeID, photo)
	if err != nil {
		return "", fmt.Errorf("save enrollment photo: %w", err)
	}

	if s.mockMode {
		s.logger.Printf("MOCK enrollment for employee=%d: storing empty embedding", employeeID)
		if err := s.employees.SetFaceData(ctx, employeeID, []byte{}, photoPath); err != nil {
			return "", fmt.Errorf("store face data: %w", err)
		}
		return photoPath, nil
	}

	vec, err := s.embedder.Embed(ctx, photo)
	if err != nil {
		// Surfaces ErrModelUnavailable / ErrInferenceFailed unchanged
		// so the boundary can tell them apart.
		return "", err
	}

	if err := s.employees.SetFaceData(ctx, employeeID, embedding.Encode(vec), photoPath); err != nil {
		return "", fmt.Errorf("store face data: %w", err)
	}

	return photoPath, nil
}
