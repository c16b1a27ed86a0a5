package service

import (
	"context"
	"errors"
	"fmt"
	"log"

	"facegate/internal/facegate/embedder"
	"facegate/internal/facegate/embedding"
	"facegate/internal/facegate/photostore"
	"facegate/internal/facegate/store"
)

// Decision reasons surfaced to stations.
const (
	ReasonFaceMatched      = "face_matched"
	ReasonMockMode         = "mock_mode_no_model"
	ReasonEmployeeNotFound = "employee_not_found"
	ReasonNoFaceData       = "no_face_data_registered"
	ReasonFaceMismatched   = "face_mismatched"
)

var (
	// ErrDatabaseUnavailable marks a persistence failure during
	// verification.  Infrastructure, never an access decision.
	ErrDatabaseUnavailable = errors.New("database unavailable")

	// ErrFaceProcessing marks a capture or inference failure during
	// verification.  Also infrastructure, never a denial.
	ErrFaceProcessing = errors.New("face processing error")

	ErrInvalidEmployeeID = errors.New("employee_id is required")
)

// Decision is the outcome of a verification: either a grant or a denial
// with a diagnosable reason.  Similarity is set only when an embedding
// comparison actually ran.
type Decision struct {
	Granted    bool
	Reason     string
	Similarity *float32
}

// VerificationConfig carries the policy knobs for the engine.
type VerificationConfig struct {
	// Threshold is the exclusive minimum cosine similarity for a grant.
	// Single source of truth; legacy deployments hard-coded values
	// between 0.5 and 0.95 in various places; 0.95 is the current one.
	Threshold float32

	// MockMode makes every verification succeed without inference.
	// Intended for environments with no inference backend (tests,
	// demos).  Fail-open and security-relevant: never enable it on a
	// door that matters.
	MockMode bool
}

type VerificationService struct {
	employees store.EmployeeStore
	embedder  embedder.Embedder
	photos    photostore.Store
	archiver  *Archiver
	cfg       VerificationConfig
	logger    *log.Logger
}

func NewVerificationService(
	employees store.EmployeeStore,
	emb embedder.Embedder,
	photos photostore.Store,
	archiver *Archiver,
	cfg VerificationConfig,
	logger *log.Logger,
) *VerificationService {
	return &VerificationService{
		employees: employees,
		embedder:  emb,
		photos:    photos,
		archiver:  archiver,
		cfg:       cfg,
		logger:    logger,
	}
}

// Verify compares a captured photo against the employee's stored
// embedding and decides access.
//
// Domain denials (unknown employee, unenrolled, mismatch) come back as a
// Decision; infrastructure failures come back as errors wrapping
// ErrDatabaseUnavailable or ErrFaceProcessing.  Denials archive the
// capture for diagnosis; infrastructure failures discard it.
func (s *VerificationService) Verify(ctx context.Context, employeeID int, photo []byte) (Decision, error) {
	if employeeID <= 0 {
		return Decision{}, ErrInvalidEmployeeID
	}

	tempPath, err := s.photos.SaveCapture(ctx, photo)
	if err != nil {
		return Decision{}, fmt.Errorf("%w: save capture: %v", ErrFaceProcessing, err)
	}

	// Degraded environments fail OPEN.  This mirrors what stations
	// relied on historically, but it is a security-relevant default, so
	// it is never silent: every mock grant is logged.
	if s.cfg.MockMode || !s.embedder.Ready(ctx) {
		s.logger.Printf("MOCK verification grant for employee=%d (mock_mode=%v, embedder unreachable otherwise)",
			employeeID, s.cfg.MockMode)
		s.discard(ctx, tempPath)
		return Decision{Granted: true, Reason: ReasonMockMode}, nil
	}

	blob, found, err := s.employees.Embedding(ctx, employeeID)
	if err != nil {
		s.discard(ctx, tempPath)
		return Decision{}, fmt.Errorf("%w: fetch embedding: %v", ErrDatabaseUnavailable, err)
	}
	if !found {
		s.archiver.Archive(ctx, employeeID, ReasonEmployeeNotFound, tempPath)
		return Decision{Granted: false, Reason: ReasonEmployeeNotFound}, nil
	}
	if len(blob) == 0 {
		s.archiver.Archive(ctx, employeeID, ReasonNoFaceData, tempPath)
		return Decision{Granted: false, Reason: ReasonNoFaceData}, nil
	}

	stored, err := embedding.Decode(blob)
	if err != nil {
		// A corrupt stored blob is a data problem, not a denial.
		s.discard(ctx, tempPath)
		return Decision{}, fmt.Errorf("%w: stored embedding for employee %d: %v", ErrDatabaseUnavailable, employeeID, err)
	}

	fresh, err := s.embedder.Embed(ctx, photo)
	if err != nil {
		s.discard(ctx, tempPath)
		return Decision{}, fmt.Errorf("%w: %v", ErrFaceProcessing, err)
	}

	similarity, err := embedding.Cosine(fresh, stored)
	if err != nil {
		s.discard(ctx, tempPath)
		return Decision{}, fmt.Errorf("%w: %v", ErrFaceProcessing, err)
	}

	if embedding.Decide(similarity, s.cfg.Threshold) {
		s.discard(ctx, tempPath)
		return Decision{Granted: true, Reason: ReasonFaceMatched, Similarity: &similarity}, nil
	}

	s.archiver.Archive(ctx, employeeID, ReasonFaceMismatched, tempPath)
	return Decision{Granted: false, Reason: ReasonFaceMismatched, Similarity: &similarity}, nil
}

// discard removes a temp capture after a grant or an infrastructure
// failure.  A leaked temp file is untidy, not incorrect, so failures are
// only logged.
func (s *VerificationService) discard(ctx context.Context, path string) {
	if err := s.photos.Discard(ctx, path); err != nil {
		s.logger.Printf("temp capture discard error: %v", err)
	}
}
