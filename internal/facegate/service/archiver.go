package service

import (
	"context"
	"log"
	"strconv"
	"time"

	"facegate/internal/facegate/errorlog"
	"facegate/internal/facegate/photostore"
)

// Archiver retains the capture and reason for every diagnosable denial so
// operators can review who was turned away and why.
type Archiver struct {
	photos photostore.Store
	errors errorlog.Logger
	logger *log.Logger
}

func NewArchiver(photos photostore.Store, errors errorlog.Logger, logger *log.Logger) *Archiver {
	return &Archiver{photos: photos, errors: errors, logger: logger}
}

// Archive moves the temp capture into the failed-attempts area and writes
// an error-log entry pointing at it.  Best-effort: archival exists for
// diagnosability, and a diagnosability failure must never mask or alter
// the access decision already made, so failures only reach the operator
// log.
func (a *Archiver) Archive(ctx context.Context, employeeID int, reason, tempPhotoPath string) {
	archived, err := a.photos.Archive(ctx, tempPhotoPath)
	if err != nil {
		a.logger.Printf("failed attempt archive error (employee=%d reason=%s): %v", employeeID, reason, err)
		return
	}

	if err := a.errors.Log(errorlog.Entry{
		Time:        time.Now(),
		Employee:    strconv.Itoa(employeeID),
		Description: reason,
		ImagePath:   archived,
	}); err != nil {
		a.logger.Printf("failed attempt log error (employee=%d reason=%s): %v", employeeID, reason, err)
	}
}
