// Package photostore owns the on-disk layout for captured photos:
// stable enrollment portraits, per-request temp captures, and the
// failed-attempts archive.  Paths are opaque strings to everything above
// this package.
package photostore

import (
	"context"
)

type Store interface {
	// SaveCapture writes a freshly captured photo to a unique temporary
	// path and returns that path.  Each request gets its own file, so
	// concurrent verifications never collide.
	SaveCapture(ctx context.Context, data []byte) (string, error)

	// SaveEnrollment writes the enrollment portrait to the employee's
	// stable path, overwriting any previous portrait.  Last write wins.
	SaveEnrollment(ctx context.Context, employeeID int, data []byte) (string, error)

	// Archive moves a temp capture into the failed-attempts area, named
	// after the temp file itself, and returns the archived path.  Falls
	// back to copy-then-delete when a rename crosses filesystems.
	Archive(ctx context.Context, tempPath string) (string, error)

	// Discard removes a temp capture.  Removing a path that is already
	// gone is not an error.
	Discard(ctx context.Context, path string) error
}
