package photostore

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

const (
	employeesDir = "employees"
	failedDir    = "failed_attempts"
	tmpDir       = "tmp"
)

// Disk is the filesystem-backed Store, rooted at a single upload
// directory:
//
//	<root>/employees/<id>.jpg        stable enrollment portraits
//	<root>/tmp/<uuid>.jpg            per-request captures
//	<root>/failed_attempts/<name>    archived denials
type Disk struct {
	root string
}

func NewDisk(root string) (*Disk, error) {
	if root == "" {
		root = "./uploads"
	}
	for _, d := range []string{employeesDir, failedDir, tmpDir} {
		if err := os.MkdirAll(filepath.Join(root, d), 0o755); err != nil {
			return nil, fmt.Errorf("mkdir %s: %w", d, err)
		}
	}
	return &Disk{root: root}, nil
}

func (d *Disk) SaveCapture(_ context.Context, data []byte) (string, error) {
	path := filepath.Join(d.root, tmpDir, uuid.NewString()+".jpg")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("write capture: %w", err)
	}
	return path, nil
}

func (d *Disk) SaveEnrollment(_ context.Context, employeeID int, data []byte) (string, error) {
	path := filepath.Join(d.root, employeesDir, fmt.Sprintf("%d.jpg", employeeID))
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("write enrollment photo: %w", err)
	}
	return path, nil
}

func (d *Disk) Archive(_ context.Context, tempPath string) (string, error) {
	dst := filepath.Join(d.root, failedDir, filepath.Base(tempPath))

	if err := os.Rename(tempPath, dst); err == nil {
		return dst, nil
	}

	// Rename failed, likely a cross-device move.  Copy, then delete.
	if err := copyFile(tempPath, dst); err != nil {
		return "", fmt.Errorf("archive copy: %w", err)
	}
	_ = os.Remove(tempPath)
	return dst, nil
}

func (d *Disk) Discard(_ context.Context, path string) error {
	err := os.Remove(path)
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("discard capture: %w", err)
	}
	return nil
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer out.Close()

	if _, err := io.Copy(out, in); err != nil {
		return err
	}
	return out.Close()
}
