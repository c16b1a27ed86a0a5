package service_test

import (
	"context"
	"fmt"
	"io"
	"log"
	"path/filepath"
	"sync"
)

func testLogger() *log.Logger {
	return log.New(io.Discard, "", 0)
}

// stubEmbedder returns a fixed vector for every image.
type stubEmbedder struct {
	vec      []float32
	embedErr error
	down     bool
}

func (s *stubEmbedder) Embed(_ context.Context, _ []byte) ([]float32, error) {
	if s.embedErr != nil {
		return nil, s.embedErr
	}
	out := make([]float32, len(s.vec))
	copy(out, s.vec)
	return out, nil
}

func (s *stubEmbedder) Ready(_ context.Context) bool {
	return !s.down
}

// photoDir is an in-memory photostore.Store that records every capture,
// archive and discard so tests can assert on photo lifecycle.
type photoDir struct {
	mu          sync.Mutex
	nextCapture int
	live        map[string]bool
	enrollments map[int]string
	archived    []string
	discarded   []string

	captureErr error
	archiveErr error
	enrollErr  error
}

func newPhotoDir() *photoDir {
	return &photoDir{live: make(map[string]bool), enrollments: make(map[int]string)}
}

func (p *photoDir) SaveCapture(_ context.Context, _ []byte) (string, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.captureErr != nil {
		return "", p.captureErr
	}
	p.nextCapture++
	path := fmt.Sprintf("tmp/capture-%d.jpg", p.nextCapture)
	p.live[path] = true
	return path, nil
}

func (p *photoDir) SaveEnrollment(_ context.Context, employeeID int, _ []byte) (string, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.enrollErr != nil {
		return "", p.enrollErr
	}
	path := fmt.Sprintf("employees/%d.jpg", employeeID)
	p.enrollments[employeeID] = path
	return path, nil
}

func (p *photoDir) Archive(_ context.Context, tempPath string) (string, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.archiveErr != nil {
		return "", p.archiveErr
	}
	delete(p.live, tempPath)
	dst := filepath.Join("failed_attempts", filepath.Base(tempPath))
	p.archived = append(p.archived, dst)
	return dst, nil
}

func (p *photoDir) Discard(_ context.Context, path string) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	delete(p.live, path)
	p.discarded = append(p.discarded, path)
	return nil
}

func (p *photoDir) liveCount() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.live)
}
