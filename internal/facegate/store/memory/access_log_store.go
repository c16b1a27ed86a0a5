package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"facegate/internal/facegate/store"
)

// AccessLogStore is an in-memory append-only access log.
type AccessLogStore struct {
	mu     sync.Mutex
	nextID int64
	logs   []store.AccessLogRecord

	// Err, when set, is returned by every method.  Test hook for
	// simulating an unavailable database.
	Err error
}

func NewAccessLogStore() *AccessLogStore {
	return &AccessLogStore{nextID: 1}
}

func (s *AccessLogStore) Insert(_ context.Context, rec store.AccessLogRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return s.Err
	}

	if rec.Timestamp.IsZero() {
		rec.Timestamp = time.Now().UTC()
	}
	rec.ID = s.nextID
	s.nextID++
	s.logs = append(s.logs, rec)
	return nil
}

func (s *AccessLogStore) List(_ context.Context) ([]store.AccessLogRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}

	out := make([]store.AccessLogRecord, len(s.logs))
	copy(out, s.logs)
	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].Timestamp.Equal(out[j].Timestamp) {
			return out[i].Timestamp.After(out[j].Timestamp)
		}
		return out[i].ID > out[j].ID
	})
	return out, nil
}
