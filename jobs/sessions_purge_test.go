package jobs

import (
	"context"
	"errors"
	"testing"
	"time"
)

type stubStore struct {
	purged int64
	err    error
	calls  int
	seen   time.Time
}

func (s *stubStore) DeleteExpiredSessions(ctx context.Context, now time.Time) (int64, error) {
	s.calls++
	s.seen = now
	return s.purged, s.err
}

func TestSessionsPurgeHandle(t *testing.T) {
	store := &stubStore{purged: 4}
	job := NewSessionsPurgeJob(store, nil)

	if err := job.Handle(context.Background(), NewSessionsPurgeTask()); err != nil {
		t.Fatalf("handle: %v", err)
	}
	if store.calls != 1 {
		t.Fatalf("expected one purge call, got %d", store.calls)
	}
	if store.seen.IsZero() {
		t.Fatal("expected a cutoff timestamp")
	}
}

func TestSessionsPurgePropagatesStoreError(t *testing.T) {
	store := &stubStore{err: errors.New("connection refused")}
	job := NewSessionsPurgeJob(store, nil)

	if err := job.Handle(context.Background(), NewSessionsPurgeTask()); err == nil {
		t.Fatal("expected error so asynq retries the task")
	}
}
