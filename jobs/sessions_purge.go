package jobs

import (
	"context"
	"log/slog"
	"time"

	"github.com/hibiken/asynq"
)

// SessionStore is the slice of the auth repository the purge job needs.
type SessionStore interface {
	DeleteExpiredSessions(ctx context.Context, now time.Time) (int64, error)
}

// SessionsPurgeJob removes expired session rows. This is housekeeping only:
// expired sessions already fail to resolve at read time, the job just keeps
// the table from accumulating dead rows.
type SessionsPurgeJob struct {
	store  SessionStore
	logger *slog.Logger
}

// NewSessionsPurgeJob constructs the job.
func NewSessionsPurgeJob(store SessionStore, logger *slog.Logger) *SessionsPurgeJob {
	if logger == nil {
		logger = slog.Default()
	}
	return &SessionsPurgeJob{store: store, logger: logger}
}

// Handle processes TaskTypeSessionsPurge tasks.
func (j *SessionsPurgeJob) Handle(ctx context.Context, t *asynq.Task) error {
	purged, err := j.store.DeleteExpiredSessions(ctx, time.Now().UTC())
	if err != nil {
		j.logger.Error("purge expired sessions", slog.Any("error", err))
		return err
	}
	if purged > 0 {
		j.logger.Info("purged expired sessions", slog.Int64("count", purged))
	}
	return nil
}
