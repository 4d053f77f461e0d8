package jobs

import "github.com/hibiken/asynq"

const (
	// QueueDefault is the default queue name for background jobs.
	QueueDefault = "default"
	// TaskTypeSessionsPurge is the task type for expired-session cleanup.
	TaskTypeSessionsPurge = "sessions:purge"
)

// NewSessionsPurgeTask constructs an Asynq task. The task carries no payload;
// the handler always purges everything past its expiry at execution time.
func NewSessionsPurgeTask() *asynq.Task {
	return asynq.NewTask(TaskTypeSessionsPurge, nil)
}
