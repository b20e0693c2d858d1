package job

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/hibiken/asynq"
)

// Task type names stored in Redis.
const (
	TaskCachePurge  = "cache:purge"
	TaskWordCreated = "email:word_created"
)

const (
	QueueCritical = "critical"
	QueueDefault  = "default"
	QueueLow      = "low"
)

// CachePurgePayload lists the cache key patterns to delete.
type CachePurgePayload struct {
	Patterns []string `json:"patterns"`
}

// WordCreatedPayload describes the word the editors are told about.
type WordCreatedPayload struct {
	WordID     string `json:"word_id"`
	Word       string `json:"word"`
	WordClass  string `json:"word_class"`
	Definition string `json:"definition"`
	Examples   int    `json:"examples"`
}

// NewCachePurgeTask builds a purge task on the critical queue.
func NewCachePurgeTask(patterns ...string) (*asynq.Task, error) {
	payload, err := json.Marshal(CachePurgePayload{Patterns: patterns})
	if err != nil {
		return nil, err
	}

	return asynq.NewTask(
		TaskCachePurge,
		payload,
		asynq.MaxRetry(5),
		asynq.Queue(QueueCritical),
		asynq.Timeout(30*time.Second),
	), nil
}

// NewWordCreatedTask builds the editor notification task.
func NewWordCreatedTask(p WordCreatedPayload) (*asynq.Task, error) {
	payload, err := json.Marshal(p)
	if err != nil {
		return nil, err
	}

	return asynq.NewTask(
		TaskWordCreated,
		payload,
		asynq.MaxRetry(3),
		asynq.Queue(QueueLow),
		asynq.Timeout(30*time.Second),
	), nil
}

// EnqueueCachePurge schedules the deletion of every key matching patterns.
func (j *JobService) EnqueueCachePurge(ctx context.Context, patterns ...string) error {
	task, err := NewCachePurgeTask(patterns...)
	if err != nil {
		return fmt.Errorf("failed to build cache purge task: %w", err)
	}

	info, err := j.Client.EnqueueContext(ctx, task)
	if err != nil {
		return fmt.Errorf("failed to enqueue cache purge: %w", err)
	}

	j.logger.Debug().Str("task_id", info.ID).Strs("patterns", patterns).Msg("cache purge enqueued")
	return nil
}

// EnqueueWordCreated schedules the editor notification. It is a no-op when
// no editor address is configured.
func (j *JobService) EnqueueWordCreated(ctx context.Context, p WordCreatedPayload) error {
	if len(j.editors) == 0 {
		return nil
	}

	task, err := NewWordCreatedTask(p)
	if err != nil {
		return fmt.Errorf("failed to build word created task: %w", err)
	}

	if _, err := j.Client.EnqueueContext(ctx, task); err != nil {
		return fmt.Errorf("failed to enqueue word created notification: %w", err)
	}
	return nil
}
