// Package job provides background job processing using Asynq.
//
// Asynq is a Redis-backed job queue:
//   - You enqueue tasks (producer) using asynq.Client.
//   - A server runs workers that process those tasks (consumer) using asynq.Server.
//
// Writes to the dictionary enqueue a cache purge and an editor notification
// so the HTTP request does not wait on either.
package job

import (
	"context"

	"github.com/hibiken/asynq"
	"github.com/rs/zerolog"

	"github.com/deppfellow/dictionary-api/internal/config"
	"github.com/deppfellow/dictionary-api/internal/lib/email"
)

// CachePurger deletes cached search results by key pattern.
type CachePurger interface {
	Purge(ctx context.Context, patterns ...string) (int, error)
}

// Notifier delivers the editor notification for a new word.
type Notifier interface {
	SendWordCreatedEmail(to []string, data email.WordCreatedData) error
}

// JobService holds the Asynq client (enqueue) and server (worker execution).
type JobService struct {
	// Client is used to enqueue tasks into Redis.
	Client *asynq.Client

	server *asynq.Server
	logger *zerolog.Logger

	cache    CachePurger
	notifier Notifier
	editors  []string
}

// RedisOpt builds the Asynq connection options from the redis config block.
func RedisOpt(cfg *config.Config) asynq.RedisClientOpt {
	return asynq.RedisClientOpt{
		Addr:     cfg.Redis.Address,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	}
}

// NewJobService creates a JobService configured to use Redis from cfg.
//
// Queue weights give "critical" tasks (cache purges) the larger worker share.
func NewJobService(logger *zerolog.Logger, cfg *config.Config) *JobService {
	opt := RedisOpt(cfg)

	server := asynq.NewServer(
		opt,
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				QueueCritical: 6,
				QueueDefault:  3,
				QueueLow:      1,
			},
		},
	)

	return &JobService{
		Client:  asynq.NewClient(opt),
		server:  server,
		logger:  logger,
		editors: cfg.Integration.EditorEmails,
	}
}

// Start registers the task handlers and starts the worker server.
// asynq.Server.Start does not block.
func (j *JobService) Start() error {
	j.logger.Info().Msg("Starting background job server")
	return j.server.Start(j.Mux())
}

// Mux routes task types to their handlers.
func (j *JobService) Mux() *asynq.ServeMux {
	mux := asynq.NewServeMux()
	mux.HandleFunc(TaskCachePurge, j.handleCachePurgeTask)
	mux.HandleFunc(TaskWordCreated, j.handleWordCreatedTask)
	return mux
}

// Stop gracefully stops the job server and closes client resources.
func (j *JobService) Stop() {
	j.logger.Info().Msg("Stopping background job server")
	j.server.Shutdown()
	j.Client.Close()
}
