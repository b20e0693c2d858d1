package job

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/hibiken/asynq"
	"github.com/rs/zerolog"

	"github.com/deppfellow/dictionary-api/internal/config"
	"github.com/deppfellow/dictionary-api/internal/lib/email"
)

// InitHandlers wires the dependencies used by the task handlers.
func (j *JobService) InitHandlers(cfg *config.Config, logger *zerolog.Logger, cache CachePurger) {
	j.cache = cache
	if cfg.Integration.ResendAPIKey != "" {
		j.notifier = email.NewClient(cfg, logger)
	}
}

func (j *JobService) handleCachePurgeTask(ctx context.Context, t *asynq.Task) error {
	var p CachePurgePayload
	if err := json.Unmarshal(t.Payload(), &p); err != nil {
		return fmt.Errorf("failed to unmarshal cache purge payload: %w", err)
	}

	if j.cache == nil {
		j.logger.Warn().Strs("patterns", p.Patterns).Msg("cache not configured, skipping purge")
		return nil
	}

	deleted, err := j.cache.Purge(ctx, p.Patterns...)
	if err != nil {
		j.logger.Error().
			Str("type", TaskCachePurge).
			Strs("patterns", p.Patterns).
			Err(err).
			Msg("Failed to purge cache")
		return err
	}

	j.logger.Info().
		Str("type", TaskCachePurge).
		Strs("patterns", p.Patterns).
		Int("deleted", deleted).
		Msg("Purged cached search results")

	return nil
}

func (j *JobService) handleWordCreatedTask(ctx context.Context, t *asynq.Task) error {
	var p WordCreatedPayload
	if err := json.Unmarshal(t.Payload(), &p); err != nil {
		return fmt.Errorf("failed to unmarshal word created payload: %w", err)
	}

	if j.notifier == nil || len(j.editors) == 0 {
		j.logger.Debug().Str("word_id", p.WordID).Msg("email not configured, skipping word notification")
		return nil
	}

	err := j.notifier.SendWordCreatedEmail(j.editors, email.WordCreatedData{
		WordID:     p.WordID,
		Word:       p.Word,
		WordClass:  p.WordClass,
		Definition: p.Definition,
		Examples:   p.Examples,
	})
	if err != nil {
		j.logger.Error().
			Str("type", TaskWordCreated).
			Str("word_id", p.WordID).
			Err(err).
			Msg("Failed to send word created email")
		return err
	}

	j.logger.Info().
		Str("type", TaskWordCreated).
		Str("word_id", p.WordID).
		Int("recipients", len(j.editors)).
		Msg("Sent word created email")

	return nil
}
