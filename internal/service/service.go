// Package service contains the business logic.
//
// It sits between the handler and repository layers.
// It receives validated data from the handler, resolves keywords into
// query filters, serves search pages from the cache when it can, and calls
// repository methods to interact with the data.
package service

import (
	"context"
	"errors"

	"github.com/deppfellow/dictionary-api/internal/errs"
	"github.com/deppfellow/dictionary-api/internal/lib/job"
	"github.com/deppfellow/dictionary-api/internal/repository"
)

// JobQueue enqueues the background work triggered by writes.
type JobQueue interface {
	EnqueueCachePurge(ctx context.Context, patterns ...string) error
	EnqueueWordCreated(ctx context.Context, p job.WordCreatedPayload) error
}

// repositoryError maps repository sentinels onto client errors. Anything
// else is returned as is for the global error handler.
func repositoryError(err error, notFound func() *errs.HTTPError) error {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		return notFound()
	case errors.Is(err, repository.ErrInvalidID):
		return errs.ErrInvalidID()
	default:
		return err
	}
}
