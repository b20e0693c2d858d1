package job

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/hibiken/asynq"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deppfellow/dictionary-api/internal/lib/email"
)

type fakePurger struct {
	patterns []string
	err      error
}

func (f *fakePurger) Purge(_ context.Context, patterns ...string) (int, error) {
	if f.err != nil {
		return 0, f.err
	}
	f.patterns = append(f.patterns, patterns...)
	return len(patterns), nil
}

type fakeNotifier struct {
	to   []string
	data []email.WordCreatedData
}

func (f *fakeNotifier) SendWordCreatedEmail(to []string, data email.WordCreatedData) error {
	f.to = to
	f.data = append(f.data, data)
	return nil
}

func newTestJobService(cache CachePurger, notifier Notifier, editors ...string) *JobService {
	logger := zerolog.Nop()
	return &JobService{
		logger:   &logger,
		cache:    cache,
		notifier: notifier,
		editors:  editors,
	}
}

func TestNewCachePurgeTask(t *testing.T) {
	task, err := NewCachePurgeTask("example-*", "*-true")
	require.NoError(t, err)

	assert.Equal(t, TaskCachePurge, task.Type())

	var p CachePurgePayload
	require.NoError(t, json.Unmarshal(task.Payload(), &p))
	assert.Equal(t, []string{"example-*", "*-true"}, p.Patterns)
}

func TestCachePurgeTask_PurgesPatterns(t *testing.T) {
	purger := &fakePurger{}
	j := newTestJobService(purger, nil)

	task, err := NewCachePurgeTask("*")
	require.NoError(t, err)

	require.NoError(t, j.Mux().ProcessTask(context.Background(), task))
	assert.Equal(t, []string{"*"}, purger.patterns)
}

func TestCachePurgeTask_ReturnsErrorForRetry(t *testing.T) {
	j := newTestJobService(&fakePurger{err: errors.New("redis down")}, nil)

	task, err := NewCachePurgeTask("*")
	require.NoError(t, err)

	assert.Error(t, j.handleCachePurgeTask(context.Background(), task))
}

func TestCachePurgeTask_BadPayload(t *testing.T) {
	j := newTestJobService(&fakePurger{}, nil)

	err := j.handleCachePurgeTask(context.Background(), asynq.NewTask(TaskCachePurge, []byte("{")))
	assert.Error(t, err)
}

func TestWordCreatedTask_NotifiesEditors(t *testing.T) {
	notifier := &fakeNotifier{}
	j := newTestJobService(nil, notifier, "editor@example.com")

	task, err := NewWordCreatedTask(WordCreatedPayload{WordID: "1", Word: "bịa", Examples: 1})
	require.NoError(t, err)

	require.NoError(t, j.Mux().ProcessTask(context.Background(), task))
	assert.Equal(t, []string{"editor@example.com"}, notifier.to)
	require.Len(t, notifier.data, 1)
	assert.Equal(t, "bịa", notifier.data[0].Word)
}

func TestWordCreatedTask_SkipsWithoutEditors(t *testing.T) {
	notifier := &fakeNotifier{}
	j := newTestJobService(nil, notifier)

	task, err := NewWordCreatedTask(WordCreatedPayload{WordID: "1"})
	require.NoError(t, err)

	require.NoError(t, j.handleWordCreatedTask(context.Background(), task))
	assert.Empty(t, notifier.data)
}
