package worker

import (
	"context"
	"errors"
	"io"
	"testing"

	"spm-backend/internal/service"

	"github.com/hibiken/asynq"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeProcessor struct {
	got []service.ReconcileTaskPayload
	err error
}

func (p *fakeProcessor) ProcessJob(_ context.Context, payload service.ReconcileTaskPayload) error {
	p.got = append(p.got, payload)
	return p.err
}

func newTestHandler(p *fakeProcessor) *ReconcileTaskHandler {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return NewReconcileTaskHandler(p, logger)
}

func TestReconcileTaskHandler_Handle(t *testing.T) {
	payload := service.ReconcileTaskPayload{JobID: "job-1", TahunAnggaran: 2024, SatkerID: 3, FilePath: "/tmp/a.xlsx"}
	task, err := service.NewReconcileTask(payload)
	require.NoError(t, err)

	t.Run("passes the payload on", func(t *testing.T) {
		p := &fakeProcessor{}
		require.NoError(t, newTestHandler(p).Handle(context.Background(), task))
		assert.Equal(t, []service.ReconcileTaskPayload{payload}, p.got)
	})

	t.Run("processor errors are retried", func(t *testing.T) {
		p := &fakeProcessor{err: errors.New("redis down")}
		err := newTestHandler(p).Handle(context.Background(), task)
		require.Error(t, err)
		assert.False(t, errors.Is(err, asynq.SkipRetry))
	})

	t.Run("malformed payload is not retried", func(t *testing.T) {
		p := &fakeProcessor{}
		err := newTestHandler(p).Handle(context.Background(), asynq.NewTask(service.TypeSaktiReconcile, []byte("{")))
		assert.True(t, errors.Is(err, asynq.SkipRetry))
		assert.Empty(t, p.got)
	})

	t.Run("incomplete payload is not retried", func(t *testing.T) {
		p := &fakeProcessor{}
		incomplete, err := service.NewReconcileTask(service.ReconcileTaskPayload{JobID: "job-2"})
		require.NoError(t, err)
		assert.True(t, errors.Is(newTestHandler(p).Handle(context.Background(), incomplete), asynq.SkipRetry))
	})
}
