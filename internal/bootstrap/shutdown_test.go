package bootstrap

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/osse101/CarbonScan_Go/internal/scheduler"
	"github.com/osse101/CarbonScan_Go/internal/worker"
)

type mockServer struct{ mock.Mock }

func (m *mockServer) Stop(ctx context.Context) error { return m.Called(ctx).Error(0) }

type mockDBPool struct{ mock.Mock }

func (m *mockDBPool) Ping(ctx context.Context) error { return m.Called(ctx).Error(0) }
func (m *mockDBPool) Close()                         { m.Called() }

func TestGracefulShutdown_StopsEverything(t *testing.T) {
	srv := &mockServer{}
	srv.On("Stop", mock.Anything).Return(assert.AnError)
	db := &mockDBPool{}
	db.On("Close").Return()

	pool := worker.NewPool(1, 1)
	pool.Start()
	sched := scheduler.New(pool, nil)
	sched.Start()

	GracefulShutdown(context.Background(), ShutdownComponents{
		Server:     srv,
		Scheduler:  sched,
		WorkerPool: pool,
		DBPool:     db,
	})

	srv.AssertExpectations(t)
	db.AssertExpectations(t)
	assert.False(t, pool.TryEnqueue(worker.JobFunc(func(context.Context) error { return nil })),
		"stopped pool must refuse work")
}

func TestGracefulShutdown_NilComponents(t *testing.T) {
	assert.NotPanics(t, func() {
		GracefulShutdown(context.Background(), ShutdownComponents{})
	})
}
