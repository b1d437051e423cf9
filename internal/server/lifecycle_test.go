package server

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

// blockingService runs until its context is cancelled.
type blockingService struct {
	started atomic.Bool
	stopped atomic.Bool
}

func (b *blockingService) Start(ctx context.Context) error {
	b.started.Store(true)
	<-ctx.Done()
	return nil
}

func (b *blockingService) Stop() { b.stopped.Store(true) }

func runAsync(lc *Lifecycle, ctx context.Context) <-chan error {
	done := make(chan error, 1)
	go func() { done <- lc.Run(ctx) }()
	return done
}

func waitFor(t *testing.T, done <-chan error) error {
	t.Helper()
	select {
	case err := <-done:
		return err
	case <-time.After(5 * time.Second):
		t.Fatal("lifecycle did not return in time")
		return nil
	}
}

func TestLifecycle_CancelStopsBlockingServices(t *testing.T) {
	lc := NewLifecycle(zaptest.NewLogger(t))
	svc1, svc2 := &blockingService{}, &blockingService{}
	lc.Add("svc1", svc1)
	lc.Add("svc2", svc2)

	ctx, cancel := context.WithCancel(context.Background())
	done := runAsync(lc, ctx)

	require.Eventually(t, func() bool { return svc1.started.Load() && svc2.started.Load() },
		2*time.Second, 10*time.Millisecond)
	cancel()

	assert.NoError(t, waitFor(t, done))
	assert.True(t, svc1.stopped.Load())
	assert.True(t, svc2.stopped.Load())
}

func TestLifecycle_ReturnsWhenAllServicesFinish(t *testing.T) {
	lc := NewLifecycle(zaptest.NewLogger(t))
	var stopped atomic.Int32
	lc.Add("game", &FuncService{
		StartFn: func(context.Context) error { return nil },
		StopFn:  func() { stopped.Add(1) },
	})

	assert.NoError(t, waitFor(t, runAsync(lc, context.Background())))
	assert.Equal(t, int32(1), stopped.Load())
}

func TestLifecycle_ServiceErrorCancelsOthers(t *testing.T) {
	lc := NewLifecycle(zaptest.NewLogger(t))
	other := &blockingService{}
	boom := errors.New("boom")
	lc.Add("other", other)
	lc.Add("failing", &FuncService{StartFn: func(context.Context) error { return boom }})

	err := waitFor(t, runAsync(lc, context.Background()))
	assert.ErrorIs(t, err, boom)
	assert.True(t, other.stopped.Load())
}

func TestLifecycle_StopsInReverseOrder(t *testing.T) {
	lc := NewLifecycle(zaptest.NewLogger(t))
	var mu sync.Mutex
	var order []string
	for _, name := range []string{"a", "b", "c"} {
		name := name
		lc.Add(name, &FuncService{
			StartFn: func(context.Context) error { return nil },
			StopFn: func() {
				mu.Lock()
				order = append(order, name)
				mu.Unlock()
			},
		})
	}

	require.NoError(t, waitFor(t, runAsync(lc, context.Background())))
	assert.Equal(t, []string{"c", "b", "a"}, order)
}

func TestFuncService_NilStop(t *testing.T) {
	svc := &FuncService{StartFn: func(context.Context) error { return nil }}
	assert.NoError(t, svc.Start(context.Background()))
	assert.NotPanics(t, svc.Stop)
}
