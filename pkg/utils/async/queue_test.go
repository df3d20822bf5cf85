package async_test

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/oncall-override/pkg/domain/model"
	"github.com/secmon-lab/oncall-override/pkg/utils/async"
)

func waitOrFail(t *testing.T, wg *sync.WaitGroup, timeout time.Duration) {
	t.Helper()
	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(timeout):
		t.Fatal("Async task did not complete within timeout")
	}
}

func TestQueueSubmit(t *testing.T) {
	t.Run("Execute task asynchronously", func(t *testing.T) {
		q := async.NewQueue()
		var wg sync.WaitGroup
		var executed atomic.Bool

		wg.Add(1)
		q.Submit(context.Background(), "test", func(ctx context.Context) error {
			defer wg.Done()
			executed.Store(true)
			return nil
		})

		waitOrFail(t, &wg, time.Second)
		gt.True(t, executed.Load())
	})

	t.Run("Errors stay inside the task", func(t *testing.T) {
		q := async.NewQueue()
		var wg sync.WaitGroup

		wg.Add(1)
		q.Submit(context.Background(), "failing", func(ctx context.Context) error {
			defer wg.Done()
			return goerr.New("test error")
		})

		waitOrFail(t, &wg, time.Second)
	})

	t.Run("Recover from panic in task", func(t *testing.T) {
		q := async.NewQueue()
		var wg sync.WaitGroup

		wg.Add(1)
		q.Submit(context.Background(), "panicking", func(ctx context.Context) error {
			defer wg.Done()
			panic("test panic")
		})

		waitOrFail(t, &wg, time.Second)
		gt.NoError(t, q.Shutdown(context.Background()))
	})

	t.Run("Multiple tasks", func(t *testing.T) {
		q := async.NewQueue()
		var counter atomic.Int32

		for i := 0; i < 10; i++ {
			q.Submit(context.Background(), "count", func(ctx context.Context) error {
				counter.Add(1)
				return nil
			})
		}

		gt.NoError(t, q.Shutdown(context.Background()))
		gt.Equal(t, counter.Load(), int32(10))
	})

	t.Run("Task context is not cancelled with the submitter", func(t *testing.T) {
		q := async.NewQueue()
		ctx, cancel := context.WithCancel(context.Background())

		var taskErr error
		q.Submit(ctx, "detached", func(ctx context.Context) error {
			time.Sleep(20 * time.Millisecond)
			taskErr = ctx.Err()
			return nil
		})
		cancel()

		gt.NoError(t, q.Shutdown(context.Background()))
		gt.NoError(t, taskErr)
	})
}

func TestQueueSubmitAfter(t *testing.T) {
	t.Run("Pending delayed task is dropped on shutdown", func(t *testing.T) {
		q := async.NewQueue()
		var ranAt time.Time

		q.SubmitAfter(context.Background(), "delayed", time.Second, func(ctx context.Context) error {
			ranAt = time.Now()
			return nil
		})

		gt.NoError(t, q.Shutdown(context.Background()))
		gt.True(t, ranAt.IsZero())
	})

	t.Run("Delayed task runs when queue stays open", func(t *testing.T) {
		q := async.NewQueue()
		var wg sync.WaitGroup
		submitted := time.Now()
		var elapsed time.Duration

		wg.Add(1)
		q.SubmitAfter(context.Background(), "delayed", 30*time.Millisecond, func(ctx context.Context) error {
			defer wg.Done()
			elapsed = time.Since(submitted)
			return nil
		})

		waitOrFail(t, &wg, time.Second)
		gt.True(t, elapsed >= 30*time.Millisecond)
	})
}

func TestQueueShutdown(t *testing.T) {
	t.Run("Waits for running tasks", func(t *testing.T) {
		q := async.NewQueue()
		var finished atomic.Bool

		q.Submit(context.Background(), "slow", func(ctx context.Context) error {
			time.Sleep(50 * time.Millisecond)
			finished.Store(true)
			return nil
		})

		gt.NoError(t, q.Shutdown(context.Background()))
		gt.True(t, finished.Load())
	})

	t.Run("Drops tasks submitted after shutdown", func(t *testing.T) {
		q := async.NewQueue()
		gt.NoError(t, q.Shutdown(context.Background()))

		var executed atomic.Bool
		q.Submit(context.Background(), "late", func(ctx context.Context) error {
			executed.Store(true)
			return nil
		})

		time.Sleep(20 * time.Millisecond)
		gt.False(t, executed.Load())
	})

	t.Run("Times out when tasks do not finish", func(t *testing.T) {
		q := async.NewQueue()
		release := make(chan struct{})
		defer close(release)

		q.Submit(context.Background(), "blocked", func(ctx context.Context) error {
			<-release
			return nil
		})

		ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
		defer cancel()
		gt.Error(t, q.Shutdown(ctx))
	})
}

func TestContextPreservation(t *testing.T) {
	t.Run("RequestContext is preserved", func(t *testing.T) {
		q := async.NewQueue()
		reqCtx := &model.RequestContext{
			RequestID:   "req-1",
			SlackUserID: "U123456789",
			ChannelID:   "C123",
		}
		ctx := model.WithRequestContext(context.Background(), reqCtx)

		var preserved *model.RequestContext
		q.Submit(ctx, "preserve", func(ctx context.Context) error {
			preserved, _ = model.GetRequestContext(ctx)
			return nil
		})

		gt.NoError(t, q.Shutdown(context.Background()))
		gt.NotNil(t, preserved)
		gt.Equal(t, preserved.SlackUserID, reqCtx.SlackUserID)
		gt.Equal(t, preserved.ChannelID, reqCtx.ChannelID)
	})

	t.Run("Logger is preserved in background context", func(t *testing.T) {
		q := async.NewQueue()
		ctx := ctxlog.With(context.Background(), ctxlog.From(context.Background()))

		var hasLogger bool
		q.Submit(ctx, "logger", func(ctx context.Context) error {
			hasLogger = ctxlog.From(ctx) != nil
			return nil
		})

		gt.NoError(t, q.Shutdown(context.Background()))
		gt.True(t, hasLogger)
	})
}
