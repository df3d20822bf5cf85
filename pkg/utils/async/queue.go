package async

import (
	"context"
	"fmt"
	"runtime/debug"
	"sync"
	"time"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/oncall-override/pkg/domain/interfaces"
	"github.com/secmon-lab/oncall-override/pkg/domain/model"
	"github.com/secmon-lab/oncall-override/pkg/domain/types"
	"github.com/secmon-lab/oncall-override/pkg/utils/apperr"
	"github.com/secmon-lab/oncall-override/pkg/utils/metrics"
)

// Queue runs background tasks on their own goroutines. Each task gets a
// fresh context that keeps the logger and request context of the submitter
// but not its cancellation, since the HTTP request is already finished.
// Errors and panics stop at the task boundary.
type Queue struct {
	mu      sync.RWMutex
	closed  bool
	stopped chan struct{}
	wg      sync.WaitGroup
}

var _ interfaces.TaskQueue = (*Queue)(nil)

// NewQueue creates a new task queue
func NewQueue() *Queue {
	return &Queue{
		stopped: make(chan struct{}),
	}
}

// Submit runs fn as soon as possible
func (q *Queue) Submit(ctx context.Context, name string, fn interfaces.TaskFunc) {
	q.SubmitAfter(ctx, name, 0, fn)
}

// SubmitAfter runs fn after delay. Delayed tasks still waiting when the
// queue shuts down are dropped.
func (q *Queue) SubmitAfter(ctx context.Context, name string, delay time.Duration, fn interfaces.TaskFunc) {
	q.mu.RLock()
	defer q.mu.RUnlock()

	taskID := types.NewTaskID()
	bgCtx := newBackgroundContext(ctx, name, taskID)

	if q.closed {
		ctxlog.From(bgCtx).Warn("Task queue is shut down, dropping task")
		metrics.TasksTotal.WithLabelValues(name, metrics.OutcomeDropped).Inc()
		return
	}

	q.wg.Add(1)
	go func() {
		defer q.wg.Done()

		if delay > 0 {
			timer := time.NewTimer(delay)
			defer timer.Stop()
			select {
			case <-timer.C:
			case <-q.stopped:
				ctxlog.From(bgCtx).Debug("Delayed task cancelled by shutdown", "delay", delay)
				metrics.TasksTotal.WithLabelValues(name, metrics.OutcomeDropped).Inc()
				return
			}
		}

		run(bgCtx, name, fn)
	}()
}

// Shutdown stops accepting tasks, cancels pending delayed tasks and waits
// for running ones until ctx is done.
func (q *Queue) Shutdown(ctx context.Context) error {
	q.mu.Lock()
	if !q.closed {
		q.closed = true
		close(q.stopped)
	}
	q.mu.Unlock()

	done := make(chan struct{})
	go func() {
		q.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return goerr.Wrap(ctx.Err(), "timed out waiting for background tasks")
	}
}

func run(ctx context.Context, name string, fn interfaces.TaskFunc) {
	start := time.Now()
	defer func() {
		metrics.TaskDuration.WithLabelValues(name).Observe(time.Since(start).Seconds())
	}()

	defer func() {
		if r := recover(); r != nil {
			metrics.TasksTotal.WithLabelValues(name, metrics.OutcomePanicked).Inc()
			apperr.Handle(ctx, goerr.New("panic in background task",
				goerr.V("recover", fmt.Sprint(r)),
				goerr.V("stack", string(debug.Stack())),
			))
		}
	}()

	if err := fn(ctx); err != nil {
		metrics.TasksTotal.WithLabelValues(name, metrics.OutcomeFailed).Inc()
		apperr.Handle(ctx, goerr.Wrap(err, "background task failed"))
		return
	}

	metrics.TasksTotal.WithLabelValues(name, metrics.OutcomeSucceeded).Inc()
	ctxlog.From(ctx).Debug("Background task completed", "duration", time.Since(start))
}

// newBackgroundContext creates a new background context preserving the
// logger and request context
func newBackgroundContext(ctx context.Context, name string, taskID types.TaskID) context.Context {
	newCtx := context.Background()

	logger := ctxlog.From(ctx).With("task", name, "taskID", taskID)
	newCtx = ctxlog.With(newCtx, logger)

	if reqCtx, ok := model.GetRequestContext(ctx); ok {
		newCtx = model.WithRequestContext(newCtx, reqCtx)
	}

	return newCtx
}
