package interfaces

//go:generate moq -out mocks/queue_mock.go -pkg mocks . TaskQueue

import (
	"context"
	"time"
)

// TaskFunc is a unit of background work
type TaskFunc func(ctx context.Context) error

// TaskQueue runs work after the HTTP response has been sent. Nobody awaits
// the result, so the queue owns logging and reporting of failures.
type TaskQueue interface {
	Submit(ctx context.Context, name string, fn TaskFunc)
	SubmitAfter(ctx context.Context, name string, delay time.Duration, fn TaskFunc)
}
