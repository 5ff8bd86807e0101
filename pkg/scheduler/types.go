package scheduler

import "context"

// Work is one unit of work. It should return promptly once ctx is done.
type Work[T any] func(ctx context.Context) (T, error)

// Result is what a Work returned, or why it never ran.
type Result[T any] struct {
	Data T
	Err  error
}

// Future delivers exactly one value on C.
type Future[T any] struct {
	c      <-chan T
	cancel context.CancelFunc
}

func newFuture[T any](c <-chan T, cancel context.CancelFunc) *Future[T] {
	return &Future[T]{c: c, cancel: cancel}
}

func (f *Future[T]) C() <-chan T {
	return f.c
}

// Stop cancels the work's context. The future still delivers a value: the
// work's own result if it was already running, context.Canceled otherwise.
func (f *Future[T]) Stop() {
	f.cancel()
}
