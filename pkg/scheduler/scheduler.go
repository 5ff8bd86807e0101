package scheduler

import (
	"context"
	"fmt"
	"sync"
)

type task[T any] struct {
	work Work[T]
	ctx  context.Context
	out  chan Result[T]
}

func (t *task[T]) run() (r Result[T]) {
	defer func() {
		if rec := recover(); rec != nil {
			r = Result[T]{Err: fmt.Errorf("work panicked: %v", rec)}
		}
	}()

	if err := t.ctx.Err(); err != nil {
		return Result[T]{Err: err}
	}
	v, err := t.work(t.ctx)
	return Result[T]{Data: v, Err: err}
}

// Scheduler runs work on a fixed number of workers, in the order it was added.
type Scheduler[T any] struct {
	mu     sync.Mutex
	cond   *sync.Cond
	queue  []*task[T]
	closed bool

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

func NewScheduler[T any](workers int) *Scheduler[T] {
	if workers < 1 {
		workers = 1
	}
	ctx, cancel := context.WithCancel(context.Background())
	s := &Scheduler[T]{ctx: ctx, cancel: cancel}
	s.cond = sync.NewCond(&s.mu)

	s.wg.Add(workers)
	for range workers {
		go s.worker()
	}
	return s
}

// AddWork queues w. Work added after Close resolves at once with context.Canceled.
func (s *Scheduler[T]) AddWork(w Work[T]) *Future[Result[T]] {
	out := make(chan Result[T], 1)
	ctx, cancel := context.WithCancel(s.ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		cancel()
		out <- Result[T]{Err: context.Canceled}
		return newFuture[Result[T]](out, cancel)
	}
	s.queue = append(s.queue, &task[T]{work: w, ctx: ctx, out: out})
	s.cond.Signal()
	return newFuture[Result[T]](out, cancel)
}

// Close cancels running work, resolves queued work with context.Canceled and
// waits for every worker to exit. It is safe to call more than once.
func (s *Scheduler[T]) Close() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.closed = true
	s.cancel()
	s.cond.Broadcast()
	s.mu.Unlock()

	s.wg.Wait()
}

// next blocks until a task is queued. It reports false once the scheduler is
// closed and the queue is drained.
func (s *Scheduler[T]) next() (*task[T], bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for len(s.queue) == 0 && !s.closed {
		s.cond.Wait()
	}
	if len(s.queue) == 0 {
		return nil, false
	}
	t := s.queue[0]
	s.queue[0] = nil
	s.queue = s.queue[1:]
	return t, true
}

func (s *Scheduler[T]) worker() {
	defer s.wg.Done()
	for {
		t, ok := s.next()
		if !ok {
			return
		}
		t.out <- t.run()
	}
}

// Wait collects one result per future, in submission order. If ctx ends first,
// the remaining futures are stopped and their results carry ctx's error.
func Wait[T any](ctx context.Context, futures []*Future[Result[T]]) []Result[T] {
	results := make([]Result[T], len(futures))
	for i, f := range futures {
		select {
		case r := <-f.C():
			results[i] = r
		case <-ctx.Done():
			for j := i; j < len(futures); j++ {
				futures[j].Stop()
				results[j] = Result[T]{Err: ctx.Err()}
			}
			return results
		}
	}
	return results
}
