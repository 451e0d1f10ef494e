package engine

import (
	"context"
	"sync"
)

// Future is a one-shot result produced off the frame loop
// The step only polls it, Wait is for hosts and tests
type Future[T any] struct {
	once  sync.Once
	done  chan struct{}
	value T
	err   error
}

func NewFuture[T any]() *Future[T] {
	return &Future[T]{done: make(chan struct{})}
}

// Resolve completes the future; later calls are ignored
func (f *Future[T]) Resolve(value T, err error) {
	f.once.Do(func() {
		f.value = value
		f.err = err
		close(f.done)
	})
}

// Resolved reports completion without blocking
func (f *Future[T]) Resolved() bool {
	select {
	case <-f.done:
		return true
	default:
		return false
	}
}

// Result returns the resolved value, or the zero value and nil before resolution
func (f *Future[T]) Result() (T, error) {
	if !f.Resolved() {
		var zero T
		return zero, nil
	}
	return f.value, f.err
}

// Done is closed once the future resolves
func (f *Future[T]) Done() <-chan struct{} {
	return f.done
}

// Wait blocks until resolution or ctx cancellation
func (f *Future[T]) Wait(ctx context.Context) (T, error) {
	select {
	case <-f.done:
		return f.value, f.err
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}

// Go runs fn on its own goroutine and resolves a future with its result
func Go[T any](ctx context.Context, fn func(context.Context) (T, error)) *Future[T] {
	f := NewFuture[T]()
	go func() {
		v, err := fn(ctx)
		f.Resolve(v, err)
	}()
	return f
}
