package domain

import (
	"context"
	"sync"
)

// ReentrantLock is a mutex that the current holder may acquire again.
//
// Goroutines have no identity, so ownership travels with the context:
// Acquire returns a context marked as owning the lock, and any Acquire made
// with that context (or one derived from it) re-enters instead of blocking.
// Fixers re-entering the patching entrypoint must therefore pass on the
// context they were given.
type ReentrantLock struct {
	sem chan struct{}

	mu    sync.Mutex
	owner *lockOwner
	depth int
}

type lockOwner struct{}

type ownerKey struct {
	lock *ReentrantLock
}

// NewReentrantLock creates an unlocked lock.
func NewReentrantLock() *ReentrantLock {
	return &ReentrantLock{sem: make(chan struct{}, 1)}
}

// Acquire blocks until the lock is held by ctx or ctx is done. The returned
// release func must be called exactly once; extra calls are ignored.
func (l *ReentrantLock) Acquire(ctx context.Context) (context.Context, func(), error) {
	if owner, ok := ctx.Value(ownerKey{lock: l}).(*lockOwner); ok {
		l.mu.Lock()
		if l.owner == owner {
			l.depth++
			l.mu.Unlock()

			return ctx, l.releaseFunc(owner), nil
		}
		l.mu.Unlock()
	}

	// A free lock would win the select half of the time.
	if err := ctx.Err(); err != nil {
		return ctx, func() {}, err
	}

	select {
	case l.sem <- struct{}{}:
	case <-ctx.Done():
		return ctx, func() {}, ctx.Err()
	}

	owner := &lockOwner{}

	l.mu.Lock()
	l.owner = owner
	l.depth = 1
	l.mu.Unlock()

	return context.WithValue(ctx, ownerKey{lock: l}, owner), l.releaseFunc(owner), nil
}

func (l *ReentrantLock) releaseFunc(owner *lockOwner) func() {
	var once sync.Once

	return func() {
		once.Do(func() {
			l.mu.Lock()
			defer l.mu.Unlock()

			if l.owner != owner {
				return
			}

			l.depth--
			if l.depth > 0 {
				return
			}

			l.owner = nil
			<-l.sem
		})
	}
}

// Held reports whether ctx currently owns the lock.
func (l *ReentrantLock) Held(ctx context.Context) bool {
	owner, ok := ctx.Value(ownerKey{lock: l}).(*lockOwner)
	if !ok {
		return false
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	return l.owner == owner
}

// Depth returns the current re-entry depth, 0 when unlocked.
func (l *ReentrantLock) Depth() int {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.depth
}

// PatchingLock protects the whole populate -> select -> execute workflow of
// the process.
var PatchingLock = NewReentrantLock()

// MakeSafePatcher wraps a patching entrypoint with PatchingLock. Recursive
// calls made with the context passed to fn re-enter without deadlocking.
func MakeSafePatcher(fn func(ctx context.Context) error) func(ctx context.Context) error {
	return func(ctx context.Context) error {
		ctx, release, err := PatchingLock.Acquire(ctx)
		if err != nil {
			return err
		}
		defer release()

		return fn(ctx)
	}
}
