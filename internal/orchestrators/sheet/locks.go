package sheet

import (
	"context"
	"sync"

	"golang.org/x/sync/semaphore"

	"github.com/KirkDiggler/godbound-api/internal/errors"
)

// subjectLocks allows one in-flight action per subject. Entries are dropped
// once nobody holds or waits on them.
type subjectLocks struct {
	mu    sync.Mutex
	locks map[string]*subjectLock
}

type subjectLock struct {
	sem  *semaphore.Weighted
	refs int
}

func newSubjectLocks() *subjectLocks {
	return &subjectLocks{locks: make(map[string]*subjectLock)}
}

// acquire blocks until the subject is free or ctx is done
func (l *subjectLocks) acquire(ctx context.Context, subjectID string) (func(), error) {
	l.mu.Lock()
	lock, ok := l.locks[subjectID]
	if !ok {
		lock = &subjectLock{sem: semaphore.NewWeighted(1)}
		l.locks[subjectID] = lock
	}
	lock.refs++
	l.mu.Unlock()

	if err := lock.sem.Acquire(ctx, 1); err != nil {
		l.unref(subjectID, lock)
		return nil, errors.FromContext(err)
	}

	var once sync.Once
	return func() {
		once.Do(func() {
			lock.sem.Release(1)
			l.unref(subjectID, lock)
		})
	}, nil
}

func (l *subjectLocks) unref(subjectID string, lock *subjectLock) {
	l.mu.Lock()
	defer l.mu.Unlock()

	lock.refs--
	if lock.refs == 0 {
		delete(l.locks, subjectID)
	}
}

func (l *subjectLocks) size() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.locks)
}
