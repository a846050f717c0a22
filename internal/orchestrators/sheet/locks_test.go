package sheet

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/godbound-api/internal/errors"
)

func TestSubjectLocks_ExclusivePerSubject(t *testing.T) {
	locks := newSubjectLocks()
	ctx := context.Background()

	release, err := locks.acquire(ctx, "subject_1")
	require.NoError(t, err)

	// other subjects are independent
	releaseOther, err := locks.acquire(ctx, "subject_2")
	require.NoError(t, err)
	releaseOther()

	waitCtx, cancel := context.WithTimeout(ctx, 20*time.Millisecond)
	defer cancel()
	_, err = locks.acquire(waitCtx, "subject_1")
	require.Error(t, err)
	assert.Equal(t, errors.CodeDeadlineExceeded, errors.GetCode(err))

	release()
	release()
	assert.Equal(t, 0, locks.size())

	release, err = locks.acquire(ctx, "subject_1")
	require.NoError(t, err)
	release()
}

func TestSubjectLocks_WaiterGetsLock(t *testing.T) {
	locks := newSubjectLocks()
	ctx := context.Background()

	release, err := locks.acquire(ctx, "subject_1")
	require.NoError(t, err)

	acquired := make(chan func())
	go func() {
		next, err := locks.acquire(ctx, "subject_1")
		if err == nil {
			acquired <- next
		}
	}()

	select {
	case <-acquired:
		t.Fatal("second acquire should wait")
	case <-time.After(20 * time.Millisecond):
	}

	release()
	next := <-acquired
	next()
	assert.Equal(t, 0, locks.size())
}
