package scheduler

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeResetter struct {
	mu        sync.Mutex
	calls     int
	allotment int
	err       error
}

func (f *fakeResetter) ResetMonthlyCredits(_ context.Context, allotment int) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	f.allotment = allotment
	return 3, f.err
}

func TestScheduler_ResetCredits(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
	}{
		{name: "success"},
		{name: "store error is logged, not raised", err: errors.New("db down")},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			r := &fakeResetter{err: tt.err}
			s := New(r, zap.NewNop())

			s.ResetCredits()

			assert.Equal(t, 1, r.calls)
			assert.Equal(t, 20, r.allotment)
		})
	}
}

func TestScheduler_StartRejectsBadCron(t *testing.T) {
	t.Parallel()

	s := New(&fakeResetter{}, zap.NewNop())
	err := s.Start("not a cron")
	require.Error(t, err)
}

func TestScheduler_StartStop(t *testing.T) {
	t.Parallel()

	s := New(&fakeResetter{}, zap.NewNop())
	require.NoError(t, s.Start("0 0 1 * *"))
	s.Stop()
}
