package scheduler

import (
	"context"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNextRunAfter(t *testing.T) {
	evening := time.Date(2026, 1, 1, 22, 0, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2026, 1, 2, 1, 0, 0, 0, time.UTC), nextRunAfter(evening))

	beforeOne := time.Date(2026, 1, 2, 0, 30, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2026, 1, 2, 1, 0, 0, 0, time.UTC), nextRunAfter(beforeOne))

	exactlyOne := time.Date(2026, 1, 2, 1, 0, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2026, 1, 3, 1, 0, 0, 0, time.UTC), nextRunAfter(exactlyOne))
}

func TestScheduler_FiresDaily(t *testing.T) {
	fc := clockwork.NewFakeClockAt(time.Date(2026, 1, 1, 22, 0, 0, 0, time.UTC))
	ran := make(chan time.Time, 2)

	s := New(func(_ context.Context, now time.Time) {
		ran <- now
	}, fc)

	s.Start()
	defer s.Stop()

	// First trigger: 3h to 01:00 the next day.
	fc.BlockUntil(1)
	fc.Advance(3 * time.Hour)

	select {
	case now := <-ran:
		assert.Equal(t, time.Date(2026, 1, 2, 1, 0, 0, 0, time.UTC), now)
	case <-time.After(2 * time.Second):
		require.Fail(t, "workflow did not fire")
	}

	// Second trigger: 24h later.
	fc.BlockUntil(1)
	fc.Advance(24 * time.Hour)

	select {
	case now := <-ran:
		assert.Equal(t, time.Date(2026, 1, 3, 1, 0, 0, 0, time.UTC), now)
	case <-time.After(2 * time.Second):
		require.Fail(t, "workflow did not fire a second time")
	}
}

func TestScheduler_StopBeforeTrigger(t *testing.T) {
	fc := clockwork.NewFakeClockAt(time.Date(2026, 1, 1, 22, 0, 0, 0, time.UTC))
	ran := make(chan time.Time, 1)

	s := New(func(_ context.Context, now time.Time) {
		ran <- now
	}, fc)

	s.Start()
	fc.BlockUntil(1)
	s.Stop()

	select {
	case <-ran:
		require.Fail(t, "workflow fired after stop")
	default:
	}
}
