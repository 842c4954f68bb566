// Package scheduler fires the daily report/energy-update workflow on a fixed
// wall-clock trigger.
package scheduler

import (
	"context"
	"log"
	"time"

	"github.com/jonboulle/clockwork"
)

// RunHour is the local hour the daily workflow fires at.
const RunHour = 1

// Workflow is the daily job. The current time is passed explicitly so the
// workflow stays testable without the trigger.
type Workflow func(ctx context.Context, now time.Time)

// Scheduler drives a Workflow once a day at RunHour.
type Scheduler struct {
	run    Workflow
	clock  clockwork.Clock
	ctx    context.Context
	cancel context.CancelFunc
	done   chan struct{}
}

// New creates a Scheduler. A nil clock defaults to the real one.
func New(run Workflow, clock clockwork.Clock) *Scheduler {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}

	ctx, cancel := context.WithCancel(context.Background())

	return &Scheduler{
		run:    run,
		clock:  clock,
		ctx:    ctx,
		cancel: cancel,
		done:   make(chan struct{}),
	}
}

// Start launches the trigger loop.
func (s *Scheduler) Start() {
	log.Println("Starting scheduler...")

	go s.loop()
}

// Stop shuts the trigger loop down and waits for it to exit.
func (s *Scheduler) Stop() {
	log.Println("Stopping scheduler...")
	s.cancel()
	<-s.done
	log.Println("Scheduler stopped")
}

func (s *Scheduler) loop() {
	defer close(s.done)

	for {
		now := s.clock.Now()
		next := nextRunAfter(now)

		select {
		case <-s.ctx.Done():
			return
		case <-s.clock.After(next.Sub(now)):
			s.run(s.ctx, s.clock.Now())
		}
	}
}

// nextRunAfter returns the next RunHour strictly after now.
func nextRunAfter(now time.Time) time.Time {
	next := time.Date(now.Year(), now.Month(), now.Day(), RunHour, 0, 0, 0, now.Location())

	if !next.After(now) {
		next = next.AddDate(0, 0, 1)
	}

	return next
}
