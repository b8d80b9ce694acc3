package scheduler

import (
	"context"
	"sync"
	"time"

	"github.com/jmhodges/clock"

	"github.com/remindctl/remindctl/pkg/logger"
	"github.com/remindctl/remindctl/pkg/remindlib"
)

// DefaultTickInterval is the cadence of the periodic poll.
const DefaultTickInterval = time.Second

// Scheduler polls the registry and dispatches trigger notifications.
type Scheduler struct {
	reg      *remindlib.Registry
	notifier remindlib.Notifier
	clk      clock.Clock
	log      logger.Logger
	interval time.Duration

	// tickMu serializes tick execution across the interval ticker,
	// pokes, and direct Tick calls.
	tickMu sync.Mutex

	poke   chan struct{}
	cancel context.CancelFunc
	done   chan struct{}

	// onTriggered, if set, runs after each successful trigger. Used for
	// hook scripts; it cannot veto the transition.
	onTriggered func(remindlib.Reminder)

	startOnce sync.Once
	stopOnce  sync.Once
}

// New creates a Scheduler polling reg every interval. A zero interval
// uses DefaultTickInterval; a nil clk uses the wall clock.
func New(reg *remindlib.Registry, notifier remindlib.Notifier, clk clock.Clock, l logger.Logger, interval time.Duration) *Scheduler {
	if interval <= 0 {
		interval = DefaultTickInterval
	}
	if clk == nil {
		clk = clock.New()
	}
	if l == nil {
		l = logger.NewNopLogger()
	}
	return &Scheduler{
		reg:      reg,
		notifier: notifier,
		clk:      clk,
		log:      l,
		interval: interval,
		poke:     make(chan struct{}, 1),
		done:     make(chan struct{}),
	}
}

// Start launches the polling goroutine. The first tick runs immediately,
// which catches up reminders that came due while the process was stopped.
// The goroutine exits when ctx is cancelled or Stop is called.
func (s *Scheduler) Start(ctx context.Context) {
	s.startOnce.Do(func() {
		ctx, s.cancel = context.WithCancel(ctx)
		go s.run(ctx)
	})
}

// Stop cancels the polling goroutine and waits for it to exit. An
// in-flight tick is allowed to finish. Safe to call multiple times.
func (s *Scheduler) Stop() {
	s.stopOnce.Do(func() {
		if s.cancel != nil {
			s.cancel()
			<-s.done
		}
	})
}

// OnTriggered registers a callback invoked after each successful
// trigger, before the next reminder is considered. Must be set before
// Start.
func (s *Scheduler) OnTriggered(fn func(remindlib.Reminder)) {
	s.onTriggered = fn
}

// Poke requests an out-of-band tick, for example when a client attaches.
// It never blocks; a poke while one is already queued is coalesced.
func (s *Scheduler) Poke() {
	select {
	case s.poke <- struct{}{}:
	default:
	}
}

func (s *Scheduler) run(ctx context.Context) {
	defer close(s.done)

	s.Tick()

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.Tick()
		case <-s.poke:
			s.Tick()
		}
	}
}

// Tick selects every due, untriggered reminder and attempts to deliver a
// trigger notification for each. A reminder is marked triggered only when
// its notification succeeded; on failure it stays pending and is retried
// at the next tick. Ticks are serialized, so concurrent invocations can
// never notify the same reminder twice.
func (s *Scheduler) Tick() {
	s.tickMu.Lock()
	defer s.tickMu.Unlock()

	now := s.clk.Now().UnixMilli()
	for _, rem := range s.reg.DuePending(now) {
		err := s.notifier.Notify(remindlib.Notification{
			Kind:    remindlib.KindTrigger,
			Message: rem.Message,
			DueAt:   rem.DueAt,
		})
		if err != nil {
			s.log.Warning("trigger delivery failed for %s, will retry: %v", rem.ID, err)
			continue
		}
		s.reg.MarkTriggered(rem.ID)
		s.log.Info("reminder %s triggered", rem.ID)
		if s.onTriggered != nil {
			s.onTriggered(rem)
		}
	}
}
