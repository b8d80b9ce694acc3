package scheduler

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/jmhodges/clock"
	"github.com/spf13/afero"

	"github.com/remindctl/remindctl/pkg/logger"
	"github.com/remindctl/remindctl/pkg/remindlib"
)

func newTestKit(t *testing.T) (*remindlib.Registry, *remindlib.MockNotifier, clock.FakeClock) {
	t.Helper()
	store := remindlib.NewFileStore(afero.NewMemMapFs(), "/state")
	notifier := remindlib.NewMockNotifier()
	clk := clock.NewFake()
	clk.Set(time.UnixMilli(1_000_000))
	return remindlib.NewRegistry(store, nil, clk, logger.NewNopLogger()), notifier, clk
}

func triggerCalls(n *remindlib.MockNotifier) []remindlib.Notification {
	var out []remindlib.Notification
	for _, c := range n.Calls() {
		if c.Kind == remindlib.KindTrigger {
			out = append(out, c)
		}
	}
	return out
}

func TestTickTriggersDueReminderOnce(t *testing.T) {
	reg, notifier, clk := newTestKit(t)
	s := New(reg, notifier, clk, logger.NewNopLogger(), 0)

	rem, err := reg.Create("buy milk", 5*time.Second)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	// Not due yet.
	clk.Add(4 * time.Second)
	s.Tick()
	if got := triggerCalls(notifier); len(got) != 0 {
		t.Fatalf("premature trigger: %+v", got)
	}
	part := remindlib.PartitionAt(reg.List(), clk.Now().UnixMilli())
	if len(part.Active) != 1 || len(part.Expired) != 0 {
		t.Fatalf("expected one active reminder before due time, got %+v", part)
	}

	// Past due.
	clk.Add(2 * time.Second)
	s.Tick()
	got := triggerCalls(notifier)
	if len(got) != 1 {
		t.Fatalf("got %d trigger notifications, want 1", len(got))
	}
	if got[0].Message != "buy milk" || got[0].DueAt != rem.DueAt {
		t.Errorf("unexpected trigger payload: %+v", got[0])
	}
	if r, _ := reg.Get(rem.ID); !r.Triggered {
		t.Error("reminder not marked triggered after successful delivery")
	}
}

func TestBackToBackTicksNotifyOnce(t *testing.T) {
	reg, notifier, clk := newTestKit(t)
	s := New(reg, notifier, clk, logger.NewNopLogger(), 0)

	if _, err := reg.Create("due soon", time.Second); err != nil {
		t.Fatalf("Create: %v", err)
	}
	clk.Add(2 * time.Second)

	s.Tick()
	s.Tick()

	if got := triggerCalls(notifier); len(got) != 1 {
		t.Fatalf("got %d trigger notifications across two ticks, want 1", len(got))
	}
}

func TestConcurrentTicksNotifyOnce(t *testing.T) {
	reg, notifier, clk := newTestKit(t)
	s := New(reg, notifier, clk, logger.NewNopLogger(), 0)

	for i := 0; i < 5; i++ {
		if _, err := reg.Create("batch", time.Second); err != nil {
			t.Fatalf("Create: %v", err)
		}
	}
	clk.Add(2 * time.Second)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.Tick()
		}()
	}
	wg.Wait()

	if got := triggerCalls(notifier); len(got) != 5 {
		t.Fatalf("got %d trigger notifications, want 5", len(got))
	}
}

func TestFailedDeliveryRetriesNextTick(t *testing.T) {
	reg, notifier, clk := newTestKit(t)
	ml := logger.NewMockLogger()
	s := New(reg, notifier, clk, ml, 0)

	rem, _ := reg.Create("flaky channel", time.Second)
	clk.Add(2 * time.Second)

	notifier.Fail(errors.New("no receivers"))
	s.Tick()
	if r, _ := reg.Get(rem.ID); r.Triggered {
		t.Fatal("reminder marked triggered despite failed delivery")
	}
	if len(ml.WarningCalls) == 0 {
		t.Error("failed delivery should be logged")
	}

	notifier.Fail(nil)
	s.Tick()
	if got := triggerCalls(notifier); len(got) != 1 {
		t.Fatalf("got %d trigger notifications, want 1", len(got))
	}
	if r, _ := reg.Get(rem.ID); !r.Triggered {
		t.Error("reminder not marked triggered after retry succeeded")
	}
}

func TestStartupCatchUp(t *testing.T) {
	store := remindlib.NewFileStore(afero.NewMemMapFs(), "/state")
	clk := clock.NewFake()
	clk.Set(time.UnixMilli(1_000_000))

	// First process run: create a reminder, then "stop" without triggering.
	first := remindlib.NewRegistry(store, nil, clk, logger.NewNopLogger())
	if _, err := first.Create("missed me", time.Second); err != nil {
		t.Fatalf("Create: %v", err)
	}

	// Process restarts long past the due time.
	clk.Add(time.Hour)
	reg := remindlib.NewRegistry(store, nil, clk, logger.NewNopLogger())
	reg.Load()

	notifier := remindlib.NewMockNotifier()
	s := New(reg, notifier, clk, logger.NewNopLogger(), 50*time.Millisecond)
	s.Start(context.Background())
	defer s.Stop()

	deadline := time.After(2 * time.Second)
	for {
		if len(triggerCalls(notifier)) == 1 {
			break
		}
		select {
		case <-deadline:
			t.Fatal("timed out waiting for catch-up trigger")
		case <-time.After(10 * time.Millisecond):
		}
	}
}

func TestPokeRunsTickEarly(t *testing.T) {
	reg, notifier, clk := newTestKit(t)
	// A long interval so only the poke can plausibly fire the trigger.
	s := New(reg, notifier, clk, logger.NewNopLogger(), time.Hour)
	s.Start(context.Background())
	defer s.Stop()

	// Wait out the immediate startup tick before creating the reminder.
	time.Sleep(50 * time.Millisecond)

	if _, err := reg.Create("poked", time.Second); err != nil {
		t.Fatalf("Create: %v", err)
	}
	clk.Add(2 * time.Second)
	s.Poke()

	deadline := time.After(2 * time.Second)
	for {
		if len(triggerCalls(notifier)) == 1 {
			break
		}
		select {
		case <-deadline:
			t.Fatal("timed out waiting for poked trigger")
		case <-time.After(10 * time.Millisecond):
		}
	}
}

func TestStopWaitsForGoroutine(t *testing.T) {
	reg, notifier, clk := newTestKit(t)
	s := New(reg, notifier, clk, logger.NewNopLogger(), 10*time.Millisecond)
	s.Start(context.Background())
	time.Sleep(30 * time.Millisecond)
	s.Stop()
	s.Stop() // must be safe to call twice

	// No further ticks run after Stop returns.
	if _, err := reg.Create("late", time.Millisecond); err != nil {
		t.Fatalf("Create: %v", err)
	}
	clk.Add(time.Second)
	time.Sleep(50 * time.Millisecond)
	if got := triggerCalls(notifier); len(got) != 0 {
		t.Errorf("tick ran after Stop: %+v", got)
	}
}
