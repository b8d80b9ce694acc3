package server

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/creachadair/jrpc2"
	"github.com/creachadair/jrpc2/channel"
	"github.com/jmhodges/clock"
	"github.com/spf13/afero"

	"github.com/remindctl/remindctl/common"
	"github.com/remindctl/remindctl/pkg/logger"
	"github.com/remindctl/remindctl/pkg/remindlib"
)

type apiFixture struct {
	reg     *remindlib.Registry
	clk     clock.FakeClock
	cli     *jrpc2.Client
	stopped chan bool
}

func newApiFixture(t *testing.T) *apiFixture {
	t.Helper()
	clk := clock.NewFake()
	clk.Set(time.UnixMilli(1_000_000))
	reg := remindlib.NewRegistry(
		remindlib.NewFileStore(afero.NewMemMapFs(), "/state"),
		nil, clk, logger.NewNopLogger(),
	)

	stopped := make(chan bool, 1)
	api := NewApi(logger.NewNopLogger(), reg, nil, clk,
		BuildInfo{Version: "1.2.3", Commit: "abc", BuildType: "test"},
		func(flush bool) { stopped <- flush },
	)

	cliCh, srvCh := channel.Direct()
	srv := jrpc2.NewServer(api.Methods(), &jrpc2.ServerOptions{AllowPush: true})
	srv.Start(srvCh)
	cli := jrpc2.NewClient(cliCh, nil)
	t.Cleanup(func() {
		_ = cli.Close()
		_ = srv.Wait()
	})

	return &apiFixture{reg: reg, clk: clk, cli: cli, stopped: stopped}
}

func (f *apiFixture) call(t *testing.T, method string, params, result any) error {
	t.Helper()
	rsp, err := f.cli.Call(context.Background(), method, params)
	if err != nil {
		return err
	}
	if result == nil {
		return nil
	}
	return rsp.UnmarshalResult(result)
}

func TestReminderAddAndList(t *testing.T) {
	f := newApiFixture(t)

	var added common.AddResult
	err := f.call(t, common.MethodReminderAdd,
		&common.AddParams{Message: "buy milk", DelayMS: 5000}, &added)
	if err != nil {
		t.Fatalf("reminder.add: %v", err)
	}
	want := f.clk.Now().UnixMilli() + 5000
	if added.Reminder.DueAt != want {
		t.Errorf("DueAt = %d, want %d", added.Reminder.DueAt, want)
	}

	var listed common.ListResult
	if err := f.call(t, common.MethodReminderList, nil, &listed); err != nil {
		t.Fatalf("reminder.list: %v", err)
	}
	if len(listed.Reminders) != 1 || listed.Reminders[0].ID != added.Reminder.ID {
		t.Errorf("list = %+v", listed.Reminders)
	}
}

func TestReminderAddValidationErrorCode(t *testing.T) {
	f := newApiFixture(t)

	tests := []common.AddParams{
		{Message: "", DelayMS: 1000},
		{Message: "   ", DelayMS: 1000},
		{Message: "ok", DelayMS: 0},
		{Message: "ok", DelayMS: -5},
	}
	for _, p := range tests {
		err := f.call(t, common.MethodReminderAdd, &p, nil)
		var rpcErr *jrpc2.Error
		if !errors.As(err, &rpcErr) || rpcErr.Code != codeInvalidParams {
			t.Errorf("add(%+v) = %v, want invalid-params error", p, err)
		}
	}
	if f.reg.Len() != 0 {
		t.Errorf("rejected adds mutated the registry: %d reminders", f.reg.Len())
	}
}

func TestReminderRemove(t *testing.T) {
	f := newApiFixture(t)

	var added common.AddResult
	_ = f.call(t, common.MethodReminderAdd,
		&common.AddParams{Message: "gone soon", DelayMS: 1000}, &added)

	var removed common.RemoveResult
	if err := f.call(t, common.MethodReminderRemove,
		&common.RemoveParams{ID: added.Reminder.ID}, &removed); err != nil {
		t.Fatalf("reminder.remove: %v", err)
	}
	if !removed.Removed {
		t.Error("Removed = false, want true")
	}

	// Removing again is a no-op, reported as not removed.
	if err := f.call(t, common.MethodReminderRemove,
		&common.RemoveParams{ID: added.Reminder.ID}, &removed); err != nil {
		t.Fatalf("second reminder.remove: %v", err)
	}
	if removed.Removed {
		t.Error("Removed = true on second remove, want false")
	}
}

func TestReminderPartition(t *testing.T) {
	f := newApiFixture(t)

	_ = f.call(t, common.MethodReminderAdd, &common.AddParams{Message: "soon", DelayMS: 5000}, nil)
	_ = f.call(t, common.MethodReminderAdd, &common.AddParams{Message: "later", DelayMS: 60_000}, nil)

	// Daemon-clock partition: everything still active.
	var part common.PartitionResult
	if err := f.call(t, common.MethodReminderPartition, &common.PartitionParams{}, &part); err != nil {
		t.Fatalf("reminder.partition: %v", err)
	}
	if len(part.Active) != 2 || len(part.Expired) != 0 {
		t.Errorf("partition now = %d active, %d expired", len(part.Active), len(part.Expired))
	}

	// Explicit timestamp after the first due time.
	at := f.clk.Now().UnixMilli() + 6000
	if err := f.call(t, common.MethodReminderPartition, &common.PartitionParams{NowMS: &at}, &part); err != nil {
		t.Fatalf("reminder.partition: %v", err)
	}
	if len(part.Active) != 1 || len(part.Expired) != 1 {
		t.Errorf("partition at %d = %d active, %d expired", at, len(part.Active), len(part.Expired))
	}
}

func TestDaemonStop(t *testing.T) {
	f := newApiFixture(t)

	var res common.StopResult
	if err := f.call(t, common.MethodDaemonStop, &common.StopParams{Flush: true}, &res); err != nil {
		t.Fatalf("daemon.stop: %v", err)
	}
	if !res.Stopping {
		t.Error("Stopping = false, want true")
	}
	select {
	case flush := <-f.stopped:
		if !flush {
			t.Error("stop flush flag not forwarded")
		}
	case <-time.After(time.Second):
		t.Fatal("requestStop never invoked")
	}
}

func TestSystemVersion(t *testing.T) {
	f := newApiFixture(t)

	var v common.VersionResult
	if err := f.call(t, common.MethodSystemVersion, nil, &v); err != nil {
		t.Fatalf("system.version: %v", err)
	}
	if v.Version != "1.2.3" || v.Commit != "abc" || v.BuildType != "test" {
		t.Errorf("version = %+v", v)
	}
}
