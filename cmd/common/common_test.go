package common

import (
	"errors"
	"flag"
	"testing"
	"time"

	"github.com/urfave/cli"
	"github.com/vbauerster/mpb/v8"
)

func newTestContext() *cli.Context {
	app := cli.NewApp()
	app.Name = "remindctl"
	app.HelpName = "remindctl"
	app.Version = "test"
	set := flag.NewFlagSet("test", flag.ContinueOnError)
	ctx := cli.NewContext(app, set, nil)
	ctx.Command = cli.Command{Name: "cmd"}
	return ctx
}

func TestInitCountdownBar(t *testing.T) {
	p := mpb.New()
	bar := InitCountdownBar(p, "lunch", 60_000)
	if bar == nil {
		t.Fatal("expected a bar")
	}
}

func TestFormatDue(t *testing.T) {
	dueAt := time.Date(2025, 3, 14, 9, 26, 53, 0, time.Local).UnixMilli()
	got := FormatDue(dueAt)
	if got != "2025-03-14 09:26:53" {
		t.Fatalf("unexpected formatting: %s", got)
	}
}

func TestUsageErrorCallbackWithCommand(t *testing.T) {
	var shownCmd string
	origCmd := showCommandHelp
	showCommandHelp = func(ctx *cli.Context, cmd string) error {
		shownCmd = cmd
		return nil
	}
	defer func() { showCommandHelp = origCmd }()

	ctx := newTestContext()
	if err := UsageErrorCallback(ctx, errors.New("bad flag"), false); err != nil {
		t.Fatalf("UsageErrorCallback: %v", err)
	}
	if shownCmd != "cmd" {
		t.Fatalf("expected help for command %q, got %q", "cmd", shownCmd)
	}
}

func TestUsageErrorCallbackWithoutCommand(t *testing.T) {
	var shown bool
	origApp := showAppHelpAndExit
	showAppHelpAndExit = func(ctx *cli.Context, code int) {
		shown = true
	}
	defer func() { showAppHelpAndExit = origApp }()

	ctx := newTestContext()
	ctx.Command = cli.Command{}
	if err := UsageErrorCallback(ctx, errors.New("bad flag"), false); err != nil {
		t.Fatalf("UsageErrorCallback: %v", err)
	}
	if !shown {
		t.Fatal("expected app help to be shown")
	}
}
