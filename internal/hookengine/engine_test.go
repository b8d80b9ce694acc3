package hookengine

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/remindctl/remindctl/pkg/logger"
	"github.com/remindctl/remindctl/pkg/remindlib"
)

func writeHook(t *testing.T, src string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "hook.js")
	if err := os.WriteFile(path, []byte(src), 0o600); err != nil {
		t.Fatalf("writing hook script: %v", err)
	}
	return path
}

func TestOnTriggerReceivesReminder(t *testing.T) {
	path := writeHook(t, `
		var seen = null;
		function onTrigger(reminder) { seen = reminder; }
	`)
	e, err := New(logger.NewNopLogger(), path)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	rem := remindlib.Reminder{ID: "r1", Message: "stretch", DueAt: 777}
	if err := e.OnTrigger(rem); err != nil {
		t.Fatalf("OnTrigger: %v", err)
	}

	seen := e.runtime.Get("seen").Export()
	m, ok := seen.(map[string]interface{})
	if !ok {
		t.Fatalf("seen = %#v, want object", seen)
	}
	if m["id"] != "r1" || m["message"] != "stretch" || m["due_at"] != int64(777) {
		t.Errorf("hook saw %#v", m)
	}
}

func TestHookErrorIsReturnedNotFatal(t *testing.T) {
	path := writeHook(t, `function onTrigger(r) { throw new Error("boom"); }`)
	e, err := New(logger.NewNopLogger(), path)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if err := e.OnTrigger(remindlib.Reminder{ID: "x"}); err == nil {
		t.Fatal("expected hook error")
	}
}

func TestMissingOnTriggerRejected(t *testing.T) {
	path := writeHook(t, `var notAHook = 1;`)
	if _, err := New(logger.NewNopLogger(), path); err == nil {
		t.Fatal("script without onTrigger should be rejected")
	}
}

func TestBrokenScriptRejected(t *testing.T) {
	path := writeHook(t, `function onTrigger( {`)
	if _, err := New(logger.NewNopLogger(), path); err == nil {
		t.Fatal("unparseable script should be rejected")
	}
}

func TestMissingFileRejected(t *testing.T) {
	if _, err := New(logger.NewNopLogger(), "/no/such/hook.js"); err == nil {
		t.Fatal("missing script should be rejected")
	}
}
