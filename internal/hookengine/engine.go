// Package hookengine runs optional user hook scripts when reminders fire.
// A hook is a JavaScript file defining an onTrigger(reminder) function;
// the daemon invokes it after each successful trigger delivery. Hook
// failures are logged and never affect the reminder lifecycle.
package hookengine

import (
	"fmt"
	"os"
	"sync"

	"github.com/dop251/goja"
	"github.com/dop251/goja_nodejs/console"
	"github.com/dop251/goja_nodejs/require"

	"github.com/remindctl/remindctl/pkg/logger"
	"github.com/remindctl/remindctl/pkg/remindlib"
)

// onTriggerFn is the hook entry point the script must define.
const onTriggerFn = "onTrigger"

// hookReminder is the script-facing shape of a reminder.
type hookReminder struct {
	ID      string `json:"id"`
	Message string `json:"message"`
	DueAt   int64  `json:"due_at"`
}

// Engine owns a goja runtime with one loaded hook script.
type Engine struct {
	mu      sync.Mutex
	runtime *goja.Runtime
	hook    goja.Callable
	log     logger.Logger
}

// New loads the hook script at path into a fresh runtime. The script
// runs once at load time and must define onTrigger.
func New(l logger.Logger, path string) (*Engine, error) {
	if l == nil {
		l = logger.NewNopLogger()
	}
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading hook script: %w", err)
	}

	runtime := goja.New()
	runtime.SetFieldNameMapper(goja.TagFieldNameMapper("json", true))
	registry := new(require.Registry)
	registry.Enable(runtime)
	console.Enable(runtime)

	if _, err := runtime.RunScript(path, string(src)); err != nil {
		return nil, fmt.Errorf("evaluating hook script: %w", err)
	}

	hook, ok := goja.AssertFunction(runtime.Get(onTriggerFn))
	if !ok {
		return nil, fmt.Errorf("hook script does not define %s()", onTriggerFn)
	}

	return &Engine{runtime: runtime, hook: hook, log: l}, nil
}

// OnTrigger invokes the hook for a fired reminder. Script errors are
// returned for logging; the caller never lets them gate the trigger.
func (e *Engine) OnTrigger(rem remindlib.Reminder) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	arg := e.runtime.ToValue(hookReminder{
		ID:      rem.ID,
		Message: rem.Message,
		DueAt:   rem.DueAt,
	})
	if _, err := e.hook(goja.Undefined(), arg); err != nil {
		return fmt.Errorf("hook %s failed: %w", onTriggerFn, err)
	}
	return nil
}
