package remindcli

import (
	"encoding/json"
	"sync"

	"github.com/creachadair/jrpc2"

	"github.com/remindctl/remindctl/common"
)

// Handler processes a push notification from the daemon. Implementations
// receive the raw JSON params and are responsible for unmarshaling.
type Handler interface {
	Handle(json.RawMessage) error
}

// Dispatcher routes push notifications to handlers by method name.
// Notifications without a registered handler are dropped silently.
type Dispatcher struct {
	mu       sync.RWMutex
	handlers map[string]Handler
}

// NewDispatcher creates an empty dispatcher.
func NewDispatcher() *Dispatcher {
	return &Dispatcher{handlers: make(map[string]Handler)}
}

// Register sets the handler for a method.
func (d *Dispatcher) Register(method string, h Handler) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.handlers[method] = h
}

// Dispatch routes an incoming notification to its handler.
func (d *Dispatcher) Dispatch(req *jrpc2.Request) {
	d.mu.RLock()
	h, ok := d.handlers[req.Method()]
	d.mu.RUnlock()
	if !ok {
		return
	}
	var raw json.RawMessage
	if err := req.UnmarshalParams(&raw); err != nil {
		return
	}
	_ = h.Handle(raw)
}

// ReminderHandler processes reminder.set and reminder.trigger pushes by
// unmarshaling the payload and invoking a callback.
type ReminderHandler struct {
	Callback func(*common.ReminderNotification) error
}

// NewReminderHandler creates a handler invoking callback per notification.
func NewReminderHandler(callback func(*common.ReminderNotification) error) *ReminderHandler {
	return &ReminderHandler{Callback: callback}
}

// Handle unmarshals the notification payload and invokes the callback.
func (h *ReminderHandler) Handle(m json.RawMessage) error {
	var v common.ReminderNotification
	if err := json.Unmarshal(m, &v); err != nil {
		return err
	}
	return h.Callback(&v)
}

var _ Handler = (*ReminderHandler)(nil)
