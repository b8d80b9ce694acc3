package remindlib

import "sync"

// NotificationKind distinguishes the two announcements a notifier makes.
type NotificationKind string

const (
	// KindSet announces a newly created reminder.
	KindSet NotificationKind = "set"
	// KindTrigger announces a reminder whose due time has elapsed.
	KindTrigger NotificationKind = "trigger"
)

// Notification is the fixed message shape at the scheduler/notifier boundary.
type Notification struct {
	Kind    NotificationKind `json:"kind"`
	Message string           `json:"message"`
	DueAt   int64            `json:"due_at"`
}

// Notifier delivers a notification to the user-facing channel.
// A non-nil error means the channel was unavailable; callers consume the
// failure (the scheduler retries on the next tick) and never propagate it.
type Notifier interface {
	Notify(n Notification) error
}

// MockNotifier implements Notifier for tests. It records every call and
// can be scripted to fail.
type MockNotifier struct {
	mu    sync.Mutex
	calls []Notification
	err   error
}

// NewMockNotifier creates a MockNotifier that succeeds on every call.
func NewMockNotifier() *MockNotifier {
	return &MockNotifier{}
}

// Notify records the notification and returns the scripted error, if any.
func (m *MockNotifier) Notify(n Notification) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	m.calls = append(m.calls, n)
	return nil
}

// Fail makes subsequent Notify calls return err. Pass nil to restore
// success.
func (m *MockNotifier) Fail(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.err = err
}

// Calls returns a copy of the notifications delivered so far.
// Failed calls are not recorded.
func (m *MockNotifier) Calls() []Notification {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]Notification, len(m.calls))
	copy(out, m.calls)
	return out
}

var _ Notifier = (*MockNotifier)(nil)
