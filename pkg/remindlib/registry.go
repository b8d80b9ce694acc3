package remindlib

import (
	"encoding/json"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jmhodges/clock"

	"github.com/remindctl/remindctl/pkg/logger"
)

// Registry is the in-memory authoritative reminder collection. Every
// mutation persists the whole collection as one JSON blob through the
// Store. It is safe for concurrent use by RPC handlers and the scheduler.
type Registry struct {
	mu        sync.RWMutex
	reminders []*Reminder
	index     map[string]*Reminder

	store    Store
	key      string
	notifier Notifier
	clk      clock.Clock
	log      logger.Logger
}

// NewRegistry creates an empty registry persisting through store under
// DefaultStoreKey. The notifier is announced to on Create; pass nil to
// disable announcements. A nil clk uses the wall clock.
func NewRegistry(store Store, notifier Notifier, clk clock.Clock, l logger.Logger) *Registry {
	if clk == nil {
		clk = clock.New()
	}
	if l == nil {
		l = logger.NewNopLogger()
	}
	return &Registry{
		index:    make(map[string]*Reminder),
		store:    store,
		key:      DefaultStoreKey,
		notifier: notifier,
		clk:      clk,
		log:      l,
	}
}

// Create validates the input, appends a new pending reminder due at
// now+delay, persists the collection, and announces it with kind "set".
// A failed announcement is logged, never returned; the reminder is
// created regardless.
func (r *Registry) Create(message string, delay time.Duration) (*Reminder, error) {
	if strings.TrimSpace(message) == "" {
		return nil, &ValidationError{Field: "message", Reason: "must not be blank"}
	}
	if delay <= 0 {
		return nil, &ValidationError{Field: "delay", Reason: "must be positive"}
	}

	rem := &Reminder{
		ID:      uuid.NewString(),
		Message: message,
		DueAt:   r.clk.Now().UnixMilli() + delay.Milliseconds(),
	}

	r.mu.Lock()
	r.reminders = append(r.reminders, rem)
	r.index[rem.ID] = rem
	r.persistLocked()
	out := *rem
	r.mu.Unlock()

	if r.notifier != nil {
		if err := r.notifier.Notify(Notification{
			Kind:    KindSet,
			Message: rem.Message,
			DueAt:   rem.DueAt,
		}); err != nil {
			r.log.Warning("set announcement failed: %v", err)
		}
	}
	return &out, nil
}

// Delete removes the reminder with the given id. Removing an unknown id
// is a no-op; the collection is persisted only when something changed.
func (r *Registry) Delete(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.index[id]; !ok {
		return
	}
	delete(r.index, id)
	for i, rem := range r.reminders {
		if rem.ID == id {
			r.reminders = append(r.reminders[:i], r.reminders[i+1:]...)
			break
		}
	}
	r.persistLocked()
}

// List returns a copy of the collection in insertion order.
func (r *Registry) List() []Reminder {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Reminder, 0, len(r.reminders))
	for _, rem := range r.reminders {
		out = append(out, *rem)
	}
	return out
}

// Get returns the reminder with the given id, or false when absent.
func (r *Registry) Get(id string) (Reminder, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	rem, ok := r.index[id]
	if !ok {
		return Reminder{}, false
	}
	return *rem, true
}

// DuePending returns every reminder whose due time has passed at
// nowMillis and which has not been triggered yet.
func (r *Registry) DuePending(nowMillis int64) []Reminder {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []Reminder
	for _, rem := range r.reminders {
		if rem.Due(nowMillis) && !rem.Triggered {
			out = append(out, *rem)
		}
	}
	return out
}

// MarkTriggered flips the reminder's triggered flag to true and persists.
// It reports whether the flag transitioned; marking an already-triggered
// or unknown reminder is a no-op.
func (r *Registry) MarkTriggered(id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	rem, ok := r.index[id]
	if !ok || rem.Triggered {
		return false
	}
	rem.Triggered = true
	r.persistLocked()
	return true
}

// Len returns the number of reminders in the collection.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.reminders)
}

// Load replaces the in-memory collection with the store's contents.
// A missing blob yields an empty collection; an unparseable blob is
// logged and also yields an empty collection. Load never fails.
func (r *Registry) Load() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.reminders = nil
	r.index = make(map[string]*Reminder)

	blob, err := r.store.Get(r.key)
	if err != nil {
		r.log.Warning("failed reading persisted reminders, starting fresh: %v", err)
		return
	}
	if len(blob) == 0 {
		return
	}

	var loaded []*Reminder
	if err := json.Unmarshal(blob, &loaded); err != nil {
		r.log.Warning("failed decoding persisted reminders, starting fresh: %v", err)
		return
	}
	for _, rem := range loaded {
		if rem == nil || rem.ID == "" {
			continue
		}
		if _, dup := r.index[rem.ID]; dup {
			continue
		}
		r.reminders = append(r.reminders, rem)
		r.index[rem.ID] = rem
	}
}

// Flush clears both the in-memory collection and the persisted blob.
// Used by the explicit teardown path.
func (r *Registry) Flush() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.reminders = nil
	r.index = make(map[string]*Reminder)
	if err := r.store.Delete(r.key); err != nil {
		r.log.Warning("failed clearing persisted reminders: %v", err)
	}
}

// persistLocked writes the whole collection to the store. Callers must
// hold the write lock. Store failures are logged, never fatal.
func (r *Registry) persistLocked() {
	blob, err := json.Marshal(r.reminders)
	if err != nil {
		r.log.Error("failed encoding reminders: %v", err)
		return
	}
	if err := r.store.Set(r.key, blob); err != nil {
		r.log.Warning("failed persisting reminders: %v", err)
	}
}
