package remindlib

import "time"

// Reminder represents a single one-shot timed reminder.
// ID, Message and DueAt are immutable after creation; Triggered may
// transition false to true exactly once.
type Reminder struct {
	// ID is the unique identifier of the reminder.
	ID string `json:"id"`
	// Message is the text announced when the reminder fires.
	Message string `json:"message"`
	// DueAt is the absolute due time in epoch milliseconds.
	DueAt int64 `json:"due_at"`
	// Triggered reports whether a trigger notification has succeeded.
	Triggered bool `json:"triggered"`
}

// Due reports whether the reminder's due time has passed at nowMillis.
func (r *Reminder) Due(nowMillis int64) bool {
	return r.DueAt <= nowMillis
}

// DueTime returns the due time as a wall-clock time.
func (r *Reminder) DueTime() time.Time {
	return time.UnixMilli(r.DueAt)
}
