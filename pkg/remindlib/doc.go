// Package remindlib provides the core reminder model for remindctl: the
// registry that owns the reminder collection, pluggable key/value stores
// that persist it as one JSON blob, the active/expired partition query,
// and the notifier contract used to announce reminders to the outside.
//
// All reminder times are absolute epoch milliseconds. A reminder is
// one-shot: it is created with a due time, stays pending until a trigger
// notification succeeds, and is then marked triggered forever.
package remindlib
