package common

import "github.com/remindctl/remindctl/pkg/remindlib"

// AddParams is the input for reminder.add.
type AddParams struct {
	Message string `json:"message"`
	DelayMS int64  `json:"delay_ms"`
}

// AddResult is the response for reminder.add.
type AddResult struct {
	Reminder remindlib.Reminder `json:"reminder"`
}

// RemoveParams is the input for reminder.remove.
type RemoveParams struct {
	ID string `json:"id"`
}

// RemoveResult is the response for reminder.remove.
type RemoveResult struct {
	Removed bool `json:"removed"`
}

// ListResult is the response for reminder.list, in insertion order.
type ListResult struct {
	Reminders []remindlib.Reminder `json:"reminders"`
}

// PartitionParams is the input for reminder.partition. A nil NowMS uses
// the daemon clock.
type PartitionParams struct {
	NowMS *int64 `json:"now_ms,omitempty"`
}

// PartitionResult is the response for reminder.partition.
type PartitionResult struct {
	Active  []remindlib.Reminder `json:"active"`
	Expired []remindlib.Reminder `json:"expired"`
}

// StopParams is the input for daemon.stop. Flush additionally clears the
// in-memory collection and the persisted blob before shutdown.
type StopParams struct {
	Flush bool `json:"flush,omitempty"`
}

// StopResult is the response for daemon.stop.
type StopResult struct {
	Stopping bool `json:"stopping"`
}

// PokeResult is the response for daemon.poke.
type PokeResult struct {
	Poked bool `json:"poked"`
}

// VersionResult is the response for system.version.
type VersionResult struct {
	Version   string `json:"version"`
	Commit    string `json:"commit,omitempty"`
	BuildType string `json:"buildType,omitempty"`
}

// ReminderNotification is the payload of reminder.set and reminder.trigger
// push notifications.
type ReminderNotification struct {
	Kind    string `json:"kind"`
	Message string `json:"message"`
	DueAt   int64  `json:"due_at"`
}
