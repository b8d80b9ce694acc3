package cmd

import "time"

const (
	DEF_TICK_INTERVAL = time.Second
	DEF_WEB_PORT      = 4428
)

const DESCRIPTION = `
Remindctl schedules one-shot timed reminders inside a long-lived
daemon. Reminders survive restarts and are delivered to every attached
client the moment their due time elapses, including reminders that came
due while the daemon was not running.
`

const (
	AddDescription = `The add command schedules a one-shot reminder that fires
after the given delay.

Example:
        remindctl add "buy milk" --in 2h30m

`
	RemoveDescription = `The remove command deletes a reminder by its id.
Removing an unknown id is not an error.

Example:
        remindctl remove 4f7c1a9e-...

`
	ListDescription = `The list command displays reminders, split into active
and expired. A reminder is expired once its due time has
passed, whether or not it has already fired.

Example:
        remindctl list
        remindctl list --active
        remindctl list --expired

`
	WatchDescription = `The watch command renders a live countdown bar for every
active reminder and exits when the last one comes due.

Example:
        remindctl watch

`
	AttachDescription = `The attach command streams reminder notifications from
the daemon to the terminal until interrupted. Attaching
also triggers a catch-up poll, so reminders that came due
while no client was attached fire immediately.

Example:
        remindctl attach

`
	PokeDescription = `The poke command asks the daemon for an immediate
catch-up poll, firing any reminder whose due time passed
while the daemon was suspended.

Example:
        remindctl poke

`
	StopDescription = `The stop command shuts the daemon down. With --flush the
daemon also clears its in-memory and persisted reminders,
so nothing survives the stop.

Example:
        remindctl stop
        remindctl stop --flush

`
	DaemonDescription = `The daemon command runs the reminder scheduler in the
foreground: it loads persisted reminders, catches up on any
that came due while stopped, polls every second, and serves
the RPC surface for clients.

Example:
        remindctl daemon
        remindctl daemon --store sqlite
        remindctl daemon --hook ~/.config/remindctl/hook.js

`
)
