// Package scheduler drives the reminder trigger state machine for the
// remindctl daemon. A single goroutine polls the registry on a fixed
// interval; an out-of-band poke (a client attaching, or an explicit RPC)
// runs the same tick logic early. Each tick selects every due, untriggered
// reminder, delivers a trigger notification, and marks the reminder
// triggered only when delivery succeeded — a failed delivery leaves the
// reminder pending for the next tick.
//
// Tick execution is serialized by a mutex, so overlapping invocations can
// never notify the same reminder twice. Reminders that came due while the
// process was stopped are caught up by the first tick after start; there
// is no separate catch-up path.
package scheduler
