// Package common provides the shared method names and message types used
// across the remindctl client-server communication layer.
package common

// Method names for the JSON-RPC surface served by the daemon.
const (
	MethodReminderAdd       = "reminder.add"
	MethodReminderRemove    = "reminder.remove"
	MethodReminderList      = "reminder.list"
	MethodReminderPartition = "reminder.partition"
	MethodDaemonPoke        = "daemon.poke"
	MethodDaemonStop        = "daemon.stop"
	MethodSystemVersion     = "system.version"
)

// Push notification method names sent from the daemon to attached clients.
const (
	NotifyReminderSet     = "reminder.set"
	NotifyReminderTrigger = "reminder.trigger"
)

// TCPHost is the loopback host used for the TCP fallback transport.
const TCPHost = "127.0.0.1"

// DefaultTCPPort is the port used when the Unix socket is unavailable.
const DefaultTCPPort = 4427
