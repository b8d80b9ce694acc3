package common

// Environment variable names for configuration.
const (
	// SocketPathEnv overrides the Unix socket path.
	SocketPathEnv = "REMINDCTL_SOCKET_PATH"

	// TCPPortEnv overrides the TCP fallback port.
	TCPPortEnv = "REMINDCTL_TCP_PORT"

	// ForceTCPEnv forces clients and daemon onto TCP.
	ForceTCPEnv = "REMINDCTL_FORCE_TCP"

	// PipeNameEnv overrides the Windows named pipe name.
	PipeNameEnv = "REMINDCTL_PIPE_NAME"
)
