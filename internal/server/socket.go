package server

import (
	"os"
	"path/filepath"
	"strconv"

	"github.com/remindctl/remindctl/common"
)

// SocketPath returns the Unix socket path the daemon listens on,
// honoring the REMINDCTL_SOCKET_PATH environment variable.
func SocketPath() string {
	if path := os.Getenv(common.SocketPathEnv); path != "" {
		return path
	}
	return filepath.Join(os.TempDir(), "remindctl.sock")
}

// TCPPort returns the TCP fallback port, honoring REMINDCTL_TCP_PORT.
func TCPPort() int {
	if raw := os.Getenv(common.TCPPortEnv); raw != "" {
		if port, err := strconv.Atoi(raw); err == nil && port > 0 && port < 65536 {
			return port
		}
	}
	return common.DefaultTCPPort
}
