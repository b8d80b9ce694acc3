package remindcli

import (
	"os"
	"path/filepath"
	"strconv"

	"github.com/remindctl/remindctl/common"
)

// socketPath mirrors the daemon's socket path resolution, honoring
// REMINDCTL_SOCKET_PATH.
func socketPath() string {
	if path := os.Getenv(common.SocketPathEnv); path != "" {
		return path
	}
	return filepath.Join(os.TempDir(), "remindctl.sock")
}

// tcpPort mirrors the daemon's TCP fallback port, honoring
// REMINDCTL_TCP_PORT.
func tcpPort() int {
	if raw := os.Getenv(common.TCPPortEnv); raw != "" {
		if port, err := strconv.Atoi(raw); err == nil && port > 0 && port < 65536 {
			return port
		}
	}
	return common.DefaultTCPPort
}
