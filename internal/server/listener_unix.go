//go:build !windows

package server

import (
	"fmt"
	"net"
	"os"

	"github.com/remindctl/remindctl/common"
)

// createListener creates a Unix socket listener with TCP fallback.
// Transport priority: Unix socket > TCP.
func (s *Server) createListener() (net.Listener, error) {
	if os.Getenv(common.ForceTCPEnv) == "" {
		socketPath := SocketPath()
		_ = os.Remove(socketPath)
		l, err := net.ListenUnix("unix", &net.UnixAddr{
			Name: socketPath,
			Net:  "unix",
		})
		if err == nil {
			_ = os.Chmod(socketPath, 0o600)
			return l, nil
		}
		s.log.Warning("unix socket unavailable, falling back to tcp: %v", err)
	}
	l, err := net.Listen("tcp", fmt.Sprintf("%s:%d", common.TCPHost, s.port))
	if err != nil {
		return nil, fmt.Errorf("listen: %w", err)
	}
	return l, nil
}

// cleanupListener removes the Unix socket file after shutdown.
func cleanupListener() {
	_ = os.Remove(SocketPath())
}
