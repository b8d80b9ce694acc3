//go:build windows

package server

import (
	"fmt"
	"net"
	"os"

	"github.com/Microsoft/go-winio"

	"github.com/remindctl/remindctl/common"
)

// createListener creates a named pipe listener with TCP fallback.
// Transport priority: named pipe > TCP.
func (s *Server) createListener() (net.Listener, error) {
	if os.Getenv(common.ForceTCPEnv) == "" {
		l, err := winio.ListenPipe(common.PipePath(), nil)
		if err == nil {
			return l, nil
		}
		s.log.Warning("named pipe unavailable, falling back to tcp: %v", err)
	}
	l, err := net.Listen("tcp", fmt.Sprintf("%s:%d", common.TCPHost, s.port))
	if err != nil {
		return nil, fmt.Errorf("listen: %w", err)
	}
	return l, nil
}

// cleanupListener is a no-op on Windows; the pipe disappears with its
// last handle.
func cleanupListener() {}
