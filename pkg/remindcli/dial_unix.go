//go:build !windows

package remindcli

import (
	"fmt"
	"net"
	"os"

	"github.com/remindctl/remindctl/common"
)

// dial connects to the daemon, preferring the Unix socket and falling
// back to TCP, matching the daemon's listener priority.
func dial() (net.Conn, error) {
	if os.Getenv(common.ForceTCPEnv) == "" {
		if conn, err := net.Dial("unix", socketPath()); err == nil {
			return conn, nil
		}
	}
	conn, err := net.Dial("tcp", fmt.Sprintf("%s:%d", common.TCPHost, tcpPort()))
	if err != nil {
		return nil, fmt.Errorf("connecting to daemon: %w", err)
	}
	return conn, nil
}
