package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/remindctl/remindctl/pkg/remindlib"
)

const pidFileName = "daemon.pid"

func getPidFilePath() (string, error) {
	dir, err := remindlib.DefaultConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, pidFileName), nil
}

// WritePidFile records the current process ID so stop and status
// tooling can find the daemon.
func WritePidFile() error {
	path, err := getPidFilePath()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, []byte(strconv.Itoa(os.Getpid())), 0644)
}

// ReadPidFile reads and validates the recorded daemon PID.
func ReadPidFile() (int, error) {
	path, err := getPidFilePath()
	if err != nil {
		return 0, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, err
	}
	pid, err := strconv.Atoi(strings.TrimSpace(string(data)))
	if err != nil {
		return 0, fmt.Errorf("invalid PID in file: %w", err)
	}
	if pid <= 0 {
		return 0, fmt.Errorf("invalid PID: %d", pid)
	}
	return pid, nil
}

// RemovePidFile deletes the PID file. A missing file is not an error.
func RemovePidFile() error {
	path, err := getPidFilePath()
	if err != nil {
		return err
	}
	err = os.Remove(path)
	if os.IsNotExist(err) {
		return nil
	}
	return err
}
