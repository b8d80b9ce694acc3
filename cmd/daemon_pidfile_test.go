package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/remindctl/remindctl/pkg/remindlib"
)

func TestGetPidFilePath(t *testing.T) {
	tmpDir := t.TempDir()
	t.Setenv(remindlib.ConfigDirEnv, tmpDir)

	path, err := getPidFilePath()
	if err != nil {
		t.Fatalf("getPidFilePath: %v", err)
	}
	if filepath.Dir(path) != tmpDir {
		t.Fatalf("expected path in %s, got %s", tmpDir, path)
	}
	if filepath.Base(path) != pidFileName {
		t.Fatalf("expected base name %s, got %s", pidFileName, filepath.Base(path))
	}
}

func TestWritePidFile(t *testing.T) {
	t.Setenv(remindlib.ConfigDirEnv, t.TempDir())

	if err := WritePidFile(); err != nil {
		t.Fatalf("WritePidFile: %v", err)
	}
	pid, err := ReadPidFile()
	if err != nil {
		t.Fatalf("ReadPidFile: %v", err)
	}
	if pid != os.Getpid() {
		t.Fatalf("expected PID %d, got %d", os.Getpid(), pid)
	}
}

func TestReadPidFile_NotExist(t *testing.T) {
	t.Setenv(remindlib.ConfigDirEnv, t.TempDir())

	_, err := ReadPidFile()
	if err == nil {
		t.Fatal("expected error for non-existent file")
	}
	if !os.IsNotExist(err) {
		t.Fatalf("expected not-exist error, got %v", err)
	}
}

func TestReadPidFile_Invalid(t *testing.T) {
	tmpDir := t.TempDir()
	t.Setenv(remindlib.ConfigDirEnv, tmpDir)

	if err := os.WriteFile(filepath.Join(tmpDir, pidFileName), []byte("junk"), 0644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	if _, err := ReadPidFile(); err == nil {
		t.Fatal("expected error for invalid pid")
	}
}

func TestRemovePidFile_NotExist(t *testing.T) {
	t.Setenv(remindlib.ConfigDirEnv, t.TempDir())

	if err := RemovePidFile(); err != nil {
		t.Fatalf("RemovePidFile on missing file: %v", err)
	}
}

func TestRemovePidFile(t *testing.T) {
	t.Setenv(remindlib.ConfigDirEnv, t.TempDir())

	if err := WritePidFile(); err != nil {
		t.Fatalf("WritePidFile: %v", err)
	}
	if err := RemovePidFile(); err != nil {
		t.Fatalf("RemovePidFile: %v", err)
	}
	if _, err := ReadPidFile(); !os.IsNotExist(err) {
		t.Fatalf("expected not-exist after removal, got %v", err)
	}
}
