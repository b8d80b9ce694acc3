package remindlib

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/zalando/go-keyring"
)

func TestFileStoreRoundTrip(t *testing.T) {
	s := NewFileStore(afero.NewMemMapFs(), "/cfg")

	blob, err := s.Get("reminders")
	if err != nil {
		t.Fatalf("Get on empty store: %v", err)
	}
	if blob != nil {
		t.Fatalf("Get on empty store = %q, want nil", blob)
	}

	want := []byte(`[{"id":"a"}]`)
	if err := s.Set("reminders", want); err != nil {
		t.Fatalf("Set: %v", err)
	}
	got, err := s.Get("reminders")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if !bytes.Equal(got, want) {
		t.Errorf("Get = %q, want %q", got, want)
	}

	if err := s.Delete("reminders"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if err := s.Delete("reminders"); err != nil {
		t.Fatalf("Delete of absent key: %v", err)
	}
	got, err = s.Get("reminders")
	if err != nil || got != nil {
		t.Errorf("Get after Delete = %q, %v; want nil, nil", got, err)
	}
}

func TestFileStoreOverwritesWholesale(t *testing.T) {
	s := NewFileStore(afero.NewMemMapFs(), "/cfg")
	_ = s.Set("reminders", []byte("a much longer first blob"))
	if err := s.Set("reminders", []byte("short")); err != nil {
		t.Fatalf("Set: %v", err)
	}
	got, _ := s.Get("reminders")
	if string(got) != "short" {
		t.Errorf("Get = %q, want %q", got, "short")
	}
}

func TestKeyringStoreRoundTrip(t *testing.T) {
	keyring.MockInit()
	s := NewKeyringStore()

	blob, err := s.Get("reminders")
	if err != nil || blob != nil {
		t.Fatalf("Get on empty keyring = %q, %v; want nil, nil", blob, err)
	}

	want := []byte(`[{"id":"k"}]`)
	if err := s.Set("reminders", want); err != nil {
		t.Fatalf("Set: %v", err)
	}
	got, err := s.Get("reminders")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if !bytes.Equal(got, want) {
		t.Errorf("Get = %q, want %q", got, want)
	}

	if err := s.Delete("reminders"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if err := s.Delete("reminders"); err != nil {
		t.Fatalf("Delete of absent key: %v", err)
	}
}

func TestSQLiteStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.db")
	s, err := NewSQLiteStore(path)
	if err != nil {
		t.Fatalf("NewSQLiteStore: %v", err)
	}
	defer s.Close()

	blob, err := s.Get("reminders")
	if err != nil || blob != nil {
		t.Fatalf("Get on empty db = %q, %v; want nil, nil", blob, err)
	}

	want := []byte(`[{"id":"s"}]`)
	if err := s.Set("reminders", want); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if err := s.Set("reminders", want); err != nil {
		t.Fatalf("Set upsert: %v", err)
	}
	got, err := s.Get("reminders")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if !bytes.Equal(got, want) {
		t.Errorf("Get = %q, want %q", got, want)
	}

	if err := s.Delete("reminders"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	got, err = s.Get("reminders")
	if err != nil || got != nil {
		t.Errorf("Get after Delete = %q, %v; want nil, nil", got, err)
	}
}

func TestDefaultConfigDirHonorsEnv(t *testing.T) {
	t.Setenv(ConfigDirEnv, "/custom/dir")
	dir, err := DefaultConfigDir()
	if err != nil {
		t.Fatalf("DefaultConfigDir: %v", err)
	}
	if dir != "/custom/dir" {
		t.Errorf("DefaultConfigDir = %q, want %q", dir, "/custom/dir")
	}
}
