// ABOUTME: Tests for the file-backed session store
// ABOUTME: Covers read/write round-trips, absent keys, and full clears

package session

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFileStore_SetGet(t *testing.T) {
	s := NewFileStore(filepath.Join(t.TempDir(), "scope"))

	if err := s.Set(KeyToken, "tok-abc"); err != nil {
		t.Fatalf("Set() error = %v", err)
	}

	got, err := s.Get(KeyToken)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if got != "tok-abc" {
		t.Errorf("Get() = %q, want %q", got, "tok-abc")
	}
}

func TestFileStore_GetAbsent(t *testing.T) {
	s := NewFileStore(filepath.Join(t.TempDir(), "scope"))

	got, err := s.Get(KeyToken)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if got != "" {
		t.Errorf("Get() = %q, want empty string for absent key", got)
	}
}

func TestFileStore_TrimsTrailingNewline(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "scope")
	if err := os.MkdirAll(dir, 0700); err != nil {
		t.Fatal(err)
	}
	// A token file edited by hand often carries a trailing newline.
	if err := os.WriteFile(filepath.Join(dir, KeyToken), []byte("tok\n"), 0600); err != nil {
		t.Fatal(err)
	}

	s := NewFileStore(dir)
	got, err := s.Get(KeyToken)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if got != "tok" {
		t.Errorf("Get() = %q, want %q", got, "tok")
	}
}

func TestFileStore_DeleteAbsent(t *testing.T) {
	s := NewFileStore(filepath.Join(t.TempDir(), "scope"))

	if err := s.Delete(KeyToken); err != nil {
		t.Errorf("Delete() of absent key error = %v, want nil", err)
	}
}

func TestDurableStore_ClearSparesConfigFile(t *testing.T) {
	configHome := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", configHome)

	configPath := filepath.Join(configHome, "leadctl", "config.yaml")
	if err := os.MkdirAll(filepath.Dir(configPath), 0700); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(configPath, []byte("backend:\n  base_url: x\n"), 0644); err != nil {
		t.Fatal(err)
	}

	s, err := NewDurableStore()
	if err != nil {
		t.Fatalf("NewDurableStore() error = %v", err)
	}
	if err := s.Set(KeyToken, "tok"); err != nil {
		t.Fatal(err)
	}
	if err := s.Clear(); err != nil {
		t.Fatalf("Clear() error = %v", err)
	}

	if _, err := os.Stat(configPath); err != nil {
		t.Errorf("config file must survive a session wipe: %v", err)
	}
	if got, _ := s.Get(KeyToken); got != "" {
		t.Errorf("Get(token) after Clear() = %q, want empty", got)
	}
}

func TestFileStore_ClearWipesEverything(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "scope")
	s := NewFileStore(dir)

	if err := s.Set(KeyToken, "tok"); err != nil {
		t.Fatal(err)
	}
	if err := s.Set(KeyRole, "Admin"); err != nil {
		t.Fatal(err)
	}
	if err := s.Set("unrelated", "cached"); err != nil {
		t.Fatal(err)
	}

	if err := s.Clear(); err != nil {
		t.Fatalf("Clear() error = %v", err)
	}

	if _, err := os.Stat(dir); !os.IsNotExist(err) {
		t.Error("Clear() must remove the whole scope, unrelated data included")
	}
	for _, key := range []string{KeyToken, KeyRole, "unrelated"} {
		got, err := s.Get(key)
		if err != nil || got != "" {
			t.Errorf("Get(%q) after Clear() = (%q, %v), want empty", key, got, err)
		}
	}
}
