package datastore

import (
	"os"
	"path/filepath"
	"testing"
)

type payload struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

func newTestStore(t *testing.T) *Store {
	t.Helper()
	cfg := DefaultConfig(t.TempDir())
	cfg.Logger = nil
	s, err := NewWithConfig(cfg)
	if err != nil {
		t.Fatalf("NewWithConfig: %v", err)
	}
	return s
}

func TestLoadMissingReturnsErrNotFound(t *testing.T) {
	s := newTestStore(t)

	var p payload
	if err := s.Load("relationships", &p); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestSaveThenLoadRoundTrip(t *testing.T) {
	s := newTestStore(t)

	in := payload{Name: "viktor", Count: 150}
	if err := s.Save("relationships", in); err != nil {
		t.Fatalf("Save: %v", err)
	}

	var out payload
	if err := s.Load("relationships", &out); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if out != in {
		t.Fatalf("round trip mismatch: got %+v, want %+v", out, in)
	}
}

func TestSaveSkipsUnchangedContent(t *testing.T) {
	s := newTestStore(t)

	in := payload{Name: "a", Count: 1}
	if err := s.Save("diary", in); err != nil {
		t.Fatalf("first Save: %v", err)
	}
	path := filepath.Join(s.Dir(), "diary.json")
	before, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat: %v", err)
	}

	if err := s.Save("diary", in); err != nil {
		t.Fatalf("second Save: %v", err)
	}
	after, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat: %v", err)
	}
	if !after.ModTime().Equal(before.ModTime()) {
		t.Fatal("identical content was rewritten")
	}

	// No backup should exist: the file never changed after creation.
	if got := len(s.backups("diary")); got != 0 {
		t.Fatalf("expected 0 backups, got %d", got)
	}
}

func TestBackupRotation(t *testing.T) {
	cfg := DefaultConfig(t.TempDir())
	cfg.BackupCount = 2
	cfg.Logger = nil
	s, err := NewWithConfig(cfg)
	if err != nil {
		t.Fatalf("NewWithConfig: %v", err)
	}

	for i := 0; i < 5; i++ {
		if err := s.Save("learned", payload{Count: i}); err != nil {
			t.Fatalf("Save %d: %v", i, err)
		}
	}

	if got := len(s.backups("learned")); got != 2 {
		t.Fatalf("expected 2 backups after rotation, got %d", got)
	}
}

func TestCorruptPrimaryFallsBackToBackup(t *testing.T) {
	s := newTestStore(t)

	if err := s.Save("users", payload{Name: "good", Count: 7}); err != nil {
		t.Fatalf("Save: %v", err)
	}
	// A second distinct save creates a backup of the first.
	if err := s.Save("users", payload{Name: "newer", Count: 8}); err != nil {
		t.Fatalf("Save: %v", err)
	}

	path := filepath.Join(s.Dir(), "users.json")
	if err := os.WriteFile(path, []byte("{not json"), 0644); err != nil {
		t.Fatalf("corrupt write: %v", err)
	}

	var out payload
	if err := s.Load("users", &out); err != nil {
		t.Fatalf("Load after corruption: %v", err)
	}
	if out.Name != "good" {
		t.Fatalf("expected restore from backup, got %+v", out)
	}
}

func TestBlobsAreIsolated(t *testing.T) {
	s := newTestStore(t)

	if err := s.Save("relationships", payload{Name: "r"}); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if err := s.Save("diary", payload{Name: "d"}); err != nil {
		t.Fatalf("Save: %v", err)
	}

	var r, d payload
	if err := s.Load("relationships", &r); err != nil {
		t.Fatalf("Load relationships: %v", err)
	}
	if err := s.Load("diary", &d); err != nil {
		t.Fatalf("Load diary: %v", err)
	}
	if r.Name != "r" || d.Name != "d" {
		t.Fatalf("blobs bled into each other: %+v %+v", r, d)
	}
}
