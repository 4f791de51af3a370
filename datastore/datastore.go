// Package datastore persists named JSON blobs with atomic writes and
// backup retention. Each store (relationships, diary, learned, users)
// lives in its own <name>.json under a common directory; a corrupt or
// unreadable primary falls back to the most recent readable backup.
package datastore

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"
)

// ErrNotFound is returned by Load when neither the blob nor any of its
// backups exist. Callers construct defaults on it.
var ErrNotFound = errors.New("datastore: blob not found")

// Config holds configuration options for the Store.
type Config struct {
	Dir         string
	BackupCount int // backups kept per blob
	Logger      *log.Logger
}

// DefaultConfig returns a default configuration rooted at dir.
func DefaultConfig(dir string) *Config {
	return &Config{
		Dir:         dir,
		BackupCount: 3,
		Logger:      log.New(os.Stderr, "[datastore] ", log.LstdFlags),
	}
}

// Store is a directory of named JSON blobs. Safe for concurrent use.
type Store struct {
	dir      string
	config   *Config
	mu       sync.Mutex
	checksum map[string]string // last saved checksum per blob
}

// New creates a Store with default configuration.
func New(dir string) (*Store, error) {
	return NewWithConfig(DefaultConfig(dir))
}

// NewWithConfig creates a Store with custom configuration.
func NewWithConfig(config *Config) (*Store, error) {
	if config == nil {
		return nil, fmt.Errorf("config cannot be nil")
	}
	if config.Dir == "" {
		return nil, fmt.Errorf("store directory cannot be empty")
	}
	if err := os.MkdirAll(config.Dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create store directory: %w", err)
	}
	if config.Logger == nil {
		config.Logger = log.New(io.Discard, "", 0)
	}
	return &Store{
		dir:      config.Dir,
		config:   config,
		checksum: make(map[string]string),
	}, nil
}

// Dir returns the root directory of the store.
func (s *Store) Dir() string {
	return s.dir
}

// Load reads the named blob into out. On a read or parse failure of the
// primary file it tries backups, newest first. Returns ErrNotFound when
// nothing readable exists.
func (s *Store) Load(name string, out any) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	path := s.blobPath(name)
	data, err := os.ReadFile(path)
	if err == nil {
		if jsonErr := json.Unmarshal(data, out); jsonErr == nil {
			s.checksum[name] = checksum(data)
			return nil
		}
		s.config.Logger.Printf("blob %q is corrupt, trying backups", name)
	} else if !os.IsNotExist(err) {
		s.config.Logger.Printf("blob %q unreadable: %v, trying backups", name, err)
	}

	for _, backup := range s.backups(name) {
		b, err := os.ReadFile(backup)
		if err != nil {
			continue
		}
		if err := json.Unmarshal(b, out); err != nil {
			continue
		}
		s.config.Logger.Printf("blob %q restored from %s", name, filepath.Base(backup))
		return nil
	}

	return ErrNotFound
}

// Save writes the named blob atomically: backup the current file, write a
// temp file, fsync, rename, verify. A save whose content matches the last
// written checksum is skipped.
func (s *Store) Save(name string, v any) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal blob %q: %w", name, err)
	}

	sum := checksum(data)
	if sum == s.checksum[name] {
		return nil
	}

	path := s.blobPath(name)
	if s.config.BackupCount > 0 {
		if err := s.createBackup(name); err != nil {
			s.config.Logger.Printf("failed to back up %q: %v", name, err)
		}
	}

	if err := writeFileAtomic(path, data); err != nil {
		return err
	}

	written, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("verification read of %q failed: %w", name, err)
	}
	if checksum(written) != sum {
		return fmt.Errorf("blob %q checksum mismatch after write", name)
	}

	s.checksum[name] = sum
	return nil
}

func (s *Store) blobPath(name string) string {
	return filepath.Join(s.dir, name+".json")
}

// backups returns backup paths for name, newest first.
func (s *Store) backups(name string) []string {
	matches, err := filepath.Glob(s.blobPath(name) + ".backup.*")
	if err != nil {
		return nil
	}
	// Backup suffixes are sortable timestamps.
	sort.Sort(sort.Reverse(sort.StringSlice(matches)))
	return matches
}

func (s *Store) createBackup(name string) error {
	path := s.blobPath(name)
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil
	}

	stamp := time.Now().Format("20060102_150405.000000000")
	stamp = strings.ReplaceAll(stamp, ".", "_")
	backupPath := fmt.Sprintf("%s.backup.%s", path, stamp)

	src, err := os.Open(path)
	if err != nil {
		return err
	}
	defer src.Close()

	dst, err := os.Create(backupPath)
	if err != nil {
		return err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return err
	}

	s.cleanupOldBackups(name)
	return nil
}

// cleanupOldBackups removes backups of name beyond the configured limit.
func (s *Store) cleanupOldBackups(name string) {
	backups := s.backups(name)
	if len(backups) <= s.config.BackupCount {
		return
	}
	for _, old := range backups[s.config.BackupCount:] {
		os.Remove(old)
	}
}

// writeFileAtomic performs an atomic file write using a temp file and rename.
func writeFileAtomic(path string, data []byte) error {
	tmp := path + ".tmp"

	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return fmt.Errorf("failed to write temp file: %w", err)
	}

	f, err := os.OpenFile(tmp, os.O_RDWR, 0644)
	if err != nil {
		os.Remove(tmp)
		return fmt.Errorf("failed to open temp file for sync: %w", err)
	}
	if err := f.Sync(); err != nil {
		f.Close()
		os.Remove(tmp)
		return fmt.Errorf("failed to sync temp file: %w", err)
	}
	f.Close()

	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("failed to rename temp file: %w", err)
	}
	return nil
}

func checksum(data []byte) string {
	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:])
}
