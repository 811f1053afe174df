// Package datastore implements a small persistent key-value document: a flat
// string-keyed mapping serialized as a single JSON object, rewritten wholesale
// on save. Writes go through a temp file and rename so a crash mid-save never
// truncates the document.
package datastore

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
)

// Options tune persistence behavior. Zero values select the defaults.
type Options struct {
	AutoSaveInterval time.Duration // 0 disables the autosave goroutine
	BackupCount      int           // backups kept per document, 0 disables
}

// DefaultOptions are what Open uses.
var DefaultOptions = Options{
	AutoSaveInterval: 10 * time.Second,
	BackupCount:      3,
}

// Store is a persistent map[string]V. Safe for concurrent use.
type Store[V any] struct {
	mu   sync.RWMutex
	data map[string]V

	path string
	opts Options

	// saveMu serializes the whole save path. The autosave goroutine, handler
	// saves and Close can all save at once; without this, checksum updates
	// race and two writers interleave on the shared temp file.
	saveMu       sync.Mutex
	lastChecksum string

	stop chan struct{}
	done chan struct{}
	once sync.Once
}

// Open loads the document at path, creating an empty one if absent.
func Open[V any](path string) (*Store[V], error) {
	return OpenWith[V](path, DefaultOptions)
}

// OpenWith is Open with explicit options.
func OpenWith[V any](path string, opts Options) (*Store[V], error) {
	if path == "" {
		return nil, fmt.Errorf("datastore: empty path")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("datastore: create dir: %w", err)
	}

	s := &Store[V]{
		data: make(map[string]V),
		path: path,
		opts: opts,
		stop: make(chan struct{}),
		done: make(chan struct{}),
	}

	raw, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err):
		if err := s.writeAtomic([]byte("{}")); err != nil {
			return nil, err
		}
	case err != nil:
		return nil, fmt.Errorf("datastore: read %s: %w", path, err)
	default:
		if err := json.Unmarshal(raw, &s.data); err != nil {
			return nil, fmt.Errorf("datastore: invalid document %s: %w", path, err)
		}
		if s.data == nil {
			s.data = make(map[string]V)
		}
		s.lastChecksum = checksum(raw)
	}

	if opts.AutoSaveInterval > 0 {
		go s.autoSave()
	} else {
		close(s.done)
	}
	return s, nil
}

// Get returns the value for key.
func (s *Store[V]) Get(key string) (V, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.data[key]
	return v, ok
}

// Set stores a value under key. Persistence happens on the next save.
func (s *Store[V]) Set(key string, value V) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[key] = value
}

// Update applies fn to the current value for key (zero value if absent) and
// stores the result, all under one lock, so concurrent read-modify-write
// callers never lose an update. Returns the stored value.
func (s *Store[V]) Update(key string, fn func(V) V) V {
	s.mu.Lock()
	defer s.mu.Unlock()
	next := fn(s.data[key])
	s.data[key] = next
	return next
}

// Delete removes key, reporting whether it existed.
func (s *Store[V]) Delete(key string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.data[key]
	delete(s.data, key)
	return ok
}

// Len returns the number of keys.
func (s *Store[V]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.data)
}

// All returns a copy of the whole mapping.
func (s *Store[V]) All() map[string]V {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make(map[string]V, len(s.data))
	for k, v := range s.data {
		out[k] = v
	}
	return out
}

// Save writes the document to disk if it changed since the last save. Only
// one save runs at a time; a concurrent caller blocks and then sees the
// fresh checksum, usually turning its own save into a no-op.
func (s *Store[V]) Save() error {
	s.saveMu.Lock()
	defer s.saveMu.Unlock()

	s.mu.RLock()
	raw, err := json.MarshalIndent(s.data, "", "  ")
	s.mu.RUnlock()
	if err != nil {
		return fmt.Errorf("datastore: marshal: %w", err)
	}

	sum := checksum(raw)
	if sum == s.lastChecksum {
		return nil
	}

	if s.opts.BackupCount > 0 {
		if err := s.backup(); err != nil {
			log.Warn().Err(err).Str("path", s.path).Msg("datastore backup failed")
		}
	}

	if err := s.writeAtomic(raw); err != nil {
		return err
	}
	s.lastChecksum = sum
	return nil
}

// Close stops the autosave goroutine and performs a final save.
func (s *Store[V]) Close() error {
	s.once.Do(func() { close(s.stop) })
	<-s.done
	return s.Save()
}

func (s *Store[V]) autoSave() {
	defer close(s.done)
	ticker := time.NewTicker(s.opts.AutoSaveInterval)
	defer ticker.Stop()
	for {
		select {
		case <-s.stop:
			return
		case <-ticker.C:
			if err := s.Save(); err != nil {
				log.Error().Err(err).Str("path", s.path).Msg("datastore autosave failed")
			}
		}
	}
}

func (s *Store[V]) writeAtomic(raw []byte) error {
	tmp := s.path + ".tmp"
	f, err := os.OpenFile(tmp, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return fmt.Errorf("datastore: open temp file: %w", err)
	}
	if _, err := f.Write(raw); err != nil {
		f.Close()
		os.Remove(tmp)
		return fmt.Errorf("datastore: write temp file: %w", err)
	}
	if err := f.Sync(); err != nil {
		f.Close()
		os.Remove(tmp)
		return fmt.Errorf("datastore: sync temp file: %w", err)
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("datastore: close temp file: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("datastore: rename temp file: %w", err)
	}
	return nil
}

func (s *Store[V]) backup() error {
	if _, err := os.Stat(s.path); os.IsNotExist(err) {
		return nil
	}

	stamp := time.Now().Format("20060102_150405")
	dst := fmt.Sprintf("%s.backup.%s", s.path, stamp)
	raw, err := os.ReadFile(s.path)
	if err != nil {
		return err
	}
	if err := os.WriteFile(dst, raw, 0o644); err != nil {
		return err
	}

	s.pruneBackups()
	return nil
}

func (s *Store[V]) pruneBackups() {
	matches, err := filepath.Glob(s.path + ".backup.*")
	if err != nil || len(matches) <= s.opts.BackupCount {
		return
	}
	// Timestamped names sort oldest-first.
	sort.Strings(matches)
	for _, old := range matches[:len(matches)-s.opts.BackupCount] {
		os.Remove(old)
	}
}

func checksum(raw []byte) string {
	sum := sha256.Sum256(raw)
	return hex.EncodeToString(sum[:])
}
