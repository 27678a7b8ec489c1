package prefstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/google/renameio/v2"

	"github.com/travelink/hotel-search/internal/domain"
	"github.com/travelink/hotel-search/internal/infrastructure/logger"
)

// FileStore persists preferences as one JSON object in a file. The file is
// read once on open and replaced atomically with renameio on every Set.
type FileStore struct {
	path string
	log  *logger.Logger

	mu     sync.Mutex
	values map[string]string
}

// OpenFileStore loads path, creating its directory when needed. A missing
// file is an empty store. A file that is not a JSON object of strings is
// moved aside to path+".corrupt" and the store starts empty.
func OpenFileStore(path string, log *logger.Logger) (*FileStore, error) {
	if log == nil {
		log = logger.Nop()
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create preferences directory: %w", err)
	}

	s := &FileStore{
		path:   path,
		log:    log.WithContext("store", path),
		values: make(map[string]string),
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read preferences: %w", err)
	}
	if len(data) == 0 {
		return s, nil
	}

	if err := json.Unmarshal(data, &s.values); err != nil {
		s.values = make(map[string]string)
		s.log.Warn().Err(err).Msg("corrupted preferences file, starting empty")
		if renameErr := os.Rename(path, path+".corrupt"); renameErr != nil {
			s.log.Warn().Err(renameErr).Msg("failed to move corrupted preferences file aside")
		}
	}
	return s, nil
}

// Path returns the backing file path.
func (s *FileStore) Path() string {
	return s.path
}

func (s *FileStore) Get(ctx context.Context, key string) (string, bool, error) {
	if err := ctx.Err(); err != nil {
		return "", false, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.values[key]
	return v, ok, nil
}

// Set stores value and writes the whole file. On a write failure the
// in-memory value is left unchanged.
func (s *FileStore) Set(ctx context.Context, key, value string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	next := make(map[string]string, len(s.values)+1)
	for k, v := range s.values {
		next[k] = v
	}
	next[key] = value

	if err := s.write(next); err != nil {
		return fmt.Errorf("write preferences: %w", err)
	}
	s.values = next
	return nil
}

func (s *FileStore) write(values map[string]string) error {
	data, err := json.MarshalIndent(values, "", "  ")
	if err != nil {
		return err
	}
	return renameio.WriteFile(s.path, data, 0o644, renameio.WithTempDir(filepath.Dir(s.path)))
}

var _ domain.PreferenceStore = (*FileStore)(nil)
