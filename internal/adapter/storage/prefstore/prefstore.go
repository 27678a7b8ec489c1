// Package prefstore provides the key-value stores behind the persisted
// user preferences (favorites and theme).
package prefstore

import (
	"fmt"

	"github.com/travelink/hotel-search/internal/domain"
	"github.com/travelink/hotel-search/internal/infrastructure/logger"
)

// Supported backends.
const (
	BackendFile   = "file"
	BackendMemory = "memory"
)

// New opens the store for backend. path is only used by the file backend.
func New(backend, path string, log *logger.Logger) (domain.PreferenceStore, error) {
	switch backend {
	case BackendFile, "":
		store, err := OpenFileStore(path, log)
		if err != nil {
			return nil, err
		}
		return store, nil
	case BackendMemory:
		return NewMemoryStore(nil), nil
	default:
		return nil, fmt.Errorf("unknown preferences backend %q", backend)
	}
}
