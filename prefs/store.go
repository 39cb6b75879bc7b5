// Package prefs is a small local key-value store for player preferences.
package prefs

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/milk9111/battingorder/prefs/sqlite"
)

var (
	ErrEmptyKey       = errors.New("prefs: key is required")
	ErrUnknownBackend = errors.New("prefs: unknown storage backend")
)

// Store persists string values under string keys.
type Store interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
	Close() error
}

const (
	BackendMemory = "memory"
	BackendFile   = "file"
	BackendSQLite = "sqlite"
)

// Open returns the store for backend. path is ignored by the memory backend.
func Open(backend, path string) (Store, error) {
	switch strings.ToLower(strings.TrimSpace(backend)) {
	case BackendMemory:
		return NewMemoryStore(), nil
	case BackendFile, "":
		s, err := OpenFile(path)
		if err != nil {
			return nil, err
		}
		return s, nil
	case BackendSQLite:
		s, err := sqlite.Open(path)
		if err != nil {
			return nil, fmt.Errorf("prefs: %w", err)
		}
		return s, nil
	default:
		return nil, fmt.Errorf("%w %q", ErrUnknownBackend, backend)
	}
}

func checkKey(key string) error {
	if strings.TrimSpace(key) == "" {
		return ErrEmptyKey
	}
	return nil
}
