package prefs

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoreContract(t *testing.T) {
	backends := []struct {
		name string
		open func(t *testing.T) Store
	}{
		{"memory", func(t *testing.T) Store { return NewMemoryStore() }},
		{"file", func(t *testing.T) Store {
			s, err := Open(BackendFile, filepath.Join(t.TempDir(), "prefs.json"))
			require.NoError(t, err)
			return s
		}},
		{"sqlite", func(t *testing.T) Store {
			s, err := Open(BackendSQLite, filepath.Join(t.TempDir(), "prefs.db"))
			require.NoError(t, err)
			return s
		}},
	}

	for _, b := range backends {
		t.Run(b.name, func(t *testing.T) {
			ctx := context.Background()
			s := b.open(t)
			t.Cleanup(func() { _ = s.Close() })

			_, ok, err := s.Get(ctx, "BattingOrder_v1")
			require.NoError(t, err)
			assert.False(t, ok)

			require.NoError(t, s.Set(ctx, "BattingOrder_v1", `["P01"]`))
			v, ok, err := s.Get(ctx, "BattingOrder_v1")
			require.NoError(t, err)
			assert.True(t, ok)
			assert.Equal(t, `["P01"]`, v)

			require.NoError(t, s.Set(ctx, "BattingOrder_v1", "second"))
			v, _, err = s.Get(ctx, "BattingOrder_v1")
			require.NoError(t, err)
			assert.Equal(t, "second", v)

			require.NoError(t, s.Delete(ctx, "BattingOrder_v1"))
			_, ok, err = s.Get(ctx, "BattingOrder_v1")
			require.NoError(t, err)
			assert.False(t, ok)

			require.NoError(t, s.Delete(ctx, "never-set"))

			_, _, err = s.Get(ctx, " ")
			assert.Error(t, err)
			assert.Error(t, s.Set(ctx, "", "x"))
			assert.Error(t, s.Delete(ctx, ""))

			cancelled, cancel := context.WithCancel(ctx)
			cancel()
			assert.ErrorIs(t, s.Set(cancelled, "k", "v"), context.Canceled)
		})
	}
}

func TestOpenUnknownBackend(t *testing.T) {
	_, err := Open("redis", "")
	assert.True(t, errors.Is(err, ErrUnknownBackend), "got %v", err)
}

func TestMemoryRejectsEmptyKey(t *testing.T) {
	err := NewMemoryStore().Set(context.Background(), "", "v")
	assert.ErrorIs(t, err, ErrEmptyKey)
}

func TestFileStore(t *testing.T) {
	t.Run("missing_file_is_empty", func(t *testing.T) {
		s, err := OpenFile(filepath.Join(t.TempDir(), "nested", "prefs.json"))
		require.NoError(t, err)
		_, ok, err := s.Get(context.Background(), "k")
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("creates_parent_dir_on_write", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "nested", "prefs.json")
		s, err := OpenFile(path)
		require.NoError(t, err)
		require.NoError(t, s.Set(context.Background(), "k", "v"))
		_, err = os.Stat(path)
		assert.NoError(t, err)
	})

	t.Run("corrupt_file_fails_open", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "prefs.json")
		require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))
		_, err := OpenFile(path)
		assert.Error(t, err)
	})

	t.Run("non_string_values_kept_as_json", func(t *testing.T) {
		ctx := context.Background()
		path := filepath.Join(t.TempDir(), "prefs.json")
		require.NoError(t, os.WriteFile(path, []byte(`{"order": ["P01", "P02"], "n": 3, "s": "x"}`), 0o644))
		s, err := OpenFile(path)
		require.NoError(t, err)

		v, ok, err := s.Get(ctx, "order")
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, `["P01", "P02"]`, v)

		v, _, err = s.Get(ctx, "n")
		require.NoError(t, err)
		assert.Equal(t, "3", v)

		v, _, err = s.Get(ctx, "s")
		require.NoError(t, err)
		assert.Equal(t, "x", v)
	})

	t.Run("blank_file_is_empty", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "prefs.json")
		require.NoError(t, os.WriteFile(path, []byte("\n"), 0o644))
		_, err := OpenFile(path)
		assert.NoError(t, err)
	})

	t.Run("sees_external_edits", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "prefs.json")
		s, err := OpenFile(path)
		require.NoError(t, err)
		require.NoError(t, os.WriteFile(path, []byte(`{"k":"external"}`), 0o644))
		v, ok, err := s.Get(context.Background(), "k")
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, "external", v)
	})

	t.Run("keeps_other_keys", func(t *testing.T) {
		ctx := context.Background()
		s, err := OpenFile(filepath.Join(t.TempDir(), "prefs.json"))
		require.NoError(t, err)
		require.NoError(t, s.Set(ctx, "a", "1"))
		require.NoError(t, s.Set(ctx, "b", "2"))
		require.NoError(t, s.Delete(ctx, "a"))
		v, ok, err := s.Get(ctx, "b")
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, "2", v)
	})

	t.Run("blank_path", func(t *testing.T) {
		_, err := OpenFile("  ")
		assert.Error(t, err)
	})
}
