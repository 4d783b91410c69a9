package snapshot_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"codesnap/pkg/snapshot"
)

func TestRun(t *testing.T) {
	t.Parallel()

	t.Run("should write a combined artifact with structure and contents", func(t *testing.T) {
		t.Parallel()

		// given
		dir := t.TempDir()
		writeTestFile(t, dir, "a.txt", []byte("hello"))
		require.NoError(t, os.Mkdir(filepath.Join(dir, "sub"), 0o755))
		writeTestFile(t, filepath.Join(dir, "sub"), "b.txt", []byte("world"))
		cfg := snapshot.DefaultConfig()
		cfg.Directory = dir

		// when
		err := snapshot.Run(cfg, zap.NewNop())

		// then
		require.NoError(t, err)
		data, err := os.ReadFile(filepath.Join(dir, "output.txt"))
		require.NoError(t, err)
		artifact := string(data)
		assert.True(t, strings.HasPrefix(artifact, "Directory Structure:\n"))
		assert.Contains(t, artifact, "\nFile Contents:\n")
		assert.Contains(t, artifact, "a.txt (Path: a.txt, Size: 5 bytes")
		assert.Contains(t, artifact, "sub/")
		assert.Contains(t, artifact, "File: b.txt\nPath: sub/b.txt\n\nworld\n\n")
		assert.Less(t,
			strings.Index(artifact, "Directory Structure:"),
			strings.Index(artifact, "File Contents:"))
	})

	t.Run("should not ingest a previous snapshot on re-run", func(t *testing.T) {
		t.Parallel()

		// given
		dir := t.TempDir()
		writeTestFile(t, dir, "a.txt", []byte("hello"))
		cfg := snapshot.DefaultConfig()
		cfg.Directory = dir
		require.NoError(t, snapshot.Run(cfg, zap.NewNop()))

		// when
		err := snapshot.Run(cfg, zap.NewNop())

		// then
		require.NoError(t, err)
		data, err := os.ReadFile(filepath.Join(dir, "output.txt"))
		require.NoError(t, err)
		assert.NotContains(t, string(data), "File: output.txt")
	})

	t.Run("should fail without writing output when the directory is unreadable", func(t *testing.T) {
		t.Parallel()

		// given
		dir := t.TempDir()
		missing := filepath.Join(dir, "missing")
		cfg := snapshot.DefaultConfig()
		cfg.Directory = missing

		// when
		err := snapshot.Run(cfg, zap.NewNop())

		// then
		require.Error(t, err)
		_, statErr := os.Stat(filepath.Join(missing, "output.txt"))
		assert.True(t, os.IsNotExist(statErr))
	})

	t.Run("should keep the structure listing consistent with the content dump", func(t *testing.T) {
		t.Parallel()

		// given
		dir := t.TempDir()
		writeTestFile(t, dir, "keep.txt", []byte("kept"))
		writeTestFile(t, dir, "cred.key", []byte("secret"))
		writeTestFile(t, dir, "raw.dat", []byte{0x00, 0x01})
		cfg := snapshot.DefaultConfig()
		cfg.Directory = dir

		// when
		err := snapshot.Run(cfg, zap.NewNop())

		// then
		require.NoError(t, err)
		data, err := os.ReadFile(filepath.Join(dir, "output.txt"))
		require.NoError(t, err)
		artifact := string(data)
		assert.Contains(t, artifact, "keep.txt")
		assert.NotContains(t, artifact, "cred.key")
		assert.NotContains(t, artifact, "raw.dat")
	})
}
