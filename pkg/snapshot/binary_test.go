package snapshot_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"codesnap/pkg/snapshot"
)

func writeTestFile(t *testing.T, dir, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, data, 0o644))
	return path
}

func TestIsBinaryFile(t *testing.T) {
	t.Parallel()

	t.Run("should classify plain ASCII text as text", func(t *testing.T) {
		t.Parallel()

		// given
		path := writeTestFile(t, t.TempDir(), "plain.txt", []byte("hello world\nthis is text\n"))

		// when
		binary, err := snapshot.IsBinaryFile(path)

		// then
		require.NoError(t, err)
		assert.False(t, binary)
	})

	t.Run("should classify a file starting with NUL as binary regardless of size", func(t *testing.T) {
		t.Parallel()

		// given
		data := append([]byte{0x00}, bytes.Repeat([]byte("a"), 100)...)
		path := writeTestFile(t, t.TempDir(), "nul.dat", data)

		// when
		binary, err := snapshot.IsBinaryFile(path)

		// then
		require.NoError(t, err)
		assert.True(t, binary)
	})

	t.Run("should classify exactly 31 percent non-text bytes as binary", func(t *testing.T) {
		t.Parallel()

		// given 31 of 100 bytes below 0x07
		data := append(bytes.Repeat([]byte{0x01}, 31), bytes.Repeat([]byte("a"), 69)...)
		path := writeTestFile(t, t.TempDir(), "high.dat", data)

		// when
		binary, err := snapshot.IsBinaryFile(path)

		// then
		require.NoError(t, err)
		assert.True(t, binary)
	})

	t.Run("should classify exactly 30 percent non-text bytes as text", func(t *testing.T) {
		t.Parallel()

		// given 30 of 100 bytes below 0x07
		data := append(bytes.Repeat([]byte{0x01}, 30), bytes.Repeat([]byte("a"), 70)...)
		path := writeTestFile(t, t.TempDir(), "boundary.dat", data)

		// when
		binary, err := snapshot.IsBinaryFile(path)

		// then
		require.NoError(t, err)
		assert.False(t, binary)
	})

	t.Run("should classify an empty file as text", func(t *testing.T) {
		t.Parallel()

		// given
		path := writeTestFile(t, t.TempDir(), "empty.txt", nil)

		// when
		binary, err := snapshot.IsBinaryFile(path)

		// then
		require.NoError(t, err)
		assert.False(t, binary)
	})

	t.Run("should exempt whitespace and bytes 7 through 14 from the ratio", func(t *testing.T) {
		t.Parallel()

		// given a file that is mostly tabs, newlines, bells and form feeds
		data := append(bytes.Repeat([]byte{0x09, 0x0A, 0x0D, 0x07, 0x0C, 0x0E}, 50), []byte("end")...)
		path := writeTestFile(t, t.TempDir(), "controls.txt", data)

		// when
		binary, err := snapshot.IsBinaryFile(path)

		// then
		require.NoError(t, err)
		assert.False(t, binary)
	})

	t.Run("should return an error for an unreadable file", func(t *testing.T) {
		t.Parallel()

		// given
		path := filepath.Join(t.TempDir(), "missing.txt")

		// when
		_, err := snapshot.IsBinaryFile(path)

		// then
		assert.Error(t, err)
	})
}
