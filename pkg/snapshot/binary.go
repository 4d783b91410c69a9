// File: pkg/snapshot/binary.go
package snapshot

import (
	"errors"
	"io"
	"os"
)

// sniffLen is how many leading bytes are examined when classifying a file.
const sniffLen = 8000

// binaryThreshold is the non-text byte ratio above which a file counts as
// binary. The comparison is strict: exactly 30% is still text.
const binaryThreshold = 0.30

// IsBinaryFile classifies the file at path as binary or text by inspecting
// its first sniffLen bytes. Any NUL byte classifies the file binary
// immediately; otherwise the ratio of non-text bytes decides. Empty files
// are text. Read errors propagate to the caller.
func IsBinaryFile(path string) (bool, error) {
	file, err := os.Open(path)
	if err != nil {
		return false, err
	}
	defer file.Close()

	buffer := make([]byte, sniffLen)
	n, err := io.ReadFull(file, buffer)
	if err != nil && !errors.Is(err, io.EOF) && !errors.Is(err, io.ErrUnexpectedEOF) {
		return false, err
	}
	if n == 0 {
		return false, nil
	}

	nonText := 0
	for _, b := range buffer[:n] {
		if b == 0x00 {
			return true, nil
		}
		if isNonTextByte(b) {
			nonText++
		}
	}

	return float64(nonText)/float64(n) > binaryThreshold, nil
}

// isNonTextByte reports whether b counts toward the binary ratio. Bytes 7
// through 14 (which include tab, LF and CR) are exempt control characters.
func isNonTextByte(b byte) bool {
	return b < 7 || (b > 14 && b < 32)
}
