// Package tailreader reads newly appended lines from a growing, rotatable
// log file using persisted byte offsets.
package tailreader

import (
	"bytes"
	"errors"
	"io"
	"os"
	"strings"

	"github.com/mclog/mclog-go/internal/safefile"
)

// replacement substitutes invalid byte sequences during decoding, so a
// corrupt or truncated write never fails a whole read.
const replacement = "�"

// Read returns the complete lines appended to path since offset, plus the
// new offset to persist for the next cycle.
//
// Behavior:
//   - Missing file: (nil, offset, nil) - not an error, nothing new.
//   - File smaller than offset: the log was rotated; reading restarts from
//     byte 0. Lines written to the rotated-out file are not recovered.
//   - The offset only advances past the last complete line. A partially
//     written final line observed mid-write is left in place and re-read
//     whole on the next cycle.
func Read(path string, offset int64) ([]string, int64, error) {
	f, info, err := safefile.OpenRegular(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, offset, nil
		}
		return nil, offset, err
	}
	defer f.Close()

	if info.Size() < offset {
		// Log rotation: start over from the beginning.
		offset = 0
	}

	if _, err := f.Seek(offset, io.SeekStart); err != nil {
		return nil, offset, err
	}
	data, err := io.ReadAll(f)
	if err != nil {
		return nil, offset, err
	}

	// Only consume up to the last newline; the remainder is an incomplete
	// line still being written.
	end := bytes.LastIndexByte(data, '\n')
	if end < 0 {
		return nil, offset, nil
	}
	consumed := data[:end+1]

	return decodeLines(consumed), offset + int64(len(consumed)), nil
}

// decodeLines splits consumed bytes (ending in '\n') into lines, trimming
// CR for CRLF logs and substituting invalid UTF-8.
func decodeLines(data []byte) []string {
	raw := strings.Split(string(data), "\n")
	// The trailing element after the final '\n' is always empty.
	raw = raw[:len(raw)-1]

	lines := make([]string, 0, len(raw))
	for _, line := range raw {
		line = strings.TrimSuffix(line, "\r")
		lines = append(lines, strings.ToValidUTF8(line, replacement))
	}
	return lines
}
