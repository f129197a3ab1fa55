package mclog

import "github.com/mclog/mclog-go/internal/tailreader"

// TailFile reads the complete lines of the file at path starting at offset
// and returns them together with the offset to resume from. The returned
// offset advances only past the last newline, so a partially written final
// line is re-read on the next call.
//
// A missing file is not an error: it returns no lines and the given offset
// unchanged. If the file shrank below offset (rotation or truncation),
// reading restarts from the beginning.
func TailFile(path string, offset int64) ([]string, int64, error) {
	return tailreader.Read(path, offset)
}
