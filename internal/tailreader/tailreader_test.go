package tailreader

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func appendFile(t *testing.T, path, content string) {
	t.Helper()
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if _, err := f.WriteString(content); err != nil {
		t.Fatal(err)
	}
}

func TestRead(t *testing.T) {
	t.Run("missing file is not an error", func(t *testing.T) {
		lines, offset, err := Read(filepath.Join(t.TempDir(), "latest.log"), 42)
		if err != nil {
			t.Fatalf("Read() error = %v", err)
		}
		if len(lines) != 0 || offset != 42 {
			t.Errorf("Read() = (%v, %d), want (empty, 42)", lines, offset)
		}
	})

	t.Run("reads from offset", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "latest.log")
		writeFile(t, path, "first\nsecond\n")

		lines, offset, err := Read(path, 0)
		if err != nil {
			t.Fatalf("Read() error = %v", err)
		}
		if len(lines) != 2 || lines[0] != "first" || lines[1] != "second" {
			t.Errorf("lines = %v", lines)
		}
		if offset != 13 {
			t.Errorf("offset = %d, want 13", offset)
		}

		appendFile(t, path, "third\n")
		lines, offset, err = Read(path, offset)
		if err != nil {
			t.Fatalf("Read() error = %v", err)
		}
		if len(lines) != 1 || lines[0] != "third" {
			t.Errorf("lines = %v", lines)
		}
		if offset != 19 {
			t.Errorf("offset = %d, want 19", offset)
		}
	})

	t.Run("no new writes yields empty batch and unchanged offset", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "latest.log")
		writeFile(t, path, "only\n")

		_, offset, err := Read(path, 0)
		if err != nil {
			t.Fatal(err)
		}
		lines, offset2, err := Read(path, offset)
		if err != nil {
			t.Fatalf("Read() error = %v", err)
		}
		if len(lines) != 0 {
			t.Errorf("lines = %v, want empty", lines)
		}
		if offset2 != offset {
			t.Errorf("offset = %d, want %d", offset2, offset)
		}
	})

	t.Run("rotation resets to start", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "latest.log")
		writeFile(t, path, "a long first generation of log content\n")

		_, offset, err := Read(path, 0)
		if err != nil {
			t.Fatal(err)
		}

		// Simulate rotation: the file shrinks below the prior offset.
		writeFile(t, path, "fresh\n")
		lines, newOffset, err := Read(path, offset)
		if err != nil {
			t.Fatalf("Read() error = %v", err)
		}
		if len(lines) != 1 || lines[0] != "fresh" {
			t.Errorf("lines = %v, want [fresh]", lines)
		}
		if newOffset != 6 {
			t.Errorf("offset = %d, want 6", newOffset)
		}
	})

	t.Run("partial final line is re-read once complete", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "latest.log")
		writeFile(t, path, "complete\npart")

		lines, offset, err := Read(path, 0)
		if err != nil {
			t.Fatalf("Read() error = %v", err)
		}
		if len(lines) != 1 || lines[0] != "complete" {
			t.Errorf("lines = %v, want [complete]", lines)
		}
		if offset != 9 {
			t.Errorf("offset = %d, want 9 (end of last complete line)", offset)
		}

		appendFile(t, path, "ial now done\n")
		lines, _, err = Read(path, offset)
		if err != nil {
			t.Fatal(err)
		}
		if len(lines) != 1 || lines[0] != "partial now done" {
			t.Errorf("lines = %v, want [partial now done]", lines)
		}
	})

	t.Run("invalid utf8 is substituted not fatal", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "latest.log")
		writeFile(t, path, "ok\n\xff\xfe broken\n")

		lines, _, err := Read(path, 0)
		if err != nil {
			t.Fatalf("Read() error = %v", err)
		}
		if len(lines) != 2 {
			t.Fatalf("lines = %v, want 2 entries", lines)
		}
		if lines[1] == "" {
			t.Error("broken line dropped, want substituted content")
		}
	})

	t.Run("crlf lines are trimmed", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "latest.log")
		writeFile(t, path, "windows line\r\n")

		lines, _, err := Read(path, 0)
		if err != nil {
			t.Fatal(err)
		}
		if len(lines) != 1 || lines[0] != "windows line" {
			t.Errorf("lines = %v, want [windows line]", lines)
		}
	})
}

func TestOffsetStore(t *testing.T) {
	t.Run("missing file means zero", func(t *testing.T) {
		store := NewOffsetStore(filepath.Join(t.TempDir(), ".log_offset"))
		offset, err := store.Load()
		if err != nil {
			t.Fatalf("Load() error = %v", err)
		}
		if offset != 0 {
			t.Errorf("offset = %d, want 0", offset)
		}
	})

	t.Run("round trip", func(t *testing.T) {
		store := NewOffsetStore(filepath.Join(t.TempDir(), ".log_offset"))
		if err := store.Save(123456); err != nil {
			t.Fatalf("Save() error = %v", err)
		}
		offset, err := store.Load()
		if err != nil {
			t.Fatalf("Load() error = %v", err)
		}
		if offset != 123456 {
			t.Errorf("offset = %d, want 123456", offset)
		}
	})

	t.Run("corrupt file is an error", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), ".log_offset")
		if err := os.WriteFile(path, []byte("not a number"), 0o644); err != nil {
			t.Fatal(err)
		}
		if _, err := NewOffsetStore(path).Load(); err == nil {
			t.Error("Load() error = nil, want parse error")
		}
	})
}
