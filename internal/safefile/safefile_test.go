package safefile

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

func TestOpenRegular(t *testing.T) {
	t.Run("regular file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "file.txt")
		if err := os.WriteFile(path, []byte("hello"), 0o644); err != nil {
			t.Fatal(err)
		}

		f, info, err := OpenRegular(path)
		if err != nil {
			t.Fatalf("OpenRegular() error = %v", err)
		}
		defer f.Close()

		if info.Size() != 5 {
			t.Errorf("Size() = %d, want 5", info.Size())
		}
	})

	t.Run("missing file", func(t *testing.T) {
		_, _, err := OpenRegular(filepath.Join(t.TempDir(), "missing"))
		if !errors.Is(err, os.ErrNotExist) {
			t.Errorf("OpenRegular() error = %v, want ErrNotExist", err)
		}
	})

	t.Run("directory rejected", func(t *testing.T) {
		_, _, err := OpenRegular(t.TempDir())
		if !errors.Is(err, ErrNotRegularFile) {
			t.Errorf("OpenRegular() error = %v, want ErrNotRegularFile", err)
		}
	})

	t.Run("symlink rejected", func(t *testing.T) {
		if runtime.GOOS == "windows" {
			t.Skip("symlink creation requires privileges on windows")
		}
		dir := t.TempDir()
		target := filepath.Join(dir, "target.txt")
		if err := os.WriteFile(target, []byte("x"), 0o644); err != nil {
			t.Fatal(err)
		}
		link := filepath.Join(dir, "link.txt")
		if err := os.Symlink(target, link); err != nil {
			t.Fatal(err)
		}

		_, _, err := OpenRegular(link)
		if !errors.Is(err, ErrNotRegularFile) {
			t.Errorf("OpenRegular() error = %v, want ErrNotRegularFile", err)
		}
	})
}

func TestWriteAtomic(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "offset")

	if err := WriteAtomic(path, []byte("1024"), 0o644); err != nil {
		t.Fatalf("WriteAtomic() error = %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "1024" {
		t.Errorf("content = %q, want %q", data, "1024")
	}

	// Overwrite must replace, not append.
	if err := WriteAtomic(path, []byte("7"), 0o644); err != nil {
		t.Fatalf("WriteAtomic() error = %v", err)
	}
	data, _ = os.ReadFile(path)
	if string(data) != "7" {
		t.Errorf("content after overwrite = %q, want %q", data, "7")
	}

	// No temp files left behind.
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Errorf("leftover files in dir: %v", entries)
	}
}
