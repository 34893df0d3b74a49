package subcursor

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"
)

// helper to create a file stream in a temporary directory with the given content
func newTestFileStream(t *testing.T, content []byte, useMmap bool) (*FileStream, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "nested", "blob.data")
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, content, 0o666); err != nil {
		t.Fatalf("seed file: %v", err)
	}
	opts := DefaultOptions()
	opts.UseMmap = useMmap
	fs, err := OpenFileStream(path, opts)
	if err != nil {
		t.Fatalf("open file stream: %v", err)
	}
	return fs, path
}

func TestFileStreamWindows(t *testing.T) {
	for _, useMmap := range []bool{false, true} {
		fs, path := newTestFileStream(t, []byte("file1,file2,file3\n"), useMmap)
		if useMmap && fs.Mapped() != 18 {
			t.Fatalf("mapped %d bytes, want 18", fs.Mapped())
		}
		h := NewHandle(fs)

		b := mustBuild(t, From(h).Start(6).End(11))
		got, err := io.ReadAll(b)
		if err != nil || string(got) != "file2" {
			t.Fatalf("mmap=%v read: %q %v", useMmap, got, err)
		}

		if _, err := b.WriteAt([]byte("FILE"), 0); err != nil {
			t.Fatalf("mmap=%v writeat: %v", useMmap, err)
		}

		// appending crosses the mapped region
		tail := mustBuild(t, From(h).Start(12))
		if _, err := tail.Seek(0, io.SeekEnd); err != nil {
			t.Fatalf("seek end: %v", err)
		}
		if _, err := tail.Write([]byte("more\n")); err != nil {
			t.Fatalf("mmap=%v append: %v", useMmap, err)
		}
		if _, err := tail.Seek(0, io.SeekStart); err != nil {
			t.Fatalf("seek start: %v", err)
		}
		got, err = io.ReadAll(tail)
		if err != nil || string(got) != "file3\nmore\n" {
			t.Fatalf("mmap=%v tail: %q %v", useMmap, got, err)
		}

		if err := h.Flush(); err != nil {
			t.Fatalf("flush: %v", err)
		}
		if err := fs.Close(); err != nil {
			t.Fatalf("close: %v", err)
		}

		onDisk, err := os.ReadFile(path)
		if err != nil {
			t.Fatalf("read back: %v", err)
		}
		if want := "file1,FILE2,file3\nmore\n"; string(onDisk) != want {
			t.Fatalf("mmap=%v on disk %q want %q", useMmap, onDisk, want)
		}
	}
}

func TestFileStreamCreatesEmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a", "b", "new.data")
	opts := DefaultOptions()
	opts.UseMmap = true
	fs, err := OpenFileStream(path, opts)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer fs.Close()
	if fs.Mapped() != 0 {
		t.Fatalf("empty file should not be mapped")
	}

	h := NewHandle(fs)
	c := mustBuild(t, From(h).Start(4))
	if _, err := c.Write([]byte("body")); err != nil {
		t.Fatalf("write: %v", err)
	}
	if n, _ := h.Len(); n != 8 {
		t.Fatalf("len %d", n)
	}

	head := mustBuild(t, From(h).Start(0).End(4))
	got, err := io.ReadAll(head)
	if err != nil || !bytes.Equal(got, make([]byte, 4)) {
		t.Fatalf("hole: %v %v", got, err)
	}
}

func TestOSFileAsStream(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plain.data")
	if err := os.WriteFile(path, []byte("0123456789"), 0o666); err != nil {
		t.Fatalf("seed: %v", err)
	}
	f, err := os.OpenFile(path, os.O_RDWR, 0)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer f.Close()

	h := NewHandle(f)
	c := mustBuild(t, From(h).Start(3).End(7))
	got, err := io.ReadAll(c)
	if err != nil || string(got) != "3456" {
		t.Fatalf("read: %q %v", got, err)
	}
	if err := c.Flush(); err != nil {
		t.Fatalf("sync: %v", err)
	}
}

func TestFileStreamReadOnly(t *testing.T) {
	dir := t.TempDir()
	opts := DefaultOptions()
	opts.ReadOnly = true

	missing := filepath.Join(dir, "sub", "missing.data")
	if _, err := OpenFileStream(missing, opts); err == nil {
		t.Fatalf("expected error opening missing file read-only")
	}
	if _, err := os.Stat(filepath.Dir(missing)); !os.IsNotExist(err) {
		t.Fatalf("read-only open created parent directory: %v", err)
	}

	path := filepath.Join(dir, "blob.data")
	if err := os.WriteFile(path, []byte("file1,file2,file3\n"), 0o444); err != nil {
		t.Fatalf("write: %v", err)
	}

	for _, useMmap := range []bool{false, true} {
		opts.UseMmap = useMmap
		fs, err := OpenFileStream(path, opts)
		if err != nil {
			t.Fatalf("mmap=%v: open: %v", useMmap, err)
		}
		if !fs.ReadOnly() {
			t.Fatalf("mmap=%v: stream not read-only", useMmap)
		}
		h := NewHandleWithOptions(fs, opts)
		c := mustBuild(t, From(h).Start(6).End(11))

		got, err := io.ReadAll(c)
		if err != nil || string(got) != "file2" {
			t.Fatalf("mmap=%v: read %q err=%v", useMmap, got, err)
		}
		if _, err := c.WriteAt([]byte("X"), 0); !errors.Is(err, ErrReadOnly) {
			t.Fatalf("mmap=%v: expected ErrReadOnly, got %v", useMmap, err)
		}
		if err := h.Flush(); err != nil {
			t.Fatalf("mmap=%v: flush: %v", useMmap, err)
		}
		if err := fs.Close(); err != nil {
			t.Fatalf("mmap=%v: close: %v", useMmap, err)
		}
	}
}
