package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

const testManifest = `
entries:
  - name: a.txt
    start: 0
    end: 5
  - name: b.txt
    start: 6
    end: 11
  - name: c.txt
    start: 12
`

func writeTestFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o666); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestParseManifest(t *testing.T) {
	m, err := ParseManifest([]byte(testManifest))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(m.Entries) != 3 {
		t.Fatalf("entries %d", len(m.Entries))
	}
	if m.Entries[1].End == nil || *m.Entries[1].End != 11 {
		t.Fatalf("entry b end %v", m.Entries[1].End)
	}
	if m.Entries[2].End != nil {
		t.Fatalf("entry c should be open-ended")
	}

	bad := []string{
		"entries:\n  - start: 1\n",
		"entries:\n  - name: ../x\n",
		"entries:\n  - name: a\n  - name: a\n",
		"entries: [",
	}
	for _, b := range bad {
		if _, err := ParseManifest([]byte(b)); err == nil {
			t.Fatalf("expected error for %q", b)
		}
	}
}

func TestRunWindowToStdout(t *testing.T) {
	dir := t.TempDir()
	file := writeTestFile(t, dir, "blob.data", "file1,file2,file3\n")

	for _, mmap := range []string{"-mmap=false", "-mmap=true"} {
		var out bytes.Buffer
		if code := run([]string{mmap, "-start", "6", "-end", "11", file}, &out); code != 0 {
			t.Fatalf("%s: exit code %d", mmap, code)
		}
		if out.String() != "file2" {
			t.Fatalf("%s: got %q", mmap, out.String())
		}
	}

	var out bytes.Buffer
	if code := run([]string{"-start", "9", "-end", "3", file}, &out); code != 1 {
		t.Fatalf("invalid range: exit code %d", code)
	}
	if code := run(nil, &out); code != 2 {
		t.Fatalf("missing file argument: exit code %d", code)
	}

	missing := filepath.Join(dir, "sub", "missing.data")
	if code := run([]string{missing}, &out); code != 1 {
		t.Fatalf("missing input: exit code %d", code)
	}
	if _, err := os.Stat(filepath.Dir(missing)); !os.IsNotExist(err) {
		t.Fatalf("missing input created %s: %v", filepath.Dir(missing), err)
	}

	readOnly := writeTestFile(t, dir, "readonly.data", "file1,file2,file3\n")
	if err := os.Chmod(readOnly, 0o444); err != nil {
		t.Fatalf("chmod: %v", err)
	}
	out.Reset()
	if code := run([]string{"-start", "12", readOnly}, &out); code != 0 {
		t.Fatalf("read-only input: exit code %d", code)
	}
	if out.String() != "file3\n" {
		t.Fatalf("read-only input: got %q", out.String())
	}
}

func TestRunManifestExtraction(t *testing.T) {
	dir := t.TempDir()
	file := writeTestFile(t, dir, "blob.data", "file1,file2,file3\n")
	manifest := writeTestFile(t, dir, "windows.yaml", testManifest)
	outDir := filepath.Join(dir, "out")

	var out bytes.Buffer
	if code := run([]string{"-manifest", manifest, "-out", outDir, file}, &out); code != 0 {
		t.Fatalf("exit code %d", code)
	}

	want := map[string]string{"a.txt": "file1", "b.txt": "file2", "c.txt": "file3\n"}
	for name, content := range want {
		got, err := os.ReadFile(filepath.Join(outDir, name))
		if err != nil {
			t.Fatalf("read %s: %v", name, err)
		}
		if string(got) != content {
			t.Fatalf("%s: got %q want %q", name, got, content)
		}
	}
}
