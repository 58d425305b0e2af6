package platform

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

func TestWriteFileAtomic(t *testing.T) {
	tmp := t.TempDir()
	path := filepath.Join(tmp, "AGENT.md")

	if err := WriteFileAtomic(path, []byte("# Agent\n"), 0644); err != nil {
		t.Fatalf("WriteFileAtomic failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "# Agent\n" {
		t.Errorf("content = %q, want %q", string(data), "# Agent\n")
	}

	if runtime.GOOS != "windows" {
		info, err := os.Stat(path)
		if err != nil {
			t.Fatal(err)
		}
		if perm := info.Mode().Perm(); perm != 0644 {
			t.Errorf("permissions = %o, want %o", perm, 0644)
		}
	}

	// No temp files left behind.
	entries, err := os.ReadDir(tmp)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Errorf("directory has %d entries, want 1", len(entries))
	}
}

func TestWriteFileAtomicEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".gitkeep")
	if err := WriteFileAtomic(path, nil, 0644); err != nil {
		t.Fatalf("WriteFileAtomic failed: %v", err)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	if info.Size() != 0 {
		t.Errorf("size = %d, want 0", info.Size())
	}
}

func TestWriteFileAtomicRefusesExisting(t *testing.T) {
	path := filepath.Join(t.TempDir(), "skills.yaml")
	if err := os.WriteFile(path, []byte("original"), 0644); err != nil {
		t.Fatal(err)
	}

	err := WriteFileAtomic(path, []byte("replacement"), 0644)
	if !errors.Is(err, os.ErrExist) {
		t.Fatalf("err = %v, want os.ErrExist", err)
	}

	data, _ := os.ReadFile(path)
	if string(data) != "original" {
		t.Errorf("existing file was modified: %q", string(data))
	}
}

func TestWriteFileAtomicMissingDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "file.txt")
	if err := WriteFileAtomic(path, []byte("x"), 0644); err == nil {
		t.Fatal("expected error for missing parent directory")
	}
}

func TestWriteFileAtomicMode(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("permission bits are not supported")
	}
	for _, mode := range []os.FileMode{0600, 0640, 0755} {
		path := filepath.Join(t.TempDir(), "script.sh")
		if err := WriteFileAtomic(path, []byte("#!/bin/sh\n"), mode); err != nil {
			t.Fatalf("WriteFileAtomic(%o) failed: %v", mode, err)
		}
		info, err := os.Stat(path)
		if err != nil {
			t.Fatal(err)
		}
		if perm := info.Mode().Perm(); perm != mode {
			t.Errorf("permissions = %o, want %o", perm, mode)
		}
	}
}

func TestWriteFileAtomicCleansUpAfterClose(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "workflows.yaml")

	failure := errors.New("rename refused")
	renameFile = func(string, string) error { return failure }
	t.Cleanup(func() { renameFile = os.Rename })

	err := WriteFileAtomic(path, []byte("workflows: []\n"), 0644)
	if !errors.Is(err, failure) {
		t.Fatalf("err = %v, want %v", err, failure)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 0 {
		t.Errorf("temp file left behind: %v", entries)
	}
}
