package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func TestSaveFileCreatesDirectories(t *testing.T) {
	s := &Storage{}
	path := filepath.Join(t.TempDir(), "results", "nested", "out.json")

	if err := s.SaveFile(path, []byte(`{"ok":true}`)); err != nil {
		t.Fatalf("SaveFile() error = %v", err)
	}

	data, err := s.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if string(data) != `{"ok":true}` {
		t.Errorf("content = %q", data)
	}
}

func TestSaveFileOverwrites(t *testing.T) {
	s := &Storage{}
	path := filepath.Join(t.TempDir(), "out.json")

	if err := s.SaveFile(path, []byte("first")); err != nil {
		t.Fatalf("SaveFile() error = %v", err)
	}
	if err := s.SaveFile(path, []byte("second")); err != nil {
		t.Fatalf("SaveFile() overwrite error = %v", err)
	}

	data, _ := s.ReadFile(path)
	if string(data) != "second" {
		t.Errorf("content = %q, want %q", data, "second")
	}

	entries, err := os.ReadDir(filepath.Dir(path))
	if err != nil {
		t.Fatalf("ReadDir() error = %v", err)
	}
	if len(entries) != 1 {
		t.Errorf("directory holds %d entries, want 1 (no leftover temp files)", len(entries))
	}
}

func TestHasFile(t *testing.T) {
	s := &Storage{}
	path := filepath.Join(t.TempDir(), "exists.txt")

	if s.HasFile(path) {
		t.Error("HasFile() = true for missing file")
	}
	if err := s.SaveFile(path, []byte("x")); err != nil {
		t.Fatalf("SaveFile() error = %v", err)
	}
	if !s.HasFile(path) {
		t.Error("HasFile() = false for existing file")
	}

	stats, err := s.GetFileStats(path)
	if err != nil {
		t.Fatalf("GetFileStats() error = %v", err)
	}
	if stats.SizeBytes != 1 {
		t.Errorf("SizeBytes = %d, want 1", stats.SizeBytes)
	}
}
