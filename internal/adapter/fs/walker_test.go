package fs

import (
	"os"
	"path/filepath"
	"sort"
	"testing"
)

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
}

func TestWalk_SortedAndComplete(t *testing.T) {
	tmpDir := t.TempDir()
	writeFile(t, tmpDir, "b.txt", "world")
	writeFile(t, tmpDir, "a.txt", "hello")
	writeFile(t, tmpDir, filepath.Join("sub", "c.txt"), "nested")

	w := NewWalker(nil, nil)
	files, err := w.Walk(tmpDir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(files) != 3 {
		t.Fatalf("expected 3 files, got %d", len(files))
	}

	got := make([]string, len(files))
	for i, f := range files {
		got[i] = f.RelPath
	}
	if !sort.StringsAreSorted(got) {
		t.Errorf("expected sorted rel paths, got %v", got)
	}
	if got[0] != "a.txt" || got[1] != "b.txt" || got[2] != "sub/c.txt" {
		t.Errorf("unexpected paths: %v", got)
	}

	// Each file is visited exactly once.
	seen := make(map[string]int)
	for _, p := range got {
		seen[p]++
	}
	for p, n := range seen {
		if n != 1 {
			t.Errorf("file %s visited %d times", p, n)
		}
	}
}

func TestWalk_IncludeExclude(t *testing.T) {
	tmpDir := t.TempDir()
	writeFile(t, tmpDir, "keep.go", "package keep")
	writeFile(t, tmpDir, "skip.md", "# skip")
	writeFile(t, tmpDir, filepath.Join("vendor", "dep.go"), "package dep")

	w := NewWalker([]string{"**/*.go"}, []string{"vendor/**"})
	files, err := w.Walk(tmpDir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(files) != 1 {
		t.Fatalf("expected 1 file, got %d: %v", len(files), files)
	}
	if files[0].RelPath != "keep.go" {
		t.Errorf("expected keep.go, got %s", files[0].RelPath)
	}
}

func TestWalk_MissingRoot(t *testing.T) {
	w := NewWalker(nil, nil)
	_, err := w.Walk(filepath.Join(t.TempDir(), "does-not-exist"))
	if err == nil {
		t.Fatal("expected error for missing root")
	}
}

func TestWalk_EmptyRoot(t *testing.T) {
	w := NewWalker(nil, nil)
	files, err := w.Walk(t.TempDir())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(files) != 0 {
		t.Errorf("expected no files, got %d", len(files))
	}
}

func TestIsBinary(t *testing.T) {
	if IsBinary([]byte("plain text\nwith lines\n")) {
		t.Error("text flagged as binary")
	}
	if !IsBinary([]byte{0x7f, 'E', 'L', 'F', 0x00, 0x01}) {
		t.Error("NUL-bearing content not flagged as binary")
	}
}
