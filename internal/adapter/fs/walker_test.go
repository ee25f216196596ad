package fs

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
}

func TestResolve_SingleFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "movies.csv")
	writeFile(t, path, "a,b\n")

	files, err := Resolve(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(files) != 1 {
		t.Fatalf("expected 1 file, got %d", len(files))
	}
	if files[0].Size != 4 {
		t.Errorf("expected size 4, got %d", files[0].Size)
	}
}

func TestResolve_GlobSorted(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "b", "part2.csv"), "x")
	writeFile(t, filepath.Join(dir, "a", "part1.csv"), "x")
	writeFile(t, filepath.Join(dir, "a", "notes.txt"), "x")

	files, err := Resolve(filepath.Join(dir, "**", "*.csv"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(files) != 2 {
		t.Fatalf("expected 2 csv files, got %d", len(files))
	}
	if filepath.Base(files[0].Path) != "part1.csv" || filepath.Base(files[1].Path) != "part2.csv" {
		t.Errorf("expected sorted paths, got %s, %s", files[0].Path, files[1].Path)
	}
}

func TestResolve_NoMatch(t *testing.T) {
	files, err := Resolve(filepath.Join(t.TempDir(), "*.csv"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(files) != 0 {
		t.Errorf("expected no files, got %d", len(files))
	}
}

func TestResolve_BadPattern(t *testing.T) {
	if _, err := Resolve("data/[.csv"); err == nil {
		t.Error("expected error for malformed pattern")
	}
}
