package sorter

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

var stamp = time.Date(2022, time.January, 1, 10, 32, 2, 0, time.UTC)

// touch creates root/rel (and its parents) with mtime and atime set to at.
func touch(t *testing.T, root, rel string, at time.Time) string {
	t.Helper()
	p := filepath.Join(root, filepath.FromSlash(rel))
	if err := os.MkdirAll(filepath.Dir(p), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(p, []byte(rel), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.Chtimes(p, at, at); err != nil {
		t.Fatal(err)
	}
	return p
}

func exists(t *testing.T, p string) bool {
	t.Helper()
	_, err := os.Lstat(p)
	return err == nil
}

func newSorter(t *testing.T, cfg Config, opts ...Option) *Sorter {
	t.Helper()
	opts = append([]Option{WithLocation(time.UTC)}, opts...)
	s, err := New(cfg, opts...)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return s
}

func sliceEqual(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
