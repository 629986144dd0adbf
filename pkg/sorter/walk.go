package sorter

import (
	"fmt"
	"os"
	"path/filepath"
)

// Walk calls fn for every non-directory entry below root. Inside each
// directory the files are visited first, in lexical order, then each
// subdirectory in lexical order, so an unchanged tree is always walked the
// same way.
func Walk(root string, fn func(path string) error) error {
	entries, err := os.ReadDir(root)
	if err != nil {
		return fmt.Errorf("%w: reading %s: %v", ErrMetadataUnavailable, root, err)
	}
	var dirs []string
	for _, e := range entries {
		p := filepath.Join(root, e.Name())
		if e.IsDir() {
			dirs = append(dirs, p)
			continue
		}
		if err := fn(p); err != nil {
			return err
		}
	}
	for _, d := range dirs {
		if err := Walk(d, fn); err != nil {
			return err
		}
	}
	return nil
}

// Files returns the paths Walk would visit, in the same order.
func Files(root string) ([]string, error) {
	var files []string
	err := Walk(root, func(path string) error {
		files = append(files, path)
		return nil
	})
	return files, err
}
