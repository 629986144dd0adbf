package sorter

import (
	"path/filepath"
	"strings"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// Extension returns the text after the last dot of the base name of path,
// or "" when there is none. A leading dot alone (".bashrc") does not start an
// extension.
func Extension(path string) string {
	name := filepath.Base(path)
	i := strings.LastIndexByte(name, '.')
	if i <= 0 {
		return ""
	}
	return name[i+1:]
}

// Stem returns the base name of path without its final extension and dot.
func Stem(path string) string {
	name := filepath.Base(path)
	i := strings.LastIndexByte(name, '.')
	if i <= 0 {
		return name
	}
	return name[:i]
}

// Filter decides which files take part in a run.
type Filter struct {
	exclude map[string]struct{}
	only    map[string]struct{}
}

func NewFilter(exclude, only []string) *Filter {
	return &Filter{exclude: toSet(exclude), only: toSet(only)}
}

func toSet(exts []string) map[string]struct{} {
	set := make(map[string]struct{}, len(exts))
	for _, e := range exts {
		set[e] = struct{}{}
	}
	return set
}

// Eligible reports whether the file at path is in scope. The caller must
// have excluded directories already.
func (f *Filter) Eligible(path string) bool {
	ext := Extension(path)
	if len(f.only) > 0 {
		_, ok := f.only[ext]
		return ok
	}
	_, excluded := f.exclude[ext]
	return !excluded
}

func (f *Filter) String() string {
	if len(f.only) > 0 {
		return "only " + joinSet(f.only)
	}
	if len(f.exclude) > 0 {
		return "excluding " + joinSet(f.exclude)
	}
	return "all files"
}

func joinSet(set map[string]struct{}) string {
	keys := maps.Keys(set)
	slices.Sort(keys)
	return "[" + strings.Join(keys, ", ") + "]"
}
