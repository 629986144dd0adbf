package sorter

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// Assignments tracks the destinations claimed during one planning pass and
// hands out "stem_N.ext" variants, starting at 2, for repeated ones.
type Assignments struct {
	claimed map[string]struct{}
	// onDisk also treats paths that already exist as claimed.
	onDisk bool
}

func NewAssignments(onDisk bool) *Assignments {
	return &Assignments{claimed: make(map[string]struct{}), onDisk: onDisk}
}

func (a *Assignments) taken(path string) bool {
	if _, ok := a.claimed[path]; ok {
		return true
	}
	if a.onDisk {
		if _, err := os.Lstat(path); err == nil {
			return true
		}
	}
	return false
}

// Claim returns candidate, or its first unclaimed numbered variant, and
// records the result.
func (a *Assignments) Claim(candidate string) string {
	final := candidate
	for n := 2; a.taken(final); n++ {
		final = Suffixed(candidate, n)
	}
	a.claimed[final] = struct{}{}
	return final
}

func (a *Assignments) Len() int {
	return len(a.claimed)
}

// Suffixed inserts "_n" before the last dot of the base name of path, or
// appends it when the name has no dot: "a/2022 test." becomes "a/2022 test_2.".
func Suffixed(path string, n int) string {
	dir, name := filepath.Split(path)
	suffix := "_" + strconv.Itoa(n)
	if i := strings.LastIndexByte(name, '.'); i >= 0 {
		return dir + name[:i] + suffix + name[i:]
	}
	return dir + name + suffix
}
