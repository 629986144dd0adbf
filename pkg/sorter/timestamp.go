package sorter

import (
	"fmt"
	"time"

	"github.com/djherbis/times"
)

// Resolve returns the requested timestamp of path, truncated to whole seconds
// and expressed in loc. A nil loc means time.Local.
func Resolve(path string, kind DateKind, loc *time.Location) (time.Time, error) {
	ts, err := times.Stat(path)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %s: %v", ErrMetadataUnavailable, path, err)
	}
	var t time.Time
	switch kind {
	case Modified:
		t = ts.ModTime()
	case Accessed:
		t = ts.AccessTime()
	case Created:
		if !ts.HasBirthTime() {
			return time.Time{}, fmt.Errorf("%w: creation time of %s", ErrTimestampKindUnsupported, path)
		}
		t = ts.BirthTime()
	default:
		return time.Time{}, fmt.Errorf("%w: unknown date kind %q", ErrConfigParse, string(kind))
	}
	if loc == nil {
		loc = time.Local
	}
	return time.Unix(t.Unix(), 0).In(loc), nil
}
