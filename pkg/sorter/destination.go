package sorter

import (
	"fmt"
	"path/filepath"
	"time"
)

const (
	yearFolder  = "2006"
	monthFolder = "01"
)

// Builder computes where a file goes: target/YYYY/MM/<date>[ <stem>].<ext>.
// It does not look for collisions.
type Builder struct {
	target       string
	pattern      *dateFormat
	preserveName bool
}

func NewBuilder(target, dateFormat string, preserveName bool) (*Builder, error) {
	if dateFormat == "" {
		return nil, fmt.Errorf("%w: empty date_format", ErrConfigParse)
	}
	p, err := compileDateFormat(dateFormat)
	if err != nil {
		return nil, fmt.Errorf("%w: date_format %q: %v", ErrConfigParse, dateFormat, err)
	}
	return &Builder{target: target, pattern: p, preserveName: preserveName}, nil
}

// Build returns the destination of source for timestamp t. The extension is
// always preceded by a dot, so a file without one ends up named "<date>.".
func (b *Builder) Build(source string, t time.Time) string {
	name := b.pattern.Format(t)
	if b.preserveName {
		name += " " + Stem(source)
	}
	name += "." + Extension(source)
	dir := filepath.Join(b.target, t.Format(yearFolder), t.Format(monthFolder))
	// name is appended verbatim; Join would clean a rendered "." or "..".
	return dir + string(filepath.Separator) + name
}
