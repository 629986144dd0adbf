package sorter

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
)

type Entry struct {
	Source      string
	Destination string
}

// Plan is the ordered list of renames for one run. Destinations are unique.
type Plan struct {
	Entries []Entry
	// TotalEligible counts files that passed the filter; it only feeds
	// progress reporting.
	TotalEligible int
}

func (p *Plan) Sources() []string {
	out := make([]string, len(p.Entries))
	for i, e := range p.Entries {
		out[i] = e.Source
	}
	return out
}

func (p *Plan) Destinations() []string {
	out := make([]string, len(p.Entries))
	for i, e := range p.Entries {
		out[i] = e.Destination
	}
	return out
}

// Plan walks the source tree and computes a destination for every eligible
// file. It reads the filesystem only.
func (s *Sorter) Plan() (*Plan, error) {
	if err := checkSourceRoot(s.cfg.SourceRoot); err != nil {
		return nil, err
	}

	var eligible []string
	err := Walk(s.cfg.SourceRoot, func(path string) error {
		if s.filter.Eligible(path) {
			eligible = append(eligible, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	plan := &Plan{
		Entries:       make([]Entry, 0, len(eligible)),
		TotalEligible: len(eligible),
	}
	assigned := NewAssignments(s.avoidExisting)
	for _, path := range eligible {
		t, err := Resolve(path, s.cfg.DateKind, s.loc)
		if err != nil {
			return nil, err
		}
		candidate := s.builder.Build(path, t)
		dest := assigned.Claim(candidate)
		if dest != candidate {
			s.logger.Debug("%s collides, using %s", candidate, dest)
		}
		s.logger.Debug("plan %s -> %s", path, dest)
		plan.Entries = append(plan.Entries, Entry{Source: path, Destination: dest})
	}
	return plan, nil
}

func checkSourceRoot(root string) error {
	info, err := os.Stat(root)
	if errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("%w: %s", ErrSourceRootMissing, root)
	}
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrMetadataUnavailable, root, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%w: %s is not a directory", ErrSourceRootMissing, root)
	}
	return nil
}
