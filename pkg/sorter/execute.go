package sorter

import (
	"os"
	"path/filepath"
)

// ProgressFunc is told about every completed rename. percent is
// done*100/total, rounded down.
type ProgressFunc func(done, total, percent int)

// Result lists the renames of a run; Sources[i] became Destinations[i].
type Result struct {
	Sorted       int
	Sources      []string
	Destinations []string
}

// Execute performs plan in order, creating destination directories as
// needed. The first failed rename stops the batch: the returned Result holds
// the renames already done and the error is a *RenameError. Nothing is rolled
// back. With dryRun the filesystem is untouched and the whole plan is returned.
func (s *Sorter) Execute(plan *Plan, dryRun bool, progress ProgressFunc) (*Result, error) {
	if dryRun {
		for _, e := range plan.Entries {
			s.logger.Debug("dry run: %s -> %s", e.Source, e.Destination)
		}
		return &Result{
			Sorted:       len(plan.Entries),
			Sources:      plan.Sources(),
			Destinations: plan.Destinations(),
		}, nil
	}

	total := plan.TotalEligible
	if total < len(plan.Entries) {
		total = len(plan.Entries)
	}
	res := &Result{
		Sources:      make([]string, 0, len(plan.Entries)),
		Destinations: make([]string, 0, len(plan.Entries)),
	}
	dirsCache := make(map[string]bool)
	for i, e := range plan.Entries {
		if err := rename(e, dirsCache); err != nil {
			return res, &RenameError{Index: i, Source: e.Source, Destination: e.Destination, Err: err}
		}
		s.logger.Debug("renamed %s -> %s", e.Source, e.Destination)
		res.Sorted++
		res.Sources = append(res.Sources, e.Source)
		res.Destinations = append(res.Destinations, e.Destination)
		if progress != nil {
			progress(res.Sorted, total, res.Sorted*100/total)
		}
	}
	return res, nil
}

func rename(e Entry, dirsCache map[string]bool) error {
	destDir := filepath.Dir(e.Destination)
	if !dirsCache[destDir] {
		if err := os.MkdirAll(destDir, 0755); err != nil {
			return err
		}
		dirsCache[destDir] = true
	}
	return os.Rename(e.Source, e.Destination)
}
