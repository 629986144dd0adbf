package sorter

import (
	"errors"
	"fmt"
)

var (
	ErrSourceRootMissing        = errors.New("source directory does not exist")
	ErrMetadataUnavailable      = errors.New("file metadata unavailable")
	ErrTimestampKindUnsupported = errors.New("timestamp kind not supported on this filesystem")
	ErrConfigParse              = errors.New("invalid configuration")
	ErrRenameFailed             = errors.New("rename failed")
)

// RenameError is returned by Execute when a rename aborts the batch. Index is
// the position of the failed entry in the plan.
type RenameError struct {
	Index       int
	Source      string
	Destination string
	Err         error
}

func (e *RenameError) Error() string {
	return fmt.Sprintf("rename failed at entry %d, %s -> %s: %v", e.Index, e.Source, e.Destination, e.Err)
}

func (e *RenameError) Unwrap() []error {
	return []error{ErrRenameFailed, e.Err}
}
