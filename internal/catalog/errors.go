// ABOUTME: Error taxonomy for catalog and capacity file loading
// ABOUTME: Separates missing sources from row-level parse failures

package catalog

import (
	"errors"
	"fmt"
)

// ErrDataUnavailable reports that a required source file could not be read.
var ErrDataUnavailable = errors.New("data unavailable")

// ErrMalformedRecord matches any *MalformedRecordError via errors.Is.
var ErrMalformedRecord = errors.New("malformed record")

// MalformedRecordError describes a catalog row that was skipped during load.
type MalformedRecordError struct {
	Row   int    // 1-based row number in the source, header is row 1
	Field string // column header
	Value string
	Err   error
}

func (e *MalformedRecordError) Error() string {
	return fmt.Sprintf("row %d: malformed %s %q: %v", e.Row, e.Field, e.Value, e.Err)
}

func (e *MalformedRecordError) Unwrap() error {
	return e.Err
}

// Is lets errors.Is(err, ErrMalformedRecord) match.
func (e *MalformedRecordError) Is(target error) bool {
	return target == ErrMalformedRecord
}

func unavailable(path string, err error) error {
	return fmt.Errorf("%w: %s: %w", ErrDataUnavailable, path, err)
}
