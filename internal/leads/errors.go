package leads

import (
	"errors"
	"fmt"
)

// ErrValidation is returned when name or email is missing from a submission.
var ErrValidation = errors.New("name and email are required")

// StorageError reports a failed primary write. The submission was not accepted.
type StorageError struct {
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("leads: store lead: %v", e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

// MirrorWriteError reports a failed best-effort write to a secondary sink.
// It is logged and counted, never returned to the caller of Submit.
type MirrorWriteError struct {
	Sink string
	Err  error
}

func (e *MirrorWriteError) Error() string {
	return fmt.Sprintf("leads: mirror %s: %v", e.Sink, e.Err)
}

func (e *MirrorWriteError) Unwrap() error {
	return e.Err
}
