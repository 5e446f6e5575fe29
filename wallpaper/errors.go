package wallpaper

import (
	"errors"
	"fmt"
)

// ErrNoOrientation is returned when neither landscape nor portrait was selected
var ErrNoOrientation = errors.New("select at least one aspect ratio to extract")

// SetupError aborts a whole run: the source cannot be listed or the destination cannot be created
type SetupError struct {
	Op   string
	Path string
	Err  error
}

func (e *SetupError) Error() string {
	return fmt.Sprintf("failed to %s %s: %v", e.Op, e.Path, e.Err)
}

func (e *SetupError) Unwrap() error { return e.Err }

// IsSetupError reports whether err aborted the run before any file was processed
func IsSetupError(err error) bool {
	var e *SetupError
	return errors.As(err, &e)
}

// FileError records a failure for a single cache entry; the run continues past it
type FileError struct {
	Name string
	Err  error
}

func (e FileError) Error() string {
	return fmt.Sprintf("%s: %v", e.Name, e.Err)
}

func (e FileError) Unwrap() error { return e.Err }
