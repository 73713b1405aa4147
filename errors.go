package justpid

import (
	"errors"
	"fmt"
)

// ErrLocked indicates the directory is claimed by another running process.
// Every acquisition failure caused by contention matches this error via
// errors.Is; all other failures are filesystem problems and never wrap it.
var ErrLocked = errors.New("directory is locked by another running process")

// LockedError is the rich form of a failed acquisition: it names the
// directory, the PID recorded in its pid file, and, when the probe can
// resolve it, the holder's command line.
type LockedError struct {
	Directory string
	PID       int
	Cmdline   string
}

// Error implements the error interface.
func (e *LockedError) Error() string {
	if e.Cmdline != "" {
		return fmt.Sprintf("directory %s is already locked by pid %d (%s)", e.Directory, e.PID, e.Cmdline)
	}
	return fmt.Sprintf("directory %s is already locked by pid %d", e.Directory, e.PID)
}

// Unwrap returns ErrLocked for use with errors.Is.
func (e *LockedError) Unwrap() error {
	return ErrLocked
}
