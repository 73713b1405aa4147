// Package justpid provides advisory, file-based mutual exclusion over a
// directory. A process claims a directory by writing its PID into a ".pid"
// file directly inside it; cooperating processes inspect that pid file,
// check whether the recorded process is still running, and either back off
// or reclaim a stale claim. The lock is purely advisory: nothing stops a
// process that never looks at the pid file.
//
// Acquisition is a check-then-write sequence, not an atomic create. Two
// processes racing through an acquisition at the same instant can both
// believe they won, with the last write to the pid file winning. Callers
// that need strict mutual exclusion under heavy contention need a stronger
// primitive; this package keeps the file a plain, human-readable pid file
// instead.
//
// A pid file left behind by a crashed process names a PID that is no longer
// running, so the next Lock simply reclaims it. There is no separate
// cleanup step.
package justpid

import "path/filepath"

// PIDFileName is the fixed name of the pid file created inside a locked
// directory.
const PIDFileName = ".pid"

// PIDPath returns the path of the pid file for the given directory.
func PIDPath(directory string) string {
	return filepath.Join(directory, PIDFileName)
}

// defaultLocker backs the package-level functions. It acts for the current
// process and consults the system process table.
var defaultLocker = New(nil)

// Lock claims directory for the current process. See Locker.Lock.
func Lock(directory string) error {
	return defaultLocker.Lock(directory)
}

// Unlock releases directory by removing its pid file. See Locker.Unlock.
func Unlock(directory string) error {
	return defaultLocker.Unlock(directory)
}

// IsLocked reports whether directory is claimed by any running process.
// See Locker.IsLocked.
func IsLocked(directory string) (bool, error) {
	return defaultLocker.IsLocked(directory)
}

// IsLockedBySelf reports whether directory is claimed by the current
// process. See Locker.IsLockedBySelf.
func IsLockedBySelf(directory string) (bool, error) {
	return defaultLocker.IsLockedBySelf(directory)
}

// With locks directory around fn for the current process. See Locker.With.
func With(directory string, fn func() error) error {
	return defaultLocker.With(directory, fn)
}
