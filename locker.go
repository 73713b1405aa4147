package justpid

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Locker runs the pid file protocol on behalf of one process identity.
// The identity is captured once at construction; all methods are single,
// non-blocking attempts that open, touch, and close the pid file without
// keeping any handle or state between calls. The zero value is not usable;
// construct with New.
type Locker struct {
	probe Prober
	pid   int
}

// New returns a Locker acting for the current process. A nil probe selects
// SystemProber, the real process-table check.
func New(probe Prober) *Locker {
	if probe == nil {
		probe = SystemProber{}
	}
	return &Locker{
		probe: probe,
		pid:   os.Getpid(),
	}
}

// Lock claims directory by writing the caller's PID into the pid file,
// creating or overwriting it. The claim is refused with a *LockedError
// (matching ErrLocked) only when the pid file already names a different
// process that is still running; in that case the pid file is left
// untouched. A pid file that is absent, does not parse as a PID, or names a
// process that is gone counts as no claim at all and is overwritten.
// Locking a directory the calling process already holds succeeds
// immediately without rewriting the pid file.
//
// The directory must exist. Filesystem failures, including a missing or
// non-directory target, are reported as ordinary wrapped errors, never as
// ErrLocked.
func (l *Locker) Lock(directory string) error {
	if err := checkDirectory(directory); err != nil {
		return err
	}

	pid, ok, err := readPIDFile(directory)
	if err != nil {
		return err
	}
	if ok {
		if pid == l.pid {
			// The pid file already carries our PID; re-entry succeeds.
			return nil
		}
		if l.probe.Alive(pid) {
			return &LockedError{Directory: directory, PID: pid, Cmdline: l.cmdline(pid)}
		}
		// The recorded process is gone; the claim is stale.
	}

	return writePIDFile(directory, l.pid)
}

// Unlock releases directory by removing its pid file. Unlocking a directory
// that is not locked is a no-op: Unlock is idempotent and performs no
// ownership or liveness check. Only a filesystem failure other than absence
// is reported.
func (l *Locker) Unlock(directory string) error {
	if err := os.Remove(PIDPath(directory)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove pid file: %w", err)
	}
	return nil
}

// IsLocked reports whether directory currently holds a live claim: a pid
// file naming any process that is still running, the caller included.
func (l *Locker) IsLocked(directory string) (bool, error) {
	pid, ok, err := readPIDFile(directory)
	if err != nil {
		return false, err
	}
	if !ok {
		return false, nil
	}
	return l.probe.Alive(pid), nil
}

// IsLockedBySelf reports whether the pid file records the calling process's
// own PID. No liveness probe is involved.
func (l *Locker) IsLockedBySelf(directory string) (bool, error) {
	pid, ok, err := readPIDFile(directory)
	if err != nil {
		return false, err
	}
	return ok && pid == l.pid, nil
}

// cmdline resolves the holder's command line when the probe can supply one.
func (l *Locker) cmdline(pid int) string {
	if p, ok := l.probe.(interface{ Cmdline(pid int) string }); ok {
		return p.Cmdline(pid)
	}
	return ""
}

// checkDirectory verifies that the lock target exists and is a directory.
func checkDirectory(directory string) error {
	info, err := os.Stat(directory)
	if err != nil {
		return fmt.Errorf("lock target: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("lock target %s is not a directory", directory)
	}
	return nil
}

// readPIDFile reads and parses the pid file of directory. ok is false when
// the file is absent or its content is not a plain decimal PID; err is set
// only for real I/O failures.
func readPIDFile(directory string) (pid int, ok bool, err error) {
	data, err := os.ReadFile(PIDPath(directory))
	if os.IsNotExist(err) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("read pid file: %w", err)
	}

	// Surrounding whitespace is tolerated, a sign is not. PIDs fit int32 on
	// every supported platform; anything wider is garbage.
	parsed, perr := strconv.ParseUint(strings.TrimSpace(string(data)), 10, 31)
	if perr != nil {
		return 0, false, nil
	}
	return int(parsed), true, nil
}

// writePIDFile records pid as the content of directory's pid file, creating
// or replacing it. The file stays world-readable so other processes can
// inspect the claim.
func writePIDFile(directory string, pid int) error {
	if err := os.WriteFile(PIDPath(directory), []byte(strconv.Itoa(pid)), 0o644); err != nil {
		return fmt.Errorf("write pid file: %w", err)
	}
	return nil
}
