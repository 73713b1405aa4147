package justpid

import "github.com/shirou/gopsutil/v4/process"

// Prober answers whether a process with a given PID is currently running.
// It is the single platform-specific capability the locking protocol depends
// on; injecting a fake makes every contention branch reachable in tests.
type Prober interface {
	Alive(pid int) bool
}

// ProberFunc adapts an ordinary function to the Prober interface.
type ProberFunc func(pid int) bool

// Alive calls f(pid).
func (f ProberFunc) Alive(pid int) bool {
	return f(pid)
}

// SystemProber checks liveness against the operating system's process table.
// It is the probe used when New is given a nil Prober.
type SystemProber struct{}

// Alive reports whether a process with the given PID exists. A probe
// failure counts as not running: a claim that cannot be verified is stale.
func (SystemProber) Alive(pid int) bool {
	ok, err := process.PidExists(int32(pid))
	return err == nil && ok
}

// Cmdline returns the command line of the process with the given PID, or
// the empty string when it cannot be resolved. Lock uses it to name the
// holder in LockedError.
func (SystemProber) Cmdline(pid int) string {
	p, err := process.NewProcess(int32(pid))
	if err != nil {
		return ""
	}
	cmdline, err := p.Cmdline()
	if err != nil {
		return ""
	}
	return cmdline
}
