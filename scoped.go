package justpid

// With locks directory for the duration of fn. When acquisition fails the
// error is returned unchanged and fn never runs. Once the lock is held it
// is released exactly once on every way out of fn: normal return, error
// return, or panic (the panic continues after the pid file is removed).
// fn's error takes precedence; a release failure is reported only when fn
// itself succeeded.
func (l *Locker) With(directory string, fn func() error) (err error) {
	if err := l.Lock(directory); err != nil {
		return err
	}
	defer func() {
		if uerr := l.Unlock(directory); err == nil {
			err = uerr
		}
	}()

	return fn()
}
