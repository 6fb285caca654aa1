package runlock

import (
	"fmt"

	"github.com/gofrs/flock"
)

// Lock is a non-blocking single-writer lock. The reconciler's scan+write
// has no atomicity guarantee, so two overlapping scheduled runs could
// append duplicate rows for the same composite key; holding a file lock
// for the whole pass keeps runs mutually exclusive on one machine.
type Lock struct {
	fl *flock.Flock
}

// Acquire tries to take the lock without blocking. held is false when
// another run currently owns it.
func Acquire(path string) (lock *Lock, held bool, err error) {
	fl := flock.New(path)
	locked, err := fl.TryLock()
	if err != nil {
		return nil, false, fmt.Errorf("acquiring run lock %s: %w", path, err)
	}
	if !locked {
		return nil, false, nil
	}
	return &Lock{fl: fl}, true, nil
}

// Release gives the lock up. Safe to call on a nil lock.
func (l *Lock) Release() error {
	if l == nil || l.fl == nil {
		return nil
	}
	return l.fl.Unlock()
}
