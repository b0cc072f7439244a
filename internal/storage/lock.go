package storage

import (
	"github.com/gofrs/flock"
)

// lockSuffix is appended to the data file path to name its lock file.
const lockSuffix = ".lock"

// fileLock holds an exclusive advisory lock for the duration of one
// Save or Load. The zero value is a no-op lock.
type fileLock struct {
	fl *flock.Flock
}

// acquireLock blocks until the lock for path is held.
func acquireLock(path string) (*fileLock, error) {
	fl := flock.New(path + lockSuffix)
	if err := fl.Lock(); err != nil {
		return nil, &IOError{Op: "lock", Path: path + lockSuffix, Err: err}
	}
	return &fileLock{fl: fl}, nil
}

func (l *fileLock) release() error {
	if l.fl == nil {
		return nil
	}
	if err := l.fl.Unlock(); err != nil {
		return &IOError{Op: "unlock", Path: l.fl.Path(), Err: err}
	}
	return nil
}
