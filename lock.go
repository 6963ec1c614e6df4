package relstore

import (
	"fmt"
	"os"
	"path/filepath"
	"syscall"
)

// lockFileName is the advisory lock file created under the database
// directory. The lock is held for the lifetime of an open Store and
// makes a second open of the same path fail immediately, in this
// process or any other.
const lockFileName = "LOCK"

type pathLock struct {
	f *os.File
}

// acquirePathLock takes an exclusive non-blocking flock on
// <dir>/LOCK. The directory is created first when create is set, so
// the lock can be taken before the engine touches the path.
func acquirePathLock(dir string, create bool) (*pathLock, error) {
	if create {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, err
		}
	}

	f, err := os.OpenFile(filepath.Join(dir, lockFileName), os.O_RDWR|os.O_CREATE, 0o644)
	if err != nil {
		return nil, err
	}

	if err := syscall.Flock(int(f.Fd()), syscall.LOCK_EX|syscall.LOCK_NB); err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("relstore: database at %s is locked by another handle: %w", dir, err)
	}

	return &pathLock{f: f}, nil
}

func (l *pathLock) release() error {
	_ = syscall.Flock(int(l.f.Fd()), syscall.LOCK_UN)
	return l.f.Close()
}
