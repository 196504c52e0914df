package config

import (
	"errors"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

const (
	lockFileName     = ".slashrc.lock"
	lockTimeout      = 5 * time.Second
	staleLockTimeout = 30 * time.Second
	lockPollInterval = 50 * time.Millisecond
)

// ErrLockTimeout is returned when the lock cannot be acquired within the
// timeout period.
var ErrLockTimeout = errors.New("config: lock timeout")

// WithLock executes fn while holding a file lock on the config, so
// concurrent processes do not interleave writes.
func WithLock(fn func() error) error {
	lockPath, err := getLockPath()
	if err != nil {
		return err
	}

	lockFile, err := acquireLock(lockPath)
	if err != nil {
		return err
	}

	defer releaseLock(lockFile, lockPath)

	return fn()
}

func getLockPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, lockFileName), nil
}

// acquireLock attempts to acquire an exclusive lock, retrying until the
// timeout is reached. Locks older than staleLockTimeout are broken.
func acquireLock(lockPath string) (*os.File, error) {
	deadline := time.Now().Add(lockTimeout)

	for {
		if info, err := os.Stat(lockPath); err == nil {
			if time.Since(info.ModTime()) > staleLockTimeout {
				_ = os.Remove(lockPath)
			}
		}

		f, err := os.OpenFile(lockPath, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0600)
		if err == nil {
			// PID in the lock file helps debugging stuck locks.
			_, _ = f.WriteString(strconv.Itoa(os.Getpid()))
			return f, nil
		}

		if time.Now().After(deadline) {
			return nil, ErrLockTimeout
		}

		time.Sleep(lockPollInterval)
	}
}

func releaseLock(f *os.File, lockPath string) {
	if f != nil {
		_ = f.Close()
	}
	_ = os.Remove(lockPath)
}
