package pkg

import (
	"os"
	"syscall"

	"github.com/pkg/errors"
	"github.com/shirou/gopsutil/v3/process"
)

var (
	ErrTableUnavailable = errors.New("process table unavailable")
	ErrNotFound         = errors.New("process not found")
	ErrSignalDenied     = errors.New("signal denied")
	ErrSpawnFailure     = errors.New("spawn failure")
	ErrAlreadyRunning   = errors.New("process already running")

	// errProcessGone marks the race between resolving a pid and signalling it.
	errProcessGone = errors.New("process already exited")
)

// isGone reports whether err means the target no longer exists.
func isGone(err error) bool {
	return errors.Is(err, errProcessGone) ||
		errors.Is(err, os.ErrProcessDone) ||
		errors.Is(err, syscall.ESRCH) ||
		errors.Is(err, process.ErrorProcessNotRunning)
}
