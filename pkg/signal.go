package pkg

import (
	"context"

	"github.com/pkg/errors"
	"github.com/shirou/gopsutil/v3/process"
)

// Signaller delivers the termination signal to a single pid.
type Signaller interface {
	Kill(ctx context.Context, pid int32) error
}

// PsutilSignaller sends SIGKILL (TerminateProcess on windows) via gopsutil.
type PsutilSignaller struct{}

func (PsutilSignaller) Kill(ctx context.Context, pid int32) error {
	p, err := process.NewProcessWithContext(ctx, pid)
	if err != nil {
		if isGone(err) {
			return errors.Wrapf(errProcessGone, "pid %d", pid)
		}
		return errors.Wrapf(err, "inspect pid %d", pid)
	}
	if err := p.KillWithContext(ctx); err != nil {
		if isGone(err) {
			return errors.Wrapf(errProcessGone, "pid %d", pid)
		}
		return errors.Wrapf(ErrSignalDenied, "kill pid %d: %v", pid, err)
	}
	return nil
}
