package pkg

import (
	"context"
	"io"
	"os"
	"os/exec"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// Respawner starts a replacement process and forgets about it.
type Respawner struct {
	stdin io.Reader
}

func NewRespawner() *Respawner {
	return &Respawner{stdin: os.Stdin}
}

// command builds the child. Stdout and Stderr stay nil, which os/exec wires
// to os.DevNull; stdin is inherited.
func (r *Respawner) command(name string, args ...string) *exec.Cmd {
	cmd := exec.Command(name, args...)
	cmd.Stdin = r.stdin
	return cmd
}

// Respawn looks name up in PATH, starts it and returns the child pid. The
// child is not waited for.
func (r *Respawner) Respawn(ctx context.Context, name string, args ...string) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	cmd := r.command(name, args...)
	if cmd.Err != nil {
		return 0, errors.Wrapf(ErrSpawnFailure, "%s: %v", name, cmd.Err)
	}
	if err := cmd.Start(); err != nil {
		return 0, errors.Wrapf(ErrSpawnFailure, "%s: %v", name, err)
	}
	pid := cmd.Process.Pid
	logrus.WithField("pid", pid).WithField("path", cmd.Path).Debugln("spawned")
	if err := cmd.Process.Release(); err != nil {
		logrus.WithField("pid", pid).WithError(err).Warnln("release child")
	}
	return pid, nil
}
