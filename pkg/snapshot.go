package pkg

import (
	"context"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/shirou/gopsutil/v3/process"
	"github.com/sirupsen/logrus"
)

// PsutilTable reads the process table through gopsutil. It serves the
// platforms that have no procfs tree to walk.
type PsutilTable struct {
	lineLimit int
}

func NewPsutilTable(lineLimit int) *PsutilTable {
	if lineLimit <= 1 {
		lineLimit = DefaultLineLimit
	}
	return &PsutilTable{lineLimit: lineLimit}
}

func (t *PsutilTable) Scan(ctx context.Context) (*Scan, error) {
	pids, err := process.PidsWithContext(ctx)
	if err != nil {
		return nil, errors.Wrapf(ErrTableUnavailable, "list pids: %v", err)
	}
	i := 0
	next := func() (*Process, error) {
		for i < len(pids) {
			pid := pids[i]
			i++
			p, err := process.NewProcessWithContext(ctx, pid)
			if err != nil {
				continue
			}
			args, err := p.CmdlineSliceWithContext(ctx)
			if err != nil {
				logrus.WithField("pid", pid).WithError(err).Debugln("skip process")
				continue
			}
			cmdline := joinCmdline(args, t.lineLimit)
			if cmdline == "" {
				continue
			}
			return &Process{Pid: pid, Cmdline: cmdline}, nil
		}
		return nil, nil
	}
	return newScan(ctx, next, nil), nil
}

// joinCmdline rebuilds the NUL separated form procfs shows and cuts it to
// lineLimit-1 bytes like ProcTable does.
func joinCmdline(args []string, lineLimit int) string {
	cmdline := strings.Join(args, "\x00")
	if len(cmdline) > lineLimit-1 {
		cmdline = cmdline[:lineLimit-1]
	}
	return cmdline
}

// NewTable picks the procfs scanner when cfg.ProcRoot is a directory and
// falls back to gopsutil otherwise.
func NewTable(cfg *Config) Table {
	if info, err := os.Stat(cfg.ProcRoot); err == nil && info.IsDir() {
		return NewProcTable(cfg.ProcRoot, cfg.LineLimit)
	}
	logrus.WithField("root", cfg.ProcRoot).Debugln("no procfs root, use gopsutil")
	return NewPsutilTable(cfg.LineLimit)
}
