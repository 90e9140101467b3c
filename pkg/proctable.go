package pkg

import (
	"bytes"
	"context"
	"io"
	"io/fs"
	"os"
	"path"
	"strconv"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

const (
	DefaultProcRoot  = "/proc"
	DefaultLineLimit = 256

	// readDirBatch keeps the directory walk lazy.
	readDirBatch = 64
)

// ProcTable scans a procfs style tree: one numeric directory per process,
// each holding a cmdline pseudo-file.
type ProcTable struct {
	fsys      fs.FS
	lineLimit int
}

func NewProcTable(root string, lineLimit int) *ProcTable {
	return newProcTableFS(os.DirFS(root), lineLimit)
}

func newProcTableFS(fsys fs.FS, lineLimit int) *ProcTable {
	if lineLimit <= 1 {
		lineLimit = DefaultLineLimit
	}
	return &ProcTable{fsys: fsys, lineLimit: lineLimit}
}

func (t *ProcTable) Scan(ctx context.Context) (*Scan, error) {
	f, err := t.fsys.Open(".")
	if err != nil {
		return nil, errors.Wrapf(ErrTableUnavailable, "open process table: %v", err)
	}
	dir, ok := f.(fs.ReadDirFile)
	if !ok {
		f.Close()
		return nil, errors.Wrap(ErrTableUnavailable, "process table root is not a directory")
	}

	var pending []fs.DirEntry
	var readErr error
	eof := false
	next := func() (*Process, error) {
		for {
			if len(pending) == 0 {
				if readErr != nil {
					return nil, errors.Wrapf(ErrTableUnavailable, "read process table: %v", readErr)
				}
				if eof {
					return nil, nil
				}
				entries, err := dir.ReadDir(readDirBatch)
				if err == io.EOF {
					eof = true
				} else if err != nil {
					// entries read before the failure are still served
					readErr = err
				}
				pending = entries
				continue
			}
			entry := pending[0]
			pending = pending[1:]

			if !entry.IsDir() {
				continue
			}
			pid, err := strconv.ParseInt(entry.Name(), 10, 32)
			if err != nil {
				continue
			}
			line, err := t.readCmdline(entry.Name())
			if err != nil {
				logrus.WithField("pid", pid).WithError(err).Debugln("skip process")
				continue
			}
			if len(line) == 0 {
				continue
			}
			return &Process{Pid: int32(pid), Cmdline: string(line)}, nil
		}
	}
	return newScan(ctx, next, f.Close), nil
}

// readCmdline returns the first line of <pid>/cmdline, newline included,
// cut to lineLimit-1 bytes. Longer command lines are silently truncated.
func (t *ProcTable) readCmdline(pid string) ([]byte, error) {
	f, err := t.fsys.Open(path.Join(pid, "cmdline"))
	if err != nil {
		return nil, err
	}
	defer f.Close()

	buf := make([]byte, t.lineLimit-1)
	n, err := io.ReadFull(f, buf)
	if err != nil && err != io.EOF && err != io.ErrUnexpectedEOF {
		return nil, err
	}
	line := buf[:n]
	if i := bytes.IndexByte(line, '\n'); i >= 0 {
		line = line[:i+1]
	}
	return line, nil
}
