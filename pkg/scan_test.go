package pkg

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sliceScan(ctx context.Context, records []*Process) *Scan {
	i := 0
	return newScan(ctx, func() (*Process, error) {
		if i >= len(records) {
			return nil, nil
		}
		p := records[i]
		i++
		return p, nil
	}, nil)
}

// fakeTable is an in-memory process table. Each Scan sees the records as
// they are at call time.
type fakeTable struct {
	records []*Process
	scans   int
	err     error
}

func newFakeTable(records ...*Process) *fakeTable {
	return &fakeTable{records: records}
}

func (t *fakeTable) Scan(ctx context.Context) (*Scan, error) {
	t.scans++
	if t.err != nil {
		return nil, t.err
	}
	records := append([]*Process(nil), t.records...)
	return sliceScan(ctx, records), nil
}

func (t *fakeTable) add(pid int32, cmdline string) {
	t.records = append(t.records, &Process{Pid: pid, Cmdline: cmdline})
}

func (t *fakeTable) remove(pid int32) {
	kept := t.records[:0]
	for _, p := range t.records {
		if p.Pid != pid {
			kept = append(kept, p)
		}
	}
	t.records = kept
}

func TestScanIsOneShot(t *testing.T) {
	scan := sliceScan(context.Background(), []*Process{{Pid: 1, Cmdline: "init"}, {Pid: 2, Cmdline: "kthreadd"}})

	var pids []int32
	for scan.Next() {
		pids = append(pids, scan.Process().Pid)
	}
	require.NoError(t, scan.Err())
	assert.Equal(t, []int32{1, 2}, pids)

	assert.False(t, scan.Next())
	assert.Nil(t, scan.Process())
	assert.NoError(t, scan.Close())
}

func TestScanStopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	scan := sliceScan(ctx, []*Process{{Pid: 1, Cmdline: "init"}, {Pid: 2, Cmdline: "kthreadd"}})

	require.True(t, scan.Next())
	cancel()
	assert.False(t, scan.Next())
	assert.ErrorIs(t, scan.Err(), context.Canceled)
}

func TestScanCloseRunsOnce(t *testing.T) {
	closed := 0
	scan := newScan(context.Background(), func() (*Process, error) { return nil, nil }, func() error {
		closed++
		return nil
	})
	assert.False(t, scan.Next())
	assert.NoError(t, scan.Close())
	assert.Equal(t, 1, closed)
}

func TestProcessArgs(t *testing.T) {
	p := &Process{Pid: 100, Cmdline: "sleep\x00300\x00"}
	assert.Equal(t, []string{"sleep", "300"}, p.Args())
	assert.Equal(t, "sleep 300", p.String())
	assert.True(t, p.Match("sleep"))
	assert.True(t, p.Match("300"))
	assert.False(t, p.Match("Sleep"))

	empty := &Process{Pid: 2}
	assert.Empty(t, empty.Args())
}
