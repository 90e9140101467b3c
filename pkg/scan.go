package pkg

import (
	"context"
)

// Table is a source of process table scans. Every call to Scan reads the
// live table again.
type Table interface {
	Scan(ctx context.Context) (*Scan, error)
}

// Scan is a lazy, one-shot cursor over a process table. Use it like
// bufio.Scanner: call Next until it returns false, then check Err.
type Scan struct {
	ctx   context.Context
	next  func() (*Process, error)
	close func() error

	cur  *Process
	err  error
	done bool
}

// newScan builds a cursor from a pull function. next returns (nil, nil) at
// the end of the table.
func newScan(ctx context.Context, next func() (*Process, error), close func() error) *Scan {
	return &Scan{ctx: ctx, next: next, close: close}
}

func (s *Scan) Next() bool {
	if s.done {
		return false
	}
	if err := s.ctx.Err(); err != nil {
		s.err = err
		s.finish()
		return false
	}
	p, err := s.next()
	if err != nil || p == nil {
		s.err = err
		s.finish()
		return false
	}
	s.cur = p
	return true
}

// Process returns the record produced by the last successful Next.
func (s *Scan) Process() *Process {
	return s.cur
}

func (s *Scan) Err() error {
	return s.err
}

// Close releases the table handle. It is safe to call more than once.
func (s *Scan) Close() error {
	if s.done {
		return nil
	}
	return s.finish()
}

func (s *Scan) finish() error {
	s.done = true
	s.cur = nil
	if s.close == nil {
		return nil
	}
	close := s.close
	s.close = nil
	return close()
}
