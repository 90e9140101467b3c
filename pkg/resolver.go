package pkg

import (
	"context"
)

// Resolver turns a name fragment into pids by scanning a Table. Nothing is
// cached: every call starts a fresh scan.
type Resolver struct {
	table   Table
	exclude map[int32]struct{}
}

type ResolverOption func(*Resolver)

// WithExclude hides the given pids from every lookup.
func WithExclude(pids ...int32) ResolverOption {
	return func(r *Resolver) {
		for _, pid := range pids {
			r.exclude[pid] = struct{}{}
		}
	}
}

func NewResolver(table Table, opts ...ResolverOption) *Resolver {
	r := &Resolver{
		table:   table,
		exclude: map[int32]struct{}{},
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Find returns the first process in scan order whose command line contains
// fragment, or ErrNotFound. The scan stops at the first match.
func (r *Resolver) Find(ctx context.Context, fragment string) (int32, error) {
	var pid int32
	found := false
	err := r.each(ctx, fragment, func(p *Process) bool {
		pid = p.Pid
		found = true
		return false
	})
	if err != nil {
		return 0, err
	}
	if !found {
		return 0, ErrNotFound
	}
	return pid, nil
}

// FindAll returns every matching process in scan order.
func (r *Resolver) FindAll(ctx context.Context, fragment string) ([]*Process, error) {
	matches := []*Process{}
	err := r.each(ctx, fragment, func(p *Process) bool {
		matches = append(matches, p)
		return true
	})
	if err != nil {
		return nil, err
	}
	return matches, nil
}

func (r *Resolver) each(ctx context.Context, fragment string, fn func(*Process) bool) error {
	scan, err := r.table.Scan(ctx)
	if err != nil {
		return err
	}
	defer scan.Close()

	for scan.Next() {
		p := scan.Process()
		if _, skip := r.exclude[p.Pid]; skip {
			continue
		}
		if !p.Match(fragment) {
			continue
		}
		if !fn(p) {
			return nil
		}
	}
	return scan.Err()
}
