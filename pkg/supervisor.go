package pkg

import (
	"context"
	"os"

	"github.com/pkg/errors"
)

// Supervisor is the entry point used by the command line: one lookup,
// kill or respawn cycle per call, with no state carried between calls.
type Supervisor struct {
	resolver   *Resolver
	terminator *Terminator
	respawner  *Respawner
}

func NewSupervisor(table Table, signaller Signaller, respawner *Respawner, opts ...ResolverOption) *Supervisor {
	resolver := NewResolver(table, opts...)
	return &Supervisor{
		resolver:   resolver,
		terminator: NewTerminator(resolver, signaller),
		respawner:  respawner,
	}
}

// NewSupervisorFromConfig wires the live process table, gopsutil signalling
// and a real respawner.
func NewSupervisorFromConfig(cfg *Config) *Supervisor {
	var opts []ResolverOption
	if cfg.ExcludeSelf {
		opts = append(opts, WithExclude(selfPids()...))
	}
	return NewSupervisor(NewTable(cfg), PsutilSignaller{}, NewRespawner(), opts...)
}

// selfPids are proctl itself and its parent. Both carry the searched name in
// their command line when started as "sudo proctl name" or "sh -c ...".
func selfPids() []int32 {
	pids := []int32{int32(os.Getpid())}
	if ppid := os.Getppid(); ppid > 0 {
		pids = append(pids, int32(ppid))
	}
	return pids
}

// OnEvent forwards kill loop events to fn.
func (s *Supervisor) OnEvent(fn func(Event)) {
	s.terminator.OnEvent(fn)
}

func (s *Supervisor) Find(ctx context.Context, name string) (int32, error) {
	return s.resolver.Find(ctx, name)
}

func (s *Supervisor) List(ctx context.Context, name string) ([]*Process, error) {
	return s.resolver.FindAll(ctx, name)
}

// Kill returns how many distinct processes were killed. Zero is not an error.
func (s *Supervisor) Kill(ctx context.Context, name string) (int, error) {
	killed, err := s.terminator.TerminateAll(ctx, name)
	return killed.Len(), err
}

func (s *Supervisor) Respawn(ctx context.Context, name string, args ...string) (int, error) {
	return s.respawner.Respawn(ctx, name, args...)
}

type RestartResult struct {
	// Pid is the first match found before killing.
	Pid      int32
	Killed   int
	ChildPid int
}

// Restart kills every match of name and starts name again. Arguments of
// the killed processes are not carried over: the executable is started bare.
func (s *Supervisor) Restart(ctx context.Context, name string) (*RestartResult, error) {
	pid, err := s.resolver.Find(ctx, name)
	if err != nil {
		return nil, err
	}
	res := &RestartResult{Pid: pid}
	res.Killed, err = s.Kill(ctx, name)
	if err != nil {
		return res, err
	}
	if res.Killed == 0 {
		return res, ErrNotFound
	}
	res.ChildPid, err = s.respawner.Respawn(ctx, name)
	return res, err
}

// Launch starts name unless a matching process already exists. force skips
// the check.
func (s *Supervisor) Launch(ctx context.Context, name string, force bool, args ...string) (int, error) {
	if !force {
		pid, err := s.resolver.Find(ctx, name)
		if err == nil {
			return 0, errors.Wrapf(ErrAlreadyRunning, "%s (pid %d)", name, pid)
		}
		if !errors.Is(err, ErrNotFound) {
			return 0, err
		}
	}
	return s.respawner.Respawn(ctx, name, args...)
}
