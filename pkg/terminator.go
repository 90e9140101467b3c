package pkg

import (
	"context"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

type EventKind int

const (
	// EventKilled is sent after the signal was delivered.
	EventKilled EventKind = iota
	// EventGone is sent when the target exited between resolve and signal.
	EventGone
)

type Event struct {
	Kind EventKind
	Pid  int32
}

// Terminator kills every process matching a fragment. The kill is forceful
// and immediate, there is no graceful stop first.
type Terminator struct {
	resolver  *Resolver
	signaller Signaller
	notify    func(Event)
}

func NewTerminator(resolver *Resolver, signaller Signaller) *Terminator {
	return &Terminator{
		resolver:  resolver,
		signaller: signaller,
	}
}

// OnEvent registers a callback invoked for each signalled pid.
func (t *Terminator) OnEvent(fn func(Event)) {
	t.notify = fn
}

// TerminateAll resolves and kills until no match is left, then returns the
// pids it signalled. A fragment with no match yields an empty set and no
// error. Any signal failure other than "already exited" aborts the loop.
func (t *Terminator) TerminateAll(ctx context.Context, fragment string) (*PidSet, error) {
	killed := NewPidSet()
	for {
		if err := ctx.Err(); err != nil {
			return killed, err
		}
		pid, err := t.resolver.Find(ctx, fragment)
		if errors.Is(err, ErrNotFound) {
			return killed, nil
		}
		if err != nil {
			return killed, err
		}

		log := logrus.WithField("pid", pid).WithField("name", fragment)
		err = t.signaller.Kill(ctx, pid)
		switch {
		case err == nil:
			// a dying pid can be resolved again, report it once
			if killed.Add(pid) {
				log.Debugln("killed")
				t.emit(Event{Kind: EventKilled, Pid: pid})
			}
		case isGone(err):
			log.Infoln("process exited before it could be signalled")
			t.emit(Event{Kind: EventGone, Pid: pid})
		default:
			log.WithError(err).Debugln("unable to kill process")
			if !errors.Is(err, ErrSignalDenied) {
				err = errors.Wrapf(ErrSignalDenied, "pid %d: %v", pid, err)
			}
			return killed, err
		}
	}
}

func (t *Terminator) emit(e Event) {
	if t.notify != nil {
		t.notify(e)
	}
}
