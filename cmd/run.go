package main

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/kernaltrap8/proctl/pkg"
)

// errSilent makes main exit non-zero without printing anything more: the
// status line has already been written.
var errSilent = errors.New("silent failure")

func printEvents(cmd *cobra.Command) {
	out := cmd.OutOrStdout()
	supervisor.OnEvent(func(e pkg.Event) {
		switch e.Kind {
		case pkg.EventKilled:
			fmt.Fprintf(out, "Killed process %d successfully.\n", e.Pid)
		case pkg.EventGone:
			fmt.Fprintf(out, "Process %d does not exist anymore.\n", e.Pid)
		}
	})
}

func notFound(cmd *cobra.Command, name string) error {
	fmt.Fprintf(cmd.OutOrStdout(), "Unable to locate process \"%s\".\n", name)
	return errSilent
}

func runFind(cmd *cobra.Command, name string) error {
	pid, err := supervisor.Find(cmd.Context(), name)
	if errors.Is(err, pkg.ErrNotFound) {
		return notFound(cmd, name)
	}
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%d\n", pid)
	return nil
}

func runKill(cmd *cobra.Command, name string) error {
	pid, err := supervisor.Find(cmd.Context(), name)
	if errors.Is(err, pkg.ErrNotFound) {
		return notFound(cmd, name)
	}
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Killing process \"%s\" (PID %d)\n", name, pid)

	printEvents(cmd)
	if _, err := supervisor.Kill(cmd.Context(), name); err != nil {
		return errors.Wrap(err, "unable to kill process")
	}
	return nil
}

func runRestart(cmd *cobra.Command, name string) error {
	pid, err := supervisor.Find(cmd.Context(), name)
	if errors.Is(err, pkg.ErrNotFound) {
		return notFound(cmd, name)
	}
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Restarting process \"%s\" (PID %d)\n", name, pid)

	printEvents(cmd)
	_, err = supervisor.Restart(cmd.Context(), name)
	if errors.Is(err, pkg.ErrNotFound) {
		return notFound(cmd, name)
	}
	return err
}

func runLaunch(cmd *cobra.Command, name string, force bool, args []string) error {
	_, err := supervisor.Launch(cmd.Context(), name, force, args...)
	if errors.Is(err, pkg.ErrAlreadyRunning) {
		fmt.Fprintf(cmd.OutOrStdout(), "Process \"%s\" already exists!\n", name)
		return errSilent
	}
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Spawning process \"%s\"\n", name)
	return nil
}
