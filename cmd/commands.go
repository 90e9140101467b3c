package main

import (
	"github.com/spf13/cobra"
)

var findCmd = &cobra.Command{
	Use:     "find <process_name>",
	Aliases: []string{"pid"},
	Short:   "Print the PID of the first matching process",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runFind(cmd, args[0])
	},
}

var killCmd = &cobra.Command{
	Use:   "kill <process_name>",
	Short: "Kill every matching process without respawning it",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runKill(cmd, args[0])
	},
}

var restartCmd = &cobra.Command{
	Use:   "restart <process_name>",
	Short: "Kill every matching process and start the executable again",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runRestart(cmd, args[0])
	},
}

var launchCmd = &cobra.Command{
	Use:   "launch <process_name> [-- args...]",
	Short: "Spawn a process if no matching one exists",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runLaunch(cmd, args[0], force, args[1:])
	},
}

var force bool

func init() {
	launchCmd.Flags().BoolVarP(&force, "force", "f", false, "spawn even if a matching process exists")
}
