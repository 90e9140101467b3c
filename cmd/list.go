package main

import (
	"fmt"
	"io"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/kernaltrap8/proctl/pkg"
)

var listCmd = &cobra.Command{
	Use:   "list <process_name>",
	Short: "List every process whose command line contains the name",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		processes, err := supervisor.List(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		if len(processes) == 0 {
			return notFound(cmd, args[0])
		}
		return writeProcesses(cmd.OutOrStdout(), processes, outputFormat)
	},
}

var outputFormat = "text"

func init() {
	flags := listCmd.Flags()
	flags.StringVarP(&outputFormat, "output", "o", "text", "output format: text, json or yaml")
}

type processView struct {
	Pid     int32    `json:"pid" yaml:"pid"`
	Cmdline string   `json:"cmdline" yaml:"cmdline"`
	Args    []string `json:"args" yaml:"args"`
}

func writeProcesses(w io.Writer, processes []*pkg.Process, format string) error {
	views := make([]processView, 0, len(processes))
	for _, p := range processes {
		views = append(views, processView{Pid: p.Pid, Cmdline: p.String(), Args: p.Args()})
	}

	switch format {
	case "json":
		var json = jsoniter.ConfigCompatibleWithStandardLibrary
		data, err := json.MarshalIndent(views, "", "  ")
		if err != nil {
			return err
		}
		_, err = fmt.Fprintf(w, "%s\n", data)
		return err
	case "yaml":
		enc := yaml.NewEncoder(w)
		defer enc.Close()
		return enc.Encode(views)
	case "text", "":
		for _, v := range views {
			if _, err := fmt.Fprintf(w, "%d\t%s\n", v.Pid, v.Cmdline); err != nil {
				return err
			}
		}
		return nil
	default:
		return errors.Errorf("unknown output format %q", format)
	}
}
