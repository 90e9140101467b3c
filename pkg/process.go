package pkg

import "strings"

// Process is one entry of the process table as seen by a single scan.
// It must not outlive that scan: pids are recycled by the kernel.
type Process struct {
	Pid     int32  `json:"pid" yaml:"pid"`
	Cmdline string `json:"cmdline" yaml:"cmdline"`
}

// Args splits the raw NUL separated command line.
func (p *Process) Args() []string {
	args := strings.Split(strings.TrimRight(p.Cmdline, "\x00\n"), "\x00")
	if len(args) == 1 && args[0] == "" {
		return []string{}
	}
	return args
}

func (p *Process) String() string {
	return strings.Join(p.Args(), " ")
}

// Match is a plain, case sensitive substring test on the raw command line.
func (p *Process) Match(fragment string) bool {
	return strings.Contains(p.Cmdline, fragment)
}
