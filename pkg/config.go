package pkg

import "os"

type Config struct {
	ProcRoot    string `json:"proc_root" mapstructure:"proc-root"`
	LineLimit   int    `json:"line_limit" mapstructure:"line-limit"`
	ExcludeSelf bool   `json:"exclude_self" mapstructure:"exclude-self"`
	Verbose     bool   `json:"verbose" mapstructure:"verbose"`
}

func NewConfig() *Config {
	return &Config{
		ProcRoot:    defaultProcRoot(),
		LineLimit:   DefaultLineLimit,
		ExcludeSelf: true,
		Verbose:     false,
	}
}

// defaultProcRoot honours HOST_PROC the same way gopsutil does.
func defaultProcRoot() string {
	if root := os.Getenv("HOST_PROC"); root != "" {
		return root
	}
	return DefaultProcRoot
}
