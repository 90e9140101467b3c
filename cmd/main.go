package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/kernaltrap8/proctl/pkg"
)

const version = "1.5"

var rootCmd = &cobra.Command{
	Use:   "proctl <process_name>",
	Short: "Restart, kill, find or launch processes by name",
	Long: `proctl v` + version + `
This program is licensed under GNU GPLv3 and comes with ABSOLUTELY NO WARRANTY.
The license document can be viewed at https://www.gnu.org/licenses/gpl-3.0.en.html`,
	Version:           version,
	Args:              cobra.ExactArgs(1),
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
	RunE: func(cmd *cobra.Command, args []string) error {
		name := args[0]
		switch {
		case killOnly:
			return runKill(cmd, name)
		case launch:
			return runLaunch(cmd, name, false, nil)
		case pidOnly:
			return runFind(cmd, name)
		default:
			return runRestart(cmd, name)
		}
	},
}

var (
	config     = pkg.NewConfig()
	supervisor *pkg.Supervisor

	killOnly bool
	launch   bool
	pidOnly  bool
)

func init() {
	rootCmd.AddCommand(findCmd)
	rootCmd.AddCommand(killCmd)
	rootCmd.AddCommand(launchCmd)
	rootCmd.AddCommand(restartCmd)
	rootCmd.AddCommand(listCmd)

	flags := rootCmd.Flags()
	flags.BoolVarP(&killOnly, "kill", "k", false, "kill process without respawning it")
	flags.BoolVarP(&launch, "launch", "l", false, "spawn a process if it does not exist")
	flags.BoolVarP(&pidOnly, "pid", "p", false, "print the PID of a given process")
	rootCmd.MarkFlagsMutuallyExclusive("kill", "launch", "pid")

	persistent := rootCmd.PersistentFlags()
	persistent.String("proc-root", config.ProcRoot, "process table root")
	persistent.Int("line-limit", config.LineLimit, "bytes of each command line used for matching")
	persistent.Bool("exclude-self", config.ExcludeSelf, "never match proctl's own process")
	persistent.BoolP("verbose", "V", config.Verbose, "log diagnostics to stderr")

	viper.SetEnvPrefix("proctl")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
	for _, name := range []string{"proc-root", "line-limit", "exclude-self", "verbose"} {
		if err := viper.BindPFlag(name, persistent.Lookup(name)); err != nil {
			panic(err)
		}
	}
}

// setup resolves configuration and builds the supervisor before any command
// runs.
func setup(cmd *cobra.Command, args []string) error {
	if err := viper.Unmarshal(config); err != nil {
		return err
	}

	logrus.SetOutput(os.Stderr)
	logrus.SetLevel(logrus.WarnLevel)
	if config.Verbose {
		logrus.SetLevel(logrus.DebugLevel)
	}
	logrus.WithField("config", fmt.Sprintf("%+v", *config)).Debugln("start")

	supervisor = newSupervisor(config)
	return nil
}

var newSupervisor = pkg.NewSupervisorFromConfig

// execute runs the command line and maps the outcome to an exit code.
func execute(ctx context.Context) int {
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		if !errors.Is(err, errSilent) {
			fmt.Fprintln(rootCmd.ErrOrStderr(), err)
		}
		return 1
	}
	return 0
}

func main() {
	os.Exit(execute(context.Background()))
}
