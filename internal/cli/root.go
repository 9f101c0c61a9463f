package cli

import (
	"github.com/spf13/cobra"

	"smart-task-tracker/pkg/log"
)

var appVersion = "dev"

// SetVersion sets the version injected via ldflags.
func SetVersion(version string) {
	appVersion = version
}

// NewRootCmd builds the prioritize command tree.
func NewRootCmd() *cobra.Command {
	var logLevel string

	root := &cobra.Command{
		Use:   "prioritize",
		Short: "Classify task descriptions by priority",
		Long: `prioritize runs the same classifier as the task tracker API from the
command line. It uses the local keyword rules and, when --predictor-url is
given, asks the external predictor first.`,
		Version:       appVersion,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "log level (debug, info, warn, error)")

	newLogger := func() log.Logger {
		return log.Init(log.ZapConfig{
			Level:    logLevel,
			Encoding: log.EncodingConsole,
		})
	}

	root.AddCommand(newClassifyCmd(newLogger))
	return root
}

// Execute runs the root command.
func Execute() error {
	return NewRootCmd().Execute()
}
