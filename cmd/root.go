package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"bootstrap-machine/internal/logger"
)

// debug flag indicates whether debug logging should be enabled.
// It can be toggled via the `--debug` command-line flag.
var debug bool

// rootCmd is the base command for the CLI tool `bootstrap-machine`.
// It sets up the root-level CLI structure and provides global flags.
var rootCmd = &cobra.Command{
	Use:   "bootstrap-machine",              // The name of the CLI tool
	Short: "Developer machine bootstrapper", // Short description shown in help output

	// PersistentPreRun is a hook that runs before any subcommand.
	// Here, we initialize the logger based on the debug flag.
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger.Init(debug) // Set up logging (verbose if --debug is true)
	},
}

// Execute initializes flags and starts the command execution. It's the
// entry point for the CLI when invoked by the user. Anything unexpected
// that escapes a command is caught here once, logged, and converted to
// exit code 1 so the caller never sees a raw panic.
func Execute() {
	defer func() {
		if r := recover(); r != nil {
			logger.Error("[ERROR] Unexpected failure: %v\n", r)
			os.Exit(1)
		}
	}()

	// Register the global --debug flag before any command is executed.
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debug logging")

	// Execute runs the appropriate subcommand or displays help if none is provided.
	// Errors are ignored here with `_ =` since Cobra handles them internally by default.
	_ = rootCmd.Execute()
}
