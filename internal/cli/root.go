package cli

import (
	"fmt"
	"io"
	"os"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

const version = "0.1.0"

// Exit codes
const (
	ExitSuccess      = 0
	ExitVerifyFailed = 1
	ExitUsageError   = 2
	ExitRuntimeError = 4
)

var rootCmd = &cobra.Command{
	Use:   "codedump",
	Short: "Dump changed source files into one Markdown document",
	Long: `Codedump collects the files git reports as modified or untracked (filtered by
a pathspec, "*.cs" by default) and concatenates them into a single Markdown
document for review. Run without arguments from inside the repository.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		setupLogging(os.Stderr, flagVerbose)
	},
	RunE: runDump,
}

// Run executes the root command and returns an exit code.
func Run() int {
	exitCode = ExitSuccess
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return ExitUsageError
	}
	return exitCode
}

// exitCode is set by command handlers to control the process exit code.
var exitCode = ExitSuccess

var flagVerbose bool

func setupLogging(w io.Writer, verbose bool) {
	logger.SetOutput(w)
	logger.SetFormatter(&logger.TextFormatter{
		FullTimestamp: true,
	})
	if verbose || os.Getenv("DEBUG") == "true" {
		logger.SetLevel(logger.DebugLevel)
		return
	}
	logger.SetLevel(logger.InfoLevel)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print codedump version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "codedump version %s\n", version)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Config file path (default: $XDG_CONFIG_HOME/codedump/config.yaml)")
	addDumpFlags(rootCmd.PersistentFlags())

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(verifyCmd)
}
