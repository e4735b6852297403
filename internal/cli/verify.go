package cli

import (
	"fmt"
	"os"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/dshills/codedump/internal/config"
	"github.com/dshills/codedump/internal/output"
)

var verifyCmd = &cobra.Command{
	Use:   "verify [path]",
	Short: "Check that a Markdown dump lists and contains the same files",
	Long: `Verify parses a Markdown dump (default: the configured output file) and
checks that the file listing and the per-file sections name the same paths in
the same sorted order, each section carrying one fenced code block.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := verifyTarget(args)
		if err != nil {
			return err
		}

		data, err := os.ReadFile(path)
		if err != nil {
			logger.Errorf("Reading dump: %v", err)
			exitCode = ExitRuntimeError
			return nil
		}
		parsed, err := output.ParseMarkdown(data)
		if err != nil {
			logger.Errorf("Parsing %s: %v", path, err)
			exitCode = ExitVerifyFailed
			return nil
		}
		if err := parsed.Validate(); err != nil {
			fmt.Fprintf(cmd.OutOrStdout(), "%s is inconsistent:\n%v\n", path, err)
			exitCode = ExitVerifyFailed
			return nil
		}

		fmt.Fprintf(cmd.OutOrStdout(), "%s: OK (%d files, generated %s)\n",
			path, len(parsed.Listing), parsed.GeneratedAt.Format(output.TimestampLayout))
		return nil
	},
}

func verifyTarget(args []string) (string, error) {
	if len(args) == 1 {
		return args[0], nil
	}
	cfg, err := config.Load(flagConfig, buildOverrides())
	if err != nil {
		return "", err
	}
	root, err := resolveRoot(cfg)
	if err != nil {
		return "", err
	}
	return cfg.OutputPath(root), nil
}
