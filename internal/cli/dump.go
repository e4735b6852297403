package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/atotto/clipboard"
	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/dshills/codedump/internal/config"
	"github.com/dshills/codedump/internal/dump"
	"github.com/dshills/codedump/internal/gitctx"
)

// Dump flags
var (
	flagConfig  string
	flagRoot    string
	flagPattern string
	flagOut     string
	flagTitle   string
	flagLang    string
	flagFormat  string
	flagBackend string
	flagCopy    bool
	flagRedact  bool
)

// Swapped out in tests.
var (
	clipboardWrite = clipboard.WriteAll
	newContainer   = buildContainer
)

func addDumpFlags(fs *pflag.FlagSet) {
	fs.StringVar(&flagRoot, "root", "", "Repository root (default: discovered from the working directory)")
	fs.StringVar(&flagPattern, "pattern", "", `Pathspec selecting files (default "*.cs")`)
	fs.StringVarP(&flagOut, "out", "o", "", "Output file, relative to the repository root unless absolute")
	fs.StringVar(&flagTitle, "title", "", "Document title")
	fs.StringVar(&flagLang, "lang", "", "Code fence language tag (default: inferred from --pattern)")
	fs.StringVar(&flagFormat, "format", "", "Output format (markdown, json)")
	fs.StringVar(&flagBackend, "backend", "", "Change-set backend (exec, go-git)")
	fs.BoolVar(&flagCopy, "copy", false, "Also copy the rendered dump to the clipboard")
	fs.BoolVar(&flagRedact, "redact", false, "Mask secrets in file contents")
}

func buildOverrides() map[string]string {
	m := make(map[string]string)
	if flagRoot != "" {
		m["root"] = flagRoot
	}
	if flagPattern != "" {
		m["pattern"] = flagPattern
	}
	if flagOut != "" {
		m["output"] = flagOut
	}
	if flagTitle != "" {
		m["title"] = flagTitle
	}
	if flagLang != "" {
		m["lang"] = flagLang
	}
	if flagFormat != "" {
		m["format"] = flagFormat
	}
	if flagBackend != "" {
		m["backend"] = flagBackend
	}
	if flagCopy {
		m["copy"] = "true"
	}
	if flagRedact {
		m["redactSecrets"] = "true"
	}
	return m
}

func runDump(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(flagConfig, buildOverrides())
	if err != nil {
		return err
	}

	root, err := resolveRoot(cfg)
	if err != nil {
		logger.Errorf("%v", err)
		exitCode = ExitRuntimeError
		return nil
	}
	logger.Debugf("Repository root: %s (backend %s)", root, cfg.Backend)

	container, err := newContainer(cfg, root)
	if err != nil {
		logger.Errorf("Wiring pipeline: %v", err)
		exitCode = ExitRuntimeError
		return nil
	}

	return container.Invoke(func(p *dump.Pipeline) {
		res, err := p.Run()
		if err != nil {
			logger.Errorf("%v", err)
			exitCode = ExitRuntimeError
			return
		}
		logger.Debugf("Dumped %d file(s) (%d missing) in %s", len(res.Files), res.Missing, res.Elapsed)

		if cfg.Copy {
			if err := clipboardWrite(string(res.Rendered)); err != nil {
				logger.Warnf("Could not copy dump to clipboard: %v", err)
			} else {
				logger.Info("Dump copied to clipboard")
			}
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", res.Path)
	})
}

// resolveRoot returns the absolute repository root: the configured one, or
// the repository enclosing the working directory.
func resolveRoot(cfg config.Config) (string, error) {
	if cfg.Root != "" {
		root, err := filepath.Abs(cfg.Root)
		if err != nil {
			return "", fmt.Errorf("invalid root: %w", err)
		}
		if info, err := os.Stat(root); err != nil || !info.IsDir() {
			return "", fmt.Errorf("root %s is not a directory", root)
		}
		return root, nil
	}
	wd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("cannot determine working directory: %w", err)
	}
	if cfg.Backend == config.BackendGoGit {
		return gitctx.RepoRoot(wd)
	}
	return gitctx.FindRoot(wd)
}
