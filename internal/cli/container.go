package cli

import (
	"go.uber.org/dig"

	"github.com/dshills/codedump/internal/config"
	"github.com/dshills/codedump/internal/dump"
	"github.com/dshills/codedump/internal/gitctx"
	"github.com/dshills/codedump/internal/output"
	"github.com/dshills/codedump/internal/redact"
)

// repoRoot is the absolute repository root the pipeline works in.
type repoRoot string

// buildContainer registers every pipeline constructor for one run.
func buildContainer(cfg config.Config, root string) (*dig.Container, error) {
	container := dig.New()

	providers := []any{
		func() config.Config { return cfg },
		func() repoRoot { return repoRoot(root) },
		newQuery,
		newComposer,
		newPipeline,
	}
	for _, p := range providers {
		if err := container.Provide(p); err != nil {
			return nil, err
		}
	}
	return container, nil
}

func newQuery(cfg config.Config, root repoRoot) gitctx.Query {
	if cfg.Backend == config.BackendGoGit {
		return gitctx.RepoQuery{Root: string(root)}
	}
	return gitctx.ExecQuery{Root: string(root)}
}

func newComposer(cfg config.Config, root repoRoot) *output.Composer {
	lang := cfg.Lang
	if lang == "" {
		lang = output.LangForPattern(cfg.Pattern)
	}
	return &output.Composer{
		Root:  string(root),
		Title: cfg.Title,
		Lang:  lang,
		Redact: redact.Policy{
			Secrets: cfg.Privacy.RedactSecrets,
			Paths:   cfg.Privacy.RedactPaths,
		},
	}
}

func newPipeline(cfg config.Config, root repoRoot, q gitctx.Query, c *output.Composer) *dump.Pipeline {
	return &dump.Pipeline{
		Query:    q,
		Composer: c,
		Pattern:  cfg.Pattern,
		Format:   cfg.Format,
		OutPath:  cfg.OutputPath(string(root)),
	}
}
