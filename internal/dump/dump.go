package dump

import (
	"fmt"
	"time"

	logger "github.com/sirupsen/logrus"

	"github.com/dshills/codedump/internal/gitctx"
	"github.com/dshills/codedump/internal/output"
)

// Pipeline collects a change-set, composes it, and writes the dump.
type Pipeline struct {
	Query    gitctx.Query
	Composer *output.Composer
	Pattern  string
	Format   string
	OutPath  string
}

// Result describes a completed run.
type Result struct {
	Path     string
	Files    gitctx.ChangeSet
	Missing  int
	Rendered []byte
	Elapsed  time.Duration
}

// Run executes the pipeline once. Nothing is written unless collection,
// composition, and rendering all succeed.
func (p *Pipeline) Run() (*Result, error) {
	start := time.Now()

	files, err := gitctx.Collect(p.Query, p.Pattern)
	if err != nil {
		return nil, err
	}
	logger.Debugf("Collected %d file(s) matching %q", len(files), p.Pattern)

	doc, err := p.Composer.Compose(files)
	if err != nil {
		return nil, fmt.Errorf("composing dump: %w", err)
	}
	missing := 0
	for _, f := range doc.Files {
		if f.Missing {
			missing++
			logger.Warnf("File listed by git no longer exists: %s", f.Path)
		}
	}

	data, err := output.Render(doc, p.Format)
	if err != nil {
		return nil, err
	}
	if err := output.WriteFile(p.OutPath, data); err != nil {
		return nil, err
	}

	return &Result{
		Path:     p.OutPath,
		Files:    files,
		Missing:  missing,
		Rendered: data,
		Elapsed:  time.Since(start),
	}, nil
}
