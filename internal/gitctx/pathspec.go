package gitctx

import (
	"fmt"
	"strings"

	"github.com/gobwas/glob"
)

// Pathspec matches repository paths the way git matches a plain (non-magic)
// pathspec: wildcards may cross directory separators, and a literal pattern
// also selects everything below the directory it names.
type Pathspec struct {
	raw string
	g   glob.Glob
}

// CompilePathspec parses pattern. An empty pattern matches every path.
func CompilePathspec(pattern string) (*Pathspec, error) {
	ps := &Pathspec{raw: strings.TrimPrefix(pattern, "./")}
	if !hasWildcard(ps.raw) {
		return ps, nil
	}
	// No separators: '*' matches '/' too, as git's fnmatch does without FNM_PATHNAME.
	g, err := glob.Compile(literalBraces.Replace(ps.raw))
	if err != nil {
		return nil, fmt.Errorf("invalid pathspec %q: %w", pattern, err)
	}
	ps.g = g
	return ps, nil
}

// Match reports whether path is selected.
func (p *Pathspec) Match(path string) bool {
	if p.raw == "" {
		return true
	}
	if p.g != nil {
		return p.g.Match(path)
	}
	dir := strings.TrimSuffix(p.raw, "/")
	return path == dir || strings.HasPrefix(path, dir+"/")
}

// git has no brace alternation; gobwas does.
var literalBraces = strings.NewReplacer("{", `\{`, "}", `\}`)

func hasWildcard(s string) bool {
	return strings.ContainsAny(s, "*?[")
}
