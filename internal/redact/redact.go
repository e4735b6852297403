package redact

import (
	"path/filepath"
	"regexp"
	"strings"
)

const placeholder = "[REDACTED]"

var secretPatterns = []*regexp.Regexp{
	// key/secret assignments
	regexp.MustCompile(`(?i)(api[_-]?key|apikey|api[_-]?secret)\s*[:=]\s*["']?([A-Za-z0-9/+=_-]{20,})["']?`),
	regexp.MustCompile(`(?i)(aws[_-]?secret[_-]?access[_-]?key)\s*[:=]\s*["']?([A-Za-z0-9/+=]{40})["']?`),
	regexp.MustCompile(`(?i)(secret|token|password|passwd|credential)\s*[:=]\s*["']([^"']{8,})["']`),
	regexp.MustCompile(`(?i)(key|secret|token)\s*[:=]\s*["']?[0-9a-f]{32,}["']?`),
	// connection strings with inline credentials, e.g. "Password=hunter22;" in a C# connection string
	regexp.MustCompile(`(?i)(password|pwd)\s*=\s*[^;"'\s]{6,}`),

	// well-known token shapes
	regexp.MustCompile(`AKIA[0-9A-Z]{16}`),
	regexp.MustCompile(`(?i)Bearer\s+[A-Za-z0-9._-]{20,}`),
	regexp.MustCompile(`eyJ[A-Za-z0-9_-]{10,}\.eyJ[A-Za-z0-9_-]{10,}\.[A-Za-z0-9_-]{10,}`),
	regexp.MustCompile(`-----BEGIN\s+(RSA\s+|EC\s+|OPENSSH\s+)?PRIVATE KEY-----`),
	regexp.MustCompile(`gh[pousr]_[A-Za-z0-9_]{36,}`),
	regexp.MustCompile(`xox[bporas]-[A-Za-z0-9-]{10,}`),
	regexp.MustCompile(`sk-ant-[A-Za-z0-9_-]{20,}`),
	regexp.MustCompile(`sk-[A-Za-z0-9]{20,}`),
}

// Secrets replaces detected secrets in text with [REDACTED].
func Secrets(text string) string {
	result := text
	for _, pat := range secretPatterns {
		result = pat.ReplaceAllLiteralString(result, placeholder)
	}
	return result
}

// ShouldRedactPath reports whether path matches one of the glob patterns.
// A leading "**/" matches at any depth.
func ShouldRedactPath(path string, patterns []string) bool {
	for _, pattern := range patterns {
		if matched, err := filepath.Match(pattern, path); err == nil && matched {
			return true
		}
		clean := strings.TrimPrefix(pattern, "**/")
		if clean == pattern {
			continue
		}
		if matched, err := filepath.Match(clean, filepath.Base(path)); err == nil && matched {
			return true
		}
		if matched, err := filepath.Match(clean, path); err == nil && matched {
			return true
		}
	}
	return false
}

// Content masks a whole file whose path matches redactPaths, and otherwise
// masks the secrets found inside it.
func Content(content, path string, redactPaths []string) string {
	if ShouldRedactPath(path, redactPaths) {
		return placeholder + " (file content redacted by path policy)"
	}
	return Secrets(content)
}

// Policy decides what is masked before file contents leave the machine.
type Policy struct {
	Secrets bool
	Paths   []string
}

// Enabled reports whether the policy changes anything.
func (p Policy) Enabled() bool {
	return p.Secrets || len(p.Paths) > 0
}

// Apply returns content with the policy applied.
func (p Policy) Apply(path, content string) string {
	if ShouldRedactPath(path, p.Paths) {
		return Content(content, path, p.Paths)
	}
	if p.Secrets {
		return Secrets(content)
	}
	return content
}
