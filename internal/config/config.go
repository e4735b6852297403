package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Backends understood by the collector.
const (
	BackendExec  = "exec"
	BackendGoGit = "go-git"
)

// Config represents the codedump configuration.
type Config struct {
	Root    string        `yaml:"root,omitempty"`
	Pattern string        `yaml:"pattern"`
	Output  string        `yaml:"output"`
	Title   string        `yaml:"title"`
	Lang    string        `yaml:"lang,omitempty"`
	Format  string        `yaml:"format"`
	Backend string        `yaml:"backend"`
	Copy    bool          `yaml:"copy"`
	Privacy PrivacyConfig `yaml:"privacy"`
}

// PrivacyConfig controls redaction of dumped file contents.
type PrivacyConfig struct {
	RedactSecrets bool     `yaml:"redactSecrets"`
	RedactPaths   []string `yaml:"redactPaths,omitempty"`
}

// Default returns a Config with all defaults applied.
func Default() Config {
	return Config{
		Pattern: "*.cs",
		Output:  filepath.Join("Docs", "EquipmentDamage_MVP_CodeDump.md"),
		Title:   "Equipment Damage MVP - Code Dump",
		Format:  "markdown",
		Backend: BackendExec,
	}
}

// OutputPath resolves the configured output against the repository root.
func (c Config) OutputPath(root string) string {
	if filepath.IsAbs(c.Output) {
		return c.Output
	}
	return filepath.Join(root, c.Output)
}

// Validate rejects settings the pipeline cannot run with.
func (c Config) Validate() error {
	var errs []error
	if strings.TrimSpace(c.Pattern) == "" {
		errs = append(errs, errors.New("pattern must not be empty"))
	}
	if strings.TrimSpace(c.Output) == "" {
		errs = append(errs, errors.New("output must not be empty"))
	}
	switch c.Format {
	case "markdown", "md", "json":
	default:
		errs = append(errs, fmt.Errorf("unsupported format %q (want markdown or json)", c.Format))
	}
	switch c.Backend {
	case BackendExec, BackendGoGit:
	default:
		errs = append(errs, fmt.Errorf("unsupported backend %q (want %s or %s)", c.Backend, BackendExec, BackendGoGit))
	}
	return errors.Join(errs...)
}

// ConfigDir returns the platform-appropriate config directory for codedump.
func ConfigDir() (string, error) {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "codedump"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	switch runtime.GOOS {
	case "darwin":
		return filepath.Join(home, "Library", "Application Support", "codedump"), nil
	case "windows":
		if appData := os.Getenv("APPDATA"); appData != "" {
			return filepath.Join(appData, "codedump"), nil
		}
		return filepath.Join(home, "AppData", "Roaming", "codedump"), nil
	default:
		return filepath.Join(home, ".config", "codedump"), nil
	}
}

// ConfigPath returns the full path to the default config file.
func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}

// LoadFile loads config from path, or from ConfigPath when path is empty.
// A missing file yields a zero Config and nil error.
func LoadFile(path string) (Config, error) {
	if path == "" {
		p, err := ConfigPath()
		if err != nil {
			return Config{}, err
		}
		path = p
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Config{}, nil
		}
		return Config{}, fmt.Errorf("reading config file: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing config file %s: %w", path, err)
	}
	return cfg, nil
}

// Save writes cfg to path, or to ConfigPath when path is empty.
func Save(path string, cfg Config) error {
	if path == "" {
		p, err := ConfigPath()
		if err != nil {
			return err
		}
		path = p
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// Load builds the effective config by merging: defaults <- file <- env <- overrides.
// The overrides map comes from CLI flags (only flags the user set).
func Load(path string, overrides map[string]string) (Config, error) {
	cfg := Default()

	fileCfg, err := LoadFile(path)
	if err != nil {
		return Config{}, err
	}
	mergeFile(&cfg, fileCfg)
	if err := mergeEnv(&cfg); err != nil {
		return Config{}, err
	}
	if err := mergeOverrides(&cfg, overrides); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func mergeFile(dst *Config, src Config) {
	if src.Root != "" {
		dst.Root = src.Root
	}
	if src.Pattern != "" {
		dst.Pattern = src.Pattern
	}
	if src.Output != "" {
		dst.Output = src.Output
	}
	if src.Title != "" {
		dst.Title = src.Title
	}
	if src.Lang != "" {
		dst.Lang = src.Lang
	}
	if src.Format != "" {
		dst.Format = src.Format
	}
	if src.Backend != "" {
		dst.Backend = src.Backend
	}
	// false is indistinguishable from unset, so a file can only switch these on.
	dst.Copy = src.Copy || dst.Copy
	dst.Privacy.RedactSecrets = src.Privacy.RedactSecrets || dst.Privacy.RedactSecrets
	if len(src.Privacy.RedactPaths) > 0 {
		dst.Privacy.RedactPaths = src.Privacy.RedactPaths
	}
}

var envKeys = map[string]string{
	"CODEDUMP_ROOT":    "root",
	"CODEDUMP_PATTERN": "pattern",
	"CODEDUMP_OUTPUT":  "output",
	"CODEDUMP_TITLE":   "title",
	"CODEDUMP_LANG":    "lang",
	"CODEDUMP_FORMAT":  "format",
	"CODEDUMP_BACKEND": "backend",
	"CODEDUMP_COPY":    "copy",
	"CODEDUMP_REDACT":  "redactSecrets",
}

func mergeEnv(cfg *Config) error {
	for env, key := range envKeys {
		v := os.Getenv(env)
		if v == "" {
			continue
		}
		if err := SetField(cfg, key, v); err != nil {
			return fmt.Errorf("%s: %w", env, err)
		}
	}
	return nil
}

func mergeOverrides(cfg *Config, overrides map[string]string) error {
	for key, v := range overrides {
		if v == "" {
			continue
		}
		if err := SetField(cfg, key, v); err != nil {
			return err
		}
	}
	return nil
}

// SetField sets a single config field by key name. Returns error if key is unknown.
func SetField(cfg *Config, key, value string) error {
	switch key {
	case "root":
		cfg.Root = value
	case "pattern":
		cfg.Pattern = value
	case "output":
		cfg.Output = value
	case "title":
		cfg.Title = value
	case "lang":
		cfg.Lang = value
	case "format":
		cfg.Format = value
	case "backend":
		cfg.Backend = value
	case "copy":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("copy must be a boolean: %w", err)
		}
		cfg.Copy = b
	case "redactSecrets":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("redactSecrets must be a boolean: %w", err)
		}
		cfg.Privacy.RedactSecrets = b
	case "redactPaths":
		cfg.Privacy.RedactPaths = splitComma(value)
	default:
		return fmt.Errorf("unknown config key: %s", key)
	}
	return nil
}

func splitComma(s string) []string {
	var result []string
	for _, p := range strings.Split(s, ",") {
		p = strings.TrimSpace(p)
		if p != "" {
			result = append(result, p)
		}
	}
	return result
}
