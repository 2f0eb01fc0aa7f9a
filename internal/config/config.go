package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
)

// Backends
const (
	BackendGoGit = "go-git" // in-process via go-git
	BackendGit   = "git"    // shells out to the git binary
)

// Color modes
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// DefaultCount is the number of branches shown when nothing else is configured.
const DefaultCount = 7

// ThemeConfig overrides output colors. Values are ANSI numbers ("212") or hex ("#ff79c6").
type ThemeConfig struct {
	Accent string `toml:"accent"`
	Muted  string `toml:"muted"`
}

// Config holds the git-recent configuration
type Config struct {
	Count   uint        `toml:"count"`
	Scope   string      `toml:"scope"`
	Backend string      `toml:"backend"`
	Color   string      `toml:"color"`
	Theme   ThemeConfig `toml:"theme"`
}

// Default returns the default configuration
func Default() Config {
	return Config{
		Count:   DefaultCount,
		Scope:   "local",
		Backend: BackendGoGit,
		Color:   ColorAuto,
	}
}

// Path returns the config file location.
// GIT_RECENT_CONFIG takes precedence over ~/.config/git-recent/config.toml.
func Path() (string, error) {
	if p := os.Getenv("GIT_RECENT_CONFIG"); p != "" {
		return p, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "git-recent", "config.toml"), nil
}

// Load reads the config file from Path and applies env overrides.
func Load() (Config, error) {
	path, err := Path()
	if err != nil {
		// No home directory: run with defaults
		cfg := Default()
		return cfg, applyEnv(&cfg)
	}
	return LoadFile(path)
}

// LoadFile reads config from path and applies env overrides.
// Returns Default() with env overrides if the file doesn't exist.
// Returns error only if the file exists but is invalid.
func LoadFile(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return Default(), fmt.Errorf("failed to read config file: %w", err)
	}

	if err == nil {
		// Decoding into the defaults leaves unset keys at their default value.
		md, err := toml.Decode(string(data), &cfg)
		if err != nil {
			return Default(), fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return Default(), fmt.Errorf("unknown config key %q in %s", undecoded[0].String(), path)
		}
	}

	if err := applyEnv(&cfg); err != nil {
		return Default(), err
	}
	if err := cfg.validate(); err != nil {
		return Default(), err
	}

	// Explicitly empty values fall back to defaults
	def := Default()
	if cfg.Scope == "" {
		cfg.Scope = def.Scope
	}
	if cfg.Backend == "" {
		cfg.Backend = def.Backend
	}
	if cfg.Color == "" {
		cfg.Color = def.Color
	}

	return cfg, nil
}

// applyEnv overrides cfg from GIT_RECENT_COUNT and GIT_RECENT_BACKEND.
func applyEnv(cfg *Config) error {
	if v := strings.TrimSpace(os.Getenv("GIT_RECENT_COUNT")); v != "" {
		n, err := strconv.ParseUint(v, 10, 0)
		if err != nil {
			return fmt.Errorf("invalid GIT_RECENT_COUNT %q: must be a non-negative integer", v)
		}
		cfg.Count = uint(n)
	}
	if v := strings.TrimSpace(os.Getenv("GIT_RECENT_BACKEND")); v != "" {
		cfg.Backend = v
	}
	return nil
}

func (c *Config) validate() error {
	if err := validateEnum(c.Scope, "scope", ValidScopes); err != nil {
		return err
	}
	if err := ValidateBackend(c.Backend); err != nil {
		return err
	}
	return ValidateColor(c.Color)
}

// Encode renders the config as TOML.
func (c Config) Encode() (string, error) {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(c); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// DefaultFileContent returns the commented default config file.
func DefaultFileContent() string {
	return defaultConfig
}

const defaultConfig = `# git-recent configuration

# Number of branches to show (0 shows all branches)
# Overridden by -n/--count and GIT_RECENT_COUNT
count = 7

# Which branches to list: "local" or "remote"
# --remote always switches to remote branches
scope = "local"

# How branches are read:
#   "go-git" - in-process, no git binary required
#   "git"    - runs "git for-each-ref"
# Overridden by --backend and GIT_RECENT_BACKEND
backend = "go-git"

# Colored output: "auto", "always" or "never"
# "auto" colors only when stdout is a terminal and NO_COLOR is unset
color = "auto"

# Colors for colored output (ANSI number or hex)
# [theme]
# accent = "212"     # head marker and branch names
# muted = "240"      # ages
`

// Init writes the default config file to path.
// If force is true, overwrites an existing file.
func Init(path string, force bool) error {
	if !force {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("config file already exists: %s (use -f to overwrite)", path)
		}
	}

	return writeFileAtomic(path, []byte(defaultConfig))
}

// writeFileAtomic ensures the parent directory exists, writes to a temp
// file, then renames it over path.
func writeFileAtomic(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	tempPath := path + ".tmp"
	if err := os.WriteFile(tempPath, data, 0o644); err != nil {
		return err
	}

	if err := os.Rename(tempPath, path); err != nil {
		os.Remove(tempPath)
		return err
	}
	return nil
}
