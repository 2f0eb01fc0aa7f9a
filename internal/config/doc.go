// Package config handles loading and validation of git-recent configuration.
//
// Configuration is read from ~/.config/git-recent/config.toml, or from the
// file named by GIT_RECENT_CONFIG. A missing file is not an error.
//
// # Configuration Sources (highest priority first)
//
//   - Command-line flags (applied by the caller)
//   - GIT_RECENT_COUNT, GIT_RECENT_BACKEND env vars
//   - Config file settings
//   - Default values
//
// # Key Settings
//
//   - count: branches to show, 0 for all (default: 7)
//   - scope: "local" or "remote" (default: "local")
//   - backend: "go-git" or "git" (default: "go-git")
//   - color: "auto", "always" or "never" (default: "auto")
//
// # Theme
//
// The [theme] section overrides the colors used for colored output:
//
//	[theme]
//	accent = "212"      # head marker and branch names
//	muted = "#6272a4"   # ages
package config
