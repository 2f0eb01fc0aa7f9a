package git

import (
	"context"

	"github.com/raphi011/git-recent/internal/cmd"
)

// refParanoia makes ref iteration report broken refs instead of skipping
// them with a warning.
const refParanoia = "GIT_REF_PARANOIA=1"

// gitArgs prepends -C <dir> to args if dir is non-empty.
func gitArgs(dir string, args []string) []string {
	if dir == "" {
		return args
	}
	return append([]string{"-C", dir}, args...)
}

// outputGit executes a git command with context support and verbose logging,
// returning stdout and stderr.
func outputGit(ctx context.Context, dir string, args ...string) ([]byte, []byte, error) {
	return cmd.OutputEnvContext(ctx, "", []string{refParanoia}, "git", gitArgs(dir, args)...)
}
