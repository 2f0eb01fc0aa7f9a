// Package cmd runs external commands with context support and error capture.
//
// [OutputContext] wraps [os/exec.CommandContext] so that a failing command
// reports its stderr as the error message, and traces each invocation
// through the context logger when verbose output is enabled.
//
// # Usage
//
//	out, err := cmd.OutputContext(ctx, repoDir, "git", "for-each-ref", "refs/heads")
//	if err != nil {
//	    // err carries git's stderr, e.g. "fatal: not a git repository ..."
//	}
//
// A cancelled context is reported as the context's error rather than the
// "signal: killed" error of the terminated process.
package cmd
