package cmd

import (
	"bytes"
	"context"
	"errors"
	"os"
	"os/exec"
	"strings"
	"time"

	"github.com/raphi011/git-recent/internal/log"
)

// OutputContext runs name with args in dir and returns stdout.
// If the command fails, the error message is its trimmed stderr when available.
func OutputContext(ctx context.Context, dir, name string, args ...string) ([]byte, error) {
	out, _, err := OutputEnvContext(ctx, dir, nil, name, args...)
	return out, err
}

// OutputEnvContext runs name with args in dir, with env appended to the
// current environment, and returns stdout and stderr. Stderr is returned on
// success too so callers can inspect warnings. On failure the error message
// is the trimmed stderr when available.
func OutputEnvContext(ctx context.Context, dir string, env []string, name string, args ...string) ([]byte, []byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, nil, err
	}

	done := log.FromContext(ctx).Command(dir, name, args...)
	start := time.Now()

	c := exec.CommandContext(ctx, name, args...)
	c.Dir = dir
	if len(env) > 0 {
		c.Env = append(os.Environ(), env...)
	}
	var stderr bytes.Buffer
	c.Stderr = &stderr
	out, err := c.Output()
	done(time.Since(start))

	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, nil, ctxErr
		}
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return nil, stderr.Bytes(), errors.New(msg)
		}
		return nil, stderr.Bytes(), err
	}
	return out, stderr.Bytes(), nil
}
