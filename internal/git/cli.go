package git

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strconv"
	"strings"
	"time"

	"github.com/raphi011/git-recent/internal/branch"
	"github.com/raphi011/git-recent/internal/log"
)

// forEachRefFormat emits one NUL-separated record per ref.
// Fields: HEAD marker, short name, object type, symref target,
// committer date (unix seconds), subject.
const forEachRefFormat = "%(HEAD)%00%(refname:short)%00%(objecttype)%00%(symref)%00%(committerdate:unix)%00%(subject)"

const forEachRefFields = 6

// CLIProvider lists branches by running "git for-each-ref".
type CLIProvider struct {
	dir string
}

// NewCLIProvider returns a provider that runs git in dir.
// An empty dir means the current directory.
func NewCLIProvider(dir string) *CLIProvider {
	return &CLIProvider{dir: dir}
}

// ListBranches implements [branch.Provider].
func (p *CLIProvider) ListBranches(ctx context.Context, scope branch.Scope) ([]branch.Entry, error) {
	out, stderr, err := outputGit(ctx, p.dir, "for-each-ref", "--format="+forEachRefFormat, strings.TrimSuffix(refPrefix(scope), "/"))
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		if isNotRepository(err) {
			dir := p.dir
			if dir == "" {
				dir = "."
			}
			return nil, fmt.Errorf("%w: %s", branch.ErrRepositoryNotFound, dir)
		}
		if errors.Is(err, exec.ErrNotFound) {
			return nil, &branch.ProviderError{Op: "open", Err: err}
		}
		return nil, &branch.ProviderError{Op: "list", Err: diagnosticLine(err)}
	}
	if err := brokenRefWarning(stderr); err != nil {
		return nil, err
	}

	entries, err := parseForEachRef(out, scope)
	if err != nil {
		return nil, err
	}

	log.FromContext(ctx).Debug("listed branches", "backend", "git", "scope", scope, "count", len(entries))
	return entries, nil
}

// parseForEachRef converts for-each-ref output into entries.
func parseForEachRef(out []byte, scope branch.Scope) ([]branch.Entry, error) {
	var entries []branch.Entry
	for line := range bytes.SplitSeq(out, []byte("\n")) {
		if len(line) == 0 {
			continue
		}
		fields := strings.SplitN(string(line), "\x00", forEachRefFields)
		if len(fields) != forEachRefFields {
			return nil, &branch.ProviderError{Op: "list", Err: fmt.Errorf("unexpected for-each-ref output %q", line)}
		}
		marker, name, objType, symref, date, subject := fields[0], fields[1], fields[2], fields[3], fields[4], fields[5]

		if symref != "" && scope == branch.Remote {
			continue
		}
		if objType == "" {
			return nil, &branch.ProviderError{Op: "resolve", Ref: name, Err: errors.New("tip object is missing")}
		}
		if objType != "commit" {
			return nil, &branch.ProviderError{Op: "resolve", Ref: name, Err: fmt.Errorf("tip is a %s, not a commit", objType)}
		}
		secs, err := strconv.ParseInt(date, 10, 64)
		if err != nil {
			return nil, &branch.ProviderError{Op: "resolve", Ref: name, Err: fmt.Errorf("invalid commit time %q", date)}
		}

		entries = append(entries, branch.Entry{
			Name:       name,
			IsHead:     scope == branch.Local && marker == "*",
			CommitTime: time.Unix(secs, 0).UTC(),
			Summary:    subject,
		})
	}
	return entries, nil
}

// brokenRefWarning turns broken-ref diagnostics that git printed on a
// successful run into an error, so a ref git skipped still fails the
// listing. Both "warning: ignoring broken ref <ref>" and
// "error: <ref> does not point to a valid object!" are recognized.
func brokenRefWarning(stderr []byte) error {
	for line := range strings.Lines(string(stderr)) {
		line = strings.TrimSpace(line)
		if _, ref, ok := strings.Cut(line, "ignoring broken ref "); ok {
			return &branch.ProviderError{Op: "resolve", Ref: shortRefName(ref), Err: errors.New("broken ref")}
		}
		if rest, ok := strings.CutPrefix(line, "error: "); ok {
			ref, _, _ := strings.Cut(rest, " ")
			if !strings.HasPrefix(ref, "refs/") {
				ref = ""
			}
			return &branch.ProviderError{Op: "resolve", Ref: shortRefName(ref), Err: errors.New(rest)}
		}
	}
	return nil
}

// shortRefName strips the refs/heads/ or refs/remotes/ prefix.
func shortRefName(ref string) string {
	for _, prefix := range []string{"refs/heads/", "refs/remotes/"} {
		if short, ok := strings.CutPrefix(ref, prefix); ok {
			return short
		}
	}
	return ref
}

// diagnosticLine reduces a multi-line git error to one line: the last
// "fatal:" or "error:" line, else the first non-empty line.
func diagnosticLine(err error) error {
	msg := err.Error()
	if !strings.Contains(msg, "\n") {
		return err
	}
	var first, last string
	for line := range strings.Lines(msg) {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if first == "" {
			first = line
		}
		if strings.HasPrefix(line, "fatal:") || strings.HasPrefix(line, "error:") {
			last = line
		}
	}
	if last != "" {
		return errors.New(last)
	}
	return errors.New(first)
}

// isNotRepository reports whether git failed because dir is not inside a
// repository or does not exist.
func isNotRepository(err error) bool {
	msg := err.Error()
	return strings.Contains(msg, "not a git repository") || strings.Contains(msg, "cannot change to")
}
