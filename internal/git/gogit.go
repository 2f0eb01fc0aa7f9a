package git

import (
	"context"
	"errors"
	"fmt"
	"strings"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"

	"github.com/raphi011/git-recent/internal/branch"
	"github.com/raphi011/git-recent/internal/log"
)

// GoGitProvider lists branches by reading the repository in-process.
type GoGitProvider struct {
	dir string
}

// NewGoGitProvider returns a provider for the repository at or above dir.
// An empty dir means the current directory.
func NewGoGitProvider(dir string) *GoGitProvider {
	if dir == "" {
		dir = "."
	}
	return &GoGitProvider{dir: dir}
}

// ListBranches implements [branch.Provider].
func (p *GoGitProvider) ListBranches(ctx context.Context, scope branch.Scope) ([]branch.Entry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	repo, err := gogit.PlainOpenWithOptions(p.dir, &gogit.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		if errors.Is(err, gogit.ErrRepositoryNotExists) {
			return nil, fmt.Errorf("%w: %s", branch.ErrRepositoryNotFound, p.dir)
		}
		return nil, &branch.ProviderError{Op: "open", Ref: p.dir, Err: err}
	}

	head, err := headBranch(repo)
	if err != nil {
		return nil, &branch.ProviderError{Op: "resolve", Ref: "HEAD", Err: err}
	}

	prefix := refPrefix(scope)

	iter, err := repo.References()
	if err != nil {
		return nil, &branch.ProviderError{Op: "list", Err: err}
	}
	defer iter.Close()

	var entries []branch.Entry
	err = iter.ForEach(func(ref *plumbing.Reference) error {
		if err := ctx.Err(); err != nil {
			return err
		}

		name := ref.Name()
		if !strings.HasPrefix(name.String(), prefix) {
			return nil
		}

		hash := ref.Hash()
		if ref.Type() == plumbing.SymbolicReference {
			// origin/HEAD and friends point at another listed ref
			if scope == branch.Remote {
				return nil
			}
			resolved, err := repo.Reference(name, true)
			if err != nil {
				return &branch.ProviderError{Op: "resolve", Ref: name.Short(), Err: err}
			}
			hash = resolved.Hash()
		}

		commit, err := repo.CommitObject(hash)
		if err != nil {
			return &branch.ProviderError{Op: "resolve", Ref: name.Short(), Err: err}
		}

		entries = append(entries, branch.Entry{
			Name:       name.Short(),
			IsHead:     scope == branch.Local && name == head,
			CommitTime: commit.Committer.When.UTC(),
			Summary:    Summary(commit.Message),
		})
		return nil
	})
	if err != nil {
		var perr *branch.ProviderError
		if errors.As(err, &perr) || ctx.Err() != nil {
			return nil, err
		}
		return nil, &branch.ProviderError{Op: "list", Err: err}
	}

	log.FromContext(ctx).Debug("listed branches", "backend", "go-git", "scope", scope, "count", len(entries))
	return entries, nil
}

// headBranch returns the branch HEAD points at, or "" when HEAD is detached
// or missing.
func headBranch(repo *gogit.Repository) (plumbing.ReferenceName, error) {
	ref, err := repo.Storer.Reference(plumbing.HEAD)
	if errors.Is(err, plumbing.ErrReferenceNotFound) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	if ref.Type() != plumbing.SymbolicReference {
		return "", nil
	}
	return ref.Target(), nil
}

func refPrefix(scope branch.Scope) string {
	if scope == branch.Remote {
		return "refs/remotes/"
	}
	return "refs/heads/"
}
