package branch

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// Scope selects which branch namespace is listed.
type Scope string

const (
	Local  Scope = "local"
	Remote Scope = "remote"
)

// ParseScope converts "local" or "remote" into a Scope.
func ParseScope(s string) (Scope, error) {
	switch Scope(s) {
	case Local, Remote:
		return Scope(s), nil
	default:
		return "", fmt.Errorf("invalid scope %q: must be %q or %q", s, Local, Remote)
	}
}

// Entry is a snapshot of one branch at query time.
type Entry struct {
	Name       string    // short name, e.g. "main" or "origin/main"
	IsHead     bool      // checked-out branch; never set in remote scope
	CommitTime time.Time // tip commit time, seconds resolution, UTC
	Summary    string    // tip commit summary, used verbatim
}

// Query holds the per-run options of a listing.
type Query struct {
	Count uint   // maximum entries to report, 0 means all
	Scope Scope  // local or remote
	Match string // optional fuzzy name filter
}

// Provider lists the branches of a repository.
type Provider interface {
	// ListBranches returns every branch of the given scope that resolves to
	// a commit. Order is unspecified. A branch that cannot be resolved fails
	// the whole call.
	ListBranches(ctx context.Context, scope Scope) ([]Entry, error)
}

// ErrRepositoryNotFound is returned when no repository exists at or above
// the requested path.
var ErrRepositoryNotFound = errors.New("repository not found")

// ProviderError describes a failure while opening a repository, iterating
// its references or resolving a branch tip.
type ProviderError struct {
	Op  string // "open", "list" or "resolve"
	Ref string // reference involved, if any
	Err error
}

func (e *ProviderError) Error() string {
	if e.Ref == "" {
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("%s %s: %v", e.Op, e.Ref, e.Err)
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}
