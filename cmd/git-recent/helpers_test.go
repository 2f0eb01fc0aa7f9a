package main

import (
	"bytes"
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"

	"github.com/raphi011/git-recent/internal/config"
)

// testNow is the clock every CLI test runs at.
var testNow = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

// fakeClipboard records copied text.
type fakeClipboard struct {
	copied []string
	err    error
}

func (c *fakeClipboard) write(s string) error {
	if c.err != nil {
		return c.err
	}
	c.copied = append(c.copied, s)
	return nil
}

// newTestApp returns an app with a fixed clock, a fake clipboard and cfg
// as the loaded config.
func newTestApp(cfg config.Config) (*app, *fakeClipboard) {
	cb := &fakeClipboard{}
	return &app{
		now:       func() time.Time { return testNow },
		clipboard: cb.write,
		loadCfg:   func() (config.Config, error) { return cfg, nil },
	}, cb
}

// runCLI executes the root command with args and returns stdout, stderr and
// the exit code.
func runCLI(t *testing.T, a *app, args ...string) (string, string, int) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := newRootCmd(a)
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	code := execute(context.Background(), cmd, args)
	return stdout.String(), stderr.String(), code
}

// resolvePath resolves symlinks in a path.
// This is needed on macOS where /var is a symlink to /private/var.
func resolvePath(t *testing.T, path string) string {
	t.Helper()
	resolved, err := filepath.EvalSymlinks(path)
	if err != nil {
		t.Fatalf("failed to resolve path %s: %v", path, err)
	}
	return resolved
}

// testRepo writes commits and refs directly so commit times are exact.
type testRepo struct {
	t    *testing.T
	dir  string
	repo *gogit.Repository
}

func newTestRepo(t *testing.T) *testRepo {
	t.Helper()
	dir := filepath.Join(resolvePath(t, t.TempDir()), "repo")
	repo, err := gogit.PlainInit(dir, false)
	if err != nil {
		t.Fatalf("failed to init repo: %v", err)
	}
	r := &testRepo{t: t, dir: dir, repo: repo}
	r.setRef(plumbing.NewSymbolicReference(plumbing.HEAD, plumbing.NewBranchReferenceName("main")))
	return r
}

func (r *testRepo) store(o interface {
	Encode(plumbing.EncodedObject) error
}) plumbing.Hash {
	r.t.Helper()
	obj := r.repo.Storer.NewEncodedObject()
	if err := o.Encode(obj); err != nil {
		r.t.Fatalf("failed to encode object: %v", err)
	}
	hash, err := r.repo.Storer.SetEncodedObject(obj)
	if err != nil {
		r.t.Fatalf("failed to store object: %v", err)
	}
	return hash
}

func (r *testRepo) setRef(ref *plumbing.Reference) {
	r.t.Helper()
	if err := r.repo.Storer.SetReference(ref); err != nil {
		r.t.Fatalf("failed to set %s: %v", ref.Name(), err)
	}
}

// branch creates refs/heads/<name> at a new commit made ago before testNow.
func (r *testRepo) branch(name string, ago time.Duration, message string) plumbing.Hash {
	r.t.Helper()
	sig := object.Signature{Name: "Test User", Email: "test@test.com", When: testNow.Add(-ago)}
	hash := r.store(&object.Commit{
		Author:    sig,
		Committer: sig,
		Message:   message,
		TreeHash:  r.store(&object.Tree{}),
	})
	r.setRef(plumbing.NewHashReference(plumbing.NewBranchReferenceName(name), hash))
	return hash
}

// remote creates refs/remotes/origin/<name> at hash.
func (r *testRepo) remote(name string, hash plumbing.Hash) {
	r.t.Helper()
	r.setRef(plumbing.NewHashReference(plumbing.NewRemoteReferenceName("origin", name), hash))
}

// standardRepo has main (head, now), feature-x (3h) and old (40d).
func standardRepo(t *testing.T) *testRepo {
	t.Helper()
	r := newTestRepo(t)
	main := r.branch("main", 0, "wip\n")
	r.branch("feature-x", 3*time.Hour, "Add login form\n\nWith validation.\n")
	old := r.branch("old", 40*24*time.Hour, "initial\n")

	r.remote("main", main)
	r.remote("release", old)
	r.setRef(plumbing.NewSymbolicReference(
		plumbing.NewRemoteHEADReferenceName("origin"),
		plumbing.NewRemoteReferenceName("origin", "main"),
	))
	return r
}

var errNoClipboard = errors.New("no clipboard utility found")
