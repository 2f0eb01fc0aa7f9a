package git

import (
	"os"
	"os/exec"
	"path/filepath"
	"sort"
	"testing"
	"time"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"

	"github.com/raphi011/git-recent/internal/branch"
)

// base is the reference time all fixture commits are relative to.
var base = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

// testRepo builds repositories object by object so commit times are exact.
type testRepo struct {
	t    *testing.T
	dir  string
	repo *gogit.Repository
	tree plumbing.Hash
}

// resolveTempDir creates a temp directory and resolves macOS symlinks.
func resolveTempDir(t *testing.T) string {
	t.Helper()
	tmpDir := t.TempDir()
	resolved, err := filepath.EvalSymlinks(tmpDir)
	if err != nil {
		t.Fatalf("failed to resolve symlinks for %s: %v", tmpDir, err)
	}
	return resolved
}

// newTestRepo initializes an empty repository whose HEAD points at main.
func newTestRepo(t *testing.T) *testRepo {
	t.Helper()
	dir := filepath.Join(resolveTempDir(t), "test-repo")

	repo, err := gogit.PlainInit(dir, false)
	if err != nil {
		t.Fatalf("failed to init repo: %v", err)
	}
	head := plumbing.NewSymbolicReference(plumbing.HEAD, plumbing.NewBranchReferenceName("main"))
	if err := repo.Storer.SetReference(head); err != nil {
		t.Fatalf("failed to set HEAD: %v", err)
	}

	r := &testRepo{t: t, dir: dir, repo: repo}
	r.tree = r.store(&object.Tree{})
	return r
}

type encoder interface {
	Encode(plumbing.EncodedObject) error
}

func (r *testRepo) store(o encoder) plumbing.Hash {
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

// commit stores a commit with the given message committed at when.
func (r *testRepo) commit(message string, when time.Time) plumbing.Hash {
	r.t.Helper()
	sig := object.Signature{Name: "Test User", Email: "test@test.com", When: when}
	return r.store(&object.Commit{
		Author:    sig,
		Committer: sig,
		Message:   message,
		TreeHash:  r.tree,
	})
}

// tag stores an annotated tag object pointing at target.
func (r *testRepo) tag(name string, target plumbing.Hash) plumbing.Hash {
	r.t.Helper()
	return r.store(&object.Tag{
		Name:       name,
		Tagger:     object.Signature{Name: "Test User", Email: "test@test.com", When: base},
		Message:    "release " + name + "\n",
		TargetType: plumbing.CommitObject,
		Target:     target,
	})
}

func (r *testRepo) setRef(ref *plumbing.Reference) {
	r.t.Helper()
	if err := r.repo.Storer.SetReference(ref); err != nil {
		r.t.Fatalf("failed to set %s: %v", ref.Name(), err)
	}
}

// branch points refs/heads/<name> at hash.
func (r *testRepo) branch(name string, hash plumbing.Hash) {
	r.t.Helper()
	r.setRef(plumbing.NewHashReference(plumbing.NewBranchReferenceName(name), hash))
}

// remoteBranch points refs/remotes/<remote>/<name> at hash.
func (r *testRepo) remoteBranch(remote, name string, hash plumbing.Hash) {
	r.t.Helper()
	r.setRef(plumbing.NewHashReference(plumbing.NewRemoteReferenceName(remote, name), hash))
}

// remoteHead points refs/remotes/<remote>/HEAD at the remote's branch.
func (r *testRepo) remoteHead(remote, name string) {
	r.t.Helper()
	r.setRef(plumbing.NewSymbolicReference(
		plumbing.NewRemoteHEADReferenceName(remote),
		plumbing.NewRemoteReferenceName(remote, name),
	))
}

// standardRepo has three local branches, two remote branches and
// origin/HEAD. HEAD is main.
func standardRepo(t *testing.T) *testRepo {
	t.Helper()
	r := newTestRepo(t)

	main := r.commit("wip\n", base)
	feature := r.commit("Add login form\n\nLonger description.\n", base.Add(-3*time.Hour))
	old := r.commit("initial\n", base.Add(-40*24*time.Hour))

	r.branch("main", main)
	r.branch("feature-x", feature)
	r.branch("old", old)

	r.remoteBranch("origin", "main", main)
	r.remoteBranch("origin", "release", old)
	r.remoteHead("origin", "main")
	return r
}

func sortByName(entries []branch.Entry) []branch.Entry {
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name < entries[j].Name })
	return entries
}

func requireGit(t *testing.T) {
	t.Helper()
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git not installed")
	}
}

// writeRefFile writes raw content to a loose ref file, bypassing any
// validation.
func (r *testRepo) writeRefFile(name, content string) {
	r.t.Helper()
	path := filepath.Join(r.dir, ".git", filepath.FromSlash(name))
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		r.t.Fatalf("failed to create ref dir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		r.t.Fatalf("failed to write %s: %v", name, err)
	}
}
