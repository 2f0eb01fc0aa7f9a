// Package git reads branch tips from a repository.
//
// Two [branch.Provider] implementations are available:
//
//   - [GoGitProvider]: reads refs and commits in-process with go-git.
//     No git binary is required.
//   - [CLIProvider]: runs "git for-each-ref" and parses its output.
//     Honors the user's git installation (packed refs, alternates, reftable).
//
// Both report the same entries for the same repository: the branch short
// name, whether it is checked out, the tip commit's committer time in UTC
// and the commit summary (first paragraph of the message folded onto one
// line, as git's %(subject) does).
//
// A missing repository yields [branch.ErrRepositoryNotFound]. Any other
// failure, including a branch whose tip is not a commit, yields a
// [*branch.ProviderError] and no entries.
package git
