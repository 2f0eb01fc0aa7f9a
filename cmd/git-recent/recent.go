package main

import (
	"context"
	"io"
	"os"

	"github.com/charmbracelet/colorprofile"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/raphi011/git-recent/internal/branch"
	"github.com/raphi011/git-recent/internal/config"
	"github.com/raphi011/git-recent/internal/format"
	"github.com/raphi011/git-recent/internal/git"
	"github.com/raphi011/git-recent/internal/log"
	"github.com/raphi011/git-recent/internal/output"
	"github.com/raphi011/git-recent/internal/ui/static"
	"github.com/raphi011/git-recent/internal/ui/styles"
)

// newProvider returns the branch provider for backend.
func newProvider(backend, dir string) branch.Provider {
	if backend == config.BackendGit {
		return git.NewCLIProvider(dir)
	}
	return git.NewGoGitProvider(dir)
}

// runRecent lists, filters, ranks and prints branches. Nothing is written to
// stdout unless every step succeeds.
func runRecent(ctx context.Context, a *app, s settings) error {
	l := log.FromContext(ctx)
	out := output.FromContext(ctx)

	entries, err := newProvider(s.backend, s.dir).ListBranches(ctx, s.query.Scope)
	if err != nil {
		return err
	}

	entries = branch.Match(entries, s.query.Match)
	top := branch.SelectRecent(entries, s.query.Count)
	l.Debug("selected branches", "matched", len(entries), "shown", len(top), "count", s.query.Count)

	rows := format.RenderRows(top, a.now())

	w, colored := colorWriter(out.Writer(), s.color)
	if colored {
		styles.Init(s.theme)
	}
	if err := output.New(w).PrintLines(static.RenderRows(rows, colored)); err != nil {
		return err
	}

	if s.copy && len(top) > 0 {
		if err := a.clipboard(top[0].Name); err != nil {
			l.Printf("Warning: failed to copy to clipboard: %v\n", err)
		}
	}
	return nil
}

// colorWriter decides whether output is styled and returns the writer that
// downsamples styles to what the terminal supports.
func colorWriter(w io.Writer, mode string) (io.Writer, bool) {
	switch mode {
	case config.ColorNever:
		return w, false
	case config.ColorAlways:
		cw := colorprofile.NewWriter(w, os.Environ())
		cw.Profile = colorprofile.TrueColor
		return cw, true
	}

	f, ok := w.(*os.File)
	if !ok || !(isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())) {
		return w, false
	}
	// NewWriter honors NO_COLOR and TERM=dumb
	cw := colorprofile.NewWriter(w, os.Environ())
	if cw.Profile == colorprofile.NoTTY || cw.Profile == colorprofile.Ascii {
		return w, false
	}
	return cw, true
}

// completeBranchNames completes --match with the branch names of the
// repository selected by --dir and --remote.
func completeBranchNames(opts *options) func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
	return func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		scope := branch.Local
		if opts.remote {
			scope = branch.Remote
		}
		entries, err := git.NewGoGitProvider(opts.dir).ListBranches(cmd.Context(), scope)
		if err != nil {
			return nil, cobra.ShellCompDirectiveNoFileComp
		}
		names := make([]string, 0, len(entries))
		for _, e := range branch.Match(entries, toComplete) {
			names = append(names, e.Name)
		}
		return names, cobra.ShellCompDirectiveNoFileComp
	}
}
