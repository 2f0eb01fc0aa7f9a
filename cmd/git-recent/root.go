package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"github.com/raphi011/git-recent/internal/branch"
	"github.com/raphi011/git-recent/internal/config"
	"github.com/raphi011/git-recent/internal/log"
	"github.com/raphi011/git-recent/internal/output"
)

// app holds the dependencies commands share. Tests swap the clock and
// clipboard.
type app struct {
	now       func() time.Time
	clipboard func(string) error
	loadCfg   func() (config.Config, error)
}

func defaultApp() *app {
	return &app{
		now:       time.Now,
		clipboard: clipboard.WriteAll,
		loadCfg:   config.Load,
	}
}

// options holds the root command's flag values.
type options struct {
	count   uint
	remote  bool
	match   string
	dir     string
	backend string
	color   string
	copy    bool
	verbose bool
	quiet   bool
}

func newRootCmd(a *app) *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "git-recent",
		Short: "Show the most recently committed-to git branches",
		Long: `git-recent lists the branches of a repository ordered by the time of
their tip commit, newest first.

Each line shows a head marker, the branch name, how long ago the tip was
committed and the commit summary:

  * main               now  wip
    feature-x      3h ago  Add login form`,
		Example: `  git-recent                 # 7 most recent local branches
  git-recent -n 0            # all local branches
  git-recent --remote -n 3   # 3 most recent remote branches
  git-recent -m feat         # only branches fuzzy-matching "feat"
  git-recent -C ~/src/app    # run against another repository`,
		Args:                       cobra.NoArgs,
		SilenceUsage:               true,
		SilenceErrors:              true,
		SuggestionsMinimumDistance: 2,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Create logger (stderr for diagnostics) and printer (stdout for data)
			ctx := log.WithLogger(cmd.Context(), log.New(cmd.ErrOrStderr(), opts.verbose, opts.quiet))
			ctx = output.WithPrinter(ctx, cmd.OutOrStdout())
			cmd.SetContext(ctx)
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := a.loadCfg()
			if err != nil {
				return err
			}
			s, err := resolveSettings(cmd, opts, cfg)
			if err != nil {
				return err
			}
			return runRecent(cmd.Context(), a, s)
		},
	}

	cmd.Flags().UintVarP(&opts.count, "count", "n", config.DefaultCount, "Number of branches to show (0 for all)")
	cmd.Flags().BoolVarP(&opts.remote, "remote", "r", false, "List remote-tracking branches instead of local ones (--remote=false forces local)")
	cmd.Flags().StringVarP(&opts.match, "match", "m", "", "Only show branches fuzzy-matching `pattern`")
	cmd.Flags().StringVarP(&opts.dir, "dir", "C", ".", "Run as if started in `path`")
	cmd.Flags().StringVar(&opts.backend, "backend", config.BackendGoGit, "How branches are read: go-git or git")
	cmd.Flags().StringVar(&opts.color, "color", config.ColorAuto, "Colored output: auto, always or never")
	cmd.Flags().BoolVar(&opts.copy, "copy", false, "Copy the most recent branch name to the clipboard")

	cmd.RegisterFlagCompletionFunc("backend", cobra.FixedCompletions(config.ValidBackends, cobra.ShellCompDirectiveNoFileComp))
	cmd.RegisterFlagCompletionFunc("color", cobra.FixedCompletions(config.ValidColorModes, cobra.ShellCompDirectiveNoFileComp))
	cmd.RegisterFlagCompletionFunc("match", completeBranchNames(opts))
	cmd.MarkFlagDirname("dir")

	// Global flags
	cmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Show external commands and debug output")
	cmd.PersistentFlags().BoolVarP(&opts.quiet, "quiet", "q", false, "Suppress all log output")
	cmd.MarkFlagsMutuallyExclusive("verbose", "quiet")

	// Version flag
	cmd.Version = versionString()
	cmd.SetVersionTemplate("{{.Version}}\n")

	cmd.AddCommand(newConfigCmd(a))
	cmd.AddCommand(newCompletionCmd())

	return cmd
}

// settings is the effective configuration of one listing after merging
// flags over config.
type settings struct {
	query   branch.Query
	dir     string
	backend string
	color   string
	theme   config.ThemeConfig
	copy    bool
}

// resolveSettings applies explicitly set flags over cfg.
func resolveSettings(cmd *cobra.Command, opts *options, cfg config.Config) (settings, error) {
	flags := cmd.Flags()
	s := settings{
		query: branch.Query{
			Count: cfg.Count,
			Match: opts.match,
		},
		dir:     opts.dir,
		backend: cfg.Backend,
		color:   cfg.Color,
		theme:   cfg.Theme,
		copy:    opts.copy,
	}

	if flags.Changed("count") {
		s.query.Count = opts.count
	}

	scope, err := branch.ParseScope(cfg.Scope)
	if err != nil {
		return settings{}, err
	}
	if flags.Changed("remote") {
		scope = branch.Local
		if opts.remote {
			scope = branch.Remote
		}
	}
	s.query.Scope = scope

	if flags.Changed("backend") {
		if err := config.ValidateBackend(opts.backend); err != nil {
			return settings{}, err
		}
		s.backend = opts.backend
	}
	if flags.Changed("color") {
		if err := config.ValidateColor(opts.color); err != nil {
			return settings{}, err
		}
		s.color = opts.color
	}

	return s, nil
}

// Execute runs the root command and returns the process exit code.
func Execute() int {
	// Create context with signal handling
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	return execute(ctx, newRootCmd(defaultApp()), os.Args[1:])
}

// execute runs cmd with args and reports a failure as a single line on
// the command's stderr.
func execute(ctx context.Context, cmd *cobra.Command, args []string) int {
	cmd.SetArgs(args)
	if err := cmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "git-recent: %v\n", err)
		return 1
	}
	return 0
}
