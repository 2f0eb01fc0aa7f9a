package main

import (
	"github.com/spf13/cobra"

	"github.com/raphi011/git-recent/internal/config"
	"github.com/raphi011/git-recent/internal/output"
)

func newConfigCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "config",
		Short:   "Manage configuration",
		Aliases: []string{"cfg"},
		Args:    cobra.NoArgs,
		Long: `Manage git-recent configuration.

Config file: ~/.config/git-recent/config.toml
Set GIT_RECENT_CONFIG to use a different file.`,
		Example: `  git-recent config init     # Create default config
  git-recent config show     # Show effective config`,
	}

	cmd.AddCommand(newConfigInitCmd())
	cmd.AddCommand(newConfigShowCmd(a))

	return cmd
}

func newConfigInitCmd() *cobra.Command {
	var (
		force  bool
		stdout bool
	)

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create default config file",
		Args:  cobra.NoArgs,
		Example: `  git-recent config init      # Create config
  git-recent config init -f   # Overwrite existing config
  git-recent config init -s   # Print config to stdout`,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := output.FromContext(cmd.Context())

			if stdout {
				out.Print(config.DefaultFileContent())
				return nil
			}

			path, err := config.Path()
			if err != nil {
				return err
			}
			if err := config.Init(path, force); err != nil {
				return err
			}

			out.Printf("Created config file: %s\n", path)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite existing config")
	cmd.Flags().BoolVarP(&stdout, "stdout", "s", false, "Print config to stdout")

	return cmd
}

func newConfigShowCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show effective configuration",
		Args:  cobra.NoArgs,
		Long: `Show effective configuration as TOML.

Values come from the config file with GIT_RECENT_COUNT and
GIT_RECENT_BACKEND applied on top.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := a.loadCfg()
			if err != nil {
				return err
			}
			text, err := cfg.Encode()
			if err != nil {
				return err
			}
			output.FromContext(cmd.Context()).Print(text)
			return nil
		},
	}
}
