package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/nhle/todo-app/internal/model"
)

// NewConfigCommand creates the config command group.
func NewConfigCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the configuration file",
	}
	cmd.AddCommand(newConfigInitCommand(rootOpts))
	return cmd
}

func newConfigInitCommand(rootOpts *RootOptions) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:           "init",
		Short:         "Write a default config file",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := rootOpts.ConfigPath
			if _, err := os.Stat(path); err == nil && !force {
				return &ExitError{Code: ExitUsage, Message: fmt.Sprintf("%s already exists (use --force to overwrite)", path)}
			} else if err != nil && !errors.Is(err, os.ErrNotExist) {
				return WrapExitError(ExitFailure, "checking config file", err)
			}

			cfg := model.DefaultAppConfig()
			if rootOpts.Database != "" {
				cfg.Database.Path = rootOpts.Database
			}
			if err := model.SaveConfig(path, cfg); err != nil {
				return WrapExitError(ExitFailure, "writing config", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "overwrite an existing file")
	return cmd
}
