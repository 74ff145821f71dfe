package cli

import (
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/nhle/todo-app/internal/app"
	"github.com/nhle/todo-app/internal/model"
	"github.com/nhle/todo-app/internal/store"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	ConfigPath string
	Database   string
	LogLevel   string

	// Interactive runs the terminal UI. Tests replace it.
	Interactive func(s store.Store, logger *log.Logger) error
}

// NewRootCommand creates the root command. Without a subcommand it starts
// the interactive UI.
func NewRootCommand() *cobra.Command {
	return newRootCommand(&RootOptions{Interactive: app.Run})
}

func newRootCommand(opts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "todo",
		Short: "Personal task and list manager",
		Long: `todo keeps lists and the tasks in them in a local SQLite file.

Run without arguments for the interactive menu, or use the list and task
subcommands from scripts.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := openSession(opts)
			if err != nil {
				return err
			}
			defer sess.Close()

			if err := opts.Interactive(sess.store, sess.logger); err != nil {
				return WrapExitError(ExitFailure, "running interactive ui", err)
			}
			return nil
		},
	}

	cmd.PersistentFlags().StringVar(&opts.ConfigPath, "config", model.DefaultConfigPath(), "path to config file")
	cmd.PersistentFlags().StringVar(&opts.Database, "db", "", "path to SQLite database (overrides config)")
	cmd.PersistentFlags().StringVar(&opts.LogLevel, "log-level", "", "log level: debug, info, warn, error")

	cmd.AddCommand(NewListCommand(opts))
	cmd.AddCommand(NewTaskCommand(opts))
	cmd.AddCommand(NewConfigCommand(opts))

	return cmd
}
