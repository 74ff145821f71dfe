package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/nhle/todo-app/internal/model"
	"github.com/nhle/todo-app/internal/store"
)

// NewListCommand creates the list command group.
func NewListCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "Create and search lists",
	}
	cmd.AddCommand(newListAddCommand(rootOpts))
	cmd.AddCommand(newListSearchCommand(rootOpts))
	return cmd
}

type listAddOptions struct {
	summary  string
	category string
}

func newListAddCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &listAddOptions{}

	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Create a list",
		Long: `Create a list. Names are unique; adding a name that already exists
leaves the stored list untouched and reports it.

Example:
  todo list add Groceries --summary "weekly shop" --category home`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := openSession(rootOpts)
			if err != nil {
				return err
			}
			defer sess.Close()

			list := model.List{
				Name:     strings.TrimSpace(args[0]),
				Summary:  optionalFlag(cmd, "summary", opts.summary),
				Category: optionalFlag(cmd, "category", opts.category),
			}
			if err := list.Validate(); err != nil {
				return WrapExitError(ExitUsage, "invalid list", err)
			}

			res, err := sess.store.InsertList(cmd.Context(), list)
			if err != nil {
				return WrapExitError(ExitFailure, "creating list", err)
			}

			out := cmd.OutOrStdout()
			switch res.Outcome {
			case store.SkippedDuplicate:
				fmt.Fprintf(out, "List %q already exists (id %d); skipping.\n", list.Name, res.ID)
			default:
				fmt.Fprintf(out, "Created list %q (id %d).\n", list.Name, res.ID)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.summary, "summary", "", "short summary of the list")
	cmd.Flags().StringVar(&opts.category, "category", "", "category of the list")
	return cmd
}

type searchOptions struct {
	exact bool
	json  bool
	list  string
}

func newListSearchCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &searchOptions{}

	cmd := &cobra.Command{
		Use:   "search [term]",
		Short: "Find lists by name",
		Long: `Find lists whose name contains term. With --exact only a list with
exactly that name matches. No term lists everything.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := openSession(rootOpts)
			if err != nil {
				return err
			}
			defer sess.Close()

			filter := store.ListFilter{Mode: matchMode(opts.exact)}
			if len(args) == 1 {
				filter.Term = args[0]
			}

			lists, err := sess.store.FetchLists(cmd.Context(), filter)
			if err != nil {
				return WrapExitError(ExitFailure, "searching lists", err)
			}

			if opts.json {
				if lists == nil {
					lists = []model.List{}
				}
				return writeJSON(cmd.OutOrStdout(), lists)
			}
			renderLists(cmd.OutOrStdout(), lists)
			return nil
		},
	}

	cmd.Flags().BoolVar(&opts.exact, "exact", false, "match the whole name")
	cmd.Flags().BoolVar(&opts.json, "json", false, "print results as JSON")
	return cmd
}

func matchMode(exact bool) store.MatchMode {
	if exact {
		return store.MatchExact
	}
	return store.MatchSubstring
}

// optionalFlag returns nil unless the flag was given on the command line.
func optionalFlag(cmd *cobra.Command, name, value string) *string {
	if !cmd.Flags().Changed(name) {
		return nil
	}
	return &value
}
