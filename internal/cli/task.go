package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/nhle/todo-app/internal/model"
	"github.com/nhle/todo-app/internal/store"
)

// NewTaskCommand creates the task command group.
func NewTaskCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "task",
		Short: "Create and search tasks",
	}
	cmd.AddCommand(newTaskAddCommand(rootOpts))
	cmd.AddCommand(newTaskSearchCommand(rootOpts))
	return cmd
}

type taskAddOptions struct {
	list        string
	priority    string
	status      string
	tags        string
	deadline    string
	completedOn string
	description string
}

func newTaskAddCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &taskAddOptions{}

	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Create a task in a list",
		Long: `Create a task in an existing list.

Priority is one of Low, Medium, High. Status is one of NotStarted,
InProgress, Completed. Tags are comma separated.

Example:
  todo task add "Buy milk" --list Groceries --priority high --tags dairy,urgent`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			task, err := opts.task(cmd, strings.TrimSpace(args[0]))
			if err != nil {
				return WrapExitError(ExitUsage, "invalid task", err)
			}

			sess, err := openSession(rootOpts)
			if err != nil {
				return err
			}
			defer sess.Close()

			list, err := findList(cmd, sess.store, opts.list)
			if err != nil {
				return err
			}
			task.ListID = list.ID
			task.ListName = list.Name

			id, err := sess.store.InsertTask(cmd.Context(), task)
			if err != nil {
				return WrapExitError(ExitFailure, "creating task", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Created task %q in list %q (id %d).\n", task.Name, list.Name, id)
			return nil
		},
	}

	cmd.Flags().StringVarP(&opts.list, "list", "l", "", "name of the list (required)")
	cmd.Flags().StringVarP(&opts.priority, "priority", "p", "", "Low, Medium or High")
	cmd.Flags().StringVarP(&opts.status, "status", "s", "", "NotStarted, InProgress or Completed")
	cmd.Flags().StringVarP(&opts.tags, "tags", "t", "", "comma separated tags")
	cmd.Flags().StringVar(&opts.deadline, "deadline", "", "deadline (YYYY-MM-DD)")
	cmd.Flags().StringVar(&opts.completedOn, "completed-on", "", "completion date (YYYY-MM-DD)")
	cmd.Flags().StringVarP(&opts.description, "description", "d", "", "longer description")
	_ = cmd.MarkFlagRequired("list")

	return cmd
}

// task builds a Task from the flags, parsing enum text strictly.
func (o *taskAddOptions) task(cmd *cobra.Command, name string) (model.Task, error) {
	task := model.Task{
		Name:        name,
		Tags:        model.ParseTagInput(o.tags),
		Deadline:    optionalFlag(cmd, "deadline", strings.TrimSpace(o.deadline)),
		CompletedOn: optionalFlag(cmd, "completed-on", strings.TrimSpace(o.completedOn)),
		Description: optionalFlag(cmd, "description", o.description),
	}
	if name == "" {
		return task, fmt.Errorf("task name must not be empty")
	}

	if cmd.Flags().Changed("priority") {
		p, err := model.ParsePriority(o.priority)
		if err != nil {
			return task, err
		}
		task.Priority = &p
	}
	if cmd.Flags().Changed("status") {
		s, err := model.ParseStatus(o.status)
		if err != nil {
			return task, err
		}
		task.Status = &s
	}

	for _, d := range []*string{task.Deadline, task.CompletedOn} {
		if d != nil {
			if err := model.ValidateDate(*d); err != nil {
				return task, err
			}
		}
	}
	return task, nil
}

// findList resolves a list by exact name.
func findList(cmd *cobra.Command, s store.Store, name string) (model.List, error) {
	lists, err := s.FetchLists(cmd.Context(), store.ListFilter{Mode: store.MatchExact, Term: name})
	if err != nil {
		return model.List{}, WrapExitError(ExitFailure, "looking up list", err)
	}
	if len(lists) == 0 {
		return model.List{}, &ExitError{Code: ExitFailure, Message: fmt.Sprintf("list %q not found", name)}
	}
	return lists[0], nil
}

func newTaskSearchCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &searchOptions{}

	cmd := &cobra.Command{
		Use:   "search [term]",
		Short: "Find tasks by name",
		Long: `Find tasks whose name contains term. With --exact only tasks with
exactly that name match; --list restricts the search to one list.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := openSession(rootOpts)
			if err != nil {
				return err
			}
			defer sess.Close()

			filter := store.TaskFilter{Mode: matchMode(opts.exact)}
			if len(args) == 1 {
				filter.Term = args[0]
			}
			if opts.list != "" {
				list, err := findList(cmd, sess.store, opts.list)
				if err != nil {
					return err
				}
				filter.ListID = &list.ID
			}

			tasks, err := sess.store.FetchTasks(cmd.Context(), filter)
			if err != nil {
				return WrapExitError(ExitFailure, "searching tasks", err)
			}

			if opts.json {
				return writeJSON(cmd.OutOrStdout(), tasks)
			}
			renderTasks(cmd.OutOrStdout(), tasks)
			return nil
		},
	}

	cmd.Flags().BoolVar(&opts.exact, "exact", false, "match the whole name")
	cmd.Flags().BoolVar(&opts.json, "json", false, "print results as JSON")
	cmd.Flags().StringVarP(&opts.list, "list", "l", "", "only search this list")
	return cmd
}
