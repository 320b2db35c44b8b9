package root

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"dashline/internal/ui"
)

func newTodoCmd(opts *globalOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "todo",
		Short: "List todos",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, cleanup, err := openService(cmd.Context(), opts, cmd.OutOrStdout())
			if err != nil {
				return err
			}
			defer cleanup()

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Heading(ui.IconTodo, "Todos"))
			todos := svc.Todos()
			if len(todos) == 0 {
				fmt.Fprintln(out, ui.Muted.Render("(none)"))
			}
			for _, t := range todos {
				fmt.Fprintf(out, "%s %s - %s %s\n", ui.Checkbox(t.Completed), t.Time, ui.TodoText(t.Task, t.Completed), ui.Muted.Render("#"+t.ID))
			}
			return nil
		},
	}
	cmd.AddCommand(newTodoAddCmd(opts), newTodoToggleCmd(opts), newTodoExportCmd(opts))
	return cmd
}

func newTodoAddCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "add <time> <task>",
		Short: "Add a todo",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 2 {
				return errors.New("time and task are required")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			svc, cleanup, err := openService(ctx, opts, cmd.OutOrStdout())
			if err != nil {
				return err
			}
			defer cleanup()

			t, err := svc.AddTodo(ctx, args[0], args[1])
			if err != nil {
				return err
			}
			if t == nil {
				nothingAdded(cmd.OutOrStdout(), "todo")
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s - %s %s\n", ui.Good.Render(ui.IconPlus+" Added"), t.Time, t.Task, ui.Muted.Render("#"+t.ID))
			return nil
		},
	}
}

func newTodoToggleCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "toggle <id>",
		Short: "Flip a todo between open and done",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("id is required")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			svc, cleanup, err := openService(ctx, opts, cmd.OutOrStdout())
			if err != nil {
				return err
			}
			defer cleanup()

			found, err := svc.ToggleTodo(ctx, args[0])
			if err != nil {
				return err
			}
			if !found {
				return fmt.Errorf("todo %q not found", args[0])
			}
			for _, t := range svc.Todos() {
				if t.ID == args[0] {
					fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", ui.Checkbox(t.Completed), ui.TodoText(t.Task, t.Completed))
				}
			}
			return nil
		},
	}
}

func newTodoExportCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "export",
		Short: "Write the todo list to a PDF report",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			svc, cleanup, err := openService(ctx, opts, cmd.OutOrStdout())
			if err != nil {
				return err
			}
			defer cleanup()

			res, err := svc.ExportTodos(ctx)
			if err != nil {
				return err
			}
			printExport(cmd, res.Path, res.Records, res.Pages)
			return nil
		},
	}
}

func printExport(cmd *cobra.Command, path string, records, pages int) {
	fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s\n",
		ui.Good.Render(ui.IconExport+" Exported"), path,
		ui.Muted.Render(fmt.Sprintf("(%d record(s), %d page(s))", records, pages)))
}
