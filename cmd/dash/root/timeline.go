package root

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"dashline/internal/engine"
	"dashline/internal/ui"
)

func newTimelineCmd(opts *globalOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "timeline",
		Short: "Show the daily timeline",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, cleanup, err := openService(cmd.Context(), opts, cmd.OutOrStdout())
			if err != nil {
				return err
			}
			defer cleanup()

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Heading(ui.IconClock, "Daily Timeline"))
			for _, e := range svc.Timeline() {
				fmt.Fprintf(out, "%s %-20s %s %s\n", ui.TimelineIcon(string(e.Icon)), e.Time, e.Task, ui.Muted.Render("#"+e.ID))
			}
			return nil
		},
	}
	cmd.AddCommand(newTimelineEditCmd(opts), newTimelineAddCmd(opts))
	return cmd
}

func newTimelineEditCmd(opts *globalOptions) *cobra.Command {
	var when, task, icon string

	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Change the time, task or icon of a timeline entry",
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

			var patch engine.TimelinePatch
			if cmd.Flags().Changed("time") {
				patch.Time = &when
			}
			if cmd.Flags().Changed("task") {
				patch.Task = &task
			}
			if cmd.Flags().Changed("icon") {
				i := engine.ParseIcon(icon)
				patch.Icon = &i
			}

			svc.BeginTimelineEdit()
			found, err := svc.EditTimelineEntry(ctx, args[0], patch)
			if err != nil {
				return err
			}
			if err := svc.EndTimelineEdit(ctx); err != nil {
				return err
			}
			if !found {
				return fmt.Errorf("timeline entry %q not found", args[0])
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s #%s\n", ui.Good.Render(ui.IconDone+" Updated"), args[0])
			return nil
		},
	}

	cmd.Flags().StringVar(&when, "time", "", "New time label, e.g. \"6:00 AM\"")
	cmd.Flags().StringVar(&task, "task", "", "New task text")
	cmd.Flags().StringVar(&icon, "icon", "", "New icon (gym|college|dev|steps|sleep|default)")
	return cmd
}

func newTimelineAddCmd(opts *globalOptions) *cobra.Command {
	var icon string

	cmd := &cobra.Command{
		Use:   "add <time> <task>",
		Short: "Append an entry to the daily timeline",
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

			e, err := svc.AddTimelineEntry(ctx, args[0], args[1], engine.ParseIcon(icon))
			if err != nil {
				return err
			}
			if e == nil {
				nothingAdded(cmd.OutOrStdout(), "timeline")
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s %s\n", ui.Good.Render(ui.IconPlus+" Added"), ui.TimelineIcon(string(e.Icon)), e.Time, e.Task)
			return nil
		},
	}

	cmd.Flags().StringVar(&icon, "icon", "default", "Icon (gym|college|dev|steps|sleep|default)")
	return cmd
}
