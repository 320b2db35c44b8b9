package root

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"dashline/internal/engine"
	"dashline/internal/ui"
)

func newWorkoutCmd(opts *globalOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "workout",
		Short: "Show the workout log",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, cleanup, err := openService(cmd.Context(), opts, cmd.OutOrStdout())
			if err != nil {
				return err
			}
			defer cleanup()

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Heading(ui.IconLift, "Workout Log"))
			ws := svc.Workouts()
			if len(ws) == 0 {
				fmt.Fprintln(out, ui.Muted.Render("(no workouts logged)"))
			}
			for _, w := range ws {
				lines := engine.WorkoutLines(w)
				fmt.Fprintf(out, "%s %s %s\n", ui.H2.Render(w.Split.Label()), lines[0], ui.Muted.Render("#"+w.ID))
				fmt.Fprintf(out, "  %s\n", lines[1])
			}
			return nil
		},
	}
	cmd.AddCommand(newWorkoutAddCmd(opts), newWorkoutExportCmd(opts))
	return cmd
}

func newWorkoutAddCmd(opts *globalOptions) *cobra.Command {
	var in engine.WorkoutInput

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Log a workout entry",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			svc, cleanup, err := openService(ctx, opts, cmd.OutOrStdout())
			if err != nil {
				return err
			}
			defer cleanup()

			w, err := svc.AddWorkout(ctx, in)
			if err != nil {
				return err
			}
			if w == nil {
				nothingAdded(cmd.OutOrStdout(), "workout")
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", ui.Good.Render(ui.IconPlus+" Logged"), engine.WorkoutLines(w)[1])
			return nil
		},
	}

	cmd.Flags().StringVar(&in.Date, "date", "", "Date, e.g. 2025-06-19")
	cmd.Flags().StringVar(&in.Day, "day", "", "Day label, e.g. Thursday")
	cmd.Flags().StringVar(&in.Split, "split", "", "Split ("+splitChoices()+")")
	cmd.Flags().StringVar(&in.Exercise, "exercise", "", "Exercise name")
	cmd.Flags().StringVar(&in.Sets, "sets", "", "Number of sets")
	cmd.Flags().StringVar(&in.Reps, "reps", "", "Reps per set")
	cmd.Flags().StringVar(&in.Weight, "weight", "", "Weight in kg")
	return cmd
}

func newWorkoutExportCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "export",
		Short: "Write the workout log to a PDF report",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			svc, cleanup, err := openService(ctx, opts, cmd.OutOrStdout())
			if err != nil {
				return err
			}
			defer cleanup()

			res, err := svc.ExportWorkouts(ctx)
			if err != nil {
				return err
			}
			printExport(cmd, res.Path, res.Records, res.Pages)
			return nil
		},
	}
}

func splitChoices() string {
	names := make([]string, len(engine.Splits))
	for i, sp := range engine.Splits {
		names[i] = string(sp)
	}
	return strings.Join(names, "|")
}
