package root

import (
	"fmt"

	"github.com/spf13/cobra"

	"dashline/internal/engine"
	"dashline/internal/ui"
)

func newArchiveCmd(opts *globalOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "archive",
		Short: "Show automatic archive history for todos and workouts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			svc, cleanup, err := openService(ctx, opts, cmd.OutOrStdout())
			if err != nil {
				return err
			}
			defer cleanup()

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Heading(ui.IconArchive, "Archive History"))
			for _, key := range []string{engine.KeyTodos, engine.KeyWorkouts} {
				runs, err := svc.ArchiveRepo().ListByKey(ctx, key)
				if err != nil {
					return err
				}
				fmt.Fprintln(out, ui.H2.Render(key+":"))
				if len(runs) == 0 {
					fmt.Fprintln(out, ui.Muted.Render("  (never archived)"))
					continue
				}
				for _, r := range runs {
					path := "-"
					if r.ExportPath != nil {
						path = *r.ExportPath
					}
					fmt.Fprintf(out, "  %s %d record(s) %s\n", r.RanAt.Local().Format("2006-01-02 15:04"), r.RecordCount, ui.Muted.Render(path))
				}
			}
			return nil
		},
	}
	return cmd
}
