package root

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"dashline/internal/ui"
	"dashline/internal/wallpaper"
)

func newWallpaperCmd(opts *globalOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "wallpaper",
		Short: "Manage the dashboard background image",
	}
	cmd.AddCommand(newWallpaperSetCmd(opts), newWallpaperShowCmd(opts))
	return cmd
}

func newWallpaperSetCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "set <image>",
		Short: "Use an image file as the background, replacing the current one",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("image path is required")
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

			if err := svc.SetWallpaperFile(ctx, args[0]); err != nil {
				return err
			}
			bg, _ := svc.Wallpaper()
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s\n", ui.Good.Render(ui.IconImage+" Wallpaper set"), args[0], ui.Muted.Render("("+wallpaper.MediaType(bg.Image)+")"))
			return nil
		},
	}
}

func newWallpaperShowCmd(opts *globalOptions) *cobra.Command {
	var css bool

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Describe the current background",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			svc, cleanup, err := openService(ctx, opts, cmd.OutOrStdout())
			if err != nil {
				return err
			}
			defer cleanup()

			out := cmd.OutOrStdout()
			bg, ok := svc.Wallpaper()
			if !ok {
				fmt.Fprintln(out, ui.Muted.Render("No wallpaper set."))
				return nil
			}
			if css {
				fmt.Fprint(out, bg.CSS())
				return nil
			}
			fmt.Fprintln(out, ui.Heading(ui.IconImage, "Wallpaper"))
			fmt.Fprintln(out, ui.LabelValue("Type", wallpaper.MediaType(bg.Image)))
			fmt.Fprintln(out, ui.LabelValue("Encoded size", fmt.Sprintf("%d bytes", len(bg.Image))))
			fmt.Fprintln(out, ui.LabelValue("Layout", fmt.Sprintf("%s, %s, %s", bg.Size, bg.Position, bg.Attachment)))
			if entry, err := svc.KVRepo().Entry(ctx, wallpaper.Key); err == nil && entry != nil {
				fmt.Fprintln(out, ui.LabelValue("Set", entry.UpdatedAt.Local().Format("2006-01-02 15:04")))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&css, "css", false, "Print the background as a CSS body rule")
	return cmd
}
