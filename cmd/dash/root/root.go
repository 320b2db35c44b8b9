package root

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"dashline/internal/ui"
)

const Version = "0.1.0"

type globalOptions struct {
	configPath string
	dbPath     string
}

// NewRootCommand builds the dash command tree writing to out.
func NewRootCommand(out io.Writer) *cobra.Command {
	opts := &globalOptions{}
	rootCmd := &cobra.Command{
		Use:           "dash",
		Short:         "Dashline: daily timeline, todos and workout log",
		Long:          "Dashline is a local-first personal dashboard: a daily timeline, a todo list and a workout log,\nwith PDF reports and automatic archiving of stale lists.",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.SetOut(out)
	rootCmd.SetVersionTemplate("{{.Name}} v{{.Version}}\n")

	rootCmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "Config file (default $XDG_CONFIG_HOME/dashline/config.toml)")
	rootCmd.PersistentFlags().StringVar(&opts.dbPath, "db", "", "Database file (default ~/.dashline.db)")

	rootCmd.AddCommand(
		newTimelineCmd(opts),
		newTodoCmd(opts),
		newWorkoutCmd(opts),
		newWallpaperCmd(opts),
		newArchiveCmd(opts),
		newBoardCmd(opts),
	)
	return rootCmd
}

func Execute() {
	if err := NewRootCommand(os.Stdout).ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, ui.Bad.Render(ui.IconError+" "+err.Error()))
		os.Exit(1)
	}
}
