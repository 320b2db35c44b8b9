package root

import (
	"context"
	"database/sql"
	"fmt"
	"io"

	"go.uber.org/zap"

	"dashline/internal/config"
	"dashline/internal/engine"
	dashlog "dashline/internal/log"
	"dashline/internal/storage"
	"dashline/internal/ui"
)

func loadConfig(opts *globalOptions) (config.Config, error) {
	return config.Load(config.LoadOptions{
		ConfigPath: opts.configPath,
		Flags:      config.FlagOverrides{DBPath: &opts.dbPath},
	})
}

func openDB(ctx context.Context, path string) (*sql.DB, func(), error) {
	db, err := storage.Open(ctx, path)
	if err != nil {
		return nil, nil, err
	}
	cleanup := func() {
		_ = db.Close()
	}
	return db, cleanup, nil
}

// openService opens the stores, runs the archive policy and prints any
// notices it raised to out.
func openService(ctx context.Context, opts *globalOptions, out io.Writer) (*engine.Service, func(), error) {
	cfg, err := loadConfig(opts)
	if err != nil {
		return nil, nil, err
	}
	logger, logCloser, err := dashlog.New(cfg.Logging)
	if err != nil {
		return nil, nil, err
	}
	path, err := storage.ResolveDBPath(cfg.Storage.DBPath)
	if err != nil {
		_ = logCloser.Close()
		return nil, nil, err
	}
	db, closeDB, err := openDB(ctx, path)
	if err != nil {
		_ = logCloser.Close()
		return nil, nil, err
	}

	svc := engine.NewService(db, engine.Options{
		ExportDir:    cfg.Export.Dir,
		ArchiveAfter: cfg.Archive.After,
		Log:          logger,
	})
	cleanup := func() {
		svc.Close()
		closeDB()
		_ = logger.Sync()
		_ = logCloser.Close()
	}
	if err := svc.Open(ctx); err != nil {
		cleanup()
		return nil, nil, fmt.Errorf("open stores: %w", err)
	}
	logger.Debug("stores opened", zap.String("db", path))

	for _, n := range svc.Notices() {
		fmt.Fprintln(out, ui.NoticeText(string(n.Level), n.Message))
	}
	return svc, cleanup, nil
}

func nothingAdded(out io.Writer, what string) {
	fmt.Fprintln(out, ui.Muted.Render(fmt.Sprintf("Nothing added: every %s field is required.", what)))
}
