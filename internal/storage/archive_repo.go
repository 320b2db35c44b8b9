package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

// MaxArchiveRunsPerKey bounds the archive_runs history kept for each key.
const MaxArchiveRunsPerKey = 50

type ArchiveRepo struct {
	db *sql.DB
}

func NewArchiveRepo(db *sql.DB) *ArchiveRepo {
	return &ArchiveRepo{db: db}
}

// Insert records an archive run and prunes history beyond MaxArchiveRunsPerKey.
func (r *ArchiveRepo) Insert(ctx context.Context, key string, ranAt time.Time, count int, exportPath string) (int64, error) {
	var path *string
	if exportPath != "" {
		path = &exportPath
	}

	var id int64
	err := WithTx(ctx, r.db, func(tx *sql.Tx) error {
		res, err := tx.ExecContext(ctx, `
			INSERT INTO archive_runs (key, ran_at, record_count, export_path)
			VALUES (?, ?, ?, ?)
		`, key, ranAt, count, path)
		if err != nil {
			return fmt.Errorf("archive run insert: %w", err)
		}
		id, err = res.LastInsertId()
		if err != nil {
			return fmt.Errorf("archive run last insert id: %w", err)
		}
		_, err = tx.ExecContext(ctx, `
			DELETE FROM archive_runs
			WHERE key = ? AND id NOT IN (
				SELECT id FROM archive_runs WHERE key = ? ORDER BY ran_at DESC, id DESC LIMIT ?
			)
		`, key, key, MaxArchiveRunsPerKey)
		if err != nil {
			return fmt.Errorf("archive run prune: %w", err)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return id, nil
}

func (r *ArchiveRepo) ListByKey(ctx context.Context, key string) ([]ArchiveRun, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, key, ran_at, record_count, export_path
		FROM archive_runs
		WHERE key = ?
		ORDER BY ran_at DESC, id DESC
	`, key)
	if err != nil {
		return nil, fmt.Errorf("archive run list: %w", err)
	}
	defer rows.Close()

	var out []ArchiveRun
	for rows.Next() {
		var (
			a    ArchiveRun
			path sql.NullString
		)
		if err := rows.Scan(&a.ID, &a.Key, &a.RanAt, &a.RecordCount, &path); err != nil {
			return nil, fmt.Errorf("archive run scan: %w", err)
		}
		if path.Valid {
			v := path.String
			a.ExportPath = &v
		}
		out = append(out, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("archive run rows: %w", err)
	}
	return out, nil
}
