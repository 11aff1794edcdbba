package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

var _ BookmarkRepository = (*bookmarkRepo)(nil)

type bookmarkRepo struct {
	db *sql.DB
}

func (r *bookmarkRepo) Get(ctx context.Context) (Bookmark, bool, error) {
	const query = `SELECT surah, verse, updated_at FROM bookmarks WHERE id = 1`

	var (
		b    Bookmark
		unix int64
	)
	err := r.db.QueryRowContext(ctx, query).Scan(&b.Surah, &b.Verse, &unix)
	if errors.Is(err, sql.ErrNoRows) {
		return Bookmark{}, false, nil
	}
	if err != nil {
		return Bookmark{}, false, fmt.Errorf("failed to query bookmark: %w", err)
	}

	b.UpdatedAt = time.Unix(unix, 0)
	return b, true, nil
}

func (r *bookmarkRepo) Set(ctx context.Context, surah, verse int) error {
	const query = `
		INSERT INTO bookmarks (id, surah, verse, updated_at)
		VALUES (1, ?, ?, ?)
		ON CONFLICT (id) DO UPDATE SET
			surah = excluded.surah,
			verse = excluded.verse,
			updated_at = excluded.updated_at`

	if _, err := r.db.ExecContext(ctx, query, surah, verse, time.Now().Unix()); err != nil {
		return fmt.Errorf("failed to set bookmark: %w", err)
	}
	return nil
}
