// Package db opens the local sqlite database and applies the schema.
package db

import (
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

const schema = `
CREATE TABLE IF NOT EXISTS timetables (
	cache_key  TEXT NOT NULL,
	date       TEXT NOT NULL,
	hijri      TEXT NOT NULL DEFAULT '',
	fajr       INTEGER NOT NULL,
	sunrise    INTEGER NOT NULL,
	dhuhr      INTEGER NOT NULL,
	asr        INTEGER NOT NULL,
	maghrib    INTEGER NOT NULL,
	isha       INTEGER NOT NULL,
	created_at INTEGER NOT NULL,
	PRIMARY KEY (cache_key, date)
);

CREATE TABLE IF NOT EXISTS bookmarks (
	id         INTEGER PRIMARY KEY CHECK (id = 1),
	surah      INTEGER NOT NULL,
	verse      INTEGER NOT NULL,
	updated_at INTEGER NOT NULL
);
`

// Open opens (creating if needed) the sqlite database at path and ensures
// the schema exists.
func Open(path string) (*sql.DB, error) {
	sqlDB, err := sql.Open("sqlite3", path+"?_busy_timeout=5000&_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	if _, err := sqlDB.Exec(schema); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("failed to apply schema: %w", err)
	}

	return sqlDB, nil
}
