package sqlite

import (
	"database/sql"
	"fmt"
	"log"
	"path/filepath"
	"sync"

	_ "github.com/mattn/go-sqlite3"

	"audio-redact/internal/app/util/files"
)

const createTableSQL = `
CREATE TABLE IF NOT EXISTS redactions (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	file_name TEXT NOT NULL,
	output_file_name TEXT NOT NULL DEFAULT '',
	audio_duration REAL NOT NULL DEFAULT 0,
	phrase_count INTEGER NOT NULL DEFAULT 0,
	matched_count INTEGER NOT NULL DEFAULT 0,
	redacted_seconds REAL NOT NULL DEFAULT 0,
	ranges_json TEXT NOT NULL DEFAULT '[]',
	created_at TIMESTAMP NOT NULL,
	has_error INTEGER NOT NULL DEFAULT 0,
	error_message TEXT NOT NULL DEFAULT ''
);
CREATE INDEX IF NOT EXISTS idx_redactions_file_name ON redactions(file_name);
`

var (
	connection *sql.DB
	once       sync.Once
)

func GetConnection() (*sql.DB, error) {
	var err error
	once.Do(func() {
		projectRoot, rootErr := files.GetProjectRoot()
		if rootErr != nil {
			log.Fatalf("Failed to get project root: %v\n", rootErr)
		}

		dbPath := filepath.Join(projectRoot, "data/redaction.db")
		connection, err = sql.Open("sqlite3", fmt.Sprintf("file:%s?cache=shared&mode=rwc", dbPath))
	})

	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	return connection, nil
}
