package sqlite

import (
	"database/sql"
	"fmt"
	"log"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"audio-redact/internal/app/model"
)

type SQLiteDB struct {
	db *sql.DB
}

func NewSQLiteDB(dbFilePath string) *SQLiteDB {
	db, err := sql.Open("sqlite3", dbFilePath)
	if err != nil {
		log.Fatal(err)
	}
	if _, err := db.Exec(createTableSQL); err != nil {
		log.Fatalf("Failed to create redactions table: %v\n", err)
	}
	return &SQLiteDB{db: db}
}

func (sdb *SQLiteDB) Close() error {
	return sdb.db.Close()
}

func (sdb *SQLiteDB) CheckIfFileProcessed(fileName string) (int, error) {
	query := `SELECT id FROM redactions WHERE file_name = ? AND has_error = 0`
	row := sdb.db.QueryRow(query, fileName)
	var id int
	err := row.Scan(&id)
	return id, err
}

func (sdb *SQLiteDB) RecordToDB(fileName, outputFileName string, audioDuration float64, phraseCount, matchedCount int,
	redactedSeconds float64, rangesJSON string, createdAt time.Time, hasError int, errorMessage string) {
	insertSQL := `INSERT INTO redactions (file_name, output_file_name, audio_duration, phrase_count, matched_count, redacted_seconds, ranges_json, created_at, has_error, error_message) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?);`
	_, err := sdb.db.Exec(insertSQL, fileName, outputFileName, audioDuration, phraseCount, matchedCount,
		redactedSeconds, rangesJSON, createdAt, hasError, errorMessage)
	if err != nil {
		log.Fatalf("Failed to insert data into database: %v\n", err)
	}
}

func (sdb *SQLiteDB) GetByID(id int) (*model.RedactionJob, error) {
	query := `
		SELECT id, file_name, output_file_name, audio_duration, phrase_count, matched_count, redacted_seconds, ranges_json, created_at, has_error, error_message
		FROM redactions
		WHERE id = ?;`
	var j model.RedactionJob
	err := sdb.db.QueryRow(query, id).Scan(&j.ID, &j.FileName, &j.OutputFileName, &j.AudioDuration,
		&j.PhraseCount, &j.MatchedCount, &j.RedactedSeconds, &j.RangesJSON, &j.CreatedAt, &j.HasError, &j.ErrorMessage)
	if err != nil {
		return nil, err
	}
	return &j, nil
}

func (sdb *SQLiteDB) DeleteByID(id int) error {
	res, err := sdb.db.Exec(`DELETE FROM redactions WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete failed: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func (sdb *SQLiteDB) GetRecent(limit int) ([]model.RedactionJob, error) {
	sqlStr := `
		SELECT id, file_name, output_file_name, audio_duration, phrase_count, matched_count, redacted_seconds, ranges_json, created_at, has_error, error_message
		FROM redactions
		ORDER BY created_at DESC
		LIMIT ?;`
	rows, err := sdb.db.Query(sqlStr, limit)
	if err != nil {
		return nil, fmt.Errorf("query failed: %w", err)
	}
	defer rows.Close()

	jobs := make([]model.RedactionJob, 0)

	for rows.Next() {
		var j model.RedactionJob
		err = rows.Scan(&j.ID, &j.FileName, &j.OutputFileName, &j.AudioDuration, &j.PhraseCount, &j.MatchedCount,
			&j.RedactedSeconds, &j.RangesJSON, &j.CreatedAt, &j.HasError, &j.ErrorMessage)
		if err != nil {
			return nil, fmt.Errorf("db scan failed: %w", err)
		}

		jobs = append(jobs, j)
	}
	return jobs, rows.Err()
}
