package pg

import (
	"database/sql"
	"fmt"
	"log"
	"time"

	_ "github.com/lib/pq"

	"audio-redact/internal/app/model"
)

type PostgresDB struct {
	db *sql.DB
}

func NewPostgresDB(connectionString string) (*PostgresDB, error) {
	db, err := sql.Open("postgres", connectionString)
	if err != nil {
		return nil, err
	}
	return &PostgresDB{db: db}, nil
}

func (pdb *PostgresDB) Close() error {
	return pdb.db.Close()
}

func (pdb *PostgresDB) CheckIfFileProcessed(fileName string) (int, error) {
	query := `SELECT id FROM redactions WHERE file_name = $1 AND has_error = 0`
	row := pdb.db.QueryRow(query, fileName)
	var id int
	err := row.Scan(&id)
	return id, err
}

func (pdb *PostgresDB) RecordToDB(fileName, outputFileName string, audioDuration float64, phraseCount, matchedCount int,
	redactedSeconds float64, rangesJSON string, createdAt time.Time, hasError int, errorMessage string) {
	insertSQL := `INSERT INTO redactions (file_name, output_file_name, audio_duration, phrase_count, matched_count, redacted_seconds, ranges_json, created_at, has_error, error_message) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);`
	_, err := pdb.db.Exec(insertSQL, fileName, outputFileName, audioDuration, phraseCount, matchedCount,
		redactedSeconds, rangesJSON, createdAt, hasError, errorMessage)
	if err != nil {
		log.Fatalf("Failed to insert data into database: %v\n", err)
	}
}

func (pdb *PostgresDB) GetByID(id int) (*model.RedactionJob, error) {
	query := `
		SELECT id, file_name, output_file_name, audio_duration, phrase_count, matched_count, redacted_seconds, ranges_json, created_at, has_error, error_message
		FROM redactions
		WHERE id = $1`
	var j model.RedactionJob
	err := pdb.db.QueryRow(query, id).Scan(&j.ID, &j.FileName, &j.OutputFileName, &j.AudioDuration,
		&j.PhraseCount, &j.MatchedCount, &j.RedactedSeconds, &j.RangesJSON, &j.CreatedAt, &j.HasError, &j.ErrorMessage)
	if err != nil {
		return nil, err
	}
	return &j, nil
}

func (pdb *PostgresDB) DeleteByID(id int) error {
	res, err := pdb.db.Exec(`DELETE FROM redactions WHERE id = $1`, id)
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

func (pdb *PostgresDB) GetRecent(limit int) ([]model.RedactionJob, error) {
	query := `
		SELECT id, file_name, output_file_name, audio_duration, phrase_count, matched_count, redacted_seconds, ranges_json, created_at, has_error, error_message
		FROM redactions
		ORDER BY created_at DESC
		LIMIT $1`

	rows, err := pdb.db.Query(query, limit)
	if err != nil {
		return nil, fmt.Errorf("query failed: %w", err)
	}
	defer rows.Close()

	var jobs []model.RedactionJob

	for rows.Next() {
		var j model.RedactionJob
		err = rows.Scan(&j.ID, &j.FileName, &j.OutputFileName, &j.AudioDuration, &j.PhraseCount, &j.MatchedCount,
			&j.RedactedSeconds, &j.RangesJSON, &j.CreatedAt, &j.HasError, &j.ErrorMessage)
		if err != nil {
			return nil, fmt.Errorf("db scan failed: %w", err)
		}

		jobs = append(jobs, j)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration failed: %w", err)
	}

	return jobs, nil
}
