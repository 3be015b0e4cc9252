package migrate

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"

	"audio-redact/internal/app/repository/pg"
	"audio-redact/internal/app/repository/sqlite"
)

func getLastID() int {
	data, err := os.ReadFile("last_id.txt")
	if err != nil {
		return 0
	}

	lastID, err := strconv.Atoi(strings.TrimSpace(string(data)))
	if err != nil {
		return 0
	}

	return lastID
}

func saveLastID(lastID int) error {
	return os.WriteFile("last_id.txt", []byte(strconv.Itoa(lastID)), 0644)
}

// MigrateToPostgres copies redaction records from the local sqlite store into
// postgres in batches of 1000, resuming from the last migrated id.
func MigrateToPostgres() {
	sqliteDB, err := sqlite.GetConnection()
	if err != nil {
		log.Fatal(err)
	}
	defer sqliteDB.Close()

	postgresDB, err := pg.GetConnection()
	if err != nil {
		log.Fatal(err)
	}
	defer postgresDB.Close()

	lastID := getLastID()

	rows, err := sqliteDB.Query(`SELECT id, file_name, output_file_name, audio_duration, phrase_count, matched_count, redacted_seconds, ranges_json, created_at, has_error, error_message FROM redactions WHERE id > ? ORDER BY id LIMIT 1000`, lastID)
	if err != nil {
		log.Fatal(err)
	}
	defer rows.Close()

	tx, err := postgresDB.Begin()
	if err != nil {
		log.Fatal(err)
	}

	stmt, err := tx.Prepare(`INSERT INTO redactions (id, file_name, output_file_name, audio_duration, phrase_count, matched_count, redacted_seconds, ranges_json, created_at, has_error, error_message) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`)
	if err != nil {
		log.Fatal(err)
	}

	for rows.Next() {
		var id, phraseCount, matchedCount, hasError int
		var audioDuration, redactedSeconds float64
		var fileName, outputFileName, rangesJSON, errorMessage string
		var createdAt string

		err = rows.Scan(&id, &fileName, &outputFileName, &audioDuration, &phraseCount, &matchedCount,
			&redactedSeconds, &rangesJSON, &createdAt, &hasError, &errorMessage)
		if err != nil {
			log.Printf("Failed to read row with ID %d: %v", id, err)
			continue
		}

		// Data validation
		if strings.TrimSpace(fileName) == "" {
			log.Printf("Validation failed for row with ID %d: file_name is empty", id)
			continue
		}

		_, err = stmt.Exec(id, fileName, outputFileName, audioDuration, phraseCount, matchedCount,
			redactedSeconds, rangesJSON, createdAt, hasError, errorMessage)
		if err != nil {
			log.Printf("Failed to insert row with ID %d: %v", id, err)
			continue
		}
		lastID = id
	}

	err = tx.Commit()
	if err != nil {
		log.Fatal(err)
	}

	err = saveLastID(lastID)
	if err != nil {
		log.Fatalf("Failed to save lastID: %v", err)
	}

	fmt.Println("Data migration completed.")
}
