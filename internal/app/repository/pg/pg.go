package pg

import (
	"database/sql"
	"os"

	_ "github.com/lib/pq"
)

// GetConnection opens a connection using PG_CONNECTION_STRING, falling back
// to a local development database.
func GetConnection() (*sql.DB, error) {
	connectionString := os.Getenv("PG_CONNECTION_STRING")
	if connectionString == "" {
		connectionString = "user=postgres password=postgres dbname=redaction sslmode=disable"
	}
	return sql.Open("postgres", connectionString)
}
