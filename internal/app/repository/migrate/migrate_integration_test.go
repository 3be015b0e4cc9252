//go:build integration
// +build integration

package migrate

import (
	"os"
	"testing"
)

func TestMigrateToPostgres_Integration(t *testing.T) {
	// Skip if required environment variables are not set
	if os.Getenv("PG_CONNECTION_STRING") == "" {
		t.Skip("PG_CONNECTION_STRING not set, skipping integration tests")
	}

	// Start from a clean checkpoint so the run is deterministic
	os.Remove("last_id.txt")
	defer os.Remove("last_id.txt")

	MigrateToPostgres()

	if _, err := os.Stat("last_id.txt"); err != nil {
		t.Fatalf("expected checkpoint file after migration: %v", err)
	}
}

func TestLastIDCheckpoint(t *testing.T) {
	os.Remove("last_id.txt")
	defer os.Remove("last_id.txt")

	if got := getLastID(); got != 0 {
		t.Fatalf("expected 0 without checkpoint, got %d", got)
	}

	if err := saveLastID(42); err != nil {
		t.Fatalf("saveLastID failed: %v", err)
	}

	if got := getLastID(); got != 42 {
		t.Fatalf("expected 42, got %d", got)
	}
}
