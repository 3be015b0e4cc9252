package migrate

import (
	"github.com/spf13/cobra"

	"audio-redact/internal/app/repository/migrate"
)

// Cmd represents the migrate command
var Cmd = &cobra.Command{
	Use:   "migrate",
	Short: "Migrate redaction records from sqlite to postgres",
	Long: `Migrate redaction records from sqlite to postgres

- Copies records in batches of 1000
- Resumes from the last migrated id stored in last_id.txt`,
	Run: func(cmd *cobra.Command, args []string) {
		migrate.MigrateToPostgres()
	},
}
