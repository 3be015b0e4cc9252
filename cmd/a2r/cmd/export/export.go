package export

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"audio-redact/internal/app/processor/export"
	"audio-redact/internal/app/repository/sqlite"
	"audio-redact/internal/app/util/files"
)

var outputFilePath string
var limit int

func init() {
	Cmd.Flags().StringVarP(&outputFilePath, "outputFilePath", "o", "", "set outputFilePath")
	Cmd.Flags().IntVarP(&limit, "limit", "l", 1000, "maximum number of records to export, newest first")

	Cmd.MarkFlagRequired("outputFilePath")
}

// Cmd represents the export command
var Cmd = &cobra.Command{
	Use:   "export",
	Short: "Export redaction records to excel",
	Long: `Export redaction records to excel

- Export the most recent redaction jobs, including matched ranges and errors`,
	Run: func(cmd *cobra.Command, args []string) {
		dbPath := os.Getenv("A2R_DB_PATH")
		if dbPath == "" {
			projectRoot, err := files.GetProjectRoot()
			if err != nil {
				log.Fatalf("Failed to get project root: %v\n", err)
			}
			dbPath = filepath.Join(projectRoot, "data/redaction.db")
		}
		db := sqlite.NewSQLiteDB(dbPath)
		defer db.Close()

		jobs, err := db.GetRecent(limit)
		if err != nil {
			log.Fatal(err)
		}

		export.ToExcel(jobs, outputFilePath)
		fmt.Printf("export finished, exported file path: %v\n", outputFilePath)
	},
}
