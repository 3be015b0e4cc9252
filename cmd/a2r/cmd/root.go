package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"audio-redact/cmd/a2r/cmd/config"
	"audio-redact/cmd/a2r/cmd/export"
	"audio-redact/cmd/a2r/cmd/migrate"
	"audio-redact/cmd/a2r/cmd/redact"
	"audio-redact/cmd/a2r/cmd/serve"
	"audio-redact/cmd/a2r/cmd/version"
	"audio-redact/cmd/a2r/cmd/worker"
)

var Verbose bool

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "a2r",
	Short: "An application for redacting sensitive phrases from audio recordings",
	Long: `An application for redacting sensitive phrases from audio recordings.
- Transcribe call recordings with word-level timestamps
- Detect sensitive phrases with a chat model, or pass them explicitly
- Overwrite the matched time ranges with silence or a tone
- The processed records will be saved to sqlite.`,
	TraverseChildren: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(config.Cmd)
	rootCmd.AddCommand(redact.Cmd)
	rootCmd.AddCommand(export.Cmd)
	rootCmd.AddCommand(migrate.Cmd)
	rootCmd.AddCommand(serve.Cmd)
	rootCmd.AddCommand(worker.Cmd)
	rootCmd.AddCommand(version.Cmd)

	rootCmd.PersistentFlags().BoolVarP(&Verbose, "verbose", "V", false, "verbose output")
}
