package config

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	appconfig "audio-redact/internal/app/config"
)

// Cmd represents the config command
var Cmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the providers configuration file",
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default providers.yaml",
	Long: `Write a default providers.yaml

- whisper_cpp as default transcriber, openai chat as default detector
- API keys referenced as ${VAR} placeholders, resolved from the environment`,
	Run: func(cmd *cobra.Command, args []string) {
		configPath := appconfig.GetDefaultConfigPath()
		if _, err := os.Stat(configPath); err == nil {
			log.Fatalf("config file already exists: %s", configPath)
		}

		if err := appconfig.SaveProvidersConfig(appconfig.CreateDefaultConfig(), configPath); err != nil {
			log.Fatalf("Failed to write config: %v", err)
		}
		fmt.Printf("wrote default providers config to %s\n", configPath)
	},
}

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the resolved providers configuration",
	Run: func(cmd *cobra.Command, args []string) {
		configPath := appconfig.GetDefaultConfigPath()
		cfg, err := appconfig.LoadProvidersConfig(configPath)
		if err != nil {
			log.Fatalf("Failed to load config from %s: %v", configPath, err)
		}

		fmt.Printf("config file: %s\n", configPath)
		fmt.Printf("default transcriber: %s\n", cfg.DefaultTranscriber)
		fmt.Printf("default detector: %s\n", cfg.DefaultDetector)
		for name, p := range cfg.Transcribers {
			fmt.Printf("transcriber %s: type=%s enabled=%t\n", name, p.Type, p.Enabled)
		}
		for name, p := range cfg.Detectors {
			fmt.Printf("detector %s: type=%s enabled=%t\n", name, p.Type, p.Enabled)
		}
	},
}

func init() {
	Cmd.AddCommand(initCmd)
	Cmd.AddCommand(showCmd)
}
