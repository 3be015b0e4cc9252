package main

import (
	"fmt"
	"os"

	"audio-redact/cmd/a2r/cmd"
	"audio-redact/internal/config"
)

func main() {
	// Initialize configuration (non-blocking - only warns about missing keys)
	apiKeys, err := config.InitializeConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "⚠️  Configuration Warning: %v\n", err)
		fmt.Fprintf(os.Stderr, "💡 To enable remote transcription and detection, copy .env.example to .env and add your API keys\n")
		// Continue execution - don't exit
	} else {
		// Store API keys globally for the application
		// This allows other parts of the application to access them
		if apiKeys.OpenAI != "" {
			os.Setenv("OPENAI_API_KEY", apiKeys.OpenAI)
		}
		if apiKeys.Gemini != "" {
			os.Setenv("GEMINI_API_KEY", apiKeys.Gemini)
		}
		if apiKeys.ElevenLabs != "" {
			os.Setenv("ELEVENLABS_API_KEY", apiKeys.ElevenLabs)
		}
	}

	// Execute the CLI command
	cmd.Execute()
}
