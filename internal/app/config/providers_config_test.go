package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadProvidersConfig(t *testing.T) {
	os.Setenv("TEST_A2R_KEY", "sk-from-env")
	defer os.Unsetenv("TEST_A2R_KEY")

	configYAML := `
default_transcriber: whisper_cpp
transcribers:
  whisper_cpp:
    type: whisper_cpp
    enabled: true
    settings:
      binary_path: /usr/local/bin/whisper
      model_path: /models/ggml-large-v2.bin
  openai:
    type: openai
    enabled: false
    auth:
      api_key: ${TEST_A2R_KEY}
detectors:
  openai:
    type: openai
    enabled: true
    auth:
      api_key: ${TEST_A2R_KEY}
`
	configPath := filepath.Join(t.TempDir(), "providers.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte(configYAML), 0644))

	config, err := LoadProvidersConfig(configPath)
	require.NoError(t, err)

	assert.Equal(t, "whisper_cpp", config.DefaultTranscriber)
	assert.Equal(t, "openai", config.DefaultDetector, "default detector falls back to the enabled one")
	assert.Equal(t, "sk-from-env", config.Detectors["openai"].Auth["api_key"])
	assert.Equal(t, 300, config.Transcribers["whisper_cpp"].Performance.TimeoutSec)
	assert.Equal(t, 3, config.Transcribers["whisper_cpp"].Retry.MaxAttempts)
}

func TestLoadProvidersConfig_MissingFile(t *testing.T) {
	_, err := LoadProvidersConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "config file not found")
}

func TestProvidersConfig_Validate(t *testing.T) {
	tests := []struct {
		name          string
		config        *ProvidersConfig
		errorContains string
	}{
		{
			name:          "no enabled transcriber",
			config:        &ProvidersConfig{Transcribers: map[string]ProviderConfig{"openai": {Type: "openai"}}},
			errorContains: "at least one transcriber must be enabled",
		},
		{
			name: "unknown default transcriber",
			config: &ProvidersConfig{
				DefaultTranscriber: "missing",
				Transcribers:       map[string]ProviderConfig{"openai": {Type: "openai", Enabled: true}},
			},
			errorContains: "does not exist",
		},
		{
			name: "invalid transcriber type",
			config: &ProvidersConfig{
				Transcribers: map[string]ProviderConfig{"bogus": {Type: "carrier_pigeon", Enabled: true}},
			},
			errorContains: "invalid transcriber type",
		},
		{
			name: "invalid detector type",
			config: &ProvidersConfig{
				Transcribers: map[string]ProviderConfig{"openai": {Type: "openai", Enabled: true}},
				Detectors:    map[string]ProviderConfig{"bogus": {Type: "regex", Enabled: true}},
			},
			errorContains: "invalid detector type",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errorContains)
		})
	}
}

func TestSaveAndReloadDefaultConfig(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "nested", "providers.yaml")

	require.NoError(t, SaveProvidersConfig(CreateDefaultConfig(), configPath))

	config, err := LoadProvidersConfig(configPath)
	require.NoError(t, err)
	assert.Equal(t, "whisper_cpp", config.DefaultTranscriber)
	assert.Equal(t, "openai", config.DefaultDetector)
	assert.True(t, config.Transcribers["whisper_cpp"].Enabled)
	assert.False(t, config.Transcribers["elevenlabs"].Enabled)
}
