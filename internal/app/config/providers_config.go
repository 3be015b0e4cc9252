package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// ProvidersConfig represents the overall configuration for all providers
type ProvidersConfig struct {
	DefaultTranscriber string                    `yaml:"default_transcriber"`
	DefaultDetector    string                    `yaml:"default_detector"`
	Transcribers       map[string]ProviderConfig `yaml:"transcribers"`
	Detectors          map[string]ProviderConfig `yaml:"detectors"`
}

// ProviderConfig represents configuration for a single provider
type ProviderConfig struct {
	Type        string                 `yaml:"type"`
	Enabled     bool                   `yaml:"enabled"`
	Auth        map[string]interface{} `yaml:"auth,omitempty"`
	Settings    map[string]interface{} `yaml:"settings,omitempty"`
	Performance PerformanceConfig      `yaml:"performance,omitempty"`
	Retry       RetryConfig            `yaml:"retry,omitempty"`
}

// PerformanceConfig represents performance settings for a provider
type PerformanceConfig struct {
	TimeoutSec     int `yaml:"timeout_sec,omitempty"`
	MaxConcurrency int `yaml:"max_concurrency,omitempty"`
	RateLimitRPM   int `yaml:"rate_limit_rpm,omitempty"`
}

// RetryConfig represents retry settings for a provider
type RetryConfig struct {
	MaxAttempts int `yaml:"max_attempts,omitempty"`
	BackoffSec  int `yaml:"backoff_sec,omitempty"`
}

// LoadProvidersConfig loads provider configuration from a YAML file
func LoadProvidersConfig(configPath string) (*ProvidersConfig, error) {
	configPath = os.ExpandEnv(configPath)

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file not found: %s", configPath)
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config ProvidersConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	config.expandEnvironmentVariables()
	config.setDefaults()

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// SaveProvidersConfig saves provider configuration to a YAML file
func SaveProvidersConfig(config *ProvidersConfig, configPath string) error {
	configPath = os.ExpandEnv(configPath)

	dir := filepath.Dir(configPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config to YAML: %w", err)
	}

	if err := os.WriteFile(configPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// expandEnvironmentVariables resolves ${VAR} placeholders in auth and
// settings values so keys never have to live in the YAML file itself.
func (c *ProvidersConfig) expandEnvironmentVariables() {
	for _, group := range []map[string]ProviderConfig{c.Transcribers, c.Detectors} {
		for _, provider := range group {
			expandEnvInMap(provider.Auth)
			expandEnvInMap(provider.Settings)
		}
	}
}

func expandEnvInMap(m map[string]interface{}) {
	for key, value := range m {
		if strValue, ok := value.(string); ok {
			if strings.HasPrefix(strValue, "${") && strings.HasSuffix(strValue, "}") {
				envVar := strings.TrimSuffix(strings.TrimPrefix(strValue, "${"), "}")
				m[key] = os.Getenv(envVar)
			}
		}
	}
}

// setDefaults sets default values for the configuration
func (c *ProvidersConfig) setDefaults() {
	if c.DefaultTranscriber == "" && len(c.Transcribers) > 0 {
		// Prefer the local whisper.cpp transcriber when present
		if _, ok := c.Transcribers["whisper_cpp"]; ok {
			c.DefaultTranscriber = "whisper_cpp"
		} else {
			for name, provider := range c.Transcribers {
				if provider.Enabled {
					c.DefaultTranscriber = name
					break
				}
			}
		}
	}

	if c.DefaultDetector == "" && len(c.Detectors) > 0 {
		for name, provider := range c.Detectors {
			if provider.Enabled {
				c.DefaultDetector = name
				break
			}
		}
	}

	for _, group := range []map[string]ProviderConfig{c.Transcribers, c.Detectors} {
		for name, provider := range group {
			if provider.Performance.TimeoutSec == 0 {
				provider.Performance.TimeoutSec = 300 // 5 minutes default
			}
			if provider.Performance.MaxConcurrency == 0 {
				provider.Performance.MaxConcurrency = 1
			}
			if provider.Retry.MaxAttempts == 0 {
				provider.Retry.MaxAttempts = 3
			}
			if provider.Retry.BackoffSec == 0 {
				provider.Retry.BackoffSec = 2
			}
			group[name] = provider
		}
	}
}

// Validate validates the configuration
func (c *ProvidersConfig) Validate() error {
	hasEnabledTranscriber := false
	for _, provider := range c.Transcribers {
		if provider.Enabled {
			hasEnabledTranscriber = true
			break
		}
	}
	if !hasEnabledTranscriber {
		return fmt.Errorf("at least one transcriber must be enabled")
	}

	if c.DefaultTranscriber != "" {
		provider, exists := c.Transcribers[c.DefaultTranscriber]
		if !exists {
			return fmt.Errorf("default transcriber '%s' does not exist", c.DefaultTranscriber)
		}
		if !provider.Enabled {
			return fmt.Errorf("default transcriber '%s' is not enabled", c.DefaultTranscriber)
		}
	}

	if c.DefaultDetector != "" {
		provider, exists := c.Detectors[c.DefaultDetector]
		if !exists {
			return fmt.Errorf("default detector '%s' does not exist", c.DefaultDetector)
		}
		if !provider.Enabled {
			return fmt.Errorf("default detector '%s' is not enabled", c.DefaultDetector)
		}
	}

	validTranscriberTypes := map[string]bool{
		"whisper_cpp": true,
		"openai":      true,
		"elevenlabs":  true,
	}
	for name, provider := range c.Transcribers {
		if !validTranscriberTypes[provider.Type] {
			return fmt.Errorf("invalid transcriber type '%s' for provider '%s'", provider.Type, name)
		}
	}

	validDetectorTypes := map[string]bool{
		"openai": true,
		"gemini": true,
	}
	for name, provider := range c.Detectors {
		if !validDetectorTypes[provider.Type] {
			return fmt.Errorf("invalid detector type '%s' for provider '%s'", provider.Type, name)
		}
	}

	return nil
}

// GetDefaultConfigPath returns the default configuration file path
func GetDefaultConfigPath() string {
	if path := os.Getenv("PROVIDERS_CONFIG_PATH"); path != "" {
		return path
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "providers.yaml"
	}

	return filepath.Join(home, ".audio-redact", "providers.yaml")
}

// CreateDefaultConfig creates a default configuration
func CreateDefaultConfig() *ProvidersConfig {
	return &ProvidersConfig{
		DefaultTranscriber: "whisper_cpp",
		DefaultDetector:    "openai",
		Transcribers: map[string]ProviderConfig{
			"whisper_cpp": {
				Type:    "whisper_cpp",
				Enabled: true,
				Settings: map[string]interface{}{
					"binary_path": "/usr/local/bin/whisper",
					"model_path":  "/models/ggml-large-v2.bin",
					"language":    "auto",
				},
				Performance: PerformanceConfig{
					TimeoutSec:     300,
					MaxConcurrency: 2,
				},
			},
			"openai": {
				Type:    "openai",
				Enabled: false,
				Auth: map[string]interface{}{
					"api_key": "${OPENAI_API_KEY}",
				},
				Settings: map[string]interface{}{
					"model": "whisper-1",
				},
				Performance: PerformanceConfig{
					TimeoutSec:   60,
					RateLimitRPM: 50,
				},
			},
			"elevenlabs": {
				Type:    "elevenlabs",
				Enabled: false,
				Auth: map[string]interface{}{
					"api_key": "${ELEVENLABS_API_KEY}",
				},
				Settings: map[string]interface{}{
					"model": "scribe_v1",
				},
			},
		},
		Detectors: map[string]ProviderConfig{
			"openai": {
				Type:    "openai",
				Enabled: true,
				Auth: map[string]interface{}{
					"api_key": "${OPENAI_API_KEY}",
				},
				Settings: map[string]interface{}{
					"model": "gpt-4o-mini",
				},
			},
			"gemini": {
				Type:    "gemini",
				Enabled: false,
				Auth: map[string]interface{}{
					"api_key": "${GEMINI_API_KEY}",
				},
				Settings: map[string]interface{}{
					"model": "gemini-2.0-flash",
				},
			},
		},
	}
}
