package app

import (
	"context"
	"log"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"audio-redact/internal/app/api"
	"audio-redact/internal/app/api/cache"
	"audio-redact/internal/app/api/elevenlabs"
	"audio-redact/internal/app/api/gemini"
	openaiclient "audio-redact/internal/app/api/openai"
	"audio-redact/internal/app/api/openai/chat"
	"audio-redact/internal/app/api/openai/whisper"
	"audio-redact/internal/app/api/whisper_cpp"
	appconfig "audio-redact/internal/app/config"
	"audio-redact/internal/app/redaction"
	"audio-redact/internal/app/repository"
	"audio-redact/internal/app/repository/sqlite"
	"audio-redact/internal/app/util/files"
)

var (
	providersFile     *appconfig.ProvidersConfig
	providersFileOnce sync.Once
)

// providersConfig loads the optional providers YAML once. A missing file is
// fine; env vars alone fully configure the defaults.
func providersConfig() *appconfig.ProvidersConfig {
	providersFileOnce.Do(func() {
		cfg, err := appconfig.LoadProvidersConfig(appconfig.GetDefaultConfigPath())
		if err != nil {
			return
		}
		providersFile = cfg
	})
	return providersFile
}

func transcriberSetting(name, key string) string {
	cfg := providersConfig()
	if cfg == nil {
		return ""
	}
	return settingString(cfg.Transcribers[name], key)
}

func detectorSetting(name, key string) string {
	cfg := providersConfig()
	if cfg == nil {
		return ""
	}
	return settingString(cfg.Detectors[name], key)
}

func settingString(p appconfig.ProviderConfig, key string) string {
	if v, ok := p.Settings[key].(string); ok {
		return v
	}
	return ""
}

// provideTranscriber selects the speech-to-text backend: A2R_TRANSCRIBER wins,
// then the providers file's default, then "openai".
func provideTranscriber() api.Transcriber {
	selected := os.Getenv("A2R_TRANSCRIBER")
	if selected == "" {
		if cfg := providersConfig(); cfg != nil {
			selected = cfg.DefaultTranscriber
		}
	}

	switch selected {
	case "whisper_cpp":
		return provideLocalTranscriber()
	case "elevenlabs":
		return elevenlabs.NewSTTProvider(elevenlabs.Config{
			APIKey: os.Getenv("ELEVENLABS_API_KEY"),
			Model:  transcriberSetting("elevenlabs", "model"),
		})
	default:
		return whisper.NewRemoteTranscriber(openaiclient.GetClient())
	}
}

// provideLocalTranscriber with native whisper.cpp conversion, you need to compile whisper.cpp/main executable by yourself
func provideLocalTranscriber() api.Transcriber {
	binaryPath := os.Getenv("WHISPER_CPP_BINARY")
	if binaryPath == "" {
		binaryPath = transcriberSetting("whisper_cpp", "binary_path")
	}
	if binaryPath == "" {
		log.Fatal("WHISPER_CPP_BINARY environment variable must be set")
	}

	modelPath := os.Getenv("WHISPER_CPP_MODEL")
	if modelPath == "" {
		modelPath = transcriberSetting("whisper_cpp", "model_path")
	}
	if modelPath == "" {
		log.Fatal("WHISPER_CPP_MODEL environment variable must be set")
	}

	language := os.Getenv("WHISPER_CPP_LANGUAGE")
	if language == "" {
		language = transcriberSetting("whisper_cpp", "language")
	}

	return whisper_cpp.NewLocalTranscriber(binaryPath, modelPath, language)
}

// provideDetector selects the sensitive-phrase detector: A2R_DETECTOR wins,
// then the providers file's default, then "openai". When REDIS_ADDR is set
// the detector is wrapped with a Redis cache so repeated transcripts skip
// the model call.
func provideDetector() api.Detector {
	selected := os.Getenv("A2R_DETECTOR")
	if selected == "" {
		if cfg := providersConfig(); cfg != nil {
			selected = cfg.DefaultDetector
		}
	}

	var detector api.Detector
	switch selected {
	case "gemini":
		model := os.Getenv("GEMINI_DETECTOR_MODEL")
		if model == "" {
			model = detectorSetting("gemini", "model")
		}
		geminiDetector, err := gemini.NewDetector(context.Background(), model)
		if err != nil {
			log.Fatalf("Failed to initialize Gemini detector: %v\n", err)
		}
		detector = geminiDetector
	default:
		model := os.Getenv("OPENAI_DETECTOR_MODEL")
		if model == "" {
			model = detectorSetting("openai", "model")
		}
		detector = chat.NewSensitiveDetector(openaiclient.GetClient(), model)
	}

	if addr := os.Getenv("REDIS_ADDR"); addr != "" {
		rdb := redis.NewClient(&redis.Options{
			Addr:     addr,
			Password: os.Getenv("REDIS_PASSWORD"),
		})
		detector = cache.NewDetectorCache(detector, rdb, 24*time.Hour)
	}
	return detector
}

func provideEngine() *redaction.Engine {
	logger, err := zap.NewProduction()
	if err != nil {
		logger = zap.NewNop()
	}
	return redaction.NewEngine(redaction.DefaultConfig(), logger)
}

func provideRedactionDAO() repository.RedactionDAO {
	dbPath := os.Getenv("A2R_DB_PATH")
	if dbPath == "" {
		projectRoot, err := files.GetProjectRoot()
		if err != nil {
			log.Fatalf("Failed to get project root: %v\n", err)
		}
		dbPath = filepath.Join(projectRoot, "data/redaction.db")
	}
	files.CheckAndCreateDirectory(filepath.Dir(dbPath))
	return sqlite.NewSQLiteDB(dbPath)
}
