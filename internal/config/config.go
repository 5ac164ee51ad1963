package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	AnalyzerVertex = "vertex"
	AnalyzerOpenAI = "openai"

	TTSGoogle     = "google"
	TTSElevenLabs = "elevenlabs"
)

type Config struct {
	Port string

	// Google Cloud
	Project         string
	Location        string
	CredentialsFile string
	GeminiModel     string

	AnalyzerProvider string
	TTSProvider      string

	OpenAIAPIKey      string
	ElevenLabsAPIKey  string
	ElevenLabsVoiceID string

	FFmpegCommand      string
	MaxUploadMB        int64
	RateLimitPerMinute int

	TelegramAlertToken  string
	TelegramAlertChatID int64
	AlertCooldown       time.Duration

	OTLPEndpoint  string
	OTLPInsecure  bool
	TracingStdout bool
}

// Load reads .env (if present) and the process environment, applying defaults.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		Port: getEnv("PORT", "8080"),

		Project:         getEnv("GOOGLE_CLOUD_PROJECT", "llmsproject"),
		Location:        getEnv("GOOGLE_CLOUD_LOCATION", "us-central1"),
		CredentialsFile: os.Getenv("GOOGLE_APPLICATION_CREDENTIALS"),
		GeminiModel:     getEnv("GEMINI_MODEL", "gemini-1.5-pro"),

		AnalyzerProvider: strings.ToLower(getEnv("ANALYZER_PROVIDER", AnalyzerVertex)),
		TTSProvider:      strings.ToLower(getEnv("TTS_PROVIDER", TTSGoogle)),

		OpenAIAPIKey:      os.Getenv("OPENAI_API_KEY"),
		ElevenLabsAPIKey:  os.Getenv("ELEVENLABS_API_KEY"),
		ElevenLabsVoiceID: getEnv("ELEVENLABS_VOICE_ID", "EXAVITQu4vr4xnSDxMaL"),

		FFmpegCommand:      getEnv("FFMPEG_COMMAND", "ffmpeg"),
		MaxUploadMB:        int64(getEnvInt("MAX_UPLOAD_MB", 32)),
		RateLimitPerMinute: getEnvInt("RATE_LIMIT_PER_MINUTE", 30),

		TelegramAlertToken:  os.Getenv("TELEGRAM_ALERT_TOKEN"),
		TelegramAlertChatID: getEnvInt64("TELEGRAM_ALERT_CHAT_ID", 0),
		AlertCooldown:       getEnvDuration("ALERT_COOLDOWN", time.Minute),

		OTLPEndpoint:  os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT"),
		OTLPInsecure:  getEnvBool("OTEL_EXPORTER_OTLP_INSECURE", true),
		TracingStdout: getEnvBool("TRACING_STDOUT", false),
	}
}

// Validate checks provider names and the keys each provider needs.
func (c *Config) Validate() error {
	switch c.AnalyzerProvider {
	case AnalyzerVertex:
		if c.Project == "" || c.Location == "" {
			return fmt.Errorf("vertex analyzer needs GOOGLE_CLOUD_PROJECT and GOOGLE_CLOUD_LOCATION")
		}
	case AnalyzerOpenAI:
		if c.OpenAIAPIKey == "" {
			return fmt.Errorf("OPENAI_API_KEY not set")
		}
	default:
		return fmt.Errorf("unknown ANALYZER_PROVIDER %q", c.AnalyzerProvider)
	}

	switch c.TTSProvider {
	case TTSGoogle:
	case TTSElevenLabs:
		if c.ElevenLabsAPIKey == "" {
			return fmt.Errorf("ELEVENLABS_API_KEY not set")
		}
	default:
		return fmt.Errorf("unknown TTS_PROVIDER %q", c.TTSProvider)
	}

	if c.MaxUploadMB <= 0 {
		return fmt.Errorf("MAX_UPLOAD_MB must be positive")
	}
	if c.TelegramAlertToken != "" && c.TelegramAlertChatID == 0 {
		return fmt.Errorf("TELEGRAM_ALERT_CHAT_ID required when TELEGRAM_ALERT_TOKEN is set")
	}
	return nil
}

func getEnv(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	v := getEnv(key, "")
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

func getEnvInt64(key string, def int64) int64 {
	v := getEnv(key, "")
	if v == "" {
		return def
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return def
	}
	return n
}

func getEnvBool(key string, def bool) bool {
	v := getEnv(key, "")
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return def
	}
	return b
}

func getEnvDuration(key string, def time.Duration) time.Duration {
	v := getEnv(key, "")
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return def
	}
	return d
}
