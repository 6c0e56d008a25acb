package config

import (
	"fmt"
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config holds application configuration
type Config struct {
	Server   ServerConfig
	Gemini   GeminiConfig
	Assembly AssemblyAIConfig
	Upload   UploadConfig
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Port            string        `envconfig:"PORT" default:"8080"`
	Host            string        `envconfig:"HOST" default:"0.0.0.0"`
	Environment     string        `envconfig:"ENVIRONMENT" default:"development"`
	AllowedOrigins  []string      `envconfig:"ALLOWED_ORIGINS" default:"http://localhost:3000"`
	ShutdownTimeout time.Duration `envconfig:"SHUTDOWN_TIMEOUT" default:"10s"`
	AnalyzeTimeout  time.Duration `envconfig:"ANALYZE_TIMEOUT" default:"4m"`
	StaticDir       string        `envconfig:"STATIC_DIR" default:"web"`
}

// GeminiConfig holds the language model client configuration
type GeminiConfig struct {
	APIKey  string `envconfig:"GEMINI_API_KEY"`
	BaseURL string `envconfig:"GEMINI_API_URL" default:"https://generativelanguage.googleapis.com"`
}

// AssemblyAIConfig holds the transcription service configuration
type AssemblyAIConfig struct {
	APIKey        string        `envconfig:"ASSEMBLYAI_API_KEY"`
	PollInterval  time.Duration `envconfig:"ASSEMBLYAI_POLL_INTERVAL" default:"3s"`
	MaxConcurrent int           `envconfig:"ASSEMBLYAI_MAX_CONCURRENT_UPLOADS" default:"2"`
}

// UploadConfig bounds the file-mode input
type UploadConfig struct {
	MaxSizeBytes int64    `envconfig:"UPLOAD_MAX_SIZE_BYTES" default:"52428800"`
	Extensions   []string `envconfig:"UPLOAD_EXTENSIONS" default:".mp3,.wav,.m4a,.mp4,.mov,.webm"`
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if exists (ignore error if file doesn't exist)
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found, using environment variables or defaults")
	}

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process environment: %w", err)
	}

	// Missing API keys must not abort startup; requests fail at the first
	// external call instead.
	if cfg.Gemini.APIKey == "" {
		log.Printf("Warning: GEMINI_API_KEY is not set, analysis requests will fail")
	}
	if cfg.Assembly.APIKey == "" {
		log.Printf("Warning: ASSEMBLYAI_API_KEY is not set, file uploads will fail")
	}

	return &cfg, nil
}

// MaxBodySize returns the upload ceiling in echo's BodyLimit notation.
func (c *Config) MaxBodySize() string {
	return fmt.Sprintf("%dK", c.Upload.MaxSizeBytes/1024)
}

// AllowedExtension reports whether ext (including the dot) is on the upload
// allow-list.
func (c *Config) AllowedExtension(ext string) bool {
	for _, allowed := range c.Upload.Extensions {
		if ext == allowed {
			return true
		}
	}
	return false
}
