package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server   ServerConfig
	Log      LogConfig
	Services ServicesConfig
	Timeouts TimeoutConfig
	Upload   UploadConfig
}

type ServerConfig struct {
	Port         string
	Env          string
	AllowOrigins string
}

type LogConfig struct {
	JSON  bool
	Debug bool
}

// ServicesConfig holds the raw downstream locations as configured. An empty
// value means the location was not configured.
type ServicesConfig struct {
	ExtractionURL     string
	RecommendationURL string
	PlacementURL      string
}

type TimeoutConfig struct {
	Extraction     time.Duration
	Recommendation time.Duration
	Placement      time.Duration
	Health         time.Duration
}

type UploadConfig struct {
	ConvertPDF bool
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found. Using environment and default values.")
	}

	return FromEnv()
}

// FromEnv builds the configuration from the process environment only.
func FromEnv() *Config {
	return &Config{
		Server: ServerConfig{
			Port:         getEnv("PORT", "5000"),
			Env:          getEnv("ENV", "development"),
			AllowOrigins: getEnv("CORS_ALLOW_ORIGINS", "*"),
		},
		Log: LogConfig{
			JSON:  getEnvAsBool("LOG_JSON", false),
			Debug: getEnvAsBool("LOG_DEBUG", false),
		},
		Services: ServicesConfig{
			ExtractionURL:     getEnv("NLP_SERVICE_URL", ""),
			RecommendationURL: getEnv("CF_SERVICE_URL", ""),
			PlacementURL:      getEnv("PLACEMENT_SERVICE_URL", ""),
		},
		Timeouts: TimeoutConfig{
			Extraction:     getEnvAsDuration("EXTRACTION_TIMEOUT", "30s"),
			Recommendation: getEnvAsDuration("RECOMMENDATION_TIMEOUT", "5s"),
			Placement:      getEnvAsDuration("PLACEMENT_TIMEOUT", "5s"),
			Health:         getEnvAsDuration("HEALTH_TIMEOUT", "2s"),
		},
		Upload: UploadConfig{
			ConvertPDF: getEnvAsBool("CONVERT_PDF_UPLOADS", false),
		},
	}
}

func (c *Config) IsDevelopment() bool {
	return c.Server.Env == "development"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseBool(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue string) time.Duration {
	valueStr := getEnv(key, defaultValue)
	if duration, err := time.ParseDuration(valueStr); err == nil && duration > 0 {
		return duration
	}
	duration, _ := time.ParseDuration(defaultValue)
	return duration
}
