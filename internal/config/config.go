package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type GeneralConfig struct {
	Env      string
	LogLevel string
	Port     int
}

// RemoteConfig holds the connection settings for the hosted campaign
// backend. AnonKey is the public key sent as a bearer token on every
// request.
type RemoteConfig struct {
	BaseURL string
	AnonKey string
	Timeout time.Duration
}

// ServiceConfig holds behavior knobs for the campaign service itself.
type ServiceConfig struct {
	// SeedFallback controls whether a failed or empty initial load
	// falls back to the built-in seed campaigns instead of erroring.
	SeedFallback bool
	// DefaultImageURL is used for campaigns created without an image.
	DefaultImageURL string
}

type appConfig struct {
	GeneralConfig GeneralConfig
	RemoteConfig  RemoteConfig
	ServiceConfig ServiceConfig
}

// LoadConfigs loads the configurations from the environment variables
func LoadConfigs() {
	err := godotenv.Load()
	if err != nil {
		log.Printf("Warning: Error loading .env files: %v", err)
	}

	loadGeneralConfigs()
	loadRemoteConfigs()
	loadServiceConfigs()
}

var AppConfigInstance appConfig

// loadGeneralConfigs loads the general configurations from the environment variables
func loadGeneralConfigs() {
	AppConfigInstance.GeneralConfig.Env = getEnv("APP_ENV", "dev")
	AppConfigInstance.GeneralConfig.LogLevel = getEnv("LOG_LEVEL", "info")
	AppConfigInstance.GeneralConfig.Port = getEnvInt("PORT", 8080)
}

func loadRemoteConfigs() {
	AppConfigInstance.RemoteConfig.BaseURL = getEnv("REMOTE_BASE_URL", "")
	AppConfigInstance.RemoteConfig.AnonKey = getEnv("REMOTE_ANON_KEY", "")
	AppConfigInstance.RemoteConfig.Timeout = getEnvDuration("REMOTE_TIMEOUT", 30*time.Second)
}

func loadServiceConfigs() {
	AppConfigInstance.ServiceConfig.SeedFallback = getEnvBool("SEED_FALLBACK", true)
	AppConfigInstance.ServiceConfig.DefaultImageURL = getEnv("DEFAULT_IMAGE_URL", "")
}

// getEnv returns the environment variable value if it exists, otherwise returns the fallback value
func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// getEnvInt returns the environment variable value as int if it exists, otherwise returns the fallback value
func getEnvInt(key string, fallback int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return fallback
}

// getEnvBool returns the environment variable value as bool if it exists, otherwise returns the fallback value
func getEnvBool(key string, fallback bool) bool {
	if value, exists := os.LookupEnv(key); exists {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return fallback
}

// getEnvDuration returns the environment variable value as duration if it exists, otherwise returns the fallback value
func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if durVal, err := time.ParseDuration(value); err == nil {
			return durVal
		}
	}
	return fallback
}
