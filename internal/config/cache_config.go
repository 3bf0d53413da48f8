package config

import (
	"time"

	"github.com/prajwalbharadwajbm/donatetracker/internal/cache"
)

// GetCacheConfig creates cache configuration from environment variables
func GetCacheConfig() cache.CacheConfig {
	return cache.CacheConfig{
		DefaultTTL:    getEnvDuration("CACHE_DEFAULT_TTL", 5*time.Minute),
		RedisAddr:     getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		RedisDB:       getEnvInt("REDIS_DB", 0),
		EnableMemory:  getEnvBool("CACHE_ENABLE_MEMORY", true),
		EnableRedis:   getEnvBool("CACHE_ENABLE_REDIS", false),
	}
}

// CacheHealthCheck represents cache health status
type CacheHealthCheck struct {
	Memory struct {
		Enabled bool `json:"enabled"`
	} `json:"memory"`
	Redis struct {
		Enabled bool   `json:"enabled"`
		Address string `json:"address"`
	} `json:"redis"`
	Stats cache.CacheStats `json:"stats"`
}

// GetCacheHealth returns current cache health status
func GetCacheHealth(c cache.Cache) CacheHealthCheck {
	cfg := GetCacheConfig()
	health := CacheHealthCheck{}

	health.Memory.Enabled = cfg.EnableMemory
	health.Redis.Enabled = cfg.EnableRedis
	health.Redis.Address = cfg.RedisAddr
	health.Stats = c.GetStats()

	return health
}
