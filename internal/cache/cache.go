package cache

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/prajwalbharadwajbm/donatetracker/internal/models"
)

// Cache stores campaign collection snapshots between reloads.
type Cache interface {
	GetCampaigns(ctx context.Context) ([]models.Campaign, error)
	SetCampaigns(ctx context.Context, campaigns []models.Campaign, ttl time.Duration) error

	// Cache management
	InvalidateAll(ctx context.Context) error
	GetStats() CacheStats
}

// CacheStats holds cache performance statistics
type CacheStats struct {
	Hits        int64
	Misses      int64
	Errors      int64
	HitRatio    float64
	TotalOps    int64
	LastUpdated time.Time
}

// HybridCache implements both in-memory and Redis caching: memory keeps
// the snapshot hot within one instance, Redis shares it across instances
// so a restarted front-end does not hammer the hosted service.
type HybridCache struct {
	memoryCache *memoryCache
	redisCache  *redisCache
	config      CacheConfig
	stats       CacheStats
	mu          sync.RWMutex
}

// CacheConfig holds cache configuration
type CacheConfig struct {
	DefaultTTL    time.Duration
	RedisAddr     string
	RedisPassword string
	RedisDB       int
	EnableMemory  bool
	EnableRedis   bool
}

// NewHybridCache creates a new hybrid cache
func NewHybridCache(config CacheConfig) (*HybridCache, error) {
	hc := &HybridCache{
		config: config,
		stats: CacheStats{
			LastUpdated: time.Now(),
		},
	}

	if config.EnableMemory {
		hc.memoryCache = newMemoryCache()
	}

	if config.EnableRedis {
		var err error
		hc.redisCache, err = newRedisCache(config)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize Redis cache: %w", err)
		}
	}

	return hc, nil
}

// GetCampaigns retrieves the cached snapshot (memory first, then Redis).
func (hc *HybridCache) GetCampaigns(ctx context.Context) ([]models.Campaign, error) {
	if hc.memoryCache != nil {
		if campaigns, found := hc.memoryCache.getCampaigns(); found {
			hc.recordHit()
			return campaigns, nil
		}
	}

	if hc.redisCache != nil {
		campaigns, err := hc.redisCache.getCampaigns(ctx)
		if err == nil {
			hc.recordHit()
			// Warm memory cache
			if hc.memoryCache != nil {
				hc.memoryCache.setCampaigns(campaigns, hc.config.DefaultTTL)
			}
			return campaigns, nil
		}
	}

	hc.recordMiss()
	return nil, ErrCacheMiss
}

// SetCampaigns stores the snapshot in both caches.
func (hc *HybridCache) SetCampaigns(ctx context.Context, campaigns []models.Campaign, ttl time.Duration) error {
	if hc.memoryCache != nil {
		hc.memoryCache.setCampaigns(campaigns, ttl)
	}

	if hc.redisCache != nil {
		if err := hc.redisCache.setCampaigns(ctx, campaigns, ttl); err != nil {
			hc.recordError()
			return fmt.Errorf("cache store error: %w", err)
		}
	}

	return nil
}

// InvalidateAll clears both caches. Called after a confirmed mutation so
// the next reload fetches the authoritative collection.
func (hc *HybridCache) InvalidateAll(ctx context.Context) error {
	if hc.memoryCache != nil {
		hc.memoryCache.clear()
	}

	if hc.redisCache != nil {
		if err := hc.redisCache.clear(ctx); err != nil {
			return fmt.Errorf("cache invalidation error: %w", err)
		}
	}

	return nil
}

// GetStats returns cache statistics
func (hc *HybridCache) GetStats() CacheStats {
	hc.mu.RLock()
	defer hc.mu.RUnlock()

	stats := hc.stats
	if stats.TotalOps > 0 {
		stats.HitRatio = float64(stats.Hits) / float64(stats.TotalOps)
	}
	return stats
}

// Helper methods for statistics
func (hc *HybridCache) recordHit() {
	hc.mu.Lock()
	hc.stats.Hits++
	hc.stats.TotalOps++
	hc.mu.Unlock()
}

func (hc *HybridCache) recordMiss() {
	hc.mu.Lock()
	hc.stats.Misses++
	hc.stats.TotalOps++
	hc.mu.Unlock()
}

func (hc *HybridCache) recordError() {
	hc.mu.Lock()
	hc.stats.Errors++
	hc.mu.Unlock()
}

// Custom errors
var (
	ErrCacheMiss = fmt.Errorf("cache miss")
)
