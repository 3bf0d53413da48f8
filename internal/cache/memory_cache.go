package cache

import (
	"sync"
	"time"

	"github.com/prajwalbharadwajbm/donatetracker/internal/models"
)

// memoryCache holds the single campaign snapshot with a TTL. The working
// set is one collection, so there is no sizing or eviction machinery.
type memoryCache struct {
	mu        sync.RWMutex
	campaigns []models.Campaign
	hasValue  bool
	expiresAt time.Time
}

// newMemoryCache creates a new in-memory cache
func newMemoryCache() *memoryCache {
	return &memoryCache{}
}

// getCampaigns retrieves the snapshot if present and not expired.
func (mc *memoryCache) getCampaigns() ([]models.Campaign, bool) {
	mc.mu.RLock()
	defer mc.mu.RUnlock()

	if !mc.hasValue || time.Now().After(mc.expiresAt) {
		return nil, false
	}
	return models.CloneAll(mc.campaigns), true
}

// setCampaigns stores the snapshot with the given TTL.
func (mc *memoryCache) setCampaigns(campaigns []models.Campaign, ttl time.Duration) {
	mc.mu.Lock()
	defer mc.mu.Unlock()

	mc.campaigns = models.CloneAll(campaigns)
	mc.hasValue = true
	mc.expiresAt = time.Now().Add(ttl)
}

// clear drops the snapshot.
func (mc *memoryCache) clear() {
	mc.mu.Lock()
	defer mc.mu.Unlock()

	mc.campaigns = nil
	mc.hasValue = false
}
