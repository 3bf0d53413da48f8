package cache

import (
	"context"
	"time"

	"github.com/prajwalbharadwajbm/donatetracker/internal/models"
	"github.com/prajwalbharadwajbm/donatetracker/internal/service"
)

// CachedSource wraps a campaign source with snapshot caching. Reads are
// served from the cache when possible; confirmed mutations pass through
// and invalidate, so the next fetch sees the authoritative collection.
type CachedSource struct {
	source service.CampaignSource
	cache  Cache
	ttl    time.Duration
}

// NewCachedSource creates a new cached campaign source
func NewCachedSource(source service.CampaignSource, cache Cache, ttl time.Duration) service.CampaignSource {
	return &CachedSource{
		source: source,
		cache:  cache,
		ttl:    ttl,
	}
}

// FetchCampaigns retrieves the collection from cache first, then the
// remote service. A fetch failure is never masked by a stale cache
// error: only a cache hit short-circuits.
func (cs *CachedSource) FetchCampaigns(ctx context.Context) ([]models.Campaign, error) {
	campaigns, err := cs.cache.GetCampaigns(ctx)
	if err == nil {
		return campaigns, nil
	}

	campaigns, err = cs.source.FetchCampaigns(ctx)
	if err != nil {
		return nil, err
	}

	if len(campaigns) > 0 {
		// Best effort; a cache store failure must not fail the fetch.
		_ = cs.cache.SetCampaigns(ctx, campaigns, cs.ttl)
	}

	return campaigns, nil
}

// FetchCampaign serves a single campaign from the cached snapshot when
// possible, delegating to the remote service on a miss.
func (cs *CachedSource) FetchCampaign(ctx context.Context, id string) (models.Campaign, error) {
	if campaigns, err := cs.cache.GetCampaigns(ctx); err == nil {
		for _, c := range campaigns {
			if c.ID == id {
				return c, nil
			}
		}
	}
	return cs.source.FetchCampaign(ctx, id)
}

// CreateCampaign passes through and invalidates the snapshot.
func (cs *CachedSource) CreateCampaign(ctx context.Context, draft models.CampaignDraft) (models.Campaign, error) {
	created, err := cs.source.CreateCampaign(ctx, draft)
	if err != nil {
		return models.Campaign{}, err
	}
	_ = cs.cache.InvalidateAll(ctx)
	return created, nil
}

// RecordDonation passes through and invalidates the snapshot.
func (cs *CachedSource) RecordDonation(ctx context.Context, campaignID string, input models.DonationInput) (models.Campaign, error) {
	updated, err := cs.source.RecordDonation(ctx, campaignID, input)
	if err != nil {
		return models.Campaign{}, err
	}
	_ = cs.cache.InvalidateAll(ctx)
	return updated, nil
}

// UploadImage passes through; uploads do not affect the snapshot.
func (cs *CachedSource) UploadImage(ctx context.Context, image []byte, filename string) (string, error) {
	return cs.source.UploadImage(ctx, image, filename)
}

// SignUp passes through; accounts do not affect the snapshot.
func (cs *CachedSource) SignUp(ctx context.Context, email, password, name string) error {
	return cs.source.SignUp(ctx, email, password, name)
}
