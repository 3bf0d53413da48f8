package middleware

import (
	"context"
	"sync"

	"github.com/prajwalbharadwajbm/donatetracker/internal/metrics"
	"github.com/prajwalbharadwajbm/donatetracker/internal/models"
	"github.com/prajwalbharadwajbm/donatetracker/internal/service"
)

// offlineReporter is implemented by the reconciler; it lets the metrics
// middleware observe whether a load degraded to the seed collection.
type offlineReporter interface {
	Offline() bool
}

// serviceMetricsMiddleware implements business metrics for CampaignService
type serviceMetricsMiddleware struct {
	metrics    *metrics.Metrics
	next       service.CampaignService
	reporter   offlineReporter
	mu         sync.Mutex
	wasOffline bool
}

// NewServiceMetricsMiddleware creates a new service metrics middleware
func NewServiceMetricsMiddleware(m *metrics.Metrics) func(service.CampaignService) service.CampaignService {
	return func(next service.CampaignService) service.CampaignService {
		mw := &serviceMetricsMiddleware{
			metrics: m,
			next:    next,
		}
		if reporter, ok := next.(offlineReporter); ok {
			mw.reporter = reporter
		}
		return mw
	}
}

func (mw *serviceMetricsMiddleware) List(ctx context.Context, query models.ListQuery) ([]models.CampaignResponse, error) {
	campaigns, err := mw.next.List(ctx, query)
	mw.recordFallback()
	return campaigns, err
}

func (mw *serviceMetricsMiddleware) Get(ctx context.Context, id string) (models.CampaignResponse, error) {
	return mw.next.Get(ctx, id)
}

func (mw *serviceMetricsMiddleware) Selected(ctx context.Context) (models.CampaignResponse, error) {
	return mw.next.Selected(ctx)
}

func (mw *serviceMetricsMiddleware) Donate(ctx context.Context, id string, input models.DonationInput) (models.CampaignResponse, error) {
	campaign, err := mw.next.Donate(ctx, id, input)
	if err == nil {
		mw.metrics.RecordDonation(campaign.Category)
	}
	return campaign, err
}

func (mw *serviceMetricsMiddleware) Create(ctx context.Context, draft models.CampaignDraft, image []byte, imageName string) (models.CampaignResponse, error) {
	campaign, err := mw.next.Create(ctx, draft, image, imageName)
	if err == nil {
		mw.metrics.RecordCampaignCreated()
	}
	return campaign, err
}

func (mw *serviceMetricsMiddleware) UploadImage(ctx context.Context, image []byte, filename string) (string, error) {
	return mw.next.UploadImage(ctx, image, filename)
}

func (mw *serviceMetricsMiddleware) SignUp(ctx context.Context, email, password, name string) error {
	return mw.next.SignUp(ctx, email, password, name)
}

func (mw *serviceMetricsMiddleware) Reload(ctx context.Context) error {
	err := mw.next.Reload(ctx)
	mw.recordFallback()
	return err
}

func (mw *serviceMetricsMiddleware) Categories(ctx context.Context) []string {
	return mw.next.Categories(ctx)
}

func (mw *serviceMetricsMiddleware) Notices(ctx context.Context) []service.Notice {
	return mw.next.Notices(ctx)
}

// recordFallback counts loads that degraded to the seed collection. The
// counter moves at most once per offline load because wasOffline latches.
func (mw *serviceMetricsMiddleware) recordFallback() {
	if mw.reporter == nil {
		return
	}
	mw.mu.Lock()
	defer mw.mu.Unlock()
	if mw.reporter.Offline() && !mw.wasOffline {
		mw.metrics.RecordSeedFallback()
		mw.wasOffline = true
	} else if !mw.reporter.Offline() {
		mw.wasOffline = false
	}
}
