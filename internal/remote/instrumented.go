package remote

import (
	"context"

	"github.com/prajwalbharadwajbm/donatetracker/internal/metrics"
	"github.com/prajwalbharadwajbm/donatetracker/internal/models"
	"github.com/prajwalbharadwajbm/donatetracker/internal/service"
)

// InstrumentedSource decorates a campaign source with Prometheus call
// counters so remote failures show up on dashboards before users report
// them.
type InstrumentedSource struct {
	source  service.CampaignSource
	metrics *metrics.Metrics
}

// NewInstrumentedSource creates a new instrumented campaign source
func NewInstrumentedSource(source service.CampaignSource, m *metrics.Metrics) service.CampaignSource {
	return &InstrumentedSource{
		source:  source,
		metrics: m,
	}
}

func (is *InstrumentedSource) FetchCampaigns(ctx context.Context) ([]models.Campaign, error) {
	campaigns, err := is.source.FetchCampaigns(ctx)
	is.metrics.RecordRemoteCall("fetch_campaigns", err != nil)
	return campaigns, err
}

func (is *InstrumentedSource) FetchCampaign(ctx context.Context, id string) (models.Campaign, error) {
	campaign, err := is.source.FetchCampaign(ctx, id)
	is.metrics.RecordRemoteCall("fetch_campaign", err != nil)
	return campaign, err
}

func (is *InstrumentedSource) CreateCampaign(ctx context.Context, draft models.CampaignDraft) (models.Campaign, error) {
	created, err := is.source.CreateCampaign(ctx, draft)
	is.metrics.RecordRemoteCall("create_campaign", err != nil)
	return created, err
}

func (is *InstrumentedSource) RecordDonation(ctx context.Context, campaignID string, input models.DonationInput) (models.Campaign, error) {
	updated, err := is.source.RecordDonation(ctx, campaignID, input)
	is.metrics.RecordRemoteCall("record_donation", err != nil)
	return updated, err
}

func (is *InstrumentedSource) UploadImage(ctx context.Context, image []byte, filename string) (string, error) {
	url, err := is.source.UploadImage(ctx, image, filename)
	is.metrics.RecordRemoteCall("upload_image", err != nil)
	return url, err
}

func (is *InstrumentedSource) SignUp(ctx context.Context, email, password, name string) error {
	err := is.source.SignUp(ctx, email, password, name)
	is.metrics.RecordRemoteCall("sign_up", err != nil)
	return err
}
