package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/prajwalbharadwajbm/donatetracker/internal/models"
	"github.com/rs/xid"
)

// CampaignService is the interface the endpoints and the middleware
// decorators are built against.
type CampaignService interface {
	List(ctx context.Context, query models.ListQuery) ([]models.CampaignResponse, error)
	Get(ctx context.Context, id string) (models.CampaignResponse, error)
	Selected(ctx context.Context) (models.CampaignResponse, error)
	Donate(ctx context.Context, id string, input models.DonationInput) (models.CampaignResponse, error)
	Create(ctx context.Context, draft models.CampaignDraft, image []byte, imageName string) (models.CampaignResponse, error)
	UploadImage(ctx context.Context, image []byte, filename string) (string, error)
	SignUp(ctx context.Context, email, password, name string) error
	Reload(ctx context.Context) error
	Categories(ctx context.Context) []string
	Notices(ctx context.Context) []Notice
}

// CampaignSource is the remote data dependency of the reconciler. The
// hosted campaign service client implements it; decorators add caching
// and instrumentation around it.
type CampaignSource interface {
	FetchCampaigns(ctx context.Context) ([]models.Campaign, error)
	FetchCampaign(ctx context.Context, id string) (models.Campaign, error)
	CreateCampaign(ctx context.Context, draft models.CampaignDraft) (models.Campaign, error)
	RecordDonation(ctx context.Context, campaignID string, input models.DonationInput) (models.Campaign, error)
	UploadImage(ctx context.Context, image []byte, filename string) (string, error)
	SignUp(ctx context.Context, email, password, name string) error
}

// State is the lifecycle of the owned collection.
type State int

// Uninitialized -> Loading -> Ready; Ready is re-entered only through an
// explicit reload.
const (
	StateUninitialized State = iota
	StateLoading
	StateReady
)

func (s State) String() string {
	switch s {
	case StateLoading:
		return "loading"
	case StateReady:
		return "ready"
	default:
		return "uninitialized"
	}
}

// Config holds the reconciler policy knobs.
type Config struct {
	// SeedFallback adopts the built-in seed collection when the remote
	// fetch fails or returns no campaigns, so the UI is never empty.
	SeedFallback bool
	// DefaultImageURL replaces a failed or missing campaign image.
	DefaultImageURL string
}

// Reconciler owns the in-memory campaign collection and reconciles every
// mutation against the remote source. All state changes funnel through a
// single mutex; remote calls are made outside it so in-flight requests
// never block reads.
type Reconciler struct {
	source CampaignSource
	cfg    Config

	now   func() time.Time
	newID func() string

	mu         sync.Mutex
	state      State
	offline    bool // collection is the seed fallback, not server data
	campaigns  []models.Campaign
	selectedID string
	notices    []Notice
}

// NewReconciler creates the campaign service backed by the given source.
func NewReconciler(source CampaignSource, cfg Config) *Reconciler {
	if cfg.DefaultImageURL == "" {
		cfg.DefaultImageURL = models.DefaultImageURL
	}
	return &Reconciler{
		source: source,
		cfg:    cfg,
		now:    time.Now,
		newID:  func() string { return xid.New().String() },
	}
}

// State returns the current collection lifecycle state.
func (r *Reconciler) State() State {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.state
}

// Offline reports whether the collection is the seed fallback.
func (r *Reconciler) Offline() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.offline
}

// List returns the filtered, sorted view over the collection. The first
// call triggers the initial load.
func (r *Reconciler) List(ctx context.Context, query models.ListQuery) ([]models.CampaignResponse, error) {
	if err := r.ensureLoaded(ctx); err != nil {
		return nil, err
	}

	r.mu.Lock()
	snapshot := models.CloneAll(r.campaigns)
	r.mu.Unlock()

	return models.FromCampaigns(models.ApplyQuery(snapshot, query), r.now()), nil
}

// Get returns a single campaign and binds it as the current selection.
func (r *Reconciler) Get(ctx context.Context, id string) (models.CampaignResponse, error) {
	if err := r.ensureLoaded(ctx); err != nil {
		return models.CampaignResponse{}, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	c, ok := r.find(id)
	if !ok {
		return models.CampaignResponse{}, fmt.Errorf("campaign %s: %w", id, ErrCampaignNotFound)
	}
	r.selectedID = id
	return c.ToResponse(r.now()), nil
}

// Selected returns the campaign currently bound to the detail view. It
// always reads through the collection, so a donation reconciled into the
// collection is immediately visible here as well.
func (r *Reconciler) Selected(ctx context.Context) (models.CampaignResponse, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.selectedID == "" {
		return models.CampaignResponse{}, ErrNoSelection
	}
	c, ok := r.find(r.selectedID)
	if !ok {
		return models.CampaignResponse{}, fmt.Errorf("campaign %s: %w", r.selectedID, ErrCampaignNotFound)
	}
	return c.ToResponse(r.now()), nil
}

// Donate records a donation through the remote service. Nothing is shown
// optimistically: the collection only changes once the server confirms,
// and then adopts the server-authoritative amount and donor sequence. On
// failure the prior state is left untouched.
func (r *Reconciler) Donate(ctx context.Context, id string, input models.DonationInput) (models.CampaignResponse, error) {
	if err := input.Validate(); err != nil {
		return models.CampaignResponse{}, err
	}
	if err := r.ensureLoaded(ctx); err != nil {
		return models.CampaignResponse{}, err
	}

	r.mu.Lock()
	current, ok := r.find(id)
	if !ok {
		r.mu.Unlock()
		return models.CampaignResponse{}, fmt.Errorf("campaign %s: %w", id, ErrCampaignNotFound)
	}
	if models.IsEnded(*current, r.now()) {
		r.mu.Unlock()
		return models.CampaignResponse{}, fmt.Errorf("campaign %s: %w", id, ErrCampaignEnded)
	}
	offline := r.offline
	r.mu.Unlock()

	if offline {
		// Seed mode has no server to confirm against; synthesize the
		// donation deterministically the way the demo UI does.
		return r.recordLocalDonation(id, input)
	}

	updated, err := r.source.RecordDonation(ctx, id, input)
	if err != nil {
		r.notice(NoticeError, "Donation could not be processed. Please try again.")
		return models.CampaignResponse{}, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.replace(updated)
	return updated.ToResponse(r.now()), nil
}

// Create submits a new campaign. An image upload failure degrades to the
// default placeholder and the flow continues; a create failure adds
// nothing. The created campaign is prepended so it is visually first
// until the user re-sorts.
func (r *Reconciler) Create(ctx context.Context, draft models.CampaignDraft, image []byte, imageName string) (models.CampaignResponse, error) {
	if err := draft.Validate(); err != nil {
		return models.CampaignResponse{}, err
	}
	if err := r.ensureLoaded(ctx); err != nil {
		return models.CampaignResponse{}, err
	}

	if len(image) > 0 {
		url, err := r.source.UploadImage(ctx, image, imageName)
		if err != nil {
			r.notice(NoticeWarning, "Image upload failed, using a default image instead.")
			draft.ImageURL = r.cfg.DefaultImageURL
		} else {
			draft.ImageURL = url
		}
	}
	if draft.ImageURL == "" {
		draft.ImageURL = r.cfg.DefaultImageURL
	}

	if r.Offline() {
		return r.createLocalCampaign(draft), nil
	}

	created, err := r.source.CreateCampaign(ctx, draft)
	if err != nil {
		r.notice(NoticeError, "Campaign could not be created. Please try again.")
		return models.CampaignResponse{}, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.campaigns = append([]models.Campaign{created}, r.campaigns...)
	return created.ToResponse(r.now()), nil
}

// UploadImage proxies a standalone image upload to the remote service.
func (r *Reconciler) UploadImage(ctx context.Context, image []byte, filename string) (string, error) {
	url, err := r.source.UploadImage(ctx, image, filename)
	if err != nil {
		r.notice(NoticeWarning, "Image upload failed.")
		return "", err
	}
	return url, nil
}

// SignUp proxies account creation to the remote service.
func (r *Reconciler) SignUp(ctx context.Context, email, password, name string) error {
	return r.source.SignUp(ctx, email, password, name)
}

// Reload explicitly re-enters the load cycle and replaces the collection.
func (r *Reconciler) Reload(ctx context.Context) error {
	return r.load(ctx)
}

// Categories returns the fixed category taxonomy for the UI select box.
func (r *Reconciler) Categories(ctx context.Context) []string {
	out := make([]string, len(models.Categories))
	copy(out, models.Categories)
	return out
}

// Notices drains the pending user notices.
func (r *Reconciler) Notices(ctx context.Context) []Notice {
	r.mu.Lock()
	defer r.mu.Unlock()

	notices := r.notices
	r.notices = nil
	return notices
}

// ensureLoaded performs the initial load exactly when the collection has
// never been loaded.
func (r *Reconciler) ensureLoaded(ctx context.Context) error {
	r.mu.Lock()
	state := r.state
	r.mu.Unlock()

	if state != StateUninitialized {
		return nil
	}
	return r.load(ctx)
}

// load fetches the collection and adopts it, falling back to the seed
// collection when the fetch fails or comes back empty. The fallback is a
// deliberate offline/demo degradation, surfaced as a notice, never
// silent.
func (r *Reconciler) load(ctx context.Context) error {
	r.mu.Lock()
	r.state = StateLoading
	r.mu.Unlock()

	campaigns, err := r.source.FetchCampaigns(ctx)

	r.mu.Lock()
	defer r.mu.Unlock()

	switch {
	case err != nil:
		if !r.cfg.SeedFallback {
			r.state = StateReady
			r.offline = false
			r.campaigns = nil
			r.noticeLocked(NoticeError, "Could not reach the campaign service.")
			return err
		}
		r.campaigns = models.SeedCampaigns()
		r.offline = true
		r.noticeLocked(NoticeWarning, "Campaign service unreachable, showing demo campaigns.")
	case len(campaigns) == 0 && r.cfg.SeedFallback:
		r.campaigns = models.SeedCampaigns()
		r.offline = true
		r.noticeLocked(NoticeInfo, "No campaigns on the server yet, showing demo campaigns.")
	default:
		r.campaigns = campaigns
		r.offline = false
	}

	r.state = StateReady
	return nil
}

// recordLocalDonation synthesizes a donation in seed mode. Mirrors the
// server behavior: append the donor, bump the sum by exactly the donated
// amount.
func (r *Reconciler) recordLocalDonation(id string, input models.DonationInput) (models.CampaignResponse, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	c, ok := r.find(id)
	if !ok {
		return models.CampaignResponse{}, fmt.Errorf("campaign %s: %w", id, ErrCampaignNotFound)
	}

	name := input.Name
	if input.Anonymous {
		name = models.AnonymousName
	}
	c.Donors = append(c.Donors, models.Donor{
		ID:        "donor-" + r.newID(),
		Name:      name,
		Amount:    input.Amount,
		Message:   input.Message,
		DonatedAt: r.now(),
		Anonymous: input.Anonymous,
	})
	c.CurrentAmount += input.Amount
	return c.ToResponse(r.now()), nil
}

// createLocalCampaign synthesizes a campaign in seed mode with a local id
// and timestamp.
func (r *Reconciler) createLocalCampaign(draft models.CampaignDraft) models.CampaignResponse {
	r.mu.Lock()
	defer r.mu.Unlock()

	created := models.Campaign{
		ID:               "campaign-" + r.newID(),
		Title:            draft.Title,
		Description:      draft.Description,
		ShortDescription: draft.ShortDescription,
		ImageURL:         draft.ImageURL,
		Goal:             draft.Goal,
		CurrentAmount:    0,
		Category:         draft.Category,
		Deadline:         draft.Deadline,
		CreatedAt:        r.now(),
		CreatedBy:        draft.CreatedBy,
		Donors:           []models.Donor{},
	}
	r.campaigns = append([]models.Campaign{created}, r.campaigns...)
	return created.ToResponse(r.now())
}

// find returns a pointer into the owned collection. Callers must hold mu.
func (r *Reconciler) find(id string) (*models.Campaign, bool) {
	for i := range r.campaigns {
		if r.campaigns[i].ID == id {
			return &r.campaigns[i], true
		}
	}
	return nil, false
}

// replace swaps the stored campaign for the server-authoritative version,
// keeping its position. Because the selection is an id into the same
// collection, the detail view can never diverge from the list. Callers
// must hold mu.
func (r *Reconciler) replace(updated models.Campaign) {
	for i := range r.campaigns {
		if r.campaigns[i].ID == updated.ID {
			r.campaigns[i] = updated
			return
		}
	}
	// Unknown id: the server knows a campaign we do not; adopt it.
	r.campaigns = append(r.campaigns, updated)
}

// notice appends a pending user notice. Takes mu.
func (r *Reconciler) notice(level NoticeLevel, message string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.noticeLocked(level, message)
}

// noticeLocked appends a pending user notice. Callers must hold mu.
func (r *Reconciler) noticeLocked(level NoticeLevel, message string) {
	r.notices = append(r.notices, Notice{Level: level, Message: message, At: r.now()})
}
