package endpoint

import (
	"context"

	"github.com/go-kit/kit/endpoint"
	"github.com/prajwalbharadwajbm/donatetracker/internal/models"
	"github.com/prajwalbharadwajbm/donatetracker/internal/service"
)

// CampaignEndpoints holds all endpoints for the campaign service
type CampaignEndpoints struct {
	ListCampaignsEndpoint  endpoint.Endpoint
	GetCampaignEndpoint    endpoint.Endpoint
	SelectedEndpoint       endpoint.Endpoint
	DonateEndpoint         endpoint.Endpoint
	CreateCampaignEndpoint endpoint.Endpoint
	UploadImageEndpoint    endpoint.Endpoint
	SignUpEndpoint         endpoint.Endpoint
	ReloadEndpoint         endpoint.Endpoint
	NoticesEndpoint        endpoint.Endpoint
	CategoriesEndpoint     endpoint.Endpoint
}

// MakeCampaignEndpoints creates endpoints for the campaign service
func MakeCampaignEndpoints(s service.CampaignService) CampaignEndpoints {
	return CampaignEndpoints{
		ListCampaignsEndpoint:  makeListCampaignsEndpoint(s),
		GetCampaignEndpoint:    makeGetCampaignEndpoint(s),
		SelectedEndpoint:       makeSelectedEndpoint(s),
		DonateEndpoint:         makeDonateEndpoint(s),
		CreateCampaignEndpoint: makeCreateCampaignEndpoint(s),
		UploadImageEndpoint:    makeUploadImageEndpoint(s),
		SignUpEndpoint:         makeSignUpEndpoint(s),
		ReloadEndpoint:         makeReloadEndpoint(s),
		NoticesEndpoint:        makeNoticesEndpoint(s),
		CategoriesEndpoint:     makeCategoriesEndpoint(s),
	}
}

// ListCampaignsRequest represents the request for listing campaigns
type ListCampaignsRequest struct {
	Query models.ListQuery
}

// ListCampaignsResponse represents the response for listing campaigns
type ListCampaignsResponse struct {
	Campaigns []models.CampaignResponse `json:"campaigns"`
	Err       error                     `json:"error,omitempty"`
}

// Failed implements the endpoint.Failer interface
func (r ListCampaignsResponse) Failed() error {
	return r.Err
}

func makeListCampaignsEndpoint(s service.CampaignService) endpoint.Endpoint {
	return func(ctx context.Context, request any) (any, error) {
		req := request.(ListCampaignsRequest)
		campaigns, err := s.List(ctx, req.Query)
		return ListCampaignsResponse{
			Campaigns: campaigns,
			Err:       err,
		}, nil
	}
}

// GetCampaignRequest represents the request for fetching one campaign
type GetCampaignRequest struct {
	ID string
}

// GetCampaignResponse represents the response for fetching one campaign
type GetCampaignResponse struct {
	Campaign models.CampaignResponse `json:"campaign"`
	Err      error                   `json:"error,omitempty"`
}

// Failed implements the endpoint.Failer interface
func (r GetCampaignResponse) Failed() error {
	return r.Err
}

func makeGetCampaignEndpoint(s service.CampaignService) endpoint.Endpoint {
	return func(ctx context.Context, request any) (any, error) {
		req := request.(GetCampaignRequest)
		campaign, err := s.Get(ctx, req.ID)
		return GetCampaignResponse{
			Campaign: campaign,
			Err:      err,
		}, nil
	}
}

// SelectedRequest represents the request for reading the current selection
type SelectedRequest struct{}

// SelectedResponse represents the response for reading the current selection
type SelectedResponse struct {
	Campaign models.CampaignResponse `json:"campaign"`
	Err      error                   `json:"error,omitempty"`
}

// Failed implements the endpoint.Failer interface
func (r SelectedResponse) Failed() error {
	return r.Err
}

func makeSelectedEndpoint(s service.CampaignService) endpoint.Endpoint {
	return func(ctx context.Context, request any) (any, error) {
		campaign, err := s.Selected(ctx)
		return SelectedResponse{
			Campaign: campaign,
			Err:      err,
		}, nil
	}
}

// DonateRequest represents the request for recording a donation
type DonateRequest struct {
	CampaignID string
	Input      models.DonationInput
}

// DonateResponse represents the response for recording a donation
type DonateResponse struct {
	Campaign models.CampaignResponse `json:"campaign"`
	Err      error                   `json:"error,omitempty"`
}

// Failed implements the endpoint.Failer interface
func (r DonateResponse) Failed() error {
	return r.Err
}

func makeDonateEndpoint(s service.CampaignService) endpoint.Endpoint {
	return func(ctx context.Context, request any) (any, error) {
		req := request.(DonateRequest)
		campaign, err := s.Donate(ctx, req.CampaignID, req.Input)
		return DonateResponse{
			Campaign: campaign,
			Err:      err,
		}, nil
	}
}

// CreateCampaignRequest represents the request for creating a campaign
type CreateCampaignRequest struct {
	Draft     models.CampaignDraft
	Image     []byte
	ImageName string
}

// CreateCampaignResponse represents the response for creating a campaign
type CreateCampaignResponse struct {
	Campaign models.CampaignResponse `json:"campaign"`
	Err      error                   `json:"error,omitempty"`
}

// Failed implements the endpoint.Failer interface
func (r CreateCampaignResponse) Failed() error {
	return r.Err
}

func makeCreateCampaignEndpoint(s service.CampaignService) endpoint.Endpoint {
	return func(ctx context.Context, request any) (any, error) {
		req := request.(CreateCampaignRequest)
		campaign, err := s.Create(ctx, req.Draft, req.Image, req.ImageName)
		return CreateCampaignResponse{
			Campaign: campaign,
			Err:      err,
		}, nil
	}
}

// UploadImageRequest represents the request for uploading an image
type UploadImageRequest struct {
	Image    []byte
	Filename string
}

// UploadImageResponse represents the response for uploading an image
type UploadImageResponse struct {
	ImageURL string `json:"imageUrl"`
	Err      error  `json:"error,omitempty"`
}

// Failed implements the endpoint.Failer interface
func (r UploadImageResponse) Failed() error {
	return r.Err
}

func makeUploadImageEndpoint(s service.CampaignService) endpoint.Endpoint {
	return func(ctx context.Context, request any) (any, error) {
		req := request.(UploadImageRequest)
		url, err := s.UploadImage(ctx, req.Image, req.Filename)
		return UploadImageResponse{
			ImageURL: url,
			Err:      err,
		}, nil
	}
}

// SignUpRequest represents the request for account sign-up
type SignUpRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

// SignUpResponse represents the response for account sign-up
type SignUpResponse struct {
	Err error `json:"error,omitempty"`
}

// Failed implements the endpoint.Failer interface
func (r SignUpResponse) Failed() error {
	return r.Err
}

func makeSignUpEndpoint(s service.CampaignService) endpoint.Endpoint {
	return func(ctx context.Context, request any) (any, error) {
		req := request.(SignUpRequest)
		err := s.SignUp(ctx, req.Email, req.Password, req.Name)
		return SignUpResponse{Err: err}, nil
	}
}

// ReloadRequest represents the request for reloading the collection
type ReloadRequest struct{}

// ReloadResponse represents the response for reloading the collection
type ReloadResponse struct {
	Err error `json:"error,omitempty"`
}

// Failed implements the endpoint.Failer interface
func (r ReloadResponse) Failed() error {
	return r.Err
}

func makeReloadEndpoint(s service.CampaignService) endpoint.Endpoint {
	return func(ctx context.Context, request any) (any, error) {
		err := s.Reload(ctx)
		return ReloadResponse{Err: err}, nil
	}
}

// NoticesRequest represents the request for listing notices
type NoticesRequest struct{}

// NoticesResponse represents the response for listing notices
type NoticesResponse struct {
	Notices []service.Notice `json:"notices"`
}

func makeNoticesEndpoint(s service.CampaignService) endpoint.Endpoint {
	return func(ctx context.Context, request any) (any, error) {
		return NoticesResponse{Notices: s.Notices(ctx)}, nil
	}
}

// CategoriesRequest represents the request for listing categories
type CategoriesRequest struct{}

// CategoriesResponse represents the response for listing categories
type CategoriesResponse struct {
	Categories []string `json:"categories"`
}

func makeCategoriesEndpoint(s service.CampaignService) endpoint.Endpoint {
	return func(ctx context.Context, request any) (any, error) {
		return CategoriesResponse{Categories: s.Categories(ctx)}, nil
	}
}
