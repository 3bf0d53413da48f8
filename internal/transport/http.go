package transport

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	httptransport "github.com/go-kit/kit/transport/http"
	"github.com/go-kit/log"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/prajwalbharadwajbm/donatetracker/internal/endpoint"
	"github.com/prajwalbharadwajbm/donatetracker/internal/models"
	"github.com/prajwalbharadwajbm/donatetracker/internal/remote"
	"github.com/prajwalbharadwajbm/donatetracker/internal/service"
)

// legacyAnyCategory is the sentinel older clients send to mean "no
// category filter".
const legacyAnyCategory = "All Categories"

const maxUploadBytes = 10 << 20

// invalidRequestError marks decode-time failures so the error encoder
// can distinguish them from service errors.
type invalidRequestError struct {
	err error
}

func (e *invalidRequestError) Error() string { return e.err.Error() }
func (e *invalidRequestError) Unwrap() error { return e.err }

// NewHTTPHandler creates HTTP handlers for the campaign service
func NewHTTPHandler(endpoints endpoint.CampaignEndpoints, logger log.Logger) http.Handler {
	options := []httptransport.ServerOption{
		httptransport.ServerErrorEncoder(encodeError),
	}

	listCampaignsHandler := httptransport.NewServer(
		endpoints.ListCampaignsEndpoint,
		decodeListCampaignsRequest,
		encodeListCampaignsResponse,
		options...,
	)
	getCampaignHandler := httptransport.NewServer(
		endpoints.GetCampaignEndpoint,
		decodeGetCampaignRequest,
		encodeCampaignResponse,
		options...,
	)
	selectedHandler := httptransport.NewServer(
		endpoints.SelectedEndpoint,
		decodeEmptyRequest(endpoint.SelectedRequest{}),
		encodeCampaignResponse,
		options...,
	)
	donateHandler := httptransport.NewServer(
		endpoints.DonateEndpoint,
		decodeDonateRequest,
		encodeCampaignResponse,
		options...,
	)
	createCampaignHandler := httptransport.NewServer(
		endpoints.CreateCampaignEndpoint,
		decodeCreateCampaignRequest,
		encodeCreateCampaignResponse,
		options...,
	)
	uploadImageHandler := httptransport.NewServer(
		endpoints.UploadImageEndpoint,
		decodeUploadImageRequest,
		encodeUploadImageResponse,
		options...,
	)
	signUpHandler := httptransport.NewServer(
		endpoints.SignUpEndpoint,
		decodeSignUpRequest,
		encodeStatusResponse,
		options...,
	)
	reloadHandler := httptransport.NewServer(
		endpoints.ReloadEndpoint,
		decodeEmptyRequest(endpoint.ReloadRequest{}),
		encodeStatusResponse,
		options...,
	)
	noticesHandler := httptransport.NewServer(
		endpoints.NoticesEndpoint,
		decodeEmptyRequest(endpoint.NoticesRequest{}),
		encodeJSONResponse,
		options...,
	)
	categoriesHandler := httptransport.NewServer(
		endpoints.CategoriesEndpoint,
		decodeEmptyRequest(endpoint.CategoriesRequest{}),
		encodeJSONResponse,
		options...,
	)

	r := mux.NewRouter()

	// "selected" must be registered before the {id} route so mux does
	// not treat it as a campaign ID.
	r.Handle("/v1/campaigns/selected", selectedHandler).Methods("GET")
	r.Handle("/v1/campaigns", listCampaignsHandler).Methods("GET")
	r.Handle("/v1/campaigns", createCampaignHandler).Methods("POST")
	r.Handle("/v1/campaigns/{id}", getCampaignHandler).Methods("GET")
	r.Handle("/v1/campaigns/{id}/donate", donateHandler).Methods("POST")
	r.Handle("/v1/upload-image", uploadImageHandler).Methods("POST")
	r.Handle("/v1/auth/signup", signUpHandler).Methods("POST")
	r.Handle("/v1/reload", reloadHandler).Methods("POST")
	r.Handle("/v1/notices", noticesHandler).Methods("GET")
	r.Handle("/v1/categories", categoriesHandler).Methods("GET")

	// Health check endpoint
	r.HandleFunc("/health", healthHandler).Methods("GET")

	// Prometheus scrape endpoint
	r.Handle("/metrics", promhttp.Handler()).Methods("GET")

	return r
}

// decodeEmptyRequest returns a decoder for endpoints that take no input.
func decodeEmptyRequest(req any) httptransport.DecodeRequestFunc {
	return func(_ context.Context, _ *http.Request) (any, error) {
		return req, nil
	}
}

// decodeListCampaignsRequest decodes HTTP request to ListCampaignsRequest
func decodeListCampaignsRequest(_ context.Context, r *http.Request) (any, error) {
	query := r.URL.Query()

	sort, err := models.ParseSortKey(query.Get("sort"))
	if err != nil {
		return nil, &invalidRequestError{err: err}
	}

	category := models.AnyCategory()
	if raw := query.Get("category"); raw != "" && raw != legacyAnyCategory {
		category = models.ExactCategory(raw)
	}

	featured := false
	if raw := query.Get("featured"); raw != "" {
		featured, err = strconv.ParseBool(raw)
		if err != nil {
			return nil, &invalidRequestError{err: fmt.Errorf("invalid featured flag %q", raw)}
		}
	}

	return endpoint.ListCampaignsRequest{
		Query: models.ListQuery{
			Search:       query.Get("search"),
			Category:     category,
			Sort:         sort,
			FeaturedOnly: featured,
		},
	}, nil
}

// decodeGetCampaignRequest decodes HTTP request to GetCampaignRequest
func decodeGetCampaignRequest(_ context.Context, r *http.Request) (any, error) {
	vars := mux.Vars(r)
	return endpoint.GetCampaignRequest{ID: vars["id"]}, nil
}

// decodeDonateRequest decodes HTTP request to DonateRequest
func decodeDonateRequest(_ context.Context, r *http.Request) (any, error) {
	vars := mux.Vars(r)

	var input models.DonationInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		return nil, &invalidRequestError{err: fmt.Errorf("invalid donation body: %w", err)}
	}

	return endpoint.DonateRequest{
		CampaignID: vars["id"],
		Input:      input,
	}, nil
}

// draftPayload mirrors CampaignDraft with a string deadline so both
// RFC3339 timestamps and bare dates decode.
type draftPayload struct {
	Title            string  `json:"title"`
	Description      string  `json:"description"`
	ShortDescription string  `json:"shortDescription"`
	Goal             float64 `json:"goal"`
	Category         string  `json:"category"`
	Deadline         string  `json:"deadline"`
	ImageURL         string  `json:"imageUrl"`
	CreatedBy        string  `json:"createdBy"`
}

func (p draftPayload) toDraft() (models.CampaignDraft, error) {
	deadline, err := parseDeadline(p.Deadline)
	if err != nil {
		return models.CampaignDraft{}, err
	}
	return models.CampaignDraft{
		Title:            p.Title,
		Description:      p.Description,
		ShortDescription: p.ShortDescription,
		Goal:             p.Goal,
		Category:         p.Category,
		Deadline:         deadline,
		ImageURL:         p.ImageURL,
		CreatedBy:        p.CreatedBy,
	}, nil
}

var deadlineLayouts = []string{time.RFC3339, "2006-01-02"}

func parseDeadline(raw string) (time.Time, error) {
	if raw == "" {
		return time.Time{}, nil
	}
	for _, layout := range deadlineLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid deadline %q", raw)
}

// decodeCreateCampaignRequest decodes HTTP request to CreateCampaignRequest.
// Accepts a JSON draft, or multipart/form-data with a "campaign" JSON
// field plus an optional "image" file.
func decodeCreateCampaignRequest(_ context.Context, r *http.Request) (any, error) {
	if isMultipart(r) {
		return decodeMultipartCreate(r)
	}

	var payload draftPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		return nil, &invalidRequestError{err: fmt.Errorf("invalid campaign body: %w", err)}
	}
	draft, err := payload.toDraft()
	if err != nil {
		return nil, &invalidRequestError{err: err}
	}
	return endpoint.CreateCampaignRequest{Draft: draft}, nil
}

func isMultipart(r *http.Request) bool {
	return strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data")
}

func decodeMultipartCreate(r *http.Request) (any, error) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		return nil, &invalidRequestError{err: fmt.Errorf("invalid multipart body: %w", err)}
	}

	var payload draftPayload
	if err := json.Unmarshal([]byte(r.FormValue("campaign")), &payload); err != nil {
		return nil, &invalidRequestError{err: fmt.Errorf("invalid campaign field: %w", err)}
	}
	draft, err := payload.toDraft()
	if err != nil {
		return nil, &invalidRequestError{err: err}
	}

	req := endpoint.CreateCampaignRequest{Draft: draft}

	file, header, err := r.FormFile("image")
	if err == nil {
		defer file.Close()
		image, readErr := io.ReadAll(file)
		if readErr != nil {
			return nil, &invalidRequestError{err: fmt.Errorf("reading image: %w", readErr)}
		}
		req.Image = image
		req.ImageName = header.Filename
	} else if !errors.Is(err, http.ErrMissingFile) {
		return nil, &invalidRequestError{err: fmt.Errorf("invalid image field: %w", err)}
	}

	return req, nil
}

// decodeUploadImageRequest decodes HTTP request to UploadImageRequest
func decodeUploadImageRequest(_ context.Context, r *http.Request) (any, error) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		return nil, &invalidRequestError{err: fmt.Errorf("invalid multipart body: %w", err)}
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		return nil, &invalidRequestError{err: fmt.Errorf("missing image field: %w", err)}
	}
	defer file.Close()

	image, err := io.ReadAll(file)
	if err != nil {
		return nil, &invalidRequestError{err: fmt.Errorf("reading image: %w", err)}
	}

	return endpoint.UploadImageRequest{
		Image:    image,
		Filename: header.Filename,
	}, nil
}

// decodeSignUpRequest decodes HTTP request to SignUpRequest
func decodeSignUpRequest(_ context.Context, r *http.Request) (any, error) {
	var req endpoint.SignUpRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return nil, &invalidRequestError{err: fmt.Errorf("invalid signup body: %w", err)}
	}
	if req.Email == "" || req.Password == "" {
		return nil, &invalidRequestError{err: errors.New("email and password are required")}
	}
	return req, nil
}

// encodeListCampaignsResponse encodes ListCampaignsResponse to HTTP response
func encodeListCampaignsResponse(ctx context.Context, w http.ResponseWriter, response any) error {
	resp := response.(endpoint.ListCampaignsResponse)

	if resp.Err != nil {
		encodeError(ctx, resp.Err, w)
		return nil
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	return json.NewEncoder(w).Encode(map[string]any{"campaigns": resp.Campaigns})
}

// encodeCampaignResponse encodes single-campaign responses to HTTP responses
func encodeCampaignResponse(ctx context.Context, w http.ResponseWriter, response any) error {
	var (
		campaign models.CampaignResponse
		err      error
	)
	switch resp := response.(type) {
	case endpoint.GetCampaignResponse:
		campaign, err = resp.Campaign, resp.Err
	case endpoint.SelectedResponse:
		campaign, err = resp.Campaign, resp.Err
	case endpoint.DonateResponse:
		campaign, err = resp.Campaign, resp.Err
	default:
		return fmt.Errorf("unexpected response type %T", response)
	}

	if err != nil {
		encodeError(ctx, err, w)
		return nil
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	return json.NewEncoder(w).Encode(campaign)
}

// encodeCreateCampaignResponse encodes CreateCampaignResponse to HTTP response
func encodeCreateCampaignResponse(ctx context.Context, w http.ResponseWriter, response any) error {
	resp := response.(endpoint.CreateCampaignResponse)

	if resp.Err != nil {
		encodeError(ctx, resp.Err, w)
		return nil
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	return json.NewEncoder(w).Encode(resp.Campaign)
}

// encodeUploadImageResponse encodes UploadImageResponse to HTTP response
func encodeUploadImageResponse(ctx context.Context, w http.ResponseWriter, response any) error {
	resp := response.(endpoint.UploadImageResponse)

	if resp.Err != nil {
		encodeError(ctx, resp.Err, w)
		return nil
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	return json.NewEncoder(w).Encode(map[string]string{"imageUrl": resp.ImageURL})
}

// encodeStatusResponse encodes error-only responses to HTTP responses
func encodeStatusResponse(ctx context.Context, w http.ResponseWriter, response any) error {
	var err error
	switch resp := response.(type) {
	case endpoint.SignUpResponse:
		err = resp.Err
	case endpoint.ReloadResponse:
		err = resp.Err
	default:
		return fmt.Errorf("unexpected response type %T", response)
	}

	if err != nil {
		encodeError(ctx, err, w)
		return nil
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	return json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}

// encodeJSONResponse encodes responses that cannot fail
func encodeJSONResponse(_ context.Context, w http.ResponseWriter, response any) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	return json.NewEncoder(w).Encode(response)
}

// encodeError encodes error to HTTP response
func encodeError(_ context.Context, err error, w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCodeFor(err))
	json.NewEncoder(w).Encode(models.NewErrorResponse(err.Error()))
}

func statusCodeFor(err error) int {
	var invalid *invalidRequestError
	if errors.As(err, &invalid) {
		return http.StatusBadRequest
	}

	var netErr *remote.NetworkError
	if errors.As(err, &netErr) {
		return http.StatusBadGateway
	}

	switch {
	case errors.Is(err, service.ErrCampaignNotFound),
		errors.Is(err, service.ErrNoSelection):
		return http.StatusNotFound
	case errors.Is(err, service.ErrCampaignEnded):
		return http.StatusConflict
	case errors.Is(err, models.ErrMissingTitle),
		errors.Is(err, models.ErrMissingDescription),
		errors.Is(err, models.ErrInvalidGoal),
		errors.Is(err, models.ErrMissingCategory),
		errors.Is(err, models.ErrMissingDeadline),
		errors.Is(err, models.ErrInvalidAmount),
		errors.Is(err, models.ErrMissingDonorName):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// healthHandler handles health check requests
func healthHandler(w http.ResponseWriter, r *http.Request) {
	response := map[string]any{
		"status":  "healthy",
		"service": "donatetracker",
		"version": "1.0.0",
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(response)
}
