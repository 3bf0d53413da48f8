package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"time"

	"github.com/prajwalbharadwajbm/donatetracker/internal/models"
)

// Client talks to the hosted campaign service. It translates the four
// logical operations (fetch, create, donate, upload) plus the auxiliary
// ones (single fetch, signup) into authenticated JSON calls and parses
// wire timestamps back into the domain model.
type Client struct {
	baseURL    string
	anonKey    string
	httpClient *http.Client
}

// Config holds the remote service connection settings.
type Config struct {
	BaseURL string
	AnonKey string
	Timeout time.Duration
}

// NewClient creates a client for the hosted campaign service.
func NewClient(cfg Config) *Client {
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		baseURL: cfg.BaseURL,
		anonKey: cfg.AnonKey,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// FetchCampaigns retrieves the full campaign collection.
func (c *Client) FetchCampaigns(ctx context.Context) ([]models.Campaign, error) {
	var body struct {
		Campaigns []wireCampaign `json:"campaigns"`
	}
	if err := c.do(ctx, http.MethodGet, "/campaigns", nil, &body, "fetch campaigns"); err != nil {
		return nil, err
	}

	campaigns := make([]models.Campaign, 0, len(body.Campaigns))
	for _, wc := range body.Campaigns {
		campaign, err := wc.toModel()
		if err != nil {
			return nil, &NetworkError{Op: "fetch campaigns", Err: err}
		}
		campaigns = append(campaigns, campaign)
	}
	return campaigns, nil
}

// FetchCampaign retrieves a single campaign by id.
func (c *Client) FetchCampaign(ctx context.Context, id string) (models.Campaign, error) {
	var body wireCampaign
	if err := c.do(ctx, http.MethodGet, "/campaigns/"+id, nil, &body, "fetch campaign"); err != nil {
		return models.Campaign{}, err
	}

	campaign, err := body.toModel()
	if err != nil {
		return models.Campaign{}, &NetworkError{Op: "fetch campaign", Err: err}
	}
	return campaign, nil
}

// CreateCampaign submits a draft and returns the created campaign with
// its server-assigned id and creation timestamp. On error the draft is
// not persisted anywhere.
func (c *Client) CreateCampaign(ctx context.Context, draft models.CampaignDraft) (models.Campaign, error) {
	var body wireCampaign
	if err := c.do(ctx, http.MethodPost, "/campaigns", draftToWire(draft), &body, "create campaign"); err != nil {
		return models.Campaign{}, err
	}

	campaign, err := body.toModel()
	if err != nil {
		return models.Campaign{}, &NetworkError{Op: "create campaign", Err: err}
	}
	return campaign, nil
}

// RecordDonation submits a donation and returns the updated campaign.
// The server computes the authoritative currentAmount and donor sequence;
// the client never adds the sum itself, which avoids double counting when
// other clients donate concurrently.
func (c *Client) RecordDonation(ctx context.Context, campaignID string, in models.DonationInput) (models.Campaign, error) {
	var body wireCampaign
	path := fmt.Sprintf("/campaigns/%s/donate", campaignID)
	if err := c.do(ctx, http.MethodPost, path, in, &body, "record donation"); err != nil {
		return models.Campaign{}, err
	}

	campaign, err := body.toModel()
	if err != nil {
		return models.Campaign{}, &NetworkError{Op: "record donation", Err: err}
	}
	return campaign, nil
}

// UploadImage uploads campaign image bytes as multipart form data and
// returns the hosted image URL.
func (c *Client) UploadImage(ctx context.Context, image []byte, filename string) (string, error) {
	const op = "upload image"

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("image", filename)
	if err != nil {
		return "", &NetworkError{Op: op, Err: err}
	}
	if _, err := part.Write(image); err != nil {
		return "", &NetworkError{Op: op, Err: err}
	}
	if err := writer.Close(); err != nil {
		return "", &NetworkError{Op: op, Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/upload-image", &buf)
	if err != nil {
		return "", &NetworkError{Op: op, Err: err}
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+c.anonKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", &NetworkError{Op: op, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", c.errorFromResponse(op, resp)
	}

	var body struct {
		ImageURL string `json:"imageUrl"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", &NetworkError{Op: op, StatusCode: resp.StatusCode, Err: err}
	}
	return body.ImageURL, nil
}

// SignUp creates an account on the hosted service.
func (c *Client) SignUp(ctx context.Context, email, password, name string) error {
	payload := map[string]string{
		"email":    email,
		"password": password,
		"name":     name,
	}
	return c.do(ctx, http.MethodPost, "/auth/signup", payload, nil, "sign up")
}

// do performs one authenticated JSON round trip. A nil out discards the
// response body; any failure comes back as a *NetworkError.
func (c *Client) do(ctx context.Context, method, path string, payload, out any, op string) error {
	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return &NetworkError{Op: op, Err: err}
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return &NetworkError{Op: op, Err: err}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.anonKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &NetworkError{Op: op, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return c.errorFromResponse(op, resp)
	}

	if out == nil {
		io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &NetworkError{Op: op, StatusCode: resp.StatusCode, Err: err}
	}
	return nil
}

// errorFromResponse extracts the {error: string} body the service sends
// on non-2xx statuses.
func (c *Client) errorFromResponse(op string, resp *http.Response) error {
	var body struct {
		Error string `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil || body.Error == "" {
		body.Error = http.StatusText(resp.StatusCode)
	}
	return &NetworkError{Op: op, StatusCode: resp.StatusCode, Message: body.Error}
}
