package remote

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prajwalbharadwajbm/donatetracker/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testAnonKey = "test-anon-key"

func newTestClient(handler http.Handler) (*Client, *httptest.Server) {
	server := httptest.NewServer(handler)
	client := NewClient(Config{BaseURL: server.URL, AnonKey: testAnonKey})
	return client, server
}

func TestFetchCampaigns_ParsesWireTimestamps(t *testing.T) {
	client, server := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/campaigns", r.URL.Path)
		assert.Equal(t, "Bearer "+testAnonKey, r.Header.Get("Authorization"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"campaigns": [{
				"id": "c1",
				"title": "Clean Water Wells",
				"goal": 25000,
				"currentAmount": 18750,
				"deadline": "2025-02-15",
				"createdAt": "2024-12-01T10:30:00Z",
				"donors": [{
					"id": "d1",
					"name": "Sarah",
					"amount": 250,
					"donatedAt": "2025-01-19T08:00:00Z"
				}]
			}]
		}`))
	}))
	defer server.Close()

	campaigns, err := client.FetchCampaigns(context.Background())
	require.NoError(t, err)
	require.Len(t, campaigns, 1)

	c := campaigns[0]
	assert.Equal(t, "c1", c.ID)
	assert.Equal(t, time.Date(2025, time.February, 15, 0, 0, 0, 0, time.UTC), c.Deadline)
	assert.Equal(t, time.Date(2024, time.December, 1, 10, 30, 0, 0, time.UTC), c.CreatedAt)
	require.Len(t, c.Donors, 1)
	assert.Equal(t, time.Date(2025, time.January, 19, 8, 0, 0, 0, time.UTC), c.Donors[0].DonatedAt)
}

func TestFetchCampaigns_ErrorStatus(t *testing.T) {
	client, server := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"error": "storage unavailable"}`))
	}))
	defer server.Close()

	_, err := client.FetchCampaigns(context.Background())
	require.Error(t, err)

	var ne *NetworkError
	require.ErrorAs(t, err, &ne)
	assert.Equal(t, http.StatusInternalServerError, ne.StatusCode)
	assert.Equal(t, "storage unavailable", ne.Message)
	assert.True(t, IsNetworkError(err))
}

func TestFetchCampaigns_TransportFailure(t *testing.T) {
	client, server := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // connection refused from here on

	_, err := client.FetchCampaigns(context.Background())
	require.Error(t, err)
	assert.True(t, IsNetworkError(err))

	var ne *NetworkError
	require.ErrorAs(t, err, &ne)
	assert.Zero(t, ne.StatusCode)
}

func TestFetchCampaigns_BadTimestamp(t *testing.T) {
	client, server := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"campaigns": [{"id": "c1", "deadline": "next tuesday"}]}`))
	}))
	defer server.Close()

	_, err := client.FetchCampaigns(context.Background())
	assert.True(t, IsNetworkError(err))
}

func TestFetchCampaign(t *testing.T) {
	client, server := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/campaigns/c1", r.URL.Path)
		w.Write([]byte(`{"id": "c1", "title": "Single", "deadline": "2025-03-01", "createdAt": "2024-11-20"}`))
	}))
	defer server.Close()

	c, err := client.FetchCampaign(context.Background(), "c1")
	require.NoError(t, err)
	assert.Equal(t, "Single", c.Title)
}

func TestCreateCampaign_SerializesDeadline(t *testing.T) {
	deadline := time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC)

	client, server := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/campaigns", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "2025-06-01T00:00:00Z", body["deadline"])
		assert.Equal(t, "New Campaign", body["title"])

		w.Write([]byte(`{
			"id": "server-id",
			"title": "New Campaign",
			"currentAmount": 0,
			"deadline": "2025-06-01T00:00:00Z",
			"createdAt": "2025-01-10T12:00:00Z",
			"donors": []
		}`))
	}))
	defer server.Close()

	created, err := client.CreateCampaign(context.Background(), models.CampaignDraft{
		Title:    "New Campaign",
		Deadline: deadline,
	})
	require.NoError(t, err)
	assert.Equal(t, "server-id", created.ID)
	assert.NotNil(t, created.Donors)
}

func TestRecordDonation(t *testing.T) {
	client, server := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/campaigns/c1/donate", r.URL.Path)

		var body models.DonationInput
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, 100.0, body.Amount)

		w.Write([]byte(`{
			"id": "c1",
			"goal": 1000,
			"currentAmount": 500,
			"deadline": "2025-03-01",
			"createdAt": "2024-11-20",
			"donors": [{"id": "d1", "name": "Sarah", "amount": 100, "donatedAt": "2025-01-10T12:00:00Z"}]
		}`))
	}))
	defer server.Close()

	updated, err := client.RecordDonation(context.Background(), "c1", models.DonationInput{
		Name: "Sarah", Amount: 100,
	})
	require.NoError(t, err)
	assert.Equal(t, 500.0, updated.CurrentAmount)
	assert.Len(t, updated.Donors, 1)
}

func TestRecordDonation_Failure(t *testing.T) {
	client, server := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte(`{"error": "ledger write failed"}`))
	}))
	defer server.Close()

	_, err := client.RecordDonation(context.Background(), "c1", models.DonationInput{Amount: 100})
	assert.True(t, IsNetworkError(err))
}

func TestUploadImage_Multipart(t *testing.T) {
	client, server := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/upload-image", r.URL.Path)
		assert.Equal(t, "Bearer "+testAnonKey, r.Header.Get("Authorization"))

		require.NoError(t, r.ParseMultipartForm(1<<20))
		file, header, err := r.FormFile("image")
		require.NoError(t, err)
		defer file.Close()
		assert.Equal(t, "photo.jpg", header.Filename)

		w.Write([]byte(`{"imageUrl": "https://cdn.example/photo.jpg"}`))
	}))
	defer server.Close()

	url, err := client.UploadImage(context.Background(), []byte{0xff, 0xd8, 0xff}, "photo.jpg")
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example/photo.jpg", url)
}

func TestUploadImage_Failure(t *testing.T) {
	client, server := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusRequestEntityTooLarge)
	}))
	defer server.Close()

	_, err := client.UploadImage(context.Background(), []byte{1}, "big.png")
	require.Error(t, err)

	var ne *NetworkError
	require.ErrorAs(t, err, &ne)
	// No JSON error body: falls back to the HTTP status text.
	assert.Equal(t, http.StatusText(http.StatusRequestEntityTooLarge), ne.Message)
}

func TestSignUp(t *testing.T) {
	client, server := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/auth/signup", r.URL.Path)

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "a@b.c", body["email"])
		assert.Equal(t, "Jane", body["name"])

		w.Write([]byte(`{"user": {"id": "u1"}}`))
	}))
	defer server.Close()

	require.NoError(t, client.SignUp(context.Background(), "a@b.c", "secret", "Jane"))
}

func TestParseWireTime(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		wantErr bool
	}{
		{name: "rfc3339", value: "2025-01-10T12:00:00Z"},
		{name: "rfc3339 with offset", value: "2025-01-10T12:00:00+05:30"},
		{name: "bare date", value: "2025-01-10"},
		{name: "empty is zero time", value: ""},
		{name: "garbage", value: "soon", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parseWireTime("deadline", tt.value)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
