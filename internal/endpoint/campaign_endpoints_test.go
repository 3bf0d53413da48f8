package endpoint

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/prajwalbharadwajbm/donatetracker/internal/models"
	"github.com/prajwalbharadwajbm/donatetracker/internal/service"
)

// MockCampaignService is a mock implementation of service.CampaignService
type MockCampaignService struct {
	mock.Mock
}

func (m *MockCampaignService) List(ctx context.Context, query models.ListQuery) ([]models.CampaignResponse, error) {
	args := m.Called(ctx, query)
	return args.Get(0).([]models.CampaignResponse), args.Error(1)
}

func (m *MockCampaignService) Get(ctx context.Context, id string) (models.CampaignResponse, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(models.CampaignResponse), args.Error(1)
}

func (m *MockCampaignService) Selected(ctx context.Context) (models.CampaignResponse, error) {
	args := m.Called(ctx)
	return args.Get(0).(models.CampaignResponse), args.Error(1)
}

func (m *MockCampaignService) Donate(ctx context.Context, id string, input models.DonationInput) (models.CampaignResponse, error) {
	args := m.Called(ctx, id, input)
	return args.Get(0).(models.CampaignResponse), args.Error(1)
}

func (m *MockCampaignService) Create(ctx context.Context, draft models.CampaignDraft, image []byte, imageName string) (models.CampaignResponse, error) {
	args := m.Called(ctx, draft, image, imageName)
	return args.Get(0).(models.CampaignResponse), args.Error(1)
}

func (m *MockCampaignService) UploadImage(ctx context.Context, image []byte, filename string) (string, error) {
	args := m.Called(ctx, image, filename)
	return args.String(0), args.Error(1)
}

func (m *MockCampaignService) SignUp(ctx context.Context, email, password, name string) error {
	args := m.Called(ctx, email, password, name)
	return args.Error(0)
}

func (m *MockCampaignService) Reload(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockCampaignService) Categories(ctx context.Context) []string {
	args := m.Called(ctx)
	return args.Get(0).([]string)
}

func (m *MockCampaignService) Notices(ctx context.Context) []service.Notice {
	args := m.Called(ctx)
	return args.Get(0).([]service.Notice)
}

func TestMakeCampaignEndpoints(t *testing.T) {
	mockService := &MockCampaignService{}
	endpoints := MakeCampaignEndpoints(mockService)

	assert.NotNil(t, endpoints.ListCampaignsEndpoint)
	assert.NotNil(t, endpoints.GetCampaignEndpoint)
	assert.NotNil(t, endpoints.SelectedEndpoint)
	assert.NotNil(t, endpoints.DonateEndpoint)
	assert.NotNil(t, endpoints.CreateCampaignEndpoint)
	assert.NotNil(t, endpoints.UploadImageEndpoint)
	assert.NotNil(t, endpoints.SignUpEndpoint)
	assert.NotNil(t, endpoints.ReloadEndpoint)
	assert.NotNil(t, endpoints.NoticesEndpoint)
	assert.NotNil(t, endpoints.CategoriesEndpoint)
}

func TestListCampaignsEndpoint_Success(t *testing.T) {
	mockService := &MockCampaignService{}
	endpoints := MakeCampaignEndpoints(mockService)

	expectedCampaigns := []models.CampaignResponse{
		{ID: "campaign-1", Title: "Clean Water"},
		{ID: "campaign-2", Title: "School Supplies"},
	}

	mockService.On("List", mock.Anything, mock.MatchedBy(func(q models.ListQuery) bool {
		return q.Search == "water" && q.Sort == models.SortNewest
	})).Return(expectedCampaigns, nil)

	request := ListCampaignsRequest{
		Query: models.ListQuery{Search: "water", Sort: models.SortNewest},
	}

	response, err := endpoints.ListCampaignsEndpoint(context.Background(), request)

	assert.NoError(t, err)
	listResponse := response.(ListCampaignsResponse)
	assert.Equal(t, expectedCampaigns, listResponse.Campaigns)
	assert.Nil(t, listResponse.Err)

	mockService.AssertExpectations(t)
}

func TestGetCampaignEndpoint_NotFound(t *testing.T) {
	mockService := &MockCampaignService{}
	endpoints := MakeCampaignEndpoints(mockService)

	mockService.On("Get", mock.Anything, "missing").
		Return(models.CampaignResponse{}, service.ErrCampaignNotFound)

	response, err := endpoints.GetCampaignEndpoint(context.Background(), GetCampaignRequest{ID: "missing"})

	// Endpoint itself doesn't return error, error is in response
	assert.NoError(t, err)
	getResponse := response.(GetCampaignResponse)
	assert.Equal(t, service.ErrCampaignNotFound, getResponse.Err)
	assert.Equal(t, service.ErrCampaignNotFound, getResponse.Failed())

	mockService.AssertExpectations(t)
}

func TestDonateEndpoint_Success(t *testing.T) {
	mockService := &MockCampaignService{}
	endpoints := MakeCampaignEndpoints(mockService)

	input := models.DonationInput{Name: "Jane", Amount: 50}
	updated := models.CampaignResponse{ID: "campaign-1", CurrentAmount: 150}

	mockService.On("Donate", mock.Anything, "campaign-1", input).Return(updated, nil)

	response, err := endpoints.DonateEndpoint(context.Background(), DonateRequest{
		CampaignID: "campaign-1",
		Input:      input,
	})

	assert.NoError(t, err)
	donateResponse := response.(DonateResponse)
	assert.Equal(t, updated, donateResponse.Campaign)
	assert.Nil(t, donateResponse.Failed())

	mockService.AssertExpectations(t)
}

func TestCreateCampaignEndpoint_PassesImage(t *testing.T) {
	mockService := &MockCampaignService{}
	endpoints := MakeCampaignEndpoints(mockService)

	draft := models.CampaignDraft{Title: "Clean Water"}
	image := []byte("jpeg-bytes")

	mockService.On("Create", mock.Anything, draft, image, "photo.jpg").
		Return(models.CampaignResponse{ID: "campaign-9"}, nil)

	response, err := endpoints.CreateCampaignEndpoint(context.Background(), CreateCampaignRequest{
		Draft:     draft,
		Image:     image,
		ImageName: "photo.jpg",
	})

	assert.NoError(t, err)
	createResponse := response.(CreateCampaignResponse)
	assert.Equal(t, "campaign-9", createResponse.Campaign.ID)

	mockService.AssertExpectations(t)
}

func TestUploadImageEndpoint_Error(t *testing.T) {
	mockService := &MockCampaignService{}
	endpoints := MakeCampaignEndpoints(mockService)

	uploadErr := errors.New("upload failed")
	mockService.On("UploadImage", mock.Anything, []byte("png"), "banner.png").
		Return("", uploadErr)

	response, err := endpoints.UploadImageEndpoint(context.Background(), UploadImageRequest{
		Image:    []byte("png"),
		Filename: "banner.png",
	})

	assert.NoError(t, err)
	uploadResponse := response.(UploadImageResponse)
	assert.Empty(t, uploadResponse.ImageURL)
	assert.Equal(t, uploadErr, uploadResponse.Failed())

	mockService.AssertExpectations(t)
}

func TestSignUpEndpoint_Success(t *testing.T) {
	mockService := &MockCampaignService{}
	endpoints := MakeCampaignEndpoints(mockService)

	mockService.On("SignUp", mock.Anything, "jane@example.com", "secret", "Jane").Return(nil)

	response, err := endpoints.SignUpEndpoint(context.Background(), SignUpRequest{
		Email:    "jane@example.com",
		Password: "secret",
		Name:     "Jane",
	})

	assert.NoError(t, err)
	assert.Nil(t, response.(SignUpResponse).Failed())

	mockService.AssertExpectations(t)
}

func TestReloadEndpoint_Error(t *testing.T) {
	mockService := &MockCampaignService{}
	endpoints := MakeCampaignEndpoints(mockService)

	reloadErr := errors.New("remote unavailable")
	mockService.On("Reload", mock.Anything).Return(reloadErr)

	response, err := endpoints.ReloadEndpoint(context.Background(), ReloadRequest{})

	assert.NoError(t, err)
	assert.Equal(t, reloadErr, response.(ReloadResponse).Failed())

	mockService.AssertExpectations(t)
}

func TestNoticesEndpoint(t *testing.T) {
	mockService := &MockCampaignService{}
	endpoints := MakeCampaignEndpoints(mockService)

	notices := []service.Notice{{Level: service.NoticeWarning, Message: "showing sample campaigns"}}
	mockService.On("Notices", mock.Anything).Return(notices)

	response, err := endpoints.NoticesEndpoint(context.Background(), NoticesRequest{})

	assert.NoError(t, err)
	assert.Equal(t, notices, response.(NoticesResponse).Notices)

	mockService.AssertExpectations(t)
}

func TestCategoriesEndpoint(t *testing.T) {
	mockService := &MockCampaignService{}
	endpoints := MakeCampaignEndpoints(mockService)

	mockService.On("Categories", mock.Anything).Return([]string{"Education", "Health"})

	response, err := endpoints.CategoriesEndpoint(context.Background(), CategoriesRequest{})

	assert.NoError(t, err)
	assert.Equal(t, []string{"Education", "Health"}, response.(CategoriesResponse).Categories)

	mockService.AssertExpectations(t)
}
