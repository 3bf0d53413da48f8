package models

import "time"

// ErrorResponse represents error response format
type ErrorResponse struct {
	Error string `json:"error"`
}

// NewErrorResponse creates a new error response
func NewErrorResponse(message string) ErrorResponse {
	return ErrorResponse{Error: message}
}

// DonorResponse is the donor representation exposed over the API. The
// name field always goes through DisplayName so an anonymous donor's
// real name never reaches a client.
type DonorResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Amount    float64   `json:"amount"`
	Message   string    `json:"message,omitempty"`
	DonatedAt time.Time `json:"donatedAt"`
	Anonymous bool      `json:"anonymous,omitempty"`
}

// CampaignResponse is the campaign representation exposed over the API,
// raw fields plus the derived presentation metrics computed at read time.
type CampaignResponse struct {
	ID                 string          `json:"id"`
	Title              string          `json:"title"`
	Description        string          `json:"description"`
	ShortDescription   string          `json:"shortDescription"`
	ImageURL           string          `json:"imageUrl"`
	Goal               float64         `json:"goal"`
	CurrentAmount      float64         `json:"currentAmount"`
	Category           string          `json:"category"`
	Deadline           time.Time       `json:"deadline"`
	CreatedAt          time.Time       `json:"createdAt"`
	CreatedBy          string          `json:"createdBy"`
	Featured           bool            `json:"featured,omitempty"`
	Donors             []DonorResponse `json:"donors"`
	ProgressPercentage float64         `json:"progressPercentage"`
	DaysLeft           int             `json:"daysLeft"`
	AverageDonation    *float64        `json:"averageDonation,omitempty"`
	TopDonors          []DonorResponse `json:"topDonors"`
	Ended              bool            `json:"ended"`
}

// leaderboard size shown on the detail view
const topDonorCount = 5

// ToResponse converts a Campaign to its API representation, computing
// derived metrics against the supplied time.
func (c *Campaign) ToResponse(now time.Time) CampaignResponse {
	resp := CampaignResponse{
		ID:                 c.ID,
		Title:              c.Title,
		Description:        c.Description,
		ShortDescription:   c.ShortDescription,
		ImageURL:           c.ImageURL,
		Goal:               c.Goal,
		CurrentAmount:      c.CurrentAmount,
		Category:           c.Category,
		Deadline:           c.Deadline,
		CreatedAt:          c.CreatedAt,
		CreatedBy:          c.CreatedBy,
		Featured:           c.Featured,
		Donors:             donorResponses(c.Donors),
		ProgressPercentage: ProgressPercentage(*c),
		DaysLeft:           DaysLeft(*c, now),
		TopDonors:          donorResponses(TopDonors(*c, topDonorCount)),
		Ended:              IsEnded(*c, now),
	}
	if avg, ok := AverageDonation(*c); ok {
		resp.AverageDonation = &avg
	}
	return resp
}

// FromCampaigns converts a collection to its API representation.
func FromCampaigns(campaigns []Campaign, now time.Time) []CampaignResponse {
	response := make([]CampaignResponse, len(campaigns))
	for i := range campaigns {
		response[i] = campaigns[i].ToResponse(now)
	}
	return response
}

func donorResponses(donors []Donor) []DonorResponse {
	out := make([]DonorResponse, len(donors))
	for i := range donors {
		d := donors[i]
		out[i] = DonorResponse{
			ID:        d.ID,
			Name:      d.DisplayName(),
			Amount:    d.Amount,
			Message:   d.Message,
			DonatedAt: d.DonatedAt,
			Anonymous: d.Anonymous,
		}
	}
	return out
}
