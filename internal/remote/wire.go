package remote

import (
	"fmt"
	"time"

	"github.com/prajwalbharadwajbm/donatetracker/internal/models"
)

// Timestamps cross the wire as ISO-8601 text. The hosted service emits
// full RFC 3339 values but older records carry bare dates, so both are
// accepted on ingest.
var wireTimeLayouts = []string{
	time.RFC3339,
	"2006-01-02",
}

func parseWireTime(field, value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, nil
	}
	for _, layout := range wireTimeLayouts {
		if ts, err := time.Parse(layout, value); err == nil {
			return ts, nil
		}
	}
	return time.Time{}, fmt.Errorf("unparseable %s timestamp %q", field, value)
}

// wireCampaign is the campaign representation on the wire, dates as text.
type wireCampaign struct {
	ID               string      `json:"id"`
	Title            string      `json:"title"`
	Description      string      `json:"description"`
	ShortDescription string      `json:"shortDescription"`
	ImageURL         string      `json:"imageUrl"`
	Goal             float64     `json:"goal"`
	CurrentAmount    float64     `json:"currentAmount"`
	Category         string      `json:"category"`
	Deadline         string      `json:"deadline"`
	CreatedAt        string      `json:"createdAt"`
	CreatedBy        string      `json:"createdBy"`
	Donors           []wireDonor `json:"donors"`
	Featured         bool        `json:"featured,omitempty"`
}

type wireDonor struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Amount    float64 `json:"amount"`
	Message   string  `json:"message,omitempty"`
	DonatedAt string  `json:"donatedAt"`
	Anonymous bool    `json:"anonymous,omitempty"`
}

// wireDraft is the create-campaign request body, dates serialized to text.
type wireDraft struct {
	Title            string  `json:"title"`
	Description      string  `json:"description"`
	ShortDescription string  `json:"shortDescription"`
	Goal             float64 `json:"goal"`
	Category         string  `json:"category"`
	Deadline         string  `json:"deadline"`
	ImageURL         string  `json:"imageUrl"`
	CreatedBy        string  `json:"createdBy"`
}

func (w wireCampaign) toModel() (models.Campaign, error) {
	deadline, err := parseWireTime("deadline", w.Deadline)
	if err != nil {
		return models.Campaign{}, err
	}
	createdAt, err := parseWireTime("createdAt", w.CreatedAt)
	if err != nil {
		return models.Campaign{}, err
	}

	donors := make([]models.Donor, len(w.Donors))
	for i, d := range w.Donors {
		donatedAt, err := parseWireTime("donatedAt", d.DonatedAt)
		if err != nil {
			return models.Campaign{}, err
		}
		donors[i] = models.Donor{
			ID:        d.ID,
			Name:      d.Name,
			Amount:    d.Amount,
			Message:   d.Message,
			DonatedAt: donatedAt,
			Anonymous: d.Anonymous,
		}
	}

	return models.Campaign{
		ID:               w.ID,
		Title:            w.Title,
		Description:      w.Description,
		ShortDescription: w.ShortDescription,
		ImageURL:         w.ImageURL,
		Goal:             w.Goal,
		CurrentAmount:    w.CurrentAmount,
		Category:         w.Category,
		Deadline:         deadline,
		CreatedAt:        createdAt,
		CreatedBy:        w.CreatedBy,
		Donors:           donors,
		Featured:         w.Featured,
	}, nil
}

func draftToWire(draft models.CampaignDraft) wireDraft {
	return wireDraft{
		Title:            draft.Title,
		Description:      draft.Description,
		ShortDescription: draft.ShortDescription,
		Goal:             draft.Goal,
		Category:         draft.Category,
		Deadline:         draft.Deadline.UTC().Format(time.RFC3339),
		ImageURL:         draft.ImageURL,
		CreatedBy:        draft.CreatedBy,
	}
}
