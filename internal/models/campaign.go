package models

import (
	"time"
)

// Campaign is a fundraising effort with a monetary goal, a deadline and
// the history of donations it has received. The collection of campaigns
// is owned by the reconciler service; the hosted campaign service remains
// the source of truth for donation sums.
type Campaign struct {
	ID               string    `json:"id"`
	Title            string    `json:"title"`
	Description      string    `json:"description"`
	ShortDescription string    `json:"shortDescription"`
	ImageURL         string    `json:"imageUrl"`
	Goal             float64   `json:"goal"`
	CurrentAmount    float64   `json:"currentAmount"`
	Category         string    `json:"category"`
	Deadline         time.Time `json:"deadline"`
	CreatedAt        time.Time `json:"createdAt"`
	CreatedBy        string    `json:"createdBy"`
	Donors           []Donor   `json:"donors"`
	Featured         bool      `json:"featured,omitempty"`
}

// Donor is a single donation event attributed to a campaign. Donors have
// no existence independent of their campaign.
type Donor struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Amount    float64   `json:"amount"`
	Message   string    `json:"message,omitempty"`
	DonatedAt time.Time `json:"donatedAt"`
	Anonymous bool      `json:"anonymous,omitempty"`
}

// AnonymousName is the sentinel display name used for anonymous donors.
const AnonymousName = "Anonymous"

// DisplayName returns the name safe to expose. An anonymous donor's real
// name must never leave this method.
func (d *Donor) DisplayName() string {
	if d.Anonymous {
		return AnonymousName
	}
	return d.Name
}

// CampaignDraft holds the fields a creator submits for a new campaign.
// The server assigns id and createdAt on successful creation.
type CampaignDraft struct {
	Title            string    `json:"title"`
	Description      string    `json:"description"`
	ShortDescription string    `json:"shortDescription"`
	Goal             float64   `json:"goal"`
	Category         string    `json:"category"`
	Deadline         time.Time `json:"deadline"`
	ImageURL         string    `json:"imageUrl"`
	CreatedBy        string    `json:"createdBy"`
}

// DonationInput holds the fields a donor submits with a donation.
type DonationInput struct {
	Name      string  `json:"name"`
	Email     string  `json:"email"`
	Amount    float64 `json:"amount"`
	Message   string  `json:"message,omitempty"`
	Anonymous bool    `json:"anonymous,omitempty"`
}

// Validate checks the draft before it is sent to the remote service.
func (d *CampaignDraft) Validate() error {
	if d.Title == "" {
		return ErrMissingTitle
	}
	if d.Description == "" {
		return ErrMissingDescription
	}
	if d.Goal <= 0 {
		return ErrInvalidGoal
	}
	if d.Category == "" {
		return ErrMissingCategory
	}
	if d.Deadline.IsZero() {
		return ErrMissingDeadline
	}
	return nil
}

// Validate checks the donation input before it is sent to the remote service.
func (in *DonationInput) Validate() error {
	if in.Amount <= 0 {
		return ErrInvalidAmount
	}
	if !in.Anonymous && in.Name == "" {
		return ErrMissingDonorName
	}
	return nil
}

// Clone returns a deep copy of the campaign so callers can hand snapshots
// across goroutine boundaries without sharing the donor slice.
func (c *Campaign) Clone() Campaign {
	clone := *c
	if c.Donors != nil {
		clone.Donors = make([]Donor, len(c.Donors))
		copy(clone.Donors, c.Donors)
	}
	return clone
}

// CloneAll deep-copies a campaign collection.
func CloneAll(campaigns []Campaign) []Campaign {
	out := make([]Campaign, len(campaigns))
	for i := range campaigns {
		out[i] = campaigns[i].Clone()
	}
	return out
}
