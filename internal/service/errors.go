package service

import "errors"

// Domain errors surfaced by the campaign service. The transport layer
// maps these to HTTP status codes.
var (
	// ErrCampaignNotFound means the id does not exist in the collection.
	ErrCampaignNotFound = errors.New("campaign not found")

	// ErrCampaignEnded means the deadline has passed; donations to ended
	// campaigns are rejected before any remote call is made.
	ErrCampaignEnded = errors.New("campaign has ended")

	// ErrNoSelection means no campaign detail view is currently bound.
	ErrNoSelection = errors.New("no campaign selected")
)
