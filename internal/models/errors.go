package models

import "errors"

// Validation errors for user-submitted drafts and donations. The transport
// layer maps these to 400 responses.
var (
	ErrMissingTitle       = errors.New("missing campaign title")
	ErrMissingDescription = errors.New("missing campaign description")
	ErrInvalidGoal        = errors.New("campaign goal must be positive")
	ErrMissingCategory    = errors.New("missing campaign category")
	ErrMissingDeadline    = errors.New("missing campaign deadline")
	ErrInvalidAmount      = errors.New("donation amount must be positive")
	ErrMissingDonorName   = errors.New("missing donor name")
)
