package domain

import "errors"

var (
	ErrNotFound        = errors.New("not found")
	ErrInvalidState    = errors.New("campaign is not open")
	ErrInvalidArgument = errors.New("invalid argument")
	ErrExpired         = errors.New("campaign deadline has passed")
	// ErrConflict is returned when a concurrent writer changed the campaign
	// between read and write and the retry budget is exhausted.
	ErrConflict        = errors.New("concurrent update conflict")
	ErrInvalidCampaign = errors.New("invalid campaign")
)
