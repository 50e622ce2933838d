package message

import "errors"

var (
	ErrMessageNotFound = errors.New("message not found")
	ErrMissingFields   = errors.New("missing required fields")
	ErrInvalidLink     = errors.New("invalid link")
	ErrContentTooLong  = errors.New("content is too long")
	ErrInvalidEmoji    = errors.New("invalid emoji")
	ErrForbidden       = errors.New("forbidden")
)
