package person

import "errors"

var (
	ErrPersonNotFound       = errors.New("person not found")
	ErrForbidden            = errors.New("forbidden")
	ErrNameRequired         = errors.New("name is required")
	ErrNameTooLong          = errors.New("name must be at most 24 characters")
	ErrSlugRequired         = errors.New("slug is required")
	ErrSlugTaken            = errors.New("slug already taken")
	ErrSlugGenerationFailed = errors.New("slug generation failed")
)
