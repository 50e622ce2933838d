package person

import "context"

type Repository interface {
	// ListPersonsWithMessages returns the user's persons oldest first, messages newest first.
	ListPersonsWithMessages(ctx context.Context, userID string) ([]Person, error)
	GetPersonBySlug(ctx context.Context, slug string) (*Person, error)
	IsSlugTaken(ctx context.Context, slug string) (bool, error)
	CreatePerson(ctx context.Context, person *Person) error
	DeletePerson(ctx context.Context, id string) (bool, error)
}
