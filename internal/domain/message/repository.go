package message

import "context"

type Repository interface {
	GetPersonIDBySlug(ctx context.Context, slug string) (string, error)
	CreateMessage(ctx context.Context, msg *Message) error
	// GetMessageWithOwner returns the message and the user id owning its person.
	GetMessageWithOwner(ctx context.Context, id string) (*Message, string, error)
	MarkDone(ctx context.Context, id string) error
	DeleteMessage(ctx context.Context, id string) (bool, error)
}
