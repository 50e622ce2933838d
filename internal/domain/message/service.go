package message

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"
)

const (
	MaxContentLength = 2000
	maxEmojiLength   = 32
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Submit stores content and expected response exactly as given. Rendering
// escapes them.
func (s *Service) Submit(ctx context.Context, input SubmitInput) (*Message, error) {
	content := input.Content
	emoji := strings.TrimSpace(input.Emoji)
	slug := strings.TrimSpace(input.Slug)
	if content == "" || emoji == "" || slug == "" {
		return nil, ErrMissingFields
	}
	if utf8.RuneCountInString(content) > MaxContentLength {
		return nil, ErrContentTooLong
	}
	if utf8.RuneCountInString(emoji) > maxEmojiLength {
		return nil, ErrInvalidEmoji
	}

	var expected *string
	if input.ExpectedResponse != nil && *input.ExpectedResponse != "" {
		value := *input.ExpectedResponse
		expected = &value
	}

	personID, err := s.repo.GetPersonIDBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}

	msg := Message{
		ID:               uuid.NewString(),
		Content:          content,
		Emoji:            emoji,
		ExpectedResponse: expected,
		Done:             false,
		PersonID:         personID,
	}
	if err := s.repo.CreateMessage(ctx, &msg); err != nil {
		return nil, err
	}

	return &msg, nil
}

// Resolve marks the message done. Resolving an already resolved message succeeds.
func (s *Service) Resolve(ctx context.Context, userID, id string) (*Message, error) {
	msg, err := s.getOwned(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	if err := s.repo.MarkDone(ctx, msg.ID); err != nil {
		return nil, err
	}

	msg.Done = true
	return msg, nil
}

func (s *Service) Delete(ctx context.Context, userID, id string) error {
	msg, err := s.getOwned(ctx, userID, id)
	if err != nil {
		return err
	}

	deleted, err := s.repo.DeleteMessage(ctx, msg.ID)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrMessageNotFound
	}
	return nil
}

func (s *Service) getOwned(ctx context.Context, userID, id string) (*Message, error) {
	parsed, err := uuid.Parse(strings.TrimSpace(id))
	if err != nil {
		return nil, ErrMessageNotFound
	}

	msg, ownerID, err := s.repo.GetMessageWithOwner(ctx, parsed.String())
	if err != nil {
		return nil, err
	}
	if ownerID != userID {
		return nil, ErrForbidden
	}
	return msg, nil
}
