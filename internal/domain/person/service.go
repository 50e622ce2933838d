package person

import (
	"context"
	"errors"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"
	messagedomain "grievance-portal-go/internal/domain/message"
	"grievance-portal-go/internal/textclean"
)

const (
	MaxNameLength = 24
	slugAttempts  = 10
)

type Service struct {
	repo    Repository
	newSlug func(name string) (string, error)
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo, newSlug: newSlug}
}

// ListPersons returns every person owned by userID; Messages is never nil.
func (s *Service) ListPersons(ctx context.Context, userID string) ([]Person, error) {
	persons, err := s.repo.ListPersonsWithMessages(ctx, userID)
	if err != nil {
		return nil, err
	}

	result := make([]Person, 0, len(persons))
	for _, p := range persons {
		if p.Messages == nil {
			p.Messages = []messagedomain.Message{}
		}
		result = append(result, p)
	}
	return result, nil
}

func (s *Service) CreatePerson(ctx context.Context, userID, name string) (*Person, error) {
	name, err := NormalizeName(name)
	if err != nil {
		return nil, err
	}

	for attempt := 0; attempt < slugAttempts; attempt++ {
		slug, err := s.newSlug(name)
		if err != nil {
			return nil, err
		}
		taken, err := s.repo.IsSlugTaken(ctx, slug)
		if err != nil {
			return nil, err
		}
		if taken {
			continue
		}

		person := Person{
			ID:       uuid.NewString(),
			Slug:     slug,
			Name:     name,
			UserID:   userID,
			Messages: []messagedomain.Message{},
		}
		err = s.repo.CreatePerson(ctx, &person)
		if errors.Is(err, ErrSlugTaken) {
			// Lost a race with a concurrent create; pick another slug.
			continue
		}
		if err != nil {
			return nil, err
		}
		return &person, nil
	}

	return nil, ErrSlugGenerationFailed
}

func (s *Service) GetPersonBySlug(ctx context.Context, slug string) (*Person, error) {
	slug = strings.TrimSpace(slug)
	if slug == "" {
		return nil, ErrSlugRequired
	}
	return s.repo.GetPersonBySlug(ctx, slug)
}

// DeletePerson removes the person; its messages go with it through the foreign key cascade.
func (s *Service) DeletePerson(ctx context.Context, userID, slug string) error {
	person, err := s.GetPersonBySlug(ctx, slug)
	if err != nil {
		return err
	}
	if person.UserID != userID {
		return ErrForbidden
	}

	deleted, err := s.repo.DeletePerson(ctx, person.ID)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrPersonNotFound
	}
	return nil
}

// NormalizeName strips markup and whitespace and enforces the 1..MaxNameLength rule.
func NormalizeName(name string) (string, error) {
	name = textclean.Strip(name)
	if name == "" {
		return "", ErrNameRequired
	}
	if utf8.RuneCountInString(name) > MaxNameLength {
		return "", ErrNameTooLong
	}
	return name, nil
}
