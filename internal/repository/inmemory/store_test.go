package inmemory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	messagedomain "grievance-portal-go/internal/domain/message"
	persondomain "grievance-portal-go/internal/domain/person"
	userdomain "grievance-portal-go/internal/domain/user"
)

func seed(t *testing.T, s *Store) {
	t.Helper()
	ctx := context.Background()
	require.NoError(t, s.CreateUser(ctx, &userdomain.User{ID: "u1", Username: "alice"}))
	require.NoError(t, s.CreatePerson(ctx, &persondomain.Person{ID: "p1", Slug: "jane-aaaaaa", Name: "Jane", UserID: "u1"}))
	require.NoError(t, s.CreatePerson(ctx, &persondomain.Person{ID: "p2", Slug: "john-bbbbbb", Name: "John", UserID: "u1"}))
}

func TestUniqueConstraints(t *testing.T) {
	s := NewStore()
	seed(t, s)
	ctx := context.Background()

	err := s.CreateUser(ctx, &userdomain.User{ID: "u2", Username: "alice"})
	assert.ErrorIs(t, err, userdomain.ErrUsernameTaken)

	err = s.CreatePerson(ctx, &persondomain.Person{ID: "p3", Slug: "jane-aaaaaa", UserID: "u1"})
	assert.ErrorIs(t, err, persondomain.ErrSlugTaken)
}

func TestListOrdersPersonsAndMessages(t *testing.T) {
	s := NewStore()
	seed(t, s)
	ctx := context.Background()

	require.NoError(t, s.CreateMessage(ctx, &messagedomain.Message{ID: "m1", Content: "first", Emoji: "sad", PersonID: "p1"}))
	require.NoError(t, s.CreateMessage(ctx, &messagedomain.Message{ID: "m2", Content: "second", Emoji: "sad", PersonID: "p1"}))

	persons, err := s.ListPersonsWithMessages(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, persons, 2)
	assert.Equal(t, "p1", persons[0].ID)
	assert.Equal(t, "p2", persons[1].ID)
	require.Len(t, persons[0].Messages, 2)
	assert.Equal(t, "m2", persons[0].Messages[0].ID)
	assert.NotNil(t, persons[1].Messages)
}

func TestDeletePersonCascades(t *testing.T) {
	s := NewStore()
	seed(t, s)
	ctx := context.Background()
	require.NoError(t, s.CreateMessage(ctx, &messagedomain.Message{ID: "m1", Content: "hi", Emoji: "sad", PersonID: "p1"}))

	deleted, err := s.DeletePerson(ctx, "p1")
	require.NoError(t, err)
	assert.True(t, deleted)

	_, _, err = s.GetMessageWithOwner(ctx, "m1")
	assert.ErrorIs(t, err, messagedomain.ErrMessageNotFound)
	_, err = s.GetPersonIDBySlug(ctx, "jane-aaaaaa")
	assert.ErrorIs(t, err, messagedomain.ErrInvalidLink)
}

func TestMessageOwnerAndMarkDone(t *testing.T) {
	s := NewStore()
	seed(t, s)
	ctx := context.Background()
	require.NoError(t, s.CreateMessage(ctx, &messagedomain.Message{ID: "m1", Content: "hi", Emoji: "sad", PersonID: "p2"}))

	require.NoError(t, s.MarkDone(ctx, "m1"))
	msg, owner, err := s.GetMessageWithOwner(ctx, "m1")
	require.NoError(t, err)
	assert.Equal(t, "u1", owner)
	assert.True(t, msg.Done)

	deleted, err := s.DeleteMessage(ctx, "m1")
	require.NoError(t, err)
	assert.True(t, deleted)
	deleted, err = s.DeleteMessage(ctx, "m1")
	require.NoError(t, err)
	assert.False(t, deleted)
}
