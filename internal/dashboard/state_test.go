package dashboard

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func samplePersons() []Person {
	return []Person{
		{ID: "p1", Slug: "jane-aaaaaa", Name: "Jane", Messages: []Message{
			{ID: "m2", Content: "newer", Emoji: "sad"},
			{ID: "m1", Content: "older", Emoji: "frown", Done: true},
		}},
		{ID: "p2", Slug: "john-bbbbbb", Name: "John", Messages: []Message{}},
	}
}

func TestReduceLoadedCopiesInput(t *testing.T) {
	input := samplePersons()
	s := Reduce(State{}, Loaded{Persons: input})

	require.True(t, s.Loaded)
	input[0].Messages[0].Content = "mutated"
	assert.Equal(t, "newer", s.Persons[0].Messages[0].Content)
}

func TestReduceLoadFailed(t *testing.T) {
	s := Reduce(State{}, LoadFailed{Err: errors.New("boom")})
	assert.True(t, s.Loaded)
	assert.Equal(t, "boom", s.LoadError)
}

func TestReduceMessageResolvedDoesNotMutatePrevious(t *testing.T) {
	before := Reduce(State{}, Loaded{Persons: samplePersons()})
	before = Reduce(before, OpenResolve{Slug: "jane-aaaaaa", MessageID: "m2"})

	after := Reduce(before, MessageResolved{Slug: "jane-aaaaaa", MessageID: "m2"})

	assert.False(t, before.Persons[0].Messages[0].Done)
	assert.True(t, after.Persons[0].Messages[0].Done)
	assert.True(t, before.Resolve.Open)
	assert.False(t, after.Resolve.Open)
}

func TestReducePersonCreatedAndDeleted(t *testing.T) {
	s := Reduce(State{}, Loaded{Persons: samplePersons()})
	s = Reduce(s, OpenCreate{})
	s = Reduce(s, SetCreateName{Name: "Pookie"})
	s = Reduce(s, SubmitCreate{})
	require.True(t, s.Create.Submitting)

	s = Reduce(s, PersonCreated{Person: Person{ID: "p3", Slug: "pookie-cccccc", Name: "Pookie"}})
	require.Len(t, s.Persons, 3)
	assert.Equal(t, "pookie-cccccc", s.Persons[2].Slug)
	assert.False(t, s.Create.Open)

	s = Reduce(s, ToggleResolved{Slug: "jane-aaaaaa"})
	s = Reduce(s, OpenDelete{Slug: "jane-aaaaaa"})
	s = Reduce(s, PersonDeleted{Slug: "jane-aaaaaa"})
	require.Len(t, s.Persons, 2)
	assert.False(t, s.IsExpanded("jane-aaaaaa"))
	assert.False(t, s.Delete.Open)
	_, ok := s.FindPerson("jane-aaaaaa")
	assert.False(t, ok)
}

func TestReduceCreateNameLimited(t *testing.T) {
	s := Reduce(State{}, OpenCreate{})
	s = Reduce(s, SetCreateName{Name: strings.Repeat("ü", 30)})
	assert.Equal(t, strings.Repeat("ü", MaxNameInput), s.Create.Name)

	closed := Reduce(State{}, SetCreateName{Name: "ignored"})
	assert.Empty(t, closed.Create.Name)
}

func TestReduceModalsAreIndependent(t *testing.T) {
	s := Reduce(State{}, OpenCreate{})
	s = Reduce(s, OpenDelete{Slug: "jane-aaaaaa"})
	s = Reduce(s, OpenResolve{Slug: "john-bbbbbb", MessageID: "m9"})

	assert.True(t, s.Create.Open)
	assert.True(t, s.Delete.Open)
	assert.True(t, s.Resolve.Open)

	s = Reduce(s, CancelDelete{})
	assert.True(t, s.Create.Open)
	assert.False(t, s.Delete.Open)
	assert.True(t, s.Resolve.Open)
}

func TestReduceCancelIgnoredWhileSubmitting(t *testing.T) {
	s := Reduce(State{}, OpenDelete{Slug: "jane-aaaaaa"})
	s = Reduce(s, SubmitDelete{})
	s = Reduce(s, CancelDelete{})
	assert.True(t, s.Delete.Open)

	s = Reduce(s, DeleteFailed{})
	assert.True(t, s.Delete.Open)
	assert.False(t, s.Delete.Submitting)
}

func TestReduceSubmitRequiresOpenModal(t *testing.T) {
	s := Reduce(State{}, SubmitResolve{})
	assert.False(t, s.Resolve.Submitting)
}

func TestReduceOpenIgnoredWhileSubmitting(t *testing.T) {
	s := Reduce(State{}, OpenDelete{Slug: "jane-doe"})
	s = Reduce(s, SubmitDelete{})

	reopened := Reduce(s, OpenDelete{Slug: "other"})
	assert.True(t, reopened.Delete.Submitting)
	assert.Equal(t, "jane-doe", reopened.Delete.Slug)

	s = Reduce(State{}, OpenCreate{})
	s = Reduce(s, SubmitCreate{})
	assert.True(t, Reduce(s, OpenCreate{}).Create.Submitting)
}

func TestReduceToggleAndCopy(t *testing.T) {
	s := State{}
	assert.False(t, s.IsExpanded("jane-aaaaaa"))

	toggled := Reduce(s, ToggleResolved{Slug: "jane-aaaaaa"})
	assert.True(t, toggled.IsExpanded("jane-aaaaaa"))
	assert.False(t, s.IsExpanded("jane-aaaaaa"))
	assert.False(t, Reduce(toggled, ToggleResolved{Slug: "jane-aaaaaa"}).IsExpanded("jane-aaaaaa"))

	copied := Reduce(s, LinkCopied{Slug: "jane-aaaaaa"})
	assert.Equal(t, "jane-aaaaaa", copied.CopiedSlug)
	assert.Equal(t, "jane-aaaaaa", Reduce(copied, CopyCleared{Slug: "other"}).CopiedSlug)
	assert.Empty(t, Reduce(copied, CopyCleared{Slug: "jane-aaaaaa"}).CopiedSlug)
}
