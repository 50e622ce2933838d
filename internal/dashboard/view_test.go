package dashboard

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPartitionKeepsOrder(t *testing.T) {
	p := Person{Messages: []Message{
		{ID: "1"}, {ID: "2", Done: true}, {ID: "3"}, {ID: "4", Done: true},
	}}

	active, resolved := Partition(p)
	require.Len(t, active, 2)
	require.Len(t, resolved, 2)
	assert.Equal(t, "1", active[0].ID)
	assert.Equal(t, "3", active[1].ID)
	assert.Equal(t, "2", resolved[0].ID)
	assert.Equal(t, "4", resolved[1].ID)
}

func TestPartitionEmpty(t *testing.T) {
	active, resolved := Partition(Person{})
	assert.NotNil(t, active)
	assert.NotNil(t, resolved)
}

func TestShareLink(t *testing.T) {
	assert.Equal(t, "https://example.com/share/jane-abc123", ShareLink("https://example.com/", "jane-abc123"))
	assert.Equal(t, "http://localhost:8080/share/jane-abc123", ShareLink("http://localhost:8080", "jane-abc123"))
}

func TestViews(t *testing.T) {
	s := Reduce(State{}, Loaded{Persons: samplePersons()})
	s = Reduce(s, ToggleResolved{Slug: "jane-aaaaaa"})
	s = Reduce(s, LinkCopied{Slug: "john-bbbbbb"})

	views := Views(s, "http://localhost:8080")
	require.Len(t, views, 2)
	assert.True(t, views[0].Expanded)
	assert.Len(t, views[0].Active, 1)
	assert.Len(t, views[0].Resolved, 1)
	assert.True(t, views[1].Copied)
	assert.Equal(t, "http://localhost:8080/share/john-bbbbbb", views[1].ShareLink)
}

func TestEmojiLabel(t *testing.T) {
	assert.Equal(t, "Sad face", EmojiLabel("sad"))
	assert.Equal(t, "unknown", EmojiLabel("unknown"))
}
