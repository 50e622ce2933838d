// Package dashboard holds the owner's dashboard: an immutable state snapshot
// changed only through Reduce, a Controller that pairs the state with the
// JSON API, and the view helpers shared by the CLI and the HTML pages.
package dashboard

import "time"

type Message struct {
	ID               string    `json:"id"`
	Content          string    `json:"content"`
	Emoji            string    `json:"emoji"`
	ExpectedResponse *string   `json:"expectedResponse"`
	Done             bool      `json:"done"`
	CreatedAt        time.Time `json:"createdAt"`
	PersonID         string    `json:"personId"`
}

type Person struct {
	ID        string    `json:"id"`
	Slug      string    `json:"slug"`
	Name      string    `json:"name"`
	UserID    string    `json:"userId"`
	CreatedAt time.Time `json:"createdAt"`
	Messages  []Message `json:"messages"`
}

// EmojiOption is one choice on the share form.
type EmojiOption struct {
	Value string
	Label string
}

var EmojiOptions = []EmojiOption{
	{Value: "crying", Label: "Crying face"},
	{Value: "dead", Label: "Dead face"},
	{Value: "frown", Label: "Frown face"},
	{Value: "happy-open", Label: "Happy face"},
	{Value: "love-eyes", Label: "Love eyes face"},
	{Value: "puppy-face", Label: "Puppy face"},
	{Value: "sad", Label: "Sad face"},
	{Value: "satisfied", Label: "Satisfied face"},
	{Value: "smile", Label: "Smile face"},
	{Value: "surprised", Label: "Surprised face"},
	{Value: "wailing", Label: "Wailing face"},
	{Value: "wink", Label: "Wink face"},
}

// EmojiLabel falls back to the raw value for keys outside EmojiOptions.
func EmojiLabel(value string) string {
	for _, option := range EmojiOptions {
		if option.Value == value {
			return option.Label
		}
	}
	return value
}
