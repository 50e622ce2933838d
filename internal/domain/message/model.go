package message

import "time"

type Message struct {
	ID               string    `gorm:"type:uuid;primaryKey"`
	Content          string    `gorm:"type:text;not null"`
	Emoji            string    `gorm:"type:text;not null"`
	ExpectedResponse *string   `gorm:"type:text"`
	Done             bool      `gorm:"not null;default:false"`
	CreatedAt        time.Time `gorm:"autoCreateTime"`
	PersonID         string    `gorm:"type:uuid;index;not null"`
}

func (Message) TableName() string {
	return "messages"
}

// SubmitInput is an anonymous submission against a share link.
// ExpectedResponse is nil when the visitor left it out.
type SubmitInput struct {
	Content          string
	Emoji            string
	Slug             string
	ExpectedResponse *string
}

// Active reports messages the owner has not resolved yet.
func Active(messages []Message) []Message {
	return filterDone(messages, false)
}

func Resolved(messages []Message) []Message {
	return filterDone(messages, true)
}

func filterDone(messages []Message, done bool) []Message {
	result := make([]Message, 0, len(messages))
	for _, msg := range messages {
		if msg.Done == done {
			result = append(result, msg)
		}
	}
	return result
}
