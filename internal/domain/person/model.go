package person

import (
	"time"

	messagedomain "grievance-portal-go/internal/domain/message"
)

type Person struct {
	ID        string                  `gorm:"type:uuid;primaryKey"`
	Slug      string                  `gorm:"uniqueIndex;not null"`
	Name      string                  `gorm:"not null"`
	UserID    string                  `gorm:"type:uuid;index;not null"`
	CreatedAt time.Time               `gorm:"autoCreateTime"`
	Messages  []messagedomain.Message `gorm:"foreignKey:PersonID;constraint:OnDelete:CASCADE"`
}

func (Person) TableName() string {
	return "persons"
}
