package message

import (
	"time"

	"github.com/google/uuid"
)

// messageTTL mirrors the hospital's retention rule: chat messages live
// for 15 hours and are then purged by the worker.
const messageTTL = 15 * time.Hour

type Message struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	SenderID    uuid.UUID `gorm:"type:uuid;not null"`
	RecipientID uuid.UUID `gorm:"type:uuid;not null"`
	Body        string
	FileName    string    `gorm:"size:200"`
	SentAt      time.Time `gorm:"not null"`
	ExpiresAt   time.Time `gorm:"not null;index"`
}

func (Message) TableName() string {
	return "messages"
}
