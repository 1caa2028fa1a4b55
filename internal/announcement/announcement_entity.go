package announcement

import (
	"time"

	"github.com/google/uuid"
)

type Announcement struct {
	ID            uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Title         string     `gorm:"size:160;not null"`
	BodyHTML      string     `gorm:"column:body_html;type:text"`
	DocumentPath  string     `gorm:"size:200"`
	PublishedByID *uuid.UUID `gorm:"type:uuid"`
	PublishedAt   time.Time
}

func (Announcement) TableName() string {
	return "announcements"
}
