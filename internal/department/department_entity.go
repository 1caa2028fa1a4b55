package department

import (
	"time"

	"github.com/google/uuid"
)

type Department struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name      string    `gorm:"size:80;not null;uniqueIndex"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (Department) TableName() string {
	return "departments"
}
