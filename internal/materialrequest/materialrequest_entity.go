package materialrequest

import (
	"time"

	"github.com/google/uuid"
)

const (
	StatusPending  = "PENDING"
	StatusApproved = "APPROVED"
	StatusRejected = "REJECTED"
)

type MaterialRequest struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey"`
	EmployeeID  uuid.UUID  `gorm:"type:uuid;not null;index"`
	Sector      string     `gorm:"size:80;not null"`
	Material    string     `gorm:"size:160;not null"`
	Quantity    int        `gorm:"not null"`
	Status      string     `gorm:"size:20;not null;default:PENDING"`
	DecidedByID *uuid.UUID `gorm:"type:uuid"`
	DecidedAt   *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (MaterialRequest) TableName() string {
	return "material_requests"
}
