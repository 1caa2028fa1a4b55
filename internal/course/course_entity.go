package course

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Course struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	Title         string    `gorm:"size:160;not null"`
	Description   string
	VideoURL      string `gorm:"column:video_url;size:300"`
	DocumentPath  string `gorm:"size:200"`
	WorkloadHours int    `gorm:"not null;default:0"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
	DeletedAt     gorm.DeletedAt `gorm:"index"`
}

func (Course) TableName() string {
	return "courses"
}

type Completion struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	CourseID        uuid.UUID `gorm:"type:uuid;not null"`
	EmployeeID      uuid.UUID `gorm:"type:uuid;not null"`
	CompletedAt     time.Time `gorm:"type:date;not null"`
	CertificateCode string    `gorm:"size:40;not null;uniqueIndex"`
	CertificatePath string    `gorm:"size:200"`
	CreatedAt       time.Time
}

func (Completion) TableName() string {
	return "course_completions"
}
