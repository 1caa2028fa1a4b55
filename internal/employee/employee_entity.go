package employee

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	StatusActive   = "ACTIVE"
	StatusInactive = "INACTIVE"
)

type Employee struct {
	ID             uuid.UUID  `gorm:"type:uuid;primaryKey"`
	FullName       string     `gorm:"size:120;not null"`
	CPF            string     `gorm:"column:cpf;size:11;not null;uniqueIndex"`
	PasswordHash   string     `gorm:"size:100;not null"`
	Role           string     `gorm:"size:20;not null;default:FUNCIONARIO"`
	Status         string     `gorm:"size:20;not null;default:ACTIVE"`
	Phone          string     `gorm:"size:20"`
	Email          string     `gorm:"size:120"`
	Registration   string     `gorm:"size:30"`
	DepartmentID   *uuid.UUID `gorm:"type:uuid"`
	Position       string     `gorm:"size:80"`
	AdmissionDate  *time.Time `gorm:"type:date"`
	BirthDate      *time.Time `gorm:"type:date"`
	EmploymentType string     `gorm:"size:30"`
	WeeklyHours    string     `gorm:"size:20"`
	Notes          string
	ShiftPolicy    string     `gorm:"size:30;not null;default:WEEKDAY_9TO5"`
	RotationAnchor *time.Time `gorm:"type:date"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
	DeletedAt      gorm.DeletedAt `gorm:"index"`
}

func (Employee) TableName() string {
	return "employees"
}
