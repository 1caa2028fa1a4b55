package scope

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Active filters a query to active records.
func Active() func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("status = ?", "ACTIVE")
	}
}

// Department filters a query to one department. A nil id is a no-op so
// "all departments" queries can share the same call site.
func Department(departmentID *uuid.UUID) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if departmentID == nil {
			return db
		}
		return db.Where("department_id = ?", *departmentID)
	}
}
