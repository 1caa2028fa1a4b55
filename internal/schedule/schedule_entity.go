package schedule

import (
	"time"

	"github.com/google/uuid"
)

type ScheduleMonth struct {
	ID           uuid.UUID  `gorm:"column:id;type:uuid;primaryKey"`
	Year         int        `gorm:"column:year;not null"`
	Month        int        `gorm:"column:month;not null"`
	DepartmentID *uuid.UUID `gorm:"column:department_id;type:uuid"`
	CreatedByID  *uuid.UUID `gorm:"column:created_by_id;type:uuid"`
	CreatedAt    time.Time  `gorm:"column:created_at"`

	Entries []ScheduleEntry `gorm:"foreignKey:ScheduleMonthID;constraint:OnDelete:CASCADE"`
}

func (ScheduleMonth) TableName() string {
	return "schedule_months"
}

type ScheduleEntry struct {
	ID              uuid.UUID `gorm:"column:id;type:uuid;primaryKey"`
	ScheduleMonthID uuid.UUID `gorm:"column:schedule_month_id;type:uuid;not null;index:ix_schedule_entries_month_employee"`
	EmployeeID      uuid.UUID `gorm:"column:employee_id;type:uuid;not null;index:ix_schedule_entries_month_employee"`
	StartsAt        time.Time `gorm:"column:starts_at;type:timestamp;not null"`
	EndsAt          time.Time `gorm:"column:ends_at;type:timestamp;not null"`
	ShiftType       string    `gorm:"column:shift_type;type:varchar(30);not null"`
	Note            *string   `gorm:"column:note;type:varchar(200)"`
}

func (ScheduleEntry) TableName() string {
	return "schedule_entries"
}
