package schedule

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

//go:generate mockgen -source=schedule_repo.go -destination=mock/schedule_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *gorm.DB) Repository

	FindMonthByKey(ctx context.Context, year, month int, departmentID *uuid.UUID) (*ScheduleMonth, error)
	FindMonthByID(ctx context.Context, id uuid.UUID) (*ScheduleMonth, error)
	ListMonths(ctx context.Context) ([]ScheduleMonth, error)
	CreateMonth(ctx context.Context, m *ScheduleMonth) error
	DeleteMonth(ctx context.Context, id uuid.UUID) error

	DeleteEntriesForEmployee(ctx context.Context, monthID, employeeID uuid.UUID) error
	CreateEntries(ctx context.Context, entries []ScheduleEntry) error
	FindEntryCoveringDay(ctx context.Context, monthID, employeeID uuid.UUID, dayStart, nextDay time.Time) (*ScheduleEntry, error)
	SaveEntry(ctx context.Context, e *ScheduleEntry) error
	ListEntriesByMonth(ctx context.Context, monthID uuid.UUID) ([]ScheduleEntry, error)
	ListEntriesByMonthAndEmployee(ctx context.Context, monthID, employeeID uuid.UUID) ([]ScheduleEntry, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *gorm.DB) Repository {
	return &repository{db: tx}
}

func (r *repository) FindMonthByKey(ctx context.Context, year, month int, departmentID *uuid.UUID) (*ScheduleMonth, error) {
	q := r.db.WithContext(ctx).
		Where("year = ?", year).
		Where("month = ?", month)

	if departmentID == nil {
		q = q.Where("department_id IS NULL")
	} else {
		q = q.Where("department_id = ?", *departmentID)
	}

	var m ScheduleMonth
	if err := q.First(&m).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *repository) FindMonthByID(ctx context.Context, id uuid.UUID) (*ScheduleMonth, error) {
	var m ScheduleMonth
	err := r.db.WithContext(ctx).First(&m, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *repository) ListMonths(ctx context.Context) ([]ScheduleMonth, error) {
	var months []ScheduleMonth
	err := r.db.WithContext(ctx).
		Order("year DESC, month DESC").
		Find(&months).Error
	return months, err
}

func (r *repository) CreateMonth(ctx context.Context, m *ScheduleMonth) error {
	return r.db.WithContext(ctx).Create(m).Error
}

// DeleteMonth relies on the ON DELETE CASCADE of schedule_entries.
func (r *repository) DeleteMonth(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&ScheduleMonth{}, "id = ?", id).Error
}

func (r *repository) DeleteEntriesForEmployee(ctx context.Context, monthID, employeeID uuid.UUID) error {
	return r.db.WithContext(ctx).
		Where("schedule_month_id = ?", monthID).
		Where("employee_id = ?", employeeID).
		Delete(&ScheduleEntry{}).Error
}

func (r *repository) CreateEntries(ctx context.Context, entries []ScheduleEntry) error {
	if len(entries) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&entries).Error
}

// FindEntryCoveringDay locates the single entry whose start falls inside
// [dayStart, nextDay). Membership by day boundary, not timestamp
// equality, so overridden windows are still found.
func (r *repository) FindEntryCoveringDay(ctx context.Context, monthID, employeeID uuid.UUID, dayStart, nextDay time.Time) (*ScheduleEntry, error) {
	var e ScheduleEntry
	err := r.db.WithContext(ctx).
		Where("schedule_month_id = ?", monthID).
		Where("employee_id = ?", employeeID).
		Where("starts_at >= ?", dayStart).
		Where("starts_at < ?", nextDay).
		First(&e).Error
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *repository) SaveEntry(ctx context.Context, e *ScheduleEntry) error {
	return r.db.WithContext(ctx).Save(e).Error
}

func (r *repository) ListEntriesByMonth(ctx context.Context, monthID uuid.UUID) ([]ScheduleEntry, error) {
	var entries []ScheduleEntry
	err := r.db.WithContext(ctx).
		Where("schedule_month_id = ?", monthID).
		Order("employee_id ASC, starts_at ASC").
		Find(&entries).Error
	return entries, err
}

func (r *repository) ListEntriesByMonthAndEmployee(ctx context.Context, monthID, employeeID uuid.UUID) ([]ScheduleEntry, error) {
	var entries []ScheduleEntry
	err := r.db.WithContext(ctx).
		Where("schedule_month_id = ?", monthID).
		Where("employee_id = ?", employeeID).
		Order("starts_at ASC").
		Find(&entries).Error
	return entries, err
}
