package course

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

//go:generate mockgen -source=course_repo.go -destination=mock/course_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *gorm.DB) Repository

	Create(ctx context.Context, c *Course) error
	FindAll(ctx context.Context) ([]Course, error)
	FindByID(ctx context.Context, id uuid.UUID) (*Course, error)
	Update(ctx context.Context, c *Course) error
	Delete(ctx context.Context, id uuid.UUID) error

	CreateCompletion(ctx context.Context, comp *Completion) error
	FindCompletion(ctx context.Context, courseID, employeeID uuid.UUID) (*Completion, error)
	FindCompletionByCode(ctx context.Context, code string) (*Completion, error)
	FindCompletionByID(ctx context.Context, id uuid.UUID) (*Completion, error)
	ListCompletionsByEmployee(ctx context.Context, employeeID uuid.UUID) ([]Completion, error)
	ListCompletionsByCourse(ctx context.Context, courseID uuid.UUID) ([]Completion, error)
	UpdateCompletion(ctx context.Context, comp *Completion) error
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

func (r *repository) Create(ctx context.Context, c *Course) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *repository) FindAll(ctx context.Context) ([]Course, error) {
	var courses []Course
	err := r.db.WithContext(ctx).Order("title ASC").Find(&courses).Error
	return courses, err
}

func (r *repository) FindByID(ctx context.Context, id uuid.UUID) (*Course, error) {
	var c Course
	if err := r.db.WithContext(ctx).First(&c, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *repository) Update(ctx context.Context, c *Course) error {
	return r.db.WithContext(ctx).Save(c).Error
}

func (r *repository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&Course{}, "id = ?", id).Error
}

func (r *repository) CreateCompletion(ctx context.Context, comp *Completion) error {
	return r.db.WithContext(ctx).Create(comp).Error
}

func (r *repository) FindCompletion(ctx context.Context, courseID, employeeID uuid.UUID) (*Completion, error) {
	var comp Completion
	err := r.db.WithContext(ctx).
		Where("course_id = ?", courseID).
		Where("employee_id = ?", employeeID).
		First(&comp).Error
	if err != nil {
		return nil, err
	}
	return &comp, nil
}

func (r *repository) FindCompletionByCode(ctx context.Context, code string) (*Completion, error) {
	var comp Completion
	if err := r.db.WithContext(ctx).First(&comp, "certificate_code = ?", code).Error; err != nil {
		return nil, err
	}
	return &comp, nil
}

func (r *repository) FindCompletionByID(ctx context.Context, id uuid.UUID) (*Completion, error) {
	var comp Completion
	if err := r.db.WithContext(ctx).First(&comp, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &comp, nil
}

func (r *repository) ListCompletionsByEmployee(ctx context.Context, employeeID uuid.UUID) ([]Completion, error) {
	var comps []Completion
	err := r.db.WithContext(ctx).
		Where("employee_id = ?", employeeID).
		Order("completed_at DESC").
		Find(&comps).Error
	return comps, err
}

func (r *repository) ListCompletionsByCourse(ctx context.Context, courseID uuid.UUID) ([]Completion, error) {
	var comps []Completion
	err := r.db.WithContext(ctx).
		Where("course_id = ?", courseID).
		Order("completed_at DESC").
		Find(&comps).Error
	return comps, err
}

func (r *repository) UpdateCompletion(ctx context.Context, comp *Completion) error {
	return r.db.WithContext(ctx).Save(comp).Error
}
