package department

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

//go:generate mockgen -source=department_repo.go -destination=mock/department_repo_mock.go -package=mock
type Repository interface {
	Create(ctx context.Context, d *Department) error
	FindAll(ctx context.Context) ([]Department, error)
	FindByID(ctx context.Context, id uuid.UUID) (*Department, error)
	FindByName(ctx context.Context, name string) (*Department, error)
	Update(ctx context.Context, d *Department) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, d *Department) error {
	return r.db.WithContext(ctx).Create(d).Error
}

func (r *repository) FindAll(ctx context.Context) ([]Department, error) {
	var depts []Department
	err := r.db.WithContext(ctx).Order("name ASC").Find(&depts).Error
	return depts, err
}

func (r *repository) FindByID(ctx context.Context, id uuid.UUID) (*Department, error) {
	var d Department
	if err := r.db.WithContext(ctx).First(&d, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *repository) FindByName(ctx context.Context, name string) (*Department, error) {
	var d Department
	if err := r.db.WithContext(ctx).First(&d, "name = ?", name).Error; err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *repository) Update(ctx context.Context, d *Department) error {
	return r.db.WithContext(ctx).Save(d).Error
}

func (r *repository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&Department{}, "id = ?", id).Error
}
