package materialrequest

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

//go:generate mockgen -source=materialrequest_repo.go -destination=mock/materialrequest_repo_mock.go -package=mock
type Repository interface {
	Create(ctx context.Context, req *MaterialRequest) error
	FindAll(ctx context.Context) ([]MaterialRequest, error)
	FindByEmployee(ctx context.Context, employeeID uuid.UUID) ([]MaterialRequest, error)
	FindByID(ctx context.Context, id uuid.UUID) (*MaterialRequest, error)
	Update(ctx context.Context, req *MaterialRequest) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, req *MaterialRequest) error {
	return r.db.WithContext(ctx).Create(req).Error
}

func (r *repository) FindAll(ctx context.Context) ([]MaterialRequest, error) {
	var reqs []MaterialRequest
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&reqs).Error
	return reqs, err
}

func (r *repository) FindByEmployee(ctx context.Context, employeeID uuid.UUID) ([]MaterialRequest, error) {
	var reqs []MaterialRequest
	err := r.db.WithContext(ctx).
		Where("employee_id = ?", employeeID).
		Order("created_at DESC").
		Find(&reqs).Error
	return reqs, err
}

func (r *repository) FindByID(ctx context.Context, id uuid.UUID) (*MaterialRequest, error) {
	var req MaterialRequest
	if err := r.db.WithContext(ctx).First(&req, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &req, nil
}

func (r *repository) Update(ctx context.Context, req *MaterialRequest) error {
	return r.db.WithContext(ctx).Save(req).Error
}

func (r *repository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&MaterialRequest{}, "id = ?", id).Error
}
