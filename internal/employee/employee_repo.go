package employee

import (
	"context"

	"github.com/Marllon-hub/hospital-plataforma/internal/scope"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

//go:generate mockgen -source=employee_repo.go -destination=mock/employee_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *gorm.DB) Repository

	Create(ctx context.Context, e *Employee) error
	FindAll(ctx context.Context) ([]Employee, error)
	FindActive(ctx context.Context, departmentID *uuid.UUID) ([]Employee, error)
	FindByID(ctx context.Context, id uuid.UUID) (*Employee, error)
	FindByCPF(ctx context.Context, cpf string) (*Employee, error)
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]Employee, error)
	ExistsByCPF(ctx context.Context, cpf string) (bool, error)
	Update(ctx context.Context, e *Employee) error
	Delete(ctx context.Context, id uuid.UUID) error
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

func (r *repository) Create(ctx context.Context, e *Employee) error {
	return r.db.WithContext(ctx).Create(e).Error
}

func (r *repository) FindAll(ctx context.Context) ([]Employee, error) {
	var employees []Employee
	err := r.db.WithContext(ctx).
		Order("full_name ASC").
		Find(&employees).Error
	return employees, err
}

func (r *repository) FindActive(ctx context.Context, departmentID *uuid.UUID) ([]Employee, error) {
	var employees []Employee
	err := r.db.WithContext(ctx).
		Scopes(scope.Active(), scope.Department(departmentID)).
		Order("full_name ASC").
		Find(&employees).Error
	return employees, err
}

func (r *repository) FindByID(ctx context.Context, id uuid.UUID) (*Employee, error) {
	var e Employee
	if err := r.db.WithContext(ctx).First(&e, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *repository) FindByCPF(ctx context.Context, cpf string) (*Employee, error) {
	var e Employee
	if err := r.db.WithContext(ctx).First(&e, "cpf = ?", cpf).Error; err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *repository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]Employee, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var employees []Employee
	err := r.db.WithContext(ctx).
		Where("id IN ?", ids).
		Find(&employees).Error
	return employees, err
}

func (r *repository) ExistsByCPF(ctx context.Context, cpf string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&Employee{}).
		Where("cpf = ?", cpf).
		Count(&count).Error
	return count > 0, err
}

func (r *repository) Update(ctx context.Context, e *Employee) error {
	return r.db.WithContext(ctx).Save(e).Error
}

// Delete is a soft delete via gorm.DeletedAt.
func (r *repository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&Employee{}, "id = ?", id).Error
}
