package department_test

import (
	"context"
	"testing"

	"github.com/Marllon-hub/hospital-plataforma/internal/department"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

type fakeDepartmentRepository struct {
	createFn     func(ctx context.Context, d *department.Department) error
	findAllFn    func(ctx context.Context) ([]department.Department, error)
	findByIDFn   func(ctx context.Context, id uuid.UUID) (*department.Department, error)
	findByNameFn func(ctx context.Context, name string) (*department.Department, error)
	updateFn     func(ctx context.Context, d *department.Department) error
	deleteFn     func(ctx context.Context, id uuid.UUID) error
}

func (f *fakeDepartmentRepository) Create(ctx context.Context, d *department.Department) error {
	if f.createFn != nil {
		return f.createFn(ctx, d)
	}
	return nil
}

func (f *fakeDepartmentRepository) FindAll(ctx context.Context) ([]department.Department, error) {
	if f.findAllFn != nil {
		return f.findAllFn(ctx)
	}
	return nil, nil
}

func (f *fakeDepartmentRepository) FindByID(ctx context.Context, id uuid.UUID) (*department.Department, error) {
	if f.findByIDFn != nil {
		return f.findByIDFn(ctx, id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeDepartmentRepository) FindByName(ctx context.Context, name string) (*department.Department, error) {
	if f.findByNameFn != nil {
		return f.findByNameFn(ctx, name)
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeDepartmentRepository) Update(ctx context.Context, d *department.Department) error {
	if f.updateFn != nil {
		return f.updateFn(ctx, d)
	}
	return nil
}

func (f *fakeDepartmentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if f.deleteFn != nil {
		return f.deleteFn(ctx, id)
	}
	return nil
}

func TestDepartmentService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("success trims name", func(t *testing.T) {
		repo := &fakeDepartmentRepository{}
		svc := department.NewService(repo)

		resp, err := svc.Create(ctx, department.CreateDepartmentRequest{Name: "  UTI  "})

		assert.NoError(t, err)
		assert.Equal(t, "UTI", resp.Name)
		assert.NotEmpty(t, resp.ID)
	})

	t.Run("negative duplicate name", func(t *testing.T) {
		repo := &fakeDepartmentRepository{
			findByNameFn: func(ctx context.Context, name string) (*department.Department, error) {
				return &department.Department{ID: uuid.New(), Name: name}, nil
			},
		}
		svc := department.NewService(repo)

		_, err := svc.Create(ctx, department.CreateDepartmentRequest{Name: "UTI"})
		assert.Equal(t, department.ErrDepartmentNameTaken, err)
	})
}

func TestDepartmentService_Delete_NotFound(t *testing.T) {
	svc := department.NewService(&fakeDepartmentRepository{})

	err := svc.Delete(context.Background(), uuid.New().String())
	assert.Equal(t, department.ErrDepartmentNotFound, err)
}
