package department

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/Marllon-hub/hospital-plataforma/internal/shared/apperror"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrDepartmentNotFound = apperror.New(
		"DEPARTMENT_NOT_FOUND",
		"Department not found",
		http.StatusNotFound,
	)

	ErrDepartmentNameTaken = apperror.New(
		"DEPARTMENT_NAME_TAKEN",
		"A department with this name already exists",
		http.StatusConflict,
	)
)

//go:generate mockgen -source=department_service.go -destination=mock/department_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateDepartmentRequest) (DepartmentResponse, error)
	GetAll(ctx context.Context) ([]DepartmentResponse, error)
	GetByID(ctx context.Context, id string) (DepartmentResponse, error)
	Update(ctx context.Context, id string, req UpdateDepartmentRequest) (DepartmentResponse, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Create(ctx context.Context, req CreateDepartmentRequest) (DepartmentResponse, error) {
	name := strings.TrimSpace(req.Name)

	if _, err := s.repo.FindByName(ctx, name); err == nil {
		return DepartmentResponse{}, ErrDepartmentNameTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return DepartmentResponse{}, err
	}

	dept := &Department{
		ID:   uuid.New(),
		Name: name,
	}
	if err := s.repo.Create(ctx, dept); err != nil {
		return DepartmentResponse{}, err
	}
	return mapToResponse(*dept), nil
}

func (s *service) GetAll(ctx context.Context) ([]DepartmentResponse, error) {
	depts, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return mapToListResponse(depts), nil
}

func (s *service) GetByID(ctx context.Context, id string) (DepartmentResponse, error) {
	did, err := uuid.Parse(id)
	if err != nil {
		return DepartmentResponse{}, ErrDepartmentNotFound
	}

	dept, err := s.repo.FindByID(ctx, did)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return DepartmentResponse{}, ErrDepartmentNotFound
		}
		return DepartmentResponse{}, err
	}
	return mapToResponse(*dept), nil
}

func (s *service) Update(ctx context.Context, id string, req UpdateDepartmentRequest) (DepartmentResponse, error) {
	did, err := uuid.Parse(id)
	if err != nil {
		return DepartmentResponse{}, ErrDepartmentNotFound
	}

	dept, err := s.repo.FindByID(ctx, did)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return DepartmentResponse{}, ErrDepartmentNotFound
		}
		return DepartmentResponse{}, err
	}

	dept.Name = strings.TrimSpace(req.Name)
	if err := s.repo.Update(ctx, dept); err != nil {
		return DepartmentResponse{}, err
	}
	return mapToResponse(*dept), nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	did, err := uuid.Parse(id)
	if err != nil {
		return ErrDepartmentNotFound
	}

	if _, err := s.repo.FindByID(ctx, did); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrDepartmentNotFound
		}
		return err
	}
	return s.repo.Delete(ctx, did)
}

func mapToResponse(d Department) DepartmentResponse {
	return DepartmentResponse{
		ID:   d.ID.String(),
		Name: d.Name,
	}
}

func mapToListResponse(depts []Department) []DepartmentResponse {
	res := make([]DepartmentResponse, len(depts))
	for i, d := range depts {
		res[i] = mapToResponse(d)
	}
	return res
}
