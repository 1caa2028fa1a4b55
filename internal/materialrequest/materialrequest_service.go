package materialrequest

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/Marllon-hub/hospital-plataforma/internal/schedule"
	"github.com/Marllon-hub/hospital-plataforma/internal/shared/apperror"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var (
	ErrRequestNotFound = apperror.New(
		"MATERIAL_REQUEST_NOT_FOUND",
		"Material request not found",
		http.StatusNotFound,
	)

	ErrRequestAlreadyDecided = apperror.New(
		"MATERIAL_REQUEST_ALREADY_DECIDED",
		"This request has already been approved or rejected",
		http.StatusConflict,
	)

	ErrInvalidDecision = apperror.New(
		"INVALID_DECISION",
		"Decision must be APPROVED or REJECTED",
		http.StatusBadRequest,
	)
)

//go:generate mockgen -source=materialrequest_service.go -destination=mock/materialrequest_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, employeeID string, req CreateMaterialRequestRequest) (MaterialRequestResponse, error)
	GetAll(ctx context.Context) ([]MaterialRequestResponse, error)
	GetMine(ctx context.Context, employeeID string) ([]MaterialRequestResponse, error)
	Decide(ctx context.Context, id, deciderID string, req DecideMaterialRequestRequest) (MaterialRequestResponse, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	repo   Repository
	dir    schedule.Directory
	logger *zap.Logger
}

func NewService(repo Repository, dir schedule.Directory) Service {
	return &service{
		repo:   repo,
		dir:    dir,
		logger: zap.L().Named("materialrequest_service"),
	}
}

func (s *service) Create(ctx context.Context, employeeID string, req CreateMaterialRequestRequest) (MaterialRequestResponse, error) {
	eid, err := uuid.Parse(employeeID)
	if err != nil {
		return MaterialRequestResponse{}, apperror.ErrUnauthorized
	}

	mr := &MaterialRequest{
		ID:         uuid.New(),
		EmployeeID: eid,
		Sector:     strings.TrimSpace(req.Sector),
		Material:   strings.TrimSpace(req.Material),
		Quantity:   req.Quantity,
		Status:     StatusPending,
	}
	if err := s.repo.Create(ctx, mr); err != nil {
		return MaterialRequestResponse{}, err
	}

	s.logger.Info("material request created",
		zap.String("request_id", mr.ID.String()),
		zap.String("employee_id", eid.String()),
	)
	return s.toResponse(ctx, *mr), nil
}

func (s *service) GetAll(ctx context.Context) ([]MaterialRequestResponse, error) {
	reqs, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return s.toListResponse(ctx, reqs), nil
}

func (s *service) GetMine(ctx context.Context, employeeID string) ([]MaterialRequestResponse, error) {
	eid, err := uuid.Parse(employeeID)
	if err != nil {
		return nil, apperror.ErrUnauthorized
	}

	reqs, err := s.repo.FindByEmployee(ctx, eid)
	if err != nil {
		return nil, err
	}
	return s.toListResponse(ctx, reqs), nil
}

func (s *service) Decide(ctx context.Context, id, deciderID string, req DecideMaterialRequestRequest) (MaterialRequestResponse, error) {
	decision := strings.ToUpper(strings.TrimSpace(req.Decision))
	if decision != StatusApproved && decision != StatusRejected {
		return MaterialRequestResponse{}, ErrInvalidDecision
	}

	did, err := uuid.Parse(deciderID)
	if err != nil {
		return MaterialRequestResponse{}, apperror.ErrUnauthorized
	}

	mr, err := s.findRequest(ctx, id)
	if err != nil {
		return MaterialRequestResponse{}, err
	}
	if mr.Status != StatusPending {
		return MaterialRequestResponse{}, ErrRequestAlreadyDecided
	}

	now := time.Now()
	mr.Status = decision
	mr.DecidedByID = &did
	mr.DecidedAt = &now
	if err := s.repo.Update(ctx, mr); err != nil {
		return MaterialRequestResponse{}, err
	}

	s.logger.Info("material request decided",
		zap.String("request_id", mr.ID.String()),
		zap.String("decision", decision),
		zap.String("decided_by", did.String()),
	)
	return s.toResponse(ctx, *mr), nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	mr, err := s.findRequest(ctx, id)
	if err != nil {
		return err
	}
	return s.repo.Delete(ctx, mr.ID)
}

func (s *service) findRequest(ctx context.Context, id string) (*MaterialRequest, error) {
	rid, err := uuid.Parse(id)
	if err != nil {
		return nil, ErrRequestNotFound
	}

	mr, err := s.repo.FindByID(ctx, rid)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRequestNotFound
		}
		return nil, err
	}
	return mr, nil
}

func (s *service) toResponse(ctx context.Context, mr MaterialRequest) MaterialRequestResponse {
	return s.toListResponse(ctx, []MaterialRequest{mr})[0]
}

func (s *service) toListResponse(ctx context.Context, reqs []MaterialRequest) []MaterialRequestResponse {
	ids := make([]uuid.UUID, 0, len(reqs)*2)
	for _, mr := range reqs {
		ids = append(ids, mr.EmployeeID)
		if mr.DecidedByID != nil {
			ids = append(ids, *mr.DecidedByID)
		}
	}
	names, err := s.dir.NamesByIDs(ctx, ids)
	if err != nil {
		s.logger.Warn("could not resolve employee names", zap.Error(err))
		names = map[uuid.UUID]string{}
	}

	res := make([]MaterialRequestResponse, len(reqs))
	for i, mr := range reqs {
		resp := MaterialRequestResponse{
			ID:           mr.ID.String(),
			EmployeeID:   mr.EmployeeID.String(),
			EmployeeName: names[mr.EmployeeID],
			Sector:       mr.Sector,
			Material:     mr.Material,
			Quantity:     mr.Quantity,
			Status:       mr.Status,
			CreatedAt:    mr.CreatedAt.Format(time.RFC3339),
		}
		if mr.DecidedByID != nil {
			resp.DecidedByID = mr.DecidedByID.String()
			resp.DecidedByName = names[*mr.DecidedByID]
		}
		if mr.DecidedAt != nil {
			resp.DecidedAt = mr.DecidedAt.Format(time.RFC3339)
		}
		res[i] = resp
	}
	return res
}
