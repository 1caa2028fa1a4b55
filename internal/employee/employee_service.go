package employee

import (
	"context"
	"encoding/json"
	"errors"
	"regexp"
	"time"

	employeeerrors "github.com/Marllon-hub/hospital-plataforma/internal/employee/errors"
	"github.com/Marllon-hub/hospital-plataforma/internal/messaging/kafka"
	"github.com/Marllon-hub/hospital-plataforma/internal/schedule"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/sync/singleflight"
	"gorm.io/gorm"
)

const employeeOptionsKey = "employees:options"

const optionsCacheTTL = 10 * time.Minute

var nonDigits = regexp.MustCompile(`\D`)

// CleanCPF strips punctuation so "529.982.247-25" and "52998224725"
// index the same record.
func CleanCPF(raw string) string {
	return nonDigits.ReplaceAllString(raw, "")
}

//go:generate mockgen -source=employee_service.go -destination=mock/employee_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)
	GetAll(ctx context.Context) ([]EmployeeResponse, error)
	GetOptions(ctx context.Context) ([]EmployeeOption, error)
	GetByID(ctx context.Context, id string) (EmployeeResponse, error)
	Update(ctx context.Context, id string, req UpdateEmployeeRequest) (EmployeeResponse, error)
	Delete(ctx context.Context, id string) error
	ImportCSV(ctx context.Context, data []byte, actorID string) (ImportSummary, error)
}

// EmployeeOption is the trimmed shape cached for dropdowns.
type EmployeeOption struct {
	ID       string `json:"id"`
	FullName string `json:"full_name"`
}

type service struct {
	db     *gorm.DB
	repo   Repository
	outbox kafka.OutboxRepository
	rdb    *redis.Client
	sf     *singleflight.Group
	logger *zap.Logger
}

func NewService(db *gorm.DB, repo Repository, outbox kafka.OutboxRepository, rdb *redis.Client, logger ...*zap.Logger) Service {
	l := zap.L().Named("employee.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employee.service")
	}
	return &service{
		db:     db,
		repo:   repo,
		outbox: outbox,
		rdb:    rdb,
		sf:     &singleflight.Group{},
		logger: l,
	}
}

func (s *service) Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error) {
	cpf := CleanCPF(req.CPF)
	if len(cpf) != 11 {
		return EmployeeResponse{}, employeeerrors.ErrInvalidCPF
	}

	exists, err := s.repo.ExistsByCPF(ctx, cpf)
	if err != nil {
		return EmployeeResponse{}, err
	}
	if exists {
		return EmployeeResponse{}, employeeerrors.ErrCPFAlreadyRegistered
	}

	policy := req.ShiftPolicy
	if policy != "" {
		normalized, ok := schedule.NormalizePolicy(policy)
		if !ok {
			return EmployeeResponse{}, employeeerrors.ErrInvalidShiftPolicy
		}
		policy = normalized
	} else {
		policy = schedule.PolicyWeekday9to5
	}

	admissionDate, err := parseOptionalDate(req.AdmissionDate)
	if err != nil {
		return EmployeeResponse{}, err
	}
	birthDate, err := parseOptionalDate(req.BirthDate)
	if err != nil {
		return EmployeeResponse{}, err
	}
	rotationAnchor, err := parseOptionalDate(req.RotationAnchor)
	if err != nil {
		return EmployeeResponse{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return EmployeeResponse{}, err
	}

	role := req.Role
	if role == "" {
		role = "FUNCIONARIO"
	}

	emp := &Employee{
		ID:             uuid.New(),
		FullName:       req.FullName,
		CPF:            cpf,
		PasswordHash:   string(hash),
		Role:           role,
		Status:         StatusActive,
		Phone:          req.Phone,
		Email:          req.Email,
		Registration:   req.Registration,
		Position:       req.Position,
		AdmissionDate:  admissionDate,
		BirthDate:      birthDate,
		EmploymentType: req.EmploymentType,
		WeeklyHours:    req.WeeklyHours,
		Notes:          req.Notes,
		ShiftPolicy:    policy,
		RotationAnchor: rotationAnchor,
	}
	if req.DepartmentID != nil && *req.DepartmentID != "" {
		id, err := uuid.Parse(*req.DepartmentID)
		if err != nil {
			return EmployeeResponse{}, employeeerrors.ErrDepartmentNotFound
		}
		emp.DepartmentID = &id
	}

	if err := s.repo.Create(ctx, emp); err != nil {
		if isUniqueViolation(err) {
			return EmployeeResponse{}, employeeerrors.ErrCPFAlreadyRegistered
		}
		s.logger.Error("create employee persist failed", zap.Error(err))
		return EmployeeResponse{}, err
	}

	s.invalidateOptions(ctx)

	s.logger.Info("employee created",
		zap.String("employee_id", emp.ID.String()),
		zap.String("role", emp.Role),
	)

	return mapToResponse(*emp), nil
}

func (s *service) GetAll(ctx context.Context) ([]EmployeeResponse, error) {
	employees, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	resp := make([]EmployeeResponse, len(employees))
	for i, e := range employees {
		resp[i] = mapToResponse(e)
	}
	return resp, nil
}

// GetOptions serves the name dropdown through redis; singleflight keeps
// a cold cache from stampeding the database.
func (s *service) GetOptions(ctx context.Context) ([]EmployeeOption, error) {
	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, employeeOptionsKey).Result(); err == nil {
			var opts []EmployeeOption
			if err := json.Unmarshal([]byte(cached), &opts); err == nil {
				return opts, nil
			}
		}
	}

	v, err, _ := s.sf.Do(employeeOptionsKey, func() (any, error) {
		employees, err := s.repo.FindActive(ctx, nil)
		if err != nil {
			return nil, err
		}

		opts := make([]EmployeeOption, len(employees))
		for i, e := range employees {
			opts[i] = EmployeeOption{ID: e.ID.String(), FullName: e.FullName}
		}

		if s.rdb != nil {
			if data, err := json.Marshal(opts); err == nil {
				s.rdb.Set(ctx, employeeOptionsKey, data, optionsCacheTTL)
			}
		}
		return opts, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]EmployeeOption), nil
}

func (s *service) GetByID(ctx context.Context, id string) (EmployeeResponse, error) {
	eid, err := uuid.Parse(id)
	if err != nil {
		return EmployeeResponse{}, employeeerrors.ErrEmployeeNotFound
	}

	emp, err := s.repo.FindByID(ctx, eid)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return EmployeeResponse{}, employeeerrors.ErrEmployeeNotFound
		}
		return EmployeeResponse{}, err
	}
	return mapToResponse(*emp), nil
}

func (s *service) Update(ctx context.Context, id string, req UpdateEmployeeRequest) (EmployeeResponse, error) {
	eid, err := uuid.Parse(id)
	if err != nil {
		return EmployeeResponse{}, employeeerrors.ErrEmployeeNotFound
	}

	emp, err := s.repo.FindByID(ctx, eid)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return EmployeeResponse{}, employeeerrors.ErrEmployeeNotFound
		}
		return EmployeeResponse{}, err
	}

	admissionDate, err := parseOptionalDate(req.AdmissionDate)
	if err != nil {
		return EmployeeResponse{}, err
	}
	birthDate, err := parseOptionalDate(req.BirthDate)
	if err != nil {
		return EmployeeResponse{}, err
	}
	rotationAnchor, err := parseOptionalDate(req.RotationAnchor)
	if err != nil {
		return EmployeeResponse{}, err
	}

	if req.ShiftPolicy != "" {
		normalized, ok := schedule.NormalizePolicy(req.ShiftPolicy)
		if !ok {
			return EmployeeResponse{}, employeeerrors.ErrInvalidShiftPolicy
		}
		emp.ShiftPolicy = normalized
	}

	emp.FullName = req.FullName
	emp.Phone = req.Phone
	emp.Email = req.Email
	emp.Registration = req.Registration
	emp.Position = req.Position
	emp.EmploymentType = req.EmploymentType
	emp.WeeklyHours = req.WeeklyHours
	emp.Notes = req.Notes
	if req.Status != "" {
		emp.Status = req.Status
	}
	if admissionDate != nil {
		emp.AdmissionDate = admissionDate
	}
	if birthDate != nil {
		emp.BirthDate = birthDate
	}
	if rotationAnchor != nil {
		emp.RotationAnchor = rotationAnchor
	}
	if req.DepartmentID != nil {
		if *req.DepartmentID == "" {
			emp.DepartmentID = nil
		} else {
			did, err := uuid.Parse(*req.DepartmentID)
			if err != nil {
				return EmployeeResponse{}, employeeerrors.ErrDepartmentNotFound
			}
			emp.DepartmentID = &did
		}
	}

	if err := s.repo.Update(ctx, emp); err != nil {
		return EmployeeResponse{}, err
	}

	s.invalidateOptions(ctx)
	return mapToResponse(*emp), nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	eid, err := uuid.Parse(id)
	if err != nil {
		return employeeerrors.ErrEmployeeNotFound
	}

	if _, err := s.repo.FindByID(ctx, eid); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return employeeerrors.ErrEmployeeNotFound
		}
		return err
	}

	if err := s.repo.Delete(ctx, eid); err != nil {
		return err
	}

	s.invalidateOptions(ctx)
	return nil
}

func (s *service) invalidateOptions(ctx context.Context) {
	if s.rdb == nil {
		return
	}
	if err := s.rdb.Del(ctx, employeeOptionsKey).Err(); err != nil {
		s.logger.Warn("employee options cache invalidation failed", zap.Error(err))
	}
}

func parseOptionalDate(raw string) (*time.Time, error) {
	if raw == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return nil, employeeerrors.ErrInvalidDate
	}
	return &t, nil
}

func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

func mapToResponse(e Employee) EmployeeResponse {
	resp := EmployeeResponse{
		ID:             e.ID.String(),
		FullName:       e.FullName,
		CPF:            e.CPF,
		Role:           e.Role,
		Status:         e.Status,
		Phone:          e.Phone,
		Email:          e.Email,
		Registration:   e.Registration,
		Position:       e.Position,
		EmploymentType: e.EmploymentType,
		WeeklyHours:    e.WeeklyHours,
		Notes:          e.Notes,
		ShiftPolicy:    e.ShiftPolicy,
	}
	if e.DepartmentID != nil {
		v := e.DepartmentID.String()
		resp.DepartmentID = &v
	}
	if e.AdmissionDate != nil {
		resp.AdmissionDate = e.AdmissionDate.Format("2006-01-02")
	}
	if e.BirthDate != nil {
		resp.BirthDate = e.BirthDate.Format("2006-01-02")
	}
	if e.RotationAnchor != nil {
		resp.RotationAnchor = e.RotationAnchor.Format("2006-01-02")
	}
	return resp
}
