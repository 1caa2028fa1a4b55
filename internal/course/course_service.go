package course

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/Marllon-hub/hospital-plataforma/internal/events"
	"github.com/Marllon-hub/hospital-plataforma/internal/messaging/kafka"
	"github.com/Marllon-hub/hospital-plataforma/internal/schedule"
	"github.com/Marllon-hub/hospital-plataforma/internal/shared/apperror"
	"github.com/Marllon-hub/hospital-plataforma/internal/shared/contextutil"
	"github.com/Marllon-hub/hospital-plataforma/internal/shared/counter"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const certificateCounterType = "certificate"

var (
	ErrCourseNotFound = apperror.New(
		"COURSE_NOT_FOUND",
		"Course not found",
		http.StatusNotFound,
	)

	ErrAlreadyCompleted = apperror.New(
		"COURSE_ALREADY_COMPLETED",
		"This course was already completed by the employee",
		http.StatusConflict,
	)

	ErrCompletionNotFound = apperror.New(
		"COMPLETION_NOT_FOUND",
		"Course completion not found",
		http.StatusNotFound,
	)

	ErrInvalidCompletionDate = apperror.New(
		"INVALID_COMPLETION_DATE",
		"Completion date must be in YYYY-MM-DD format and not in the future",
		http.StatusBadRequest,
	)
)

//go:generate mockgen -source=course_service.go -destination=mock/course_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateCourseRequest) (CourseResponse, error)
	GetAll(ctx context.Context) ([]CourseResponse, error)
	GetByID(ctx context.Context, id string) (CourseResponse, error)
	Update(ctx context.Context, id string, req UpdateCourseRequest) (CourseResponse, error)
	Delete(ctx context.Context, id string) error

	Complete(ctx context.Context, courseID, employeeID string, req CompleteCourseRequest) (CompletionResponse, error)
	MyCompletions(ctx context.Context, employeeID string) ([]CompletionResponse, error)
	CourseCompletions(ctx context.Context, courseID string) ([]CompletionResponse, error)
	ValidateCertificate(ctx context.Context, code string) (CertificateValidation, error)
	RenderCertificate(ctx context.Context, completionID string) (string, error)
}

type service struct {
	db      *gorm.DB
	repo    Repository
	counter counter.Repository
	dir     schedule.Directory
	outbox  kafka.OutboxRepository
	logger  *zap.Logger
}

func NewService(db *gorm.DB, repo Repository, counterRepo counter.Repository, dir schedule.Directory, outbox kafka.OutboxRepository) Service {
	return &service{
		db:      db,
		repo:    repo,
		counter: counterRepo,
		dir:     dir,
		outbox:  outbox,
		logger:  zap.L().Named("course.service"),
	}
}

func (s *service) Create(ctx context.Context, req CreateCourseRequest) (CourseResponse, error) {
	c := &Course{
		ID:            uuid.New(),
		Title:         req.Title,
		Description:   req.Description,
		VideoURL:      req.VideoURL,
		DocumentPath:  req.DocumentPath,
		WorkloadHours: req.WorkloadHours,
	}
	if err := s.repo.Create(ctx, c); err != nil {
		return CourseResponse{}, err
	}
	return mapCourseToResponse(*c), nil
}

func (s *service) GetAll(ctx context.Context) ([]CourseResponse, error) {
	courses, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	resp := make([]CourseResponse, len(courses))
	for i, c := range courses {
		resp[i] = mapCourseToResponse(c)
	}
	return resp, nil
}

func (s *service) GetByID(ctx context.Context, id string) (CourseResponse, error) {
	c, err := s.findCourse(ctx, id)
	if err != nil {
		return CourseResponse{}, err
	}
	return mapCourseToResponse(*c), nil
}

func (s *service) Update(ctx context.Context, id string, req UpdateCourseRequest) (CourseResponse, error) {
	c, err := s.findCourse(ctx, id)
	if err != nil {
		return CourseResponse{}, err
	}

	c.Title = req.Title
	c.Description = req.Description
	c.VideoURL = req.VideoURL
	c.DocumentPath = req.DocumentPath
	c.WorkloadHours = req.WorkloadHours

	if err := s.repo.Update(ctx, c); err != nil {
		return CourseResponse{}, err
	}
	return mapCourseToResponse(*c), nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	c, err := s.findCourse(ctx, id)
	if err != nil {
		return err
	}
	return s.repo.Delete(ctx, c.ID)
}

// Complete records a course completion and issues the certificate: a
// sequential per-year code from the atomic counter, plus a
// course.completed event for the consumer that renders the PDF. The
// completion row and the event commit together.
func (s *service) Complete(ctx context.Context, courseID, employeeID string, req CompleteCourseRequest) (CompletionResponse, error) {
	c, err := s.findCourse(ctx, courseID)
	if err != nil {
		return CompletionResponse{}, err
	}

	eid, err := uuid.Parse(employeeID)
	if err != nil {
		return CompletionResponse{}, apperror.ErrUnauthorized
	}
	emp, err := s.dir.Get(ctx, eid)
	if err != nil {
		return CompletionResponse{}, err
	}

	completedAt := time.Now()
	if req.CompletedAt != "" {
		parsed, err := time.Parse("2006-01-02", req.CompletedAt)
		if err != nil || parsed.After(time.Now().AddDate(0, 0, 1)) {
			return CompletionResponse{}, ErrInvalidCompletionDate
		}
		completedAt = parsed
	}

	if _, err := s.repo.FindCompletion(ctx, c.ID, eid); err == nil {
		return CompletionResponse{}, ErrAlreadyCompleted
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return CompletionResponse{}, err
	}

	year := completedAt.Year()
	seq, err := s.counter.GetNextValue(ctx, year, certificateCounterType)
	if err != nil {
		return CompletionResponse{}, err
	}
	code := fmt.Sprintf("CERT-%d-%05d", year, seq)

	comp := &Completion{
		ID:              uuid.New(),
		CourseID:        c.ID,
		EmployeeID:      eid,
		CompletedAt:     completedAt,
		CertificateCode: code,
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		qtx := s.repo.WithTx(tx)

		if err := qtx.CreateCompletion(ctx, comp); err != nil {
			if isUniqueViolation(err) {
				return ErrAlreadyCompleted
			}
			return err
		}

		return s.enqueueCompletedEvent(ctx, tx, comp, c.Title, emp.FullName)
	})
	if err != nil {
		return CompletionResponse{}, err
	}

	s.logger.Info("course completed",
		zap.String("course_id", c.ID.String()),
		zap.String("employee_id", eid.String()),
		zap.String("certificate_code", code),
	)

	resp := mapCompletionToResponse(*comp)
	resp.CourseTitle = c.Title
	return resp, nil
}

func (s *service) MyCompletions(ctx context.Context, employeeID string) ([]CompletionResponse, error) {
	eid, err := uuid.Parse(employeeID)
	if err != nil {
		return nil, apperror.ErrUnauthorized
	}

	comps, err := s.repo.ListCompletionsByEmployee(ctx, eid)
	if err != nil {
		return nil, err
	}
	return s.mapCompletionsWithTitles(ctx, comps), nil
}

func (s *service) CourseCompletions(ctx context.Context, courseID string) ([]CompletionResponse, error) {
	c, err := s.findCourse(ctx, courseID)
	if err != nil {
		return nil, err
	}

	comps, err := s.repo.ListCompletionsByCourse(ctx, c.ID)
	if err != nil {
		return nil, err
	}

	resp := make([]CompletionResponse, len(comps))
	for i, comp := range comps {
		resp[i] = mapCompletionToResponse(comp)
		resp[i].CourseTitle = c.Title
	}
	return resp, nil
}

// ValidateCertificate is public: an invalid code is a negative result,
// not an error.
func (s *service) ValidateCertificate(ctx context.Context, code string) (CertificateValidation, error) {
	comp, err := s.repo.FindCompletionByCode(ctx, code)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return CertificateValidation{Valid: false, Code: code}, nil
		}
		return CertificateValidation{}, err
	}

	result := CertificateValidation{
		Valid:       true,
		Code:        comp.CertificateCode,
		CompletedAt: comp.CompletedAt.Format("2006-01-02"),
	}

	if c, err := s.repo.FindByID(ctx, comp.CourseID); err == nil {
		result.CourseTitle = c.Title
	}
	if names, err := s.dir.NamesByIDs(ctx, []uuid.UUID{comp.EmployeeID}); err == nil {
		result.EmployeeName = names[comp.EmployeeID]
	}
	return result, nil
}

func (s *service) findCourse(ctx context.Context, id string) (*Course, error) {
	cid, err := uuid.Parse(id)
	if err != nil {
		return nil, ErrCourseNotFound
	}

	c, err := s.repo.FindByID(ctx, cid)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCourseNotFound
		}
		return nil, err
	}
	return c, nil
}

func (s *service) mapCompletionsWithTitles(ctx context.Context, comps []Completion) []CompletionResponse {
	titles := make(map[uuid.UUID]string)
	resp := make([]CompletionResponse, len(comps))

	for i, comp := range comps {
		resp[i] = mapCompletionToResponse(comp)
		title, ok := titles[comp.CourseID]
		if !ok {
			if c, err := s.repo.FindByID(ctx, comp.CourseID); err == nil {
				title = c.Title
			}
			titles[comp.CourseID] = title
		}
		resp[i].CourseTitle = title
	}
	return resp
}

func (s *service) enqueueCompletedEvent(ctx context.Context, tx *gorm.DB, comp *Completion, courseTitle, employeeName string) error {
	if s.outbox == nil {
		return nil
	}

	payload, err := json.Marshal(events.CourseCompletedEvent{
		CompletionID:    comp.ID.String(),
		CourseID:        comp.CourseID.String(),
		CourseTitle:     courseTitle,
		EmployeeID:      comp.EmployeeID.String(),
		EmployeeName:    employeeName,
		CompletedAt:     comp.CompletedAt.Format("2006-01-02"),
		CertificateCode: comp.CertificateCode,
	})
	if err != nil {
		return err
	}

	return s.outbox.WithTx(tx).Create(ctx, kafka.OutboxEvent{
		ID:            uuid.New().String(),
		RequestID:     contextutil.GetRequestID(ctx),
		AggregateType: "course_completion",
		AggregateID:   comp.ID.String(),
		EventType:     events.TypeCourseCompleted,
		Topic:         events.TopicCourseCompleted,
		Payload:       payload,
		Status:        kafka.OutboxStatusPending,
	})
}

func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

func mapCourseToResponse(c Course) CourseResponse {
	return CourseResponse{
		ID:            c.ID.String(),
		Title:         c.Title,
		Description:   c.Description,
		VideoURL:      c.VideoURL,
		DocumentPath:  c.DocumentPath,
		WorkloadHours: c.WorkloadHours,
	}
}

func mapCompletionToResponse(comp Completion) CompletionResponse {
	return CompletionResponse{
		ID:              comp.ID.String(),
		CourseID:        comp.CourseID.String(),
		EmployeeID:      comp.EmployeeID.String(),
		CompletedAt:     comp.CompletedAt.Format("2006-01-02"),
		CertificateCode: comp.CertificateCode,
		CertificatePath: comp.CertificatePath,
	}
}
