package announcement

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
	ErrAnnouncementNotFound = apperror.New(
		"ANNOUNCEMENT_NOT_FOUND",
		"Announcement not found",
		http.StatusNotFound,
	)

	ErrEmptyAnnouncement = apperror.New(
		"EMPTY_ANNOUNCEMENT",
		"An announcement needs a body or an attached document",
		http.StatusBadRequest,
	)
)

//go:generate mockgen -source=announcement_service.go -destination=mock/announcement_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, publisherID string, req CreateAnnouncementRequest) (AnnouncementResponse, error)
	GetAll(ctx context.Context) ([]AnnouncementResponse, error)
	GetByID(ctx context.Context, id string) (AnnouncementResponse, error)
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
		logger: zap.L().Named("announcement_service"),
	}
}

func (s *service) Create(ctx context.Context, publisherID string, req CreateAnnouncementRequest) (AnnouncementResponse, error) {
	body := strings.TrimSpace(req.BodyHTML)
	doc := strings.TrimSpace(req.DocumentPath)
	if body == "" && doc == "" {
		return AnnouncementResponse{}, ErrEmptyAnnouncement
	}

	pid, err := uuid.Parse(publisherID)
	if err != nil {
		return AnnouncementResponse{}, apperror.ErrUnauthorized
	}

	a := &Announcement{
		ID:            uuid.New(),
		Title:         strings.TrimSpace(req.Title),
		BodyHTML:      body,
		DocumentPath:  doc,
		PublishedByID: &pid,
		PublishedAt:   time.Now(),
	}
	if err := s.repo.Create(ctx, a); err != nil {
		return AnnouncementResponse{}, err
	}

	s.logger.Info("announcement published",
		zap.String("announcement_id", a.ID.String()),
		zap.String("published_by", pid.String()),
	)
	return s.toResponse(ctx, *a), nil
}

func (s *service) GetAll(ctx context.Context) ([]AnnouncementResponse, error) {
	list, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return s.toListResponse(ctx, list), nil
}

func (s *service) GetByID(ctx context.Context, id string) (AnnouncementResponse, error) {
	aid, err := uuid.Parse(id)
	if err != nil {
		return AnnouncementResponse{}, ErrAnnouncementNotFound
	}

	a, err := s.repo.FindByID(ctx, aid)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return AnnouncementResponse{}, ErrAnnouncementNotFound
		}
		return AnnouncementResponse{}, err
	}
	return s.toResponse(ctx, *a), nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	aid, err := uuid.Parse(id)
	if err != nil {
		return ErrAnnouncementNotFound
	}

	if _, err := s.repo.FindByID(ctx, aid); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrAnnouncementNotFound
		}
		return err
	}
	return s.repo.Delete(ctx, aid)
}

func (s *service) toResponse(ctx context.Context, a Announcement) AnnouncementResponse {
	return s.toListResponse(ctx, []Announcement{a})[0]
}

func (s *service) toListResponse(ctx context.Context, list []Announcement) []AnnouncementResponse {
	ids := make([]uuid.UUID, 0, len(list))
	for _, a := range list {
		if a.PublishedByID != nil {
			ids = append(ids, *a.PublishedByID)
		}
	}
	names, err := s.dir.NamesByIDs(ctx, ids)
	if err != nil {
		s.logger.Warn("could not resolve publisher names", zap.Error(err))
		names = map[uuid.UUID]string{}
	}

	res := make([]AnnouncementResponse, len(list))
	for i, a := range list {
		resp := AnnouncementResponse{
			ID:           a.ID.String(),
			Title:        a.Title,
			BodyHTML:     a.BodyHTML,
			DocumentPath: a.DocumentPath,
			PublishedAt:  a.PublishedAt.Format(time.RFC3339),
		}
		if a.PublishedByID != nil {
			resp.PublishedByID = a.PublishedByID.String()
			resp.PublishedByName = names[*a.PublishedByID]
		}
		res[i] = resp
	}
	return res
}
