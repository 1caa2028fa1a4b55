package announcement_test

import (
	"context"
	"testing"
	"time"

	"github.com/Marllon-hub/hospital-plataforma/internal/announcement"
	"github.com/Marllon-hub/hospital-plataforma/internal/schedule"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

type fakeAnnouncementRepository struct {
	createFn   func(ctx context.Context, a *announcement.Announcement) error
	findAllFn  func(ctx context.Context) ([]announcement.Announcement, error)
	findByIDFn func(ctx context.Context, id uuid.UUID) (*announcement.Announcement, error)
	deleteFn   func(ctx context.Context, id uuid.UUID) error
}

func (f *fakeAnnouncementRepository) Create(ctx context.Context, a *announcement.Announcement) error {
	if f.createFn != nil {
		return f.createFn(ctx, a)
	}
	return nil
}

func (f *fakeAnnouncementRepository) FindAll(ctx context.Context) ([]announcement.Announcement, error) {
	if f.findAllFn != nil {
		return f.findAllFn(ctx)
	}
	return nil, nil
}

func (f *fakeAnnouncementRepository) FindByID(ctx context.Context, id uuid.UUID) (*announcement.Announcement, error) {
	if f.findByIDFn != nil {
		return f.findByIDFn(ctx, id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeAnnouncementRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if f.deleteFn != nil {
		return f.deleteFn(ctx, id)
	}
	return nil
}

type fakeDirectory struct{}

func (f *fakeDirectory) ListActive(ctx context.Context, departmentID *uuid.UUID) ([]schedule.EmployeeInfo, error) {
	return nil, nil
}

func (f *fakeDirectory) Get(ctx context.Context, id uuid.UUID) (*schedule.EmployeeInfo, error) {
	return &schedule.EmployeeInfo{ID: id, FullName: "Carla Dias"}, nil
}

func (f *fakeDirectory) NamesByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]string, error) {
	names := make(map[uuid.UUID]string, len(ids))
	for _, id := range ids {
		names[id] = "Carla Dias"
	}
	return names, nil
}

func TestAnnouncementService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("publishes with body", func(t *testing.T) {
		repo := &fakeAnnouncementRepository{}
		var created *announcement.Announcement
		repo.createFn = func(ctx context.Context, a *announcement.Announcement) error {
			created = a
			return nil
		}
		svc := announcement.NewService(repo, &fakeDirectory{})
		publisherID := uuid.New()

		resp, err := svc.Create(ctx, publisherID.String(), announcement.CreateAnnouncementRequest{
			Title:    "  Escala de março publicada  ",
			BodyHTML: "<p>Confira a escala no mural.</p>",
		})

		assert.NoError(t, err)
		assert.Equal(t, "Escala de março publicada", created.Title)
		assert.Equal(t, publisherID.String(), resp.PublishedByID)
		assert.Equal(t, "Carla Dias", resp.PublishedByName)
		assert.NotEmpty(t, resp.PublishedAt)
	})

	t.Run("document-only announcement is allowed", func(t *testing.T) {
		svc := announcement.NewService(&fakeAnnouncementRepository{}, &fakeDirectory{})

		resp, err := svc.Create(ctx, uuid.New().String(), announcement.CreateAnnouncementRequest{
			Title:        "Protocolo atualizado",
			DocumentPath: "docs/protocolo-v2.pdf",
		})

		assert.NoError(t, err)
		assert.Equal(t, "docs/protocolo-v2.pdf", resp.DocumentPath)
	})

	t.Run("needs a body or a document", func(t *testing.T) {
		svc := announcement.NewService(&fakeAnnouncementRepository{}, &fakeDirectory{})

		_, err := svc.Create(ctx, uuid.New().String(), announcement.CreateAnnouncementRequest{
			Title: "Vazio",
		})
		assert.Equal(t, announcement.ErrEmptyAnnouncement, err)
	})
}

func TestAnnouncementService_GetAll(t *testing.T) {
	repo := &fakeAnnouncementRepository{}
	publisherID := uuid.New()
	repo.findAllFn = func(ctx context.Context) ([]announcement.Announcement, error) {
		return []announcement.Announcement{
			{ID: uuid.New(), Title: "Mais recente", PublishedByID: &publisherID, PublishedAt: time.Now()},
			{ID: uuid.New(), Title: "Mais antigo", PublishedAt: time.Now().Add(-48 * time.Hour)},
		}, nil
	}
	svc := announcement.NewService(repo, &fakeDirectory{})

	resp, err := svc.GetAll(context.Background())

	assert.NoError(t, err)
	assert.Len(t, resp, 2)
	assert.Equal(t, "Mais recente", resp[0].Title)
	assert.Equal(t, "Carla Dias", resp[0].PublishedByName)
	assert.Empty(t, resp[1].PublishedByName)
}

func TestAnnouncementService_Delete(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		svc := announcement.NewService(&fakeAnnouncementRepository{}, &fakeDirectory{})
		err := svc.Delete(context.Background(), uuid.New().String())
		assert.Equal(t, announcement.ErrAnnouncementNotFound, err)
	})

	t.Run("deletes existing", func(t *testing.T) {
		repo := &fakeAnnouncementRepository{}
		id := uuid.New()
		repo.findByIDFn = func(ctx context.Context, aid uuid.UUID) (*announcement.Announcement, error) {
			return &announcement.Announcement{ID: id}, nil
		}
		deleted := false
		repo.deleteFn = func(ctx context.Context, aid uuid.UUID) error {
			deleted = true
			return nil
		}
		svc := announcement.NewService(repo, &fakeDirectory{})

		assert.NoError(t, svc.Delete(context.Background(), id.String()))
		assert.True(t, deleted)
	})
}
