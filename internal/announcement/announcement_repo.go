package announcement

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

//go:generate mockgen -source=announcement_repo.go -destination=mock/announcement_repo_mock.go -package=mock
type Repository interface {
	Create(ctx context.Context, a *Announcement) error
	FindAll(ctx context.Context) ([]Announcement, error)
	FindByID(ctx context.Context, id uuid.UUID) (*Announcement, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, a *Announcement) error {
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *repository) FindAll(ctx context.Context) ([]Announcement, error) {
	var list []Announcement
	err := r.db.WithContext(ctx).
		Order("published_at DESC").
		Find(&list).Error
	return list, err
}

func (r *repository) FindByID(ctx context.Context, id uuid.UUID) (*Announcement, error) {
	var a Announcement
	if err := r.db.WithContext(ctx).First(&a, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *repository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&Announcement{}, "id = ?", id).Error
}
