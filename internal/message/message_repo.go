package message

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

//go:generate mockgen -source=message_repo.go -destination=mock/message_repo_mock.go -package=mock
type Repository interface {
	Create(ctx context.Context, m *Message) error
	ListConversation(ctx context.Context, userID, peerID uuid.UUID) ([]Message, error)
	ListLatestPerPeer(ctx context.Context, userID uuid.UUID) ([]Message, error)
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, m *Message) error {
	return r.db.WithContext(ctx).Create(m).Error
}

// ListConversation returns the live messages between two users, oldest
// first. Expired rows are filtered out even before the purge runs.
func (r *repository) ListConversation(ctx context.Context, userID, peerID uuid.UUID) ([]Message, error) {
	var messages []Message
	err := r.db.WithContext(ctx).
		Where("(sender_id = ? AND recipient_id = ?) OR (sender_id = ? AND recipient_id = ?)",
			userID, peerID, peerID, userID).
		Where("expires_at > ?", time.Now()).
		Order("sent_at ASC").
		Find(&messages).Error
	return messages, err
}

// ListLatestPerPeer returns, for each peer the user has exchanged
// messages with, the single most recent live message.
func (r *repository) ListLatestPerPeer(ctx context.Context, userID uuid.UUID) ([]Message, error) {
	var messages []Message
	err := r.db.WithContext(ctx).Raw(`
        SELECT DISTINCT ON (peer_id) *
        FROM (
            SELECT m.*,
                   CASE WHEN m.sender_id = ? THEN m.recipient_id ELSE m.sender_id END AS peer_id
            FROM messages m
            WHERE (m.sender_id = ? OR m.recipient_id = ?)
              AND m.expires_at > ?
        ) conv
        ORDER BY peer_id, sent_at DESC
    `, userID, userID, userID, time.Now()).Scan(&messages).Error
	return messages, err
}

func (r *repository) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("expires_at <= ?", now).
		Delete(&Message{})
	return res.RowsAffected, res.Error
}
