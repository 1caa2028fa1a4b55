package message

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
	ErrEmptyMessage = apperror.New(
		"EMPTY_MESSAGE",
		"A message needs a body or a file",
		http.StatusBadRequest,
	)

	ErrRecipientNotFound = apperror.New(
		"RECIPIENT_NOT_FOUND",
		"Recipient not found",
		http.StatusNotFound,
	)

	ErrSelfMessage = apperror.New(
		"SELF_MESSAGE",
		"You cannot send a message to yourself",
		http.StatusBadRequest,
	)
)

//go:generate mockgen -source=message_service.go -destination=mock/message_service_mock.go -package=mock
type Service interface {
	Send(ctx context.Context, senderID string, req SendMessageRequest) (MessageResponse, error)
	GetConversation(ctx context.Context, userID, peerID string) ([]MessageResponse, error)
	GetConversations(ctx context.Context, userID string) ([]ConversationSummary, error)
	GetContacts(ctx context.Context, userID string) ([]ContactResponse, error)
	PurgeExpired(ctx context.Context) (int64, error)
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
		logger: zap.L().Named("message.service"),
	}
}

func (s *service) Send(ctx context.Context, senderID string, req SendMessageRequest) (MessageResponse, error) {
	sid, err := uuid.Parse(senderID)
	if err != nil {
		return MessageResponse{}, apperror.ErrUnauthorized
	}
	rid, err := uuid.Parse(req.RecipientID)
	if err != nil {
		return MessageResponse{}, ErrRecipientNotFound
	}
	if sid == rid {
		return MessageResponse{}, ErrSelfMessage
	}

	body := strings.TrimSpace(req.Body)
	if body == "" && req.FileName == "" {
		return MessageResponse{}, ErrEmptyMessage
	}

	if _, err := s.dir.Get(ctx, rid); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return MessageResponse{}, ErrRecipientNotFound
		}
		return MessageResponse{}, err
	}

	now := time.Now()
	m := &Message{
		ID:          uuid.New(),
		SenderID:    sid,
		RecipientID: rid,
		Body:        body,
		FileName:    req.FileName,
		SentAt:      now,
		ExpiresAt:   now.Add(messageTTL),
	}
	if err := s.repo.Create(ctx, m); err != nil {
		return MessageResponse{}, err
	}

	return mapToResponse(*m), nil
}

func (s *service) GetConversation(ctx context.Context, userID, peerID string) ([]MessageResponse, error) {
	uid, err := uuid.Parse(userID)
	if err != nil {
		return nil, apperror.ErrUnauthorized
	}
	pid, err := uuid.Parse(peerID)
	if err != nil {
		return nil, ErrRecipientNotFound
	}

	messages, err := s.repo.ListConversation(ctx, uid, pid)
	if err != nil {
		return nil, err
	}

	resp := make([]MessageResponse, len(messages))
	for i, m := range messages {
		resp[i] = mapToResponse(m)
	}
	return resp, nil
}

func (s *service) GetConversations(ctx context.Context, userID string) ([]ConversationSummary, error) {
	uid, err := uuid.Parse(userID)
	if err != nil {
		return nil, apperror.ErrUnauthorized
	}

	latest, err := s.repo.ListLatestPerPeer(ctx, uid)
	if err != nil {
		return nil, err
	}

	peerIDs := make([]uuid.UUID, 0, len(latest))
	for _, m := range latest {
		peerIDs = append(peerIDs, peerOf(m, uid))
	}

	names, err := s.dir.NamesByIDs(ctx, peerIDs)
	if err != nil {
		return nil, err
	}

	summaries := make([]ConversationSummary, len(latest))
	for i, m := range latest {
		peer := peerOf(m, uid)
		summaries[i] = ConversationSummary{
			PeerID:      peer.String(),
			PeerName:    names[peer],
			LastMessage: mapToResponse(m),
		}
	}
	return summaries, nil
}

// GetContacts lists every active employee except the caller.
func (s *service) GetContacts(ctx context.Context, userID string) ([]ContactResponse, error) {
	employees, err := s.dir.ListActive(ctx, nil)
	if err != nil {
		return nil, err
	}

	contacts := make([]ContactResponse, 0, len(employees))
	for _, e := range employees {
		if e.ID.String() == userID {
			continue
		}
		contacts = append(contacts, ContactResponse{ID: e.ID.String(), FullName: e.FullName})
	}
	return contacts, nil
}

func (s *service) PurgeExpired(ctx context.Context) (int64, error) {
	purged, err := s.repo.DeleteExpired(ctx, time.Now())
	if err != nil {
		return 0, err
	}
	if purged > 0 {
		s.logger.Info("expired messages purged", zap.Int64("count", purged))
	}
	return purged, nil
}

func peerOf(m Message, userID uuid.UUID) uuid.UUID {
	if m.SenderID == userID {
		return m.RecipientID
	}
	return m.SenderID
}

func mapToResponse(m Message) MessageResponse {
	return MessageResponse{
		ID:          m.ID.String(),
		SenderID:    m.SenderID.String(),
		RecipientID: m.RecipientID.String(),
		Body:        m.Body,
		FileName:    m.FileName,
		SentAt:      m.SentAt.Format(time.RFC3339),
		ExpiresAt:   m.ExpiresAt.Format(time.RFC3339),
	}
}
