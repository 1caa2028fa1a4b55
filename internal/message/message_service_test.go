package message_test

import (
	"context"
	"testing"
	"time"

	"github.com/Marllon-hub/hospital-plataforma/internal/message"
	"github.com/Marllon-hub/hospital-plataforma/internal/schedule"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

type fakeMessageRepository struct {
	createFn            func(ctx context.Context, m *message.Message) error
	listConversationFn  func(ctx context.Context, userID, peerID uuid.UUID) ([]message.Message, error)
	listLatestPerPeerFn func(ctx context.Context, userID uuid.UUID) ([]message.Message, error)
	deleteExpiredFn     func(ctx context.Context, now time.Time) (int64, error)
}

func (f *fakeMessageRepository) Create(ctx context.Context, m *message.Message) error {
	if f.createFn != nil {
		return f.createFn(ctx, m)
	}
	return nil
}

func (f *fakeMessageRepository) ListConversation(ctx context.Context, userID, peerID uuid.UUID) ([]message.Message, error) {
	if f.listConversationFn != nil {
		return f.listConversationFn(ctx, userID, peerID)
	}
	return nil, nil
}

func (f *fakeMessageRepository) ListLatestPerPeer(ctx context.Context, userID uuid.UUID) ([]message.Message, error) {
	if f.listLatestPerPeerFn != nil {
		return f.listLatestPerPeerFn(ctx, userID)
	}
	return nil, nil
}

func (f *fakeMessageRepository) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	if f.deleteExpiredFn != nil {
		return f.deleteExpiredFn(ctx, now)
	}
	return 0, nil
}

type fakeDirectory struct {
	listActiveFn func(ctx context.Context, departmentID *uuid.UUID) ([]schedule.EmployeeInfo, error)
	getFn        func(ctx context.Context, id uuid.UUID) (*schedule.EmployeeInfo, error)
	namesByIDsFn func(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]string, error)
}

func (f *fakeDirectory) ListActive(ctx context.Context, departmentID *uuid.UUID) ([]schedule.EmployeeInfo, error) {
	if f.listActiveFn != nil {
		return f.listActiveFn(ctx, departmentID)
	}
	return nil, nil
}

func (f *fakeDirectory) Get(ctx context.Context, id uuid.UUID) (*schedule.EmployeeInfo, error) {
	if f.getFn != nil {
		return f.getFn(ctx, id)
	}
	return &schedule.EmployeeInfo{ID: id}, nil
}

func (f *fakeDirectory) NamesByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]string, error) {
	if f.namesByIDsFn != nil {
		return f.namesByIDsFn(ctx, ids)
	}
	return map[uuid.UUID]string{}, nil
}

func TestMessageService_Send(t *testing.T) {
	ctx := context.Background()
	sender := uuid.New()
	recipient := uuid.New()

	t.Run("success sets 15h expiry", func(t *testing.T) {
		var created *message.Message
		repo := &fakeMessageRepository{
			createFn: func(ctx context.Context, m *message.Message) error {
				created = m
				return nil
			},
		}
		svc := message.NewService(repo, &fakeDirectory{})

		resp, err := svc.Send(ctx, sender.String(), message.SendMessageRequest{
			RecipientID: recipient.String(),
			Body:        "  plantão trocado?  ",
		})

		assert.NoError(t, err)
		assert.Equal(t, "plantão trocado?", resp.Body)
		assert.NotNil(t, created)
		assert.WithinDuration(t, created.SentAt.Add(15*time.Hour), created.ExpiresAt, time.Second)
	})

	t.Run("negative empty message", func(t *testing.T) {
		svc := message.NewService(&fakeMessageRepository{}, &fakeDirectory{})

		_, err := svc.Send(ctx, sender.String(), message.SendMessageRequest{
			RecipientID: recipient.String(),
			Body:        "   ",
		})
		assert.Equal(t, message.ErrEmptyMessage, err)
	})

	t.Run("negative self message", func(t *testing.T) {
		svc := message.NewService(&fakeMessageRepository{}, &fakeDirectory{})

		_, err := svc.Send(ctx, sender.String(), message.SendMessageRequest{
			RecipientID: sender.String(),
			Body:        "oi",
		})
		assert.Equal(t, message.ErrSelfMessage, err)
	})

	t.Run("negative unknown recipient", func(t *testing.T) {
		dir := &fakeDirectory{
			getFn: func(ctx context.Context, id uuid.UUID) (*schedule.EmployeeInfo, error) {
				return nil, gorm.ErrRecordNotFound
			},
		}
		svc := message.NewService(&fakeMessageRepository{}, dir)

		_, err := svc.Send(ctx, sender.String(), message.SendMessageRequest{
			RecipientID: recipient.String(),
			Body:        "oi",
		})
		assert.Equal(t, message.ErrRecipientNotFound, err)
	})

	t.Run("file-only message is allowed", func(t *testing.T) {
		svc := message.NewService(&fakeMessageRepository{}, &fakeDirectory{})

		resp, err := svc.Send(ctx, sender.String(), message.SendMessageRequest{
			RecipientID: recipient.String(),
			FileName:    "escala.pdf",
		})
		assert.NoError(t, err)
		assert.Equal(t, "escala.pdf", resp.FileName)
	})
}

func TestMessageService_GetConversations(t *testing.T) {
	ctx := context.Background()
	user := uuid.New()
	peer := uuid.New()

	repo := &fakeMessageRepository{
		listLatestPerPeerFn: func(ctx context.Context, userID uuid.UUID) ([]message.Message, error) {
			return []message.Message{
				{ID: uuid.New(), SenderID: peer, RecipientID: user, Body: "oi", SentAt: time.Now(), ExpiresAt: time.Now().Add(time.Hour)},
			}, nil
		},
	}
	dir := &fakeDirectory{
		namesByIDsFn: func(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]string, error) {
			return map[uuid.UUID]string{peer: "Bruno Dias"}, nil
		},
	}
	svc := message.NewService(repo, dir)

	summaries, err := svc.GetConversations(ctx, user.String())

	assert.NoError(t, err)
	assert.Len(t, summaries, 1)
	assert.Equal(t, peer.String(), summaries[0].PeerID)
	assert.Equal(t, "Bruno Dias", summaries[0].PeerName)
	assert.Equal(t, "oi", summaries[0].LastMessage.Body)
}

func TestMessageService_GetContacts_ExcludesSelf(t *testing.T) {
	ctx := context.Background()
	user := uuid.New()
	other := uuid.New()

	dir := &fakeDirectory{
		listActiveFn: func(ctx context.Context, departmentID *uuid.UUID) ([]schedule.EmployeeInfo, error) {
			return []schedule.EmployeeInfo{
				{ID: user, FullName: "Eu"},
				{ID: other, FullName: "Outro"},
			}, nil
		},
	}
	svc := message.NewService(&fakeMessageRepository{}, dir)

	contacts, err := svc.GetContacts(ctx, user.String())

	assert.NoError(t, err)
	assert.Len(t, contacts, 1)
	assert.Equal(t, other.String(), contacts[0].ID)
}

func TestMessageService_PurgeExpired(t *testing.T) {
	repo := &fakeMessageRepository{
		deleteExpiredFn: func(ctx context.Context, now time.Time) (int64, error) {
			return 7, nil
		},
	}
	svc := message.NewService(repo, &fakeDirectory{})

	purged, err := svc.PurgeExpired(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, int64(7), purged)
}
