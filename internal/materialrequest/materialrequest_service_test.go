package materialrequest_test

import (
	"context"
	"testing"
	"time"

	"github.com/Marllon-hub/hospital-plataforma/internal/materialrequest"
	"github.com/Marllon-hub/hospital-plataforma/internal/schedule"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

type fakeMaterialRequestRepository struct {
	createFn         func(ctx context.Context, req *materialrequest.MaterialRequest) error
	findAllFn        func(ctx context.Context) ([]materialrequest.MaterialRequest, error)
	findByEmployeeFn func(ctx context.Context, employeeID uuid.UUID) ([]materialrequest.MaterialRequest, error)
	findByIDFn       func(ctx context.Context, id uuid.UUID) (*materialrequest.MaterialRequest, error)
	updateFn         func(ctx context.Context, req *materialrequest.MaterialRequest) error
	deleteFn         func(ctx context.Context, id uuid.UUID) error
}

func (f *fakeMaterialRequestRepository) Create(ctx context.Context, req *materialrequest.MaterialRequest) error {
	if f.createFn != nil {
		return f.createFn(ctx, req)
	}
	return nil
}

func (f *fakeMaterialRequestRepository) FindAll(ctx context.Context) ([]materialrequest.MaterialRequest, error) {
	if f.findAllFn != nil {
		return f.findAllFn(ctx)
	}
	return nil, nil
}

func (f *fakeMaterialRequestRepository) FindByEmployee(ctx context.Context, employeeID uuid.UUID) ([]materialrequest.MaterialRequest, error) {
	if f.findByEmployeeFn != nil {
		return f.findByEmployeeFn(ctx, employeeID)
	}
	return nil, nil
}

func (f *fakeMaterialRequestRepository) FindByID(ctx context.Context, id uuid.UUID) (*materialrequest.MaterialRequest, error) {
	if f.findByIDFn != nil {
		return f.findByIDFn(ctx, id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeMaterialRequestRepository) Update(ctx context.Context, req *materialrequest.MaterialRequest) error {
	if f.updateFn != nil {
		return f.updateFn(ctx, req)
	}
	return nil
}

func (f *fakeMaterialRequestRepository) Delete(ctx context.Context, id uuid.UUID) error {
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
	return &schedule.EmployeeInfo{ID: id, FullName: "Ana Lima"}, nil
}

func (f *fakeDirectory) NamesByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]string, error) {
	names := make(map[uuid.UUID]string, len(ids))
	for _, id := range ids {
		names[id] = "Ana Lima"
	}
	return names, nil
}

func TestMaterialRequestService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("new request starts pending", func(t *testing.T) {
		repo := &fakeMaterialRequestRepository{}
		var created *materialrequest.MaterialRequest
		repo.createFn = func(ctx context.Context, req *materialrequest.MaterialRequest) error {
			created = req
			return nil
		}
		svc := materialrequest.NewService(repo, &fakeDirectory{})

		resp, err := svc.Create(ctx, uuid.New().String(), materialrequest.CreateMaterialRequestRequest{
			Sector:   "  UTI ",
			Material: "Luvas descartáveis",
			Quantity: 200,
		})

		assert.NoError(t, err)
		assert.NotNil(t, created)
		assert.Equal(t, "UTI", created.Sector)
		assert.Equal(t, materialrequest.StatusPending, resp.Status)
		assert.Empty(t, resp.DecidedAt)
	})

	t.Run("rejects malformed employee id", func(t *testing.T) {
		svc := materialrequest.NewService(&fakeMaterialRequestRepository{}, &fakeDirectory{})

		_, err := svc.Create(ctx, "not-a-uuid", materialrequest.CreateMaterialRequestRequest{
			Sector:   "UTI",
			Material: "Luvas",
			Quantity: 1,
		})
		assert.Error(t, err)
	})
}

func TestMaterialRequestService_Decide(t *testing.T) {
	ctx := context.Background()

	pendingRequest := func(id uuid.UUID) *materialrequest.MaterialRequest {
		return &materialrequest.MaterialRequest{
			ID:         id,
			EmployeeID: uuid.New(),
			Sector:     "UTI",
			Material:   "Luvas",
			Quantity:   10,
			Status:     materialrequest.StatusPending,
			CreatedAt:  time.Now(),
		}
	}

	t.Run("approve records decider and timestamp", func(t *testing.T) {
		repo := &fakeMaterialRequestRepository{}
		reqID := uuid.New()
		deciderID := uuid.New()
		repo.findByIDFn = func(ctx context.Context, id uuid.UUID) (*materialrequest.MaterialRequest, error) {
			return pendingRequest(reqID), nil
		}
		var saved *materialrequest.MaterialRequest
		repo.updateFn = func(ctx context.Context, req *materialrequest.MaterialRequest) error {
			saved = req
			return nil
		}
		svc := materialrequest.NewService(repo, &fakeDirectory{})

		resp, err := svc.Decide(ctx, reqID.String(), deciderID.String(), materialrequest.DecideMaterialRequestRequest{
			Decision: "APPROVED",
		})

		assert.NoError(t, err)
		assert.Equal(t, materialrequest.StatusApproved, resp.Status)
		assert.Equal(t, deciderID.String(), resp.DecidedByID)
		assert.NotEmpty(t, resp.DecidedAt)
		assert.NotNil(t, saved.DecidedAt)
		assert.WithinDuration(t, time.Now(), *saved.DecidedAt, time.Minute)
	})

	t.Run("reject transitions to rejected", func(t *testing.T) {
		repo := &fakeMaterialRequestRepository{}
		reqID := uuid.New()
		repo.findByIDFn = func(ctx context.Context, id uuid.UUID) (*materialrequest.MaterialRequest, error) {
			return pendingRequest(reqID), nil
		}
		svc := materialrequest.NewService(repo, &fakeDirectory{})

		resp, err := svc.Decide(ctx, reqID.String(), uuid.New().String(), materialrequest.DecideMaterialRequestRequest{
			Decision: "rejected",
		})

		assert.NoError(t, err)
		assert.Equal(t, materialrequest.StatusRejected, resp.Status)
	})

	t.Run("already decided request cannot change again", func(t *testing.T) {
		repo := &fakeMaterialRequestRepository{}
		reqID := uuid.New()
		repo.findByIDFn = func(ctx context.Context, id uuid.UUID) (*materialrequest.MaterialRequest, error) {
			mr := pendingRequest(reqID)
			mr.Status = materialrequest.StatusApproved
			return mr, nil
		}
		svc := materialrequest.NewService(repo, &fakeDirectory{})

		_, err := svc.Decide(ctx, reqID.String(), uuid.New().String(), materialrequest.DecideMaterialRequestRequest{
			Decision: "REJECTED",
		})
		assert.Equal(t, materialrequest.ErrRequestAlreadyDecided, err)
	})

	t.Run("unknown decision is rejected", func(t *testing.T) {
		svc := materialrequest.NewService(&fakeMaterialRequestRepository{}, &fakeDirectory{})

		_, err := svc.Decide(ctx, uuid.New().String(), uuid.New().String(), materialrequest.DecideMaterialRequestRequest{
			Decision: "MAYBE",
		})
		assert.Equal(t, materialrequest.ErrInvalidDecision, err)
	})

	t.Run("missing request", func(t *testing.T) {
		svc := materialrequest.NewService(&fakeMaterialRequestRepository{}, &fakeDirectory{})

		_, err := svc.Decide(ctx, uuid.New().String(), uuid.New().String(), materialrequest.DecideMaterialRequestRequest{
			Decision: "APPROVED",
		})
		assert.Equal(t, materialrequest.ErrRequestNotFound, err)
	})
}

func TestMaterialRequestService_GetMine(t *testing.T) {
	repo := &fakeMaterialRequestRepository{}
	employeeID := uuid.New()
	repo.findByEmployeeFn = func(ctx context.Context, eid uuid.UUID) ([]materialrequest.MaterialRequest, error) {
		assert.Equal(t, employeeID, eid)
		return []materialrequest.MaterialRequest{
			{ID: uuid.New(), EmployeeID: eid, Sector: "UTI", Material: "Luvas", Quantity: 5, Status: materialrequest.StatusPending, CreatedAt: time.Now()},
		}, nil
	}
	svc := materialrequest.NewService(repo, &fakeDirectory{})

	resp, err := svc.GetMine(context.Background(), employeeID.String())

	assert.NoError(t, err)
	assert.Len(t, resp, 1)
	assert.Equal(t, "Ana Lima", resp[0].EmployeeName)
}

func TestMaterialRequestService_Delete(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		svc := materialrequest.NewService(&fakeMaterialRequestRepository{}, &fakeDirectory{})
		err := svc.Delete(context.Background(), uuid.New().String())
		assert.Equal(t, materialrequest.ErrRequestNotFound, err)
	})

	t.Run("deletes existing", func(t *testing.T) {
		repo := &fakeMaterialRequestRepository{}
		reqID := uuid.New()
		repo.findByIDFn = func(ctx context.Context, id uuid.UUID) (*materialrequest.MaterialRequest, error) {
			return &materialrequest.MaterialRequest{ID: reqID, Status: materialrequest.StatusPending}, nil
		}
		deleted := false
		repo.deleteFn = func(ctx context.Context, id uuid.UUID) error {
			deleted = true
			assert.Equal(t, reqID, id)
			return nil
		}
		svc := materialrequest.NewService(repo, &fakeDirectory{})

		assert.NoError(t, svc.Delete(context.Background(), reqID.String()))
		assert.True(t, deleted)
	})
}
