package schedule_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Marllon-hub/hospital-plataforma/internal/messaging/kafka"
	"github.com/Marllon-hub/hospital-plataforma/internal/schedule"
	scheduleerrors "github.com/Marllon-hub/hospital-plataforma/internal/schedule/errors"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type fakeScheduleRepository struct {
	withTxFn                      func(tx *gorm.DB) schedule.Repository
	findMonthByKeyFn              func(ctx context.Context, year, month int, departmentID *uuid.UUID) (*schedule.ScheduleMonth, error)
	findMonthByIDFn               func(ctx context.Context, id uuid.UUID) (*schedule.ScheduleMonth, error)
	listMonthsFn                  func(ctx context.Context) ([]schedule.ScheduleMonth, error)
	createMonthFn                 func(ctx context.Context, m *schedule.ScheduleMonth) error
	deleteMonthFn                 func(ctx context.Context, id uuid.UUID) error
	deleteEntriesForEmployeeFn    func(ctx context.Context, monthID, employeeID uuid.UUID) error
	createEntriesFn               func(ctx context.Context, entries []schedule.ScheduleEntry) error
	findEntryCoveringDayFn        func(ctx context.Context, monthID, employeeID uuid.UUID, dayStart, nextDay time.Time) (*schedule.ScheduleEntry, error)
	saveEntryFn                   func(ctx context.Context, e *schedule.ScheduleEntry) error
	listEntriesByMonthFn          func(ctx context.Context, monthID uuid.UUID) ([]schedule.ScheduleEntry, error)
	listEntriesByMonthAndEmployee func(ctx context.Context, monthID, employeeID uuid.UUID) ([]schedule.ScheduleEntry, error)
}

func (f *fakeScheduleRepository) WithTx(tx *gorm.DB) schedule.Repository {
	if f.withTxFn != nil {
		return f.withTxFn(tx)
	}
	return f
}

func (f *fakeScheduleRepository) FindMonthByKey(ctx context.Context, year, month int, departmentID *uuid.UUID) (*schedule.ScheduleMonth, error) {
	if f.findMonthByKeyFn != nil {
		return f.findMonthByKeyFn(ctx, year, month, departmentID)
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeScheduleRepository) FindMonthByID(ctx context.Context, id uuid.UUID) (*schedule.ScheduleMonth, error) {
	if f.findMonthByIDFn != nil {
		return f.findMonthByIDFn(ctx, id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeScheduleRepository) ListMonths(ctx context.Context) ([]schedule.ScheduleMonth, error) {
	if f.listMonthsFn != nil {
		return f.listMonthsFn(ctx)
	}
	return nil, nil
}

func (f *fakeScheduleRepository) CreateMonth(ctx context.Context, m *schedule.ScheduleMonth) error {
	if f.createMonthFn != nil {
		return f.createMonthFn(ctx, m)
	}
	return nil
}

func (f *fakeScheduleRepository) DeleteMonth(ctx context.Context, id uuid.UUID) error {
	if f.deleteMonthFn != nil {
		return f.deleteMonthFn(ctx, id)
	}
	return nil
}

func (f *fakeScheduleRepository) DeleteEntriesForEmployee(ctx context.Context, monthID, employeeID uuid.UUID) error {
	if f.deleteEntriesForEmployeeFn != nil {
		return f.deleteEntriesForEmployeeFn(ctx, monthID, employeeID)
	}
	return nil
}

func (f *fakeScheduleRepository) CreateEntries(ctx context.Context, entries []schedule.ScheduleEntry) error {
	if f.createEntriesFn != nil {
		return f.createEntriesFn(ctx, entries)
	}
	return nil
}

func (f *fakeScheduleRepository) FindEntryCoveringDay(ctx context.Context, monthID, employeeID uuid.UUID, dayStart, nextDay time.Time) (*schedule.ScheduleEntry, error) {
	if f.findEntryCoveringDayFn != nil {
		return f.findEntryCoveringDayFn(ctx, monthID, employeeID, dayStart, nextDay)
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeScheduleRepository) SaveEntry(ctx context.Context, e *schedule.ScheduleEntry) error {
	if f.saveEntryFn != nil {
		return f.saveEntryFn(ctx, e)
	}
	return nil
}

func (f *fakeScheduleRepository) ListEntriesByMonth(ctx context.Context, monthID uuid.UUID) ([]schedule.ScheduleEntry, error) {
	if f.listEntriesByMonthFn != nil {
		return f.listEntriesByMonthFn(ctx, monthID)
	}
	return nil, nil
}

func (f *fakeScheduleRepository) ListEntriesByMonthAndEmployee(ctx context.Context, monthID, employeeID uuid.UUID) ([]schedule.ScheduleEntry, error) {
	if f.listEntriesByMonthAndEmployee != nil {
		return f.listEntriesByMonthAndEmployee(ctx, monthID, employeeID)
	}
	return nil, nil
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
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeDirectory) NamesByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]string, error) {
	if f.namesByIDsFn != nil {
		return f.namesByIDsFn(ctx, ids)
	}
	names := make(map[uuid.UUID]string, len(ids))
	for _, id := range ids {
		names[id] = id.String()
	}
	return names, nil
}

type fakeOutboxRepository struct {
	createFn func(ctx context.Context, event kafka.OutboxEvent) error
}

func (f *fakeOutboxRepository) WithTx(tx *gorm.DB) kafka.OutboxRepository { return f }

func (f *fakeOutboxRepository) Create(ctx context.Context, event kafka.OutboxEvent) error {
	if f.createFn != nil {
		return f.createFn(ctx, event)
	}
	return nil
}

func (f *fakeOutboxRepository) ListPending(ctx context.Context, limit int) ([]kafka.OutboxEvent, error) {
	return nil, nil
}

func (f *fakeOutboxRepository) MarkSent(ctx context.Context, id string) error { return nil }

func (f *fakeOutboxRepository) MarkFailed(ctx context.Context, id string, reason string) error {
	return nil
}

type scheduleServiceDeps struct {
	sqlMock sqlmock.Sqlmock
	service schedule.Service
	repo    *fakeScheduleRepository
	dir     *fakeDirectory
	outbox  *fakeOutboxRepository
}

func setupScheduleServiceTest(t *testing.T) *scheduleServiceDeps {
	t.Helper()

	sqlDB, sqlMock, err := sqlmock.New()
	assert.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	gdb, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		SkipDefaultTransaction: true,
	})
	assert.NoError(t, err)

	repo := &fakeScheduleRepository{}
	dir := &fakeDirectory{}
	outbox := &fakeOutboxRepository{}
	svc := schedule.NewService(gdb, repo, dir, outbox, nil)

	return &scheduleServiceDeps{
		sqlMock: sqlMock,
		service: svc,
		repo:    repo,
		dir:     dir,
		outbox:  outbox,
	}
}

func TestScheduleService_Generate_CreatesEntriesForActiveEmployees(t *testing.T) {
	deps := setupScheduleServiceTest(t)
	ctx := context.Background()

	anchor := date(2026, time.January, 1)
	weekdayEmp := schedule.EmployeeInfo{ID: uuid.New(), FullName: "Ana", ShiftPolicy: "WEEKDAY_9TO5"}
	rotatingEmp := schedule.EmployeeInfo{ID: uuid.New(), FullName: "Bruno", ShiftPolicy: "PLANTONISTA_24_96", RotationAnchor: &anchor}

	deps.dir.listActiveFn = func(ctx context.Context, departmentID *uuid.UUID) ([]schedule.EmployeeInfo, error) {
		assert.Nil(t, departmentID)
		return []schedule.EmployeeInfo{weekdayEmp, rotatingEmp}, nil
	}

	created := make(map[uuid.UUID][]schedule.ScheduleEntry)
	deleted := make(map[uuid.UUID]int)
	deps.repo.deleteEntriesForEmployeeFn = func(ctx context.Context, monthID, employeeID uuid.UUID) error {
		deleted[employeeID]++
		return nil
	}
	deps.repo.createEntriesFn = func(ctx context.Context, entries []schedule.ScheduleEntry) error {
		if len(entries) > 0 {
			created[entries[0].EmployeeID] = entries
		}
		return nil
	}

	var enqueued []kafka.OutboxEvent
	deps.outbox.createFn = func(ctx context.Context, event kafka.OutboxEvent) error {
		enqueued = append(enqueued, event)
		return nil
	}

	deps.sqlMock.ExpectBegin()
	deps.sqlMock.ExpectCommit()

	resp, err := deps.service.Generate(ctx, schedule.GenerateScheduleRequest{Year: 2026, Month: 2}, uuid.New().String())

	assert.NoError(t, err)
	assert.Equal(t, 2, resp.EmployeesScheduled)
	assert.Equal(t, 56, resp.EntriesCreated) // 28 days each
	assert.Equal(t, 1, deleted[weekdayEmp.ID])
	assert.Equal(t, 1, deleted[rotatingEmp.ID])
	assert.Len(t, created[weekdayEmp.ID], 28)
	assert.Len(t, created[rotatingEmp.ID], 28)
	assert.Len(t, enqueued, 1)
	assert.Equal(t, "schedule_month", enqueued[0].AggregateType)

	// Rotating employee is on duty exactly on Feb 5, 10, 15, 20, 25.
	var dutyDays []int
	for _, e := range created[rotatingEmp.ID] {
		if e.ShiftType == schedule.ShiftRotating24h {
			dutyDays = append(dutyDays, e.StartsAt.Day())
		}
	}
	assert.Equal(t, []int{5, 10, 15, 20, 25}, dutyDays)

	assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
}

func TestScheduleService_Generate_SkipsEmployeesWithoutDerivablePolicy(t *testing.T) {
	deps := setupScheduleServiceTest(t)
	ctx := context.Background()

	noAnchor := schedule.EmployeeInfo{ID: uuid.New(), FullName: "Carla", ShiftPolicy: "PLANTONISTA_24_96"}
	unknown := schedule.EmployeeInfo{ID: uuid.New(), FullName: "Davi", ShiftPolicy: "NOTURNO_12H"}

	deps.dir.listActiveFn = func(ctx context.Context, departmentID *uuid.UUID) ([]schedule.EmployeeInfo, error) {
		return []schedule.EmployeeInfo{noAnchor, unknown}, nil
	}

	deleted := make(map[uuid.UUID]int)
	deps.repo.deleteEntriesForEmployeeFn = func(ctx context.Context, monthID, employeeID uuid.UUID) error {
		deleted[employeeID]++
		return nil
	}
	deps.repo.createEntriesFn = func(ctx context.Context, entries []schedule.ScheduleEntry) error {
		assert.Empty(t, entries)
		return nil
	}

	deps.sqlMock.ExpectBegin()
	deps.sqlMock.ExpectCommit()

	resp, err := deps.service.Generate(ctx, schedule.GenerateScheduleRequest{Year: 2026, Month: 3}, "")

	assert.NoError(t, err)
	assert.Equal(t, 0, resp.EmployeesScheduled)
	assert.Equal(t, 0, resp.EntriesCreated)
	// Stale entries are still wiped even when nothing replaces them.
	assert.Equal(t, 1, deleted[noAnchor.ID])
	assert.Equal(t, 1, deleted[unknown.ID])
}

func TestScheduleService_Generate_ReusesExistingMonth(t *testing.T) {
	deps := setupScheduleServiceTest(t)
	ctx := context.Background()

	existing := &schedule.ScheduleMonth{ID: uuid.New(), Year: 2026, Month: 2}
	deps.repo.findMonthByKeyFn = func(ctx context.Context, year, month int, departmentID *uuid.UUID) (*schedule.ScheduleMonth, error) {
		return existing, nil
	}

	var createCalls int
	deps.repo.createMonthFn = func(ctx context.Context, m *schedule.ScheduleMonth) error {
		createCalls++
		return nil
	}

	deps.sqlMock.ExpectBegin()
	deps.sqlMock.ExpectCommit()

	resp, err := deps.service.Generate(ctx, schedule.GenerateScheduleRequest{Year: 2026, Month: 2}, "")

	assert.NoError(t, err)
	assert.Equal(t, existing.ID.String(), resp.ID)
	assert.Equal(t, 0, createCalls)
}

func TestScheduleService_Generate_RecoversFromUniqueViolation(t *testing.T) {
	deps := setupScheduleServiceTest(t)
	ctx := context.Background()

	winner := &schedule.ScheduleMonth{ID: uuid.New(), Year: 2026, Month: 2}
	var lookups int
	deps.repo.findMonthByKeyFn = func(ctx context.Context, year, month int, departmentID *uuid.UUID) (*schedule.ScheduleMonth, error) {
		lookups++
		if lookups == 1 {
			return nil, gorm.ErrRecordNotFound
		}
		return winner, nil
	}
	deps.repo.createMonthFn = func(ctx context.Context, m *schedule.ScheduleMonth) error {
		return &pgconn.PgError{Code: "23505"}
	}

	deps.sqlMock.ExpectBegin()
	deps.sqlMock.ExpectCommit()

	resp, err := deps.service.Generate(ctx, schedule.GenerateScheduleRequest{Year: 2026, Month: 2}, "")

	assert.NoError(t, err)
	assert.Equal(t, winner.ID.String(), resp.ID)
	assert.Equal(t, 2, lookups)
}

func TestScheduleService_Generate_ValidatesInput(t *testing.T) {
	deps := setupScheduleServiceTest(t)
	ctx := context.Background()

	_, err := deps.service.Generate(ctx, schedule.GenerateScheduleRequest{Year: 1999, Month: 2}, "")
	assert.Equal(t, scheduleerrors.ErrInvalidYear, err)

	_, err = deps.service.Generate(ctx, schedule.GenerateScheduleRequest{Year: 2026, Month: 13}, "")
	assert.Equal(t, scheduleerrors.ErrInvalidMonth, err)

	bad := "not-a-uuid"
	_, err = deps.service.Generate(ctx, schedule.GenerateScheduleRequest{Year: 2026, Month: 2, DepartmentID: &bad}, "")
	assert.Equal(t, scheduleerrors.ErrInvalidDepartmentID, err)
}

func TestScheduleService_Generate_RollsBackOnRepoError(t *testing.T) {
	deps := setupScheduleServiceTest(t)
	ctx := context.Background()

	deps.dir.listActiveFn = func(ctx context.Context, departmentID *uuid.UUID) ([]schedule.EmployeeInfo, error) {
		return []schedule.EmployeeInfo{{ID: uuid.New(), ShiftPolicy: "WEEKDAY_9TO5"}}, nil
	}

	boom := errors.New("insert failed")
	deps.repo.createEntriesFn = func(ctx context.Context, entries []schedule.ScheduleEntry) error {
		return boom
	}

	deps.sqlMock.ExpectBegin()
	deps.sqlMock.ExpectRollback()

	_, err := deps.service.Generate(ctx, schedule.GenerateScheduleRequest{Year: 2026, Month: 2}, "")

	assert.ErrorIs(t, err, boom)
	assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
}

func TestScheduleService_SetDay_OverwritesExistingEntry(t *testing.T) {
	deps := setupScheduleServiceTest(t)
	ctx := context.Background()

	month := &schedule.ScheduleMonth{ID: uuid.New(), Year: 2026, Month: 2}
	employeeID := uuid.New()

	deps.repo.findMonthByIDFn = func(ctx context.Context, id uuid.UUID) (*schedule.ScheduleMonth, error) {
		return month, nil
	}
	deps.dir.getFn = func(ctx context.Context, id uuid.UUID) (*schedule.EmployeeInfo, error) {
		return &schedule.EmployeeInfo{ID: id, FullName: "Ana"}, nil
	}

	existing := &schedule.ScheduleEntry{
		ID:              uuid.New(),
		ScheduleMonthID: month.ID,
		EmployeeID:      employeeID,
		StartsAt:        time.Date(2026, time.February, 10, 0, 0, 0, 0, time.Local),
		EndsAt:          time.Date(2026, time.February, 10, 23, 59, 0, 0, time.Local),
		ShiftType:       schedule.ShiftOff,
	}
	deps.repo.findEntryCoveringDayFn = func(ctx context.Context, monthID, empID uuid.UUID, dayStart, nextDay time.Time) (*schedule.ScheduleEntry, error) {
		assert.Equal(t, 10, dayStart.Day())
		assert.Equal(t, 11, nextDay.Day())
		return existing, nil
	}

	var saved *schedule.ScheduleEntry
	deps.repo.saveEntryFn = func(ctx context.Context, e *schedule.ScheduleEntry) error {
		saved = e
		return nil
	}

	deps.sqlMock.ExpectBegin()
	deps.sqlMock.ExpectCommit()

	resp, err := deps.service.SetDay(ctx, month.ID.String(), schedule.SetDayRequest{
		EmployeeID: employeeID.String(),
		Day:        10,
		ShiftType:  "PLANTAO_24H",
	})

	assert.NoError(t, err)
	assert.Equal(t, schedule.ShiftRotating24h, resp.ShiftType)
	assert.Equal(t, "24H", resp.Label)
	assert.NotNil(t, saved)
	assert.Equal(t, existing.ID, saved.ID) // same row, not a new one
	assert.Equal(t, schedule.ShiftRotating24h, saved.ShiftType)
	assert.Equal(t, 7, saved.StartsAt.Hour())
	assert.Equal(t, saved.StartsAt.Add(24*time.Hour), saved.EndsAt)
}

func TestScheduleService_SetDay_CreatesEntryWhenDayIsEmpty(t *testing.T) {
	deps := setupScheduleServiceTest(t)
	ctx := context.Background()

	month := &schedule.ScheduleMonth{ID: uuid.New(), Year: 2026, Month: 2}
	employeeID := uuid.New()

	deps.repo.findMonthByIDFn = func(ctx context.Context, id uuid.UUID) (*schedule.ScheduleMonth, error) {
		return month, nil
	}
	deps.dir.getFn = func(ctx context.Context, id uuid.UUID) (*schedule.EmployeeInfo, error) {
		return &schedule.EmployeeInfo{ID: id}, nil
	}
	deps.repo.findEntryCoveringDayFn = func(ctx context.Context, monthID, empID uuid.UUID, dayStart, nextDay time.Time) (*schedule.ScheduleEntry, error) {
		return nil, gorm.ErrRecordNotFound
	}

	var saved *schedule.ScheduleEntry
	deps.repo.saveEntryFn = func(ctx context.Context, e *schedule.ScheduleEntry) error {
		saved = e
		return nil
	}

	deps.sqlMock.ExpectBegin()
	deps.sqlMock.ExpectCommit()

	resp, err := deps.service.SetDay(ctx, month.ID.String(), schedule.SetDayRequest{
		EmployeeID: employeeID.String(),
		Day:        14,
		ShiftType:  "ON_DUTY",
	})

	assert.NoError(t, err)
	assert.Equal(t, schedule.ShiftOnDuty, resp.ShiftType)
	assert.NotNil(t, saved)
	assert.Equal(t, employeeID, saved.EmployeeID)
	assert.Equal(t, 14, saved.StartsAt.Day())
	assert.Equal(t, 8, saved.StartsAt.Hour())
	assert.Equal(t, 17, saved.EndsAt.Hour())
}

func TestScheduleService_SetDay_RejectsBeforeTouchingStorage(t *testing.T) {
	deps := setupScheduleServiceTest(t)
	ctx := context.Background()

	month := &schedule.ScheduleMonth{ID: uuid.New(), Year: 2026, Month: 2}
	deps.repo.findMonthByIDFn = func(ctx context.Context, id uuid.UUID) (*schedule.ScheduleMonth, error) {
		return month, nil
	}
	deps.dir.getFn = func(ctx context.Context, id uuid.UUID) (*schedule.EmployeeInfo, error) {
		return &schedule.EmployeeInfo{ID: id}, nil
	}

	var saves int
	deps.repo.saveEntryFn = func(ctx context.Context, e *schedule.ScheduleEntry) error {
		saves++
		return nil
	}

	// Unknown shift type fails first, before any lookup.
	_, err := deps.service.SetDay(ctx, month.ID.String(), schedule.SetDayRequest{
		EmployeeID: uuid.New().String(),
		Day:        10,
		ShiftType:  "NIGHT",
	})
	assert.Equal(t, scheduleerrors.ErrInvalidShiftType, err)

	// February 2026 has 28 days.
	_, err = deps.service.SetDay(ctx, month.ID.String(), schedule.SetDayRequest{
		EmployeeID: uuid.New().String(),
		Day:        30,
		ShiftType:  "OFF",
	})
	assert.Equal(t, scheduleerrors.ErrDayOutOfRange, err)

	assert.Equal(t, 0, saves)
}

func TestScheduleService_SetDay_UnknownEmployee(t *testing.T) {
	deps := setupScheduleServiceTest(t)
	ctx := context.Background()

	month := &schedule.ScheduleMonth{ID: uuid.New(), Year: 2026, Month: 2}
	deps.repo.findMonthByIDFn = func(ctx context.Context, id uuid.UUID) (*schedule.ScheduleMonth, error) {
		return month, nil
	}
	deps.dir.getFn = func(ctx context.Context, id uuid.UUID) (*schedule.EmployeeInfo, error) {
		return nil, gorm.ErrRecordNotFound
	}

	_, err := deps.service.SetDay(ctx, month.ID.String(), schedule.SetDayRequest{
		EmployeeID: uuid.New().String(),
		Day:        10,
		ShiftType:  "OFF",
	})
	assert.Equal(t, scheduleerrors.ErrEmployeeNotFound, err)
}

func TestScheduleService_GetGrid_GroupsAndSortsRows(t *testing.T) {
	deps := setupScheduleServiceTest(t)
	ctx := context.Background()

	month := &schedule.ScheduleMonth{ID: uuid.New(), Year: 2026, Month: 2}
	empA := uuid.New()
	empB := uuid.New()

	deps.repo.findMonthByIDFn = func(ctx context.Context, id uuid.UUID) (*schedule.ScheduleMonth, error) {
		return month, nil
	}
	deps.repo.listEntriesByMonthFn = func(ctx context.Context, monthID uuid.UUID) ([]schedule.ScheduleEntry, error) {
		return []schedule.ScheduleEntry{
			{EmployeeID: empB, StartsAt: date(2026, time.February, 1), ShiftType: schedule.ShiftOff},
			{EmployeeID: empB, StartsAt: date(2026, time.February, 2), ShiftType: schedule.ShiftOnDuty},
			{EmployeeID: empA, StartsAt: date(2026, time.February, 1), ShiftType: schedule.ShiftRotating24h},
		}, nil
	}
	deps.dir.namesByIDsFn = func(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]string, error) {
		return map[uuid.UUID]string{empA: "Ana", empB: "Bruno"}, nil
	}

	grid, err := deps.service.GetGrid(ctx, month.ID.String())

	assert.NoError(t, err)
	assert.Equal(t, 28, grid.DaysInMonth)
	assert.Len(t, grid.Rows, 2)
	assert.Equal(t, "Ana", grid.Rows[0].EmployeeName)
	assert.Equal(t, "Bruno", grid.Rows[1].EmployeeName)
	assert.Len(t, grid.Rows[1].Days, 2)
	assert.Equal(t, "24H", grid.Rows[0].Days[0].Label)
}

func TestScheduleService_GetGrid_MonthNotFound(t *testing.T) {
	deps := setupScheduleServiceTest(t)
	ctx := context.Background()

	_, err := deps.service.GetGrid(ctx, uuid.New().String())
	assert.Equal(t, scheduleerrors.ErrMonthNotFound, err)

	_, err = deps.service.GetGrid(ctx, "not-a-uuid")
	assert.Equal(t, scheduleerrors.ErrMonthNotFound, err)
}

func TestScheduleService_DeleteMonth(t *testing.T) {
	deps := setupScheduleServiceTest(t)
	ctx := context.Background()

	month := &schedule.ScheduleMonth{ID: uuid.New(), Year: 2026, Month: 2}
	deps.repo.findMonthByIDFn = func(ctx context.Context, id uuid.UUID) (*schedule.ScheduleMonth, error) {
		if id == month.ID {
			return month, nil
		}
		return nil, gorm.ErrRecordNotFound
	}

	var deletedID uuid.UUID
	deps.repo.deleteMonthFn = func(ctx context.Context, id uuid.UUID) error {
		deletedID = id
		return nil
	}

	assert.NoError(t, deps.service.DeleteMonth(ctx, month.ID.String()))
	assert.Equal(t, month.ID, deletedID)

	err := deps.service.DeleteMonth(ctx, uuid.New().String())
	assert.Equal(t, scheduleerrors.ErrMonthNotFound, err)
}
