package schedule

import (
	"context"
	"encoding/json"
	"errors"
	"sort"
	"time"

	scheduleerrors "github.com/Marllon-hub/hospital-plataforma/internal/schedule/errors"
	"github.com/Marllon-hub/hospital-plataforma/internal/events"
	"github.com/Marllon-hub/hospital-plataforma/internal/messaging/kafka"
	"github.com/Marllon-hub/hospital-plataforma/internal/shared/contextutil"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
	"gorm.io/gorm"
)

const gridCacheTTL = 10 * time.Minute

func gridCacheKey(monthID string) string {
	return "schedules:grid:" + monthID
}

//go:generate mockgen -source=schedule_service.go -destination=mock/schedule_service_mock.go -package=mock
type Service interface {
	Generate(ctx context.Context, req GenerateScheduleRequest, actorID string) (GenerateScheduleResponse, error)
	ListMonths(ctx context.Context) ([]ScheduleMonthResponse, error)
	GetGrid(ctx context.Context, monthID string) (ScheduleGridResponse, error)
	GetEmployeeRow(ctx context.Context, monthID, employeeID string) (ScheduleRow, error)
	SetDay(ctx context.Context, monthID string, req SetDayRequest) (SetDayResponse, error)
	DeleteMonth(ctx context.Context, monthID string) error
}

type service struct {
	db     *gorm.DB
	repo   Repository
	dir    Directory
	outbox kafka.OutboxRepository
	rdb    *redis.Client
	sf     *singleflight.Group
	logger *zap.Logger
}

func NewService(db *gorm.DB, repo Repository, dir Directory, outbox kafka.OutboxRepository, rdb *redis.Client) Service {
	return &service{
		db:     db,
		repo:   repo,
		dir:    dir,
		outbox: outbox,
		rdb:    rdb,
		sf:     &singleflight.Group{},
		logger: zap.L().Named("schedule.service"),
	}
}

// Generate materializes one month of shift entries for every active
// employee in scope. Regeneration reuses the existing ScheduleMonth and
// replaces each employee's entry set wholesale, so the call is
// idempotent.
func (s *service) Generate(ctx context.Context, req GenerateScheduleRequest, actorID string) (GenerateScheduleResponse, error) {
	if req.Year < 2000 || req.Year > 2100 {
		return GenerateScheduleResponse{}, scheduleerrors.ErrInvalidYear
	}
	if req.Month < 1 || req.Month > 12 {
		return GenerateScheduleResponse{}, scheduleerrors.ErrInvalidMonth
	}

	var departmentID *uuid.UUID
	if req.DepartmentID != nil && *req.DepartmentID != "" {
		id, err := uuid.Parse(*req.DepartmentID)
		if err != nil {
			return GenerateScheduleResponse{}, scheduleerrors.ErrInvalidDepartmentID
		}
		departmentID = &id
	}

	month, err := s.findOrCreateMonth(ctx, req.Year, req.Month, departmentID, actorID)
	if err != nil {
		return GenerateScheduleResponse{}, err
	}

	employees, err := s.dir.ListActive(ctx, departmentID)
	if err != nil {
		return GenerateScheduleResponse{}, err
	}

	var totalEntries int
	var scheduled int

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		qtx := s.repo.WithTx(tx)

		for _, emp := range employees {
			created, err := s.materialize(ctx, qtx, emp, month)
			if err != nil {
				return err
			}
			if created > 0 {
				scheduled++
				totalEntries += created
			}
		}

		return s.enqueueGeneratedEvent(ctx, tx, month, scheduled, totalEntries, actorID)
	})
	if err != nil {
		return GenerateScheduleResponse{}, err
	}

	s.invalidateGrid(ctx, month.ID.String())

	s.logger.Info("schedule generated",
		zap.String("schedule_month_id", month.ID.String()),
		zap.Int("year", month.Year),
		zap.Int("month", month.Month),
		zap.Int("employees", scheduled),
		zap.Int("entries", totalEntries),
	)

	return GenerateScheduleResponse{
		ScheduleMonthResponse: mapMonthToResponse(*month),
		EmployeesScheduled:    scheduled,
		EntriesCreated:        totalEntries,
	}, nil
}

// findOrCreateMonth enforces the one-month-per-key invariant. Two
// concurrent calls can both miss the lookup; the unique index rejects the
// second insert and the loser recovers by re-fetching the winner's row.
func (s *service) findOrCreateMonth(ctx context.Context, year, month int, departmentID *uuid.UUID, actorID string) (*ScheduleMonth, error) {
	existing, err := s.repo.FindMonthByKey(ctx, year, month, departmentID)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	m := &ScheduleMonth{
		ID:           uuid.New(),
		Year:         year,
		Month:        month,
		DepartmentID: departmentID,
	}
	if actor, err := uuid.Parse(actorID); err == nil {
		m.CreatedByID = &actor
	}

	if err := s.repo.CreateMonth(ctx, m); err != nil {
		if isUniqueViolation(err) {
			s.logger.Warn("schedule month creation raced, reusing existing row",
				zap.Int("year", year), zap.Int("month", month))
			return s.repo.FindMonthByKey(ctx, year, month, departmentID)
		}
		return nil, err
	}

	return m, nil
}

// materialize wipes and regenerates one employee's entries for the month.
// An employee whose policy yields nothing (unknown policy, rotating
// policy without an anchor) ends up with zero entries; that is an
// expected outcome, not an error.
func (s *service) materialize(ctx context.Context, qtx Repository, emp EmployeeInfo, m *ScheduleMonth) (int, error) {
	if err := qtx.DeleteEntriesForEmployee(ctx, m.ID, emp.ID); err != nil {
		return 0, err
	}

	policy, known := NormalizePolicy(emp.ShiftPolicy)
	if !known {
		s.logger.Debug("unrecognized shift policy, skipping employee",
			zap.String("employee_id", emp.ID.String()),
			zap.String("shift_policy", emp.ShiftPolicy),
		)
		return 0, nil
	}
	if policy == PolicyRotating24On96Off && emp.RotationAnchor == nil {
		s.logger.Debug("rotating policy without anchor, skipping employee",
			zap.String("employee_id", emp.ID.String()),
		)
		return 0, nil
	}

	days := DaysInMonth(m.Year, time.Month(m.Month))
	entries := make([]ScheduleEntry, 0, days)

	for day := 1; day <= days; day++ {
		date := time.Date(m.Year, time.Month(m.Month), day, 0, 0, 0, 0, time.Local)

		shiftType, start, end, ok := EvaluateDay(policy, emp.RotationAnchor, date)
		if !ok {
			continue
		}

		entries = append(entries, ScheduleEntry{
			ID:              uuid.New(),
			ScheduleMonthID: m.ID,
			EmployeeID:      emp.ID,
			StartsAt:        start,
			EndsAt:          end,
			ShiftType:       shiftType,
		})
	}

	if err := qtx.CreateEntries(ctx, entries); err != nil {
		return 0, err
	}
	return len(entries), nil
}

func (s *service) enqueueGeneratedEvent(ctx context.Context, tx *gorm.DB, m *ScheduleMonth, scheduled, entries int, actorID string) error {
	if s.outbox == nil {
		return nil
	}

	var departmentID *string
	if m.DepartmentID != nil {
		v := m.DepartmentID.String()
		departmentID = &v
	}

	payload, err := json.Marshal(events.ScheduleGeneratedEvent{
		ScheduleMonthID: m.ID.String(),
		Year:            m.Year,
		Month:           m.Month,
		DepartmentID:    departmentID,
		Employees:       scheduled,
		Entries:         entries,
		GeneratedBy:     actorID,
	})
	if err != nil {
		return err
	}

	return s.outbox.WithTx(tx).Create(ctx, kafka.OutboxEvent{
		ID:            uuid.New().String(),
		RequestID:     contextutil.GetRequestID(ctx),
		AggregateType: "schedule_month",
		AggregateID:   m.ID.String(),
		EventType:     events.TypeScheduleGenerated,
		Topic:         events.TopicScheduleGenerated,
		Payload:       payload,
		Status:        kafka.OutboxStatusPending,
	})
}

func (s *service) ListMonths(ctx context.Context) ([]ScheduleMonthResponse, error) {
	months, err := s.repo.ListMonths(ctx)
	if err != nil {
		return nil, err
	}

	resp := make([]ScheduleMonthResponse, len(months))
	for i, m := range months {
		resp[i] = mapMonthToResponse(m)
	}
	return resp, nil
}

// GetGrid returns the month's entries grouped per employee and ordered by
// date. Reads go through redis with singleflight so a popular grid does
// not stampede the database after invalidation.
func (s *service) GetGrid(ctx context.Context, monthID string) (ScheduleGridResponse, error) {
	id, err := uuid.Parse(monthID)
	if err != nil {
		return ScheduleGridResponse{}, scheduleerrors.ErrMonthNotFound
	}

	cacheKey := gridCacheKey(monthID)
	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, cacheKey).Result(); err == nil {
			var resp ScheduleGridResponse
			if err := json.Unmarshal([]byte(cached), &resp); err == nil {
				return resp, nil
			}
		}
	}

	v, err, _ := s.sf.Do(cacheKey, func() (any, error) {
		resp, err := s.buildGrid(ctx, id)
		if err != nil {
			return nil, err
		}

		if s.rdb != nil {
			if data, err := json.Marshal(resp); err == nil {
				s.rdb.Set(ctx, cacheKey, data, gridCacheTTL)
			}
		}
		return resp, nil
	})
	if err != nil {
		return ScheduleGridResponse{}, err
	}

	return v.(ScheduleGridResponse), nil
}

func (s *service) buildGrid(ctx context.Context, monthID uuid.UUID) (ScheduleGridResponse, error) {
	m, err := s.repo.FindMonthByID(ctx, monthID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ScheduleGridResponse{}, scheduleerrors.ErrMonthNotFound
		}
		return ScheduleGridResponse{}, err
	}

	entries, err := s.repo.ListEntriesByMonth(ctx, m.ID)
	if err != nil {
		return ScheduleGridResponse{}, err
	}

	byEmployee := make(map[uuid.UUID][]ScheduleEntry)
	ids := make([]uuid.UUID, 0)
	for _, e := range entries {
		if _, seen := byEmployee[e.EmployeeID]; !seen {
			ids = append(ids, e.EmployeeID)
		}
		byEmployee[e.EmployeeID] = append(byEmployee[e.EmployeeID], e)
	}

	names, err := s.dir.NamesByIDs(ctx, ids)
	if err != nil {
		return ScheduleGridResponse{}, err
	}

	rows := make([]ScheduleRow, 0, len(ids))
	for _, employeeID := range ids {
		row := ScheduleRow{
			EmployeeID:   employeeID.String(),
			EmployeeName: names[employeeID],
		}
		for _, e := range byEmployee[employeeID] {
			row.Days = append(row.Days, mapEntryToCell(e))
		}
		rows = append(rows, row)
	}

	sort.Slice(rows, func(i, j int) bool {
		if rows[i].EmployeeName != rows[j].EmployeeName {
			return rows[i].EmployeeName < rows[j].EmployeeName
		}
		return rows[i].EmployeeID < rows[j].EmployeeID
	})

	return ScheduleGridResponse{
		Month:       mapMonthToResponse(*m),
		DaysInMonth: DaysInMonth(m.Year, time.Month(m.Month)),
		Rows:        rows,
	}, nil
}

func (s *service) GetEmployeeRow(ctx context.Context, monthID, employeeID string) (ScheduleRow, error) {
	mid, err := uuid.Parse(monthID)
	if err != nil {
		return ScheduleRow{}, scheduleerrors.ErrMonthNotFound
	}
	eid, err := uuid.Parse(employeeID)
	if err != nil {
		return ScheduleRow{}, scheduleerrors.ErrInvalidEmployeeID
	}

	if _, err := s.repo.FindMonthByID(ctx, mid); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ScheduleRow{}, scheduleerrors.ErrMonthNotFound
		}
		return ScheduleRow{}, err
	}

	emp, err := s.dir.Get(ctx, eid)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ScheduleRow{}, scheduleerrors.ErrEmployeeNotFound
		}
		return ScheduleRow{}, err
	}

	entries, err := s.repo.ListEntriesByMonthAndEmployee(ctx, mid, eid)
	if err != nil {
		return ScheduleRow{}, err
	}

	row := ScheduleRow{
		EmployeeID:   emp.ID.String(),
		EmployeeName: emp.FullName,
	}
	for _, e := range entries {
		row.Days = append(row.Days, mapEntryToCell(e))
	}
	return row, nil
}

// SetDay rewrites the single entry covering one calendar day for one
// employee. All other days stay untouched. Exactly one entry per
// (employee, day) is preserved: the lookup is by day-boundary membership
// and a missing entry is created before being overwritten.
func (s *service) SetDay(ctx context.Context, monthID string, req SetDayRequest) (SetDayResponse, error) {
	shiftType, valid := NormalizeShiftType(req.ShiftType)
	if !valid {
		return SetDayResponse{}, scheduleerrors.ErrInvalidShiftType
	}

	mid, err := uuid.Parse(monthID)
	if err != nil {
		return SetDayResponse{}, scheduleerrors.ErrMonthNotFound
	}
	employeeID, err := uuid.Parse(req.EmployeeID)
	if err != nil {
		return SetDayResponse{}, scheduleerrors.ErrInvalidEmployeeID
	}

	m, err := s.repo.FindMonthByID(ctx, mid)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return SetDayResponse{}, scheduleerrors.ErrMonthNotFound
		}
		return SetDayResponse{}, err
	}

	if req.Day < 1 || req.Day > DaysInMonth(m.Year, time.Month(m.Month)) {
		return SetDayResponse{}, scheduleerrors.ErrDayOutOfRange
	}

	if _, err := s.dir.Get(ctx, employeeID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return SetDayResponse{}, scheduleerrors.ErrEmployeeNotFound
		}
		return SetDayResponse{}, err
	}

	day := time.Date(m.Year, time.Month(m.Month), req.Day, 0, 0, 0, 0, time.Local)
	dayStart := day
	nextDay := day.AddDate(0, 0, 1)

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		qtx := s.repo.WithTx(tx)

		entry, err := qtx.FindEntryCoveringDay(ctx, m.ID, employeeID, dayStart, nextDay)
		if err != nil {
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return err
			}
			// Placeholder shell; overwritten with the canonical window
			// right below.
			entry = &ScheduleEntry{
				ID:              uuid.New(),
				ScheduleMonthID: m.ID,
				EmployeeID:      employeeID,
				StartsAt:        dayStart,
				EndsAt:          dayStart.Add(time.Hour),
				ShiftType:       ShiftOff,
			}
		}

		entry.StartsAt, entry.EndsAt = Window(shiftType, day)
		entry.ShiftType = shiftType

		return qtx.SaveEntry(ctx, entry)
	})
	if err != nil {
		return SetDayResponse{}, err
	}

	s.invalidateGrid(ctx, monthID)

	s.logger.Info("schedule day overridden",
		zap.String("schedule_month_id", monthID),
		zap.String("employee_id", req.EmployeeID),
		zap.Int("day", req.Day),
		zap.String("shift_type", shiftType),
	)

	return SetDayResponse{
		ShiftType: shiftType,
		Label:     DayLabel(shiftType),
	}, nil
}

func (s *service) DeleteMonth(ctx context.Context, monthID string) error {
	id, err := uuid.Parse(monthID)
	if err != nil {
		return scheduleerrors.ErrMonthNotFound
	}

	if _, err := s.repo.FindMonthByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return scheduleerrors.ErrMonthNotFound
		}
		return err
	}

	if err := s.repo.DeleteMonth(ctx, id); err != nil {
		return err
	}

	s.invalidateGrid(ctx, monthID)
	return nil
}

func (s *service) invalidateGrid(ctx context.Context, monthID string) {
	if s.rdb == nil {
		return
	}
	if err := s.rdb.Del(ctx, gridCacheKey(monthID)).Err(); err != nil {
		s.logger.Warn("grid cache invalidation failed",
			zap.String("schedule_month_id", monthID),
			zap.Error(err),
		)
	}
}

func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

func mapMonthToResponse(m ScheduleMonth) ScheduleMonthResponse {
	resp := ScheduleMonthResponse{
		ID:        m.ID.String(),
		Year:      m.Year,
		Month:     m.Month,
		CreatedAt: m.CreatedAt.Format(time.RFC3339),
	}
	if m.DepartmentID != nil {
		v := m.DepartmentID.String()
		resp.DepartmentID = &v
	}
	return resp
}

func mapEntryToCell(e ScheduleEntry) ScheduleDayCell {
	return ScheduleDayCell{
		Day:       e.StartsAt.Day(),
		ShiftType: e.ShiftType,
		Label:     DayLabel(e.ShiftType),
		StartsAt:  e.StartsAt.Format("2006-01-02 15:04"),
		EndsAt:    e.EndsAt.Format("2006-01-02 15:04"),
	}
}
