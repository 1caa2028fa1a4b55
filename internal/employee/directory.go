package employee

import (
	"context"

	"github.com/Marllon-hub/hospital-plataforma/internal/schedule"

	"github.com/google/uuid"
)

// directory adapts the employee repository to the lookup interface the
// schedule engine consumes.
type directory struct {
	repo Repository
}

func NewDirectory(repo Repository) schedule.Directory {
	return &directory{repo: repo}
}

func (d *directory) ListActive(ctx context.Context, departmentID *uuid.UUID) ([]schedule.EmployeeInfo, error) {
	employees, err := d.repo.FindActive(ctx, departmentID)
	if err != nil {
		return nil, err
	}

	infos := make([]schedule.EmployeeInfo, len(employees))
	for i, e := range employees {
		infos[i] = toEmployeeInfo(e)
	}
	return infos, nil
}

func (d *directory) Get(ctx context.Context, id uuid.UUID) (*schedule.EmployeeInfo, error) {
	e, err := d.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	info := toEmployeeInfo(*e)
	return &info, nil
}

func (d *directory) NamesByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]string, error) {
	employees, err := d.repo.FindByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	names := make(map[uuid.UUID]string, len(employees))
	for _, e := range employees {
		names[e.ID] = e.FullName
	}
	return names, nil
}

func toEmployeeInfo(e Employee) schedule.EmployeeInfo {
	return schedule.EmployeeInfo{
		ID:             e.ID,
		FullName:       e.FullName,
		ShiftPolicy:    e.ShiftPolicy,
		RotationAnchor: e.RotationAnchor,
	}
}
