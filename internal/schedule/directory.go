package schedule

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// EmployeeInfo is the slice of the employee record the schedule engine
// needs; the full employee entity stays in the employee package.
type EmployeeInfo struct {
	ID             uuid.UUID
	FullName       string
	ShiftPolicy    string
	RotationAnchor *time.Time
}

// Directory is the employee lookup the engine consumes. Read-only: the
// engine never mutates employee records.
//
//go:generate mockgen -source=directory.go -destination=mock/directory_mock.go -package=mock
type Directory interface {
	// ListActive returns active employees ordered by name, optionally
	// filtered to one department.
	ListActive(ctx context.Context, departmentID *uuid.UUID) ([]EmployeeInfo, error)
	// Get returns one employee regardless of status.
	Get(ctx context.Context, id uuid.UUID) (*EmployeeInfo, error)
	// NamesByIDs resolves display names for grid rendering; ids absent
	// from the result were not found.
	NamesByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]string, error)
}
