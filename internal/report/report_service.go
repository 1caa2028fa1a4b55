package report

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/Marllon-hub/hospital-plataforma/internal/schedule"
	"github.com/Marllon-hub/hospital-plataforma/internal/shared/apperror"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var ErrInvalidDepartmentFilter = apperror.New(
	"INVALID_DEPARTMENT_FILTER",
	"departmentId must be a valid UUID",
	http.StatusBadRequest,
)

//go:generate mockgen -source=report_service.go -destination=mock/report_service_mock.go -package=mock
type Service interface {
	RosterPDF(ctx context.Context, departmentID string) ([]byte, error)
}

type service struct {
	dir    schedule.Directory
	logger *zap.Logger
}

func NewService(dir schedule.Directory) Service {
	return &service{
		dir:    dir,
		logger: zap.L().Named("report_service"),
	}
}

func (s *service) RosterPDF(ctx context.Context, departmentID string) ([]byte, error) {
	var filter *uuid.UUID
	if departmentID != "" {
		did, err := uuid.Parse(departmentID)
		if err != nil {
			return nil, ErrInvalidDepartmentFilter
		}
		filter = &did
	}

	employees, err := s.dir.ListActive(ctx, filter)
	if err != nil {
		return nil, err
	}

	lines := make([]string, 0, len(employees)+3)
	lines = append(lines,
		"Quadro de Funcionários Ativos",
		fmt.Sprintf("Emitido em %s - %d funcionário(s)", time.Now().Format("02/01/2006"), len(employees)),
		"",
	)
	for _, emp := range employees {
		lines = append(lines, fmt.Sprintf("%s - %s", emp.FullName, policyLabel(emp.ShiftPolicy)))
	}

	s.logger.Info("roster report generated", zap.Int("employees", len(employees)))
	return BuildTextPDF(lines)
}

func policyLabel(policy string) string {
	switch policy {
	case schedule.PolicyRotating24On96Off:
		return "Plantão 24x96"
	case schedule.PolicyWeekday9to5:
		return "Expediente seg-sex"
	default:
		return policy
	}
}
