package employeeerrors

import (
	"net/http"

	"github.com/Marllon-hub/hospital-plataforma/internal/shared/apperror"
)

var (
	ErrEmployeeNotFound = apperror.New(
		"EMPLOYEE_NOT_FOUND",
		"Employee not found",
		http.StatusNotFound,
	)

	ErrCPFAlreadyRegistered = apperror.New(
		"CPF_ALREADY_REGISTERED",
		"An employee with this CPF already exists",
		http.StatusConflict,
	)

	ErrInvalidCPF = apperror.New(
		"INVALID_CPF",
		"CPF must contain exactly 11 digits",
		http.StatusBadRequest,
	)

	ErrInvalidDate = apperror.New(
		"INVALID_DATE",
		"Date must be in YYYY-MM-DD format",
		http.StatusBadRequest,
	)

	ErrInvalidShiftPolicy = apperror.New(
		"INVALID_SHIFT_POLICY",
		"Shift policy is not recognized",
		http.StatusBadRequest,
	)

	ErrDepartmentNotFound = apperror.New(
		"DEPARTMENT_NOT_FOUND",
		"Department not found",
		http.StatusNotFound,
	)

	ErrEmptyImportFile = apperror.New(
		"EMPTY_IMPORT_FILE",
		"The CSV file has no data rows",
		http.StatusBadRequest,
	)

	ErrMissingImportColumns = apperror.New(
		"MISSING_IMPORT_COLUMNS",
		"The CSV file must contain at least name and CPF columns",
		http.StatusBadRequest,
	)
)
