package scheduleerrors

import (
	"net/http"

	"github.com/Marllon-hub/hospital-plataforma/internal/shared/apperror"
)

var (
	ErrInvalidYear = apperror.New(
		apperror.CodeInvalidInput,
		"year is out of range",
		http.StatusBadRequest,
	)
	ErrInvalidMonth = apperror.New(
		apperror.CodeInvalidInput,
		"month must be between 1 and 12",
		http.StatusBadRequest,
	)
	ErrInvalidDepartmentID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid department id",
		http.StatusBadRequest,
	)
	ErrInvalidEmployeeID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid employee id",
		http.StatusBadRequest,
	)
	ErrInvalidShiftType = apperror.New(
		apperror.CodeInvalidInput,
		"shift type must be one of ON_DUTY, OFF, ROTATING_24H",
		http.StatusBadRequest,
	)
	ErrDayOutOfRange = apperror.New(
		apperror.CodeInvalidInput,
		"day is outside the schedule month",
		http.StatusBadRequest,
	)
	ErrMonthNotFound = apperror.New(
		apperror.CodeNotFound,
		"schedule month not found",
		http.StatusNotFound,
	)
	ErrEmployeeNotFound = apperror.New(
		apperror.CodeNotFound,
		"employee not found",
		http.StatusNotFound,
	)
)
