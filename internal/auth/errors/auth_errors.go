package autherrors

import (
	"net/http"

	"github.com/Marllon-hub/hospital-plataforma/internal/shared/apperror"
)

var (
	ErrInvalidCredentials = apperror.New(
		"INVALID_CREDENTIALS",
		"CPF or password is incorrect",
		http.StatusUnauthorized,
	)

	ErrInvalidToken = apperror.New(
		"INVALID_TOKEN",
		"Token is invalid",
		http.StatusUnauthorized,
	)

	ErrTokenExpired = apperror.New(
		"TOKEN_EXPIRED",
		"Token has expired",
		http.StatusUnauthorized,
	)

	ErrInvalidRefreshToken = apperror.New(
		"INVALID_REFRESH_TOKEN",
		"Refresh token is invalid",
		http.StatusUnauthorized,
	)

	ErrTokenGenerationFailed = apperror.New(
		"TOKEN_GENERATION_FAILED",
		"Failed to generate token",
		http.StatusInternalServerError,
	)

	ErrUserNotFound = apperror.New(
		"USER_NOT_FOUND",
		"User not found",
		http.StatusNotFound,
	)

	ErrInvalidUserID = apperror.New(
		"INVALID_USER_ID",
		"User ID is not a valid UUID",
		http.StatusBadRequest,
	)

	ErrForbidden = apperror.New(
		"FORBIDDEN",
		"You do not have permission to perform this action",
		http.StatusForbidden,
	)

	ErrWrongPassword = apperror.New(
		"WRONG_PASSWORD",
		"Current password is incorrect",
		http.StatusUnauthorized,
	)
)
