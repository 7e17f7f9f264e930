package usererrors

import (
	"net/http"

	"go-taskboard/internal/shared/apperror"
)

var (
	ErrUserNotFound = apperror.New(
		apperror.CodeNotFound,
		"Không tìm thấy người dùng",
		http.StatusNotFound,
	)
	ErrInvalidUserID = apperror.New(
		apperror.CodeInvalidInput,
		"user id không hợp lệ",
		http.StatusBadRequest,
	)
	ErrInvalidTeamID = apperror.New(
		apperror.CodeInvalidInput,
		"team id không hợp lệ",
		http.StatusBadRequest,
	)
	ErrInvalidLocation = apperror.New(
		apperror.CodeInvalidInput,
		"Khu vực phải là hanoi hoặc hcm",
		http.StatusBadRequest,
	)
)
