package permissionerrors

import (
	"net/http"

	"go-taskboard/internal/shared/apperror"
)

var (
	ErrUnauthenticated = apperror.New(
		apperror.CodeUnauthorized,
		"Không xác định được người dùng, vui lòng đăng nhập lại",
		http.StatusUnauthorized,
	)
	ErrUnknownRole = apperror.New(
		apperror.CodeInvalidState,
		"Vai trò người dùng không được hỗ trợ",
		http.StatusForbidden,
	)
)
