package autherrors

import (
	"net/http"

	"go-taskboard/internal/shared/apperror"
)

var (
	ErrInvalidCredentials = apperror.New(
		apperror.CodeUnauthorized,
		"Email hoặc mật khẩu không đúng",
		http.StatusUnauthorized,
	)
	ErrInvalidToken = apperror.New(
		apperror.CodeUnauthorized,
		"Token không hợp lệ",
		http.StatusUnauthorized,
	)
	ErrTokenExpired = apperror.New(
		apperror.CodeUnauthorized,
		"Phiên đã hết hạn, vui lòng đăng nhập lại",
		http.StatusUnauthorized,
	)
	ErrInvalidRefreshToken = apperror.New(
		apperror.CodeUnauthorized,
		"Refresh token không hợp lệ",
		http.StatusUnauthorized,
	)
	ErrInvalidUserID = apperror.New(
		apperror.CodeInvalidInput,
		"user id không hợp lệ",
		http.StatusBadRequest,
	)
	ErrUserNotFound = apperror.New(
		apperror.CodeNotFound,
		"Không tìm thấy người dùng",
		http.StatusNotFound,
	)
	ErrEmailTaken = apperror.New(
		apperror.CodeConflict,
		"Email đã được sử dụng",
		http.StatusConflict,
	)
	ErrTokenGenerationFailed = apperror.New(
		apperror.CodeInternalError,
		"Không tạo được phiên đăng nhập",
		http.StatusInternalServerError,
	)
	ErrForbidden = apperror.New(
		apperror.CodeForbidden,
		"Bạn không có quyền truy cập tài nguyên này",
		http.StatusForbidden,
	)
	ErrAccountDisabled = apperror.New(
		apperror.CodeForbidden,
		"Tài khoản đã bị khoá",
		http.StatusForbidden,
	)
)
