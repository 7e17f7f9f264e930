package apperror

import (
	"fmt"
	"net/http"
)

var (
	ErrNotFound = New(
		CodeNotFound,
		"Không tìm thấy dữ liệu",
		http.StatusNotFound,
	)

	ErrForbidden = New(
		CodeForbidden,
		"Bạn không có quyền truy cập tài nguyên này",
		http.StatusForbidden,
	)

	ErrInternal = New(
		CodeInternalError,
		"Đã xảy ra lỗi không mong muốn",
		http.StatusInternalServerError,
	)

	ErrUnauthorized = New(
		CodeUnauthorized,
		"Vui lòng đăng nhập để tiếp tục",
		http.StatusUnauthorized,
	)

	ErrInvalidInput = New(
		CodeInvalidInput,
		"Dữ liệu gửi lên không hợp lệ",
		http.StatusBadRequest,
	)
)

func RequiredField(field string) *AppError {
	return New(
		CodeInvalidInput,
		fmt.Sprintf("%s là trường bắt buộc", field),
		http.StatusBadRequest,
	)
}

func InvalidField(field string) *AppError {
	return New(
		CodeInvalidInput,
		fmt.Sprintf("%s không hợp lệ", field),
		http.StatusBadRequest,
	)
}
