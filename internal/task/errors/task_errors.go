package taskerrors

import (
	"net/http"

	"go-taskboard/internal/shared/apperror"
)

var (
	ErrTaskNotFound = apperror.New(
		apperror.CodeNotFound,
		"Không tìm thấy công việc",
		http.StatusNotFound,
	)
	ErrInvalidTaskID = apperror.New(
		apperror.CodeInvalidInput,
		"task id không hợp lệ",
		http.StatusBadRequest,
	)
	ErrInvalidAssignee = apperror.New(
		apperror.CodeInvalidInput,
		"Người được giao việc không hợp lệ",
		http.StatusBadRequest,
	)
	ErrInvalidDateFormat = apperror.New(
		apperror.CodeInvalidInput,
		"Định dạng ngày phải là YYYY-MM-DD",
		http.StatusBadRequest,
	)
	ErrInvalidDateRange = apperror.New(
		apperror.CodeInvalidInput,
		"Ngày bắt đầu phải trước hoặc bằng hạn chót",
		http.StatusBadRequest,
	)
	ErrTabNotAllowed = apperror.New(
		apperror.CodeForbidden,
		"Bạn không có quyền xem tab này",
		http.StatusForbidden,
	)
	ErrTaskForbidden = apperror.New(
		apperror.CodeForbidden,
		"Bạn không có quyền thao tác trên công việc này",
		http.StatusForbidden,
	)
	ErrNoTeam = apperror.New(
		apperror.CodeInvalidState,
		"Tài khoản chưa thuộc nhóm nào",
		http.StatusBadRequest,
	)
)
