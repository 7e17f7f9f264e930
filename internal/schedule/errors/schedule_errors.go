package scheduleerrors

import (
	"net/http"

	"go-taskboard/internal/shared/apperror"
)

var (
	ErrEmptyPlanName = apperror.New(
		apperror.CodeInvalidInput,
		"Tên kế hoạch không được để trống",
		http.StatusBadRequest,
	)
	ErrPastDate = apperror.New(
		apperror.CodeInvalidInput,
		"Không thể lên lịch cho ngày trong quá khứ",
		http.StatusBadRequest,
	)
	ErrInvalidDate = apperror.New(
		apperror.CodeInvalidInput,
		"Định dạng ngày phải là YYYY-MM-DD",
		http.StatusBadRequest,
	)
	ErrInvalidTaskRef = apperror.New(
		apperror.CodeInvalidInput,
		"Công việc gắn vào kế hoạch không hợp lệ",
		http.StatusBadRequest,
	)
	ErrInvalidSlot = apperror.New(
		apperror.CodeInvalidInput,
		"Ca làm việc không hợp lệ",
		http.StatusBadRequest,
	)
	ErrInvalidEmployee = apperror.New(
		apperror.CodeInvalidInput,
		"Nhân viên không hợp lệ",
		http.StatusBadRequest,
	)
	ErrOutsideWeek = apperror.New(
		apperror.CodeInvalidInput,
		"Ngày phân ca nằm ngoài tuần đang lưu",
		http.StatusBadRequest,
	)
	ErrShiftDuplicate = apperror.New(
		apperror.CodeConflict,
		"Nhân viên đã được xếp vào đúng ca này rồi",
		http.StatusConflict,
	)
	ErrShiftNeedsConfirm = apperror.New(
		apperror.CodeConfirmRequired,
		"Nhân viên đã có ca khác trong ngày này, cần xác nhận để thay thế",
		http.StatusConflict,
	)
)
