package teamerrors

import (
	"net/http"

	"go-taskboard/internal/shared/apperror"
)

var (
	ErrTeamNotFound = apperror.New(
		apperror.CodeNotFound,
		"Không tìm thấy nhóm",
		http.StatusNotFound,
	)
	ErrInvalidTeamID = apperror.New(
		apperror.CodeInvalidInput,
		"team id không hợp lệ",
		http.StatusBadRequest,
	)
	ErrTeamNameTaken = apperror.New(
		apperror.CodeConflict,
		"Tên nhóm đã tồn tại trong khu vực này",
		http.StatusConflict,
	)
)
