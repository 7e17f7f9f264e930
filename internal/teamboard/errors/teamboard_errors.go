package teamboarderrors

import (
	"net/http"

	"go-taskboard/internal/shared/apperror"
)

var (
	ErrNoTeam = apperror.New(
		apperror.CodeInvalidState,
		"Tài khoản chưa thuộc nhóm nào",
		http.StatusBadRequest,
	)
	ErrTeamNotVisible = apperror.New(
		apperror.CodeForbidden,
		"Bạn không có quyền xem nhóm này",
		http.StatusForbidden,
	)
)
