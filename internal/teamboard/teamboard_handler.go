package teamboard

import (
	"net/http"

	"go-taskboard/internal/middleware"
	"go-taskboard/internal/shared/apperror"
	"go-taskboard/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("teamboard.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("teamboard.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) Overview(c *gin.Context) {
	var q OverviewQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		h.logger.Warn("http teamboard overview validation failed", zap.Error(err))
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Tham số lọc không hợp lệ", err.Error())
		return
	}

	boards, err := h.service.Overview(c.Request.Context(), middleware.CurrentUser(c), q)
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		h.logger.Warn("teamboard request failed",
			zap.Int("status", httpErr.Status),
			zap.String("code", httpErr.Code),
		)
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
		return
	}
	response.Success(c, http.StatusOK, boards, nil)
}
