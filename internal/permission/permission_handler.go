package permission

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
	l := zap.L().Named("permission.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("permission.handler")
	}
	return &Handler{service: service, logger: l}
}

// GetCapabilities trả về capability của phiên hiện tại để SPA
// quyết định bày tab/toggle nào.
func (h *Handler) GetCapabilities(c *gin.Context) {
	u := middleware.CurrentUser(c)

	caps, err := h.service.Capabilities(u)
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}

	response.Success(c, http.StatusOK, caps, nil)
}

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	perms := r.Group("/permissions")
	perms.Use(middleware.AuthMiddleware())
	{
		perms.GET("/capabilities", handler.GetCapabilities)
	}
}
