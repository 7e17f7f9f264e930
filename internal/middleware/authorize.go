package middleware

import (
	"net/http"

	"go-taskboard/internal/domain"

	"github.com/gin-gonic/gin"
)

// PermissionService là interface cục bộ: package nào có Enforce tương thích
// đều dùng được ở đây.
type PermissionService interface {
	Enforce(req domain.EnforceRequest) (bool, error)
}

func Authorize(service PermissionService, resource, action string) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok1 := c.Get("user_id")
		role, ok2 := c.Get("role")

		if !ok1 || !ok2 {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "missing auth context"})
			c.Abort()
			return
		}

		req := domain.EnforceRequest{
			UserID:   userID.(string),
			Role:     role.(string),
			Resource: resource,
			Action:   action,
		}

		allowed, err := service.Enforce(req)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			c.Abort()
			return
		}

		if !allowed {
			c.JSON(http.StatusForbidden, gin.H{
				"error":    "forbidden",
				"message":  "Bạn không có quyền truy cập tài nguyên này",
				"required": resource + ":" + action,
			})
			c.Abort()
			return
		}
		c.Next()
	}
}
