package auth

import (
	"go-taskboard/internal/middleware"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	auth := r.Group("/auth")
	{
		// Chặn brute force đăng nhập theo IP
		auth.POST("/login", middleware.RateLimitByIP(rate.Limit(1), 5), handler.Login)
		auth.POST("/refresh", handler.Refresh)
		auth.POST("/register", handler.Register)
		auth.POST("/logout", handler.Logout)
		auth.GET("/me", middleware.AuthMiddleware(), handler.Me)
	}
}
