package middleware

import (
	"fmt"
	"net/http"
	"os"
	"strings"

	autherrors "go-taskboard/internal/auth/errors"
	"go-taskboard/internal/domain"
	"go-taskboard/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// AuthMiddleware xác thực JWT và đưa thông tin người dùng vào gin context.
// Không có phiên hợp lệ thì chặn ngay với 401, không bao giờ default sang
// một người dùng ẩn danh.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		var tokenString string

		authHeader := c.GetHeader("Authorization")
		tokenString, found := strings.CutPrefix(authHeader, "Bearer ")
		if !found {
			tokenString = ""
		}

		if tokenString == "" {
			if cookie, err := c.Cookie("access_token"); err == nil {
				tokenString = cookie
			}
		}

		if tokenString == "" {
			response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Vui lòng đăng nhập để tiếp tục", nil)
			c.Abort()
			return
		}

		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method")
			}
			return []byte(os.Getenv("JWT_SECRET")), nil
		})

		if err != nil || !token.Valid {
			errObj := autherrors.ErrInvalidToken
			if err != nil && strings.Contains(err.Error(), "expired") {
				errObj = autherrors.ErrTokenExpired
			}
			response.Error(c, errObj.HTTPStatus, errObj.Code, errObj.Message, nil)
			c.Abort()
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			response.Error(c, http.StatusUnauthorized, "INVALID_TOKEN", "Token không hợp lệ", nil)
			c.Abort()
			return
		}

		userID, ok := claims["user_id"].(string)
		if !ok || userID == "" {
			response.Error(c, http.StatusUnauthorized, "INVALID_TOKEN", "Token thiếu user_id", nil)
			c.Abort()
			return
		}

		role, ok := claims["role"].(string)
		if !ok || !domain.ValidRole(role) {
			response.Error(c, http.StatusUnauthorized, "INVALID_TOKEN", "Token thiếu vai trò hợp lệ", nil)
			c.Abort()
			return
		}

		location, ok := claims["location"].(string)
		if !ok || !domain.ValidLocation(location) {
			response.Error(c, http.StatusUnauthorized, "INVALID_TOKEN", "Token thiếu khu vực hợp lệ", nil)
			c.Abort()
			return
		}

		// team_id có thể rỗng với retail_director
		teamID, _ := claims["team_id"].(string)
		name, _ := claims["name"].(string)
		email, _ := claims["email"].(string)

		c.Set("user_id", userID)
		c.Set("role", role)
		c.Set("team_id", teamID)
		c.Set("location", location)
		c.Set("user_name", name)
		c.Set("user_email", email)

		c.Next()
	}
}

// CurrentUser dựng lại giá trị phiên từ gin context sau AuthMiddleware.
func CurrentUser(c *gin.Context) domain.CurrentUser {
	return domain.CurrentUser{
		ID:       c.GetString("user_id"),
		Name:     c.GetString("user_name"),
		Email:    c.GetString("user_email"),
		Role:     c.GetString("role"),
		TeamID:   c.GetString("team_id"),
		Location: c.GetString("location"),
	}
}
