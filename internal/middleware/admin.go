package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/litmart/litmart-backend/internal/common"
	"github.com/litmart/litmart-backend/internal/domain"
)

// RequireAdmin checks that the authenticated member has admin level
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		level := GetMemberLevel(c)
		if level < domain.LevelAdmin {
			common.ErrorResponse(c, http.StatusForbidden, "Admin privileges required", nil)
			c.Abort()
			return
		}
		c.Next()
	}
}

// IsAdmin reports whether the current request is from an admin
func IsAdmin(c *gin.Context) bool {
	return GetMemberLevel(c) >= domain.LevelAdmin
}
