package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/litmart/litmart-backend/internal/common"
	"github.com/litmart/litmart-backend/pkg/jwt"
)

// JWTAuth JWT authentication middleware
func JWTAuth(jwtManager *jwt.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		// 1. Extract Authorization header
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			common.ErrorResponse(c, http.StatusUnauthorized, "Missing authorization header", nil)
			c.Abort()
			return
		}

		// 2. Parse Bearer token
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			common.ErrorResponse(c, http.StatusUnauthorized, "Invalid authorization header format", nil)
			c.Abort()
			return
		}

		tokenString := parts[1]

		// 3. Verify token
		claims, err := jwtManager.VerifyToken(tokenString)
		if err != nil {
			if errors.Is(err, jwt.ErrExpiredToken) {
				common.ErrorResponse(c, http.StatusUnauthorized, "Token expired", err)
			} else {
				common.ErrorResponse(c, http.StatusUnauthorized, "Invalid token", err)
			}
			c.Abort()
			return
		}

		// 4. Store member info in context
		c.Set("memberID", claims.MemberID)
		c.Set("username", claims.Username)
		c.Set("level", claims.Level)

		c.Next()
	}
}

// GetMemberID extracts the member ID from context
func GetMemberID(c *gin.Context) int64 {
	memberID, exists := c.Get("memberID")
	if !exists {
		return 0
	}
	if id, ok := memberID.(int64); ok {
		return id
	}
	return 0
}

// GetUsername extracts the username from context
func GetUsername(c *gin.Context) string {
	username, exists := c.Get("username")
	if !exists {
		return ""
	}
	if str, ok := username.(string); ok {
		return str
	}
	return ""
}

// GetMemberLevel extracts the member level from context
func GetMemberLevel(c *gin.Context) int {
	level, exists := c.Get("level")
	if !exists {
		return 0
	}
	if l, ok := level.(int); ok {
		return l
	}
	return 0
}
