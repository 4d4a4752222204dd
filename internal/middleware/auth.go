package middleware

import (
	"errors"
	"strings"

	"github.com/boardflab/boardflab-backend/internal/common"
	"github.com/boardflab/boardflab-backend/pkg/jwt"
	"github.com/gin-gonic/gin"
)

const ctxKeyUsername = "username"

// bearerToken extracts the token from "Authorization: Bearer <token>"
func bearerToken(c *gin.Context) (string, bool) {
	parts := strings.Split(c.GetHeader("Authorization"), " ")
	if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
		return "", false
	}
	return parts[1], true
}

// JWTAuth JWT authentication middleware
func JWTAuth(jwtManager *jwt.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		// 1. Extract Authorization header
		if c.GetHeader("Authorization") == "" {
			common.ErrorResponse(c, 401, "Missing authorization header", nil)
			c.Abort()
			return
		}

		// 2. Parse Bearer token
		tokenString, ok := bearerToken(c)
		if !ok {
			common.ErrorResponse(c, 401, "Invalid authorization header format", nil)
			c.Abort()
			return
		}

		// 3. Verify token
		claims, err := jwtManager.VerifyToken(tokenString)
		if err != nil {
			if errors.Is(err, jwt.ErrExpiredToken) {
				common.ErrorResponse(c, 401, "Token expired", err)
			} else {
				common.ErrorResponse(c, 401, "Invalid token", err)
			}
			c.Abort()
			return
		}

		// 4. Store user info in context
		c.Set(ctxKeyUsername, claims.Username)

		c.Next()
	}
}

// OptionalJWTAuth 토큰이 유효하면 사용자 정보 저장, 없거나 유효하지 않으면 비로그인으로 진행
func OptionalJWTAuth(jwtManager *jwt.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		if tokenString, ok := bearerToken(c); ok {
			if claims, err := jwtManager.VerifyToken(tokenString); err == nil {
				c.Set(ctxKeyUsername, claims.Username)
			}
		}
		c.Next()
	}
}

// GetUsername extracts the authenticated username; "" for anonymous
func GetUsername(c *gin.Context) string {
	return c.GetString(ctxKeyUsername)
}
