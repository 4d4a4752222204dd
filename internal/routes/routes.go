package routes

import (
	"github.com/boardflab/boardflab-backend/internal/config"
	"github.com/boardflab/boardflab-backend/internal/handler"
	"github.com/boardflab/boardflab-backend/internal/middleware"
	"github.com/boardflab/boardflab-backend/pkg/jwt"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

// Setup configures all API routes
func Setup(
	router *gin.Engine,
	postHandler *handler.PostHandler,
	authHandler *handler.AuthHandler,
	boardHandler *handler.BoardHandler,
	jwtManager *jwt.Manager,
	redisClient *redis.Client,
	cfg *config.Config,
) {
	api := router.Group("/api/v1")

	// Authentication endpoints
	auth := api.Group("/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)
	auth.GET("/me", middleware.JWTAuth(jwtManager), authHandler.Me)

	// 게시판 / 게시글: 로그인은 선택
	optionalAuth := middleware.OptionalJWTAuth(jwtManager)

	boards := api.Group("/boards", optionalAuth)
	boards.GET("", boardHandler.ListBoards)
	boards.GET("/:board_id/posts", postHandler.ListPosts)

	// 수정/삭제는 비회원 비밀번호 대입 방지를 위해 IP별 제한
	modifyLimit := middleware.RateLimit(redisClient, middleware.ModifyRateLimitConfig(cfg.RateLimit.ModifyPerMinute))

	posts := api.Group("/posts", optionalAuth)
	{
		posts.POST("", postHandler.CreatePost)
		posts.GET("/:id", postHandler.GetPost)
		posts.GET("/:id/login-required", postHandler.IsLoginRequired)
		posts.PUT("/:id", modifyLimit, postHandler.UpdatePost)
		posts.DELETE("/:id", modifyLimit, postHandler.DeletePost)
	}
}
