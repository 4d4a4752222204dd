package handler

import (
	"net/http"

	"github.com/boardflab/boardflab-backend/internal/common"
	"github.com/boardflab/boardflab-backend/internal/domain"
	"github.com/boardflab/boardflab-backend/internal/middleware"
	"github.com/boardflab/boardflab-backend/internal/service"
	"github.com/gin-gonic/gin"
)

// AuthHandler handles authentication requests
type AuthHandler struct {
	service service.AuthService
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(service service.AuthService) *AuthHandler {
	return &AuthHandler{service: service}
}

// Register godoc
// @Summary      회원가입
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request  body  domain.RegisterRequest  true  "회원가입 요청"
// @Success      201  {object}  common.APIResponse{data=domain.UserResponse}
// @Failure      400  {object}  common.APIResponse
// @Failure      409  {object}  common.APIResponse
// @Router       /auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req domain.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	user, err := h.service.Register(c.Request.Context(), &req)
	if err != nil {
		common.AbortWithError(c, err)
		return
	}

	common.CreatedResponse(c, user)
}

// Login godoc
// @Summary      로그인
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request  body  domain.LoginRequest  true  "로그인 요청"
// @Success      200  {object}  common.APIResponse{data=domain.LoginResponse}
// @Failure      401  {object}  common.APIResponse
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req domain.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	resp, err := h.service.Login(c.Request.Context(), &req)
	if err != nil {
		common.AbortWithError(c, err)
		return
	}

	common.SuccessResponse(c, resp, nil)
}

// Me returns the current user
func (h *AuthHandler) Me(c *gin.Context) {
	user, err := h.service.Me(c.Request.Context(), middleware.GetUsername(c))
	if err != nil {
		common.AbortWithError(c, err)
		return
	}

	common.SuccessResponse(c, user, nil)
}
