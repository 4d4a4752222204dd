package handler

import (
	"errors"
	"io"
	"net/http"

	"github.com/boardflab/boardflab-backend/internal/common"
	"github.com/boardflab/boardflab-backend/internal/domain"
	"github.com/boardflab/boardflab-backend/internal/middleware"
	"github.com/boardflab/boardflab-backend/internal/service"
	"github.com/boardflab/boardflab-backend/pkg/ginutil"
	"github.com/gin-gonic/gin"
)

// PostHandler handles HTTP requests for posts
type PostHandler struct {
	service service.PostService
}

// NewPostHandler creates a new PostHandler
func NewPostHandler(service service.PostService) *PostHandler {
	return &PostHandler{service: service}
}

// ListPosts godoc
// @Summary      게시글 목록 조회
// @Description  게시판의 게시글 목록을 최신순으로 조회합니다
// @Tags         posts
// @Produce      json
// @Param        board_id  path   int  true   "게시판 ID"
// @Param        limit     query  int  false  "페이지당 항목 수 (기본값: 20, 최대 100)"
// @Param        offset    query  int  false  "건너뛸 항목 수"
// @Success      200  {object}  common.APIResponse{data=[]domain.PostSummary}
// @Failure      400  {object}  common.APIResponse
// @Router       /boards/{board_id}/posts [get]
func (h *PostHandler) ListPosts(c *gin.Context) {
	boardID, err := ginutil.ParamUint64(c, "board_id")
	if err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "Invalid board ID", err)
		return
	}

	req := &domain.ListPostsRequest{
		BoardID: boardID,
		Limit:   ginutil.QueryInt(c, "limit", 0),
		Offset:  ginutil.QueryInt(c, "offset", 0),
	}

	data, err := h.service.ListPosts(c.Request.Context(), req)
	if err != nil {
		common.AbortWithError(c, err)
		return
	}

	common.SuccessResponse(c, data, &common.Meta{
		BoardID: boardID,
		Limit:   req.Limit,
		Offset:  req.Offset,
		Count:   len(data),
	})
}

// GetPost godoc
// @Summary      게시글 상세 조회
// @Description  게시글을 조회하고 조회수를 1 증가시킵니다
// @Tags         posts
// @Produce      json
// @Param        id  path  int  true  "게시글 ID"
// @Success      200  {object}  common.APIResponse{data=domain.PostDetail}
// @Failure      401  {object}  common.APIResponse
// @Failure      404  {object}  common.APIResponse
// @Router       /posts/{id} [get]
func (h *PostHandler) GetPost(c *gin.Context) {
	id, err := ginutil.ParamUint64(c, "id")
	if err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "Invalid post ID", err)
		return
	}

	data, err := h.service.GetPost(c.Request.Context(), id, middleware.GetUsername(c))
	if err != nil {
		common.AbortWithError(c, err)
		return
	}

	common.SuccessResponse(c, data, nil)
}

// CreatePost godoc
// @Summary      게시글 작성
// @Description  로그인 사용자는 회원 글, 비로그인 사용자는 닉네임/비밀번호로 비회원 글을 작성합니다
// @Tags         posts
// @Accept       json
// @Produce      json
// @Param        request  body  domain.CreatePostRequest  true  "게시글 작성 요청"
// @Success      201  {object}  common.APIResponse
// @Failure      400  {object}  common.APIResponse
// @Failure      404  {object}  common.APIResponse
// @Router       /posts [post]
func (h *PostHandler) CreatePost(c *gin.Context) {
	var req domain.CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	id, err := h.service.CreatePost(c.Request.Context(), &req, middleware.GetUsername(c))
	if err != nil {
		common.AbortWithError(c, err)
		return
	}

	common.CreatedResponse(c, gin.H{"id": id})
}

// UpdatePost godoc
// @Summary      게시글 수정
// @Description  본문만 수정합니다. 비회원 글은 non_mem_pw가 필요합니다
// @Tags         posts
// @Accept       json
// @Param        id       path  int                       true  "게시글 ID"
// @Param        request  body  domain.UpdatePostRequest  true  "수정 요청"
// @Success      204
// @Failure      400  {object}  common.APIResponse
// @Failure      403  {object}  common.APIResponse
// @Failure      429  {object}  common.APIResponse
// @Router       /posts/{id} [put]
func (h *PostHandler) UpdatePost(c *gin.Context) {
	id, err := ginutil.ParamUint64(c, "id")
	if err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "Invalid post ID", err)
		return
	}

	var req domain.UpdatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	if err := h.service.UpdatePost(c.Request.Context(), id, &req, middleware.GetUsername(c)); err != nil {
		common.AbortWithError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// DeletePost godoc
// @Summary      게시글 삭제
// @Tags         posts
// @Accept       json
// @Param        id       path  int                       true   "게시글 ID"
// @Param        request  body  domain.DeletePostRequest  false  "비회원 비밀번호"
// @Success      204
// @Failure      403  {object}  common.APIResponse
// @Failure      404  {object}  common.APIResponse
// @Router       /posts/{id} [delete]
func (h *PostHandler) DeletePost(c *gin.Context) {
	id, err := ginutil.ParamUint64(c, "id")
	if err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "Invalid post ID", err)
		return
	}

	// 회원 글 삭제는 본문 없이 요청 가능
	var req domain.DeletePostRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		common.ErrorResponse(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	if err := h.service.DeletePost(c.Request.Context(), id, &req, middleware.GetUsername(c)); err != nil {
		common.AbortWithError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// IsLoginRequired godoc
// @Summary      로그인 필요 여부
// @Tags         posts
// @Produce      json
// @Param        id  path  int  true  "게시글 ID"
// @Success      200  {object}  common.APIResponse
// @Failure      404  {object}  common.APIResponse
// @Router       /posts/{id}/login-required [get]
func (h *PostHandler) IsLoginRequired(c *gin.Context) {
	id, err := ginutil.ParamUint64(c, "id")
	if err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "Invalid post ID", err)
		return
	}

	required, err := h.service.IsLoginRequired(c.Request.Context(), id)
	if err != nil {
		common.AbortWithError(c, err)
		return
	}

	common.SuccessResponse(c, gin.H{"login_required": required}, nil)
}
