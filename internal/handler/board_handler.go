package handler

import (
	"github.com/boardflab/boardflab-backend/internal/common"
	"github.com/boardflab/boardflab-backend/internal/service"
	"github.com/gin-gonic/gin"
)

// BoardHandler handles board listing
type BoardHandler struct {
	service service.BoardService
}

// NewBoardHandler creates a new BoardHandler
func NewBoardHandler(service service.BoardService) *BoardHandler {
	return &BoardHandler{service: service}
}

// ListBoards godoc
// @Summary      게시판 목록
// @Tags         boards
// @Produce      json
// @Success      200  {object}  common.APIResponse{data=[]domain.Board}
// @Router       /boards [get]
func (h *BoardHandler) ListBoards(c *gin.Context) {
	boards, err := h.service.ListBoards(c.Request.Context())
	if err != nil {
		common.AbortWithError(c, err)
		return
	}

	common.SuccessResponse(c, boards, &common.Meta{Count: len(boards)})
}
