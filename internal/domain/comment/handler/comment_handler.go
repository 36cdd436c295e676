package handler

import (
	"strconv"

	"wanderfeed/internal/domain/comment/service"
	"wanderfeed/internal/pkg/middleware"
	"wanderfeed/pkg/response"

	"github.com/gin-gonic/gin"
)

// CommentHandler exposes comment creation, listing and deletion.
type CommentHandler struct {
	comments service.CommentService
}

func NewCommentHandler(comments service.CommentService) *CommentHandler {
	return &CommentHandler{comments: comments}
}

// CommentInput is the comment creation request body.
type CommentInput struct {
	Content string `json:"content" binding:"required"`
}

func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.Error(c, 400, response.ErrInvalidParam, "Invalid id")
		return 0, false
	}
	return uint(id), true
}

func (h *CommentHandler) AddComment(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var input CommentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, 400, response.ErrInvalidParam, err.Error())
		return
	}

	comment, err := h.comments.AddComment(middleware.CurrentUserID(c), id, input.Content)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, comment)
}

func (h *CommentHandler) ListByPost(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	comments, err := h.comments.ListByPost(id)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, comments)
}

func (h *CommentHandler) DeleteComment(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.comments.DeleteComment(middleware.CurrentUserID(c), id); err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, true)
}
