package handler

import (
	"strconv"

	"wanderfeed/internal/domain/engagement/service"
	"wanderfeed/internal/pkg/middleware"
	"wanderfeed/pkg/response"

	"github.com/gin-gonic/gin"
)

// EngagementHandler exposes likes and bookmarks.
type EngagementHandler struct {
	engagement service.EngagementService
}

func NewEngagementHandler(engagement service.EngagementService) *EngagementHandler {
	return &EngagementHandler{engagement: engagement}
}

func parsePostID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.Error(c, 400, response.ErrInvalidParam, "Invalid post id")
		return 0, false
	}
	return uint(id), true
}

func (h *EngagementHandler) AddLike(c *gin.Context) {
	id, ok := parsePostID(c)
	if !ok {
		return
	}

	if err := h.engagement.AddLike(middleware.CurrentUserID(c), id); err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, true)
}

func (h *EngagementHandler) RemoveLike(c *gin.Context) {
	id, ok := parsePostID(c)
	if !ok {
		return
	}

	if err := h.engagement.RemoveLike(middleware.CurrentUserID(c), id); err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, true)
}

func (h *EngagementHandler) CountLikes(c *gin.Context) {
	id, ok := parsePostID(c)
	if !ok {
		return
	}

	count, err := h.engagement.CountLikes(id)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, gin.H{"count": count})
}

func (h *EngagementHandler) AddBookmark(c *gin.Context) {
	id, ok := parsePostID(c)
	if !ok {
		return
	}

	if err := h.engagement.AddBookmark(middleware.CurrentUserID(c), id); err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, true)
}

func (h *EngagementHandler) RemoveBookmark(c *gin.Context) {
	id, ok := parsePostID(c)
	if !ok {
		return
	}

	if err := h.engagement.RemoveBookmark(middleware.CurrentUserID(c), id); err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, true)
}

func (h *EngagementHandler) ListBookmarks(c *gin.Context) {
	posts, err := h.engagement.ListBookmarks(middleware.CurrentUserID(c))
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, posts)
}
