package handler

import (
	"strconv"
	"strings"

	"wanderfeed/internal/domain/post/service"
	"wanderfeed/internal/pkg/middleware"
	"wanderfeed/pkg/response"
	"wanderfeed/pkg/utils"

	"github.com/gin-gonic/gin"
)

// PostHandler exposes post CRUD, the feeds and reporting.
type PostHandler struct {
	posts service.PostService
	feed  service.FeedService
}

func NewPostHandler(posts service.PostService, feed service.FeedService) *PostHandler {
	return &PostHandler{posts: posts, feed: feed}
}

// CreatePostInput is the post creation request body. Pictures carry object
// keys returned by the upload endpoint.
type CreatePostInput struct {
	Title       string   `json:"title" binding:"required"`
	Description string   `json:"description"`
	Link        string   `json:"link"`
	Pictures    []string `json:"pictures"`
	Region      string   `json:"region"`
	Tag         string   `json:"tag"`
}

// EditPostInput is the post edit request body; omitted fields stay unchanged.
type EditPostInput struct {
	Title       *string   `json:"title"`
	Description *string   `json:"description"`
	Link        *string   `json:"link"`
	Pictures    *[]string `json:"pictures"`
	Region      *string   `json:"region"`
	Tag         *string   `json:"tag"`
}

// ReportInput is the report request body.
type ReportInput struct {
	Description string `json:"description" binding:"required"`
}

func parsePostID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.Error(c, 400, response.ErrInvalidParam, "Invalid post id")
		return 0, false
	}
	return uint(id), true
}

func viewer(c *gin.Context) *uint {
	if id, ok := middleware.ViewerID(c); ok {
		return &id
	}
	return nil
}

// CreatePost godoc
// @Summary Create a post
// @Tags posts
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body CreatePostInput true "post"
// @Success 200 {object} response.Response
// @Router /posts [post]
func (h *PostHandler) CreatePost(c *gin.Context) {
	var input CreatePostInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, 400, response.ErrInvalidParam, err.Error())
		return
	}

	post, err := h.posts.CreatePost(middleware.CurrentUserID(c), service.CreatePostInput{
		Title:       input.Title,
		Description: input.Description,
		Link:        input.Link,
		Pictures:    input.Pictures,
		Region:      input.Region,
		Tag:         input.Tag,
	})
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, post)
}

func (h *PostHandler) EditPost(c *gin.Context) {
	id, ok := parsePostID(c)
	if !ok {
		return
	}

	var input EditPostInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, 400, response.ErrInvalidParam, err.Error())
		return
	}

	post, err := h.posts.EditPost(middleware.CurrentUserID(c), id, service.EditPostInput{
		Title:       input.Title,
		Description: input.Description,
		Link:        input.Link,
		Pictures:    input.Pictures,
		Region:      input.Region,
		Tag:         input.Tag,
	})
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, post)
}

func (h *PostHandler) DeletePost(c *gin.Context) {
	id, ok := parsePostID(c)
	if !ok {
		return
	}

	if err := h.posts.DeletePost(middleware.CurrentUserID(c), id); err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, true)
}

func (h *PostHandler) GetPost(c *gin.Context) {
	id, ok := parsePostID(c)
	if !ok {
		return
	}

	post, err := h.posts.GetPost(id, viewer(c))
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, post)
}

func (h *PostHandler) ListMyPosts(c *gin.Context) {
	posts, err := h.posts.ListByOwner(middleware.CurrentUserID(c))
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, posts)
}

// ListAll godoc
// @Summary List all posts, newest first
// @Tags posts
// @Produce json
// @Param page query int false "page number"
// @Param limit query int false "page size"
// @Success 200 {object} response.Response
// @Router /posts [get]
func (h *PostHandler) ListAll(c *gin.Context) {
	var page utils.Pagination
	if err := c.ShouldBindQuery(&page); err != nil {
		response.Error(c, 400, response.ErrInvalidParam, err.Error())
		return
	}
	offset, limit := page.GetPageOffset()

	posts, total, err := h.feed.ListAll(viewer(c), offset, limit)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, utils.PageResult{
		List:  posts,
		Total: total,
		Page:  page.Page,
		Limit: page.Limit,
	})
}

func (h *PostHandler) ListByTags(c *gin.Context) {
	raw := c.Query("tags")
	if raw == "" {
		response.Error(c, 400, response.ErrInvalidParam, "tags is required")
		return
	}

	tags := strings.Split(raw, ",")
	posts, err := h.feed.ListByTags(tags, viewer(c))
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, posts)
}

func (h *PostHandler) ListSubscribed(c *gin.Context) {
	posts, err := h.feed.ListSubscribed(middleware.CurrentUserID(c))
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, posts)
}

func (h *PostHandler) Search(c *gin.Context) {
	query := c.Query("query")
	if query == "" {
		response.Error(c, 400, response.ErrInvalidParam, "query is required")
		return
	}

	result, err := h.feed.Search(query)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, result)
}

func (h *PostHandler) ReportPost(c *gin.Context) {
	id, ok := parsePostID(c)
	if !ok {
		return
	}

	var input ReportInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, 400, response.ErrInvalidParam, err.Error())
		return
	}

	if err := h.posts.ReportPost(middleware.CurrentUserID(c), id, input.Description); err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, true)
}
