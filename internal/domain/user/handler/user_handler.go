package handler

import (
	"strconv"

	"wanderfeed/internal/domain/user/service"
	"wanderfeed/internal/pkg/middleware"
	"wanderfeed/pkg/response"

	"github.com/gin-gonic/gin"
)

// UserHandler exposes accounts, profiles and the social graph.
type UserHandler struct {
	users service.UserService
	graph service.GraphService
}

func NewUserHandler(users service.UserService, graph service.GraphService) *UserHandler {
	return &UserHandler{users: users, graph: graph}
}

// RegisterInput is the signup request body.
type RegisterInput struct {
	Login     string `json:"login" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required,min=8"`
	Firstname string `json:"firstname"`
}

// LoginInput is the signin request body.
type LoginInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// EditUserInput is the profile edit request body; omitted fields stay unchanged.
type EditUserInput struct {
	Firstname *string `json:"firstname"`
	Login     *string `json:"login"`
	About     *string `json:"about"`
}

func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.Error(c, 400, response.ErrInvalidParam, "Invalid id")
		return 0, false
	}
	return uint(id), true
}

func (h *UserHandler) Register(c *gin.Context) {
	var input RegisterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, 400, response.ErrInvalidParam, err.Error())
		return
	}

	user, err := h.users.Register(service.RegisterInput{
		Login:     input.Login,
		Email:     input.Email,
		Password:  input.Password,
		Firstname: input.Firstname,
	})
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, user)
}

func (h *UserHandler) Login(c *gin.Context) {
	var input LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, 400, response.ErrInvalidParam, err.Error())
		return
	}

	token, err := h.users.Login(input.Email, input.Password)
	if err != nil {
		response.Error(c, 401, response.ErrAuthFailed, err.Error())
		return
	}

	response.Success(c, gin.H{"token": token})
}

func (h *UserHandler) GetMyProfile(c *gin.Context) {
	userID := middleware.CurrentUserID(c)
	profile, err := h.users.GetProfile(userID, nil)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, profile)
}

func (h *UserHandler) GetProfile(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var viewer *uint
	if viewerID, authenticated := middleware.ViewerID(c); authenticated {
		viewer = &viewerID
	}

	profile, err := h.users.GetProfile(id, viewer)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, profile)
}

func (h *UserHandler) EditUser(c *gin.Context) {
	var input EditUserInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, 400, response.ErrInvalidParam, err.Error())
		return
	}

	user, err := h.users.EditUser(middleware.CurrentUserID(c), service.EditUserInput{
		Firstname: input.Firstname,
		Login:     input.Login,
		About:     input.About,
	})
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, user)
}

func (h *UserHandler) Subscribe(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.graph.Follow(middleware.CurrentUserID(c), id); err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, true)
}

func (h *UserHandler) Unsubscribe(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.graph.Unfollow(middleware.CurrentUserID(c), id); err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, true)
}

func (h *UserHandler) ListFollowers(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	users, err := h.graph.ListFollowers(id)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, users)
}

func (h *UserHandler) ListFollowing(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	users, err := h.graph.ListFollowing(id)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, users)
}
