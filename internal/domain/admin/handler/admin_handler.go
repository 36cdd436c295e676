package handler

import (
	"strconv"

	"wanderfeed/internal/domain/admin/service"
	"wanderfeed/pkg/response"

	"github.com/gin-gonic/gin"
)

// AdminHandler exposes the moderation surface.
type AdminHandler struct {
	admin service.AdminService
}

func NewAdminHandler(admin service.AdminService) *AdminHandler {
	return &AdminHandler{admin: admin}
}

func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.Error(c, 400, response.ErrInvalidParam, "Invalid id")
		return 0, false
	}
	return uint(id), true
}

func (h *AdminHandler) SearchUsers(c *gin.Context) {
	query := c.Query("query")
	if query == "" {
		response.Error(c, 400, response.ErrInvalidParam, "query is required")
		return
	}

	users, err := h.admin.SearchUsers(query)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, users)
}

func (h *AdminHandler) BanUser(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.admin.BanUser(id); err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, true)
}

func (h *AdminHandler) UnbanUser(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.admin.UnbanUser(id); err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, true)
}

func (h *AdminHandler) ListBanned(c *gin.Context) {
	users, err := h.admin.ListBanned()
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, users)
}

func (h *AdminHandler) ListReports(c *gin.Context) {
	reports, err := h.admin.ListReports()
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, reports)
}

func (h *AdminHandler) DeleteReport(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.admin.DeleteReport(id); err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, true)
}
