package admin

import (
	"wanderfeed/internal/domain/admin/handler"
	"wanderfeed/internal/domain/admin/repository"
	"wanderfeed/internal/domain/admin/service"
	"wanderfeed/internal/pkg/middleware"
	"wanderfeed/internal/pkg/registry"
	"wanderfeed/internal/pkg/uploader"

	"github.com/gin-gonic/gin"
)

// AdminModule wires moderation: ban management and the report queue.
type AdminModule struct{}

func init() {
	registry.Register(&AdminModule{})
}

func (m *AdminModule) Name() string {
	return "admin"
}

func (m *AdminModule) Priority() int {
	return 6
}

func (m *AdminModule) Init(ctx *registry.ModuleContext) error {
	adminRepo := repository.NewAdminRepository(ctx.DB)
	adminService := service.NewAdminService(adminRepo, uploader.GlobalStore)
	adminHandler := handler.NewAdminHandler(adminService)

	setupRoutes(ctx.Router, adminHandler)

	return nil
}

func setupRoutes(r *gin.Engine, h *handler.AdminHandler) {
	adminGroup := r.Group("/admin")
	adminGroup.Use(middleware.AuthMiddleware(), middleware.AdminMiddleware())
	{
		adminGroup.GET("/users", h.SearchUsers)
		adminGroup.GET("/users/banned", h.ListBanned)
		adminGroup.POST("/users/:id/ban", h.BanUser)
		adminGroup.POST("/users/:id/unban", h.UnbanUser)
		adminGroup.GET("/reports", h.ListReports)
		adminGroup.DELETE("/reports/:id", h.DeleteReport)
	}
}
