package notification

import (
	"wanderfeed/internal/domain/notification/handler"
	"wanderfeed/internal/domain/notification/repository"
	"wanderfeed/internal/domain/notification/service"
	"wanderfeed/internal/pkg/middleware"
	"wanderfeed/internal/pkg/registry"
	"wanderfeed/internal/pkg/uploader"
)

// NotificationModule wires the activity timeline.
type NotificationModule struct{}

func init() {
	registry.Register(&NotificationModule{})
}

func (m *NotificationModule) Name() string {
	return "notification"
}

func (m *NotificationModule) Priority() int {
	return 5
}

func (m *NotificationModule) Init(ctx *registry.ModuleContext) error {
	notificationRepo := repository.NewNotificationRepository(ctx.DB)
	notificationService := service.NewNotificationService(notificationRepo, uploader.GlobalStore)
	notificationHandler := handler.NewNotificationHandler(notificationService)

	ctx.Router.GET("/notifications", middleware.AuthMiddleware(), notificationHandler.ListNotifications)

	return nil
}
