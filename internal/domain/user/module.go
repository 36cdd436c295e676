package user

import (
	"time"

	"wanderfeed/internal/domain/user/handler"
	"wanderfeed/internal/domain/user/repository"
	"wanderfeed/internal/domain/user/service"
	postrepo "wanderfeed/internal/domain/post/repository"
	"wanderfeed/internal/pkg/middleware"
	"wanderfeed/internal/pkg/registry"
	"wanderfeed/internal/pkg/uploader"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

// UserModule wires accounts, profiles and the social graph.
type UserModule struct{}

func init() {
	registry.Register(&UserModule{})
}

func (m *UserModule) Name() string {
	return "user"
}

func (m *UserModule) Priority() int {
	// Initialized first; other modules depend on its tables.
	return 1
}

func (m *UserModule) Init(ctx *registry.ModuleContext) error {
	userRepo := repository.NewUserRepository(ctx.DB)
	subRepo := repository.NewSubscriptionRepository(ctx.DB)
	postRepo := postrepo.NewPostRepository(ctx.DB)

	userService := service.NewUserService(userRepo, subRepo, postRepo, uploader.GlobalStore)
	graphService := service.NewGraphService(userRepo, subRepo, uploader.GlobalStore)
	userHandler := handler.NewUserHandler(userService, graphService)

	setupRoutes(ctx.Router, ctx.Redis, userHandler)

	return nil
}

func setupRoutes(r *gin.Engine, rdb *redis.Client, h *handler.UserHandler) {
	authGroup := r.Group("/auth")
	authGroup.Use(middleware.RedisRateLimitMiddleware(rdb, "auth", 10, time.Minute))
	{
		authGroup.POST("/register", h.Register)
		authGroup.POST("/login", h.Login)
	}

	userGroup := r.Group("/users")
	{
		userGroup.GET("/me", middleware.AuthMiddleware(), h.GetMyProfile)
		userGroup.PATCH("/me", middleware.AuthMiddleware(), h.EditUser)
		userGroup.GET("/:id", middleware.OptionalAuthMiddleware(), h.GetProfile)
		userGroup.POST("/:id/subscribe", middleware.AuthMiddleware(), h.Subscribe)
		userGroup.DELETE("/:id/subscribe", middleware.AuthMiddleware(), h.Unsubscribe)
		userGroup.GET("/:id/followers", h.ListFollowers)
		userGroup.GET("/:id/following", h.ListFollowing)
	}
}
