package main

import (
	"log"

	_ "wanderfeed/docs"
	_ "wanderfeed/internal/domain/admin"
	_ "wanderfeed/internal/domain/comment"
	_ "wanderfeed/internal/domain/engagement"
	_ "wanderfeed/internal/domain/notification"
	_ "wanderfeed/internal/domain/post"
	_ "wanderfeed/internal/domain/user"
	"wanderfeed/internal/pkg/common"
	"wanderfeed/internal/pkg/config"
	"wanderfeed/internal/pkg/middleware"
	"wanderfeed/internal/pkg/registry"
	"wanderfeed/internal/pkg/uploader"
	"wanderfeed/pkg/database"
	"wanderfeed/pkg/logger"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title WanderFeed API
// @version 1.0
// @description Social travel feed: posts, likes, bookmarks, comments, subscriptions, notifications and moderation.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	config.LoadConfig()
	logger.Init(config.GlobalConfig.App.Debug)
	defer logger.Sync()

	db := database.InitDatabase()
	rdb := database.InitRedis()

	if err := uploader.InitUploader(); err != nil {
		log.Fatalf("Failed to init uploader: %v", err)
	}

	gin.SetMode(config.GlobalConfig.Server.Mode)
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.LoggerMiddleware())
	r.Use(middleware.MetricsMiddleware())
	r.Use(middleware.RateLimitMiddleware())
	r.Use(cors.Default())

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	r.POST("/upload", middleware.AuthMiddleware(), common.UploadFile)

	ctx := &registry.ModuleContext{
		DB:     db,
		Redis:  rdb,
		Router: r,
	}
	if err := registry.InitModules(ctx); err != nil {
		log.Fatalf("Failed to init modules: %v", err)
	}

	if err := r.Run(":" + config.GlobalConfig.Server.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
