package post

import (
	commentrepo "wanderfeed/internal/domain/comment/repository"
	engagementrepo "wanderfeed/internal/domain/engagement/repository"
	"wanderfeed/internal/domain/post/handler"
	"wanderfeed/internal/domain/post/repository"
	"wanderfeed/internal/domain/post/service"
	userrepo "wanderfeed/internal/domain/user/repository"
	"wanderfeed/internal/pkg/middleware"
	"wanderfeed/internal/pkg/registry"
	"wanderfeed/internal/pkg/uploader"

	"github.com/gin-gonic/gin"
)

// PostModule wires post CRUD, the feeds and reporting.
type PostModule struct{}

func init() {
	registry.Register(&PostModule{})
}

func (m *PostModule) Name() string {
	return "post"
}

func (m *PostModule) Priority() int {
	return 2
}

func (m *PostModule) Init(ctx *registry.ModuleContext) error {
	postRepo := repository.NewPostRepository(ctx.DB)
	subRepo := userrepo.NewSubscriptionRepository(ctx.DB)
	likeRepo := engagementrepo.NewEngagementRepository(ctx.DB)
	commentRepo := commentrepo.NewCommentRepository(ctx.DB)

	postService := service.NewPostService(postRepo, likeRepo, commentRepo, uploader.GlobalStore)
	feedService := service.NewFeedService(postRepo, subRepo, likeRepo, commentRepo, uploader.GlobalStore)
	postHandler := handler.NewPostHandler(postService, feedService)

	setupRoutes(ctx.Router, postHandler)

	return nil
}

func setupRoutes(r *gin.Engine, h *handler.PostHandler) {
	posts := r.Group("/posts")
	{
		// Static paths before the :id wildcard.
		posts.GET("", middleware.OptionalAuthMiddleware(), h.ListAll)
		posts.GET("/tag", middleware.OptionalAuthMiddleware(), h.ListByTags)
		posts.GET("/search", h.Search)
		posts.GET("/subscriptions", middleware.AuthMiddleware(), h.ListSubscribed)
		posts.GET("/my", middleware.AuthMiddleware(), h.ListMyPosts)
		posts.GET("/:id", middleware.OptionalAuthMiddleware(), h.GetPost)

		posts.POST("", middleware.AuthMiddleware(), h.CreatePost)
		posts.PATCH("/:id", middleware.AuthMiddleware(), h.EditPost)
		posts.DELETE("/:id", middleware.AuthMiddleware(), h.DeletePost)
		posts.POST("/:id/report", middleware.AuthMiddleware(), h.ReportPost)
	}
}
