package engagement

import (
	commentrepo "wanderfeed/internal/domain/comment/repository"
	"wanderfeed/internal/domain/engagement/handler"
	"wanderfeed/internal/domain/engagement/repository"
	"wanderfeed/internal/domain/engagement/service"
	postrepo "wanderfeed/internal/domain/post/repository"
	postservice "wanderfeed/internal/domain/post/service"
	userrepo "wanderfeed/internal/domain/user/repository"
	"wanderfeed/internal/pkg/middleware"
	"wanderfeed/internal/pkg/registry"
	"wanderfeed/internal/pkg/uploader"

	"github.com/gin-gonic/gin"
)

// EngagementModule wires likes and bookmarks.
type EngagementModule struct{}

func init() {
	registry.Register(&EngagementModule{})
}

func (m *EngagementModule) Name() string {
	return "engagement"
}

func (m *EngagementModule) Priority() int {
	return 3
}

func (m *EngagementModule) Init(ctx *registry.ModuleContext) error {
	engagementRepo := repository.NewEngagementRepository(ctx.DB)
	postRepo := postrepo.NewPostRepository(ctx.DB)
	subRepo := userrepo.NewSubscriptionRepository(ctx.DB)
	commentRepo := commentrepo.NewCommentRepository(ctx.DB)

	feedService := postservice.NewFeedService(postRepo, subRepo, engagementRepo, commentRepo, uploader.GlobalStore)
	engagementService := service.NewEngagementService(engagementRepo, postRepo, feedService)
	engagementHandler := handler.NewEngagementHandler(engagementService)

	setupRoutes(ctx.Router, engagementHandler)

	return nil
}

func setupRoutes(r *gin.Engine, h *handler.EngagementHandler) {
	posts := r.Group("/posts")
	{
		posts.GET("/:id/likes", h.CountLikes)
		posts.POST("/:id/like", middleware.AuthMiddleware(), h.AddLike)
		posts.DELETE("/:id/like", middleware.AuthMiddleware(), h.RemoveLike)
		posts.POST("/:id/save", middleware.AuthMiddleware(), h.AddBookmark)
		posts.DELETE("/:id/save", middleware.AuthMiddleware(), h.RemoveBookmark)
	}

	r.GET("/bookmarks", middleware.AuthMiddleware(), h.ListBookmarks)
}
