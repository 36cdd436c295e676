package comment

import (
	"wanderfeed/internal/domain/comment/handler"
	"wanderfeed/internal/domain/comment/repository"
	"wanderfeed/internal/domain/comment/service"
	postrepo "wanderfeed/internal/domain/post/repository"
	"wanderfeed/internal/pkg/middleware"
	"wanderfeed/internal/pkg/registry"
	"wanderfeed/internal/pkg/uploader"

	"github.com/gin-gonic/gin"
)

// CommentModule wires post comments.
type CommentModule struct{}

func init() {
	registry.Register(&CommentModule{})
}

func (m *CommentModule) Name() string {
	return "comment"
}

func (m *CommentModule) Priority() int {
	return 4
}

func (m *CommentModule) Init(ctx *registry.ModuleContext) error {
	commentRepo := repository.NewCommentRepository(ctx.DB)
	postRepo := postrepo.NewPostRepository(ctx.DB)

	commentService := service.NewCommentService(commentRepo, postRepo, uploader.GlobalStore)
	commentHandler := handler.NewCommentHandler(commentService)

	setupRoutes(ctx.Router, commentHandler)

	return nil
}

func setupRoutes(r *gin.Engine, h *handler.CommentHandler) {
	posts := r.Group("/posts")
	{
		posts.GET("/:id/comments", h.ListByPost)
		posts.POST("/:id/comments", middleware.AuthMiddleware(), h.AddComment)
	}

	r.DELETE("/comments/:id", middleware.AuthMiddleware(), h.DeleteComment)
}
