package service

import (
	"errors"

	commentrepo "wanderfeed/internal/domain/comment/repository"
	engagementrepo "wanderfeed/internal/domain/engagement/repository"
	"wanderfeed/internal/domain/post/model"
	"wanderfeed/internal/domain/post/repository"
	"wanderfeed/internal/pkg/uploader"
	"wanderfeed/pkg/apperr"
	"wanderfeed/pkg/logger"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// CreatePostInput holds the fields accepted when publishing a post.
type CreatePostInput struct {
	Title       string
	Description string
	Link        string
	Pictures    []string
	Region      string
	Tag         string
}

// EditPostInput holds the optional fields of a post edit; nil means unchanged.
type EditPostInput struct {
	Title       *string
	Description *string
	Link        *string
	Pictures    *[]string
	Region      *string
	Tag         *string
}

// PostService owns post rows and their ownership rules.
type PostService interface {
	CreatePost(userID uint, input CreatePostInput) (*model.Post, error)
	// EditPost and DeletePost fail with the same forbidden error whether the
	// post is missing or owned by someone else, so callers cannot probe for
	// existence.
	EditPost(userID, postID uint, input EditPostInput) (*model.Post, error)
	DeletePost(userID, postID uint) error
	GetPost(postID uint, viewerID *uint) (*PostView, error)
	ListByOwner(userID uint) ([]model.Post, error)
	ReportPost(userID, postID uint, description string) error
}

type postService struct {
	repo     repository.PostRepository
	likes    engagementrepo.EngagementRepository
	comments commentrepo.CommentRepository
	media    uploader.MediaStore
}

func NewPostService(repo repository.PostRepository, likes engagementrepo.EngagementRepository, comments commentrepo.CommentRepository, media uploader.MediaStore) PostService {
	return &postService{repo: repo, likes: likes, comments: comments, media: media}
}

func (s *postService) CreatePost(userID uint, input CreatePostInput) (*model.Post, error) {
	post := &model.Post{
		UserID:      userID,
		Title:       input.Title,
		Description: input.Description,
		Link:        input.Link,
		Pictures:    input.Pictures,
		Region:      input.Region,
		Tag:         input.Tag,
	}
	if err := s.repo.Create(post); err != nil {
		return nil, err
	}
	return post, nil
}

// getOwned loads a post for mutation. Missing post and foreign owner collapse
// into one error on purpose.
func (s *postService) getOwned(userID, postID uint) (*model.Post, error) {
	post, err := s.repo.GetByID(postID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.Forbidden("access to resources denied")
		}
		return nil, err
	}
	if post.UserID != userID {
		return nil, apperr.Forbidden("access to resources denied")
	}
	return post, nil
}

func (s *postService) EditPost(userID, postID uint, input EditPostInput) (*model.Post, error) {
	post, err := s.getOwned(userID, postID)
	if err != nil {
		return nil, err
	}

	if input.Title != nil {
		post.Title = *input.Title
	}
	if input.Description != nil {
		post.Description = *input.Description
	}
	if input.Link != nil {
		post.Link = *input.Link
	}
	if input.Pictures != nil {
		post.Pictures = *input.Pictures
	}
	if input.Region != nil {
		post.Region = *input.Region
	}
	if input.Tag != nil {
		post.Tag = *input.Tag
	}

	if err := s.repo.Update(post); err != nil {
		return nil, err
	}
	return post, nil
}

// DeletePost removes a post and everything referencing it. Dependent rows go
// first so no like, save, comment or report is left dangling, then the media
// objects best-effort, then the post row. A failed picture deletion is logged
// and skipped; the row cascade is never skipped.
func (s *postService) DeletePost(userID, postID uint) error {
	post, err := s.getOwned(userID, postID)
	if err != nil {
		return err
	}

	if err := s.repo.DeleteLikesByPost(postID); err != nil {
		return err
	}
	if err := s.repo.DeleteSavedByPost(postID); err != nil {
		return err
	}
	if err := s.repo.DeleteCommentsByPost(postID); err != nil {
		return err
	}
	if err := s.repo.DeleteReportsByPost(postID); err != nil {
		return err
	}

	for _, picture := range post.Pictures {
		if err := s.media.Delete(picture); err != nil {
			if logger.Log != nil {
				logger.Log.Warn("failed to delete post picture",
					zap.Uint("post_id", postID),
					zap.String("picture", picture),
					zap.Error(err),
				)
			}
		}
	}

	return s.repo.Delete(postID)
}

func (s *postService) GetPost(postID uint, viewerID *uint) (*PostView, error) {
	post, err := s.repo.GetByID(postID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("post not found")
		}
		return nil, err
	}

	view, err := decoratePost(*post, viewerID, s.likes, s.comments, s.media)
	if err != nil {
		return nil, err
	}
	return &view, nil
}

func (s *postService) ListByOwner(userID uint) ([]model.Post, error) {
	return s.repo.ListByUser(userID)
}

func (s *postService) ReportPost(userID, postID uint, description string) error {
	if _, err := s.repo.GetByID(postID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.NotFound("post not found")
		}
		return err
	}

	report := &model.Report{
		PostID:      postID,
		UserID:      userID,
		Description: description,
	}
	return s.repo.CreateReport(report)
}
