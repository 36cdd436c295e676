package service

import (
	"errors"

	"wanderfeed/internal/domain/comment/model"
	"wanderfeed/internal/domain/comment/repository"
	postrepo "wanderfeed/internal/domain/post/repository"
	"wanderfeed/internal/pkg/uploader"
	"wanderfeed/pkg/apperr"

	"gorm.io/gorm"
)

// CommentService owns comment rows.
type CommentService interface {
	AddComment(userID, postID uint, content string) (*model.Comment, error)
	ListByPost(postID uint) ([]model.Comment, error)
	// DeleteComment is permitted to the comment author and the owner of the
	// post it sits on.
	DeleteComment(requesterID, commentID uint) error
}

type commentService struct {
	repo  repository.CommentRepository
	posts postrepo.PostRepository
	media uploader.MediaStore
}

func NewCommentService(repo repository.CommentRepository, posts postrepo.PostRepository, media uploader.MediaStore) CommentService {
	return &commentService{repo: repo, posts: posts, media: media}
}

func (s *commentService) AddComment(userID, postID uint, content string) (*model.Comment, error) {
	if _, err := s.posts.GetByID(postID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("post not found")
		}
		return nil, err
	}

	comment := &model.Comment{
		PostID:  postID,
		UserID:  userID,
		Content: content,
	}
	if err := s.repo.Create(comment); err != nil {
		return nil, err
	}
	return comment, nil
}

func (s *commentService) ListByPost(postID uint) ([]model.Comment, error) {
	comments, err := s.repo.ListByPost(postID)
	if err != nil {
		return nil, err
	}
	for i := range comments {
		comments[i].User.Photo = s.media.ResolveOrDefault(comments[i].User.Photo)
	}
	return comments, nil
}

func (s *commentService) DeleteComment(requesterID, commentID uint) error {
	comment, err := s.repo.GetByID(commentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.NotFound("comment not found")
		}
		return err
	}

	if comment.UserID != requesterID {
		post, err := s.posts.GetByID(comment.PostID)
		if err != nil {
			return err
		}
		if post.UserID != requesterID {
			return apperr.Forbidden("access to resources denied")
		}
	}

	return s.repo.Delete(commentID)
}
