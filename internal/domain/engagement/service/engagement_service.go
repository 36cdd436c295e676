package service

import (
	"errors"

	"wanderfeed/internal/domain/engagement/model"
	"wanderfeed/internal/domain/engagement/repository"
	postmodel "wanderfeed/internal/domain/post/model"
	postrepo "wanderfeed/internal/domain/post/repository"
	postservice "wanderfeed/internal/domain/post/service"
	"wanderfeed/pkg/apperr"

	"gorm.io/gorm"
)

// EngagementService owns the like and bookmark ledgers. Adding an existing
// pair and removing a missing pair are both no-ops; counts are always fresh
// aggregates over the rows.
type EngagementService interface {
	AddLike(userID, postID uint) error
	RemoveLike(userID, postID uint) error
	CountLikes(postID uint) (int64, error)

	AddBookmark(userID, postID uint) error
	RemoveBookmark(userID, postID uint) error
	ListBookmarks(userID uint) ([]postservice.PostView, error)
}

type engagementService struct {
	repo  repository.EngagementRepository
	posts postrepo.PostRepository
	feed  postservice.FeedService
}

func NewEngagementService(repo repository.EngagementRepository, posts postrepo.PostRepository, feed postservice.FeedService) EngagementService {
	return &engagementService{repo: repo, posts: posts, feed: feed}
}

// checkPost verifies the target exists before writing a ledger row.
func (s *engagementService) checkPost(postID uint) error {
	if _, err := s.posts.GetByID(postID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.NotFound("post not found")
		}
		return err
	}
	return nil
}

func (s *engagementService) AddLike(userID, postID uint) error {
	if err := s.checkPost(postID); err != nil {
		return err
	}

	like := &model.Like{UserID: userID, PostID: postID}
	if err := s.repo.CreateLike(like); err != nil {
		// The unique index over (user_id, post_id) is the arbiter; a racing
		// double-tap must not double-count and must not fail.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil
		}
		return err
	}
	return nil
}

func (s *engagementService) RemoveLike(userID, postID uint) error {
	return s.repo.DeleteLike(userID, postID)
}

func (s *engagementService) CountLikes(postID uint) (int64, error) {
	return s.repo.CountLikes(postID)
}

func (s *engagementService) AddBookmark(userID, postID uint) error {
	if err := s.checkPost(postID); err != nil {
		return err
	}

	saved := &model.SavedPost{UserID: userID, PostID: postID}
	if err := s.repo.CreateSaved(saved); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil
		}
		return err
	}
	return nil
}

func (s *engagementService) RemoveBookmark(userID, postID uint) error {
	return s.repo.DeleteSaved(userID, postID)
}

// ListBookmarks returns the user's saved posts, most recently saved first,
// decorated the same way as any personalized listing.
func (s *engagementService) ListBookmarks(userID uint) ([]postservice.PostView, error) {
	ids, err := s.repo.ListSavedPostIDs(userID)
	if err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return []postservice.PostView{}, nil
	}

	posts, err := s.posts.ListByIDs(ids)
	if err != nil {
		return nil, err
	}

	// Restore save order; the id lookup does not preserve it.
	byID := make(map[uint]int, len(posts))
	for i, post := range posts {
		byID[post.ID] = i
	}
	ordered := make([]postmodel.Post, 0, len(posts))
	for _, id := range ids {
		if i, ok := byID[id]; ok {
			ordered = append(ordered, posts[i])
		}
	}

	return s.feed.DecoratePosts(ordered, &userID)
}
