package service

import (
	"errors"

	"wanderfeed/internal/domain/user/model"
	"wanderfeed/internal/domain/user/repository"
	"wanderfeed/internal/pkg/uploader"
	"wanderfeed/pkg/apperr"

	"gorm.io/gorm"
)

// GraphService owns the follow edges between users.
type GraphService interface {
	// Follow creates a follow edge. Self-follow is a validation failure,
	// following an already-followed user is a conflict.
	Follow(followerID, targetID uint) error
	// Unfollow removes the edge; removing a missing edge is a no-op.
	Unfollow(followerID, targetID uint) error
	ListFollowers(userID uint) ([]model.User, error)
	ListFollowing(userID uint) ([]model.User, error)
}

type graphService struct {
	users repository.UserRepository
	subs  repository.SubscriptionRepository
	media uploader.MediaStore
}

func NewGraphService(users repository.UserRepository, subs repository.SubscriptionRepository, media uploader.MediaStore) GraphService {
	return &graphService{users: users, subs: subs, media: media}
}

func (s *graphService) Follow(followerID, targetID uint) error {
	if followerID == targetID {
		return apperr.Validation("cannot subscribe to yourself")
	}

	if _, err := s.users.GetByID(targetID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.NotFound("user not found")
		}
		return err
	}

	sub := &model.Subscription{
		SubscriberID:   followerID,
		SubscriptionID: targetID,
	}
	if err := s.subs.Create(sub); err != nil {
		// The unique index over the pair is the arbiter; a racing duplicate
		// lands here rather than as a second edge.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return apperr.Conflict("already subscribed")
		}
		return err
	}
	return nil
}

func (s *graphService) Unfollow(followerID, targetID uint) error {
	return s.subs.Delete(followerID, targetID)
}

func (s *graphService) ListFollowers(userID uint) ([]model.User, error) {
	ids, err := s.subs.ListFollowerIDs(userID)
	if err != nil {
		return nil, err
	}
	return s.resolveUsers(ids)
}

func (s *graphService) ListFollowing(userID uint) ([]model.User, error) {
	ids, err := s.subs.ListFollowingIDs(userID)
	if err != nil {
		return nil, err
	}
	return s.resolveUsers(ids)
}

func (s *graphService) resolveUsers(ids []uint) ([]model.User, error) {
	if len(ids) == 0 {
		return []model.User{}, nil
	}
	users, err := s.users.GetByIDs(ids)
	if err != nil {
		return nil, err
	}
	for i := range users {
		users[i].Photo = s.media.ResolveOrDefault(users[i].Photo)
	}
	return users, nil
}
