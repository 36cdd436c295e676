package service

import (
	"fmt"
	"sort"
	"time"

	"wanderfeed/internal/domain/notification/repository"
	"wanderfeed/internal/pkg/uploader"
)

// Notification kinds.
const (
	KindSubscription = "subscription"
	KindLike         = "like"
	KindComment      = "comment"
)

// Notification is one entry of the aggregated activity timeline.
type Notification struct {
	Kind      string    `json:"kind"`
	Message   string    `json:"message"`
	Photo     string    `json:"photo"`
	Content   string    `json:"content,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// NotificationService merges follow, like and comment activity into one
// timeline, computed on demand.
type NotificationService interface {
	ListNotifications(userID uint) ([]Notification, error)
}

type notificationService struct {
	repo  repository.NotificationRepository
	media uploader.MediaStore
}

func NewNotificationService(repo repository.NotificationRepository, media uploader.MediaStore) NotificationService {
	return &notificationService{repo: repo, media: media}
}

func (s *notificationService) ListNotifications(userID uint) ([]Notification, error) {
	follows, err := s.repo.FollowEvents(userID)
	if err != nil {
		return nil, err
	}
	likes, err := s.repo.LikeEvents(userID)
	if err != nil {
		return nil, err
	}
	comments, err := s.repo.CommentEvents(userID)
	if err != nil {
		return nil, err
	}

	notifications := make([]Notification, 0, len(follows)+len(likes)+len(comments))
	for _, e := range follows {
		notifications = append(notifications, Notification{
			Kind:      KindSubscription,
			Message:   fmt.Sprintf("%s subscribed to you", e.ActorLogin),
			Photo:     s.media.ResolveOrDefault(e.ActorPhoto),
			CreatedAt: e.CreatedAt,
		})
	}
	for _, e := range likes {
		notifications = append(notifications, Notification{
			Kind:      KindLike,
			Message:   fmt.Sprintf("%s liked your post", e.ActorLogin),
			Photo:     s.media.ResolveOrDefault(e.ActorPhoto),
			CreatedAt: e.CreatedAt,
		})
	}
	for _, e := range comments {
		notifications = append(notifications, Notification{
			Kind:      KindComment,
			Message:   fmt.Sprintf("%s commented on your post", e.ActorLogin),
			Photo:     s.media.ResolveOrDefault(e.ActorPhoto),
			Content:   e.Content,
			CreatedAt: e.CreatedAt,
		})
	}

	// The streams arrive independently ordered; the merged timeline is
	// sorted here, most recent first.
	sort.SliceStable(notifications, func(i, j int) bool {
		return notifications[i].CreatedAt.After(notifications[j].CreatedAt)
	})

	return notifications, nil
}
