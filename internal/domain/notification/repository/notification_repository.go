package repository

import (
	"time"

	"gorm.io/gorm"
)

// ActorEvent is one row of an activity stream: who acted, when, and the
// comment text when the stream carries one.
type ActorEvent struct {
	ActorLogin string    `gorm:"column:actor_login"`
	ActorPhoto string    `gorm:"column:actor_photo"`
	Content    string    `gorm:"column:content"`
	CreatedAt  time.Time `gorm:"column:created_at"`
}

// NotificationRepository fetches the three independent activity streams the
// aggregator merges. Each stream is returned unsorted relative to the others;
// the total ordering is the aggregator's job, not a database ORDER BY across
// sources.
type NotificationRepository interface {
	// FollowEvents returns new subscriptions where the user is the target.
	FollowEvents(userID uint) ([]ActorEvent, error)
	// LikeEvents returns likes on posts owned by the user.
	LikeEvents(userID uint) ([]ActorEvent, error)
	// CommentEvents returns comments on posts owned by the user, with text.
	CommentEvents(userID uint) ([]ActorEvent, error)
}

type notificationRepository struct {
	db *gorm.DB
}

func NewNotificationRepository(db *gorm.DB) NotificationRepository {
	return &notificationRepository{db: db}
}

func (r *notificationRepository) FollowEvents(userID uint) ([]ActorEvent, error) {
	var events []ActorEvent
	err := r.db.Table("subscriptions s").
		Select("u.login AS actor_login, u.photo AS actor_photo, s.created_at").
		Joins("JOIN users u ON u.id = s.subscriber_id").
		Where("s.subscription_id = ?", userID).
		Scan(&events).Error
	return events, err
}

func (r *notificationRepository) LikeEvents(userID uint) ([]ActorEvent, error) {
	var events []ActorEvent
	err := r.db.Table("likes l").
		Select("u.login AS actor_login, u.photo AS actor_photo, l.created_at").
		Joins("JOIN posts p ON p.id = l.post_id").
		Joins("JOIN users u ON u.id = l.user_id").
		Where("p.user_id = ?", userID).
		Scan(&events).Error
	return events, err
}

func (r *notificationRepository) CommentEvents(userID uint) ([]ActorEvent, error) {
	var events []ActorEvent
	err := r.db.Table("comments c").
		Select("u.login AS actor_login, u.photo AS actor_photo, c.content, c.created_at").
		Joins("JOIN posts p ON p.id = c.post_id").
		Joins("JOIN users u ON u.id = c.user_id").
		Where("p.user_id = ?", userID).
		Scan(&events).Error
	return events, err
}
