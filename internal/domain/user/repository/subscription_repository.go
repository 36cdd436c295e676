package repository

import (
	"wanderfeed/internal/domain/user/model"

	"gorm.io/gorm"
)

// SubscriptionRepository is the persistence gateway for follow edges.
type SubscriptionRepository interface {
	Create(sub *model.Subscription) error
	// Delete removes an edge; deleting a missing edge is not an error.
	Delete(subscriberID, subscriptionID uint) error
	Exists(subscriberID, subscriptionID uint) (bool, error)
	// ListFollowerIDs returns who follows the user.
	ListFollowerIDs(userID uint) ([]uint, error)
	// ListFollowingIDs returns who the user follows.
	ListFollowingIDs(userID uint) ([]uint, error)
	CountFollowers(userID uint) (int64, error)
	CountFollowing(userID uint) (int64, error)
}

type subscriptionRepository struct {
	db *gorm.DB
}

func NewSubscriptionRepository(db *gorm.DB) SubscriptionRepository {
	return &subscriptionRepository{db: db}
}

func (r *subscriptionRepository) Create(sub *model.Subscription) error {
	return r.db.Create(sub).Error
}

func (r *subscriptionRepository) Delete(subscriberID, subscriptionID uint) error {
	return r.db.Where("subscriber_id = ? AND subscription_id = ?", subscriberID, subscriptionID).
		Delete(&model.Subscription{}).Error
}

func (r *subscriptionRepository) Exists(subscriberID, subscriptionID uint) (bool, error) {
	var count int64
	err := r.db.Model(&model.Subscription{}).
		Where("subscriber_id = ? AND subscription_id = ?", subscriberID, subscriptionID).
		Count(&count).Error
	return count > 0, err
}

func (r *subscriptionRepository) ListFollowerIDs(userID uint) ([]uint, error) {
	var ids []uint
	err := r.db.Model(&model.Subscription{}).
		Where("subscription_id = ?", userID).
		Order("created_at desc").
		Pluck("subscriber_id", &ids).Error
	return ids, err
}

func (r *subscriptionRepository) ListFollowingIDs(userID uint) ([]uint, error) {
	var ids []uint
	err := r.db.Model(&model.Subscription{}).
		Where("subscriber_id = ?", userID).
		Order("created_at desc").
		Pluck("subscription_id", &ids).Error
	return ids, err
}

func (r *subscriptionRepository) CountFollowers(userID uint) (int64, error) {
	var count int64
	err := r.db.Model(&model.Subscription{}).Where("subscription_id = ?", userID).Count(&count).Error
	return count, err
}

func (r *subscriptionRepository) CountFollowing(userID uint) (int64, error) {
	var count int64
	err := r.db.Model(&model.Subscription{}).Where("subscriber_id = ?", userID).Count(&count).Error
	return count, err
}
