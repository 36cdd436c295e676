package repository

import (
	"wanderfeed/internal/domain/engagement/model"

	"gorm.io/gorm"
)

// EngagementRepository is the persistence gateway for likes and saved posts.
type EngagementRepository interface {
	CreateLike(like *model.Like) error
	// DeleteLike removes the pair; zero rows affected is not an error.
	DeleteLike(userID, postID uint) error
	HasLiked(userID, postID uint) (bool, error)
	// CountLikes is always a fresh aggregate over the rows.
	CountLikes(postID uint) (int64, error)

	CreateSaved(saved *model.SavedPost) error
	DeleteSaved(userID, postID uint) error
	HasSaved(userID, postID uint) (bool, error)
	// ListSavedPostIDs returns post ids bookmarked by the user, newest save first.
	ListSavedPostIDs(userID uint) ([]uint, error)
}

type engagementRepository struct {
	db *gorm.DB
}

func NewEngagementRepository(db *gorm.DB) EngagementRepository {
	return &engagementRepository{db: db}
}

func (r *engagementRepository) CreateLike(like *model.Like) error {
	return r.db.Create(like).Error
}

func (r *engagementRepository) DeleteLike(userID, postID uint) error {
	return r.db.Where("user_id = ? AND post_id = ?", userID, postID).Delete(&model.Like{}).Error
}

func (r *engagementRepository) HasLiked(userID, postID uint) (bool, error) {
	var count int64
	err := r.db.Model(&model.Like{}).
		Where("user_id = ? AND post_id = ?", userID, postID).
		Count(&count).Error
	return count > 0, err
}

func (r *engagementRepository) CountLikes(postID uint) (int64, error) {
	var count int64
	err := r.db.Model(&model.Like{}).Where("post_id = ?", postID).Count(&count).Error
	return count, err
}

func (r *engagementRepository) CreateSaved(saved *model.SavedPost) error {
	return r.db.Create(saved).Error
}

func (r *engagementRepository) DeleteSaved(userID, postID uint) error {
	return r.db.Where("user_id = ? AND post_id = ?", userID, postID).Delete(&model.SavedPost{}).Error
}

func (r *engagementRepository) HasSaved(userID, postID uint) (bool, error) {
	var count int64
	err := r.db.Model(&model.SavedPost{}).
		Where("user_id = ? AND post_id = ?", userID, postID).
		Count(&count).Error
	return count > 0, err
}

func (r *engagementRepository) ListSavedPostIDs(userID uint) ([]uint, error) {
	var ids []uint
	err := r.db.Model(&model.SavedPost{}).
		Where("user_id = ?", userID).
		Order("created_at desc").
		Pluck("post_id", &ids).Error
	return ids, err
}
