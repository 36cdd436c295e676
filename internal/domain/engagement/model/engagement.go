package model

import baseModel "wanderfeed/pkg/model"

// Like marks that a user liked a post. The composite unique index enforces
// at most one like per (user, post) pair; counts are always derived from
// these rows, never cached.
type Like struct {
	baseModel.EdgeModel
	UserID uint `gorm:"index;uniqueIndex:idx_like_user_post" json:"userId"`
	PostID uint `gorm:"index;uniqueIndex:idx_like_user_post" json:"postId"`
}

// SavedPost is a bookmark, with the same uniqueness contract as Like.
type SavedPost struct {
	baseModel.EdgeModel
	UserID uint `gorm:"index;uniqueIndex:idx_saved_user_post" json:"userId"`
	PostID uint `gorm:"index;uniqueIndex:idx_saved_user_post" json:"postId"`
}
