package model

import (
	usermodel "wanderfeed/internal/domain/user/model"
	baseModel "wanderfeed/pkg/model"
)

// Comment is attached to a post. Deleted individually or cascaded with it.
type Comment struct {
	baseModel.BaseModel
	PostID  uint   `gorm:"index" json:"postId"`
	UserID  uint   `gorm:"index" json:"userId"`
	Content string `json:"content"`

	User usermodel.User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}
