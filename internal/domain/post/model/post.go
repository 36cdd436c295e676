package model

import (
	usermodel "wanderfeed/internal/domain/user/model"
	baseModel "wanderfeed/pkg/model"
)

// Post is a user-authored content item. Pictures holds ordered media-store
// object keys serialized as jsonb.
type Post struct {
	baseModel.BaseModel
	UserID      uint     `gorm:"index" json:"userId"`
	Title       string   `json:"title"`
	Description string   `json:"description,omitempty"`
	Link        string   `json:"link"`
	Pictures    []string `gorm:"serializer:json;type:jsonb" json:"pictures"`
	Region      string   `json:"region,omitempty"`
	Tag         string   `gorm:"index" json:"tag"`

	User usermodel.User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

// Report is a user complaint about a post, consumed by moderation.
type Report struct {
	baseModel.BaseModel
	PostID      uint   `gorm:"index" json:"postId"`
	UserID      uint   `gorm:"index" json:"userId"`
	Description string `json:"description"`

	Post Post           `gorm:"foreignKey:PostID" json:"post,omitempty"`
	User usermodel.User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}
