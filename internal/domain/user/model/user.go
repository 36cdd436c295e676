package model

import baseModel "wanderfeed/pkg/model"

// Roles and account statuses.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"

	StatusActive = "active"
	StatusBanned = "banned"
)

// User account. Photo holds a media-store object key; resolution to a URL
// happens at read time.
type User struct {
	baseModel.BaseModel
	Login      string `gorm:"uniqueIndex" json:"login"`
	Email      string `gorm:"uniqueIndex" json:"email"`
	Firstname  string `json:"firstname"`
	Secondname string `json:"secondname"`
	Hash       string `json:"-"`
	Photo      string `json:"photo"`
	Status     string `gorm:"default:'active'" json:"status"`
	Role       string `gorm:"default:'user'" json:"role"`
	About      string `json:"about"`
}

// Subscription is a directed follow edge: subscriber follows subscription.
// The composite unique index makes the at-most-one-edge invariant structural
// instead of a racy check-then-insert.
type Subscription struct {
	baseModel.EdgeModel
	SubscriberID   uint `gorm:"index;uniqueIndex:idx_subscriber_subscription" json:"subscriberId"`
	SubscriptionID uint `gorm:"index;uniqueIndex:idx_subscriber_subscription" json:"subscriptionId"`
}
