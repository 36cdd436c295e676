package model

import "time"

// BaseModel is the shared shape of content rows: integer identity plus timestamps.
type BaseModel struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// EdgeModel is the shape of relation rows (likes, saved posts, subscriptions).
// No UpdatedAt: an edge is only ever created or hard-deleted, and the
// composite unique indexes over the pair columns must stay reusable.
type EdgeModel struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"createdAt"`
}
