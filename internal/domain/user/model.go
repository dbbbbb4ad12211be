package user

import "time"

// Profile mirrors the identity provider's user inside our own store so
// usernames can be searched and joined against memberships.
type Profile struct {
	UserID    string    `gorm:"type:uuid;primaryKey" json:"user_id"`
	Username  string    `gorm:"not null;uniqueIndex" json:"username"`
	Email     string    `json:"email,omitempty"`
	AvatarURL string    `json:"avatar_url,omitempty"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (Profile) TableName() string {
	return "user_profiles"
}
