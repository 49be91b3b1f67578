package model

import (
	"time"
)

// RefreshToken holds a bcrypt hash of an issued refresh token. The raw
// token only ever lives on the client.
type RefreshToken struct {
	TokenID     uint      `gorm:"column:token_id;primaryKey;autoIncrement" json:"id"`
	UserID      uint      `gorm:"column:user_id;not null;index" json:"user_id"`
	HashedToken string    `gorm:"column:hashed_token;type:varchar(255);not null" json:"-"`
	Revoked     bool      `gorm:"column:revoked;default:false" json:"revoked"`
	ExpiresAt   time.Time `gorm:"column:expires_at;not null" json:"expires_at"`
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`

	// Relations
	User *User `gorm:"foreignKey:UserID;references:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

func (RefreshToken) TableName() string {
	return "refresh_tokens"
}
