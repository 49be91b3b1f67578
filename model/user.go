package model

import (
	"time"
)

// System-wide roles, independent of any project.
const (
	RoleAdmin     = "admin"
	RoleManager   = "manager"
	RoleDeveloper = "developer"
	RoleViewer    = "viewer"
)

type User struct {
	UserID         uint      `gorm:"column:user_id;primaryKey;autoIncrement" json:"id"`
	Username       string    `gorm:"column:username;type:varchar(50);uniqueIndex;not null" json:"username"`
	Email          string    `gorm:"column:email;type:varchar(100);uniqueIndex;not null" json:"email"`
	FullName       string    `gorm:"column:full_name;type:varchar(100);not null" json:"full_name"`
	HashedPassword string    `gorm:"column:hashed_password;type:varchar(255);not null" json:"-"`
	AvatarURL      string    `gorm:"column:avatar_url;type:varchar(255)" json:"avatar_url"`
	Role           string    `gorm:"column:role;type:varchar(20);default:developer" json:"role"`
	IsActive       bool      `gorm:"column:is_active;default:true" json:"is_active"`
	IsVerified     bool      `gorm:"column:is_verified;default:false" json:"is_verified"`
	CreatedAt      time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (User) TableName() string {
	return "users"
}
