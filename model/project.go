package model

import (
	"time"
)

type Project struct {
	ProjectID   uint      `gorm:"column:project_id;primaryKey;autoIncrement" json:"id"`
	Name        string    `gorm:"column:name;type:varchar(100);not null;index" json:"name"`
	Description string    `gorm:"column:description;type:text" json:"description"`
	Key         string    `gorm:"column:project_key;type:varchar(10);uniqueIndex" json:"key"`
	OwnerID     uint      `gorm:"column:owner_id;not null" json:"owner_id"`
	IsActive    bool      `gorm:"column:is_active;default:true" json:"is_active"`
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`

	// Relations
	Owner *User `gorm:"foreignKey:OwnerID;references:UserID" json:"owner,omitempty"`
}

func (Project) TableName() string {
	return "projects"
}
