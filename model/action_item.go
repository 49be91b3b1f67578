package model

import (
	"time"
)

type ActionItem struct {
	ActionItemID uint       `gorm:"column:action_item_id;primaryKey;autoIncrement" json:"id"`
	Title        string     `gorm:"column:title;type:varchar(200);not null" json:"title"`
	Description  string     `gorm:"column:description;type:text" json:"description"`
	ChecklistID  uint       `gorm:"column:checklist_id;not null;index" json:"checklist_id"`
	AssigneeID   *uint      `gorm:"column:assignee_id" json:"assignee_id"`
	OrderIndex   int        `gorm:"column:order_index;default:0" json:"order_index"`
	IsCompleted  bool       `gorm:"column:is_completed;default:false" json:"is_completed"`
	Priority     string     `gorm:"column:priority;type:varchar(20);default:medium" json:"priority"`
	DueDate      *time.Time `gorm:"column:due_date" json:"due_date"`
	CreatedAt    time.Time  `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time  `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
	CompletedAt  *time.Time `gorm:"column:completed_at" json:"completed_at"`

	// Relations
	Checklist *Checklist `gorm:"foreignKey:ChecklistID;references:ChecklistID;constraint:OnDelete:CASCADE" json:"-"`
	Assignee  *User      `gorm:"foreignKey:AssigneeID;references:UserID" json:"assignee,omitempty"`
}

func (ActionItem) TableName() string {
	return "action_items"
}
