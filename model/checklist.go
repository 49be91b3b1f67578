package model

import (
	"time"
)

// Checklist groups action items under a task. IsCompleted is a manual
// milestone flag: it is never derived from the action items and does not
// feed the completion percentage.
type Checklist struct {
	ChecklistID uint       `gorm:"column:checklist_id;primaryKey;autoIncrement" json:"id"`
	Title       string     `gorm:"column:title;type:varchar(200);not null" json:"title"`
	Description string     `gorm:"column:description;type:text" json:"description"`
	TaskID      uint       `gorm:"column:task_id;not null;index" json:"task_id"`
	OrderIndex  int        `gorm:"column:order_index;default:0" json:"order_index"`
	IsCompleted bool       `gorm:"column:is_completed;default:false" json:"is_completed"`
	CreatedAt   time.Time  `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time  `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
	CompletedAt *time.Time `gorm:"column:completed_at" json:"completed_at"`

	// Relations
	Task        *Task        `gorm:"foreignKey:TaskID;references:TaskID;constraint:OnDelete:CASCADE" json:"-"`
	ActionItems []ActionItem `gorm:"foreignKey:ChecklistID;references:ChecklistID" json:"action_items"`
}

func (Checklist) TableName() string {
	return "checklists"
}
