package model

import (
	"time"
)

const (
	StatusTodo       = "todo"
	StatusInProgress = "in_progress"
	StatusInReview   = "in_review"
	StatusDone       = "done"
	StatusBlocked    = "blocked"
)

const (
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
	PriorityUrgent = "urgent"
)

// Task is self-referential: ParentTaskID points back into the same table,
// forming a tree. CompletedAt is set exactly when Status transitions into
// "done" and cleared when it transitions out.
type Task struct {
	TaskID         uint       `gorm:"column:task_id;primaryKey;autoIncrement" json:"id"`
	Title          string     `gorm:"column:title;type:varchar(200);not null;index" json:"title"`
	Description    string     `gorm:"column:description;type:text" json:"description"`
	Status         string     `gorm:"column:status;type:varchar(20);default:todo" json:"status"`
	Priority       string     `gorm:"column:priority;type:varchar(20);default:medium" json:"priority"`
	ProjectID      uint       `gorm:"column:project_id;not null;index" json:"project_id"`
	AssigneeID     *uint      `gorm:"column:assignee_id" json:"assignee_id"`
	ParentTaskID   *uint      `gorm:"column:parent_task_id;index" json:"parent_task_id"`
	OrderIndex     int        `gorm:"column:order_index;default:0" json:"order_index"`
	IsTemplate     bool       `gorm:"column:is_template;default:false" json:"is_template"`
	EstimatedHours *int       `gorm:"column:estimated_hours" json:"estimated_hours"`
	DueDate        *time.Time `gorm:"column:due_date" json:"due_date"`
	StartDate      *time.Time `gorm:"column:start_date" json:"start_date"`
	CreatedAt      time.Time  `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time  `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
	CompletedAt    *time.Time `gorm:"column:completed_at" json:"completed_at"`

	// Relations
	Project    *Project    `gorm:"foreignKey:ProjectID;references:ProjectID;constraint:OnDelete:CASCADE" json:"-"`
	Assignee   *User       `gorm:"foreignKey:AssigneeID;references:UserID" json:"assignee,omitempty"`
	Subtasks   []Task      `gorm:"foreignKey:ParentTaskID;references:TaskID" json:"subtasks"`
	Checklists []Checklist `gorm:"foreignKey:TaskID;references:TaskID" json:"checklists"`
}

func (Task) TableName() string {
	return "tasks"
}

func ValidStatus(status string) bool {
	switch status {
	case StatusTodo, StatusInProgress, StatusInReview, StatusDone, StatusBlocked:
		return true
	}
	return false
}

func ValidPriority(priority string) bool {
	switch priority {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent:
		return true
	}
	return false
}
