package dto

import "time"

type CreateTaskRequest struct {
	Title          string     `json:"title" binding:"required,max=200"`
	Description    string     `json:"description"`
	Status         string     `json:"status"`
	Priority       string     `json:"priority"`
	ProjectID      uint       `json:"project_id" binding:"required"`
	AssigneeID     *uint      `json:"assignee_id"`
	ParentTaskID   *uint      `json:"parent_task_id"`
	OrderIndex     int        `json:"order_index"`
	EstimatedHours *int       `json:"estimated_hours"`
	DueDate        *time.Time `json:"due_date"`
	StartDate      *time.Time `json:"start_date"`
}

type UpdateTaskRequest struct {
	Title          *string    `json:"title"`
	Description    *string    `json:"description"`
	Status         *string    `json:"status"`
	Priority       *string    `json:"priority"`
	AssigneeID     *uint      `json:"assignee_id"`
	ParentTaskID   *uint      `json:"parent_task_id"`
	OrderIndex     *int       `json:"order_index"`
	EstimatedHours *int       `json:"estimated_hours"`
	DueDate        *time.Time `json:"due_date"`
	StartDate      *time.Time `json:"start_date"`
}
