package dto

import "time"

type CreateActionItemRequest struct {
	Title       string     `json:"title" binding:"required,max=200"`
	Description string     `json:"description"`
	AssigneeID  *uint      `json:"assignee_id"`
	OrderIndex  int        `json:"order_index"`
	Priority    string     `json:"priority"`
	DueDate     *time.Time `json:"due_date"`
}

type UpdateActionItemRequest struct {
	Title       *string    `json:"title"`
	Description *string    `json:"description"`
	AssigneeID  *uint      `json:"assignee_id"`
	OrderIndex  *int       `json:"order_index"`
	IsCompleted *bool      `json:"is_completed"`
	Priority    *string    `json:"priority"`
	DueDate     *time.Time `json:"due_date"`
}
