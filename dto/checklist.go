package dto

type CreateChecklistRequest struct {
	Title       string `json:"title" binding:"required,max=200"`
	Description string `json:"description"`
	OrderIndex  int    `json:"order_index"`
}

type UpdateChecklistRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	OrderIndex  *int    `json:"order_index"`
	IsCompleted *bool   `json:"is_completed"`
}
