package dto

type AddMemberRequest struct {
	UserID uint   `json:"user_id" binding:"required"`
	Role   string `json:"role"`
}

type UpdateMemberRequest struct {
	Role string `json:"role" binding:"required"`
}
