package dto

// UpdateUserRequest applies field-by-field: only fields present in the
// payload are written.
type UpdateUserRequest struct {
	Email      *string `json:"email" binding:"omitempty,email"`
	FullName   *string `json:"full_name"`
	AvatarURL  *string `json:"avatar_url"`
	Role       *string `json:"role"`
	IsActive   *bool   `json:"is_active"`
	IsVerified *bool   `json:"is_verified"`
}
