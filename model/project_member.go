package model

import (
	"time"
)

// Project-scoped roles, distinct from the system-wide user role.
const (
	ProjectRoleOwner  = "OWNER"
	ProjectRoleAdmin  = "ADMIN"
	ProjectRoleMember = "MEMBER"
	ProjectRoleViewer = "VIEWER"
)

// ProjectMember pairs a user with a project-scoped role. Removal is a
// soft delete: at most one row per (project_id, user_id) is active at a
// time, and re-adding a removed member reactivates the existing row.
type ProjectMember struct {
	MemberID  uint      `gorm:"column:member_id;primaryKey;autoIncrement" json:"id"`
	ProjectID uint      `gorm:"column:project_id;not null;index" json:"project_id"`
	UserID    uint      `gorm:"column:user_id;not null;index" json:"user_id"`
	Role      string    `gorm:"column:role;type:varchar(10);default:MEMBER;not null" json:"role"`
	JoinedAt  time.Time `gorm:"column:joined_at;autoCreateTime" json:"joined_at"`
	IsActive  bool      `gorm:"column:is_active;default:true" json:"is_active"`

	// Relations
	Project *Project `gorm:"foreignKey:ProjectID;references:ProjectID;constraint:OnDelete:CASCADE" json:"project,omitempty"`
	User    *User    `gorm:"foreignKey:UserID;references:UserID;constraint:OnDelete:CASCADE" json:"user,omitempty"`
}

func (ProjectMember) TableName() string {
	return "project_members"
}

func ValidProjectRole(role string) bool {
	switch role {
	case ProjectRoleOwner, ProjectRoleAdmin, ProjectRoleMember, ProjectRoleViewer:
		return true
	}
	return false
}
