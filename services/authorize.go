package services

import (
	"gorm.io/gorm"

	"taskmanagerpro/model"
)

// HasAccess reports whether the user holds any active membership in the
// project, regardless of role.
func HasAccess(db *gorm.DB, projectID, userID uint) bool {
	return HasPermission(db, projectID, userID, nil)
}

// HasPermission reports whether the user holds an active membership whose
// role is in allowedRoles. An empty role list degrades to HasAccess.
// A missing membership and an insufficient role are indistinguishable:
// both return false.
func HasPermission(db *gorm.DB, projectID, userID uint, allowedRoles []string) bool {
	query := db.Model(&model.ProjectMember{}).
		Where("project_id = ? AND user_id = ? AND is_active = ?", projectID, userID, true)
	if len(allowedRoles) > 0 {
		query = query.Where("role IN ?", allowedRoles)
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return false
	}
	return count > 0
}

// Authorize is the single policy gate for project-scoped operations. The
// project owner and system admins always pass; everyone else needs an
// active membership with a role in allowedRoles (any active membership
// when the list is empty).
func Authorize(db *gorm.DB, project *model.Project, userID uint, userRole string, allowedRoles ...string) bool {
	if project.OwnerID == userID {
		return true
	}
	if userRole == model.RoleAdmin {
		return true
	}
	return HasPermission(db, project.ProjectID, userID, allowedRoles)
}
