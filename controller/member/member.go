package member

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"taskmanagerpro/dto"
	"taskmanagerpro/middleware"
	"taskmanagerpro/model"
	"taskmanagerpro/services"
)

func MemberController(router *gin.Engine, db *gorm.DB) {
	routes := router.Group("/api/v1", middleware.AccessTokenMiddleware())
	{
		routes.POST("/projects/:id/members", func(c *gin.Context) {
			AddMember(c, db)
		})
		routes.GET("/projects/:id/members", func(c *gin.Context) {
			GetMembers(c, db)
		})
		routes.PUT("/projects/:id/members/:memberid", func(c *gin.Context) {
			UpdateMemberRole(c, db)
		})
		routes.DELETE("/projects/:id/members/:userid", func(c *gin.Context) {
			RemoveMember(c, db)
		})
		routes.GET("/users/:id/projects", func(c *gin.Context) {
			GetUserProjects(c, db)
		})
	}
}

func parseID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid " + name})
		return 0, false
	}
	return uint(id), true
}

func AddMember(c *gin.Context, db *gorm.DB) {
	userID := c.MustGet("userId").(uint)
	role := c.MustGet("role").(string)

	projectID, ok := parseID(c, "id")
	if !ok {
		return
	}

	project, err := services.GetProjectData(db, projectID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Project not found"})
		return
	}

	if !services.Authorize(db, project, userID, role, model.ProjectRoleOwner, model.ProjectRoleAdmin) {
		c.JSON(http.StatusForbidden, gin.H{"error": "Not enough permissions to add members"})
		return
	}

	var req dto.AddMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}
	memberRole := req.Role
	if memberRole == "" {
		memberRole = model.ProjectRoleMember
	}
	if !model.ValidProjectRole(memberRole) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid project role"})
		return
	}

	newUser, err := services.GetUserData(db, req.UserID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	// One active row per (project, user). A previously removed member is
	// reactivated instead of getting a second row.
	var existing model.ProjectMember
	err = db.Where("project_id = ? AND user_id = ?", projectID, req.UserID).First(&existing).Error
	if err == nil {
		if existing.IsActive {
			c.JSON(http.StatusConflict, gin.H{"error": "User is already a member of this project"})
			return
		}
		if err := db.Model(&existing).
			Updates(map[string]interface{}{"is_active": true, "role": memberRole}).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add member"})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"message": "Member added to project successfully",
			"data":    gin.H{"member_id": existing.MemberID, "username": newUser.Username},
		})
		return
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	newMember := model.ProjectMember{
		ProjectID: projectID,
		UserID:    req.UserID,
		Role:      memberRole,
		IsActive:  true,
	}
	if err := db.Create(&newMember).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add member"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Member added to project successfully",
		"data":    gin.H{"member_id": newMember.MemberID, "username": newUser.Username},
	})
}

func GetMembers(c *gin.Context, db *gorm.DB) {
	userID := c.MustGet("userId").(uint)
	role := c.MustGet("role").(string)

	projectID, ok := parseID(c, "id")
	if !ok {
		return
	}

	project, err := services.GetProjectData(db, projectID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Project not found"})
		return
	}

	if !services.Authorize(db, project, userID, role) {
		c.JSON(http.StatusForbidden, gin.H{"error": "Not enough permissions to view project members"})
		return
	}

	var members []model.ProjectMember
	if err := db.Preload("User").
		Where("project_id = ? AND is_active = ?", projectID, true).
		Find(&members).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	c.JSON(http.StatusOK, members)
}

func UpdateMemberRole(c *gin.Context, db *gorm.DB) {
	userID := c.MustGet("userId").(uint)
	role := c.MustGet("role").(string)

	projectID, ok := parseID(c, "id")
	if !ok {
		return
	}
	memberID, ok := parseID(c, "memberid")
	if !ok {
		return
	}

	project, err := services.GetProjectData(db, projectID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Project not found"})
		return
	}

	if !services.Authorize(db, project, userID, role, model.ProjectRoleOwner, model.ProjectRoleAdmin) {
		c.JSON(http.StatusForbidden, gin.H{"error": "Not enough permissions to update member roles"})
		return
	}

	var req dto.UpdateMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}
	if !model.ValidProjectRole(req.Role) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid project role"})
		return
	}

	var member model.ProjectMember
	if err := db.Where("member_id = ? AND project_id = ?", memberID, projectID).
		First(&member).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Member not found"})
		return
	}

	if err := db.Model(&member).Update("role", req.Role).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update member"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Member role updated successfully",
		"data":    gin.H{"member_id": memberID},
	})
}

// RemoveMember soft-deletes the membership. Members may remove themselves.
func RemoveMember(c *gin.Context, db *gorm.DB) {
	userID := c.MustGet("userId").(uint)
	role := c.MustGet("role").(string)

	projectID, ok := parseID(c, "id")
	if !ok {
		return
	}
	targetID, ok := parseID(c, "userid")
	if !ok {
		return
	}

	project, err := services.GetProjectData(db, projectID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Project not found"})
		return
	}

	if targetID != userID &&
		!services.Authorize(db, project, userID, role, model.ProjectRoleOwner, model.ProjectRoleAdmin) {
		c.JSON(http.StatusForbidden, gin.H{"error": "Not enough permissions to remove members"})
		return
	}

	var member model.ProjectMember
	if err := db.Where("project_id = ? AND user_id = ? AND is_active = ?",
		projectID, targetID, true).First(&member).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Member not found in project"})
		return
	}

	if err := db.Model(&member).Update("is_active", false).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to remove member"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Member removed from project successfully",
		"data":    gin.H{"user_id": targetID},
	})
}

func GetUserProjects(c *gin.Context, db *gorm.DB) {
	currentID := c.MustGet("userId").(uint)
	role := c.MustGet("role").(string)

	targetID, ok := parseID(c, "id")
	if !ok {
		return
	}

	if targetID != currentID && role != model.RoleAdmin {
		c.JSON(http.StatusForbidden, gin.H{"error": "Not enough permissions to view user projects"})
		return
	}

	var memberships []model.ProjectMember
	if err := db.Preload("Project").
		Where("user_id = ? AND is_active = ?", targetID, true).
		Find(&memberships).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	c.JSON(http.StatusOK, memberships)
}
