package project

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

func ProjectController(router *gin.Engine, db *gorm.DB) {
	routes := router.Group("/api/v1/projects", middleware.AccessTokenMiddleware())
	{
		routes.GET("", func(c *gin.Context) {
			GetProjects(c, db)
		})
		routes.GET("/my", func(c *gin.Context) {
			GetMyProjects(c, db)
		})
		routes.POST("", func(c *gin.Context) {
			CreateProject(c, db)
		})
		routes.GET("/:id", func(c *gin.Context) {
			GetProject(c, db)
		})
		routes.PUT("/:id", func(c *gin.Context) {
			UpdateProject(c, db)
		})
		routes.DELETE("/:id", func(c *gin.Context) {
			DeleteProject(c, db)
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

func GetProjects(c *gin.Context, db *gorm.DB) {
	skip, _ := strconv.Atoi(c.DefaultQuery("skip", "0"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "100"))
	if limit < 1 || limit > 100 {
		limit = 100
	}

	var projects []model.Project
	if err := db.Where("is_active = ?", true).
		Offset(skip).Limit(limit).Find(&projects).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	var total int64
	db.Model(&model.Project{}).Where("is_active = ?", true).Count(&total)

	c.JSON(http.StatusOK, dto.Paginate(projects, total, skip, limit))
}

func GetMyProjects(c *gin.Context, db *gorm.DB) {
	userID := c.MustGet("userId").(uint)
	skip, _ := strconv.Atoi(c.DefaultQuery("skip", "0"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "100"))
	if limit < 1 || limit > 100 {
		limit = 100
	}

	var projects []model.Project
	if err := db.Where("owner_id = ? AND is_active = ?", userID, true).
		Offset(skip).Limit(limit).Find(&projects).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	var total int64
	db.Model(&model.Project{}).Where("owner_id = ? AND is_active = ?", userID, true).Count(&total)

	c.JSON(http.StatusOK, dto.Paginate(projects, total, skip, limit))
}

func CreateProject(c *gin.Context, db *gorm.DB) {
	userID := c.MustGet("userId").(uint)

	var req dto.CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	var count int64
	db.Model(&model.Project{}).Where("project_key = ?", req.Key).Count(&count)
	if count > 0 {
		c.JSON(http.StatusConflict, gin.H{"error": "Project key already exists"})
		return
	}

	newProject := model.Project{
		Name:        req.Name,
		Description: req.Description,
		Key:         req.Key,
		OwnerID:     userID,
		IsActive:    true,
	}
	if err := db.Create(&newProject).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create project"})
		return
	}

	c.JSON(http.StatusCreated, newProject)
}

func GetProject(c *gin.Context, db *gorm.DB) {
	projectID, ok := parseID(c, "id")
	if !ok {
		return
	}

	project, err := services.GetProjectData(db, projectID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Project not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}
	c.JSON(http.StatusOK, project)
}

func UpdateProject(c *gin.Context, db *gorm.DB) {
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
		c.JSON(http.StatusForbidden, gin.H{"error": "Not enough permissions to update this project"})
		return
	}

	var req dto.UpdateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	updates := map[string]interface{}{}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.IsActive != nil {
		updates["is_active"] = *req.IsActive
	}

	if len(updates) > 0 {
		if err := db.Model(project).Updates(updates).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update project"})
			return
		}
	}

	c.JSON(http.StatusOK, project)
}

// DeleteProject soft-deletes: the row stays, is_active flips off.
func DeleteProject(c *gin.Context, db *gorm.DB) {
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
		c.JSON(http.StatusForbidden, gin.H{"error": "Not enough permissions to delete this project"})
		return
	}

	if err := db.Model(project).Update("is_active", false).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete project"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Project deleted successfully"})
}
