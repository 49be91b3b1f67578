package hierarchy

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"taskmanagerpro/dto"
	"taskmanagerpro/middleware"
	"taskmanagerpro/model"
	"taskmanagerpro/services"
)

func ChecklistController(router *gin.Engine, db *gorm.DB) {
	routes := router.Group("/api/v1", middleware.AccessTokenMiddleware())
	{
		routes.POST("/tasks/:id/checklists", func(c *gin.Context) {
			CreateChecklist(c, db)
		})
		routes.GET("/tasks/:id/checklists", func(c *gin.Context) {
			GetTaskChecklists(c, db)
		})
		routes.PUT("/checklists/:id", func(c *gin.Context) {
			UpdateChecklist(c, db)
		})
		routes.DELETE("/checklists/:id", func(c *gin.Context) {
			DeleteChecklist(c, db)
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

// authorizeTask resolves the task's project and runs the policy gate with
// the given role set. A nil role set means access-level check.
func authorizeTask(c *gin.Context, db *gorm.DB, task *model.Task, roles ...string) bool {
	userID := c.MustGet("userId").(uint)
	role := c.MustGet("role").(string)

	project, err := services.GetProjectData(db, task.ProjectID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Project not found"})
		return false
	}
	if !services.Authorize(db, project, userID, role, roles...) {
		c.JSON(http.StatusForbidden, gin.H{"error": "Not enough permissions"})
		return false
	}
	return true
}

func CreateChecklist(c *gin.Context, db *gorm.DB) {
	taskID, ok := parseID(c, "id")
	if !ok {
		return
	}

	task, err := services.GetTaskData(db, taskID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Task not found"})
		return
	}

	if !authorizeTask(c, db, task,
		model.ProjectRoleOwner, model.ProjectRoleAdmin, model.ProjectRoleMember) {
		return
	}

	var req dto.CreateChecklistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	newChecklist := model.Checklist{
		Title:       req.Title,
		Description: req.Description,
		TaskID:      taskID,
		OrderIndex:  req.OrderIndex,
	}
	if err := db.Create(&newChecklist).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create checklist"})
		return
	}

	c.JSON(http.StatusCreated, newChecklist)
}

func GetTaskChecklists(c *gin.Context, db *gorm.DB) {
	taskID, ok := parseID(c, "id")
	if !ok {
		return
	}

	task, err := services.GetTaskData(db, taskID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Task not found"})
		return
	}

	if !authorizeTask(c, db, task) {
		return
	}

	var checklists []model.Checklist
	if err := db.Preload("ActionItems", func(tx *gorm.DB) *gorm.DB {
		return tx.Order("order_index ASC")
	}).Where("task_id = ?", taskID).
		Order("order_index ASC").
		Find(&checklists).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	c.JSON(http.StatusOK, checklists)
}

func UpdateChecklist(c *gin.Context, db *gorm.DB) {
	checklistID, ok := parseID(c, "id")
	if !ok {
		return
	}

	checklist, err := services.GetChecklistData(db, checklistID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Checklist not found"})
		return
	}

	task, err := services.GetTaskData(db, checklist.TaskID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Task not found"})
		return
	}

	if !authorizeTask(c, db, task,
		model.ProjectRoleOwner, model.ProjectRoleAdmin, model.ProjectRoleMember) {
		return
	}

	var req dto.UpdateChecklistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	updates := map[string]interface{}{}
	if req.Title != nil {
		updates["title"] = *req.Title
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.OrderIndex != nil {
		updates["order_index"] = *req.OrderIndex
	}
	if req.IsCompleted != nil {
		updates["is_completed"] = *req.IsCompleted
		if *req.IsCompleted && !checklist.IsCompleted {
			now := time.Now()
			updates["completed_at"] = &now
		} else if !*req.IsCompleted && checklist.IsCompleted {
			updates["completed_at"] = nil
		}
	}

	if len(updates) > 0 {
		if err := db.Model(checklist).Updates(updates).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update checklist"})
			return
		}
	}

	c.JSON(http.StatusOK, checklist)
}

// DeleteChecklist removes the checklist and its action items, leaving the
// parent task and sibling checklists untouched.
func DeleteChecklist(c *gin.Context, db *gorm.DB) {
	checklistID, ok := parseID(c, "id")
	if !ok {
		return
	}

	checklist, err := services.GetChecklistData(db, checklistID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Checklist not found"})
		return
	}

	task, err := services.GetTaskData(db, checklist.TaskID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Task not found"})
		return
	}

	if !authorizeTask(c, db, task,
		model.ProjectRoleOwner, model.ProjectRoleAdmin, model.ProjectRoleMember) {
		return
	}

	tx := db.Begin()
	if tx.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to start transaction"})
		return
	}
	if err := tx.Where("checklist_id = ?", checklistID).Delete(&model.ActionItem{}).Error; err != nil {
		tx.Rollback()
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete checklist"})
		return
	}
	if err := tx.Where("checklist_id = ?", checklistID).Delete(&model.Checklist{}).Error; err != nil {
		tx.Rollback()
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete checklist"})
		return
	}
	if err := tx.Commit().Error; err != nil {
		tx.Rollback()
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to commit transaction"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Checklist deleted successfully"})
}
