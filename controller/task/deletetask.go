package task

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"taskmanagerpro/model"
	"taskmanagerpro/services"
)

// DeleteTask hard-deletes a task and everything under it: subtasks at any
// depth, their checklists, and the checklists' action items.
func DeleteTask(c *gin.Context, db *gorm.DB) {
	userID := c.MustGet("userId").(uint)
	role := c.MustGet("role").(string)

	taskID, ok := parseID(c, "id")
	if !ok {
		return
	}

	task, err := services.GetTaskData(db, taskID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Task not found"})
		return
	}

	project, err := services.GetProjectData(db, task.ProjectID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Project not found"})
		return
	}

	if !services.Authorize(db, project, userID, role, model.ProjectRoleOwner, model.ProjectRoleAdmin) {
		c.JSON(http.StatusForbidden, gin.H{"error": "Not enough permissions to delete this task"})
		return
	}

	taskIDs, err := collectSubtree(db, taskID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	tx := db.Begin()
	if tx.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to start transaction"})
		return
	}

	var checklistIDs []uint
	if err := tx.Model(&model.Checklist{}).Where("task_id IN ?", taskIDs).
		Pluck("checklist_id", &checklistIDs).Error; err != nil {
		tx.Rollback()
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete task"})
		return
	}
	if len(checklistIDs) > 0 {
		if err := tx.Where("checklist_id IN ?", checklistIDs).
			Delete(&model.ActionItem{}).Error; err != nil {
			tx.Rollback()
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete task"})
			return
		}
		if err := tx.Where("checklist_id IN ?", checklistIDs).
			Delete(&model.Checklist{}).Error; err != nil {
			tx.Rollback()
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete task"})
			return
		}
	}
	if err := tx.Where("task_id IN ?", taskIDs).Delete(&model.Task{}).Error; err != nil {
		tx.Rollback()
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete task"})
		return
	}

	if err := tx.Commit().Error; err != nil {
		tx.Rollback()
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to commit transaction"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Task '" + task.Title + "' deleted successfully"})
}

// collectSubtree returns the task plus every descendant, breadth-first.
func collectSubtree(db *gorm.DB, rootID uint) ([]uint, error) {
	ids := []uint{rootID}
	frontier := []uint{rootID}
	for len(frontier) > 0 {
		var children []uint
		if err := db.Model(&model.Task{}).Where("parent_task_id IN ?", frontier).
			Pluck("task_id", &children).Error; err != nil {
			return nil, err
		}
		ids = append(ids, children...)
		frontier = children
	}
	return ids, nil
}
