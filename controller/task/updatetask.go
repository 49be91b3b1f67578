package task

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"taskmanagerpro/dto"
	"taskmanagerpro/model"
	"taskmanagerpro/services"
)

func UpdateTask(c *gin.Context, db *gorm.DB) {
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

	// The assignee may always update their own task; anyone else goes
	// through the project gate.
	isAssignee := task.AssigneeID != nil && *task.AssigneeID == userID
	if !isAssignee && !services.Authorize(db, project, userID, role,
		model.ProjectRoleOwner, model.ProjectRoleAdmin, model.ProjectRoleMember) {
		c.JSON(http.StatusForbidden, gin.H{"error": "Not enough permissions to update this task"})
		return
	}

	var req dto.UpdateTaskRequest
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
	if req.Status != nil {
		if !model.ValidStatus(*req.Status) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid status"})
			return
		}
		updates["status"] = *req.Status
		// completed_at tracks the transition in and out of "done".
		if *req.Status == model.StatusDone && task.Status != model.StatusDone {
			now := time.Now()
			updates["completed_at"] = &now
		} else if *req.Status != model.StatusDone && task.Status == model.StatusDone {
			updates["completed_at"] = nil
		}
	}
	if req.Priority != nil {
		if !model.ValidPriority(*req.Priority) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid priority"})
			return
		}
		updates["priority"] = *req.Priority
	}
	if req.AssigneeID != nil {
		if _, err := services.GetUserData(db, *req.AssigneeID); err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Assignee not found"})
			return
		}
		updates["assignee_id"] = *req.AssigneeID
	}
	if req.ParentTaskID != nil {
		parent, err := services.GetTaskData(db, *req.ParentTaskID)
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Parent task not found"})
			return
		}
		if parent.ProjectID != task.ProjectID {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Parent task must belong to the same project"})
			return
		}
		if createsCycle(db, taskID, *req.ParentTaskID) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Task cannot be its own ancestor"})
			return
		}
		updates["parent_task_id"] = *req.ParentTaskID
	}
	if req.OrderIndex != nil {
		updates["order_index"] = *req.OrderIndex
	}
	if req.EstimatedHours != nil {
		updates["estimated_hours"] = *req.EstimatedHours
	}
	if req.DueDate != nil {
		updates["due_date"] = *req.DueDate
	}
	if req.StartDate != nil {
		updates["start_date"] = *req.StartDate
	}

	if len(updates) > 0 {
		if err := db.Model(task).Updates(updates).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update task"})
			return
		}
	}

	c.JSON(http.StatusOK, task)
}

// createsCycle walks the ancestor chain from the proposed parent and
// reports whether taskID appears in it.
func createsCycle(db *gorm.DB, taskID, parentID uint) bool {
	current := parentID
	for current != 0 {
		if current == taskID {
			return true
		}
		var parent model.Task
		if err := db.Select("parent_task_id").
			Where("task_id = ?", current).First(&parent).Error; err != nil {
			return false
		}
		if parent.ParentTaskID == nil {
			return false
		}
		current = *parent.ParentTaskID
	}
	return false
}
