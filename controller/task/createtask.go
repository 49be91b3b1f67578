package task

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"taskmanagerpro/dto"
	"taskmanagerpro/model"
	"taskmanagerpro/services"
)

func CreateTask(c *gin.Context, db *gorm.DB) {
	userID := c.MustGet("userId").(uint)
	role := c.MustGet("role").(string)

	var req dto.CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	status := req.Status
	if status == "" {
		status = model.StatusTodo
	}
	priority := req.Priority
	if priority == "" {
		priority = model.PriorityMedium
	}
	if !model.ValidStatus(status) || !model.ValidPriority(priority) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid status or priority"})
		return
	}

	project, err := services.GetProjectData(db, req.ProjectID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Project not found"})
		return
	}

	if !services.Authorize(db, project, userID, role,
		model.ProjectRoleOwner, model.ProjectRoleAdmin, model.ProjectRoleMember) {
		c.JSON(http.StatusForbidden, gin.H{"error": "Not enough permissions to create tasks in this project"})
		return
	}

	if req.AssigneeID != nil {
		if _, err := services.GetUserData(db, *req.AssigneeID); err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Assignee not found"})
			return
		}
	}

	if req.ParentTaskID != nil {
		parent, err := services.GetTaskData(db, *req.ParentTaskID)
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Parent task not found"})
			return
		}
		if parent.ProjectID != req.ProjectID {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Parent task must belong to the same project"})
			return
		}
	}

	newTask := model.Task{
		Title:          req.Title,
		Description:    req.Description,
		Status:         status,
		Priority:       priority,
		ProjectID:      req.ProjectID,
		AssigneeID:     req.AssigneeID,
		ParentTaskID:   req.ParentTaskID,
		OrderIndex:     req.OrderIndex,
		EstimatedHours: req.EstimatedHours,
		DueDate:        req.DueDate,
		StartDate:      req.StartDate,
	}
	if err := db.Create(&newTask).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create task"})
		return
	}

	c.JSON(http.StatusCreated, newTask)
}
