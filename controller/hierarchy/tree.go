package hierarchy

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"taskmanagerpro/middleware"
	"taskmanagerpro/services"
)

func TreeController(router *gin.Engine, db *gorm.DB) {
	routes := router.Group("/api/v1", middleware.AccessTokenMiddleware())
	{
		routes.GET("/tasks/:id/hierarchy", func(c *gin.Context) {
			GetTaskHierarchy(c, db)
		})
		routes.GET("/projects/:id/task-tree", func(c *gin.Context) {
			GetProjectTaskTree(c, db)
		})
		routes.GET("/tasks/:id/completion", func(c *gin.Context) {
			GetTaskCompletion(c, db)
		})
	}
}

func GetTaskHierarchy(c *gin.Context, db *gorm.DB) {
	taskID, ok := parseID(c, "id")
	if !ok {
		return
	}

	task, err := services.LoadWithHierarchy(db, taskID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Task not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	if !authorizeTask(c, db, task) {
		return
	}

	c.JSON(http.StatusOK, task)
}

func GetProjectTaskTree(c *gin.Context, db *gorm.DB) {
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
		c.JSON(http.StatusForbidden, gin.H{"error": "Not enough permissions"})
		return
	}

	tasks, err := services.LoadProjectTaskTree(db, projectID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	c.JSON(http.StatusOK, tasks)
}

func GetTaskCompletion(c *gin.Context, db *gorm.DB) {
	taskID, ok := parseID(c, "id")
	if !ok {
		return
	}

	task, err := services.GetTaskData(db, taskID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Task not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	if !authorizeTask(c, db, task) {
		return
	}

	percentage, err := services.CompletionPercentage(db, taskID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to calculate completion"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"task_id":               taskID,
		"completion_percentage": percentage,
		"status":                task.Status,
	})
}
