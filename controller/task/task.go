package task

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

func TaskController(router *gin.Engine, db *gorm.DB) {
	routes := router.Group("/api/v1/tasks", middleware.AccessTokenMiddleware())
	{
		routes.GET("", func(c *gin.Context) {
			GetTasks(c, db)
		})
		routes.GET("/my", func(c *gin.Context) {
			GetMyTasks(c, db)
		})
		routes.POST("", func(c *gin.Context) {
			CreateTask(c, db)
		})
		routes.GET("/:id", func(c *gin.Context) {
			GetTask(c, db)
		})
		routes.PUT("/:id", func(c *gin.Context) {
			UpdateTask(c, db)
		})
		routes.DELETE("/:id", func(c *gin.Context) {
			DeleteTask(c, db)
		})
		routes.GET("/:id/subtasks", func(c *gin.Context) {
			GetSubtasks(c, db)
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

func GetTasks(c *gin.Context, db *gorm.DB) {
	userID := c.MustGet("userId").(uint)
	role := c.MustGet("role").(string)

	skip, _ := strconv.Atoi(c.DefaultQuery("skip", "0"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "100"))
	if limit < 1 || limit > 100 {
		limit = 100
	}

	query := db.Model(&model.Task{})

	if projectParam := c.Query("project_id"); projectParam != "" {
		projectID, err := strconv.ParseUint(projectParam, 10, 32)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid project_id"})
			return
		}
		if _, err := services.GetProjectData(db, uint(projectID)); err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Project not found"})
			return
		}
		query = query.Where("project_id = ?", projectID)
	} else if assigneeParam := c.Query("assignee_id"); assigneeParam != "" {
		assigneeID, err := strconv.ParseUint(assigneeParam, 10, 32)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid assignee_id"})
			return
		}
		// Users see only their own assignments unless they are admin.
		if uint(assigneeID) != userID && role != model.RoleAdmin {
			c.JSON(http.StatusForbidden, gin.H{"error": "Not enough permissions"})
			return
		}
		query = query.Where("assignee_id = ?", assigneeID)
	}

	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}

	var total int64
	query.Count(&total)

	var tasks []model.Task
	if err := query.Offset(skip).Limit(limit).Find(&tasks).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	c.JSON(http.StatusOK, dto.Paginate(tasks, total, skip, limit))
}

func GetMyTasks(c *gin.Context, db *gorm.DB) {
	userID := c.MustGet("userId").(uint)

	skip, _ := strconv.Atoi(c.DefaultQuery("skip", "0"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "100"))
	if limit < 1 || limit > 100 {
		limit = 100
	}

	query := db.Model(&model.Task{}).Where("assignee_id = ?", userID)
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}

	var total int64
	query.Count(&total)

	var tasks []model.Task
	if err := query.Offset(skip).Limit(limit).Find(&tasks).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	c.JSON(http.StatusOK, dto.Paginate(tasks, total, skip, limit))
}

func GetTask(c *gin.Context, db *gorm.DB) {
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

	c.JSON(http.StatusOK, task)
}

func GetSubtasks(c *gin.Context, db *gorm.DB) {
	taskID, ok := parseID(c, "id")
	if !ok {
		return
	}

	if _, err := services.GetTaskData(db, taskID); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Task not found"})
		return
	}

	var subtasks []model.Task
	if err := db.Where("parent_task_id = ?", taskID).
		Order("order_index ASC, created_at ASC").
		Find(&subtasks).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	c.JSON(http.StatusOK, subtasks)
}
