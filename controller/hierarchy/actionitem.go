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

func ActionItemController(router *gin.Engine, db *gorm.DB) {
	routes := router.Group("/api/v1", middleware.AccessTokenMiddleware())
	{
		routes.POST("/checklists/:id/action-items", func(c *gin.Context) {
			CreateActionItem(c, db)
		})
		routes.GET("/checklists/:id/action-items", func(c *gin.Context) {
			GetChecklistActionItems(c, db)
		})
		routes.PUT("/action-items/:id", func(c *gin.Context) {
			UpdateActionItem(c, db)
		})
		routes.DELETE("/action-items/:id", func(c *gin.Context) {
			DeleteActionItem(c, db)
		})
		routes.GET("/users/:id/action-items", func(c *gin.Context) {
			GetUserActionItems(c, db)
		})
	}
}

// taskOfChecklist loads the checklist's parent task for the policy gate.
func taskOfChecklist(c *gin.Context, db *gorm.DB, checklist *model.Checklist) (*model.Task, bool) {
	task, err := services.GetTaskData(db, checklist.TaskID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Task not found"})
		return nil, false
	}
	return task, true
}

func CreateActionItem(c *gin.Context, db *gorm.DB) {
	checklistID, ok := parseID(c, "id")
	if !ok {
		return
	}

	checklist, err := services.GetChecklistData(db, checklistID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Checklist not found"})
		return
	}

	task, ok := taskOfChecklist(c, db, checklist)
	if !ok {
		return
	}
	if !authorizeTask(c, db, task,
		model.ProjectRoleOwner, model.ProjectRoleAdmin, model.ProjectRoleMember) {
		return
	}

	var req dto.CreateActionItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	priority := req.Priority
	if priority == "" {
		priority = model.PriorityMedium
	}
	if !model.ValidPriority(priority) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid priority"})
		return
	}

	if req.AssigneeID != nil {
		if _, err := services.GetUserData(db, *req.AssigneeID); err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Assignee not found"})
			return
		}
	}

	newItem := model.ActionItem{
		Title:       req.Title,
		Description: req.Description,
		ChecklistID: checklistID,
		AssigneeID:  req.AssigneeID,
		OrderIndex:  req.OrderIndex,
		Priority:    priority,
		DueDate:     req.DueDate,
	}
	if err := db.Create(&newItem).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create action item"})
		return
	}

	c.JSON(http.StatusCreated, newItem)
}

func GetChecklistActionItems(c *gin.Context, db *gorm.DB) {
	checklistID, ok := parseID(c, "id")
	if !ok {
		return
	}

	checklist, err := services.GetChecklistData(db, checklistID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Checklist not found"})
		return
	}

	task, ok := taskOfChecklist(c, db, checklist)
	if !ok {
		return
	}
	if !authorizeTask(c, db, task) {
		return
	}

	var items []model.ActionItem
	if err := db.Where("checklist_id = ?", checklistID).
		Order("order_index ASC").
		Find(&items).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	c.JSON(http.StatusOK, items)
}

func UpdateActionItem(c *gin.Context, db *gorm.DB) {
	itemID, ok := parseID(c, "id")
	if !ok {
		return
	}

	item, err := services.GetActionItemData(db, itemID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Action item not found"})
		return
	}

	checklist, err := services.GetChecklistData(db, item.ChecklistID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Checklist not found"})
		return
	}
	task, ok := taskOfChecklist(c, db, checklist)
	if !ok {
		return
	}
	if !authorizeTask(c, db, task,
		model.ProjectRoleOwner, model.ProjectRoleAdmin, model.ProjectRoleMember) {
		return
	}

	var req dto.UpdateActionItemRequest
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
	if req.AssigneeID != nil {
		if _, err := services.GetUserData(db, *req.AssigneeID); err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Assignee not found"})
			return
		}
		updates["assignee_id"] = *req.AssigneeID
	}
	if req.OrderIndex != nil {
		updates["order_index"] = *req.OrderIndex
	}
	if req.Priority != nil {
		if !model.ValidPriority(*req.Priority) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid priority"})
			return
		}
		updates["priority"] = *req.Priority
	}
	if req.DueDate != nil {
		updates["due_date"] = *req.DueDate
	}
	if req.IsCompleted != nil {
		updates["is_completed"] = *req.IsCompleted
		// completed_at mirrors the flag on the same request.
		if *req.IsCompleted && !item.IsCompleted {
			now := time.Now()
			updates["completed_at"] = &now
		} else if !*req.IsCompleted && item.IsCompleted {
			updates["completed_at"] = nil
		}
	}

	if len(updates) > 0 {
		if err := db.Model(item).Updates(updates).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update action item"})
			return
		}
	}

	c.JSON(http.StatusOK, item)
}

func DeleteActionItem(c *gin.Context, db *gorm.DB) {
	itemID, ok := parseID(c, "id")
	if !ok {
		return
	}

	item, err := services.GetActionItemData(db, itemID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Action item not found"})
		return
	}

	checklist, err := services.GetChecklistData(db, item.ChecklistID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Checklist not found"})
		return
	}
	task, ok := taskOfChecklist(c, db, checklist)
	if !ok {
		return
	}
	if !authorizeTask(c, db, task,
		model.ProjectRoleOwner, model.ProjectRoleAdmin, model.ProjectRoleMember) {
		return
	}

	if err := db.Delete(item).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete action item"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Action item deleted successfully"})
}

func GetUserActionItems(c *gin.Context, db *gorm.DB) {
	currentID := c.MustGet("userId").(uint)
	role := c.MustGet("role").(string)

	targetID, ok := parseID(c, "id")
	if !ok {
		return
	}

	if targetID != currentID && role != model.RoleAdmin {
		c.JSON(http.StatusForbidden, gin.H{"error": "Not enough permissions"})
		return
	}

	query := db.Where("assignee_id = ?", targetID)
	if completedParam := c.Query("completed"); completedParam != "" {
		completed, err := strconv.ParseBool(completedParam)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid completed filter"})
			return
		}
		query = query.Where("is_completed = ?", completed)
	}

	var items []model.ActionItem
	if err := query.Order("due_date ASC").Find(&items).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	c.JSON(http.StatusOK, items)
}
