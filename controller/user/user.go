package user

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

func UserController(router *gin.Engine, db *gorm.DB) {
	routes := router.Group("/api/v1/users", middleware.AccessTokenMiddleware())
	{
		routes.GET("", func(c *gin.Context) {
			GetUsers(c, db)
		})
		routes.GET("/:id", func(c *gin.Context) {
			GetUser(c, db)
		})
		routes.PUT("/:id", func(c *gin.Context) {
			UpdateUser(c, db)
		})
		routes.DELETE("/:id", middleware.AdminMiddleware(), func(c *gin.Context) {
			DeleteUser(c, db)
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

func GetUsers(c *gin.Context, db *gorm.DB) {
	skip, _ := strconv.Atoi(c.DefaultQuery("skip", "0"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "100"))
	if limit < 1 || limit > 100 {
		limit = 100
	}

	var users []model.User
	if err := db.Offset(skip).Limit(limit).Find(&users).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	var total int64
	db.Model(&model.User{}).Count(&total)

	c.JSON(http.StatusOK, dto.Paginate(users, total, skip, limit))
}

func GetUser(c *gin.Context, db *gorm.DB) {
	userID, ok := parseID(c, "id")
	if !ok {
		return
	}

	user, err := services.GetUserData(db, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}
	c.JSON(http.StatusOK, user)
}

func UpdateUser(c *gin.Context, db *gorm.DB) {
	currentID := c.MustGet("userId").(uint)
	currentRole := c.MustGet("role").(string)

	targetID, ok := parseID(c, "id")
	if !ok {
		return
	}

	// Users update themselves; only admins touch anyone else.
	if targetID != currentID && currentRole != model.RoleAdmin {
		c.JSON(http.StatusForbidden, gin.H{"error": "Not enough permissions to update this user"})
		return
	}

	var req dto.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	user, err := services.GetUserData(db, targetID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	updates := map[string]interface{}{}
	if req.Email != nil {
		updates["email"] = *req.Email
	}
	if req.FullName != nil {
		updates["full_name"] = *req.FullName
	}
	if req.AvatarURL != nil {
		updates["avatar_url"] = *req.AvatarURL
	}
	if req.Role != nil {
		// Only admins may change a role, including their own.
		if currentRole != model.RoleAdmin {
			c.JSON(http.StatusForbidden, gin.H{"error": "Only admins may change roles"})
			return
		}
		updates["role"] = *req.Role
	}
	if req.IsActive != nil {
		if currentRole != model.RoleAdmin {
			c.JSON(http.StatusForbidden, gin.H{"error": "Only admins may change active status"})
			return
		}
		updates["is_active"] = *req.IsActive
	}
	if req.IsVerified != nil {
		updates["is_verified"] = *req.IsVerified
	}

	if len(updates) > 0 {
		if err := db.Model(user).Updates(updates).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update user"})
			return
		}
	}

	c.JSON(http.StatusOK, user)
}

// DeleteUser deactivates the account rather than removing the row.
func DeleteUser(c *gin.Context, db *gorm.DB) {
	targetID, ok := parseID(c, "id")
	if !ok {
		return
	}

	user, err := services.GetUserData(db, targetID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	if err := db.Model(user).Update("is_active", false).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to deactivate user"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "User " + user.Username + " deactivated successfully"})
}
