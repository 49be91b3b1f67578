package connection

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"taskmanagerpro/controller/auth"
	"taskmanagerpro/controller/hierarchy"
	"taskmanagerpro/controller/member"
	"taskmanagerpro/controller/project"
	"taskmanagerpro/controller/task"
	"taskmanagerpro/controller/user"
	"taskmanagerpro/scheduler"
)

func StartServer() {
	db, err := DBConnection()
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	scheduler.StartScheduler(db)

	router := SetupRouter(db)
	router.Run()
}

// SetupRouter assembles the full route table against the given database.
func SetupRouter(db *gorm.DB) *gin.Engine {
	router := gin.Default()
	router.Use(cors.Default())

	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message":   "TaskManager Pro API",
			"status":    "online",
			"timestamp": time.Now().Format(time.RFC3339),
		})
	})
	router.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	})

	auth.AuthController(router, db)
	user.UserController(router, db)
	project.ProjectController(router, db)
	member.MemberController(router, db)
	task.TaskController(router, db)
	hierarchy.ChecklistController(router, db)
	hierarchy.ActionItemController(router, db)
	hierarchy.TreeController(router, db)

	return router
}
