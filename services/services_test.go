package services

import (
	"path/filepath"
	"testing"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"taskmanagerpro/model"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	path := filepath.Join(t.TempDir(), "test.db")
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open database: %v", err)
	}

	err = db.AutoMigrate(
		&model.User{},
		&model.Project{},
		&model.ProjectMember{},
		&model.Task{},
		&model.Checklist{},
		&model.ActionItem{},
		&model.RefreshToken{},
	)
	if err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func createUser(t *testing.T, db *gorm.DB, username, role string) *model.User {
	t.Helper()
	user := &model.User{
		Username:       username,
		Email:          username + "@example.com",
		FullName:       username,
		HashedPassword: "x",
		Role:           role,
		IsActive:       true,
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("create user %s: %v", username, err)
	}
	return user
}

func createProject(t *testing.T, db *gorm.DB, key string, ownerID uint) *model.Project {
	t.Helper()
	project := &model.Project{
		Name:     "Project " + key,
		Key:      key,
		OwnerID:  ownerID,
		IsActive: true,
	}
	if err := db.Create(project).Error; err != nil {
		t.Fatalf("create project %s: %v", key, err)
	}
	return project
}

func createTask(t *testing.T, db *gorm.DB, projectID uint, title string, parentID *uint, status string) *model.Task {
	t.Helper()
	task := &model.Task{
		Title:        title,
		ProjectID:    projectID,
		ParentTaskID: parentID,
		Status:       status,
		Priority:     model.PriorityMedium,
	}
	if err := db.Create(task).Error; err != nil {
		t.Fatalf("create task %s: %v", title, err)
	}
	return task
}

func createChecklist(t *testing.T, db *gorm.DB, taskID uint, title string) *model.Checklist {
	t.Helper()
	checklist := &model.Checklist{Title: title, TaskID: taskID}
	if err := db.Create(checklist).Error; err != nil {
		t.Fatalf("create checklist %s: %v", title, err)
	}
	return checklist
}

func createActionItem(t *testing.T, db *gorm.DB, checklistID uint, title string, completed bool) *model.ActionItem {
	t.Helper()
	item := &model.ActionItem{
		Title:       title,
		ChecklistID: checklistID,
		IsCompleted: completed,
		Priority:    model.PriorityMedium,
	}
	if err := db.Create(item).Error; err != nil {
		t.Fatalf("create action item %s: %v", title, err)
	}
	return item
}

func addMember(t *testing.T, db *gorm.DB, projectID, userID uint, role string, active bool) *model.ProjectMember {
	t.Helper()
	member := &model.ProjectMember{
		ProjectID: projectID,
		UserID:    userID,
		Role:      role,
		IsActive:  active,
	}
	if err := db.Create(member).Error; err != nil {
		t.Fatalf("add member: %v", err)
	}
	return member
}
