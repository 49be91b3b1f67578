package services

import (
	"gorm.io/gorm"

	"taskmanagerpro/model"
)

func GetUserData(db *gorm.DB, userID uint) (*model.User, error) {
	var user model.User
	if err := db.Where("user_id = ?", userID).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func GetProjectData(db *gorm.DB, projectID uint) (*model.Project, error) {
	var project model.Project
	if err := db.Where("project_id = ?", projectID).First(&project).Error; err != nil {
		return nil, err
	}
	return &project, nil
}

func GetTaskData(db *gorm.DB, taskID uint) (*model.Task, error) {
	var task model.Task
	if err := db.Where("task_id = ?", taskID).First(&task).Error; err != nil {
		return nil, err
	}
	return &task, nil
}

func GetChecklistData(db *gorm.DB, checklistID uint) (*model.Checklist, error) {
	var checklist model.Checklist
	if err := db.Where("checklist_id = ?", checklistID).First(&checklist).Error; err != nil {
		return nil, err
	}
	return &checklist, nil
}

func GetActionItemData(db *gorm.DB, actionItemID uint) (*model.ActionItem, error) {
	var item model.ActionItem
	if err := db.Where("action_item_id = ?", actionItemID).First(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}
