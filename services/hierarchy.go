package services

import (
	"gorm.io/gorm"

	"taskmanagerpro/model"
)

// LoadWithHierarchy loads a task together with its direct subtasks and its
// checklists, each checklist with its action items. The shape is
// deliberately shallow: subtasks are not expanded further, so a subtask's
// own checklists and children are absent from the result.
func LoadWithHierarchy(db *gorm.DB, taskID uint) (*model.Task, error) {
	var task model.Task
	err := db.
		Preload("Subtasks", func(tx *gorm.DB) *gorm.DB {
			return tx.Order("order_index ASC, created_at ASC")
		}).
		Preload("Checklists", func(tx *gorm.DB) *gorm.DB {
			return tx.Order("order_index ASC")
		}).
		Preload("Checklists.ActionItems", func(tx *gorm.DB) *gorm.DB {
			return tx.Order("order_index ASC")
		}).
		Where("task_id = ?", taskID).
		First(&task).Error
	if err != nil {
		return nil, err
	}
	return &task, nil
}

// LoadProjectTaskTree returns every top-level task of the project (parent
// is null) in the same shallow shape as LoadWithHierarchy, ordered by
// order_index then created_at.
func LoadProjectTaskTree(db *gorm.DB, projectID uint) ([]model.Task, error) {
	var tasks []model.Task
	err := db.
		Preload("Subtasks", func(tx *gorm.DB) *gorm.DB {
			return tx.Order("order_index ASC, created_at ASC")
		}).
		Preload("Checklists", func(tx *gorm.DB) *gorm.DB {
			return tx.Order("order_index ASC")
		}).
		Preload("Checklists.ActionItems", func(tx *gorm.DB) *gorm.DB {
			return tx.Order("order_index ASC")
		}).
		Where("project_id = ? AND parent_task_id IS NULL", projectID).
		Order("order_index ASC, created_at ASC").
		Find(&tasks).Error
	if err != nil {
		return nil, err
	}
	return tasks, nil
}

// CompletionPercentage walks the shallow hierarchy and returns the
// unweighted ratio of completed items to total items, in [0,100]. Two item
// classes count: direct subtasks (complete when status is "done") and
// action items under the task's checklists (complete when is_completed).
// Checklists themselves are not items. An empty denominator yields 0.
func CompletionPercentage(db *gorm.DB, taskID uint) (float64, error) {
	task, err := LoadWithHierarchy(db, taskID)
	if err != nil {
		return 0, err
	}

	total := 0
	completed := 0
	for _, sub := range task.Subtasks {
		total++
		if sub.Status == model.StatusDone {
			completed++
		}
	}
	for _, cl := range task.Checklists {
		for _, item := range cl.ActionItems {
			total++
			if item.IsCompleted {
				completed++
			}
		}
	}

	if total == 0 {
		return 0, nil
	}
	return float64(completed) / float64(total) * 100, nil
}
