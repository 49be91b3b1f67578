package services

import (
	"errors"
	"testing"

	"gorm.io/gorm"

	"taskmanagerpro/model"
)

func TestCompletionPercentage_EmptyTask(t *testing.T) {
	db := setupTestDB(t)
	owner := createUser(t, db, "owner", model.RoleDeveloper)
	project := createProject(t, db, "TMP", owner.UserID)
	task := createTask(t, db, project.ProjectID, "empty", nil, model.StatusTodo)

	got, err := CompletionPercentage(db, task.TaskID)
	if err != nil {
		t.Fatalf("CompletionPercentage() error = %v", err)
	}
	if got != 0.0 {
		t.Errorf("CompletionPercentage() = %v, want 0.0", got)
	}
}

func TestCompletionPercentage_EmptyChecklistContributesNothing(t *testing.T) {
	db := setupTestDB(t)
	owner := createUser(t, db, "owner", model.RoleDeveloper)
	project := createProject(t, db, "TMP", owner.UserID)
	task := createTask(t, db, project.ProjectID, "task", nil, model.StatusTodo)
	createChecklist(t, db, task.TaskID, "no items")

	got, err := CompletionPercentage(db, task.TaskID)
	if err != nil {
		t.Fatalf("CompletionPercentage() error = %v", err)
	}
	if got != 0.0 {
		t.Errorf("CompletionPercentage() = %v, want 0.0 for checklist with no items", got)
	}
}

// 2 subtasks (1 done) + 3 action items (2 completed) = 3/5 = 60%.
func TestCompletionPercentage_MixedItems(t *testing.T) {
	db := setupTestDB(t)
	owner := createUser(t, db, "owner", model.RoleDeveloper)
	project := createProject(t, db, "TMP", owner.UserID)
	task := createTask(t, db, project.ProjectID, "root", nil, model.StatusInProgress)

	createTask(t, db, project.ProjectID, "sub done", &task.TaskID, model.StatusDone)
	createTask(t, db, project.ProjectID, "sub todo", &task.TaskID, model.StatusTodo)

	checklist := createChecklist(t, db, task.TaskID, "cl")
	createActionItem(t, db, checklist.ChecklistID, "a", true)
	createActionItem(t, db, checklist.ChecklistID, "b", true)
	createActionItem(t, db, checklist.ChecklistID, "c", false)

	got, err := CompletionPercentage(db, task.TaskID)
	if err != nil {
		t.Fatalf("CompletionPercentage() error = %v", err)
	}
	if got != 60.0 {
		t.Errorf("CompletionPercentage() = %v, want 60.0", got)
	}
}

func TestCompletionPercentage_SubtasksOnly(t *testing.T) {
	db := setupTestDB(t)
	owner := createUser(t, db, "owner", model.RoleDeveloper)
	project := createProject(t, db, "TMP", owner.UserID)
	task := createTask(t, db, project.ProjectID, "root", nil, model.StatusTodo)

	createTask(t, db, project.ProjectID, "s1", &task.TaskID, model.StatusDone)
	createTask(t, db, project.ProjectID, "s2", &task.TaskID, model.StatusDone)
	createTask(t, db, project.ProjectID, "s3", &task.TaskID, model.StatusInReview)
	createTask(t, db, project.ProjectID, "s4", &task.TaskID, model.StatusBlocked)

	got, err := CompletionPercentage(db, task.TaskID)
	if err != nil {
		t.Fatalf("CompletionPercentage() error = %v", err)
	}
	if got != 50.0 {
		t.Errorf("CompletionPercentage() = %v, want 50.0", got)
	}
}

func TestCompletionPercentage_ActionItemsOnly(t *testing.T) {
	db := setupTestDB(t)
	owner := createUser(t, db, "owner", model.RoleDeveloper)
	project := createProject(t, db, "TMP", owner.UserID)
	task := createTask(t, db, project.ProjectID, "root", nil, model.StatusTodo)

	cl1 := createChecklist(t, db, task.TaskID, "cl1")
	cl2 := createChecklist(t, db, task.TaskID, "cl2")
	createActionItem(t, db, cl1.ChecklistID, "a", true)
	createActionItem(t, db, cl2.ChecklistID, "b", false)
	createActionItem(t, db, cl2.ChecklistID, "c", false)
	createActionItem(t, db, cl2.ChecklistID, "d", false)

	got, err := CompletionPercentage(db, task.TaskID)
	if err != nil {
		t.Fatalf("CompletionPercentage() error = %v", err)
	}
	if got != 25.0 {
		t.Errorf("CompletionPercentage() = %v, want 25.0", got)
	}
}

// Checklist completion is a manual flag and never counts as an item.
func TestCompletionPercentage_IgnoresChecklistFlag(t *testing.T) {
	db := setupTestDB(t)
	owner := createUser(t, db, "owner", model.RoleDeveloper)
	project := createProject(t, db, "TMP", owner.UserID)
	task := createTask(t, db, project.ProjectID, "root", nil, model.StatusTodo)

	checklist := createChecklist(t, db, task.TaskID, "cl")
	if err := db.Model(checklist).Update("is_completed", true).Error; err != nil {
		t.Fatalf("complete checklist: %v", err)
	}
	createActionItem(t, db, checklist.ChecklistID, "a", false)

	got, err := CompletionPercentage(db, task.TaskID)
	if err != nil {
		t.Fatalf("CompletionPercentage() error = %v", err)
	}
	if got != 0.0 {
		t.Errorf("CompletionPercentage() = %v, want 0.0 (checklist flag must not count)", got)
	}
}

func TestCompletionPercentage_MonotonicNonDecreasing(t *testing.T) {
	db := setupTestDB(t)
	owner := createUser(t, db, "owner", model.RoleDeveloper)
	project := createProject(t, db, "TMP", owner.UserID)
	task := createTask(t, db, project.ProjectID, "root", nil, model.StatusTodo)

	sub := createTask(t, db, project.ProjectID, "sub", &task.TaskID, model.StatusTodo)
	checklist := createChecklist(t, db, task.TaskID, "cl")
	item1 := createActionItem(t, db, checklist.ChecklistID, "a", false)
	item2 := createActionItem(t, db, checklist.ChecklistID, "b", false)

	prev := -1.0
	steps := []func(){
		func() {},
		func() { db.Model(item1).Update("is_completed", true) },
		func() { db.Model(sub).Update("status", model.StatusDone) },
		func() { db.Model(item2).Update("is_completed", true) },
	}
	for i, step := range steps {
		step()
		got, err := CompletionPercentage(db, task.TaskID)
		if err != nil {
			t.Fatalf("step %d: CompletionPercentage() error = %v", i, err)
		}
		if got < prev {
			t.Errorf("step %d: CompletionPercentage() = %v, decreased from %v", i, got, prev)
		}
		prev = got
	}
	if prev != 100.0 {
		t.Errorf("final CompletionPercentage() = %v, want 100.0", prev)
	}
}

// Only counts matter, not the order checklists or subtasks were created in.
func TestCompletionPercentage_CreationOrderInvariant(t *testing.T) {
	db := setupTestDB(t)
	owner := createUser(t, db, "owner", model.RoleDeveloper)
	project := createProject(t, db, "TMP", owner.UserID)

	first := createTask(t, db, project.ProjectID, "first", nil, model.StatusTodo)
	clA := createChecklist(t, db, first.TaskID, "a")
	createActionItem(t, db, clA.ChecklistID, "x", true)
	createTask(t, db, project.ProjectID, "sub", &first.TaskID, model.StatusTodo)

	second := createTask(t, db, project.ProjectID, "second", nil, model.StatusTodo)
	createTask(t, db, project.ProjectID, "sub", &second.TaskID, model.StatusTodo)
	clB := createChecklist(t, db, second.TaskID, "b")
	createActionItem(t, db, clB.ChecklistID, "x", true)

	gotFirst, err := CompletionPercentage(db, first.TaskID)
	if err != nil {
		t.Fatalf("CompletionPercentage(first) error = %v", err)
	}
	gotSecond, err := CompletionPercentage(db, second.TaskID)
	if err != nil {
		t.Fatalf("CompletionPercentage(second) error = %v", err)
	}
	if gotFirst != gotSecond {
		t.Errorf("CompletionPercentage differs by creation order: %v vs %v", gotFirst, gotSecond)
	}
	if gotFirst != 50.0 {
		t.Errorf("CompletionPercentage() = %v, want 50.0", gotFirst)
	}
}

func TestLoadWithHierarchy_NotFound(t *testing.T) {
	db := setupTestDB(t)

	_, err := LoadWithHierarchy(db, 9999)
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Errorf("LoadWithHierarchy(missing) error = %v, want gorm.ErrRecordNotFound", err)
	}
}

func TestLoadWithHierarchy_ShallowShape(t *testing.T) {
	db := setupTestDB(t)
	owner := createUser(t, db, "owner", model.RoleDeveloper)
	project := createProject(t, db, "TMP", owner.UserID)

	root := createTask(t, db, project.ProjectID, "root", nil, model.StatusTodo)
	sub := createTask(t, db, project.ProjectID, "sub", &root.TaskID, model.StatusTodo)
	// Grandchild and a checklist on the subtask must not appear in the tree.
	createTask(t, db, project.ProjectID, "grandchild", &sub.TaskID, model.StatusTodo)
	createChecklist(t, db, sub.TaskID, "sub checklist")

	rootChecklist := createChecklist(t, db, root.TaskID, "root checklist")
	createActionItem(t, db, rootChecklist.ChecklistID, "item", false)

	tree, err := LoadWithHierarchy(db, root.TaskID)
	if err != nil {
		t.Fatalf("LoadWithHierarchy() error = %v", err)
	}

	if len(tree.Subtasks) != 1 {
		t.Fatalf("len(Subtasks) = %d, want 1", len(tree.Subtasks))
	}
	if len(tree.Checklists) != 1 {
		t.Fatalf("len(Checklists) = %d, want 1", len(tree.Checklists))
	}
	if len(tree.Checklists[0].ActionItems) != 1 {
		t.Errorf("len(Checklists[0].ActionItems) = %d, want 1", len(tree.Checklists[0].ActionItems))
	}

	loaded := tree.Subtasks[0]
	if len(loaded.Subtasks) != 0 || len(loaded.Checklists) != 0 {
		t.Errorf("subtask expanded beyond shallow shape: %d subtasks, %d checklists",
			len(loaded.Subtasks), len(loaded.Checklists))
	}
}

func TestLoadProjectTaskTree_RootsAndOrdering(t *testing.T) {
	db := setupTestDB(t)
	owner := createUser(t, db, "owner", model.RoleDeveloper)
	project := createProject(t, db, "TMP", owner.UserID)

	late := createTask(t, db, project.ProjectID, "late", nil, model.StatusTodo)
	db.Model(late).Update("order_index", 2)
	early := createTask(t, db, project.ProjectID, "early", nil, model.StatusTodo)
	db.Model(early).Update("order_index", 1)
	createTask(t, db, project.ProjectID, "child", &late.TaskID, model.StatusTodo)

	tree, err := LoadProjectTaskTree(db, project.ProjectID)
	if err != nil {
		t.Fatalf("LoadProjectTaskTree() error = %v", err)
	}

	if len(tree) != 2 {
		t.Fatalf("len(tree) = %d, want 2 top-level tasks", len(tree))
	}
	if tree[0].Title != "early" || tree[1].Title != "late" {
		t.Errorf("tree order = [%s, %s], want [early, late]", tree[0].Title, tree[1].Title)
	}
	if len(tree[1].Subtasks) != 1 {
		t.Errorf("len(late.Subtasks) = %d, want 1", len(tree[1].Subtasks))
	}
}
