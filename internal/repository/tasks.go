package repository

import (
	"context"
	"slices"

	"projectTracker/internal/logger"
	"projectTracker/internal/models/task"

	"go.uber.org/zap"
)

// TaskFilter - пустые поля не фильтруют
type TaskFilter struct {
	ProjectID string
	Status    task.Status
}

func (f TaskFilter) matches(t task.Task) bool {
	if f.ProjectID != "" && t.ProjectID != f.ProjectID {
		return false
	}
	if f.Status != "" && t.Status != f.Status {
		return false
	}
	return true
}

func (r *Repository) ListTasks(ctx context.Context, filter TaskFilter) ([]task.Task, error) {
	r.mtx.RLock()
	defer r.mtx.RUnlock()

	tasks, err := r.loadTasks(ctx)
	if err != nil {
		return nil, err
	}
	return slices.DeleteFunc(tasks, func(t task.Task) bool {
		return !filter.matches(t)
	}), nil
}

func (r *Repository) GetTask(ctx context.Context, id string) (*task.Task, error) {
	r.mtx.RLock()
	defer r.mtx.RUnlock()

	tasks, err := r.loadTasks(ctx)
	if err != nil {
		return nil, err
	}
	i := indexTask(tasks, id)
	if i == -1 {
		return nil, ErrNotFound
	}
	return &tasks[i], nil
}

// CreateTask не проверяет существование проекта. Пункты чеклиста без id получают новый id в той же записи.
func (r *Repository) CreateTask(ctx context.Context, fields task.Task) (*task.Task, error) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	tasks, err := r.loadTasks(ctx)
	if err != nil {
		return nil, err
	}

	created := fields.Clone()
	created.ID = r.newID()
	created.CreatedAt = r.now()
	for i := range created.Checklist {
		if created.Checklist[i].ID == "" {
			created.Checklist[i].ID = r.newID()
		}
	}

	tasks = append(tasks, created)
	if err := save(ctx, r.store, r.keys.Tasks, tasks); err != nil {
		return nil, err
	}

	logger.Debug("Repository: Задача создана",
		zap.String("task_id", created.ID),
		zap.String("project_id", created.ProjectID))
	return &created, nil
}

func (r *Repository) UpdateTask(ctx context.Context, id string, options ...task.Option) (*task.Task, error) {
	return r.modifyTask(ctx, id, func(t *task.Task) bool {
		original := *t
		t.Apply(options...)
		t.ID = original.ID
		t.CreatedAt = original.CreatedAt
		return true
	})
}

func (r *Repository) DeleteTask(ctx context.Context, id string) error {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	tasks, err := r.loadTasks(ctx)
	if err != nil {
		return err
	}
	before := len(tasks)
	tasks = slices.DeleteFunc(tasks, func(t task.Task) bool { return t.ID == id })
	if len(tasks) == before {
		return nil
	}
	return save(ctx, r.store, r.keys.Tasks, tasks)
}

// modifyTask меняет одну задачу на месте. Если mutate вернул false, запись не выполняется.
func (r *Repository) modifyTask(ctx context.Context, id string, mutate func(*task.Task) bool) (*task.Task, error) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	tasks, err := r.loadTasks(ctx)
	if err != nil {
		return nil, err
	}
	i := indexTask(tasks, id)
	if i == -1 {
		return nil, ErrNotFound
	}

	if !mutate(&tasks[i]) {
		return &tasks[i], nil
	}
	if err := save(ctx, r.store, r.keys.Tasks, tasks); err != nil {
		return nil, err
	}
	updated := tasks[i]
	return &updated, nil
}

func indexTask(tasks []task.Task, id string) int {
	return slices.IndexFunc(tasks, func(t task.Task) bool { return t.ID == id })
}
