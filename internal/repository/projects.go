package repository

import (
	"context"
	"fmt"
	"slices"

	"projectTracker/internal/logger"
	"projectTracker/internal/models/project"
	"projectTracker/internal/models/task"
	"projectTracker/internal/storage"

	"go.uber.org/zap"
)

type ProjectFilter struct {
	Group project.GroupSelection
}

func (r *Repository) ListProjects(ctx context.Context, filter ProjectFilter) ([]project.Project, error) {
	r.mtx.RLock()
	defer r.mtx.RUnlock()

	projects, err := r.loadProjects(ctx)
	if err != nil {
		return nil, err
	}
	return slices.DeleteFunc(projects, func(p project.Project) bool {
		return !filter.Group.Matches(p)
	}), nil
}

func (r *Repository) GetProject(ctx context.Context, id string) (*project.Project, error) {
	r.mtx.RLock()
	defer r.mtx.RUnlock()

	projects, err := r.loadProjects(ctx)
	if err != nil {
		return nil, err
	}
	i := slices.IndexFunc(projects, func(p project.Project) bool { return p.ID == id })
	if i == -1 {
		return nil, ErrNotFound
	}
	return &projects[i], nil
}

// CreateProject сохраняет проект с новым id и временем создания; переданные ID и CreatedAt игнорируются
func (r *Repository) CreateProject(ctx context.Context, fields project.Project) (*project.Project, error) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	projects, err := r.loadProjects(ctx)
	if err != nil {
		return nil, err
	}

	created := fields
	created.ID = r.newID()
	created.CreatedAt = r.now()

	projects = append(projects, created)
	if err := save(ctx, r.store, r.keys.Projects, projects); err != nil {
		return nil, err
	}

	logger.Debug("Repository: Проект создан", zap.String("project_id", created.ID))
	return &created, nil
}

// UpdateProject применяет опции к существующему проекту. id и createdAt не меняются.
func (r *Repository) UpdateProject(ctx context.Context, id string, options ...project.Option) (*project.Project, error) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	projects, err := r.loadProjects(ctx)
	if err != nil {
		return nil, err
	}
	i := slices.IndexFunc(projects, func(p project.Project) bool { return p.ID == id })
	if i == -1 {
		return nil, ErrNotFound
	}

	updated := projects[i]
	updated.Apply(options...)
	updated.ID = projects[i].ID
	updated.CreatedAt = projects[i].CreatedAt
	projects[i] = updated

	if err := save(ctx, r.store, r.keys.Projects, projects); err != nil {
		return nil, err
	}
	return &updated, nil
}

// DeleteProject удаляет проект вместе со всеми его задачами.
// Отсутствующий id не ошибка; если ничего не изменилось, запись не выполняется.
func (r *Repository) DeleteProject(ctx context.Context, id string) error {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	projects, err := r.loadProjects(ctx)
	if err != nil {
		return err
	}
	tasks, err := r.loadTasks(ctx)
	if err != nil {
		return err
	}

	before := len(projects)
	projects = slices.DeleteFunc(projects, func(p project.Project) bool { return p.ID == id })
	tasksBefore := len(tasks)
	tasks = slices.DeleteFunc(tasks, func(t task.Task) bool { return t.ProjectID == id })

	var entries []storage.Entry
	if len(projects) != before {
		entry, err := encode(r.keys.Projects, projects)
		if err != nil {
			return err
		}
		entries = append(entries, entry)
	}
	if len(tasks) != tasksBefore {
		entry, err := encode(r.keys.Tasks, tasks)
		if err != nil {
			return err
		}
		entries = append(entries, entry)
	}
	if len(entries) == 0 {
		return nil
	}

	if err := storage.SetAll(ctx, r.store, entries...); err != nil {
		return fmt.Errorf("удаление проекта %s: %w", id, err)
	}

	logger.Debug("Repository: Проект удалён",
		zap.String("project_id", id),
		zap.Int("tasks_removed", tasksBefore-len(tasks)))
	return nil
}
