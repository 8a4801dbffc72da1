package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"projectTracker/internal/logger"
	"projectTracker/internal/models/group"
	"projectTracker/internal/models/project"
	"projectTracker/internal/models/task"

	"go.uber.org/zap"
)

// load читает коллекцию. Неразбираемая коллекция считается пустой,
// записи без обязательных полей отбрасываются с предупреждением.
func load[T any](ctx context.Context, r *Repository, key string, validate func(T) error) ([]T, error) {
	data, ok, err := r.store.Get(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("чтение коллекции %q: %w", key, err)
	}
	if !ok || len(data) == 0 {
		return []T{}, nil
	}

	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		logger.Warn("Repository: Коллекция повреждена, считаю пустой",
			zap.String("key", key),
			zap.Error(err))
		return []T{}, nil
	}

	items := make([]T, 0, len(raw))
	for i, msg := range raw {
		var item T
		if err := json.Unmarshal(msg, &item); err != nil {
			logger.Warn("Repository: Запись не разобрана, пропускаю",
				zap.String("key", key),
				zap.Int("index", i),
				zap.Error(err))
			continue
		}
		if err := validate(item); err != nil {
			logger.Warn("Repository: Запись не прошла проверку, пропускаю",
				zap.String("key", key),
				zap.Int("index", i),
				zap.Error(err))
			continue
		}
		items = append(items, item)
	}
	return items, nil
}

var errMissingID = errors.New("нет id")

func validProject(p project.Project) error {
	if p.ID == "" {
		return errMissingID
	}
	if !p.Status.Valid() {
		return fmt.Errorf("неизвестный статус %q", p.Status)
	}
	return nil
}

func validGroup(g group.Group) error {
	if g.ID == "" {
		return errMissingID
	}
	return nil
}

func validTask(t task.Task) error {
	if t.ID == "" {
		return errMissingID
	}
	if t.ProjectID == "" {
		return errors.New("нет projectId")
	}
	if !t.Status.Valid() {
		return fmt.Errorf("неизвестный статус %q", t.Status)
	}
	if !t.Priority.Valid() {
		return fmt.Errorf("неизвестный приоритет %q", t.Priority)
	}
	return nil
}

func (r *Repository) loadProjects(ctx context.Context) ([]project.Project, error) {
	return load(ctx, r, r.keys.Projects, validProject)
}

func (r *Repository) loadGroups(ctx context.Context) ([]group.Group, error) {
	return load(ctx, r, r.keys.Groups, validGroup)
}

func (r *Repository) loadTasks(ctx context.Context) ([]task.Task, error) {
	return load(ctx, r, r.keys.Tasks, validTask)
}
