package repository

import (
	"context"
	"fmt"
	"slices"

	"projectTracker/internal/logger"
	"projectTracker/internal/models/group"
	"projectTracker/internal/storage"

	"go.uber.org/zap"
)

func (r *Repository) ListGroups(ctx context.Context) ([]group.Group, error) {
	r.mtx.RLock()
	defer r.mtx.RUnlock()

	return r.loadGroups(ctx)
}

func (r *Repository) GetGroup(ctx context.Context, id string) (*group.Group, error) {
	r.mtx.RLock()
	defer r.mtx.RUnlock()

	groups, err := r.loadGroups(ctx)
	if err != nil {
		return nil, err
	}
	i := slices.IndexFunc(groups, func(g group.Group) bool { return g.ID == id })
	if i == -1 {
		return nil, ErrNotFound
	}
	return &groups[i], nil
}

func (r *Repository) CreateGroup(ctx context.Context, fields group.Group) (*group.Group, error) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	groups, err := r.loadGroups(ctx)
	if err != nil {
		return nil, err
	}

	created := fields
	created.ID = r.newID()
	created.CreatedAt = r.now()

	groups = append(groups, created)
	if err := save(ctx, r.store, r.keys.Groups, groups); err != nil {
		return nil, err
	}
	return &created, nil
}

func (r *Repository) UpdateGroup(ctx context.Context, id string, options ...group.Option) (*group.Group, error) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	groups, err := r.loadGroups(ctx)
	if err != nil {
		return nil, err
	}
	i := slices.IndexFunc(groups, func(g group.Group) bool { return g.ID == id })
	if i == -1 {
		return nil, ErrNotFound
	}

	updated := groups[i]
	updated.Apply(options...)
	updated.ID = groups[i].ID
	updated.CreatedAt = groups[i].CreatedAt
	groups[i] = updated

	if err := save(ctx, r.store, r.keys.Groups, groups); err != nil {
		return nil, err
	}
	return &updated, nil
}

// DeleteGroup удаляет группу, а проекты из неё становятся негруппированными (не удаляются)
func (r *Repository) DeleteGroup(ctx context.Context, id string) error {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	groups, err := r.loadGroups(ctx)
	if err != nil {
		return err
	}
	projects, err := r.loadProjects(ctx)
	if err != nil {
		return err
	}

	before := len(groups)
	groups = slices.DeleteFunc(groups, func(g group.Group) bool { return g.ID == id })

	orphaned := 0
	for i := range projects {
		if projects[i].GroupID == id {
			projects[i].GroupID = ""
			orphaned++
		}
	}

	var entries []storage.Entry
	if len(groups) != before {
		entry, err := encode(r.keys.Groups, groups)
		if err != nil {
			return err
		}
		entries = append(entries, entry)
	}
	if orphaned > 0 {
		entry, err := encode(r.keys.Projects, projects)
		if err != nil {
			return err
		}
		entries = append(entries, entry)
	}
	if len(entries) == 0 {
		return nil
	}

	if err := storage.SetAll(ctx, r.store, entries...); err != nil {
		return fmt.Errorf("удаление группы %s: %w", id, err)
	}

	logger.Debug("Repository: Группа удалена",
		zap.String("group_id", id),
		zap.Int("projects_orphaned", orphaned))
	return nil
}
