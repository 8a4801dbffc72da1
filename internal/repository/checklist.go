package repository

import (
	"context"
	"errors"
	"slices"

	"projectTracker/internal/models/task"
)

func (r *Repository) AddChecklistItem(ctx context.Context, taskID, text string) (*task.ChecklistItem, error) {
	items, err := r.AddChecklistItems(ctx, taskID, text)
	if err != nil {
		return nil, err
	}
	return &items[0], nil
}

// AddChecklistItems добавляет пункты в конец чеклиста за одну запись
func (r *Repository) AddChecklistItems(ctx context.Context, taskID string, texts ...string) ([]task.ChecklistItem, error) {
	added := make([]task.ChecklistItem, 0, len(texts))
	_, err := r.modifyTask(ctx, taskID, func(t *task.Task) bool {
		for _, text := range texts {
			item := task.ChecklistItem{ID: r.newID(), Text: text}
			t.Checklist = append(t.Checklist, item)
			added = append(added, item)
		}
		return len(texts) > 0
	})
	if err != nil {
		return nil, err
	}
	return added, nil
}

// ToggleChecklistItem инвертирует done; отсутствие задачи или пункта - не ошибка
func (r *Repository) ToggleChecklistItem(ctx context.Context, taskID, itemID string) error {
	_, err := r.modifyTask(ctx, taskID, func(t *task.Task) bool {
		i := t.ChecklistIndex(itemID)
		if i == -1 {
			return false
		}
		t.Checklist[i].Done = !t.Checklist[i].Done
		return true
	})
	return ignoreNotFound(err)
}

func (r *Repository) DeleteChecklistItem(ctx context.Context, taskID, itemID string) error {
	_, err := r.modifyTask(ctx, taskID, func(t *task.Task) bool {
		i := t.ChecklistIndex(itemID)
		if i == -1 {
			return false
		}
		t.Checklist = slices.Delete(t.Checklist, i, i+1)
		return true
	})
	return ignoreNotFound(err)
}

func ignoreNotFound(err error) error {
	if errors.Is(err, ErrNotFound) {
		return nil
	}
	return err
}
