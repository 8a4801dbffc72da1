package service

import (
	"context"
	"fmt"

	"projectTracker/internal/board"
	"projectTracker/internal/logger"
	"projectTracker/internal/models/task"
	"projectTracker/internal/repository"

	"go.uber.org/zap"
)

func (s *Service) ListTasks(ctx context.Context, projectID string, status task.Status) ([]task.Task, error) {
	if status != "" && !status.Valid() {
		return nil, NewValidationError("status", "допустимо todo, in_progress или done")
	}
	tasks, err := s.repo.ListTasks(ctx, repository.TaskFilter{ProjectID: projectID, Status: status})
	if err != nil {
		return nil, fmt.Errorf("получение задач: %w", err)
	}
	return tasks, nil
}

func (s *Service) GetTask(ctx context.Context, id string) (*task.Task, error) {
	t, err := s.repo.GetTask(ctx, id)
	if err != nil {
		return nil, lookup(err, ResourceTask, id, "получение задачи")
	}
	return t, nil
}

// CreateTask создаёт задачу в существующем проекте.
// Метки времени выставляются так же, как при переводе задачи в начальный статус.
func (s *Service) CreateTask(ctx context.Context, in TaskInput) (*task.Task, error) {
	fields, err := in.normalize()
	if err != nil {
		return nil, err
	}
	if _, err := s.GetProject(ctx, fields.ProjectID); err != nil {
		return nil, err
	}

	if fields.Status != task.StatusTodo {
		change, _ := board.Transition(task.Task{}, fields.Status, s.now())
		fields = change.ApplyTo(fields)
	}

	texts := steps(in.Checklist)
	fields.Checklist = make([]task.ChecklistItem, 0, len(texts))
	for _, text := range texts {
		fields.Checklist = append(fields.Checklist, task.ChecklistItem{Text: text})
	}

	created, err := s.repo.CreateTask(ctx, fields)
	if err != nil {
		return nil, fmt.Errorf("создание задачи: %w", err)
	}

	logger.Info("Service: Задача создана",
		zap.String("task_id", created.ID),
		zap.String("project_id", created.ProjectID),
		zap.String("status", string(created.Status)))
	return created, nil
}

// UpdateTask меняет поля задачи. Смена статуса проходит по правилам доски.
func (s *Service) UpdateTask(ctx context.Context, id string, patch TaskPatch) (*task.Task, error) {
	options, err := patch.options()
	if err != nil {
		return nil, err
	}

	if patch.Status != nil {
		current, err := s.GetTask(ctx, id)
		if err != nil {
			return nil, err
		}
		if *patch.Status != current.Status {
			change, _ := board.Transition(*current, *patch.Status, s.now())
			options = append(options, change.Options()...)
		}
	}

	updated, err := s.repo.UpdateTask(ctx, id, options...)
	if err != nil {
		return nil, lookup(err, ResourceTask, id, "обновление задачи")
	}
	return updated, nil
}

func (s *Service) DeleteTask(ctx context.Context, id string) error {
	if err := s.repo.DeleteTask(ctx, id); err != nil {
		return fmt.Errorf("удаление задачи %s: %w", id, err)
	}
	return nil
}

// MoveTask переводит задачу в статус и сообщает, нужна ли подсказка о чеклисте
func (s *Service) MoveTask(ctx context.Context, id string, status task.Status) (board.Outcome, error) {
	if !status.Valid() {
		return board.Outcome{}, NewValidationError("status", "допустимо todo, in_progress или done")
	}
	out, err := s.engine.MoveTask(ctx, id, status)
	if err != nil {
		return board.Outcome{}, lookup(err, ResourceTask, id, "смена статуса")
	}
	return out, nil
}

func (s *Service) AddChecklistItem(ctx context.Context, taskID, text string) (*task.ChecklistItem, error) {
	text, err := requireName("text", text)
	if err != nil {
		return nil, err
	}
	items, err := s.repo.AddChecklistItems(ctx, taskID, text)
	if err != nil {
		return nil, lookup(err, ResourceTask, taskID, "добавление пункта")
	}
	return &items[0], nil
}

// SubmitSteps - ответ на подсказку о чеклисте. Пустой список равносилен пропуску.
func (s *Service) SubmitSteps(ctx context.Context, taskID string, texts []string) ([]task.ChecklistItem, error) {
	items, err := s.engine.SubmitSteps(ctx, taskID, texts)
	if err != nil {
		return nil, lookup(err, ResourceTask, taskID, "добавление шагов")
	}
	return items, nil
}

func (s *Service) ToggleChecklistItem(ctx context.Context, taskID, itemID string) error {
	if err := s.repo.ToggleChecklistItem(ctx, taskID, itemID); err != nil {
		return fmt.Errorf("переключение пункта %s: %w", itemID, err)
	}
	return nil
}

func (s *Service) DeleteChecklistItem(ctx context.Context, taskID, itemID string) error {
	if err := s.repo.DeleteChecklistItem(ctx, taskID, itemID); err != nil {
		return fmt.Errorf("удаление пункта %s: %w", itemID, err)
	}
	return nil
}
