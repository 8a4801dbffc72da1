package service

import (
	"context"
	"fmt"

	"projectTracker/internal/board"
	"projectTracker/internal/logger"
	"projectTracker/internal/models/project"
	"projectTracker/internal/models/task"
	"projectTracker/internal/repository"

	"go.uber.org/zap"
)

// Progress - выполненные задачи проекта
type Progress struct {
	Done    int `json:"done"`
	Total   int `json:"total"`
	Percent int `json:"percent"`
}

func progressOf(tasks []task.Task) Progress {
	p := Progress{Total: len(tasks)}
	for _, t := range tasks {
		if t.Status == task.StatusDone {
			p.Done++
		}
	}
	if p.Total > 0 {
		p.Percent = p.Done * 100 / p.Total
	}
	return p
}

type Column struct {
	Status task.Status `json:"status"`
	Tasks  []task.Task `json:"tasks"`
}

// Board - доска проекта, колонки всегда в порядке todo, in_progress, done
type Board struct {
	Project  project.Project `json:"project"`
	Columns  []Column        `json:"columns"`
	Progress Progress        `json:"progress"`
}

func (s *Service) ListProjects(ctx context.Context, selection project.GroupSelection) ([]project.Project, error) {
	projects, err := s.repo.ListProjects(ctx, repository.ProjectFilter{Group: selection})
	if err != nil {
		return nil, fmt.Errorf("получение проектов: %w", err)
	}
	return projects, nil
}

func (s *Service) GetProject(ctx context.Context, id string) (*project.Project, error) {
	p, err := s.repo.GetProject(ctx, id)
	if err != nil {
		return nil, lookup(err, ResourceProject, id, "получение проекта")
	}
	return p, nil
}

func (s *Service) CreateProject(ctx context.Context, in ProjectInput) (*project.Project, error) {
	fields, err := in.normalize()
	if err != nil {
		return nil, err
	}
	if err := s.ensureGroup(ctx, fields.GroupID); err != nil {
		return nil, err
	}

	created, err := s.repo.CreateProject(ctx, fields)
	if err != nil {
		return nil, fmt.Errorf("создание проекта: %w", err)
	}
	logger.Info("Service: Проект создан",
		zap.String("project_id", created.ID),
		zap.String("name", created.Name))
	return created, nil
}

func (s *Service) UpdateProject(ctx context.Context, id string, patch ProjectPatch) (*project.Project, error) {
	options, err := patch.options()
	if err != nil {
		return nil, err
	}
	if patch.GroupID != nil {
		if err := s.ensureGroup(ctx, *patch.GroupID); err != nil {
			return nil, err
		}
	}

	updated, err := s.repo.UpdateProject(ctx, id, options...)
	if err != nil {
		return nil, lookup(err, ResourceProject, id, "обновление проекта")
	}
	return updated, nil
}

// DeleteProject удаляет проект и все его задачи
func (s *Service) DeleteProject(ctx context.Context, id string) error {
	if err := s.repo.DeleteProject(ctx, id); err != nil {
		return fmt.Errorf("удаление проекта %s: %w", id, err)
	}
	logger.Info("Service: Проект удалён", zap.String("project_id", id))
	return nil
}

func (s *Service) ProjectProgress(ctx context.Context, id string) (Progress, error) {
	if _, err := s.GetProject(ctx, id); err != nil {
		return Progress{}, err
	}
	tasks, err := s.repo.ListTasks(ctx, repository.TaskFilter{ProjectID: id})
	if err != nil {
		return Progress{}, fmt.Errorf("получение задач проекта: %w", err)
	}
	return progressOf(tasks), nil
}

func (s *Service) Board(ctx context.Context, projectID string) (*Board, error) {
	p, err := s.GetProject(ctx, projectID)
	if err != nil {
		return nil, err
	}
	tasks, err := s.repo.ListTasks(ctx, repository.TaskFilter{ProjectID: projectID})
	if err != nil {
		return nil, fmt.Errorf("получение задач проекта: %w", err)
	}

	state := board.TaskState{Tasks: tasks}
	b := &Board{
		Project:  *p,
		Columns:  make([]Column, 0, len(task.Statuses)),
		Progress: progressOf(tasks),
	}
	for _, status := range task.Statuses {
		b.Columns = append(b.Columns, Column{Status: status, Tasks: state.Column(status)})
	}
	return b, nil
}

// DropTask применяет перетаскивание на доске проекта
func (s *Service) DropTask(ctx context.Context, projectID string, drop board.Drop) (board.Outcome, error) {
	if _, err := s.GetProject(ctx, projectID); err != nil {
		return board.Outcome{}, err
	}
	out, err := s.engine.DropTask(ctx, projectID, drop)
	if err != nil {
		return board.Outcome{}, lookup(err, ResourceTask, drop.ActiveID, "перетаскивание задачи")
	}
	return out, nil
}

func (s *Service) ensureGroup(ctx context.Context, groupID string) error {
	if groupID == "" {
		return nil
	}
	if _, err := s.repo.GetGroup(ctx, groupID); err != nil {
		return lookup(err, ResourceGroup, groupID, "проверка группы")
	}
	return nil
}
