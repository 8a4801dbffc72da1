// Package service - проверки пользовательского ввода и бизнес-ошибки поверх репозитория.
package service

import (
	"context"
	"fmt"
	"time"

	"projectTracker/internal/board"
	"projectTracker/internal/logger"
	"projectTracker/internal/models/group"
	"projectTracker/internal/models/project"
	"projectTracker/internal/models/task"
	"projectTracker/internal/repository"
	"projectTracker/internal/seed"

	"go.uber.org/zap"
)

type Repository interface {
	HealthCheck(ctx context.Context) error
	IsEmpty(ctx context.Context) (bool, error)

	ListProjects(ctx context.Context, filter repository.ProjectFilter) ([]project.Project, error)
	GetProject(ctx context.Context, id string) (*project.Project, error)
	CreateProject(ctx context.Context, fields project.Project) (*project.Project, error)
	UpdateProject(ctx context.Context, id string, options ...project.Option) (*project.Project, error)
	DeleteProject(ctx context.Context, id string) error

	ListGroups(ctx context.Context) ([]group.Group, error)
	GetGroup(ctx context.Context, id string) (*group.Group, error)
	CreateGroup(ctx context.Context, fields group.Group) (*group.Group, error)
	UpdateGroup(ctx context.Context, id string, options ...group.Option) (*group.Group, error)
	DeleteGroup(ctx context.Context, id string) error

	ListTasks(ctx context.Context, filter repository.TaskFilter) ([]task.Task, error)
	GetTask(ctx context.Context, id string) (*task.Task, error)
	CreateTask(ctx context.Context, fields task.Task) (*task.Task, error)
	UpdateTask(ctx context.Context, id string, options ...task.Option) (*task.Task, error)
	DeleteTask(ctx context.Context, id string) error

	AddChecklistItems(ctx context.Context, taskID string, texts ...string) ([]task.ChecklistItem, error)
	ToggleChecklistItem(ctx context.Context, taskID, itemID string) error
	DeleteChecklistItem(ctx context.Context, taskID, itemID string) error
}

var _ Repository = (*repository.Repository)(nil)

type Service struct {
	repo   Repository
	engine *board.Engine
	now    func() time.Time
}

// New собирает сервис; now == nil - системные часы
func New(repo Repository, now func() time.Time) *Service {
	if now == nil {
		now = repository.Now
	}
	return &Service{
		repo:   repo,
		engine: board.NewEngine(repo, now),
		now:    now,
	}
}

func (s *Service) HealthCheck(ctx context.Context) error {
	if err := s.repo.HealthCheck(ctx); err != nil {
		return fmt.Errorf("проверка здоровья сервиса: %w", err)
	}
	return nil
}

// Seed записывает демо-данные в пустое хранилище
func (s *Service) Seed(ctx context.Context) (bool, error) {
	seeded, err := seed.IfEmpty(ctx, s.repo, s.now())
	if err != nil {
		return false, fmt.Errorf("заполнение демо-данными: %w", err)
	}
	if seeded {
		logger.Info("Service: Хранилище заполнено демо-данными")
	}
	return seeded, nil
}

// DropProject переносит проект в боковой панели
func (s *Service) DropProject(ctx context.Context, drop board.Drop) (*project.Project, error) {
	if drop.Over != nil && drop.Over.Kind == board.ZoneGroup {
		if err := s.ensureGroup(ctx, drop.Over.ID); err != nil {
			return nil, err
		}
	}

	updated, err := s.engine.DropProject(ctx, drop)
	if err != nil {
		return nil, lookup(err, ResourceProject, drop.ActiveID, "перенос проекта")
	}
	if updated != nil {
		logger.Debug("Service: Проект перенесён", zap.String("project_id", updated.ID))
	}
	return updated, nil
}
