package handlers

import (
	"context"

	"projectTracker/internal/board"
	"projectTracker/internal/models/group"
	"projectTracker/internal/models/project"
	"projectTracker/internal/models/task"
	"projectTracker/internal/service"
)

type Service interface {
	HealthCheck(ctx context.Context) error
	Seed(ctx context.Context) (bool, error)

	ListProjects(ctx context.Context, selection project.GroupSelection) ([]project.Project, error)
	GetProject(ctx context.Context, id string) (*project.Project, error)
	CreateProject(ctx context.Context, in service.ProjectInput) (*project.Project, error)
	UpdateProject(ctx context.Context, id string, patch service.ProjectPatch) (*project.Project, error)
	DeleteProject(ctx context.Context, id string) error
	ProjectProgress(ctx context.Context, id string) (service.Progress, error)
	Board(ctx context.Context, projectID string) (*service.Board, error)
	DropTask(ctx context.Context, projectID string, drop board.Drop) (board.Outcome, error)
	DropProject(ctx context.Context, drop board.Drop) (*project.Project, error)

	ListGroups(ctx context.Context) ([]group.Group, error)
	GetGroup(ctx context.Context, id string) (*group.Group, error)
	CreateGroup(ctx context.Context, in service.GroupInput) (*group.Group, error)
	UpdateGroup(ctx context.Context, id string, patch service.GroupPatch) (*group.Group, error)
	DeleteGroup(ctx context.Context, id string) error

	ListTasks(ctx context.Context, projectID string, status task.Status) ([]task.Task, error)
	GetTask(ctx context.Context, id string) (*task.Task, error)
	CreateTask(ctx context.Context, in service.TaskInput) (*task.Task, error)
	UpdateTask(ctx context.Context, id string, patch service.TaskPatch) (*task.Task, error)
	DeleteTask(ctx context.Context, id string) error
	MoveTask(ctx context.Context, id string, status task.Status) (board.Outcome, error)

	AddChecklistItem(ctx context.Context, taskID, text string) (*task.ChecklistItem, error)
	SubmitSteps(ctx context.Context, taskID string, texts []string) ([]task.ChecklistItem, error)
	ToggleChecklistItem(ctx context.Context, taskID, itemID string) error
	DeleteChecklistItem(ctx context.Context, taskID, itemID string) error
}

var _ Service = (*service.Service)(nil)

type Handler struct {
	svc Service
}

func New(svc Service) *Handler {
	return &Handler{svc: svc}
}
