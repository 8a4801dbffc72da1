package board

import (
	"context"
	"fmt"
	"strings"
	"time"

	"projectTracker/internal/logger"
	"projectTracker/internal/models/project"
	"projectTracker/internal/models/task"
	"projectTracker/internal/repository"

	"go.uber.org/zap"
)

// Repository - часть репозитория, которой пользуется движок
type Repository interface {
	ListTasks(ctx context.Context, filter repository.TaskFilter) ([]task.Task, error)
	GetTask(ctx context.Context, id string) (*task.Task, error)
	UpdateTask(ctx context.Context, id string, options ...task.Option) (*task.Task, error)
	AddChecklistItems(ctx context.Context, taskID string, texts ...string) ([]task.ChecklistItem, error)
	ListProjects(ctx context.Context, filter repository.ProjectFilter) ([]project.Project, error)
	UpdateProject(ctx context.Context, id string, options ...project.Option) (*project.Project, error)
}

type Engine struct {
	repo Repository
	now  func() time.Time
}

func NewEngine(repo Repository, now func() time.Time) *Engine {
	if now == nil {
		now = repository.Now
	}
	return &Engine{repo: repo, now: now}
}

// Outcome - итог перетаскивания задачи
type Outcome struct {
	Task            *task.Task `json:"task,omitempty"`
	Moved           bool       `json:"moved"`
	PromptChecklist bool       `json:"promptChecklist"`
}

// DropTask применяет перетаскивание задачи на доске проекта
func (e *Engine) DropTask(ctx context.Context, projectID string, drop Drop) (Outcome, error) {
	tasks, err := e.repo.ListTasks(ctx, repository.TaskFilter{ProjectID: projectID})
	if err != nil {
		return Outcome{}, fmt.Errorf("загрузка доски: %w", err)
	}

	_, effects := DropTask(TaskState{Tasks: tasks}, drop, e.now())
	if effects.Noop() {
		logger.Debug("Board: Перетаскивание без изменений", zap.String("task_id", drop.ActiveID))
		return Outcome{}, nil
	}
	return e.apply(ctx, *effects.Change, effects.PromptChecklist)
}

// MoveTask переводит задачу в статус напрямую, по тем же правилам, что и перетаскивание.
// Перевод в текущий статус ничего не записывает.
func (e *Engine) MoveTask(ctx context.Context, taskID string, target task.Status) (Outcome, error) {
	if !target.Valid() {
		return Outcome{}, fmt.Errorf("неизвестный статус %q", target)
	}

	current, err := e.repo.GetTask(ctx, taskID)
	if err != nil {
		return Outcome{}, err
	}
	if current.Status == target {
		return Outcome{Task: current}, nil
	}

	change, prompt := Transition(*current, target, e.now())
	return e.apply(ctx, change, prompt)
}

func (e *Engine) apply(ctx context.Context, change StatusChange, prompt bool) (Outcome, error) {
	updated, err := e.repo.UpdateTask(ctx, change.TaskID, change.Options()...)
	if err != nil {
		return Outcome{}, fmt.Errorf("смена статуса задачи %s: %w", change.TaskID, err)
	}

	logger.Info("Board: Задача перемещена",
		zap.String("task_id", change.TaskID),
		zap.String("from", string(change.From)),
		zap.String("to", string(change.To)),
		zap.Bool("prompt_checklist", prompt))

	return Outcome{Task: updated, Moved: true, PromptChecklist: prompt}, nil
}

// SubmitSteps добавляет шаги, введённые после подсказки о чеклисте.
// Пустые строки отбрасываются; если шагов не осталось, это равносильно пропуску.
func (e *Engine) SubmitSteps(ctx context.Context, taskID string, steps []string) ([]task.ChecklistItem, error) {
	texts := make([]string, 0, len(steps))
	for _, s := range steps {
		if s = strings.TrimSpace(s); s != "" {
			texts = append(texts, s)
		}
	}
	if len(texts) == 0 {
		return []task.ChecklistItem{}, nil
	}
	return e.repo.AddChecklistItems(ctx, taskID, texts...)
}

// DropProject переносит проект в группу или в зону "без группы".
// Возвращает nil, если переносить нечего.
func (e *Engine) DropProject(ctx context.Context, drop Drop) (*project.Project, error) {
	projects, err := e.repo.ListProjects(ctx, repository.ProjectFilter{})
	if err != nil {
		return nil, fmt.Errorf("загрузка проектов: %w", err)
	}

	_, change := DropProject(ProjectState{Projects: projects}, drop)
	if change == nil {
		return nil, nil
	}

	updated, err := e.repo.UpdateProject(ctx, change.ProjectID, project.WithGroup(change.To))
	if err != nil {
		return nil, fmt.Errorf("перенос проекта %s: %w", change.ProjectID, err)
	}

	logger.Info("Board: Проект перенесён",
		zap.String("project_id", change.ProjectID),
		zap.String("from_group", change.From),
		zap.String("to_group", change.To))
	return updated, nil
}
