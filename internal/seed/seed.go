// Package seed заполняет пустое хранилище демонстрационными данными.
package seed

import (
	"context"
	"fmt"
	"time"

	"projectTracker/internal/logger"
	"projectTracker/internal/models/group"
	"projectTracker/internal/models/project"
	"projectTracker/internal/models/task"
	"projectTracker/internal/repository"

	"go.uber.org/zap"
)

type Repository interface {
	IsEmpty(ctx context.Context) (bool, error)
	CreateGroup(ctx context.Context, fields group.Group) (*group.Group, error)
	CreateProject(ctx context.Context, fields project.Project) (*project.Project, error)
	CreateTask(ctx context.Context, fields task.Task) (*task.Task, error)
}

type sampleTask struct {
	title     string
	status    task.Status
	priority  task.Priority
	checklist []string
}

type sampleProject struct {
	project project.Project
	grouped bool
	tasks   []sampleTask
}

var sampleGroup = group.Group{Name: "Личное", Color: "#6366f1"}

var samples = []sampleProject{
	{
		project: project.Project{
			Name:        "Портфолио",
			Description: "Личный сайт с проектами",
			URL:         "https://example.com",
			GithubURL:   "https://github.com/example/portfolio",
			Status:      project.StatusActive,
			Color:       "#22c55e",
		},
		grouped: true,
		tasks: []sampleTask{
			{title: "Сверстать главную", status: task.StatusDone, priority: task.PriorityHigh},
			{title: "Раздел с проектами", status: task.StatusInProgress, priority: task.PriorityMedium,
				checklist: []string{"Карточки проектов", "Фильтр по тегам"}},
			{title: "Настроить деплой", status: task.StatusTodo, priority: task.PriorityLow},
		},
	},
	{
		project: project.Project{
			Name:        "Трекер привычек",
			Description: "Мобильное приложение для ежедневных отметок",
			Status:      project.StatusPlanned,
			Color:       "#f97316",
		},
		tasks: []sampleTask{
			{title: "Продумать модель данных", status: task.StatusTodo, priority: task.PriorityHigh},
			{title: "Набросать экраны", status: task.StatusTodo, priority: task.PriorityMedium},
			{title: "Выбрать стек", status: task.StatusDone, priority: task.PriorityLow},
		},
	},
}

// IfEmpty создаёт демо-набор, только если нет ни проектов, ни групп.
// Возвращает true, если данные были записаны.
func IfEmpty(ctx context.Context, repo Repository, now time.Time) (bool, error) {
	empty, err := repo.IsEmpty(ctx)
	if err != nil {
		return false, fmt.Errorf("проверка хранилища перед заполнением: %w", err)
	}
	if !empty {
		logger.Debug("Seed: Хранилище не пустое, пропускаем")
		return false, nil
	}

	g, err := repo.CreateGroup(ctx, sampleGroup)
	if err != nil {
		return false, fmt.Errorf("создание группы: %w", err)
	}

	var tasks int
	for _, sample := range samples {
		fields := sample.project
		if sample.grouped {
			fields.GroupID = g.ID
		}
		p, err := repo.CreateProject(ctx, fields)
		if err != nil {
			return false, fmt.Errorf("создание проекта %q: %w", fields.Name, err)
		}

		for _, st := range sample.tasks {
			if _, err := repo.CreateTask(ctx, st.build(p.ID, now)); err != nil {
				return false, fmt.Errorf("создание задачи %q: %w", st.title, err)
			}
			tasks++
		}
	}

	logger.Info("Seed: Демо-данные записаны",
		zap.Int("projects", len(samples)),
		zap.Int("tasks", tasks))
	return true, nil
}

func (s sampleTask) build(projectID string, now time.Time) task.Task {
	t := task.Task{
		ProjectID: projectID,
		Title:     s.title,
		Status:    s.status,
		Priority:  s.priority,
	}
	for _, text := range s.checklist {
		t.Checklist = append(t.Checklist, task.ChecklistItem{ID: repository.NewID(), Text: text})
	}

	started := now.Add(-48 * time.Hour)
	switch s.status {
	case task.StatusInProgress:
		t.StartedAt = &started
	case task.StatusDone:
		completed := now.Add(-24 * time.Hour)
		t.StartedAt = &started
		t.CompletedAt = &completed
	}
	return t
}
