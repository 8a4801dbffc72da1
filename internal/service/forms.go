package service

import (
	"strings"

	"projectTracker/internal/models/group"
	"projectTracker/internal/models/project"
	"projectTracker/internal/models/task"
)

type ProjectInput struct {
	Name        string
	Description string
	URL         string
	GithubURL   string
	Status      project.Status
	Color       string
	GroupID     string
}

// ProjectPatch: nil - поле не трогаем; указатель на "" очищает поле
type ProjectPatch struct {
	Name        *string
	Description *string
	URL         *string
	GithubURL   *string
	Status      *project.Status
	Color       *string
	GroupID     *string
}

type GroupInput struct {
	Name  string
	Color string
}

type GroupPatch struct {
	Name  *string
	Color *string
}

type TaskInput struct {
	ProjectID   string
	Title       string
	Description string
	Status      task.Status
	Priority    task.Priority
	Checklist   []string
}

type TaskPatch struct {
	Title       *string
	Description *string
	Status      *task.Status
	Priority    *task.Priority
}

func requireName(field, value string) (string, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return "", NewValidationError(field, "не может быть пустым")
	}
	return value, nil
}

func projectStatus(status project.Status) (project.Status, error) {
	if status == "" {
		return project.StatusActive, nil
	}
	if !status.Valid() {
		return "", NewValidationError("status", "допустимо active, planned или paused")
	}
	return status, nil
}

func taskStatus(status task.Status) (task.Status, error) {
	if status == "" {
		return task.StatusTodo, nil
	}
	if !status.Valid() {
		return "", NewValidationError("status", "допустимо todo, in_progress или done")
	}
	return status, nil
}

func taskPriority(priority task.Priority) (task.Priority, error) {
	if priority == "" {
		return task.PriorityMedium, nil
	}
	if !priority.Valid() {
		return "", NewValidationError("priority", "допустимо low, medium или high")
	}
	return priority, nil
}

func (in ProjectInput) normalize() (project.Project, error) {
	name, err := requireName("name", in.Name)
	if err != nil {
		return project.Project{}, err
	}
	status, err := projectStatus(in.Status)
	if err != nil {
		return project.Project{}, err
	}
	return project.Project{
		Name:        name,
		Description: strings.TrimSpace(in.Description),
		URL:         strings.TrimSpace(in.URL),
		GithubURL:   strings.TrimSpace(in.GithubURL),
		Status:      status,
		Color:       strings.TrimSpace(in.Color),
		GroupID:     strings.TrimSpace(in.GroupID),
	}, nil
}

func (p ProjectPatch) options() ([]project.Option, error) {
	var options []project.Option
	if p.Name != nil {
		name, err := requireName("name", *p.Name)
		if err != nil {
			return nil, err
		}
		options = append(options, project.WithName(name))
	}
	if p.Description != nil {
		options = append(options, project.WithDescription(strings.TrimSpace(*p.Description)))
	}
	if p.URL != nil {
		options = append(options, project.WithURL(strings.TrimSpace(*p.URL)))
	}
	if p.GithubURL != nil {
		options = append(options, project.WithGithubURL(strings.TrimSpace(*p.GithubURL)))
	}
	if p.Status != nil {
		if !p.Status.Valid() {
			return nil, NewValidationError("status", "допустимо active, planned или paused")
		}
		options = append(options, project.WithStatus(*p.Status))
	}
	if p.Color != nil {
		options = append(options, project.WithColor(strings.TrimSpace(*p.Color)))
	}
	if p.GroupID != nil {
		options = append(options, project.WithGroup(strings.TrimSpace(*p.GroupID)))
	}
	return options, nil
}

func (in GroupInput) normalize() (group.Group, error) {
	name, err := requireName("name", in.Name)
	if err != nil {
		return group.Group{}, err
	}
	return group.Group{Name: name, Color: strings.TrimSpace(in.Color)}, nil
}

func (p GroupPatch) options() ([]group.Option, error) {
	var options []group.Option
	if p.Name != nil {
		name, err := requireName("name", *p.Name)
		if err != nil {
			return nil, err
		}
		options = append(options, group.WithName(name))
	}
	if p.Color != nil {
		options = append(options, group.WithColor(strings.TrimSpace(*p.Color)))
	}
	return options, nil
}

func (in TaskInput) normalize() (task.Task, error) {
	projectID := strings.TrimSpace(in.ProjectID)
	if projectID == "" {
		return task.Task{}, NewValidationError("projectId", "не может быть пустым")
	}
	title, err := requireName("title", in.Title)
	if err != nil {
		return task.Task{}, err
	}
	status, err := taskStatus(in.Status)
	if err != nil {
		return task.Task{}, err
	}
	priority, err := taskPriority(in.Priority)
	if err != nil {
		return task.Task{}, err
	}
	return task.Task{
		ProjectID:   projectID,
		Title:       title,
		Description: strings.TrimSpace(in.Description),
		Status:      status,
		Priority:    priority,
	}, nil
}

// steps - непустые шаги без пробелов по краям
func steps(texts []string) []string {
	out := make([]string, 0, len(texts))
	for _, text := range texts {
		if text = strings.TrimSpace(text); text != "" {
			out = append(out, text)
		}
	}
	return out
}

func (p TaskPatch) options() ([]task.Option, error) {
	var options []task.Option
	if p.Title != nil {
		title, err := requireName("title", *p.Title)
		if err != nil {
			return nil, err
		}
		options = append(options, task.WithTitle(title))
	}
	if p.Description != nil {
		options = append(options, task.WithDescription(strings.TrimSpace(*p.Description)))
	}
	if p.Priority != nil {
		if !p.Priority.Valid() {
			return nil, NewValidationError("priority", "допустимо low, medium или high")
		}
		options = append(options, task.WithPriority(*p.Priority))
	}
	if p.Status != nil && !p.Status.Valid() {
		return nil, NewValidationError("status", "допустимо todo, in_progress или done")
	}
	return options, nil
}
