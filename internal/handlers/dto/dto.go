package dto

import (
	"bytes"
	"encoding/json"
	"fmt"

	"projectTracker/internal/board"
	"projectTracker/internal/models/project"
	"projectTracker/internal/models/task"
	"projectTracker/internal/service"
)

// Nullable отличает отсутствующее поле (Set == false) от явного null (Null == true)
type Nullable[T any] struct {
	Set   bool
	Null  bool
	Value T
}

func (n *Nullable[T]) UnmarshalJSON(data []byte) error {
	n.Set = true
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		var zero T
		n.Null = true
		n.Value = zero
		return nil
	}
	return json.Unmarshal(data, &n.Value)
}

// Ptr: nil - не трогать, указатель на нулевое значение - очистить
func (n Nullable[T]) Ptr() *T {
	if !n.Set {
		return nil
	}
	v := n.Value
	return &v
}

type CreateProjectRequest struct {
	Name        string         `json:"name"`
	Description string         `json:"description"`
	URL         string         `json:"url"`
	GithubURL   string         `json:"githubUrl"`
	Status      project.Status `json:"status"`
	Color       string         `json:"color"`
	GroupID     string         `json:"groupId"`
}

func (r CreateProjectRequest) Input() service.ProjectInput {
	return service.ProjectInput{
		Name:        r.Name,
		Description: r.Description,
		URL:         r.URL,
		GithubURL:   r.GithubURL,
		Status:      r.Status,
		Color:       r.Color,
		GroupID:     r.GroupID,
	}
}

type UpdateProjectRequest struct {
	Name        Nullable[string]         `json:"name"`
	Description Nullable[string]         `json:"description"`
	URL         Nullable[string]         `json:"url"`
	GithubURL   Nullable[string]         `json:"githubUrl"`
	Status      Nullable[project.Status] `json:"status"`
	Color       Nullable[string]         `json:"color"`
	GroupID     Nullable[string]         `json:"groupId"`
}

func (r UpdateProjectRequest) Patch() service.ProjectPatch {
	return service.ProjectPatch{
		Name:        r.Name.Ptr(),
		Description: r.Description.Ptr(),
		URL:         r.URL.Ptr(),
		GithubURL:   r.GithubURL.Ptr(),
		Status:      r.Status.Ptr(),
		Color:       r.Color.Ptr(),
		GroupID:     r.GroupID.Ptr(),
	}
}

type CreateGroupRequest struct {
	Name  string `json:"name"`
	Color string `json:"color"`
}

func (r CreateGroupRequest) Input() service.GroupInput {
	return service.GroupInput{Name: r.Name, Color: r.Color}
}

type UpdateGroupRequest struct {
	Name  Nullable[string] `json:"name"`
	Color Nullable[string] `json:"color"`
}

func (r UpdateGroupRequest) Patch() service.GroupPatch {
	return service.GroupPatch{Name: r.Name.Ptr(), Color: r.Color.Ptr()}
}

type CreateTaskRequest struct {
	ProjectID   string        `json:"projectId"`
	Title       string        `json:"title"`
	Description string        `json:"description"`
	Status      task.Status   `json:"status"`
	Priority    task.Priority `json:"priority"`
	Checklist   []string      `json:"checklist"`
}

func (r CreateTaskRequest) Input() service.TaskInput {
	return service.TaskInput{
		ProjectID:   r.ProjectID,
		Title:       r.Title,
		Description: r.Description,
		Status:      r.Status,
		Priority:    r.Priority,
		Checklist:   r.Checklist,
	}
}

type UpdateTaskRequest struct {
	Title       Nullable[string]        `json:"title"`
	Description Nullable[string]        `json:"description"`
	Status      Nullable[task.Status]   `json:"status"`
	Priority    Nullable[task.Priority] `json:"priority"`
}

func (r UpdateTaskRequest) Patch() service.TaskPatch {
	return service.TaskPatch{
		Title:       r.Title.Ptr(),
		Description: r.Description.Ptr(),
		Status:      r.Status.Ptr(),
		Priority:    r.Priority.Ptr(),
	}
}

type MoveTaskRequest struct {
	Status task.Status `json:"status"`
}

type ChecklistItemRequest struct {
	Text string `json:"text"`
}

type StepsRequest struct {
	Steps []string `json:"steps"`
}

type ZoneRequest struct {
	Kind string `json:"kind"`
	ID   string `json:"id"`
}

func (z ZoneRequest) Zone() (board.Zone, error) {
	kind, ok := board.ParseZoneKind(z.Kind)
	if !ok {
		return board.Zone{}, fmt.Errorf("неизвестный тип зоны %q", z.Kind)
	}
	return board.Zone{Kind: kind, ID: z.ID}, nil
}

type RectRequest struct {
	Left   float64 `json:"left"`
	Top    float64 `json:"top"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

func (r RectRequest) Rect() board.Rect {
	return board.Rect{Left: r.Left, Top: r.Top, Width: r.Width, Height: r.Height}
}

type DroppableRequest struct {
	Zone ZoneRequest `json:"zone"`
	Rect RectRequest `json:"rect"`
}

// DropRequest - конец перетаскивания. Клиент присылает либо готовую зону over,
// либо прямоугольники, и зона выбирается по ближайшим углам.
type DropRequest struct {
	ActiveID   string             `json:"activeId"`
	Over       *ZoneRequest       `json:"over"`
	Active     *RectRequest       `json:"active"`
	Droppables []DroppableRequest `json:"droppables"`
}

func (r DropRequest) Drop() (board.Drop, error) {
	drop := board.Drop{ActiveID: r.ActiveID}
	if r.Over != nil {
		zone, err := r.Over.Zone()
		if err != nil {
			return board.Drop{}, err
		}
		drop.Over = &zone
		return drop, nil
	}
	if r.Active == nil || len(r.Droppables) == 0 {
		return drop, nil
	}

	droppables := make([]board.Droppable, 0, len(r.Droppables))
	for _, d := range r.Droppables {
		zone, err := d.Zone.Zone()
		if err != nil {
			return board.Drop{}, err
		}
		droppables = append(droppables, board.Droppable{Zone: zone, Rect: d.Rect.Rect()})
	}
	drop.Over = board.ClosestCorners(r.ActiveID, r.Active.Rect(), droppables)
	return drop, nil
}
