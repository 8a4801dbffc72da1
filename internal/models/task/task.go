package task

import (
	"slices"
	"time"
)

type Task struct {
	ID          string          `json:"id"`
	ProjectID   string          `json:"projectId"`
	Title       string          `json:"title"`
	Description string          `json:"description,omitempty"`
	Status      Status          `json:"status"`
	Priority    Priority        `json:"priority"`
	Checklist   []ChecklistItem `json:"checklist"`
	StartedAt   *time.Time      `json:"startedAt,omitempty"`
	CompletedAt *time.Time      `json:"completedAt,omitempty"`
	CreatedAt   time.Time       `json:"createdAt"`
}

type ChecklistItem struct {
	ID   string `json:"id"`
	Text string `json:"text"`
	Done bool   `json:"done"`
}

type Status string
type Priority string

const StatusTodo Status = "todo"
const StatusInProgress Status = "in_progress"
const StatusDone Status = "done"

const PriorityLow Priority = "low"
const PriorityMedium Priority = "medium"
const PriorityHigh Priority = "high"

// Statuses - колонки доски в порядке отображения
var Statuses = []Status{StatusTodo, StatusInProgress, StatusDone}

func (s Status) Valid() bool {
	return slices.Contains(Statuses, s)
}

func (p Priority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

func (t Task) HasChecklist() bool {
	return len(t.Checklist) > 0
}

// ChecklistIndex возвращает позицию пункта или -1
func (t Task) ChecklistIndex(itemID string) int {
	return slices.IndexFunc(t.Checklist, func(item ChecklistItem) bool {
		return item.ID == itemID
	})
}

// Clone копирует задачу вместе с чеклистом и метками времени
func (t Task) Clone() Task {
	c := t
	if t.Checklist != nil {
		c.Checklist = slices.Clone(t.Checklist)
	}
	if t.StartedAt != nil {
		started := *t.StartedAt
		c.StartedAt = &started
	}
	if t.CompletedAt != nil {
		completed := *t.CompletedAt
		c.CompletedAt = &completed
	}
	return c
}
