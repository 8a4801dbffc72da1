package board

import (
	"slices"
	"time"

	"projectTracker/internal/models/task"
)

// TaskState - снимок доски одного проекта
type TaskState struct {
	Tasks []task.Task
}

func (s TaskState) find(id string) (task.Task, bool) {
	i := slices.IndexFunc(s.Tasks, func(t task.Task) bool { return t.ID == id })
	if i == -1 {
		return task.Task{}, false
	}
	return s.Tasks[i], true
}

// Column - задачи одного статуса в порядке хранения
func (s TaskState) Column(status task.Status) []task.Task {
	column := []task.Task{}
	for _, t := range s.Tasks {
		if t.Status == status {
			column = append(column, t)
		}
	}
	return column
}

// TaskEffects - что нужно сделать после решения
type TaskEffects struct {
	// Change == nil - ничего не записывать
	Change *StatusChange
	// PromptChecklist - попросить у пользователя шаги; сам движок пунктов не создаёт
	PromptChecklist bool
}

func (e TaskEffects) Noop() bool {
	return e.Change == nil
}

// TargetStatus определяет статус колонки, куда отпустили задачу:
// колонка напрямую или статус задачи под курсором.
func TargetStatus(state TaskState, over *Zone) (task.Status, bool) {
	if over == nil {
		return "", false
	}
	switch over.Kind {
	case ZoneColumn:
		status := task.Status(over.ID)
		return status, status.Valid()
	case ZoneTask:
		under, ok := state.find(over.ID)
		if !ok {
			return "", false
		}
		return under.Status, true
	}
	return "", false
}

// DropTask - чистое решение для перетаскивания задачи.
// Позиция внутри колонки не сохраняется, важна только принадлежность к статусу.
func DropTask(state TaskState, drop Drop, now time.Time) (TaskState, TaskEffects) {
	if drop.Over == nil {
		return state, TaskEffects{}
	}
	if drop.Over.Kind == ZoneTask && drop.Over.ID == drop.ActiveID {
		return state, TaskEffects{}
	}

	active, ok := state.find(drop.ActiveID)
	if !ok {
		return state, TaskEffects{}
	}

	target, ok := TargetStatus(state, drop.Over)
	if !ok || target == active.Status {
		return state, TaskEffects{}
	}

	change, prompt := Transition(active, target, now)
	return state.with(change.ApplyTo(active)), TaskEffects{Change: &change, PromptChecklist: prompt}
}

func (s TaskState) with(updated task.Task) TaskState {
	tasks := slices.Clone(s.Tasks)
	for i := range tasks {
		if tasks[i].ID == updated.ID {
			tasks[i] = updated
		}
	}
	return TaskState{Tasks: tasks}
}
