package board

import (
	"time"

	"projectTracker/internal/models/task"
)

// StatusChange - одно обновление задачи: статус и производные метки времени
type StatusChange struct {
	TaskID string
	From   task.Status
	To     task.Status
	// StartedAt != nil - выставить время начала
	StartedAt *time.Time
	// CompletedAt != nil - выставить время завершения
	CompletedAt    *time.Time
	ClearCompleted bool
}

// Transition вычисляет изменение при переводе задачи в статус target.
// Второй результат - нужно ли предложить пользователю заполнить чеклист.
// Вызывается только при target != t.Status.
func Transition(t task.Task, target task.Status, now time.Time) (StatusChange, bool) {
	change := StatusChange{
		TaskID: t.ID,
		From:   t.Status,
		To:     target,
	}

	if target == task.StatusInProgress && t.StartedAt == nil {
		started := now
		change.StartedAt = &started
	}
	if target == task.StatusDone && t.CompletedAt == nil {
		completed := now
		change.CompletedAt = &completed
	}
	if target != task.StatusDone && t.CompletedAt != nil {
		change.ClearCompleted = true
	}

	prompt := target == task.StatusInProgress && !t.HasChecklist()
	return change, prompt
}

// Options переводит изменение в опции репозитория для одной записи
func (c StatusChange) Options() []task.Option {
	options := []task.Option{task.WithStatus(c.To)}
	if c.StartedAt != nil {
		options = append(options, task.WithStartedAt(c.StartedAt))
	}
	if c.CompletedAt != nil {
		options = append(options, task.WithCompletedAt(c.CompletedAt))
	}
	if c.ClearCompleted {
		options = append(options, task.WithCompletedAt(nil))
	}
	return options
}

func (c StatusChange) ApplyTo(t task.Task) task.Task {
	next := t.Clone()
	next.Apply(c.Options()...)
	return next
}
