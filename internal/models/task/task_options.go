package task

import "time"

type Option func(*Task)

func (t *Task) Apply(options ...Option) {
	for _, opt := range options {
		if opt != nil {
			opt(t)
		}
	}
}

func WithTitle(title string) Option {
	return func(t *Task) {
		t.Title = title
	}
}

func WithDescription(description string) Option {
	return func(t *Task) {
		t.Description = description
	}
}

func WithStatus(status Status) Option {
	if status == "" {
		return nil
	}
	return func(t *Task) {
		t.Status = status
	}
}

func WithPriority(priority Priority) Option {
	if priority == "" {
		return nil
	}
	return func(t *Task) {
		t.Priority = priority
	}
}

func WithChecklist(items []ChecklistItem) Option {
	return func(t *Task) {
		t.Checklist = items
	}
}

// WithStartedAt(nil) очищает поле
func WithStartedAt(at *time.Time) Option {
	return func(t *Task) {
		t.StartedAt = at
	}
}

// WithCompletedAt(nil) очищает поле
func WithCompletedAt(at *time.Time) Option {
	return func(t *Task) {
		t.CompletedAt = at
	}
}
