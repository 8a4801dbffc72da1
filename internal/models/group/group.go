package group

import "time"

// Group - плоская группа проектов, без вложенности.
type Group struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Color     string    `json:"color"`
	CreatedAt time.Time `json:"createdAt"`
}

type Option func(*Group)

func (g *Group) Apply(options ...Option) {
	for _, opt := range options {
		if opt != nil {
			opt(g)
		}
	}
}

func WithName(name string) Option {
	return func(g *Group) {
		g.Name = name
	}
}

func WithColor(color string) Option {
	return func(g *Group) {
		g.Color = color
	}
}
