package project

type Option func(*Project)

// Apply применяет опции по порядку, nil пропускаются
func (p *Project) Apply(options ...Option) {
	for _, opt := range options {
		if opt != nil {
			opt(p)
		}
	}
}

func WithName(name string) Option {
	return func(p *Project) {
		p.Name = name
	}
}

func WithDescription(description string) Option {
	return func(p *Project) {
		p.Description = description
	}
}

// пустая строка очищает ссылку
func WithURL(url string) Option {
	return func(p *Project) {
		p.URL = url
	}
}

func WithGithubURL(url string) Option {
	return func(p *Project) {
		p.GithubURL = url
	}
}

func WithStatus(status Status) Option {
	if status == "" {
		return nil
	}
	return func(p *Project) {
		p.Status = status
	}
}

func WithColor(color string) Option {
	return func(p *Project) {
		p.Color = color
	}
}

// WithGroup переносит проект в группу, пустой id делает проект негруппированным
func WithGroup(groupID string) Option {
	return func(p *Project) {
		p.GroupID = groupID
	}
}

func WithoutGroup() Option {
	return WithGroup("")
}
