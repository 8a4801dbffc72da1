package project

import "time"

type Project struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	URL         string    `json:"url,omitempty"`
	GithubURL   string    `json:"githubUrl,omitempty"`
	Status      Status    `json:"status"`
	Color       string    `json:"color"`
	GroupID     string    `json:"groupId,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

type Status string

const StatusActive Status = "active"
const StatusPlanned Status = "planned"
const StatusPaused Status = "paused"

func (s Status) Valid() bool {
	switch s {
	case StatusActive, StatusPlanned, StatusPaused:
		return true
	}
	return false
}

// Ungrouped проект не привязан ни к одной группе
func (p Project) Ungrouped() bool {
	return p.GroupID == ""
}

// SelectionKind - как выбирать проекты по группе при фильтрации
type SelectionKind int

const (
	SelectAll SelectionKind = iota
	SelectUngrouped
	SelectGroup
)

// GroupSelection отличает "ничего не выбрано" от явного "без группы".
type GroupSelection struct {
	Kind    SelectionKind
	GroupID string
}

func AllGroups() GroupSelection {
	return GroupSelection{Kind: SelectAll}
}

func Ungrouped() GroupSelection {
	return GroupSelection{Kind: SelectUngrouped}
}

func InGroup(groupID string) GroupSelection {
	return GroupSelection{Kind: SelectGroup, GroupID: groupID}
}

func (s GroupSelection) Matches(p Project) bool {
	switch s.Kind {
	case SelectUngrouped:
		return p.Ungrouped()
	case SelectGroup:
		return p.GroupID == s.GroupID
	default:
		return true
	}
}
