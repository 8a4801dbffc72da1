package board

import (
	"slices"

	"projectTracker/internal/models/project"
)

type ProjectState struct {
	Projects []project.Project
}

// GroupChange - перенос проекта; пустой GroupID значит "без группы"
type GroupChange struct {
	ProjectID string
	From      string
	To        string
}

// TargetGroup определяет группу зоны. Над карточкой проекта берётся его группа.
func TargetGroup(state ProjectState, over *Zone) (string, bool) {
	if over == nil {
		return "", false
	}
	switch over.Kind {
	case ZoneGroup:
		return over.ID, over.ID != ""
	case ZoneUngrouped:
		return "", true
	case ZoneProject:
		i := slices.IndexFunc(state.Projects, func(p project.Project) bool { return p.ID == over.ID })
		if i == -1 {
			return "", false
		}
		return state.Projects[i].GroupID, true
	}
	return "", false
}

// DropProject - чистое решение для перетаскивания проекта между группами.
// Перенос в ту же группу ничего не меняет.
func DropProject(state ProjectState, drop Drop) (ProjectState, *GroupChange) {
	if drop.Over == nil {
		return state, nil
	}
	if drop.Over.Kind == ZoneProject && drop.Over.ID == drop.ActiveID {
		return state, nil
	}

	i := slices.IndexFunc(state.Projects, func(p project.Project) bool { return p.ID == drop.ActiveID })
	if i == -1 {
		return state, nil
	}

	target, ok := TargetGroup(state, drop.Over)
	if !ok || target == state.Projects[i].GroupID {
		return state, nil
	}

	change := &GroupChange{
		ProjectID: drop.ActiveID,
		From:      state.Projects[i].GroupID,
		To:        target,
	}

	projects := slices.Clone(state.Projects)
	projects[i].GroupID = target
	return ProjectState{Projects: projects}, change
}
