// Package board переводит жесты перетаскивания в изменения задач и проектов.
// Решение принимается чистыми функциями над снимком доски, а Engine
// применяет его через репозиторий.
package board

import "projectTracker/internal/models/task"

type ZoneKind int

const (
	ZoneColumn ZoneKind = iota + 1
	ZoneTask
	ZoneGroup
	ZoneUngrouped
	ZoneProject
)

func (k ZoneKind) String() string {
	switch k {
	case ZoneColumn:
		return "column"
	case ZoneTask:
		return "task"
	case ZoneGroup:
		return "group"
	case ZoneUngrouped:
		return "ungrouped"
	case ZoneProject:
		return "project"
	}
	return "unknown"
}

// ParseZoneKind - обратное к String, для транспорта
func ParseZoneKind(s string) (ZoneKind, bool) {
	for _, k := range []ZoneKind{ZoneColumn, ZoneTask, ZoneGroup, ZoneUngrouped, ZoneProject} {
		if k.String() == s {
			return k, true
		}
	}
	return 0, false
}

// Zone - элемент, над которым отпустили перетаскиваемый объект
type Zone struct {
	Kind ZoneKind
	ID   string
}

func ColumnZone(status task.Status) Zone {
	return Zone{Kind: ZoneColumn, ID: string(status)}
}

func TaskZone(taskID string) Zone {
	return Zone{Kind: ZoneTask, ID: taskID}
}

func GroupZone(groupID string) Zone {
	return Zone{Kind: ZoneGroup, ID: groupID}
}

// UngroupedZone - явная зона "без группы", отличная от отсутствия зоны
func UngroupedZone() Zone {
	return Zone{Kind: ZoneUngrouped}
}

func ProjectZone(projectID string) Zone {
	return Zone{Kind: ZoneProject, ID: projectID}
}

// Drop - окончание перетаскивания. Over == nil, если объект отпущен вне зон.
type Drop struct {
	ActiveID string
	Over     *Zone
}
