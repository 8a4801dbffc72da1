package board_test

import (
	"context"
	"testing"
	"time"

	"projectTracker/internal/board"
	"projectTracker/internal/models/group"
	"projectTracker/internal/models/project"
	"projectTracker/internal/models/task"
	"projectTracker/internal/repository"
	"projectTracker/internal/storage/inmemory"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type clock struct {
	at time.Time
}

func (c *clock) now() time.Time {
	return c.at
}

func (c *clock) advance(d time.Duration) {
	c.at = c.at.Add(d)
}

func newEngine(t *testing.T) (*board.Engine, *repository.Repository, *clock) {
	t.Helper()
	c := &clock{at: now}
	repo := repository.New(inmemory.New(), repository.DefaultKeys(""), repository.WithClock(c.now))
	return board.NewEngine(repo, c.now), repo, c
}

// TestEngine_StatusLifecycle тестирует полный путь задачи по доске
func TestEngine_StatusLifecycle(t *testing.T) {
	ctx := context.Background()
	engine, repo, c := newEngine(t)

	p, err := repo.CreateProject(ctx, project.Project{Name: "Site", Status: project.StatusActive})
	require.NoError(t, err)
	created, err := repo.CreateTask(ctx, task.Task{ProjectID: p.ID, Title: "Deploy", Status: task.StatusTodo, Priority: task.PriorityMedium})
	require.NoError(t, err)

	// todo -> in_progress
	c.advance(time.Minute)
	startedAt := c.at
	out, err := engine.DropTask(ctx, p.ID, board.Drop{ActiveID: created.ID, Over: zone(board.ColumnZone(task.StatusInProgress))})
	require.NoError(t, err)
	require.True(t, out.Moved)
	assert.True(t, out.PromptChecklist)
	require.NotNil(t, out.Task.StartedAt)
	assert.Equal(t, startedAt, *out.Task.StartedAt)
	assert.Nil(t, out.Task.CompletedAt)

	// -> done
	c.advance(time.Minute)
	completedAt := c.at
	out, err = engine.DropTask(ctx, p.ID, board.Drop{ActiveID: created.ID, Over: zone(board.ColumnZone(task.StatusDone))})
	require.NoError(t, err)
	assert.False(t, out.PromptChecklist)
	require.NotNil(t, out.Task.CompletedAt)
	assert.Equal(t, completedAt, *out.Task.CompletedAt)

	// -> todo
	c.advance(time.Minute)
	out, err = engine.DropTask(ctx, p.ID, board.Drop{ActiveID: created.ID, Over: zone(board.ColumnZone(task.StatusTodo))})
	require.NoError(t, err)
	assert.Nil(t, out.Task.CompletedAt)
	require.NotNil(t, out.Task.StartedAt)
	assert.Equal(t, startedAt, *out.Task.StartedAt)

	stored, err := repo.GetTask(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, task.StatusTodo, stored.Status)
	assert.Nil(t, stored.CompletedAt)
	assert.Equal(t, startedAt, *stored.StartedAt)
}

func TestEngine_DropNoop(t *testing.T) {
	ctx := context.Background()
	engine, repo, _ := newEngine(t)

	p, err := repo.CreateProject(ctx, project.Project{Name: "Site", Status: project.StatusActive})
	require.NoError(t, err)
	created, err := repo.CreateTask(ctx, task.Task{ProjectID: p.ID, Title: "Deploy", Status: task.StatusTodo, Priority: task.PriorityLow})
	require.NoError(t, err)

	out, err := engine.DropTask(ctx, p.ID, board.Drop{ActiveID: created.ID})
	require.NoError(t, err)
	assert.False(t, out.Moved)
	assert.Nil(t, out.Task)

	// задача другого проекта не видна на этой доске
	out, err = engine.DropTask(ctx, "other", board.Drop{ActiveID: created.ID, Over: zone(board.ColumnZone(task.StatusDone))})
	require.NoError(t, err)
	assert.False(t, out.Moved)

	stored, err := repo.GetTask(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, task.StatusTodo, stored.Status)
}

func TestEngine_MoveTask(t *testing.T) {
	ctx := context.Background()
	engine, repo, _ := newEngine(t)

	created, err := repo.CreateTask(ctx, task.Task{
		ProjectID: "p",
		Title:     "Write",
		Status:    task.StatusTodo,
		Priority:  task.PriorityHigh,
		Checklist: []task.ChecklistItem{{ID: "c1", Text: "draft"}},
	})
	require.NoError(t, err)

	out, err := engine.MoveTask(ctx, created.ID, task.StatusInProgress)
	require.NoError(t, err)
	assert.True(t, out.Moved)
	assert.False(t, out.PromptChecklist, "задача с чеклистом не вызывает подсказку")

	out, err = engine.MoveTask(ctx, created.ID, task.StatusInProgress)
	require.NoError(t, err)
	assert.False(t, out.Moved)
	require.NotNil(t, out.Task)

	_, err = engine.MoveTask(ctx, created.ID, task.Status("archived"))
	assert.Error(t, err)

	_, err = engine.MoveTask(ctx, "missing", task.StatusDone)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestEngine_SubmitSteps(t *testing.T) {
	ctx := context.Background()
	engine, repo, _ := newEngine(t)

	created, err := repo.CreateTask(ctx, task.Task{ProjectID: "p", Title: "Write", Status: task.StatusInProgress, Priority: task.PriorityLow})
	require.NoError(t, err)

	items, err := engine.SubmitSteps(ctx, created.ID, []string{"  outline ", "", "   ", "draft"})
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "outline", items[0].Text)
	assert.Equal(t, "draft", items[1].Text)

	items, err = engine.SubmitSteps(ctx, created.ID, []string{" "})
	require.NoError(t, err)
	assert.Empty(t, items)

	stored, err := repo.GetTask(ctx, created.ID)
	require.NoError(t, err)
	require.Len(t, stored.Checklist, 2)
	assert.False(t, stored.Checklist[0].Done)
}

func TestEngine_DropProject(t *testing.T) {
	ctx := context.Background()
	engine, repo, _ := newEngine(t)

	g, err := repo.CreateGroup(ctx, group.Group{Name: "Work", Color: "#3b82f6"})
	require.NoError(t, err)
	p, err := repo.CreateProject(ctx, project.Project{Name: "Site", Status: project.StatusActive})
	require.NoError(t, err)

	updated, err := engine.DropProject(ctx, board.Drop{ActiveID: p.ID, Over: zone(board.GroupZone(g.ID))})
	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, g.ID, updated.GroupID)

	updated, err = engine.DropProject(ctx, board.Drop{ActiveID: p.ID, Over: zone(board.GroupZone(g.ID))})
	require.NoError(t, err)
	assert.Nil(t, updated)

	updated, err = engine.DropProject(ctx, board.Drop{ActiveID: p.ID, Over: zone(board.UngroupedZone())})
	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.True(t, updated.Ungrouped())

	stored, err := repo.GetProject(ctx, p.ID)
	require.NoError(t, err)
	assert.Empty(t, stored.GroupID)
	assert.Equal(t, p.CreatedAt, stored.CreatedAt)
}
