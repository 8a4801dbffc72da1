package service_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"projectTracker/internal/board"
	"projectTracker/internal/models/group"
	"projectTracker/internal/models/project"
	"projectTracker/internal/models/task"
	"projectTracker/internal/repository"
	"projectTracker/internal/service"
	"projectTracker/internal/storage"
	"projectTracker/internal/storage/inmemory"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockRepository - мок репозитория для путей с ошибками
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) HealthCheck(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockRepository) IsEmpty(ctx context.Context) (bool, error) {
	args := m.Called(ctx)
	return args.Bool(0), args.Error(1)
}

func (m *MockRepository) ListProjects(ctx context.Context, filter repository.ProjectFilter) ([]project.Project, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]project.Project), args.Error(1)
}

func (m *MockRepository) GetProject(ctx context.Context, id string) (*project.Project, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*project.Project), args.Error(1)
}

func (m *MockRepository) CreateProject(ctx context.Context, fields project.Project) (*project.Project, error) {
	args := m.Called(ctx, fields)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*project.Project), args.Error(1)
}

func (m *MockRepository) UpdateProject(ctx context.Context, id string, options ...project.Option) (*project.Project, error) {
	args := m.Called(ctx, id, options)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*project.Project), args.Error(1)
}

func (m *MockRepository) DeleteProject(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockRepository) ListGroups(ctx context.Context) ([]group.Group, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]group.Group), args.Error(1)
}

func (m *MockRepository) GetGroup(ctx context.Context, id string) (*group.Group, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*group.Group), args.Error(1)
}

func (m *MockRepository) CreateGroup(ctx context.Context, fields group.Group) (*group.Group, error) {
	args := m.Called(ctx, fields)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*group.Group), args.Error(1)
}

func (m *MockRepository) UpdateGroup(ctx context.Context, id string, options ...group.Option) (*group.Group, error) {
	args := m.Called(ctx, id, options)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*group.Group), args.Error(1)
}

func (m *MockRepository) DeleteGroup(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockRepository) ListTasks(ctx context.Context, filter repository.TaskFilter) ([]task.Task, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]task.Task), args.Error(1)
}

func (m *MockRepository) GetTask(ctx context.Context, id string) (*task.Task, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*task.Task), args.Error(1)
}

func (m *MockRepository) CreateTask(ctx context.Context, fields task.Task) (*task.Task, error) {
	args := m.Called(ctx, fields)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*task.Task), args.Error(1)
}

func (m *MockRepository) UpdateTask(ctx context.Context, id string, options ...task.Option) (*task.Task, error) {
	args := m.Called(ctx, id, options)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*task.Task), args.Error(1)
}

func (m *MockRepository) DeleteTask(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockRepository) AddChecklistItems(ctx context.Context, taskID string, texts ...string) ([]task.ChecklistItem, error) {
	args := m.Called(ctx, taskID, texts)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]task.ChecklistItem), args.Error(1)
}

func (m *MockRepository) ToggleChecklistItem(ctx context.Context, taskID, itemID string) error {
	return m.Called(ctx, taskID, itemID).Error(0)
}

func (m *MockRepository) DeleteChecklistItem(ctx context.Context, taskID, itemID string) error {
	return m.Called(ctx, taskID, itemID).Error(0)
}

var _ service.Repository = (*MockRepository)(nil)

var now = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func clock() time.Time {
	return now
}

func newService() (*service.Service, *repository.Repository) {
	repo := repository.New(inmemory.New(), repository.DefaultKeys(""), repository.WithClock(clock))
	return service.New(repo, clock), repo
}

func ptr[T any](v T) *T {
	return &v
}

// TestService_HealthCheck тестирует HealthCheck
func TestService_HealthCheck(t *testing.T) {
	tests := []struct {
		name        string
		setupMock   func(*MockRepository)
		expectError bool
	}{
		{
			name: "success - health check passes",
			setupMock: func(m *MockRepository) {
				m.On("HealthCheck", mock.Anything).Return(nil)
			},
		},
		{
			name: "error - storage unavailable",
			setupMock: func(m *MockRepository) {
				m.On("HealthCheck", mock.Anything).Return(fmt.Errorf("ping: %w", storage.ErrUnavailable))
			},
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockRepository)
			tt.setupMock(mockRepo)

			svc := service.New(mockRepo, clock)
			err := svc.HealthCheck(context.Background())

			if tt.expectError {
				assert.Error(t, err)
				assert.ErrorIs(t, err, storage.ErrUnavailable)
				assert.Contains(t, err.Error(), "проверка здоровья сервиса")
			} else {
				assert.NoError(t, err)
			}
			mockRepo.AssertExpectations(t)
		})
	}
}

// TestService_CreateProjectValidation тестирует нормализацию формы проекта
func TestService_CreateProjectValidation(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name      string
		input     service.ProjectInput
		setupMock func(*MockRepository)
		errorCode string
		check     func(*testing.T, *project.Project)
	}{
		{
			name:      "error - blank name",
			input:     service.ProjectInput{Name: "   "},
			setupMock: func(m *MockRepository) {},
			errorCode: service.CodeValidation,
		},
		{
			name:      "error - unknown status",
			input:     service.ProjectInput{Name: "Site", Status: "archived"},
			setupMock: func(m *MockRepository) {},
			errorCode: service.CodeValidation,
		},
		{
			name:  "error - unknown group",
			input: service.ProjectInput{Name: "Site", GroupID: "g-404"},
			setupMock: func(m *MockRepository) {
				m.On("GetGroup", mock.Anything, "g-404").Return(nil, repository.ErrNotFound)
			},
			errorCode: service.CodeNotFound,
		},
		{
			name:  "success - trimmed with default status",
			input: service.ProjectInput{Name: "  Site  ", URL: "  ", Description: " about "},
			setupMock: func(m *MockRepository) {
				m.On("CreateProject", mock.Anything, mock.MatchedBy(func(p project.Project) bool {
					return p.Name == "Site" && p.URL == "" && p.Description == "about" && p.Status == project.StatusActive
				})).Return(&project.Project{ID: "p1", Name: "Site", Status: project.StatusActive}, nil)
			},
			check: func(t *testing.T, p *project.Project) {
				assert.Equal(t, "p1", p.ID)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockRepository)
			tt.setupMock(mockRepo)

			svc := service.New(mockRepo, clock)
			created, err := svc.CreateProject(ctx, tt.input)

			if tt.errorCode != "" {
				require.Error(t, err)
				assert.True(t, service.IsCode(err, tt.errorCode), err.Error())
				assert.Nil(t, created)
			} else {
				require.NoError(t, err)
				tt.check(t, created)
			}
			mockRepo.AssertExpectations(t)
		})
	}
}

func TestService_NotFound(t *testing.T) {
	ctx := context.Background()
	svc, _ := newService()

	_, err := svc.GetProject(ctx, "missing")
	require.Error(t, err)
	assert.True(t, service.IsCode(err, service.CodeNotFound))
	assert.ErrorIs(t, err, repository.ErrNotFound)

	var be *service.BusinessError
	require.True(t, errors.As(err, &be))
	assert.Equal(t, "missing", be.Details["id"])

	_, err = svc.UpdateGroup(ctx, "missing", service.GroupPatch{Name: ptr("x")})
	assert.True(t, service.IsCode(err, service.CodeNotFound))

	_, err = svc.CreateTask(ctx, service.TaskInput{ProjectID: "missing", Title: "x"})
	assert.True(t, service.IsCode(err, service.CodeNotFound))

	_, err = svc.AddChecklistItem(ctx, "missing", "step")
	assert.True(t, service.IsCode(err, service.CodeNotFound))

	// удаление и переключение отсутствующего - не ошибка
	assert.NoError(t, svc.DeleteProject(ctx, "missing"))
	assert.NoError(t, svc.ToggleChecklistItem(ctx, "missing", "item"))
}

func TestService_StorageFailure(t *testing.T) {
	mockRepo := new(MockRepository)
	mockRepo.On("ListProjects", mock.Anything, mock.Anything).Return(nil, fmt.Errorf("read: %w", storage.ErrUnavailable))

	svc := service.New(mockRepo, clock)
	_, err := svc.ListProjects(context.Background(), project.AllGroups())

	require.Error(t, err)
	assert.ErrorIs(t, err, storage.ErrUnavailable)
	var be *service.BusinessError
	assert.False(t, errors.As(err, &be))
	mockRepo.AssertExpectations(t)
}

// TestService_TaskLifecycle тестирует создание задачи и смену статуса через форму
func TestService_TaskLifecycle(t *testing.T) {
	ctx := context.Background()
	svc, _ := newService()

	p, err := svc.CreateProject(ctx, service.ProjectInput{Name: "Site"})
	require.NoError(t, err)

	created, err := svc.CreateTask(ctx, service.TaskInput{
		ProjectID: p.ID,
		Title:     " Deploy ",
		Checklist: []string{"build", "  ", "ship"},
	})
	require.NoError(t, err)
	assert.Equal(t, "Deploy", created.Title)
	assert.Equal(t, task.StatusTodo, created.Status)
	assert.Equal(t, task.PriorityMedium, created.Priority)
	assert.Nil(t, created.StartedAt)
	require.Len(t, created.Checklist, 2)
	assert.Equal(t, "ship", created.Checklist[1].Text)
	assert.NotEmpty(t, created.Checklist[0].ID)

	stored, err := svc.GetTask(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.Checklist, stored.Checklist)

	updated, err := svc.UpdateTask(ctx, created.ID, service.TaskPatch{Status: ptr(task.StatusDone)})
	require.NoError(t, err)
	assert.Equal(t, task.StatusDone, updated.Status)
	require.NotNil(t, updated.CompletedAt)
	assert.Equal(t, now, *updated.CompletedAt)
	assert.Nil(t, updated.StartedAt)

	updated, err = svc.UpdateTask(ctx, created.ID, service.TaskPatch{Status: ptr(task.StatusTodo), Description: ptr("later")})
	require.NoError(t, err)
	assert.Nil(t, updated.CompletedAt)
	assert.Equal(t, "later", updated.Description)

	_, err = svc.UpdateTask(ctx, created.ID, service.TaskPatch{Title: ptr(" ")})
	assert.True(t, service.IsCode(err, service.CodeValidation))

	_, err = svc.UpdateTask(ctx, created.ID, service.TaskPatch{Priority: ptr(task.Priority("urgent"))})
	assert.True(t, service.IsCode(err, service.CodeValidation))

	inProgress, err := svc.CreateTask(ctx, service.TaskInput{ProjectID: p.ID, Title: "Write", Status: task.StatusInProgress})
	require.NoError(t, err)
	require.NotNil(t, inProgress.StartedAt)
	assert.NotNil(t, inProgress.Checklist)
	assert.Empty(t, inProgress.Checklist)
	assert.Equal(t, now, *inProgress.StartedAt)

	out, err := svc.MoveTask(ctx, inProgress.ID, task.StatusDone)
	require.NoError(t, err)
	assert.True(t, out.Moved)
	assert.False(t, out.PromptChecklist)

	_, err = svc.MoveTask(ctx, inProgress.ID, "nowhere")
	assert.True(t, service.IsCode(err, service.CodeValidation))
}

func TestService_BoardAndProgress(t *testing.T) {
	ctx := context.Background()
	svc, _ := newService()

	p, err := svc.CreateProject(ctx, service.ProjectInput{Name: "Site"})
	require.NoError(t, err)

	progress, err := svc.ProjectProgress(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, service.Progress{}, progress)

	for _, st := range []task.Status{task.StatusDone, task.StatusTodo, task.StatusDone} {
		_, err := svc.CreateTask(ctx, service.TaskInput{ProjectID: p.ID, Title: string(st), Status: st})
		require.NoError(t, err)
	}

	b, err := svc.Board(ctx, p.ID)
	require.NoError(t, err)
	require.Len(t, b.Columns, 3)
	assert.Equal(t, task.StatusTodo, b.Columns[0].Status)
	assert.Equal(t, task.StatusInProgress, b.Columns[1].Status)
	assert.Equal(t, task.StatusDone, b.Columns[2].Status)
	assert.Len(t, b.Columns[0].Tasks, 1)
	assert.Empty(t, b.Columns[1].Tasks)
	assert.Len(t, b.Columns[2].Tasks, 2)
	assert.Equal(t, service.Progress{Done: 2, Total: 3, Percent: 66}, b.Progress)

	todo := b.Columns[0].Tasks[0]
	out, err := svc.DropTask(ctx, p.ID, board.Drop{ActiveID: todo.ID, Over: &board.Zone{Kind: board.ZoneColumn, ID: string(task.StatusInProgress)}})
	require.NoError(t, err)
	assert.True(t, out.Moved)
	assert.True(t, out.PromptChecklist)

	items, err := svc.SubmitSteps(ctx, todo.ID, []string{"one", " ", "two"})
	require.NoError(t, err)
	assert.Len(t, items, 2)

	_, err = svc.Board(ctx, "missing")
	assert.True(t, service.IsCode(err, service.CodeNotFound))
}

func TestService_GroupsAndSidebar(t *testing.T) {
	ctx := context.Background()
	svc, _ := newService()

	g, err := svc.CreateGroup(ctx, service.GroupInput{Name: " Work ", Color: "#000"})
	require.NoError(t, err)
	assert.Equal(t, "Work", g.Name)

	p, err := svc.CreateProject(ctx, service.ProjectInput{Name: "Site", GroupID: g.ID})
	require.NoError(t, err)

	inGroup, err := svc.ListProjects(ctx, project.InGroup(g.ID))
	require.NoError(t, err)
	assert.Len(t, inGroup, 1)

	moved, err := svc.DropProject(ctx, board.Drop{ActiveID: p.ID, Over: &board.Zone{Kind: board.ZoneUngrouped}})
	require.NoError(t, err)
	require.NotNil(t, moved)
	assert.True(t, moved.Ungrouped())

	updated, err := svc.UpdateProject(ctx, p.ID, service.ProjectPatch{GroupID: ptr(g.ID)})
	require.NoError(t, err)
	assert.Equal(t, g.ID, updated.GroupID)

	_, err = svc.UpdateProject(ctx, p.ID, service.ProjectPatch{GroupID: ptr("g-404")})
	assert.True(t, service.IsCode(err, service.CodeNotFound))

	require.NoError(t, svc.DeleteGroup(ctx, g.ID))
	ungrouped, err := svc.ListProjects(ctx, project.Ungrouped())
	require.NoError(t, err)
	require.Len(t, ungrouped, 1)
	assert.Equal(t, p.ID, ungrouped[0].ID)
}

func TestService_DropProjectUnknownGroup(t *testing.T) {
	ctx := context.Background()
	svc, _ := newService()

	p, err := svc.CreateProject(ctx, service.ProjectInput{Name: "Site"})
	require.NoError(t, err)

	ghost := board.GroupZone("ghost")
	_, err = svc.DropProject(ctx, board.Drop{ActiveID: p.ID, Over: &ghost})
	assert.True(t, service.IsCode(err, service.CodeNotFound))

	stored, err := svc.GetProject(ctx, p.ID)
	require.NoError(t, err)
	assert.True(t, stored.Ungrouped())
}

func TestService_Seed(t *testing.T) {
	ctx := context.Background()
	svc, _ := newService()

	seeded, err := svc.Seed(ctx)
	require.NoError(t, err)
	assert.True(t, seeded)

	seeded, err = svc.Seed(ctx)
	require.NoError(t, err)
	assert.False(t, seeded)
}
