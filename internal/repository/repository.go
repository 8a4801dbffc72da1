// Package repository реализует CRUD над проектами, группами и задачами
// поверх хранилища ключ-значение. Каждая операция читает коллекцию целиком,
// меняет её в памяти и записывает целиком обратно; кэша между вызовами нет.
package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"projectTracker/internal/storage"

	"github.com/google/uuid"
)

// Keys - ключи коллекций в хранилище
type Keys struct {
	Projects string
	Groups   string
	Tasks    string
}

func DefaultKeys(prefix string) Keys {
	if prefix == "" {
		prefix = "projekty-panel"
	}
	return Keys{
		Projects: prefix + "-projects",
		Groups:   prefix + "-groups",
		Tasks:    prefix + "-tasks",
	}
}

// Repository сериализует изменения: каждая запись держит mtx от чтения коллекции до сохранения
type Repository struct {
	mtx   *sync.RWMutex
	store storage.Store
	keys  Keys
	now   func() time.Time
	newID func() string
}

type Option func(*Repository)

func WithClock(now func() time.Time) Option {
	return func(r *Repository) {
		r.now = now
	}
}

func WithIDGenerator(newID func() string) Option {
	return func(r *Repository) {
		r.newID = newID
	}
}

func New(store storage.Store, keys Keys, options ...Option) *Repository {
	r := &Repository{
		mtx:   &sync.RWMutex{},
		store: store,
		keys:  keys,
		now:   Now,
		newID: NewID,
	}
	for _, opt := range options {
		opt(r)
	}
	return r
}

// Now - текущее время в UTC с точностью до миллисекунд, как в сохранённых данных
func Now() time.Time {
	return time.Now().UTC().Truncate(time.Millisecond)
}

func NewID() string {
	return uuid.NewString()
}

func (r *Repository) HealthCheck(ctx context.Context) error {
	if hc, ok := r.store.(storage.HealthChecker); ok {
		if err := hc.HealthCheck(ctx); err != nil {
			return fmt.Errorf("проверка хранилища: %w", err)
		}
	}
	return nil
}

// IsEmpty - нет ни одного проекта и ни одной группы
func (r *Repository) IsEmpty(ctx context.Context) (bool, error) {
	r.mtx.RLock()
	defer r.mtx.RUnlock()

	projects, err := r.loadProjects(ctx)
	if err != nil {
		return false, err
	}
	if len(projects) > 0 {
		return false, nil
	}
	groups, err := r.loadGroups(ctx)
	if err != nil {
		return false, err
	}
	return len(groups) == 0, nil
}

func encode[T any](key string, items []T) (storage.Entry, error) {
	if items == nil {
		items = []T{}
	}
	data, err := json.Marshal(items)
	if err != nil {
		return storage.Entry{}, fmt.Errorf("сериализация %q: %w", key, err)
	}
	return storage.Entry{Key: key, Value: data}, nil
}

func save[T any](ctx context.Context, store storage.Store, key string, items []T) error {
	entry, err := encode(key, items)
	if err != nil {
		return err
	}
	if err := store.Set(ctx, entry.Key, entry.Value); err != nil {
		return fmt.Errorf("запись коллекции %q: %w", key, err)
	}
	return nil
}
