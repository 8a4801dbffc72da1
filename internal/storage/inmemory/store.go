package inmemory

import (
	"bytes"
	"context"
	"fmt"
	"sync"

	"projectTracker/internal/storage"
)

var _ storage.Store = (*Store)(nil)
var _ storage.Batcher = (*Store)(nil)

// Store держит значения в памяти процесса. Значения копируются на входе и выходе.
type Store struct {
	data   map[string][]byte
	mtx    *sync.RWMutex
	closed bool
}

func New() *Store {
	return &Store{
		data: make(map[string][]byte),
		mtx:  &sync.RWMutex{},
	}
}

func (s *Store) HealthCheck(ctx context.Context) error {
	s.mtx.RLock()
	defer s.mtx.RUnlock()

	if s.closed {
		return storage.ErrUnavailable
	}
	return nil
}

func (s *Store) Get(ctx context.Context, key string) ([]byte, bool, error) {
	s.mtx.RLock()
	defer s.mtx.RUnlock()

	if s.closed {
		return nil, false, fmt.Errorf("чтение %q: %w", key, storage.ErrUnavailable)
	}

	value, ok := s.data[key]
	if !ok {
		return nil, false, nil
	}
	return bytes.Clone(value), true, nil
}

func (s *Store) Set(ctx context.Context, key string, value []byte) error {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	if s.closed {
		return fmt.Errorf("запись %q: %w", key, storage.ErrUnavailable)
	}
	s.data[key] = bytes.Clone(value)
	return nil
}

func (s *Store) SetMany(ctx context.Context, entries []storage.Entry) error {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	if s.closed {
		return fmt.Errorf("пакетная запись: %w", storage.ErrUnavailable)
	}
	for _, e := range entries {
		s.data[e.Key] = bytes.Clone(e.Value)
	}
	return nil
}

// Keys - сохранённые ключи, для отладки и тестов
func (s *Store) Keys() []string {
	s.mtx.RLock()
	defer s.mtx.RUnlock()

	keys := make([]string, 0, len(s.data))
	for k := range s.data {
		keys = append(keys, k)
	}
	return keys
}

func (s *Store) Close() error {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	s.closed = true
	return nil
}
