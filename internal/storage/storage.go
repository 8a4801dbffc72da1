// Package storage описывает постоянное хранилище ключ-значение,
// в котором репозиторий держит коллекции в виде JSON.
package storage

import (
	"context"
	"errors"
)

// ErrUnavailable - хранилище недоступно (закрыто, ошибка ввода-вывода)
var ErrUnavailable = errors.New("хранилище недоступно")

// Store - синхронное хранилище сериализованных значений по ключу.
// Отсутствие ключа не является ошибкой: Get возвращает ok == false.
type Store interface {
	Get(ctx context.Context, key string) (value []byte, ok bool, err error)
	Set(ctx context.Context, key string, value []byte) error
}

type Entry struct {
	Key   string
	Value []byte
}

// Batcher записывает несколько ключей за одну операцию.
// Бэкенды с транзакциями реализуют его, чтобы каскады были атомарными.
type Batcher interface {
	SetMany(ctx context.Context, entries []Entry) error
}

type HealthChecker interface {
	HealthCheck(ctx context.Context) error
}

// SetAll пишет записи через Batcher, если он есть, иначе по одной
func SetAll(ctx context.Context, s Store, entries ...Entry) error {
	if b, ok := s.(Batcher); ok {
		return b.SetMany(ctx, entries)
	}
	for _, e := range entries {
		if err := s.Set(ctx, e.Key, e.Value); err != nil {
			return err
		}
	}
	return nil
}
