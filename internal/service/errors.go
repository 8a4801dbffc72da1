package service

import (
	"errors"
	"fmt"

	"projectTracker/internal/logger"
	"projectTracker/internal/repository"

	"go.uber.org/zap"
)

const (
	CodeNotFound   = "NOT_FOUND"
	CodeValidation = "VALIDATION_ERROR"
)

type Resource string

const (
	ResourceProject Resource = "проект"
	ResourceGroup   Resource = "группа"
	ResourceTask    Resource = "задача"
)

type BusinessError struct {
	Code    string
	Message string
	Details map[string]any
	Err     error
}

func (b *BusinessError) Error() string {
	if b.Err != nil {
		return fmt.Sprintf("[%s] %s: %s", b.Code, b.Message, b.Err.Error())
	}
	return fmt.Sprintf("[%s] %s", b.Code, b.Message)
}

func (b *BusinessError) Unwrap() error {
	return b.Err
}

func NewNotFound(resource Resource, id string) *BusinessError {
	return &BusinessError{
		Code:    CodeNotFound,
		Message: fmt.Sprintf("%s %s не найден(а)", resource, id),
		Details: map[string]any{
			"resource": string(resource),
			"id":       id,
		},
		Err: repository.ErrNotFound,
	}
}

func NewValidationError(field, reason string) *BusinessError {
	return &BusinessError{
		Code:    CodeValidation,
		Message: fmt.Sprintf("Неверное значение поля '%s': %s", field, reason),
		Details: map[string]any{
			"field":  field,
			"reason": reason,
		},
	}
}

// IsCode - err содержит BusinessError с кодом code
func IsCode(err error, code string) bool {
	var be *BusinessError
	return errors.As(err, &be) && be.Code == code
}

// lookup переводит ErrNotFound репозитория в бизнес-ошибку, остальное оборачивает
func lookup(err error, resource Resource, id, action string) error {
	if errors.Is(err, repository.ErrNotFound) {
		logger.Info("Service: Объект не найден",
			zap.String("resource", string(resource)),
			zap.String("target_id", id))
		return NewNotFound(resource, id)
	}
	return fmt.Errorf("%s: %w", action, err)
}
