package service

import (
	"context"
	"fmt"

	"projectTracker/internal/logger"
	"projectTracker/internal/models/group"

	"go.uber.org/zap"
)

func (s *Service) ListGroups(ctx context.Context) ([]group.Group, error) {
	groups, err := s.repo.ListGroups(ctx)
	if err != nil {
		return nil, fmt.Errorf("получение групп: %w", err)
	}
	return groups, nil
}

func (s *Service) GetGroup(ctx context.Context, id string) (*group.Group, error) {
	g, err := s.repo.GetGroup(ctx, id)
	if err != nil {
		return nil, lookup(err, ResourceGroup, id, "получение группы")
	}
	return g, nil
}

func (s *Service) CreateGroup(ctx context.Context, in GroupInput) (*group.Group, error) {
	fields, err := in.normalize()
	if err != nil {
		return nil, err
	}
	created, err := s.repo.CreateGroup(ctx, fields)
	if err != nil {
		return nil, fmt.Errorf("создание группы: %w", err)
	}
	logger.Info("Service: Группа создана", zap.String("group_id", created.ID))
	return created, nil
}

func (s *Service) UpdateGroup(ctx context.Context, id string, patch GroupPatch) (*group.Group, error) {
	options, err := patch.options()
	if err != nil {
		return nil, err
	}
	updated, err := s.repo.UpdateGroup(ctx, id, options...)
	if err != nil {
		return nil, lookup(err, ResourceGroup, id, "обновление группы")
	}
	return updated, nil
}

// DeleteGroup удаляет группу, её проекты остаются без группы
func (s *Service) DeleteGroup(ctx context.Context, id string) error {
	if err := s.repo.DeleteGroup(ctx, id); err != nil {
		return fmt.Errorf("удаление группы %s: %w", id, err)
	}
	logger.Info("Service: Группа удалена", zap.String("group_id", id))
	return nil
}
